// File: cottagerec/main.go
package main

import "cottagerec/cmd"

func main() {
	cmd.Execute()
}
