package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "cottagerec",
	Short: "Cottage recommendation service for the resort booking platform",
	Long: `cottagerec ranks resort cottages for a guest from historical booking
popularity, review ratings, seasonal demand, guest-count fit and
keyword-detected special occasions. Run without arguments it serves the
HTTP API; the "recommend" subcommand scores a single JSON request from
standard input.`,
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func init() {
	rootCmd.Flags().String("port", "", "HTTP port (overrides APP_PORT)")
	viper.BindPFlag("APP_PORT", rootCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(recommendCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
