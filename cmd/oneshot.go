package cmd

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"cottagerec/config"
	"cottagerec/models"
	"cottagerec/services/recommender"
	"cottagerec/utils"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Score one JSON request from stdin and write recommendations to stdout",
	Long: `Reads a single JSON document {guest_count, booking_date, special_requests,
cottages, bookings, reviews} from standard input and writes the
recommendation array to standard output. Failures fall back to the static
recommendation list; the exit code is always 0 so the host pipeline keeps
a parseable payload either way.`,
	Run: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
		logger := utils.GetLogger()

		// The one-shot adapter historically ran the simpler profile.
		variant := recommender.VariantByName(config.AppConfig.RecommenderVariant, recommender.SimpleVariant)
		svc := recommender.NewDefaultRecommenderService(variant, config.AppConfig.NumRecommendations, logger)
		RunOneShot(os.Stdin, os.Stdout, os.Stderr, svc)
	},
}

// RunOneShot drives the batch adapter over explicit streams. Whatever goes
// wrong, out receives a valid JSON array and diagnostics go to errOut only.
func RunOneShot(in io.Reader, out, errOut io.Writer, svc recommender.RecommenderService) {
	data, err := io.ReadAll(in)
	var req models.RecommendRequest
	if err == nil {
		err = json.Unmarshal(data, &req)
	}
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		writeJSON(out, errOut, svc.Fallback(2, []string{}))
		return
	}

	recs, _ := svc.Recommend(req)
	writeJSON(out, errOut, recs)
}

func writeJSON(out, errOut io.Writer, recs []models.Recommendation) {
	if err := json.NewEncoder(out).Encode(recs); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
}
