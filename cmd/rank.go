package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/alexandarmartin-KC/cvside/internal/jobs"
	"github.com/alexandarmartin-KC/cvside/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rankCmd = &cobra.Command{
	Use:   "rank <jobs.json>",
	Short: "Filter and sort a list of scored job records",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rank(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("location", "", "keep location-matching jobs first when sorting")
	rankCmd.Flags().String("radius", "", "search radius in km, only meaningful together with --location")
	rankCmd.Flags().String("min-score", "", "minimum match score; snaps down to 80/70/60/50, anything lower means no filter")
	rankCmd.Flags().String("sort", "", `sort order: "Best Match", "Newest", "Oldest" or "Company A–Z"`)
}

func rank(cmd *cobra.Command, path string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading jobs file", zap.String("path", path), zap.Error(err))
	}

	var list []*jobs.Job
	if err := json.Unmarshal(data, &list); err != nil {
		logger.Fatal("decoding jobs file", zap.String("path", path), zap.Error(err))
	}

	input := jobs.FilterInput{
		Location:     cmd.Flag("location").Value.String(),
		RadiusKm:     cmd.Flag("radius").Value.String(),
		MinimumScore: cmd.Flag("min-score").Value.String(),
		SortBy:       cmd.Flag("sort").Value.String(),
	}

	result := jobs.Apply(list, input, logger)

	logger.Info("jobs ranked",
		zap.Int("initial", len(list)),
		zap.Int("left", len(result.Jobs)),
		zap.String("sort_by", string(result.Applied.SortBy)),
	)

	pretty, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(pretty))
}
