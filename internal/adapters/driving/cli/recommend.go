package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docrec/internal/core/domain"
)

var (
	recommendTopN    int
	recommendMediumN int
	recommendDiverse int
	recommendJSON    bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <index>",
	Short: "Recommend documents related to the document at index",
	Long: `Print the selected document and three groups of related documents.

Band sizes default to the recommend.* settings and can be overridden per call.
Use --seed for reproducible medium and diverse samples.`,
	Example: `  docrec recommend 0
  docrec recommend 12 --top 6 --diverse 5
  docrec recommend 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendTopN, "top", "t", -1, "number of highly similar documents")
	recommendCmd.Flags().IntVarP(&recommendMediumN, "medium", "m", -1, "number of medium similarity documents")
	recommendCmd.Flags().IntVarP(&recommendDiverse, "diverse", "d", -1, "number of diverse documents")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "print the recommendation set as JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	if _, err := loadedCorpus(ctx); err != nil {
		return err
	}
	svc, err := recommendationService()
	if err != nil {
		return err
	}

	opts := svc.DefaultOptions()
	flags := cmd.Flags()
	if flags.Changed("top") {
		opts.TopN = recommendTopN
	}
	if flags.Changed("medium") {
		opts.MediumN = recommendMediumN
	}
	if flags.Changed("diverse") {
		opts.DiverseN = recommendDiverse
	}

	if !recommendJSON {
		return showRecommendations(ctx, cmd.OutOrStdout(), index, opts)
	}

	set, err := svc.Recommend(ctx, index, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(set)
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: document index %q is not a number", domain.ErrInvalidInput, arg)
	}
	return index, nil
}
