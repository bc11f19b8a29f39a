package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Vectorise the corpus and store it with its similarity matrix",
	Long: `Load the document table, build the similarity matrix and write the table
to the SQLite database. The matrix is stored too when cache.enabled is true.

Set corpus.source = "sqlite" to load the stored table on later runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if services == nil || services.Corpus == nil {
			return errNoCorpus
		}
		ctx := commandContext(cmd)

		corpus, err := services.Corpus.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading corpus: %w", err)
		}
		if err := services.Corpus.Persist(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Indexed %d documents.\n", corpus.Size())
		if services.IndexPath != "" {
			fmt.Fprintf(out, "Stored in %s\n", services.IndexPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
