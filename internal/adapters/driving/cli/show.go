package cli

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <index>",
	Short: "Show a document's metadata and preview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		corpus, err := loadedCorpus(commandContext(cmd))
		if err != nil {
			return err
		}
		doc, err := corpus.Document(index)
		if err != nil {
			return err
		}
		printSelected(cmd.OutOrStdout(), index, doc, previewLength())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
