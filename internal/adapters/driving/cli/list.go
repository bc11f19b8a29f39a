package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents with their indices",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "maximum number of documents to list (0 for all)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	corpus, err := loadedCorpus(commandContext(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if corpus.Size() == 0 {
		fmt.Fprintln(out, "No documents loaded.")
		return nil
	}

	n := corpus.Size()
	if listLimit > 0 && listLimit < n {
		n = listLimit
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tDOCID\tDOCTYPE")
	for i := 0; i < n; i++ {
		doc := corpus.Documents[i]
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, doc.ID, doc.Type)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if n < corpus.Size() {
		fmt.Fprintf(out, "\nShowing %d of %d documents. Use --limit 0 to list all.\n", n, corpus.Size())
	}
	return nil
}
