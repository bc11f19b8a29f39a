package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/logger"
)

const exitCommand = "exit"

var watchFlag bool

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for document indices and print recommendations",
	Long: `Prompt for a document index, print the selected document and its
recommendations, then ask whether to continue. Type 'exit' to stop.

With --watch the corpus is reloaded whenever the document table changes.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	addInteractiveFlags(interactiveCmd)
	rootCmd.AddCommand(interactiveCmd)
}

func addInteractiveFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "reload the corpus when the document table changes")
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	corpus, err := loadedCorpus(ctx)
	if err != nil {
		return err
	}
	svc, err := recommendationService()
	if err != nil {
		return err
	}
	if watchFlag {
		startWatch(ctx)
	}

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	fmt.Fprintf(out, "Loaded %d documents.\n", corpus.Size())

	for {
		fmt.Fprintf(out, "\nEnter a document index or '%s' to quit: ", exitCommand)
		line, ok := readLine(in)
		if !ok || strings.EqualFold(line, exitCommand) {
			fmt.Fprintln(out, "\nGoodbye.")
			return nil
		}

		index, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(out, "Invalid input %q: please enter a whole number.\n", line)
			continue
		}

		err = showRecommendations(ctx, out, index, svc.DefaultOptions())
		var rangeErr *domain.RangeError
		if errors.As(err, &rangeErr) {
			fmt.Fprintf(out, "Index %d is out of range, choose a number between 0 and %d.\n", index, rangeErr.Size-1)
			continue
		}
		if err != nil {
			return err
		}

		fmt.Fprint(out, "\nRecommend for another document? (yes/no): ")
		answer, ok := readLine(in)
		if !ok || !isYes(answer) {
			fmt.Fprintln(out, "\nGoodbye.")
			return nil
		}
	}
}

// showRecommendations prints the selected document followed by its bands.
// Nothing is printed when the index is invalid.
func showRecommendations(ctx context.Context, w io.Writer, index int, opts domain.RecommendOptions) error {
	svc, err := recommendationService()
	if err != nil {
		return err
	}
	set, err := svc.Recommend(ctx, index, opts)
	if err != nil {
		return err
	}

	printSelected(w, index, set.SelectedDocument, previewLength())
	printRecommendations(w, set)
	return nil
}

func startWatch(ctx context.Context) {
	if services.Watcher == nil || services.WatchPath == "" {
		logger.Warn("--watch ignored: no document table to watch")
		return
	}

	go func() {
		err := services.Watcher.Watch(ctx, services.WatchPath, func() {
			corpus, err := services.Corpus.Load(ctx)
			if err != nil {
				logger.Error("reloading corpus: %v", err)
				return
			}
			logger.Info("reloaded %d documents from %s", corpus.Size(), services.WatchPath)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("watching %s: %v", services.WatchPath, err)
		}
	}()
}

func readLine(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

// isYes reports whether answer is "yes" in any case. Anything else ends the session.
func isYes(answer string) bool {
	return strings.EqualFold(answer, "yes")
}
