package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docrec/internal/adapters/driving/tui"
)

// isTerminal reports whether the process is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

var errNotTerminal = errors.New("the TUI needs an interactive terminal; use 'docrec interactive' or 'docrec recommend' instead")

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the terminal user interface.

Pick a document from the list, or type its index, to see the highly similar,
medium similarity and diverse documents side by side.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Recommend
  /        - Type a document index
  r        - Re-roll the sampled groups
  Tab      - Switch between index and results
  Esc      - Back
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !isTerminal() {
		return errNotTerminal
	}
	if services == nil {
		return errNoRecommend
	}

	app, err := tui.NewApp(tui.NewPorts(services.Recommend, services.Corpus))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(commandContext(cmd)).WithPreviewLength(previewLength())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
