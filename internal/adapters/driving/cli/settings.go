package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docrec/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change corpus, vectoriser and recommendation settings.

Settings are stored in ~/.docrec/config.toml unless --config is given.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting. Lists are comma separated.

Run 'docrec settings keys' to see every key.`,
	Example: `  docrec settings set recommend.top_n 6
  docrec settings set vectorizer.analysers tokenise,lowercase,stopwords
  docrec settings set corpus.path /data/docs.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := settingsService()
		if err != nil {
			return err
		}
		for _, key := range svc.Keys() {
			cmd.Println(key)
		}
		return nil
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where settings are stored",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := settingsService()
		if err != nil {
			return err
		}
		cmd.Println(svc.Path())
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func settingsService() (driving.SettingsService, error) {
	if services == nil || services.Settings == nil {
		return nil, errNoSettings
	}
	return services.Settings, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	c := settings.Corpus
	cmd.Println("[Corpus]")
	cmd.Printf("  Source: %s\n", c.Source.Description())
	cmd.Printf("  Path: %s\n", c.Path)
	cmd.Printf("  Snippet Path: %s\n", orDefault(c.SnippetPath, "(same table)"))
	cmd.Printf("  Columns: id=%s type=%s text=%s size=%s path=%s\n",
		c.IDColumn, c.TypeColumn, c.TextColumn, c.SizeColumn, c.PathColumn)
	cmd.Println()

	v := settings.Vectorizer
	cmd.Println("[Vectorizer]")
	cmd.Printf("  Analysers: %s\n", strings.Join(v.Analysers, ", "))
	cmd.Printf("  Stop Words: %s\n", v.StopWords)
	cmd.Printf("  N-grams: %d-%d\n", v.NgramMin, v.NgramMax)
	cmd.Printf("  Document Frequency: min %d, max %g\n", v.MinDF, v.MaxDF)
	cmd.Println()

	r := settings.Recommend
	cmd.Println("[Recommend]")
	cmd.Printf("  Bands: top %d, medium %d, diverse %d\n", r.TopN, r.MediumN, r.DiverseN)
	cmd.Printf("  Medium Slice: ranks N/%d to N/%d\n", r.MediumStartDivisor, r.MediumEndDivisor)
	cmd.Printf("  Diverse Shortlist: %dx\n", r.DiverseShortlistFactor)
	cmd.Printf("  Snippet Length: %d\n", r.SnippetLength)
	cmd.Printf("  Preview Length: %d\n", r.PreviewLength)
	if r.Seed == 0 {
		cmd.Println("  Seed: (random)")
	} else {
		cmd.Printf("  Seed: %d\n", r.Seed)
	}
	cmd.Println()

	cmd.Println("[Cache]")
	if settings.Cache.Enabled {
		cmd.Println("  Enabled: yes")
	} else {
		cmd.Println("  Enabled: no")
	}
	cmd.Printf("  Directory: %s\n", orDefault(settings.Cache.Dir, "~/.docrec/data"))
	cmd.Println()

	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'docrec settings set <key> <value>' to fix it.")
	} else {
		cmd.Println("Configuration is valid.")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := svc.SetValue(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
