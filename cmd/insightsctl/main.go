package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"moodjournal/internal/insights"
	"moodjournal/internal/journal"
	"moodjournal/pkg/config"
	"moodjournal/pkg/db"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose		bool
	entriesFile	string
	timezone	string
	lowThreshold	float64
	highThreshold	float64

	currentMood		string
	recentActivities	[]string
	at			string

	importUser	string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:		"insightsctl",
	Short:		"Run the journal insights pipelines on entry files",
	SilenceUsage:	true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logrus.SetOutput(cmd.ErrOrStderr())
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&entriesFile, "file", "f", "", "YAML or JSON file with journal entries")
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "UTC", "IANA time zone for weeks and hours of day")
	rootCmd.PersistentFlags().Float64Var(&lowThreshold, "low-wellbeing", insights.DefaultLowWellbeingThreshold, "Scores below this count as low wellbeing")
	rootCmd.PersistentFlags().Float64Var(&highThreshold, "high-wellbeing", insights.DefaultHighWellbeingThreshold, "Scores at or above this count as high wellbeing")

	promptsCmd.Flags().StringVarP(&currentMood, "mood", "m", "", "Current mood")
	promptsCmd.Flags().StringSliceVarP(&recentActivities, "activities", "a", nil, "Recent activities, comma separated")
	promptsCmd.Flags().StringVar(&at, "at", "", "RFC 3339 time to select prompts for (default now)")

	importCmd.Flags().StringVarP(&importUser, "user", "u", "", "User id for entries that have none")

	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(importCmd)
}

var patternsCmd = &cobra.Command{
	Use:	"patterns",
	Short:	"Analyze mood patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, entries, err := loadEngineAndEntries()
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), engine.AnalyzePatterns(entries))
	},
}

var predictCmd = &cobra.Command{
	Use:	"predict",
	Short:	"Predict the upcoming mood",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, entries, err := loadEngineAndEntries()
		if err != nil {
			return err
		}
		prediction, suggestions := engine.PredictMood(entries)
		return writeJSON(cmd.OutOrStdout(), insights.PredictionReport{Prediction: prediction, Suggestions: suggestions})
	},
}

var promptsCmd = &cobra.Command{
	Use:	"prompts",
	Short:	"Select journaling prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, entries, err := loadEngineAndEntries()
		if err != nil {
			return err
		}

		now := time.Now()
		if at != "" {
			now, err = time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("parsing --at: %w", err)
			}
		}

		prompts := engine.SelectPrompts(currentMood, recentActivities, entries, now)
		return writeJSON(cmd.OutOrStdout(), prompts)
	},
}

var importCmd = &cobra.Command{
	Use:	"import",
	Short:	"Import entries into the configured database",
	Long:	"Import reads --file and inserts its entries into the database selected by STORAGE_BACKEND (postgres or sqlite).",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries()
		if err != nil {
			return err
		}

		cfg := config.LoadConfig()
		database, err := db.Open(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		n, err := journal.Import(cmd.Context(), journal.NewRepository(database), entries, importUser)
		if err != nil {
			return fmt.Errorf("imported %d of %d entries: %w", n, len(entries), err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries\n", n)
		return nil
	},
}

func loadEntries() ([]journal.Entry, error) {
	if entriesFile == "" {
		return nil, fmt.Errorf("--file is required")
	}
	entries, err := journal.LoadEntriesFile(entriesFile)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Loaded %d entries from %s", len(entries), entriesFile)
	return entries, nil
}

func loadEngineAndEntries() (*insights.Engine, []journal.Entry, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("unknown time zone %q: %w", timezone, err)
	}

	entries, err := loadEntries()
	if err != nil {
		return nil, nil, err
	}

	engine := insights.NewEngine(insights.Options{
		Location:		loc,
		LowWellbeingThreshold:	lowThreshold,
		HighWellbeingThreshold:	highThreshold,
	})
	return engine, entries, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
