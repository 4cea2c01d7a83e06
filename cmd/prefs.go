package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/anuragpatil2882004-ui/job-traking/internal/logger"
	"github.com/anuragpatil2882004-ui/job-traking/internal/preferences"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or update your matching preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored preference profile",
	Run: func(_ *cobra.Command, _ []string) {
		runPrefsShow()
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the preference profile",
	Run: func(cmd *cobra.Command, _ []string) {
		runPrefsSet(cmd)
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsShowCmd, prefsSetCmd)

	prefsSetCmd.Flags().String("keywords", "", "comma-separated role keywords, e.g. 'engineer, backend'")
	prefsSetCmd.Flags().String("skills", "", "comma-separated skills, e.g. 'go, sql'")
	prefsSetCmd.Flags().String("locations", "", "comma-separated preferred locations (exact match)")
	prefsSetCmd.Flags().String("modes", "", "comma-separated preferred work modes (exact match)")
	prefsSetCmd.Flags().String("experience", "", "preferred experience level (exact match, empty for no preference)")
	prefsSetCmd.Flags().Int("min-score", -1, "minimum match score threshold, 0-100")
}

func newPrefsService(ctx context.Context) (*preferences.Service, *zap.Logger) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	kv, err := openStore(ctx, config)
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}

	return preferences.NewService(kv), logger
}

func runPrefsShow() {
	svc, logger := newPrefsService(context.Background())

	prefs := svc.Get()
	if prefs == nil {
		logger.Info("no preferences stored yet",
			zap.String("hint", "run 'jobtracker prefs set' to configure matching"),
		)
		return
	}

	fmt.Printf("Role keywords:       %s\n", prefs.RoleKeywords)
	fmt.Printf("Skills:              %s\n", prefs.Skills)
	fmt.Printf("Preferred locations: %s\n", strings.Join(prefs.PreferredLocations, ", "))
	fmt.Printf("Preferred modes:     %s\n", strings.Join(prefs.PreferredMode, ", "))
	fmt.Printf("Experience level:    %s\n", prefs.ExperienceLevel)
	fmt.Printf("Min match score:     %d\n", prefs.MinMatchScore)
}

func runPrefsSet(cmd *cobra.Command) {
	svc, logger := newPrefsService(context.Background())

	prefs := svc.Get()
	if prefs == nil {
		prefs = &preferences.Profile{MinMatchScore: preferences.DefaultMinMatchScore}
	}

	if cmd.Flags().Changed("keywords") {
		prefs.RoleKeywords = flagString(cmd, "keywords")
	}
	if cmd.Flags().Changed("skills") {
		prefs.Skills = flagString(cmd, "skills")
	}
	if cmd.Flags().Changed("locations") {
		prefs.PreferredLocations = splitList(flagString(cmd, "locations"))
	}
	if cmd.Flags().Changed("modes") {
		prefs.PreferredMode = splitList(flagString(cmd, "modes"))
	}
	if cmd.Flags().Changed("experience") {
		prefs.ExperienceLevel = flagString(cmd, "experience")
	}
	if cmd.Flags().Changed("min-score") {
		min, _ := cmd.Flags().GetInt("min-score")
		prefs.MinMatchScore = min
	}

	if !svc.Set(*prefs) {
		logger.Fatal("preferences were not persisted",
			zap.String("hint", "check that the store location is writable"),
		)
	}

	logger.Info("preferences saved")
}

// splitList splits comma-separated flag input into trimmed entries,
// keeping their original case since profile lists match exactly.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
