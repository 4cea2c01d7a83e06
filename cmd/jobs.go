package cmd

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/anuragpatil2882004-ui/job-traking/internal/filtering"
	"github.com/anuragpatil2882004-ui/job-traking/internal/jobs"
	"github.com/anuragpatil2882004-ui/job-traking/internal/logger"
	"github.com/anuragpatil2882004-ui/job-traking/internal/matching"
	"github.com/anuragpatil2882004-ui/job-traking/internal/preferences"
	"github.com/anuragpatil2882004-ui/job-traking/internal/saved"
	"github.com/anuragpatil2882004-ui/job-traking/internal/status"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List job listings scored against your preferences",
	Run: func(cmd *cobra.Command, _ []string) {
		runJobs(cmd)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)

	jobsCmd.Flags().BoolP("all", "a", false, "ignore the minimum match score threshold")
	jobsCmd.Flags().String("location", "", "keep jobs with this exact location")
	jobsCmd.Flags().String("mode", "", "keep jobs with this exact work mode")
	jobsCmd.Flags().StringP("query", "q", "", "keep jobs whose title or company contains this text")
	jobsCmd.Flags().Bool("saved", false, "keep bookmarked jobs only")
	jobsCmd.Flags().String("status", "", "keep jobs in this application status")
	jobsCmd.Flags().String("sort", "score", "sort order: score or recent")
}

func runJobs(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	ctx := context.Background()

	kv, err := openStore(ctx, config)
	if err != nil {
		logger.Fatal("opening the store", zap.Error(err))
	}

	list, err := loadJobs(config)
	if err != nil {
		logger.Fatal("loading the job listings", zap.Error(err))
	}

	logger.Debug("loaded job listings", zap.Int("count", list.Len()))

	prefs := preferences.NewService(kv).Get()
	if prefs == nil {
		logger.Info("no preferences stored yet; every job scores 0",
			zap.String("hint", "run 'jobtracker prefs set' to configure matching"),
		)
	}

	scored := matching.ScoreAll(list, prefs)

	threshold := 0
	if prefs != nil && !flagBool(cmd, "all") {
		threshold = prefs.MinMatchScore
	}

	steps := []filtering.Filter{
		filtering.NewThreshold(threshold),
		filtering.NewLocation(flagString(cmd, "location")),
		filtering.NewMode(flagString(cmd, "mode")),
		filtering.NewQuery(flagString(cmd, "query")),
	}

	if flagBool(cmd, "saved") {
		steps = append(steps, filtering.NewSavedOnly(saved.NewList(kv)))
	}

	if want := flagString(cmd, "status"); want != "" {
		parsed, err := status.Parse(want)
		if err != nil {
			logger.Fatal("invalid status filter", zap.Error(err))
		}
		steps = append(steps, filtering.NewStatus(status.NewTracker(kv), parsed))
	}

	filtered := filtering.Run(logger, steps, scored)
	sortJobs(filtered, flagString(cmd, "sort"))

	if len(filtered) == 0 {
		logger.Info("no jobs matched", zap.Int("listings", list.Len()))
		return
	}

	tracker := status.NewTracker(kv)
	bookmarks := saved.NewList(kv)

	for _, job := range filtered {
		printJob(job, tracker, bookmarks)
	}
}

// sortJobs orders by match score descending (recency breaking ties) or,
// for "recent", by listing age ascending.
func sortJobs(items []jobs.Job, order string) {
	switch order {
	case "recent":
		sort.SliceStable(items, func(i, k int) bool {
			return items[i].PostedDays() < items[k].PostedDays()
		})
	default:
		sort.SliceStable(items, func(i, k int) bool {
			if items[i].MatchScore != items[k].MatchScore {
				return items[i].MatchScore > items[k].MatchScore
			}
			return items[i].PostedDays() < items[k].PostedDays()
		})
	}
}

func printJob(job jobs.Job, tracker *status.Tracker, bookmarks *saved.List) {
	marker := " "
	if bookmarks.IsSaved(string(job.ID)) {
		marker = "*"
	}

	fmt.Printf("%s [%3d%%] %s  %s at %s (%s)\n", marker, job.MatchScore, job.ID, job.Title, job.Company, job.Meta())
	fmt.Printf("        %s | %s | %s\n", job.PostedLabel(), job.Source, tracker.Get(string(job.ID)))
	if job.SalaryRange != "" {
		fmt.Printf("        %s\n", job.SalaryRange)
	}
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}
