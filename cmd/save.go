package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/anuragpatil2882004-ui/job-traking/internal/jobs"
	"github.com/anuragpatil2882004-ui/job-traking/internal/logger"
	"github.com/anuragpatil2882004-ui/job-traking/internal/saved"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Bookmark jobs for later",
}

var saveToggleCmd = &cobra.Command{
	Use:   "toggle JOB_ID",
	Short: "Save a job, or unsave it when already saved",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		runSaveToggle(args[0])
	},
}

var saveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved jobs",
	Run: func(_ *cobra.Command, _ []string) {
		runSaveList()
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.AddCommand(saveToggleCmd, saveListCmd)
}

func newSaveRun(ctx context.Context) (*saved.List, *jobs.Jobs, *zap.Logger) {
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

	list, err := loadJobs(config)
	if err != nil {
		logger.Fatal("loading the job listings", zap.Error(err))
	}

	return saved.NewList(kv), list, logger
}

func runSaveToggle(id string) {
	bookmarks, list, logger := newSaveRun(context.Background())

	job := list.FindByID(id)
	if job == nil {
		logger.Fatal("there is no such job id", zap.String("job_id", id))
	}

	bookmarks.Toggle(id)

	action := "saved"
	if !bookmarks.IsSaved(id) {
		action = "unsaved"
	}
	logger.Info("bookmark updated",
		zap.String("job_id", id),
		zap.String("job_title", job.Title),
		zap.String("action", action),
	)
}

func runSaveList() {
	bookmarks, list, logger := newSaveRun(context.Background())

	ids := bookmarks.IDs()
	if len(ids) == 0 {
		logger.Info("no saved jobs yet",
			zap.String("hint", "run 'jobtracker save toggle JOB_ID' to bookmark one"),
		)
		return
	}

	for _, id := range ids {
		job := list.FindByID(id)
		if job == nil {
			// Saved id no longer present in the feed; keep it visible.
			fmt.Printf("%s  (not in the current listings)\n", id)
			continue
		}
		fmt.Printf("%s  %s at %s (%s)\n", job.ID, job.Title, job.Company, job.Meta())
	}
}
