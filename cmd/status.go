package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/anuragpatil2882004-ui/job-traking/internal/jobs"
	"github.com/anuragpatil2882004-ui/job-traking/internal/logger"
	"github.com/anuragpatil2882004-ui/job-traking/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Track application status per job",
}

var statusSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the application status of a job",
	Run: func(cmd *cobra.Command, _ []string) {
		runStatusSet(cmd)
	},
}

var statusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs with a tracked status",
	Run: func(_ *cobra.Command, _ []string) {
		runStatusList()
	},
}

var statusUpdatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "Show recent status changes, newest first",
	Run: func(cmd *cobra.Command, _ []string) {
		runStatusUpdates(cmd)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.AddCommand(statusSetCmd, statusListCmd, statusUpdatesCmd)

	statusSetCmd.Flags().String("job", "", "job id; prompts interactively when omitted")
	statusSetCmd.Flags().String("status", "", "one of: Not Applied, Applied, Rejected, Selected; prompts when omitted")

	statusUpdatesCmd.Flags().IntP("limit", "n", status.DefaultRecentLimit, "maximum number of updates to show")
}

type statusRun struct {
	logger  *zap.Logger
	list    *jobs.Jobs
	tracker *status.Tracker
}

func newStatusRun(ctx context.Context) *statusRun {
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

	return &statusRun{logger: logger, list: list, tracker: status.NewTracker(kv)}
}

func runStatusSet(cmd *cobra.Command) {
	r := newStatusRun(context.Background())

	job := r.pickJob(flagString(cmd, "job"))
	newStatus := r.pickStatus(flagString(cmd, "status"))

	if !r.tracker.Record(*job, newStatus) {
		r.logger.Fatal("status was not persisted",
			zap.String("job_id", string(job.ID)),
		)
	}

	r.logger.Info("status updated",
		zap.String("job_id", string(job.ID)),
		zap.String("job_title", job.Title),
		zap.String("status", string(newStatus)),
	)
}

// pickJob resolves the job from the flag, falling back to an
// interactive selection over the full listing.
func (r *statusRun) pickJob(id string) *jobs.Job {
	if id != "" {
		job := r.list.FindByID(id)
		if job == nil {
			r.logger.Fatal("there is no such job id", zap.String("job_id", id))
		}
		return job
	}

	if r.list.Len() == 0 {
		r.logger.Fatal("no job listings loaded")
	}

	jobPrompt := promptui.Select{
		Label: "Choose a job and press ENTER",
		Items: r.list.Titles(),
		Size:  10,
	}

	idx, _, err := jobPrompt.Run()
	if err != nil {
		r.logger.Fatal("exiting", zap.Error(err))
	}

	return &r.list.Items[idx]
}

func (r *statusRun) pickStatus(raw string) status.Status {
	if raw != "" {
		parsed, err := status.Parse(raw)
		if err != nil {
			r.logger.Fatal("invalid status", zap.Error(err))
		}
		return parsed
	}

	options := status.All()
	items := make([]string, 0, len(options))
	for _, s := range options {
		items = append(items, string(s))
	}

	statusPrompt := promptui.Select{
		Label: "Choose the new status",
		Items: items,
	}

	idx, _, err := statusPrompt.Run()
	if err != nil {
		r.logger.Fatal("exiting", zap.Error(err))
	}

	return options[idx]
}

func runStatusList() {
	r := newStatusRun(context.Background())

	tracked := r.list.Filter(func(j jobs.Job) bool {
		return r.tracker.Get(string(j.ID)) != status.NotApplied
	})

	if len(tracked) == 0 {
		r.logger.Info("no tracked applications yet")
		return
	}

	for _, job := range tracked {
		fmt.Printf("%-12s %s  %s at %s\n", r.tracker.Get(string(job.ID)), job.ID, job.Title, job.Company)
	}
}

func runStatusUpdates(cmd *cobra.Command) {
	r := newStatusRun(context.Background())

	limit, _ := cmd.Flags().GetInt("limit")
	updates := r.tracker.Recent(limit)

	if len(updates) == 0 {
		r.logger.Info("no status updates recorded yet")
		return
	}

	for _, u := range updates {
		fmt.Printf("%s  %-10s %s at %s\n", u.DateChanged, u.Status, u.Title, u.Company)
	}
}
