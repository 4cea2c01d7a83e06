package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/anuragpatil2882004-ui/job-traking/internal/digest"
	"github.com/anuragpatil2882004-ui/job-traking/internal/logger"
	"github.com/anuragpatil2882004-ui/job-traking/internal/preferences"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Work with the daily top-10 digest",
}

var digestShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print today's digest, generating and caching it on first use",
	Run: func(_ *cobra.Command, _ []string) {
		runDigestShow()
	},
}

var digestExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write today's digest as plain text, for clipboard or an email draft",
	Run: func(cmd *cobra.Command, _ []string) {
		runDigestExport(cmd)
	},
}

var digestWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stay running and emit the digest on its daily schedule",
	Run: func(_ *cobra.Command, _ []string) {
		runDigestWatch()
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)
	digestCmd.AddCommand(digestShowCmd, digestExportCmd, digestWatchCmd)

	digestExportCmd.Flags().StringP("out", "o", "", "output file (default is stdout)")
}

type digestRun struct {
	logger *zap.Logger
	engine *digest.Engine
}

func newDigestRun(ctx context.Context) *digestRun {
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

	return &digestRun{
		logger: logger,
		engine: digest.NewEngine(kv, list, preferences.NewService(kv)),
	}
}

// render produces today's digest text, or "" when preferences are not
// configured yet. Missing preferences are guidance, never an error.
func (r *digestRun) render() (string, bool) {
	jobs, fromCache, err := r.engine.GetOrCreate()
	if err != nil {
		if errors.Is(err, digest.ErrNoPreferences) {
			r.logger.Info("digest is not available yet",
				zap.String("hint", "run 'jobtracker prefs set' to configure matching first"),
			)
			return "", false
		}
		r.logger.Fatal("building the digest", zap.Error(err))
	}

	r.logger.Debug("digest ready",
		zap.Int("jobs", len(jobs)),
		zap.Bool("from_cache", fromCache),
	)

	return digest.FormatPlainText(jobs, digest.DateLabel(r.engine.Now())), true
}

func runDigestShow() {
	r := newDigestRun(context.Background())
	if text, ok := r.render(); ok {
		fmt.Println(text)
	}
}

func runDigestExport(cmd *cobra.Command) {
	r := newDigestRun(context.Background())

	text, ok := r.render()
	if !ok {
		return
	}

	out := flagString(cmd, "out")
	if out == "" {
		fmt.Println(text)
		return
	}

	if err := os.WriteFile(out, []byte(text+"\n"), 0o644); err != nil {
		r.logger.Fatal("writing the digest file", zap.Error(err))
	}
	r.logger.Info("digest exported", zap.String("path", out))
}

func runDigestWatch() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := newDigestRun(ctx)

	config, err := getConfig()
	if err != nil {
		r.logger.Fatal("getting a config", zap.Error(err))
	}

	emit := func() {
		if text, ok := r.render(); ok {
			fmt.Println(text)
		}
	}

	c := cron.New()
	if _, err := c.AddFunc(config.Digest.Schedule, emit); err != nil {
		r.logger.Fatal("scheduling the digest", zap.Error(err))
	}

	c.Start()
	r.logger.Info("digest watch started", zap.String("schedule", config.Digest.Schedule))

	// Emit once on startup so the first digest does not wait a day.
	emit()

	<-ctx.Done()
	c.Stop()
	r.logger.Info("digest watch stopped")
}
