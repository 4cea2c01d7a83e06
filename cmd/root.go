package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anuragpatil2882004-ui/job-traking/internal/jobs"
	"github.com/anuragpatil2882004-ui/job-traking/internal/store"
)

const (
	app = "jobtracker"

	defaultJobsFile  = "jobs.json"
	defaultStoreFile = "jobtracker.store.json"
	// Digest schedule mirrors the original 9AM daily digest.
	defaultDigestSchedule = "0 9 * * *"
)

type Config struct {
	JobsFile string        `mapstructure:"jobs-file"`
	Store    *StoreConfig  `mapstructure:"store"`
	Digest   *DigestConfig `mapstructure:"digest"`
}

type StoreConfig struct {
	Path     string `mapstructure:"path"`
	RedisURL string `mapstructure:"redis-url"`
}

type DigestConfig struct {
	Schedule string `mapstructure:"schedule"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobtracker scores job listings against your preferences, tracks applications and builds a daily top-10 digest",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env file is optional; it usually carries REDIS_URL only.
	_ = godotenv.Load()

	if err := viper.BindEnv("store.redis-url", "REDIS_URL"); err != nil {
		log.Fatalf("binding REDIS_URL environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobtracker.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// Every setting has a default, so a missing config file is fine. A
	// present but unparseable one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && (errors.As(err, &notFound) || os.IsNotExist(err)) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.JobsFile == "" {
		config.JobsFile = defaultJobsFile
	}
	if config.Store == nil {
		config.Store = &StoreConfig{}
	}
	if config.Store.Path == "" {
		config.Store.Path = defaultStoreFile
	}
	if redisURL := viper.GetString("store.redis-url"); redisURL != "" {
		config.Store.RedisURL = redisURL
	}
	if config.Digest == nil {
		config.Digest = &DigestConfig{}
	}
	if config.Digest.Schedule == "" {
		config.Digest.Schedule = defaultDigestSchedule
	}

	return config, nil
}

// openStore picks the store backend: Redis when a URL is configured,
// the local state file otherwise.
func openStore(ctx context.Context, config *Config) (store.Store, error) {
	if config.Store.RedisURL != "" {
		return store.NewRedis(ctx, config.Store.RedisURL)
	}

	path := config.Store.Path
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}
	return store.NewFile(path), nil
}

// loadJobs reads the static job listing feed.
func loadJobs(config *Config) (*jobs.Jobs, error) {
	return jobs.Load(config.JobsFile)
}
