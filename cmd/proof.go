package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/anuragpatil2882004-ui/job-traking/internal/logger"
	"github.com/anuragpatil2882004-ui/job-traking/internal/proof"
)

var proofCmd = &cobra.Command{
	Use:   "proof",
	Short: "Manage the project artifact links required for shipping",
}

var proofShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored artifact links",
	Run: func(_ *cobra.Command, _ []string) {
		runProofShow()
	},
}

var proofSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store artifact links",
	Run: func(cmd *cobra.Command, _ []string) {
		runProofSet(cmd)
	},
}

func init() {
	rootCmd.AddCommand(proofCmd)
	proofCmd.AddCommand(proofShowCmd, proofSetCmd)

	proofSetCmd.Flags().String("lovable", "", "builder project link")
	proofSetCmd.Flags().String("github", "", "GitHub repository link")
	proofSetCmd.Flags().String("deployed", "", "deployed application URL")
}

func newProofStore(ctx context.Context) (*proof.Store, *zap.Logger) {
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

	return proof.NewStore(kv), logger
}

func runProofShow() {
	store, _ := newProofStore(context.Background())

	links := store.Get()
	fmt.Printf("Builder project: %s\n", orUnset(links.LovableLink))
	fmt.Printf("GitHub repo:     %s\n", orUnset(links.GithubLink))
	fmt.Printf("Deployed URL:    %s\n", orUnset(links.DeployedURL))

	if store.AllProvided() {
		fmt.Println("All proof links provided.")
	}
}

func runProofSet(cmd *cobra.Command) {
	store, logger := newProofStore(context.Background())

	links := store.Get()
	if cmd.Flags().Changed("lovable") {
		links.LovableLink = flagString(cmd, "lovable")
	}
	if cmd.Flags().Changed("github") {
		links.GithubLink = flagString(cmd, "github")
	}
	if cmd.Flags().Changed("deployed") {
		links.DeployedURL = flagString(cmd, "deployed")
	}

	for name, link := range map[string]string{
		"lovable":  links.LovableLink,
		"github":   links.GithubLink,
		"deployed": links.DeployedURL,
	} {
		if link != "" && !proof.IsValidURL(link) {
			logger.Fatal("link is not a valid http(s) URL",
				zap.String("link", name),
				zap.String("value", link),
			)
		}
	}

	if !store.Set(links) {
		logger.Fatal("proof links were not persisted")
	}
	logger.Info("proof links saved")
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
