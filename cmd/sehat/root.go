// ABOUTME: Root Cobra command for the sehat CLI.
// ABOUTME: Handles config, logger, and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sehatsense/sehat/internal/config"
	"github.com/sehatsense/sehat/internal/gateway"
	"github.com/sehatsense/sehat/internal/models"
	"github.com/sehatsense/sehat/internal/store"
	"github.com/sehatsense/sehat/pkg/logger"
)

var (
	cfg *config.Config
	log *logger.Logger
	st  *store.Store

	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "sehat",
	Short: "Personal AI health coach and food diary",
	Long: `Sehat is a CLI health companion. It keeps your health profile and food
diary locally and uses a generative AI service for nutrition analysis,
meal and drink suggestions, blood report extraction, and coaching chat.

QUICK START:

  $ sehat setup                          # Create your health profile
  $ sehat log "2 rotis with dal"         # Analyze and log a meal
  $ sehat diary                          # See your food diary
  $ sehat status                         # Profile summary and today's meals

REPORTS:

  $ sehat report blood_test.jpg          # Extract lab values from a report
                                         # and flag matching conditions

SUGGESTIONS & CHAT:

  $ sehat suggest meals --cuisine "South Indian"
  $ sehat suggest drinks --time morning
  $ sehat chat                           # Interactive coaching session

CONFIGURATION:

  The AI service key is read from SEHAT_AI_APIKEY or OPENAI_API_KEY,
  or from sehat.yaml in the current directory or ~/.config/sehat.

DATA STORAGE:

  All state lives in a local key-value store at ~/.local/share/sehat.
  Replacing your profile with 'sehat setup' starts a fresh diary.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if cfg.Debug {
			log = logger.NewDevelopment()
		} else {
			log = logger.New()
		}

		dir := cfg.DataDir
		if flagDataDir != "" {
			dir = config.ExpandPath(flagDataDir)
		}
		st, err = store.Open(dir, log)
		if err != nil {
			return fmt.Errorf("failed to open data store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
}

// newGateway builds the AI gateway, failing when no key is configured.
func newGateway() (*gateway.Gateway, error) {
	if cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("no AI API key configured; set SEHAT_AI_APIKEY or OPENAI_API_KEY")
	}
	return gateway.New(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.VisionModel, log), nil
}

// requireProfile fetches the profile or explains how to create one.
func requireProfile() (*models.UserProfile, error) {
	p := st.Profile()
	if p == nil {
		return nil, fmt.Errorf("no profile found; run 'sehat setup' first")
	}
	return p, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "override the data directory")
}
