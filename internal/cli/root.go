// Package cli implements the career-vault CLI, the reference review shell
// driving the admission pipeline and the record store.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/career-vault/internal/admit"
	"github.com/rcliao/career-vault/internal/config"
	"github.com/rcliao/career-vault/internal/logger"
	"github.com/rcliao/career-vault/internal/store"
)

var (
	cfgPath  string
	dataPath string

	cfg *config.Config
	log *zap.Logger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "career-vault",
	Short: "Validated local storage for career history",
	Long: "A local, file-backed record store for career data. Every new entry " +
		"passes schema validation, consistency checks against your job history, " +
		"and an authenticity scan before you approve it.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if dataPath != "" {
			cfg.Data.Path = dataPath
		}
		log = logger.New(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default: ~/.career-vault/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Career data path (default: ~/.career-vault/career_data.json)")
}

func openStore() (*store.FileStore, error) {
	return store.New(store.Options{
		Path:           cfg.Data.Path,
		BackupEnabled:  cfg.Data.BackupEnabled,
		CacheEnabled:   cfg.Data.CacheEnabled,
		CacheTTL:       cfg.Data.CacheTTL,
		Validate:       cfg.ValidateOptions(time.Now()),
		DefaultContact: cfg.DefaultContact(),
		Logger:         log,
	})
}

func newPipeline(s store.Store) *admit.Pipeline {
	return admit.New(s, admit.Options{
		Validate:     cfg.ValidateOptions(time.Now()),
		Consistency:  cfg.ConsistencyOptions(time.Now()),
		Authenticity: cfg.AuthenticityOptions(),
		Logger:       log,
	})
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
