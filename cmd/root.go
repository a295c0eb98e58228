package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkmigration/mkmigration/internal/config"
	"github.com/mkmigration/mkmigration/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	log     zerolog.Logger

	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mkmigration <migration_name> [--down]",
	Short: "Scaffold the next numbered SQL migration",
	Long: `mkmigration creates an empty, sequentially numbered SQL migration in
` + config.DefaultMigrationsDir + `.

The next index is one more than the highest index among existing up files.

Migration file naming convention:
  <NNNN>_<name>.up.sql      Up migration (always created)
  <NNNN>_<name>.down.sql    Down migration (created with --down)

Names are lowercased and every character outside [a-z0-9_] becomes "_".
Files that already exist are reported and left untouched.`,
	Version:       version,
	Args:          nameArg,
	RunE:          runCreate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Usage errors also print the usage text.
func Execute() error {
	err := rootCmd.Execute()

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(rootCmd.ErrOrStderr(), rootCmd.UsageString())
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./mkmigration.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("down", false, "also create the down migration file")
	rootCmd.Flags().String("format", config.FormatText, "output format (text, json)")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	rootCmd.SetVersionTemplate(fmt.Sprintf("mkmigration %s (commit: %s, built: %s)\n", version, commit, date))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mkmigration")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.mkmigration")
		viper.AddConfigPath("/etc/mkmigration")
	}

	viper.SetEnvPrefix("MKMIGRATION")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

func initLogger(level string, w io.Writer) {
	log = logging.New(level, w)
}

func loadConfig(logOutput io.Writer) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	initLogger(cfg.LogLevel, logOutput)
	return nil
}
