package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/a11yref/a11yref/internal/assets"
	"github.com/a11yref/a11yref/internal/buildinfo"
	"github.com/a11yref/a11yref/internal/logging"
)

// app carries the configuration shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "a11yref",
		Short: "Search the accessibility pattern reference",
		Long: `a11yref searches a catalog of accessibility chapters, pattern subsections and principles.

Configuration is read from --config, A11YREF_CONFIG_FILE or .a11yref.yaml, and every
setting can be overridden with an A11YREF_ environment variable (e.g. A11YREF_CATALOG).`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .a11yref.yaml, can also use A11YREF_CONFIG_FILE)")
	flags.String("catalog", "", "catalog JSON file to use instead of the embedded catalog")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("catalog", flags.Lookup("catalog"))
	_ = a.v.BindPFlag("log-level", flags.Lookup("log-level"))

	root.AddCommand(
		a.newSearchCmd(),
		a.newShowCmd(),
		a.newListCmd(),
		a.newBrowseCmd(),
	)
	return root
}

// initConfig resolves the config file: --config, then A11YREF_CONFIG_FILE, then .a11yref.yaml in the
// working directory. A missing default file is not an error.
func (a *app) initConfig() error {
	explicit := a.cfgFile
	if explicit == "" {
		explicit = os.Getenv("A11YREF_CONFIG_FILE")
	}

	if explicit != "" {
		a.v.SetConfigFile(explicit)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".a11yref")
	}

	a.v.SetEnvPrefix("A11YREF")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func (a *app) logger() *slog.Logger {
	return logging.New(os.Stderr, logging.ParseLevel(a.v.GetString("log-level")))
}

func (a *app) load() (*assets.Assets, error) {
	return assets.Load(a.v.GetString("catalog"), a.logger())
}
