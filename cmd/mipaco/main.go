package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/mipaco/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	verbose    int

	cfg *config.Config
	log commonlog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "mipaco",
		Short:        "Parse text with EBNF grammars compiled to parser combinators",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default $"+config.EnvVar+" or ./"+config.DefaultFile+")")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Discover(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity+a.verbose, path)
	a.log = commonlog.GetLogger("mipaco.cli")

	if cfg.Source != "" {
		a.log.Infof("using configuration %s", cfg.Source)
	}
	return nil
}
