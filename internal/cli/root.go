// Package cli implements the covpath command tree.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/covpath/internal/config"
	"github.com/katalvlaran/covpath/internal/logging"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Execute builds the command tree and runs it with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// app carries the state shared by every subcommand of one root command.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *logging.Logger
}

// NewRootCmd returns a fresh covpath command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:     "covpath",
		Version: version,
		Short:   "Complete-coverage path planner for occupancy grids",
		Long: `covpath plans a route that visits every free cell of a 2-D occupancy grid.

It sweeps greedily with a configurable heuristic and, whenever the sweep gets
stuck, hops to the nearest unvisited cell with A* before sweeping again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is ./covpath.yaml or $HOME/.config/covpath/covpath.yaml)")
	flags.StringP("orientation", "o", "", "initial heading: up, left, down, right or 0..3")
	flags.String("coverage-heuristic", "", "coverage heuristic: manhattan, chebyshev, horizontal, vertical")
	flags.String("recovery-heuristic", "", "recovery heuristic: manhattan, chebyshev, horizontal, vertical")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("policy", true, "print the policy map")
	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("planner.orientation", flags.Lookup("orientation"))
	_ = a.v.BindPFlag("planner.coverage_heuristic", flags.Lookup("coverage-heuristic"))
	_ = a.v.BindPFlag("planner.recovery_heuristic", flags.Lookup("recovery-heuristic"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("output.policy", flags.Lookup("policy"))

	root.AddCommand(newPlanCmd(a), newSweepCmd(a))
	return root
}

// init loads configuration from defaults, file, environment and flags, in
// increasing precedence, and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	config.SetDefaults(a.v)

	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		a.v.SetConfigName("covpath")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		a.v.AddConfigPath("$HOME/.config/covpath")
		// Read config file if it exists (ignore error if not found)
		_ = a.v.ReadInConfig()
	}

	a.v.SetEnvPrefix("COVPATH")
	// e.g. COVPATH_PLANNER_ORIENTATION for planner.orientation
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.Logging.Level))
	return nil
}
