package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	toolkit "github.com/msto63/ztk/foundation/core/config"
	ztklog "github.com/msto63/ztk/foundation/core/log"
	"github.com/msto63/ztk/foundation/utils/stringx"
	appconfig "github.com/msto63/ztk/pkg/core/config"
	"github.com/msto63/ztk/pkg/core/logging"
)

var (
	cfgFile     string
	toolkitFile string
	logFormat   string
	verbose     bool
)

// session holds what the persistent pre-run set up for one invocation
type session struct {
	app     *appconfig.Config
	store   *toolkit.Store
	logger  *ztklog.Logger
	toolkit string
}

var current *session

var rootCmd = &cobra.Command{
	Use:   "ztk",
	Short: "ZTK - formatting and validation toolkit",
	Long: `ztk exposes the toolkit's text, formatting and validation helpers
on the command line.

Configuration:
  --config   CLI configuration (TOML, default: $ZTK_CONFIG, ./ztk-cli.toml)
  --toolkit  toolkit defaults (TOML or YAML, default: ./ztk.toml, ./ztk.yaml)

Environment variables such as ZTK_CURRENCY_SYMBOL override toolkit files.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. Failed checks have already been printed;
// other errors are reported on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !stderrors.Is(err, errCheckFailed) {
		printError(rootCmd.Name(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "CLI config file")
	rootCmd.PersistentFlags().StringVar(&toolkitFile, "toolkit", "", "toolkit defaults file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console, text, json or logfmt")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// setup loads configuration, installs the logger and builds the toolkit
// store the command runs against
func setup(cmd *cobra.Command, args []string) error {
	var (
		app *appconfig.Config
		err error
	)
	if cfgFile != "" {
		app, err = appconfig.Load(cfgFile)
	} else {
		app, err = appconfig.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level := app.General.LogLevel
	if verbose {
		level = "debug"
	}
	format := app.General.LogFormat
	if logFormat != "" {
		format = logFormat
	}
	logger, err := logging.Install(logging.LoggerConfig{
		Name:   app.General.Name,
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger = logger.WithField("command", cmd.Name())

	store := toolkit.NewStore()
	store.Configure(app.Toolkit)

	path := stringx.FirstNonBlank(toolkitFile, app.General.ToolkitFile)
	if path == "" {
		if found, err := toolkit.FindConfigFile(toolkit.DefaultDiscoveryOptions()); err == nil {
			path = found
		}
	}
	if path != "" {
		partial, err := toolkit.LoadFile(path, toolkit.LoadOptions{EnvPrefix: "ZTK"})
		if err != nil {
			return fmt.Errorf("toolkit file: %w", err)
		}
		store.Configure(partial)
		logger.Debug("toolkit file loaded", ztklog.Fields{"path": path})
	}
	toolkit.SetDefault(store)

	current = &session{app: app, store: store, logger: logger, toolkit: path}
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
