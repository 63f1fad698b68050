package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwconfig "github.com/msto63/mdwx/foundation/core/config"
	mdwerror "github.com/msto63/mdwx/foundation/core/error"
	mdwerrors "github.com/msto63/mdwx/foundation/core/errors"
	mdwlog "github.com/msto63/mdwx/foundation/core/log"
	mdwfilex "github.com/msto63/mdwx/foundation/utils/filex"
	mdwstringx "github.com/msto63/mdwx/foundation/utils/stringx"
)

// Configuration keys
const (
	keyConvention  = "casex.convention"
	keyLogLevel    = "log.level"
	keyLogFormat   = "log.format"
	keyOutputStyle = "output.style"

	envPrefix = "casex"
)

var configDefaults = map[string]interface{}{
	keyConvention:  string(mdwstringx.ConventionCamel),
	keyLogLevel:    "warn",
	keyLogFormat:   "text",
	keyOutputStyle: "pretty",
}

// app holds the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   int
	logFormat string

	config        *mdwconfig.Config
	logger        *mdwlog.Logger
	correlationID string
}

// NewRootCmd builds the casex command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "casex",
		Short: "Converts text into identifier naming conventions",
		Long: `casex converts free text into identifier naming conventions.

Words are runs of letters and digits; everything else separates words
and is dropped. Text is taken from the arguments or, without arguments,
line by line from stdin.

Conventions:
  camel            thisIsASentence
  pascal           ThisIsASentence
  snake            this_is_a_sentence
  screaming-snake  THIS_IS_A_SENTENCE
  kebab            this-is-a-sentence
  title            This Is A Sentence`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          unknownCommand,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: casex.toml/.yaml in ., the user config dir or next to the binary)")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "verbose output (-vv also traces every conversion)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json, text, console or logfmt")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, "flags", err)
	})

	rootCmd.AddCommand(newConventionCmds(a)...)
	rootCmd.AddCommand(
		newConvertCmd(a),
		newAllCmd(a),
		newColumnsCmd(a),
		newLiveCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs casex with os.Args and reports a failure on stderr
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.config = cfg

	level, err := mdwlog.ParseLevel(cfg.GetString(keyLogLevel))
	if err != nil {
		return invalidSetting(keyLogLevel, err)
	}
	switch {
	case a.verbose > 1:
		level = mdwlog.LevelTrace
	case a.verbose == 1:
		level = mdwlog.LevelDebug
	}

	format, err := mdwlog.ParseFormat(mdwstringx.FirstNonBlank(a.logFormat, cfg.GetString(keyLogFormat)))
	if err != nil {
		return invalidSetting(keyLogFormat, err)
	}

	a.correlationID = uuid.NewString()
	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "casex",
	}).WithCorrelationID(a.correlationID).WithFields(mdwlog.Fields{
		"command": cmd.CommandPath(),
	})

	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"source": cfg.String(),
	})
	return nil
}

func (a *app) loadConfig() (*mdwconfig.Config, error) {
	if mdwstringx.IsNotBlank(a.cfgFile) {
		return mdwconfig.LoadWithOptions(a.cfgFile, mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  configDefaults,
		})
	}

	return mdwconfig.Discover(mdwconfig.DiscoveryOptions{
		Paths:     configSearchPaths(),
		Filenames: []string{"casex"},
		EnvPrefix: envPrefix,
		Defaults:  configDefaults,
	})
}

func configSearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "casex"))
	}
	if dir, err := mdwfilex.ExecutableDir(); err == nil {
		paths = append(paths, dir)
	}
	return paths
}

func (a *app) plainOutput(plainFlag bool) bool {
	return plainFlag || a.config.GetString(keyOutputStyle) == "plain"
}

func invalidSetting(key string, cause error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCasex).
		Operation("setup").
		Messagef("invalid setting %s", key).
		Code(mdwerror.CodeInvalidConfig).
		Cause(cause).
		Detail("key", key).
		Build()
}

// unknownCommand rejects positional arguments to the root command, which
// only occur when no subcommand matched.
func unknownCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	cause := fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		cause = fmt.Errorf("%w, did you mean %q?", cause, suggestions[0])
	}
	return usageError(cmd, "command", cause)
}

// usageError marks a command line mistake so that casex exits with status 2
func usageError(cmd *cobra.Command, argument string, cause error) error {
	return mdwerrors.InvalidArgument(mdwerrors.ModuleCasex, cmd.Name(), argument, cause)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
