// Package hop wires the bookmark program to the command line.
package hop

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/arthur-debert/hop/internal/version"
	"github.com/arthur-debert/hop/pkg/config"
	core "github.com/arthur-debert/hop/pkg/hop"
	"github.com/arthur-debert/hop/pkg/logging"
	"github.com/arthur-debert/hop/pkg/paths"
	"github.com/arthur-debert/hop/pkg/system"
	"github.com/arthur-debert/hop/pkg/topics"
	"github.com/arthur-debert/hop/pkg/types"
	"github.com/arthur-debert/hop/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity  int
	home       string
	configFile string
}

// app holds what a command needs once configuration is loaded
type app struct {
	flags  *globalFlags
	cfg    *config.Config
	render *ui.Renderer
}

// reportedError marks an error that was already shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command against the process arguments and streams.
// Errors that no command rendered, such as unknown commands or a wrong
// number of arguments, are printed here.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var reported *reportedError
	if !stderrors.As(err, &reported) {
		ui.NewRenderer(os.Stdout, os.Stderr, ui.ColorAuto).
			Error("Run 'hop --help' for usage.", err)
	}
	return err
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}
	a := &app{flags: flags}

	rootCmd := &cobra.Command{
		Use:     "hop",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help and succeed
			return cmd.Help()
		},
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("hop {{.Version}}\n")

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&flags.home, "config", "c", "", MsgFlagHome)
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config-file", "", MsgFlagConfigFile)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "links",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newTableCmd(a))
	rootCmd.AddCommand(newJumpCmd(a))
	rootCmd.AddCommand(newMarkCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newVersionCmd())

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if ui.IsTerminal(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}
	if _, err := topics.Initialize(rootCmd, topics.Builtin(), topics.Options{Renderer: renderer}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// setup loads configuration and logging before any command runs
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		logging.SetupLogger(a.flags.verbosity, "")
		ui.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), ui.ColorAuto).Error(MsgCtxConfig, err)
		return &reportedError{err: err}
	}

	logFile := ""
	if cfg.Logging.File {
		logFile = paths.LogFilePath()
	}
	logging.SetupLogger(a.flags.verbosity, logFile)

	a.cfg = cfg
	a.render = ui.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output.Color)

	log.Debug().
		Str("command", cmd.Name()).
		Str("home", cfg.HomeType().String()).
		Msg("Command started")
	return nil
}

// loadConfig merges the config layers, with -c as the highest override
func (a *app) loadConfig() (*config.Config, error) {
	opts := config.LoadOptions{ConfigFile: a.flags.configFile}
	if a.flags.home != "" {
		home, err := filepath.Abs(paths.ExpandHome(a.flags.home))
		if err != nil {
			home = a.flags.home
		}
		opts.Overrides = map[string]interface{}{"home.path": home}
	}
	return config.Load(opts)
}

// program builds the bookmark program over the real OS, talking to the
// user through stdio.
func (a *app) program(cmd *cobra.Command, stdio types.StdIO) *core.Program {
	prod := system.New(system.Options{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
	})
	if stdio == nil {
		stdio = prod
	}

	return core.New(core.Options{
		Home:        a.cfg.HomeType(),
		UserDirs:    prod,
		Directories: prod,
		SymLinks:    prod,
		StdIO:       stdio,
	})
}

// fail renders err under a context line and marks it as reported
func (a *app) fail(context string, err error) error {
	a.render.Error(context, err)
	return &reportedError{err: err}
}
