package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-manager/internal/config"
	"task-manager/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	setup  Setup
	loader func() *config.Loader
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags. setup is
// called once, after flags are parsed, to open storage for the chosen data
// directory.
func NewRootCommand(app *App, setup Setup) *RootCommand {
	if setup == nil {
		setup = DefaultSetup
	}
	root := &RootCommand{
		app:    app,
		setup:  setup,
		loader: config.NewLoader,
	}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "A personal task manager for the terminal",
		Long: `Task Manager (tm) keeps a prioritized to-do list per local account.

Tasks have a title, an optional description and due date (YYYY-MM-DD), a
priority (low, medium, high) and a completed flag. Lists can be searched,
filtered by priority or status and sorted by creation date, due date or
priority.

WARNING: accounts are a local convenience, not a security boundary. Passwords
are stored in plain text in the data directory. Do not reuse a real password.

EXAMPLES:
  tm register --email me@example.com --name Me
  tm login --email me@example.com
  tm add "Write report" --due 2025-03-14 --priority high
  tm list --status pending --sort due-asc
  tm done 3f2a                              # ids may be shortened to a unique prefix
  tm edit 3f2a --title "Write final report"
  tm delete 3f2a --yes
  tm ui                                     # interactive terminal UI

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config.toml > defaults

  The config file lives in the data directory and is created on first run.

  Storage:
    TM_DATA_DIR                            Data directory (default: ~/.tm)
    TM_DB_FILENAME                         Database filename (default: tm.db)
    TM_DB_QUERY_TIMEOUT                    Query timeout (default: 5s)

  Display:
    TM_DISPLAY_DATE_FORMAT                 Date format (default: 2006-01-02)
    TM_DISPLAY_DARK                        Dark colors (default: false)
    TM_DISPLAY_PLAIN                       No colors (default: false)

  Validation:
    TM_VALIDATION_PASSWORD_MIN             Min password length (default: 6)
    TM_VALIDATION_TITLE_MAX                Max title length (default: 500)

  Application:
    TM_APP_TIMEOUT                         Command timeout (default: 30s)
    TM_APP_VERBOSE                         Verbose output (default: false)
    TM_DEBUG                               Debug logging to stderr

  Commands:
    TM_LIST_DEFAULT_SORT                   Default list sort (default: created-desc)
    TM_LIST_DEFAULT_STATUS                 Default list status (default: all)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.cmd.SetIn(app.in)
	root.cmd.SetOut(app.out)
	root.cmd.SetErr(app.errOut)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx as the parent context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	defer r.app.Close()
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs sets the arguments, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Storage configuration
	flags.String("data-dir", "", "Data directory (overrides TM_DATA_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TM_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TM_DB_QUERY_TIMEOUT)")

	// Display configuration
	flags.String("date-format", "", "Date display format (overrides TM_DISPLAY_DATE_FORMAT)")
	flags.Bool("dark", false, "Dark color theme (overrides TM_DISPLAY_DARK)")
	flags.Bool("plain", false, "Plain output without colors (overrides TM_DISPLAY_PLAIN)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides TM_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TM_APP_VERBOSE)")
}

// addSubcommands builds one cobra command per registered command
func (r *RootCommand) addSubcommands() {
	registry := r.app.Registry()
	for _, name := range registry.Names() {
		command, _ := registry.Get(name)
		r.cmd.AddCommand(r.newSubcommand(name, command))
	}
}

func (r *RootCommand) newSubcommand(name string, command Command) *cobra.Command {
	spec := CommandSpec{Use: name}
	if d, ok := command.(Describer); ok {
		spec = d.Spec()
	}

	sub := &cobra.Command{
		Use:   spec.Use,
		Short: spec.Short,
		Long:  spec.Long,
		Args:  spec.Args,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.ensureSetup(cmd); err != nil {
				return err
			}

			ctx := cmd.Context()
			if !spec.Interactive {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, r.getAppTimeout())
				defer cancel()
			}
			return r.app.registry.Execute(ctx, name, args)
		},
	}

	if b, ok := command.(FlagBinder); ok {
		b.BindFlags(sub.Flags())
	}
	return sub
}

// ensureSetup loads configuration and opens storage on first use
func (r *RootCommand) ensureSetup(cmd *cobra.Command) error {
	if r.config != nil {
		return nil
	}

	cfg, err := r.loader().LoadWithOverrides(r.overridesFromFlags(cmd.Flags()))
	if err != nil {
		return err
	}
	logging.SetVerbose(cfg.Application.Verbose)

	deps, err := r.setup(cfg)
	if err != nil {
		return err
	}
	if deps.Config == nil {
		deps.Config = cfg
	}

	r.config = cfg
	r.app.Configure(deps)
	return nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// overridesFromFlags collects the global flags the user actually set
func (r *RootCommand) overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}

	if flags.Changed("data-dir") {
		v, _ := flags.GetString("data-dir")
		overrides.DataDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("db-query-timeout") {
		v, _ := flags.GetDuration("db-query-timeout")
		overrides.DBQueryTimeout = &v
	}
	if flags.Changed("date-format") {
		v, _ := flags.GetString("date-format")
		overrides.DateFormat = &v
	}
	if flags.Changed("dark") {
		v, _ := flags.GetBool("dark")
		overrides.Dark = &v
	}
	if flags.Changed("plain") {
		v, _ := flags.GetBool("plain")
		overrides.Plain = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}

	return overrides
}
