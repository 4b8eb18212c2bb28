// Package cli wires configuration, logging and the application service into
// the pathswitch command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pathswitch/internal/app"
	"pathswitch/internal/cleaner"
	"pathswitch/internal/config"
	"pathswitch/internal/errors"
	"pathswitch/internal/logging"
	"pathswitch/internal/notify"
	"pathswitch/internal/state"
	"pathswitch/internal/store"
	"pathswitch/internal/tui"
)

// Options replaces the real collaborators. Zero fields use the ones picked
// by configuration.
type Options struct {
	Store       store.Store
	Broadcaster store.Broadcaster
	Notifier    notify.Notifier
	FS          afero.Fs
	Now         func() time.Time
}

// session is the state shared by the commands of one invocation.
type session struct {
	opts    Options
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	svc     *app.Service
}

// BuildRootCmd returns a fresh command tree.
func BuildRootCmd(opts Options) *cobra.Command {
	rt := &session{opts: opts, v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "pathswitch",
		Short: "Switch between tool versions by rewriting the user PATH",
		Long: `pathswitch keeps named groups of alternative installations (JDKs, Pythons,
Node versions) and activates one of them by moving it to the front of the
user PATH and removing its siblings. It also finds missing and duplicate
PATH entries and removes them.

Run without a command to start the interactive interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The TUI owns the terminal, so only the log file is written.
			return rt.setup(cmd.Parent() != nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.service()
			if err != nil {
				return err
			}
			m := tui.InitialModel(svc)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run interface: %w", err)
			}
			return nil
		},
	}

	defaultConfigFile := filepath.Join(config.GetConfigDir(), config.ConfigFileName)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rt.cfgFile, "config", defaultConfigFile, "config file")
	flags.CountP("verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	flags.String("store", config.DefaultStore, "PATH store: auto, registry or file")
	flags.String("store-file", "", "file backing the file store")
	flags.String("state-file", "", "file holding groups and history")
	flags.Bool("notify", config.DefaultNotify, "show a desktop notification after activation")

	bindFlags(rt.v, flags, map[string]string{
		"verbose":    "verbose",
		"store":      "store",
		"store_file": "store-file",
		"state_file": "state-file",
		"notify":     "notify",
	})

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return invalidArgs(err)
	})

	rootCmd.AddCommand(
		buildShowCmd(rt),
		buildActivateCmd(rt),
		buildScanCmd(rt),
		buildCleanCmd(rt),
		buildWhichCmd(rt),
		buildGroupCmd(rt),
		buildEntryCmd(rt),
		buildExportCmd(rt),
		buildImportCmd(rt),
		buildHistoryCmd(rt),
		buildWebCmd(rt),
		buildConfigCmd(rt),
		buildVersionCmd(),
		buildUpdateCmd(),
	)
	return rootCmd
}

// bindFlags binds config keys to the flags named in keyToFlag.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keyToFlag map[string]string) {
	for key, name := range keyToFlag {
		v.BindPFlag(key, flags.Lookup(name))
	}
}

// Execute runs the command line and returns an error carrying the exit code.
func Execute(ctx context.Context) error {
	rootCmd := BuildRootCmd(Options{})
	defer logging.Close()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.UserMessage(err))
		return exitWithCode(exitCodeFor(err), err)
	}
	return nil
}

func (rt *session) setup(console bool) error {
	if err := config.Setup(rt.v, rt.cfgFile); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "load config")
	}
	cfg, err := config.FromViper(rt.v)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "load config")
	}
	rt.cfg = cfg

	logging.SetupLogger(cfg.Verbose, console)
	log.Debug().
		Str("config", rt.v.ConfigFileUsed()).
		Str("store", cfg.Store).
		Str("state_file", cfg.StateFile).
		Msg("CLI initialized")
	return nil
}

// service builds the application service on first use.
func (rt *session) service() (*app.Service, error) {
	if rt.svc != nil {
		return rt.svc, nil
	}

	fs := rt.opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	st, bc := rt.opts.Store, rt.opts.Broadcaster
	if st == nil {
		var err error
		st, bc, err = store.Open(store.Kind(rt.cfg.Store), fs, rt.cfg.StoreFile)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrStoreRead, "open PATH store")
		}
	}

	notifier := rt.opts.Notifier
	if notifier == nil {
		notifier = notify.Nop{}
		if rt.cfg.Notify {
			notifier = notify.Desktop{}
		}
	}

	svc, err := app.New(app.Options{
		Store:       st,
		Broadcaster: bc,
		Notifier:    notifier,
		Cleaner:     cleaner.New(fs),
		StateFile:   state.NewFile(fs, rt.cfg.StateFile),
		FS:          fs,
		Now:         rt.opts.Now,
	})
	if err != nil {
		return nil, err
	}
	rt.svc = svc
	return svc, nil
}
