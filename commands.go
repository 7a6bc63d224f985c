package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/songlist/internal/errmsg"
	"github.com/llehouerou/songlist/internal/menu"
	"github.com/llehouerou/songlist/internal/prompt"
	"github.com/llehouerou/songlist/internal/ui/queuepanel"
)

// createRootCommand creates the root command running the console menu, with
// the tui subcommand attached.
func (app *Application) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "songlist",
		Short: "Manage a song playlist from a one-letter console menu",
		Long: `Manage a circular song playlist: play the current, next or previous song,
add a song before the current one, erase it, or show the whole list.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return errmsg.Wrap(errmsg.OpConfigLoad, app.loadConfig())
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.runMenu()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "",
		"config file (default $XDG_CONFIG_HOME/songlist/config.toml, then ./config.toml)")

	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}

func (app *Application) runMenu() error {
	session := menu.New(app.newQueue(), prompt.NewReader(app.in), app.out, app.cfg.SongLayout())
	return session.Run()
}

// createTUICommand creates the tui command showing the full-screen playlist view.
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the full-screen playlist view",
		Long:  `Browse and edit the playlist in a terminal view with undo and redo.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
	}
}

func (app *Application) launchTUI() error {
	m := queuepanel.New(app.newQueue())
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(app.in), tea.WithOutput(app.out))
	if _, err := p.Run(); err != nil {
		return errmsg.Wrap(errmsg.OpViewRun, err)
	}
	return nil
}
