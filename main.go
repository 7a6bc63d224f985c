package main

import (
	"fmt"
	"io"
	"os"

	"github.com/llehouerou/songlist/internal/config"
	"github.com/llehouerou/songlist/internal/playlist"
)

// Application holds what every command works on.
type Application struct {
	cfg        *config.Config
	configPath string
	in         io.Reader
	out        io.Writer
}

func newApplication(in io.Reader, out io.Writer) *Application {
	return &Application{in: in, out: out}
}

// loadConfig reads the --config file if one was given, otherwise the
// default locations.
func (app *Application) loadConfig() error {
	var err error
	if app.configPath != "" {
		app.cfg, err = config.LoadFrom(app.configPath)
	} else {
		app.cfg, err = config.Load()
	}
	return err
}

// newQueue builds the playing queue seeded from the configuration.
func (app *Application) newQueue() *playlist.PlayingQueue {
	q := playlist.NewQueue()
	q.SetDeletePolicy(app.cfg.Policy())
	q.Replace(app.cfg.SeedSongs()...)
	return q
}

func main() {
	app := newApplication(os.Stdin, os.Stdout)
	if err := app.createRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
