// Package main is the entry point for the remap demo.
//
// The demo layers a game screen and a toggleable menu overlay on top of the
// action dispatcher, with bindings loadable from a file and hot-reloaded on
// edit. It exists to exercise the remapping core end to end against a real
// terminal input source.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/remap/internal/dispatch"
	"github.com/dshills/remap/internal/input/action"
	"github.com/dshills/remap/internal/input/binding"
	"github.com/dshills/remap/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	actions := defaultActions()
	table := binding.NewTable(binding.WithActions(actions))
	loadDefaultBindings(table)

	dispatcher := dispatch.New(dispatch.DefaultConfig().WithMetrics())

	if err := dispatcher.SetBindings(table); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	app, err := newApp(dispatcher)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer app.Shutdown()

	// User bindings override the defaults and reload on edit.
	if opts.BindingsPath != "" {
		loader := binding.NewLoader()
		if err := loader.LoadInto(opts.BindingsPath, table); err != nil {
			app.Shutdown()
			fmt.Fprintf(os.Stderr, "Error: loading bindings: %v\n", err)
			return 1
		}

		watcher, err := binding.NewWatcher(opts.BindingsPath, table,
			binding.WithReloadCallback(func() {
				app.Notify("bindings reloaded")
			}),
			binding.WithErrorCallback(func(err error) {
				app.Notify("bindings reload failed: " + err.Error())
			}),
		)
		if err != nil {
			app.Shutdown()
			fmt.Fprintf(os.Stderr, "Error: watching bindings: %v\n", err)
			return 1
		}
		defer watcher.Close()
	}

	// A script subscriber sits below the built-in layers in priority.
	if opts.ScriptPath != "" {
		sub, err := script.NewSubscriberFromFile(opts.ScriptPath,
			script.WithErrorCallback(func(err error) {
				app.Notify(err.Error())
			}),
		)
		if err != nil {
			app.Shutdown()
			fmt.Fprintf(os.Stderr, "Error: loading script: %v\n", err)
			return 1
		}
		defer sub.Close()
		if err := dispatcher.Subscribe(sub); err != nil {
			app.Shutdown()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := app.Run(); err != nil {
		app.Shutdown()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if stats := dispatcher.Metrics(); stats != nil {
		s := stats.Snapshot()
		fmt.Printf("events=%d dispatched=%d handled=%d unbound=%d\n",
			s.RawEvents, s.ActionsDispatched, s.ActionsHandled, s.UnboundInputs)
	}

	return 0
}

// options holds parsed command-line options.
type options struct {
	BindingsPath string
	ScriptPath   string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.BindingsPath, "bindings", "", "Path to a bindings file (json, toml or yaml)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Path to a Lua action script")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("remap %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}

// defaultActions is the demo's closed action set.
func defaultActions() *action.Set {
	return action.NewSet(
		"move.up",
		"move.down",
		"move.left",
		"move.right",
		"game.interact",
		"game.attack",
		"menu.toggle",
		"menu.select",
		"app.quit",
	)
}

// loadDefaultBindings installs the built-in bindings.
func loadDefaultBindings(table *binding.Table) {
	table.
		MustBind("w", "move.up").
		MustBind("s", "move.down").
		MustBind("a", "move.left").
		MustBind("d", "move.right").
		MustBind("Up", "move.up").
		MustBind("Down", "move.down").
		MustBind("Left", "move.left").
		MustBind("Right", "move.right").
		MustBind("e", "game.interact").
		MustBind("MouseLeft", "game.attack").
		MustBind("Escape", "menu.toggle").
		MustBind("Enter", "menu.select").
		MustBind("q", "app.quit").
		MustBind("C-c", "app.quit")
}
