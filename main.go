package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/boolean-maybe/tada/config"
	"github.com/boolean-maybe/tada/internal/app"
	"github.com/boolean-maybe/tada/internal/bootstrap"
)

// cliFlags are the flags handled before bootstrap. --log-level and --backend
// are read by the config loader.
type cliFlags struct {
	version bool
	list    bool
}

func parseCLIFlags(args []string) cliFlags {
	var f cliFlags
	fs := pflag.NewFlagSet("tada", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.BoolVarP(&f.version, "version", "v", false, "Print version and exit")
	fs.BoolVar(&f.list, "list", false, "Print tasks and exit")
	fs.String("log-level", "", "Log level (debug, info, warn, error)")
	fs.String("backend", "", "Storage backend (memory, file, redis)")
	_ = fs.Parse(args)
	return f
}

// main runs the application bootstrap and starts the TUI.
func main() {
	flags := parseCLIFlags(os.Args[1:])

	if flags.version {
		fmt.Printf("tada version %s\ncommit: %s\nbuilt: %s\n",
			config.Version, config.GitCommit, config.BuildDate)
		os.Exit(0)
	}

	// Initialize paths early - this must succeed for the application to function
	if err := config.InitPaths(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := config.EnsureDirs(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if path, err := config.InstallDefaultConfig(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "warning:", err)
	} else if path != "" {
		slog.Debug("installed default config", "path", path)
	}

	if flags.list {
		if err := bootstrap.ListTasks(os.Stdout); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	// Bootstrap application
	result, err := bootstrap.Bootstrap()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// Cleanup on exit
	defer result.Shutdown()
	defer result.RootLayout.Cleanup()

	// Run application
	if err := app.Run(result.App, result.RootLayout); err != nil {
		slog.Error("application error", "error", err)
		result.Shutdown()
		os.Exit(1)
	}

	// Save user preferences on shutdown
	if err := config.SaveHeaderVisible(result.ListState.IsHeaderVisible()); err != nil {
		slog.Warn("failed to save header visibility preference", "error", err)
	}
}
