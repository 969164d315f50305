package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"orchea/banner"
	"orchea/browser"
	"orchea/config"
	"orchea/logger"
	"orchea/server"
)

const appName = "Orchea Documentation System"

// app holds the process-level collaborators so run can be driven from tests
type app struct {
	out  io.Writer
	log  *logger.Logger
	root func() (string, error)
	open browser.Opener
}

func main() {
	log := logger.GetLogger()

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("Received shutdown signal", map[string]interface{}{
			"signal": sig.String(),
		})
		// A second Ctrl+C during shutdown falls back to the default action
		signal.Stop(sigChan)
		cancel()
	}()

	a := &app{
		out:  os.Stdout,
		log:  log,
		root: config.ExecutableDir,
		open: browser.Default,
	}
	code := a.run(ctx, os.Args[1:])

	cancel()
	os.Exit(code)
}

// run starts the server and blocks until ctx is cancelled. It returns the
// process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	cfg, err := config.FromArgs(args)
	if err != nil {
		banner.InvalidPort(a.out, args[0], config.DefaultPort)
	}

	root, err := a.root()
	if err != nil {
		banner.StartFailed(a.out, err)
		return 1
	}
	cfg.Root = root

	srv := server.New(cfg, server.WithLogger(a.log))

	if err := srv.Listen(); err != nil {
		var bindErr *server.BindError
		switch {
		case errors.As(err, &bindErr) && bindErr.InUse():
			banner.PortInUse(a.out, cfg.Port)
		case errors.As(err, &bindErr):
			banner.StartFailed(a.out, bindErr.Err)
		default:
			banner.StartFailed(a.out, err)
		}
		return 1
	}

	banner.Startup(a.out, appName, srv.URL(), cfg.Root)

	if cfg.OpenBrowser {
		if err := a.open(srv.URL()); err != nil {
			a.log.Warn("Failed to open browser", map[string]interface{}{
				"url":   srv.URL(),
				"error": err.Error(),
			})
		}
	}

	if err := srv.Serve(ctx); err != nil {
		banner.StartFailed(a.out, err)
		return 1
	}

	banner.Farewell(a.out)
	return 0
}
