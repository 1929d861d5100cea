package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/YoshitsuguKoike/smartfarm/internal/adapter/controller/cli"
	"github.com/YoshitsuguKoike/smartfarm/internal/buildinfo"
	"github.com/YoshitsuguKoike/smartfarm/internal/infrastructure/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder := cli.NewRootBuilder(newServices, nil, buildinfo.GetVersion(), buildinfo.Info())
	err := builder.Build().ExecuteContext(ctx)
	// Close covers commands that failed before PersistentPostRunE
	_ = builder.Close()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// newServices wires the DI container for one invocation
func newServices(ctx context.Context, opts cli.GlobalOptions) (cli.Services, error) {
	container, err := di.NewContainer(ctx, di.Config{
		Home:         opts.Home,
		EntryID:      opts.EntryID,
		OutputFormat: opts.OutputFormat,
		OutputWriter: opts.Out,
		LogWriter:    opts.Err,
		LogLevel:     opts.LogLevel,
		AgentType:    opts.Agent,
	})
	if err != nil {
		return nil, err
	}
	return container, nil
}
