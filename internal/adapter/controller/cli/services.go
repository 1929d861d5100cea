package cli

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/input"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/usecase/setup"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/entry"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/repository"
	"github.com/YoshitsuguKoike/smartfarm/internal/i18n"
)

// Services is what the commands need from the dependency container
type Services interface {
	Presenter() output.Presenter
	Logger() *zap.Logger
	Translator() *i18n.Translator
	EntryRepository() repository.EntryRepository
	ResolveEntry(ctx context.Context) (*entry.Config, error)
	GardenUseCase(ctx context.Context) (input.GardenUseCase, error)
	AgentGateway(ctx context.Context) (output.AgentGateway, error)
	NewSetupFlow() *setup.Flow
	NewReconfigureFlow(cfg *entry.Config) *setup.Flow
	DefaultAPIKey() string
	Close() error
}

// GlobalOptions holds the persistent flags shared by every command
type GlobalOptions struct {
	Home         string
	EntryID      string
	OutputFormat string
	LogLevel     string
	Agent        string
	Out          io.Writer
	Err          io.Writer
}

// ServicesFactory builds the services for one command invocation
type ServicesFactory func(ctx context.Context, opts GlobalOptions) (Services, error)
