package di

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	agentgateway "github.com/YoshitsuguKoike/smartfarm/internal/adapter/gateway/agent"
	storagegateway "github.com/YoshitsuguKoike/smartfarm/internal/adapter/gateway/storage"
	"github.com/YoshitsuguKoike/smartfarm/internal/adapter/presenter"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/input"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/service"
	gardenusecase "github.com/YoshitsuguKoike/smartfarm/internal/application/usecase/garden"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/usecase/setup"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/entry"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/garden"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/repository"
	"github.com/YoshitsuguKoike/smartfarm/internal/i18n"
	"github.com/YoshitsuguKoike/smartfarm/internal/infra/config"
	"github.com/YoshitsuguKoike/smartfarm/internal/infrastructure/persistence/sqlite"
	entryrepo "github.com/YoshitsuguKoike/smartfarm/internal/infrastructure/repository"
	"github.com/YoshitsuguKoike/smartfarm/internal/logging"
)

// Container is the DI container that holds all dependencies
// This implements manual dependency injection for Clean Architecture
type Container struct {
	// Configuration
	config   Config
	settings *config.AppSettings
	env      *config.Env

	// Ambient
	logger     *zap.Logger
	translator *i18n.Translator

	// Infrastructure Layer
	entryRepo       repository.EntryRepository
	snapshotGateway output.SnapshotGateway
	sqliteGateway   *sqlite.SnapshotGateway

	// Adapter Layer
	presenter output.Presenter

	// Application Layer, built on first use for the resolved entry
	entry         *entry.Config
	gardenUseCase input.GardenUseCase
}

// Config holds configuration for the container
type Config struct {
	Home         string // Home directory (default: SMARTFARM_HOME or .smartfarm)
	EntryID      string // Entry to operate on; optional when exactly one exists
	OutputFormat string // Output format (cli, json)
	OutputWriter io.Writer
	LogWriter    io.Writer
	LogLevel     string // Overrides log_level from setting.yaml when set
	AgentType    string // Overrides agent from setting.yaml when set

	// Fs is the filesystem for settings, entries and file snapshots (default: OS)
	Fs afero.Fs

	// Test hooks: replace the gateways selected by settings
	AgentGateway    output.AgentGateway
	SnapshotGateway output.SnapshotGateway
	S3Client        storagegateway.S3API
}

// NewContainer creates and initializes the DI container
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	c := &Container{config: cfg}

	if c.config.Fs == nil {
		c.config.Fs = afero.NewOsFs()
	}
	if c.config.OutputWriter == nil {
		c.config.OutputWriter = os.Stdout
	}
	if c.config.LogWriter == nil {
		c.config.LogWriter = os.Stderr
	}
	c.config.Home = config.ResolveHome(c.config.Home)

	if err := c.initializeConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	c.initializeInfrastructure()
	if err := c.initializeAdapters(); err != nil {
		return nil, err
	}

	c.logger.Debug("container initialized",
		zap.String("home", c.config.Home),
		zap.String("settings", c.settings.Source),
		zap.String("storage", c.settings.Storage),
		zap.String("agent", c.settings.Agent))
	return c, nil
}

// initializeConfig loads settings, .env and the logger
func (c *Container) initializeConfig() error {
	settings, err := config.LoadSettings(c.config.Fs, c.config.Home)
	if err != nil {
		return err
	}
	if c.config.AgentType != "" {
		settings.Agent = strings.ToLower(c.config.AgentType)
	}
	if c.config.LogLevel != "" {
		settings.LogLevel = c.config.LogLevel
	}
	c.settings = settings

	env, err := config.LoadEnv(c.config.Fs, c.config.Home)
	if err != nil {
		return err
	}
	c.env = env

	c.logger = logging.New(settings.LogLevel, c.config.LogWriter)
	c.translator = i18n.New(settings.Language)
	return nil
}

// initializeInfrastructure initializes infrastructure layer components
func (c *Container) initializeInfrastructure() {
	c.entryRepo = entryrepo.NewEntryRepositoryImpl(c.config.Fs, c.config.Home)
}

// initializeAdapters initializes adapter layer components
func (c *Container) initializeAdapters() error {
	switch strings.ToLower(c.config.OutputFormat) {
	case "json":
		c.presenter = presenter.NewJSONPresenter(c.config.OutputWriter)
	case "", "cli":
		c.presenter = presenter.NewCLIGardenPresenter(c.config.OutputWriter, c.translator)
	default:
		return fmt.Errorf("unknown output format %q (supported: cli, json)", c.config.OutputFormat)
	}
	return nil
}

// initializeSnapshotGateway selects the snapshot backend from settings
func (c *Container) initializeSnapshotGateway(ctx context.Context) error {
	if c.snapshotGateway != nil {
		return nil
	}
	if c.config.SnapshotGateway != nil {
		c.snapshotGateway = c.config.SnapshotGateway
		return nil
	}

	switch c.settings.Storage {
	case config.StorageFile:
		c.snapshotGateway = storagegateway.NewFileSnapshotGateway(c.config.Fs, c.config.Home)

	case config.StorageS3:
		if c.config.S3Client != nil {
			c.snapshotGateway = storagegateway.NewS3SnapshotGatewayWithClient(c.config.S3Client, c.settings.S3Bucket, c.settings.S3Prefix)
			return nil
		}
		gw, err := storagegateway.NewS3SnapshotGateway(ctx, storagegateway.S3Config{
			BucketName: c.settings.S3Bucket,
			Prefix:     c.settings.S3Prefix,
			Region:     c.settings.S3Region,
		})
		if err != nil {
			return fmt.Errorf("failed to create S3 snapshot gateway: %w", err)
		}
		c.snapshotGateway = gw

	case config.StorageSQLite:
		gw, err := sqlite.Open(ctx, c.settings.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite snapshot store: %w", err)
		}
		c.sqliteGateway = gw
		c.snapshotGateway = gw

	case config.StorageMemory:
		c.snapshotGateway = storagegateway.NewMemorySnapshotGateway()

	default:
		return fmt.Errorf("unknown storage type: %s", c.settings.Storage)
	}
	return nil
}

// ResolveEntry returns the configured entry selected by EntryID, or the only
// entry when EntryID is empty
func (c *Container) ResolveEntry(ctx context.Context) (*entry.Config, error) {
	if c.entry != nil {
		return c.entry, nil
	}
	if c.config.EntryID != "" {
		cfg, err := c.entryRepo.FindByID(ctx, c.config.EntryID)
		if err != nil {
			return nil, err
		}
		c.entry = cfg
		return cfg, nil
	}

	all, err := c.entryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	switch len(all) {
	case 0:
		return nil, entry.ErrNoEntries
	case 1:
		c.entry = all[0]
		return c.entry, nil
	default:
		return nil, fmt.Errorf("%w (%d entries)", entry.ErrAmbiguous, len(all))
	}
}

// GardenUseCase builds the garden use case for the resolved entry.
// The garden record store is loaded before it is returned.
func (c *Container) GardenUseCase(ctx context.Context) (input.GardenUseCase, error) {
	if c.gardenUseCase != nil {
		return c.gardenUseCase, nil
	}

	cfg, err := c.ResolveEntry(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.initializeSnapshotGateway(ctx); err != nil {
		return nil, err
	}
	agent, err := c.agentGateway(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent gateway: %w", err)
	}

	logger := c.logger.With(zap.String("entry", cfg.ID))
	store := service.NewGardenRecordStore(c.snapshotGateway, garden.StorageKey(cfg.ID),
		service.WithStoreLogger(logger))
	if err := store.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load garden data: %w", err)
	}

	prompts := service.NewPromptBuilderService(cfg.Location, cfg.Beds)
	generator := service.NewPlanGenerator(agent, prompts, logger)
	c.gardenUseCase = gardenusecase.NewGardenUseCase(generator, store, logger)
	return c.gardenUseCase, nil
}

// AgentGateway builds the text generation gateway for the resolved entry
func (c *Container) AgentGateway(ctx context.Context) (output.AgentGateway, error) {
	cfg, err := c.ResolveEntry(ctx)
	if err != nil {
		return nil, err
	}
	agent, err := c.agentGateway(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent gateway: %w", err)
	}
	return agent, nil
}

// agentGateway creates the text generation gateway for an entry.
// Gemini uses the key collected at setup; other agents read their key from
// the environment.
func (c *Container) agentGateway(cfg *entry.Config) (output.AgentGateway, error) {
	if c.config.AgentGateway != nil {
		return c.config.AgentGateway, nil
	}

	agentType := c.settings.Agent
	if agentType == "" {
		agentType = agentgateway.GetDefaultAgent()
	}
	apiKey := c.env.APIKeyFor(agentType)
	if agentType == agentgateway.TypeGemini && cfg.APIKey != "" {
		apiKey = cfg.APIKey
	}

	return agentgateway.NewAgentGateway(agentType, apiKey, agentgateway.Options{
		Model:   c.settings.Model,
		Timeout: c.settings.Timeout,
	})
}

// NewSetupFlow starts a setup flow over the configured zones
func (c *Container) NewSetupFlow() *setup.Flow {
	return setup.NewSetupFlow(c.settings.Zones, c.translator)
}

// NewReconfigureFlow starts a flow adding beds to cfg
func (c *Container) NewReconfigureFlow(cfg *entry.Config) *setup.Flow {
	return setup.NewReconfigureFlow(cfg, c.translator)
}

// DefaultAPIKey returns the Gemini key from the environment, offered as the setup default
func (c *Container) DefaultAPIKey() string {
	return c.env.APIKeyFor(agentgateway.TypeGemini)
}

// Settings returns the resolved settings
func (c *Container) Settings() *config.AppSettings {
	return c.settings
}

// Logger returns the logger
func (c *Container) Logger() *zap.Logger {
	return c.logger
}

// Translator returns the display-name translator
func (c *Container) Translator() *i18n.Translator {
	return c.translator
}

// Presenter returns the presenter
func (c *Container) Presenter() output.Presenter {
	return c.presenter
}

// EntryRepository returns the entry repository
func (c *Container) EntryRepository() repository.EntryRepository {
	return c.entryRepo
}

// SnapshotGateway returns the snapshot backend, creating it if needed
func (c *Container) SnapshotGateway(ctx context.Context) (output.SnapshotGateway, error) {
	if err := c.initializeSnapshotGateway(ctx); err != nil {
		return nil, err
	}
	return c.snapshotGateway, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var closeErr error
	if c.sqliteGateway != nil {
		closeErr = c.sqliteGateway.Close()
	}
	if c.logger != nil {
		// Sync fails on terminals; nothing to report
		_ = c.logger.Sync()
	}
	return closeErr
}
