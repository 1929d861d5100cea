package entry

import (
	"errors"
	"strings"
	"time"

	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
	"github.com/oklog/ulid/v2"
)

// ConfigVersion is the version of the persisted entry configuration
const ConfigVersion = 1

// DefaultTitle is used when an entry is created without a title
const DefaultTitle = "Smart Home Farming"

// Config is one configured garden: credentials, location and beds
type Config struct {
	ID        string           `yaml:"id"`
	Version   int              `yaml:"version"`
	Title     string           `yaml:"title"`
	APIKey    string           `yaml:"api_key"`
	Location  string           `yaml:"location"`
	Beds      []bed.Definition `yaml:"beds"`
	CreatedAt time.Time        `yaml:"created_at"`
}

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrMissingAPIKey = errors.New("api key is required")
	ErrNoEntries     = errors.New("no entries configured, run setup first")
	ErrAmbiguous     = errors.New("several entries configured, pass --entry")
)

// GenerateID generates a new entry ID using ULID.
// IDs from one process sort in creation order.
func GenerateID() string {
	return ulid.Make().String()
}

// New creates an entry with a fresh ID
func New(apiKey, location string, beds []bed.Definition) *Config {
	return &Config{
		ID:        GenerateID(),
		Version:   ConfigVersion,
		Title:     DefaultTitle,
		APIKey:    strings.TrimSpace(apiKey),
		Location:  location,
		Beds:      beds,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks the fields required to run an entry
func (c *Config) Validate() error {
	if c.ID == "" {
		return errors.New("entry ID cannot be empty")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	for _, b := range c.Beds {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}
