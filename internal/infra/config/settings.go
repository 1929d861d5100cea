package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// SettingFile is the settings file name inside the home directory
const SettingFile = "setting.yaml"

// Storage backends
const (
	StorageFile   = "file"
	StorageS3     = "s3"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// DefaultZone is offered when no zones are configured
const DefaultZone = "home"

// RawSettings represents the structure of setting.yaml.
// Pointer fields distinguish "unset" from zero values.
type RawSettings struct {
	// Text generation
	Agent      *string `yaml:"agent"`
	Model      *string `yaml:"model"`
	TimeoutSec *int    `yaml:"timeout_sec"`

	// Snapshot storage
	Storage    *string `yaml:"storage"`
	S3Bucket   *string `yaml:"s3_bucket"`
	S3Prefix   *string `yaml:"s3_prefix"`
	S3Region   *string `yaml:"s3_region"`
	SQLitePath *string `yaml:"sqlite_path"`

	// Setup and presentation
	Zones    []string `yaml:"zones"`
	Language *string  `yaml:"language"`

	// Logging
	LogLevel *string `yaml:"log_level"`
}

// AppSettings is the resolved, read-only configuration
type AppSettings struct {
	Home        string
	Agent       string
	Model       string
	Timeout     time.Duration
	Storage     string
	S3Bucket    string
	S3Prefix    string
	S3Region    string
	SQLitePath  string
	Zones       []string
	Language    string
	LogLevel    string
	Source      string // "yaml" or "default"
	SettingPath string // path of setting.yaml when loaded from file
}

// LoadSettings reads <home>/setting.yaml if present and fills defaults.
// Priority: setting.yaml > defaults
func LoadSettings(fs afero.Fs, home string) (*AppSettings, error) {
	settings := &RawSettings{}
	source := "default"
	settingPath := ""

	path := filepath.Join(home, SettingFile)
	if data, err := afero.ReadFile(fs, path); err == nil {
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		source = "yaml"
		settingPath = path
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyDefaults(settings, home)
	if err := validate(settings); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return buildAppSettings(settings, home, source, settingPath), nil
}

// applyDefaults fills in default values for any nil fields
func applyDefaults(settings *RawSettings, home string) {
	if settings.Agent == nil {
		v := "gemini"
		settings.Agent = &v
	}
	if settings.Model == nil {
		v := "" // gateway default
		settings.Model = &v
	}
	if settings.TimeoutSec == nil {
		v := 0 // no timeout
		settings.TimeoutSec = &v
	}

	if settings.Storage == nil {
		v := StorageFile
		settings.Storage = &v
	}
	if settings.S3Bucket == nil {
		v := ""
		settings.S3Bucket = &v
	}
	if settings.S3Prefix == nil {
		v := "smartfarm"
		settings.S3Prefix = &v
	}
	if settings.S3Region == nil {
		v := ""
		settings.S3Region = &v
	}
	if settings.SQLitePath == nil || *settings.SQLitePath == "" {
		v := filepath.Join(home, "smartfarm.db")
		settings.SQLitePath = &v
	}

	zones := make([]string, 0, len(settings.Zones))
	for _, z := range settings.Zones {
		if z = strings.TrimSpace(z); z != "" {
			zones = append(zones, z)
		}
	}
	if len(zones) == 0 {
		zones = []string{DefaultZone}
	}
	settings.Zones = zones
	if settings.Language == nil {
		v := "en"
		settings.Language = &v
	}
	if settings.LogLevel == nil {
		v := "warn" // Default to WARN level
		settings.LogLevel = &v
	}
}

func validate(settings *RawSettings) error {
	switch strings.ToLower(*settings.Storage) {
	case StorageFile, StorageSQLite, StorageMemory:
	case StorageS3:
		if *settings.S3Bucket == "" {
			return errors.New("s3_bucket is required for s3 storage")
		}
	default:
		return fmt.Errorf("unknown storage %q (supported: file, s3, sqlite, memory)", *settings.Storage)
	}
	if *settings.TimeoutSec < 0 {
		return errors.New("timeout_sec must not be negative")
	}
	return nil
}

// buildAppSettings converts RawSettings to AppSettings
func buildAppSettings(settings *RawSettings, home, source, settingPath string) *AppSettings {
	zones := append([]string(nil), settings.Zones...)
	return &AppSettings{
		Home:        home,
		Agent:       strings.ToLower(*settings.Agent),
		Model:       *settings.Model,
		Timeout:     time.Duration(*settings.TimeoutSec) * time.Second,
		Storage:     strings.ToLower(*settings.Storage),
		S3Bucket:    *settings.S3Bucket,
		S3Prefix:    *settings.S3Prefix,
		S3Region:    *settings.S3Region,
		SQLitePath:  *settings.SQLitePath,
		Zones:       zones,
		Language:    *settings.Language,
		LogLevel:    *settings.LogLevel,
		Source:      source,
		SettingPath: settingPath,
	}
}
