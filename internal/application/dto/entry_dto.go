package dto

import (
	"time"

	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/entry"
)

// EntryDTO describes a configured entry without its credentials
type EntryDTO struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Location  string           `json:"location"`
	Beds      []bed.Definition `json:"beds"`
	CreatedAt time.Time        `json:"created_at"`
}

// EntryListResponse lists configured entries
type EntryListResponse struct {
	Entries []*EntryDTO `json:"entries"`
}

// VersionResponse carries build information
type VersionResponse struct {
	Version   string `json:"version"`
	BuildInfo string `json:"build_info,omitempty"`
}

// AgentCheckResponse reports a successful credential check for an entry
type AgentCheckResponse struct {
	EntryID string `json:"entry_id"`
	Agent   string `json:"agent"`
}

// NewEntryDTO converts an entry, dropping the API key
func NewEntryDTO(cfg *entry.Config) *EntryDTO {
	beds := cfg.Beds
	if beds == nil {
		beds = []bed.Definition{}
	}
	return &EntryDTO{
		ID:        cfg.ID,
		Title:     cfg.Title,
		Location:  cfg.Location,
		Beds:      beds,
		CreatedAt: cfg.CreatedAt,
	}
}
