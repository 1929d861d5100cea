package bed

import (
	"errors"
	"fmt"
	"strconv"
)

// Type represents the kind of growing container
type Type string

const (
	TypeRaisedBed Type = "raised_bed"
	TypeDeepBed   Type = "deep_bed"
	TypePot       Type = "pot"
)

// Types returns every bed type in display order
func Types() []Type {
	return []Type{TypeRaisedBed, TypeDeepBed, TypePot}
}

// String returns the string representation
func (t Type) String() string {
	return string(t)
}

// IsValid validates the bed type
func (t Type) IsValid() bool {
	switch t {
	case TypeRaisedBed, TypeDeepBed, TypePot:
		return true
	default:
		return false
	}
}

// Sunlight represents the light exposure of a bed
type Sunlight string

const (
	SunlightDirect   Sunlight = "direct"
	SunlightIndirect Sunlight = "indirect"
)

// SunlightOptions returns every exposure in display order
func SunlightOptions() []Sunlight {
	return []Sunlight{SunlightDirect, SunlightIndirect}
}

// String returns the string representation
func (s Sunlight) String() string {
	return string(s)
}

// IsValid validates the sunlight exposure
func (s Sunlight) IsValid() bool {
	return s == SunlightDirect || s == SunlightIndirect
}

// Definition is one configured bed or pot
type Definition struct {
	Name      string   `yaml:"name" json:"name"`
	Type      Type     `yaml:"type" json:"type"`
	Length    int      `yaml:"length" json:"length"`
	Width     int      `yaml:"width" json:"width"`
	ColdFrame bool     `yaml:"cold_frame" json:"cold_frame"`
	Sunlight  Sunlight `yaml:"sunlight" json:"sunlight"`
}

var (
	ErrInvalidType     = errors.New("invalid bed type")
	ErrInvalidSunlight = errors.New("invalid sunlight exposure")
	ErrInvalidLength   = errors.New("length must be a positive integer")
	ErrInvalidWidth    = errors.New("width must be a positive integer")
)

// Validate checks the bed fields, ignoring Name
func (d Definition) Validate() error {
	if !d.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, d.Type)
	}
	if d.Length < 1 {
		return ErrInvalidLength
	}
	if d.Width < 1 {
		return ErrInvalidWidth
	}
	if !d.Sunlight.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSunlight, d.Sunlight)
	}
	return nil
}

// Area returns length times width in the user's units
func (d Definition) Area() int {
	return d.Length * d.Width
}

// Namer supplies the display name of a bed type
type Namer interface {
	BedTypeName(t Type) string
}

// CountOfType returns how many beds in existing share type t
func CountOfType(existing []Definition, t Type) int {
	n := 0
	for _, d := range existing {
		if d.Type == t {
			n++
		}
	}
	return n
}

// NextName returns "<type name> <n>" where n is the count of beds of the
// same type plus one. n is bumped only if that name is already taken.
func NextName(existing []Definition, t Type, namer Namer) string {
	taken := make(map[string]bool, len(existing))
	for _, d := range existing {
		taken[d.Name] = true
	}
	label := namer.BedTypeName(t)
	for seq := CountOfType(existing, t) + 1; ; seq++ {
		name := label + " " + strconv.Itoa(seq)
		if !taken[name] {
			return name
		}
	}
}
