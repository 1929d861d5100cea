// Package setup implements the interactive entry configuration flow.
//
// The flow is a small state machine. Setup starts at StepUser, collects the
// API key and location, then moves to StepBed where beds are added one per
// submission until the caller stops. Reconfiguration starts directly at
// StepBed with the entry's existing beds so numbering continues.
package setup

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/entry"
)

// Step identifies where the flow is
type Step int

const (
	StepUser Step = iota
	StepBed
	StepDone
)

// String returns the step identifier
func (s Step) String() string {
	switch s {
	case StepUser:
		return "user"
	case StepBed:
		return "bed"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Form field names
const (
	FieldAPIKey     = "api_key"
	FieldLocation   = "location"
	FieldBedType    = "bed_type"
	FieldLength     = "length"
	FieldWidth      = "width"
	FieldSunlight   = "sunlight"
	FieldBed        = "bed"
	FieldAddAnother = "add_another"
)

// Form error codes
const (
	CodeRequired        = "required"
	CodeInvalidLocation = "invalid_location"
	CodeInvalidBedType  = "invalid_bed_type"
	CodeInvalidSunlight = "invalid_sunlight"
	CodeNotPositive     = "not_positive"
	CodeBedRequired     = "bed_required"
)

// ErrWrongStep is returned when a submission does not match the current step
var ErrWrongStep = errors.New("submission does not match current setup step")

// FormErrors maps field names to error codes. The step does not advance.
type FormErrors map[string]string

// Error implements the error interface
func (e FormErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+"="+e[f])
	}
	return "form errors: " + strings.Join(parts, ", ")
}

// UserInput is the StepUser form
type UserInput struct {
	APIKey   string
	Location string
}

// BedForm is one bed as entered by the user
type BedForm struct {
	Type      bed.Type
	Length    int
	Width     int
	ColdFrame bool
	Sunlight  bed.Sunlight
}

// BedInput is the StepBed form. Bed is nil when the user added none.
type BedInput struct {
	Bed        *BedForm
	AddAnother bool
}

// Flow collects an entry configuration
type Flow struct {
	step     Step
	zones    []string
	namer    bed.Namer
	apiKey   string
	location string
	beds     []bed.Definition
	existing *entry.Config
}

// NewSetupFlow starts a new configuration. zones lists the accepted locations.
func NewSetupFlow(zones []string, namer bed.Namer) *Flow {
	return &Flow{
		step:  StepUser,
		zones: zones,
		namer: namer,
	}
}

// NewReconfigureFlow adds beds to an existing entry
func NewReconfigureFlow(cfg *entry.Config, namer bed.Namer) *Flow {
	beds := make([]bed.Definition, len(cfg.Beds))
	copy(beds, cfg.Beds)
	return &Flow{
		step:     StepBed,
		namer:    namer,
		apiKey:   cfg.APIKey,
		location: cfg.Location,
		beds:     beds,
		existing: cfg,
	}
}

// Step returns the current step
func (f *Flow) Step() Step {
	return f.step
}

// Zones returns the accepted locations
func (f *Flow) Zones() []string {
	return f.zones
}

// Beds returns the beds collected so far, existing ones included
func (f *Flow) Beds() []bed.Definition {
	return f.beds
}

// SubmitUser handles the StepUser form
func (f *Flow) SubmitUser(in UserInput) error {
	if f.step != StepUser {
		return fmt.Errorf("%w: at %s", ErrWrongStep, f.step)
	}

	errs := FormErrors{}
	apiKey := strings.TrimSpace(in.APIKey)
	if apiKey == "" {
		errs[FieldAPIKey] = CodeRequired
	}
	location := strings.TrimSpace(in.Location)
	switch {
	case location == "":
		errs[FieldLocation] = CodeRequired
	case !f.isZone(location):
		errs[FieldLocation] = CodeInvalidLocation
	}
	if len(errs) > 0 {
		return errs
	}

	f.apiKey = apiKey
	f.location = location
	f.step = StepBed
	return nil
}

// SubmitBed handles one StepBed form.
// A bed present on the final submission is kept.
func (f *Flow) SubmitBed(in BedInput) error {
	if f.step != StepBed {
		return fmt.Errorf("%w: at %s", ErrWrongStep, f.step)
	}

	if in.Bed == nil {
		if in.AddAnother {
			return FormErrors{FieldBed: CodeBedRequired}
		}
		f.step = StepDone
		return nil
	}

	if errs := validateBed(*in.Bed); len(errs) > 0 {
		return errs
	}
	f.beds = append(f.beds, bed.Definition{
		Name:      bed.NextName(f.beds, in.Bed.Type, f.namer),
		Type:      in.Bed.Type,
		Length:    in.Bed.Length,
		Width:     in.Bed.Width,
		ColdFrame: in.Bed.ColdFrame,
		Sunlight:  in.Bed.Sunlight,
	})
	if !in.AddAnother {
		f.step = StepDone
	}
	return nil
}

// Result returns the collected configuration once the flow is done.
// Setup produces a new entry; reconfiguration returns a copy of the
// existing entry with the new bed list.
func (f *Flow) Result() (*entry.Config, error) {
	if f.step != StepDone {
		return nil, fmt.Errorf("%w: at %s", ErrWrongStep, f.step)
	}
	if f.existing != nil {
		updated := *f.existing
		updated.Beds = f.beds
		return &updated, nil
	}
	return entry.New(f.apiKey, f.location, f.beds), nil
}

func (f *Flow) isZone(location string) bool {
	for _, z := range f.zones {
		if z == location {
			return true
		}
	}
	return false
}

func validateBed(in BedForm) FormErrors {
	errs := FormErrors{}
	if !in.Type.IsValid() {
		errs[FieldBedType] = CodeInvalidBedType
	}
	if in.Length < 1 {
		errs[FieldLength] = CodeNotPositive
	}
	if in.Width < 1 {
		errs[FieldWidth] = CodeNotPositive
	}
	if !in.Sunlight.IsValid() {
		errs[FieldSunlight] = CodeInvalidSunlight
	}
	return errs
}
