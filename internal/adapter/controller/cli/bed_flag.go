package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/usecase/setup"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
)

// parseBedFlag parses "type:LENGTHxWIDTH:sunlight[:cold]",
// e.g. "raised_bed:4x2:direct:cold". Enum values are checked by the setup flow.
func parseBedFlag(value string) (*setup.BedForm, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 3 || len(parts) > 4 {
		return nil, fmt.Errorf("invalid --bed %q: expected type:LENGTHxWIDTH:sunlight[:cold]", value)
	}

	dims := strings.SplitN(strings.ToLower(parts[1]), "x", 2)
	if len(dims) != 2 {
		return nil, fmt.Errorf("invalid --bed %q: size must be LENGTHxWIDTH", value)
	}
	length, err := strconv.Atoi(strings.TrimSpace(dims[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid --bed %q: length: %w", value, err)
	}
	width, err := strconv.Atoi(strings.TrimSpace(dims[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid --bed %q: width: %w", value, err)
	}

	form := &setup.BedForm{
		Type:     bed.Type(strings.TrimSpace(parts[0])),
		Length:   length,
		Width:    width,
		Sunlight: bed.Sunlight(strings.TrimSpace(parts[2])),
	}
	if len(parts) == 4 {
		if parts[3] != "cold" {
			return nil, fmt.Errorf("invalid --bed %q: unknown option %q", value, parts[3])
		}
		form.ColdFrame = true
	}
	return form, nil
}

// parseBedFlags parses every --bed value in order
func parseBedFlags(values []string) ([]*setup.BedForm, error) {
	forms := make([]*setup.BedForm, 0, len(values))
	for _, v := range values {
		form, err := parseBedFlag(v)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}
