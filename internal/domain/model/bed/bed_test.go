package bed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type englishNamer struct{}

func (englishNamer) BedTypeName(t Type) string {
	switch t {
	case TypeRaisedBed:
		return "Raised bed"
	case TypeDeepBed:
		return "Deep bed"
	default:
		return "Pot"
	}
}

func TestNextName_NumbersPerType(t *testing.T) {
	var beds []Definition
	for i := 0; i < 3; i++ {
		beds = append(beds, Definition{Name: NextName(beds, TypeRaisedBed, englishNamer{}), Type: TypeRaisedBed})
	}
	beds = append(beds, Definition{Name: NextName(beds, TypePot, englishNamer{}), Type: TypePot})

	names := make([]string, len(beds))
	for i, b := range beds {
		names[i] = b.Name
	}
	assert.Equal(t, []string{"Raised bed 1", "Raised bed 2", "Raised bed 3", "Pot 1"}, names)
}

func TestNextName_SkipsTakenName(t *testing.T) {
	existing := []Definition{
		{Name: "Pot 2", Type: TypeDeepBed},
		{Name: "Pot 1", Type: TypePot},
	}
	assert.Equal(t, "Pot 3", NextName(existing, TypePot, englishNamer{}))
}

func TestDefinition_Validate(t *testing.T) {
	valid := Definition{Type: TypeDeepBed, Length: 2, Width: 1, Sunlight: SunlightIndirect}

	tests := []struct {
		name    string
		mutate  func(d *Definition)
		wantErr error
	}{
		{name: "valid", mutate: func(d *Definition) {}},
		{name: "bad type", mutate: func(d *Definition) { d.Type = "tub" }, wantErr: ErrInvalidType},
		{name: "zero length", mutate: func(d *Definition) { d.Length = 0 }, wantErr: ErrInvalidLength},
		{name: "negative width", mutate: func(d *Definition) { d.Width = -1 }, wantErr: ErrInvalidWidth},
		{name: "bad sunlight", mutate: func(d *Definition) { d.Sunlight = "shade" }, wantErr: ErrInvalidSunlight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Equal(t, 2, valid.Area())
}
