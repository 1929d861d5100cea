package presenter_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/YoshitsuguKoike/smartfarm/internal/adapter/presenter"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/dto"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/garden"
	"github.com/YoshitsuguKoike/smartfarm/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIGardenPresenter_Plan(t *testing.T) {
	buf := &bytes.Buffer{}
	p := presenter.NewCLIGardenPresenter(buf, nil)

	err := p.PresentSuccess("Planting plan generated", &dto.PlantingPlanResponse{
		Plan: "PLAN_TEXT",
		Parameters: map[string]interface{}{
			dto.ParamAvailableSpace: "10 sq m",
			dto.ParamDesiredPlants:  []interface{}{"tomato", "basil"},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "✓ Planting plan generated\n"))
	assert.Contains(t, out, "Space: 10 sq m\n")
	assert.Contains(t, out, "Plants: tomato, basil\n")
	assert.NotContains(t, out, "Planting date")
	assert.Contains(t, out, "\nPLAN_TEXT\n")
}

func TestCLIGardenPresenter_Status(t *testing.T) {
	buf := &bytes.Buffer{}
	p := presenter.NewCLIGardenPresenter(buf, nil)

	err := p.PresentSuccess("Garden status", &dto.GardenStatusResponse{
		PlantingPlans: []garden.Record{{
			garden.FieldCreatedAt: "2024-01-01T00:00:00Z",
			dto.FieldPlan:         "Line one\nLine two",
		}},
		PlantingRecords: []garden.Record{},
		HarvestRecords: []garden.Record{{
			garden.FieldCreatedAt: "2024-07-01T00:00:00Z",
			dto.ParamPlant:        "tomato",
			dto.ParamYieldAmount:  "2 kg",
		}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Planting plans (1):\n  - [2024-01-01T00:00:00Z] plan=Line one...\n")
	assert.Contains(t, out, "Planting records (0):\n")
	assert.Contains(t, out, "  - [2024-07-01T00:00:00Z] plant=tomato yield_amount=2 kg\n")
}

func TestCLIGardenPresenter_Entry(t *testing.T) {
	buf := &bytes.Buffer{}
	p := presenter.NewCLIGardenPresenter(buf, i18n.New("de"))

	err := p.PresentSuccess("Entry created", &dto.EntryDTO{
		ID:       "01H",
		Title:    "Smart Home Farming",
		Location: "home",
		Beds: []bed.Definition{
			{Name: "Hochbeet 1", Type: bed.TypeRaisedBed, Length: 3, Width: 1, ColdFrame: true, Sunlight: bed.SunlightDirect},
		},
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "  - Hochbeet 1: Hochbeet 3x1, Direktes Sonnenlicht, cold frame\n")
}

func TestCLIGardenPresenter_Entries(t *testing.T) {
	buf := &bytes.Buffer{}
	p := presenter.NewCLIGardenPresenter(buf, nil)

	require.NoError(t, p.PresentSuccess("Entries", &dto.EntryListResponse{}))
	assert.Contains(t, buf.String(), "No entries configured")
}

func TestCLIGardenPresenter_PresentError(t *testing.T) {
	buf := &bytes.Buffer{}
	p := presenter.NewCLIGardenPresenter(buf, nil)

	testErr := errors.New("storage offline")
	assert.ErrorIs(t, p.PresentError(testErr), testErr)
	assert.Equal(t, "✗ Error: storage offline\n", buf.String())
}

func TestCLIGardenPresenter_StatusTruncatesLongPlans(t *testing.T) {
	buf := &bytes.Buffer{}
	p := presenter.NewCLIGardenPresenter(buf, nil)

	err := p.PresentSuccess("Garden status", &dto.GardenStatusResponse{
		PlantingPlans: []garden.Record{{dto.FieldPlan: strings.Repeat("a", 80)}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "  - plan="+strings.Repeat("a", 60)+"...\n")
	assert.NotContains(t, buf.String(), strings.Repeat("a", 61))
}

func TestCLIGardenPresenter_AgentCheck(t *testing.T) {
	buf := &bytes.Buffer{}
	p := presenter.NewCLIGardenPresenter(buf, nil)

	require.NoError(t, p.PresentSuccess("Agent reachable", &dto.AgentCheckResponse{EntryID: "01H", Agent: "gemini"}))
	assert.Equal(t, "✓ Agent reachable\n\nEntry: 01H\nAgent: gemini\n", buf.String())
}
