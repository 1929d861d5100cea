package presenter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/dto"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/garden"
)

// LabelSource supplies display names for enum values
type LabelSource interface {
	BedTypeName(t bed.Type) string
	SunlightName(s bed.Sunlight) string
}

// CLIGardenPresenter implements output.Presenter for terminal output
type CLIGardenPresenter struct {
	output io.Writer
	labels LabelSource
}

// NewCLIGardenPresenter creates a CLI presenter. labels may be nil.
func NewCLIGardenPresenter(output io.Writer, labels LabelSource) output.Presenter {
	return &CLIGardenPresenter{output: output, labels: labels}
}

// PresentSuccess presents a successful result
func (p *CLIGardenPresenter) PresentSuccess(message string, data interface{}) error {
	fmt.Fprintf(p.output, "✓ %s\n\n", message)

	switch v := data.(type) {
	case *dto.PlantingPlanResponse:
		p.presentPlan(v)
	case *dto.RecordResponse:
		p.presentRecord(v.Record)
	case *dto.GardenStatusResponse:
		p.presentStatus(v)
	case *dto.PlantCareResponse:
		fmt.Fprintf(p.output, "Plant: %s\n\n%s\n", v.Plant, v.Recommendations)
	case *dto.EntryDTO:
		p.presentEntry(v)
	case *dto.EntryListResponse:
		p.presentEntries(v)
	case *dto.AgentCheckResponse:
		fmt.Fprintf(p.output, "Entry: %s\nAgent: %s\n", v.EntryID, v.Agent)
	case *dto.VersionResponse:
		fmt.Fprintf(p.output, "Version: %s\n", v.Version)
		if v.BuildInfo != "" {
			fmt.Fprintf(p.output, "Build: %s\n", v.BuildInfo)
		}
	case nil:
	default:
		// Fallback for unknown types
		fmt.Fprintf(p.output, "%+v\n", data)
	}
	return nil
}

// PresentError presents an error
func (p *CLIGardenPresenter) PresentError(err error) error {
	fmt.Fprintf(p.output, "✗ Error: %v\n", err)
	return err
}

func (p *CLIGardenPresenter) presentPlan(plan *dto.PlantingPlanResponse) {
	fmt.Fprintf(p.output, "Space: %v\n", plan.Parameters[dto.ParamAvailableSpace])
	if plants, ok := plan.Parameters[dto.ParamDesiredPlants].([]interface{}); ok {
		names := make([]string, len(plants))
		for i, v := range plants {
			names[i] = fmt.Sprint(v)
		}
		fmt.Fprintf(p.output, "Plants: %s\n", strings.Join(names, ", "))
	}
	if date, ok := plan.Parameters[dto.ParamPlantingDate]; ok {
		fmt.Fprintf(p.output, "Planting date: %v\n", date)
	}
	fmt.Fprintf(p.output, "\n%s\n", plan.Plan)
}

func (p *CLIGardenPresenter) presentStatus(status *dto.GardenStatusResponse) {
	sections := []struct {
		title   string
		records []garden.Record
	}{
		{"Planting plans", status.PlantingPlans},
		{"Planting records", status.PlantingRecords},
		{"Harvest records", status.HarvestRecords},
	}
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(p.output)
		}
		fmt.Fprintf(p.output, "%s (%d):\n", s.title, len(s.records))
		for _, r := range s.records {
			fmt.Fprintf(p.output, "  - %s\n", summarize(r))
		}
	}
}

func (p *CLIGardenPresenter) presentRecord(r garden.Record) {
	for _, k := range sortedKeys(r) {
		fmt.Fprintf(p.output, "%s: %v\n", k, r[k])
	}
}

func (p *CLIGardenPresenter) presentEntry(e *dto.EntryDTO) {
	fmt.Fprintf(p.output, "Entry: %s\n", e.Title)
	fmt.Fprintf(p.output, "ID: %s\n", e.ID)
	fmt.Fprintf(p.output, "Location: %s\n", e.Location)
	if len(e.Beds) == 0 {
		fmt.Fprintf(p.output, "Beds: none\n")
		return
	}
	fmt.Fprintf(p.output, "\nBeds:\n")
	for _, b := range e.Beds {
		fmt.Fprintf(p.output, "  - %s\n", p.describeBed(b))
	}
}

func (p *CLIGardenPresenter) presentEntries(list *dto.EntryListResponse) {
	if len(list.Entries) == 0 {
		fmt.Fprintf(p.output, "No entries configured\n")
		return
	}
	for _, e := range list.Entries {
		fmt.Fprintf(p.output, "%s  %s  (%s, %d beds)\n", e.ID, e.Title, e.Location, len(e.Beds))
	}
}

func (p *CLIGardenPresenter) describeBed(b bed.Definition) string {
	typeName, sunlight := b.Type.String(), b.Sunlight.String()
	if p.labels != nil {
		typeName, sunlight = p.labels.BedTypeName(b.Type), p.labels.SunlightName(b.Sunlight)
	}
	desc := fmt.Sprintf("%s: %s %dx%d, %s", b.Name, typeName, b.Length, b.Width, sunlight)
	if b.ColdFrame {
		desc += ", cold frame"
	}
	return desc
}

// summarize renders a record on one line, created_at first
func summarize(r garden.Record) string {
	var parts []string
	if ts := r.CreatedAt(); ts != "" {
		parts = append(parts, "["+ts+"]")
	}
	for _, k := range sortedKeys(r) {
		if k == garden.FieldCreatedAt {
			continue
		}
		v := fmt.Sprint(r[k])
		if k == dto.FieldPlan {
			v = firstLine(v)
		}
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, " ")
}

func firstLine(s string) string {
	const maxSummaryRunes = 60
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + "..."
	}
	if r := []rune(s); len(r) > maxSummaryRunes {
		s = string(r[:maxSummaryRunes]) + "..."
	}
	return s
}

func sortedKeys(r garden.Record) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
