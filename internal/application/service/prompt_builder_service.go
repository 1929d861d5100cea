package service

import (
	"fmt"
	"strings"

	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
)

// unspecifiedDate is written into the plan prompt when no planting date is given
const unspecifiedDate = "not specified"

// PromptBuilderService builds the fixed gardening prompts
type PromptBuilderService struct {
	location string
	beds     []bed.Definition
}

// NewPromptBuilderService creates a prompt builder for one garden location.
// beds may be empty.
func NewPromptBuilderService(location string, beds []bed.Definition) *PromptBuilderService {
	return &PromptBuilderService{
		location: location,
		beds:     beds,
	}
}

// BuildPlantingPlanPrompt creates the planting-plan prompt
func (s *PromptBuilderService) BuildPlantingPlanPrompt(availableSpace string, desiredPlants []string, plantingDate string) string {
	if strings.TrimSpace(plantingDate) == "" {
		plantingDate = unspecifiedDate
	}

	var sb strings.Builder

	sb.WriteString("As a gardening expert, create a planting plan for the following:\n")
	sb.WriteString(fmt.Sprintf("- Available space: %s\n", availableSpace))
	sb.WriteString(fmt.Sprintf("- Desired plants: %s\n", strings.Join(desiredPlants, ", ")))
	sb.WriteString(fmt.Sprintf("- Planting date: %s\n", plantingDate))
	sb.WriteString(fmt.Sprintf("- Location: %s\n", s.location))

	if len(s.beds) > 0 {
		sb.WriteString("\nThe garden has these beds:\n")
		for _, b := range s.beds {
			coldFrame := ""
			if b.ColdFrame {
				coldFrame = ", with cold frame"
			}
			sb.WriteString(fmt.Sprintf("- %s: %dx%d, %s sunlight%s\n", b.Name, b.Length, b.Width, b.Sunlight, coldFrame))
		}
	}

	sb.WriteString("\nConsider:\n")
	sb.WriteString("1. Companion planting benefits\n")
	sb.WriteString("2. Space requirements for each plant\n")
	sb.WriteString("3. Seasonal timing\n")
	sb.WriteString("4. Local climate conditions\n")
	sb.WriteString("5. Plant spacing and layout\n")
	sb.WriteString("\n")

	sb.WriteString("Provide a detailed plan including:\n")
	sb.WriteString("- Plant placement recommendations\n")
	sb.WriteString("- Timing for each plant\n")
	sb.WriteString("- Care instructions\n")

	return sb.String()
}

// BuildPlantCarePrompt creates the plant-care prompt
func (s *PromptBuilderService) BuildPlantCarePrompt(plant string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("As a gardening expert, provide detailed care recommendations for %s in %s.\n", plant, s.location))
	sb.WriteString("Include:\n")
	sb.WriteString("1. Watering requirements\n")
	sb.WriteString("2. Sunlight needs\n")
	sb.WriteString("3. Soil preferences\n")
	sb.WriteString("4. Common issues and solutions\n")
	sb.WriteString("5. Harvesting tips (if applicable)\n")

	return sb.String()
}
