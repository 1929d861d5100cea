package input

import (
	"context"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/dto"
)

// GardenUseCase defines the operations exposed to the command surface
type GardenUseCase interface {
	// GeneratePlantingPlan generates a plan and appends it to the garden records
	GeneratePlantingPlan(ctx context.Context, req dto.GeneratePlantingPlanRequest) (*dto.PlantingPlanResponse, error)

	// RecordPlanting appends a planting event
	RecordPlanting(ctx context.Context, req dto.RecordPlantingRequest) (*dto.RecordResponse, error)

	// RecordHarvest appends a harvest event
	RecordHarvest(ctx context.Context, req dto.RecordHarvestRequest) (*dto.RecordResponse, error)

	// GetGardenStatus returns the current record sequences
	GetGardenStatus(ctx context.Context) (*dto.GardenStatusResponse, error)

	// GetPlantCareRecommendations asks for care advice without storing it
	GetPlantCareRecommendations(ctx context.Context, req dto.PlantCareRequest) (*dto.PlantCareResponse, error)
}
