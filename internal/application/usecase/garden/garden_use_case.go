package garden

import (
	"context"
	"fmt"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/dto"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/input"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/service"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/garden"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generator produces planting plans and care recommendations
type Generator interface {
	Plan(ctx context.Context, availableSpace string, desiredPlants []string, plantingDate string) service.Result
	Care(ctx context.Context, plant string) service.Result
}

// RecordStore is the part of the garden record store the use case needs
type RecordStore interface {
	AddPlantingPlan(ctx context.Context, plan map[string]interface{}) (garden.Record, error)
	AddPlantingRecord(ctx context.Context, record map[string]interface{}) (garden.Record, error)
	AddHarvestRecord(ctx context.Context, record map[string]interface{}) (garden.Record, error)
	PlantingPlans() []garden.Record
	PlantingRecords() []garden.Record
	HarvestRecords() []garden.Record
}

var (
	_ Generator           = (*service.PlanGenerator)(nil)
	_ RecordStore         = (*service.GardenRecordStore)(nil)
	_ input.GardenUseCase = (*GardenUseCaseImpl)(nil)
)

// GardenUseCaseImpl handles garden requests for one configured entry
type GardenUseCaseImpl struct {
	generator Generator
	store     RecordStore
	logger    *zap.Logger
}

// NewGardenUseCase creates a use case over generator and store
func NewGardenUseCase(generator Generator, store RecordStore, logger *zap.Logger) *GardenUseCaseImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GardenUseCaseImpl{
		generator: generator,
		store:     store,
		logger:    logger,
	}
}

// GeneratePlantingPlan generates a plan and stores it together with its parameters.
// A failed generation is stored as its error message, the same way a plan is.
func (u *GardenUseCaseImpl) GeneratePlantingPlan(ctx context.Context, req dto.GeneratePlantingPlanRequest) (*dto.PlantingPlanResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	log := u.requestLogger("generate_planting_plan")

	result := u.generator.Plan(ctx, req.AvailableSpace, req.DesiredPlants, req.PlantingDate)
	if !result.OK() {
		log.Warn("planting plan generation failed, storing error message", zap.Error(result.Err))
	}

	resp := &dto.PlantingPlanResponse{
		Plan:       result.Message(),
		Parameters: req.Parameters(),
	}
	if _, err := u.store.AddPlantingPlan(ctx, map[string]interface{}{
		dto.FieldPlan:       resp.Plan,
		dto.FieldParameters: resp.Parameters,
	}); err != nil {
		return nil, fmt.Errorf("failed to store planting plan: %w", err)
	}

	log.Info("planting plan stored", zap.Int("plants", len(req.DesiredPlants)))
	return resp, nil
}

// RecordPlanting stores a planting event
func (u *GardenUseCaseImpl) RecordPlanting(ctx context.Context, req dto.RecordPlantingRequest) (*dto.RecordResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	rec, err := u.store.AddPlantingRecord(ctx, req.Fields())
	if err != nil {
		return nil, fmt.Errorf("failed to store planting record: %w", err)
	}
	u.requestLogger("record_planting").Info("planting recorded",
		zap.String("plant", req.Plant),
		zap.String("location", req.Location))
	return &dto.RecordResponse{Success: true, Record: rec}, nil
}

// RecordHarvest stores a harvest event
func (u *GardenUseCaseImpl) RecordHarvest(ctx context.Context, req dto.RecordHarvestRequest) (*dto.RecordResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	rec, err := u.store.AddHarvestRecord(ctx, req.Fields())
	if err != nil {
		return nil, fmt.Errorf("failed to store harvest record: %w", err)
	}
	u.requestLogger("record_harvest").Info("harvest recorded", zap.String("plant", req.Plant))
	return &dto.RecordResponse{Success: true, Record: rec}, nil
}

// GetGardenStatus returns the stored plans, plantings and harvests
func (u *GardenUseCaseImpl) GetGardenStatus(ctx context.Context) (*dto.GardenStatusResponse, error) {
	return &dto.GardenStatusResponse{
		PlantingPlans:   nonNil(u.store.PlantingPlans()),
		PlantingRecords: nonNil(u.store.PlantingRecords()),
		HarvestRecords:  nonNil(u.store.HarvestRecords()),
	}, nil
}

// GetPlantCareRecommendations asks for care advice. Nothing is stored.
func (u *GardenUseCaseImpl) GetPlantCareRecommendations(ctx context.Context, req dto.PlantCareRequest) (*dto.PlantCareResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	result := u.generator.Care(ctx, req.Plant)
	if !result.OK() {
		u.requestLogger("get_plant_care").Warn("care recommendation failed", zap.Error(result.Err))
	}
	return &dto.PlantCareResponse{
		Plant:           req.Plant,
		Recommendations: result.Message(),
	}, nil
}

func (u *GardenUseCaseImpl) requestLogger(op string) *zap.Logger {
	return u.logger.With(zap.String("operation", op), zap.String("request_id", uuid.NewString()))
}

// nonNil keeps empty sequences encoding as [] rather than null
func nonNil(records []garden.Record) []garden.Record {
	if records == nil {
		return []garden.Record{}
	}
	return records
}
