package dto

import "github.com/YoshitsuguKoike/smartfarm/internal/domain/model/garden"

// Parameter names shared by requests and stored records
const (
	ParamAvailableSpace = "available_space"
	ParamDesiredPlants  = "desired_plants"
	ParamPlantingDate   = "planting_date"
	ParamPlant          = "plant"
	ParamLocation       = "location"
	ParamDate           = "date"
	ParamYieldAmount    = "yield_amount"

	FieldPlan       = "plan"
	FieldParameters = "parameters"
)

// GeneratePlantingPlanRequest asks for an AI planting plan
type GeneratePlantingPlanRequest struct {
	AvailableSpace string   `json:"available_space" validate:"notblank"`
	DesiredPlants  []string `json:"desired_plants" validate:"required,min=1,dive,notblank"`
	PlantingDate   string   `json:"planting_date,omitempty"`
}

// Parameters returns the request as stored with the plan.
// An empty planting date is left out.
func (r GeneratePlantingPlanRequest) Parameters() map[string]interface{} {
	plants := make([]interface{}, len(r.DesiredPlants))
	for i, p := range r.DesiredPlants {
		plants[i] = p
	}
	params := map[string]interface{}{
		ParamAvailableSpace: r.AvailableSpace,
		ParamDesiredPlants:  plants,
	}
	if r.PlantingDate != "" {
		params[ParamPlantingDate] = r.PlantingDate
	}
	return params
}

// PlantingPlanResponse is the generated plan with its inputs
type PlantingPlanResponse struct {
	Plan       string                 `json:"plan"`
	Parameters map[string]interface{} `json:"parameters"`
}

// RecordPlantingRequest records something being planted
type RecordPlantingRequest struct {
	Plant    string `json:"plant" validate:"notblank"`
	Location string `json:"location" validate:"notblank"`
	Date     string `json:"date,omitempty"`
}

// Fields returns the record fields, leaving out omitted optionals
func (r RecordPlantingRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		ParamPlant:    r.Plant,
		ParamLocation: r.Location,
	}
	if r.Date != "" {
		fields[ParamDate] = r.Date
	}
	return fields
}

// RecordHarvestRequest records a harvest
type RecordHarvestRequest struct {
	Plant       string `json:"plant" validate:"notblank"`
	Date        string `json:"date,omitempty"`
	YieldAmount string `json:"yield_amount,omitempty"`
}

// Fields returns the record fields, leaving out omitted optionals
func (r RecordHarvestRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		ParamPlant: r.Plant,
	}
	if r.Date != "" {
		fields[ParamDate] = r.Date
	}
	if r.YieldAmount != "" {
		fields[ParamYieldAmount] = r.YieldAmount
	}
	return fields
}

// RecordResponse confirms a stored record
type RecordResponse struct {
	Success bool          `json:"success"`
	Record  garden.Record `json:"record"`
}

// GardenStatusResponse holds the current record sequences
type GardenStatusResponse struct {
	PlantingPlans   []garden.Record `json:"planting_plans"`
	PlantingRecords []garden.Record `json:"planting_records"`
	HarvestRecords  []garden.Record `json:"harvest_records"`
}

// PlantCareRequest asks for care recommendations
type PlantCareRequest struct {
	Plant string `json:"plant" validate:"notblank"`
}

// PlantCareResponse holds the recommendations text
type PlantCareResponse struct {
	Plant           string `json:"plant"`
	Recommendations string `json:"recommendations"`
}
