package cli

import (
	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/dto"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/input"
)

// GardenController handles the garden record commands
type GardenController struct {
	services func() Services
}

// NewGardenController creates a new garden controller
func NewGardenController(services func() Services) *GardenController {
	return &GardenController{services: services}
}

// run resolves the use case for the current entry and hands it to fn.
// fn returns the success message and data to present.
func (c *GardenController) run(cmd *cobra.Command, fn func(uc input.GardenUseCase) (string, interface{}, error)) error {
	s := c.services()
	uc, err := s.GardenUseCase(cmd.Context())
	if err != nil {
		return s.Presenter().PresentError(err)
	}
	message, data, err := fn(uc)
	if err != nil {
		return s.Presenter().PresentError(err)
	}
	return s.Presenter().PresentSuccess(message, data)
}

// PlanCommand creates 'plan' command
func (c *GardenController) PlanCommand() *cobra.Command {
	var (
		space  string
		plants []string
		date   string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate an AI planting plan and store it",
		Example: `  smartfarm plan --space "2m x 1m raised bed" --plant tomato --plant basil
  smartfarm plan --space "balcony" --plant lettuce --date 2024-04-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(uc input.GardenUseCase) (string, interface{}, error) {
				result, err := uc.GeneratePlantingPlan(cmd.Context(), dto.GeneratePlantingPlanRequest{
					AvailableSpace: space,
					DesiredPlants:  plants,
					PlantingDate:   date,
				})
				return "Planting plan generated", result, err
			})
		},
	}

	cmd.Flags().StringVarP(&space, "space", "s", "", "Available space")
	cmd.Flags().StringArrayVarP(&plants, "plant", "p", []string{}, "Desired plant (repeatable)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Planting date")

	return cmd
}

// PlantCommand creates 'plant' command
func (c *GardenController) PlantCommand() *cobra.Command {
	var (
		plant    string
		location string
		date     string
	)

	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Record a planting",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(uc input.GardenUseCase) (string, interface{}, error) {
				result, err := uc.RecordPlanting(cmd.Context(), dto.RecordPlantingRequest{
					Plant:    plant,
					Location: location,
					Date:     date,
				})
				return "Planting recorded", result, err
			})
		},
	}

	cmd.Flags().StringVarP(&plant, "plant", "p", "", "Plant name")
	cmd.Flags().StringVarP(&location, "location", "l", "", "Where it was planted")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Planting date")

	return cmd
}

// HarvestCommand creates 'harvest' command
func (c *GardenController) HarvestCommand() *cobra.Command {
	var (
		plant       string
		date        string
		yieldAmount string
	)

	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Record a harvest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(uc input.GardenUseCase) (string, interface{}, error) {
				result, err := uc.RecordHarvest(cmd.Context(), dto.RecordHarvestRequest{
					Plant:       plant,
					Date:        date,
					YieldAmount: yieldAmount,
				})
				return "Harvest recorded", result, err
			})
		},
	}

	cmd.Flags().StringVarP(&plant, "plant", "p", "", "Plant name")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Harvest date")
	cmd.Flags().StringVarP(&yieldAmount, "yield", "y", "", "Yield amount")

	return cmd
}

// StatusCommand creates 'status' command
func (c *GardenController) StatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored plans, plantings and harvests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(uc input.GardenUseCase) (string, interface{}, error) {
				result, err := uc.GetGardenStatus(cmd.Context())
				return "Garden status", result, err
			})
		},
	}
}

// CareCommand creates 'care' command
func (c *GardenController) CareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "care [plant]",
		Short: "Get care recommendations for a plant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(uc input.GardenUseCase) (string, interface{}, error) {
				result, err := uc.GetPlantCareRecommendations(cmd.Context(), dto.PlantCareRequest{Plant: args[0]})
				return "Care recommendations", result, err
			})
		},
	}
}
