package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/dto"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/usecase/setup"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/entry"
)

// SetupController handles entry configuration commands
type SetupController struct {
	services func() Services
	prompter Prompter
}

// NewSetupController creates a new setup controller
func NewSetupController(services func() Services, prompter Prompter) *SetupController {
	return &SetupController{services: services, prompter: prompter}
}

// SetupCommand creates 'setup' command
func (c *SetupController) SetupCommand() *cobra.Command {
	var (
		apiKey   string
		location string
		beds     []string
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure a new garden entry",
		Long: `Configure a new garden entry: API key, location and beds.
Without flags the answers are asked interactively. With --api-key, --location
or --bed the entry is created from the flags alone.`,
		Example: `  smartfarm setup
  smartfarm setup --api-key KEY --location home --bed raised_bed:4x2:direct --bed pot:1x1:indirect:cold`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.services()
			flow := s.NewSetupFlow()

			var err error
			if apiKey != "" || location != "" || len(beds) > 0 {
				err = c.setupFromFlags(s, flow, apiKey, location, beds)
			} else {
				err = c.setupInteractive(s, flow, cmd.ErrOrStderr())
			}
			if err != nil {
				return s.Presenter().PresentError(err)
			}

			cfg, err := c.save(cmd, s, flow)
			if err != nil {
				return s.Presenter().PresentError(err)
			}
			return s.Presenter().PresentSuccess("Entry created", dto.NewEntryDTO(cfg))
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (default: GEMINI_API_KEY)")
	cmd.Flags().StringVar(&location, "location", "", "Location zone")
	cmd.Flags().StringArrayVar(&beds, "bed", []string{}, "Bed as type:LENGTHxWIDTH:sunlight[:cold] (repeatable)")

	return cmd
}

// ReconfigureCommand creates 'reconfigure' command
func (c *SetupController) ReconfigureCommand() *cobra.Command {
	var beds []string

	cmd := &cobra.Command{
		Use:   "reconfigure",
		Short: "Add beds to an existing entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.services()
			existing, err := s.ResolveEntry(cmd.Context())
			if err != nil {
				return s.Presenter().PresentError(err)
			}
			flow := s.NewReconfigureFlow(existing)

			if len(beds) > 0 {
				err = submitBedFlags(flow, beds)
			} else {
				err = c.promptBeds(s, flow, cmd.ErrOrStderr())
			}
			if err != nil {
				return s.Presenter().PresentError(err)
			}

			cfg, err := c.save(cmd, s, flow)
			if err != nil {
				return s.Presenter().PresentError(err)
			}
			return s.Presenter().PresentSuccess("Entry updated", dto.NewEntryDTO(cfg))
		},
	}

	cmd.Flags().StringArrayVar(&beds, "bed", []string{}, "Bed as type:LENGTHxWIDTH:sunlight[:cold] (repeatable)")

	return cmd
}

// EntriesCommand creates 'entries' command
func (c *SetupController) EntriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "entries",
		Short: "List configured entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.services()
			all, err := s.EntryRepository().FindAll(cmd.Context())
			if err != nil {
				return s.Presenter().PresentError(err)
			}

			result := &dto.EntryListResponse{Entries: make([]*dto.EntryDTO, 0, len(all))}
			for _, cfg := range all {
				result.Entries = append(result.Entries, dto.NewEntryDTO(cfg))
			}
			return s.Presenter().PresentSuccess(fmt.Sprintf("%d entries", len(result.Entries)), result)
		},
	}
}

// RemoveCommand creates 'remove' command
func (c *SetupController) RemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [entry-id]",
		Short: "Remove a configured entry (its garden records are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.services()
			if err := s.EntryRepository().Delete(cmd.Context(), args[0]); err != nil {
				return s.Presenter().PresentError(err)
			}
			s.Logger().Info("entry removed", zap.String("entry", args[0]))
			return s.Presenter().PresentSuccess("Entry removed", nil)
		},
	}
}

// CheckCommand creates 'check' command
func (c *SetupController) CheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the entry's text generation credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.services()
			cfg, err := s.ResolveEntry(cmd.Context())
			if err != nil {
				return s.Presenter().PresentError(err)
			}
			gw, err := s.AgentGateway(cmd.Context())
			if err != nil {
				return s.Presenter().PresentError(err)
			}
			if err := gw.HealthCheck(cmd.Context()); err != nil {
				return s.Presenter().PresentError(fmt.Errorf("%s agent check failed: %w", gw.Name(), err))
			}
			return s.Presenter().PresentSuccess("Agent reachable", &dto.AgentCheckResponse{
				EntryID: cfg.ID,
				Agent:   gw.Name(),
			})
		},
	}
}

func (c *SetupController) save(cmd *cobra.Command, s Services, flow *setup.Flow) (*entry.Config, error) {
	cfg, err := flow.Result()
	if err != nil {
		return nil, err
	}
	if err := s.EntryRepository().Save(cmd.Context(), cfg); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	s.Logger().Info("entry saved",
		zap.String("entry", cfg.ID),
		zap.String("location", cfg.Location),
		zap.Int("beds", len(cfg.Beds)))
	return cfg, nil
}

func (c *SetupController) setupFromFlags(s Services, flow *setup.Flow, apiKey, location string, beds []string) error {
	if apiKey == "" {
		apiKey = s.DefaultAPIKey()
	}
	if err := flow.SubmitUser(setup.UserInput{APIKey: apiKey, Location: location}); err != nil {
		return err
	}
	return submitBedFlags(flow, beds)
}

// submitBedFlags submits each parsed --bed value, the last one finishing the flow
func submitBedFlags(flow *setup.Flow, values []string) error {
	forms, err := parseBedFlags(values)
	if err != nil {
		return err
	}
	if len(forms) == 0 {
		return flow.SubmitBed(setup.BedInput{})
	}
	for i, form := range forms {
		if err := flow.SubmitBed(setup.BedInput{Bed: form, AddAnother: i < len(forms)-1}); err != nil {
			return err
		}
	}
	return nil
}

func (c *SetupController) setupInteractive(s Services, flow *setup.Flow, errOut io.Writer) error {
	zones := flow.Zones()
	for flow.Step() == setup.StepUser {
		apiKey, err := c.prompter.Input("API key", s.DefaultAPIKey(), required, true)
		if err != nil {
			return err
		}
		idx, err := c.prompter.Select("Location", zones)
		if err != nil {
			return err
		}
		if err := flow.SubmitUser(setup.UserInput{APIKey: apiKey, Location: zones[idx]}); err != nil {
			if !reportFormErrors(errOut, err) {
				return err
			}
		}
	}
	return c.promptBeds(s, flow, errOut)
}

// promptBeds asks for beds until the user stops adding them.
// A rejected bed is asked again.
func (c *SetupController) promptBeds(s Services, flow *setup.Flow, errOut io.Writer) error {
	add, err := c.prompter.Confirm("Add a bed")
	if err != nil {
		return err
	}
	if !add {
		return flow.SubmitBed(setup.BedInput{})
	}

	for flow.Step() == setup.StepBed {
		form, err := c.promptBed(s)
		if err != nil {
			return err
		}
		another, err := c.prompter.Confirm("Add another bed")
		if err != nil {
			return err
		}
		if err := flow.SubmitBed(setup.BedInput{Bed: form, AddAnother: another}); err != nil {
			if !reportFormErrors(errOut, err) {
				return err
			}
		}
	}
	return nil
}

func (c *SetupController) promptBed(s Services) (*setup.BedForm, error) {
	labels := s.Translator()

	types := bed.Types()
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = labels.BedTypeName(t)
	}
	typeIdx, err := c.prompter.Select("Bed type", typeNames)
	if err != nil {
		return nil, err
	}

	length, err := c.promptSize("Length")
	if err != nil {
		return nil, err
	}
	width, err := c.promptSize("Width")
	if err != nil {
		return nil, err
	}
	coldFrame, err := c.prompter.Confirm("Cold frame")
	if err != nil {
		return nil, err
	}

	options := bed.SunlightOptions()
	sunNames := make([]string, len(options))
	for i, o := range options {
		sunNames[i] = labels.SunlightName(o)
	}
	sunIdx, err := c.prompter.Select("Sunlight", sunNames)
	if err != nil {
		return nil, err
	}

	return &setup.BedForm{
		Type:      types[typeIdx],
		Length:    length,
		Width:     width,
		ColdFrame: coldFrame,
		Sunlight:  options[sunIdx],
	}, nil
}

func (c *SetupController) promptSize(label string) (int, error) {
	value, err := c.prompter.Input(label, "", positiveInt, false)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(value))
}

// reportFormErrors prints form errors and reports whether err was one
func reportFormErrors(w io.Writer, err error) bool {
	var ferr setup.FormErrors
	if !errors.As(err, &ferr) {
		return false
	}
	fmt.Fprintf(w, "✗ %v\n", ferr)
	return true
}

func required(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value is required")
	}
	return nil
}

func positiveInt(value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return errors.New("enter a whole number of at least 1")
	}
	return nil
}
