package presenter

import (
	"errors"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/dto"
	"github.com/YoshitsuguKoike/smartfarm/internal/application/usecase/setup"
)

// fieldErrors extracts per-field messages from validation and form errors
func fieldErrors(err error) map[string]string {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	var ferr setup.FormErrors
	if errors.As(err, &ferr) {
		return ferr
	}
	return nil
}
