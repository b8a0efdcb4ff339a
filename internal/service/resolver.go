// Package service contains the application's business logic: vehicle field
// resolution, repair log validation, and the CRUD flows built on the
// repository layer.
package service

import (
	"strings"
	"time"

	"mechmate/internal/models"
)

// VehicleSubmission is the raw vehicle form payload. The catalog dropdown
// fields and the custom free-text fields are both carried; use_custom
// selects which trio is authoritative. Year fields are pointers so an
// absent value is distinguishable from zero.
type VehicleSubmission struct {
	UseCustom    bool   `json:"use_custom"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         *int   `json:"year"`
	CustomMake   string `json:"custom_make"`
	CustomModel  string `json:"custom_model"`
	CustomYear   *int   `json:"custom_year"`
	LicensePlate string `json:"license_plate"`
}

// ResolvedVehicle is the canonical tuple ready for persistence, plus an echo
// of which input mode produced it so edit forms can default correctly.
type ResolvedVehicle struct {
	Make         string
	Model        string
	Year         int
	LicensePlate string
	Custom       bool
}

// ResolveVehicleFields decides the effective (make, model, year, plate)
// tuple for a submission, or returns the validation failure.
//
// Validation stops at the first failing required field, so the returned
// FieldErrors carries at most one entry per attempt. The license plate is
// checked first, then the active mode's fields in make, model, year order.
// Catalog selections are trusted as submitted: no cross-check that the model
// belongs to the make or the year to the model.
//
// The same function serves the add and edit flows.
func ResolveVehicleFields(sub VehicleSubmission) (*ResolvedVehicle, models.FieldErrors) {
	if strings.TrimSpace(sub.LicensePlate) == "" {
		return nil, missingField("license_plate")
	}

	if sub.UseCustom {
		if strings.TrimSpace(sub.CustomMake) == "" {
			return nil, missingField("custom_make")
		}
		if strings.TrimSpace(sub.CustomModel) == "" {
			return nil, missingField("custom_model")
		}
		if sub.CustomYear == nil {
			return nil, missingField("custom_year")
		}
		return &ResolvedVehicle{
			Make:         sub.CustomMake,
			Model:        sub.CustomModel,
			Year:         *sub.CustomYear,
			LicensePlate: sub.LicensePlate,
			Custom:       true,
		}, nil
	}

	if strings.TrimSpace(sub.Make) == "" {
		return nil, missingField("make")
	}
	if strings.TrimSpace(sub.Model) == "" {
		return nil, missingField("model")
	}
	if sub.Year == nil {
		return nil, missingField("year")
	}
	return &ResolvedVehicle{
		Make:         sub.Make,
		Model:        sub.Model,
		Year:         *sub.Year,
		LicensePlate: sub.LicensePlate,
		Custom:       false,
	}, nil
}

// LogSubmission is the raw repair log form payload. Mileage is optional; a
// non-integer value is rejected upstream by body parsing.
type LogSubmission struct {
	Date        string `json:"date"`
	Mileage     *int   `json:"mileage"`
	Description string `json:"description"`
}

// logDateLayout is the wire format for service dates.
const logDateLayout = "2006-01-02"

// ValidatedLog is a log submission with the date parsed and ready to persist.
type ValidatedLog struct {
	Date        time.Time
	Mileage     *int
	Description string
}

// ValidateLogFields validates a repair log submission. The date must parse
// as a calendar date and the description must be non-empty after trimming.
// Mileage is passed through unchecked when present; negative values are
// accepted.
func ValidateLogFields(sub LogSubmission) (*ValidatedLog, models.FieldErrors) {
	date, err := time.Parse(logDateLayout, sub.Date)
	if err != nil {
		return nil, invalidDate("date")
	}

	if strings.TrimSpace(sub.Description) == "" {
		return nil, missingField("description")
	}

	return &ValidatedLog{
		Date:        date,
		Mileage:     sub.Mileage,
		Description: sub.Description,
	}, nil
}

func missingField(field string) models.FieldErrors {
	e := models.NewMissingFieldError(field)
	return models.FieldErrors{{Field: field, Message: e.Message}}
}

func invalidDate(field string) models.FieldErrors {
	e := models.NewInvalidDateError(field)
	return models.FieldErrors{{Field: field, Message: e.Message}}
}
