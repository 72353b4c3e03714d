package dto

import (
	"starlight/internal/domains/booking/model"
	journalModel "starlight/internal/domains/journal/model"
)

// QuickBookRequest is the three-field quick booking form.
type QuickBookRequest struct {
	Name  string `json:"name"  validate:"notblank"`
	Email string `json:"email" validate:"notblank"`
	DOB   string `json:"dob"   validate:"notblank"`
}

func (r QuickBookRequest) Fields() map[string]string {
	return map[string]string{
		journalModel.FieldName:  r.Name,
		journalModel.FieldEmail: r.Email,
		journalModel.FieldDOB:   r.DOB,
	}
}

// BookingRequest is a full booking form submission.
type BookingRequest struct {
	Fields map[string]string `json:"fields" validate:"required"`
	// Constraints are keyed by field name. Nil means the API defaults.
	Constraints map[string]model.Constraint `json:"-"`
	// Honeypot names the hidden trap field.
	Honeypot string `json:"-"`
	// Endpoint is where the booking is posted; empty or non-web schemes skip
	// the network attempt.
	Endpoint string `json:"-"`
}

// Result is reported back to the visitor.
type Result struct {
	Outcome model.Outcome        `json:"outcome"`
	Status  string               `json:"status,omitempty"`
	Invalid map[string]string    `json:"invalid,omitempty"`
	Record  *journalModel.Record `json:"record,omitempty"`
}
