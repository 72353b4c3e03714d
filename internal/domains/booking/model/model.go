package model

import (
	"strconv"
	"strings"
)

// Outcome is how a booking submission ended.
type Outcome string

const (
	// OutcomeDiscarded is a honeypot hit: nothing saved, nothing shown.
	OutcomeDiscarded Outcome = "discarded"
	OutcomeInvalid   Outcome = "invalid"
	// OutcomeSaved is a quick-form booking stored in the journal.
	OutcomeSaved Outcome = "saved"
	// OutcomeConfirmed means the endpoint accepted the booking.
	OutcomeConfirmed Outcome = "confirmed"
	// OutcomeFallback means the endpoint failed and the journal holds it.
	OutcomeFallback Outcome = "fallback"
	// OutcomeLocalOnly means no endpoint was configured.
	OutcomeLocalOnly Outcome = "local_only"
	OutcomeFailed    Outcome = "failed"
)

// Reset reports whether the form should be cleared after this outcome.
func (o Outcome) Reset() bool {
	switch o {
	case OutcomeSaved, OutcomeConfirmed, OutcomeFallback, OutcomeLocalOnly:
		return true
	default:
		return false
	}
}

const (
	DefaultHoneypot = "website"

	InputEmail  = "email"
	InputDate   = "date"
	InputURL    = "url"
	InputNumber = "number"
	InputTel    = "tel"
)

// Constraint mirrors the validation attributes of one form control.
type Constraint struct {
	Required  bool
	Type      string
	MinLength int
	MaxLength int
}

// ParseLength reads a minlength or maxlength attribute; anything that is not
// a positive integer means no limit.
func ParseLength(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// Tag converts the constraint into a validator tag.
func (c Constraint) Tag() string {
	tags := []string{"omitempty"}
	if c.Required {
		tags[0] = "notblank"
	}

	switch strings.ToLower(c.Type) {
	case InputEmail:
		tags = append(tags, "email")
	case InputDate:
		tags = append(tags, "datetime=2006-01-02")
	case InputURL:
		tags = append(tags, "url")
	case InputNumber:
		tags = append(tags, "numeric")
	case InputTel:
		tags = append(tags, "phone")
	}

	if c.MinLength > 0 {
		tags = append(tags, "min="+strconv.Itoa(c.MinLength))
	}

	if c.MaxLength > 0 {
		tags = append(tags, "max="+strconv.Itoa(c.MaxLength))
	}

	return strings.Join(tags, ",")
}

// DefaultConstraints apply to API submissions, which carry no markup.
func DefaultConstraints() map[string]Constraint {
	return map[string]Constraint{
		"name":  {Required: true, MaxLength: 100},
		"email": {Required: true, Type: InputEmail, MaxLength: 100},
		"dob":   {Type: InputDate},
		"phone": {Type: InputTel},
	}
}
