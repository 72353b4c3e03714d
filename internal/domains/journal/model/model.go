package model

import (
	"encoding/json"
	"fmt"
	"maps"
)

const (
	EntityName = "booking record"

	FieldName  = "name"
	FieldEmail = "email"
	FieldDOB   = "dob"

	KeyCreated        = "created"
	KeySubmittedAt    = "submittedAt"
	KeySavedAt        = "savedAt"
	KeyServerResponse = "serverResponse"

	EventRecorded = "booking.recorded"
)

// Record is one booking request. It serializes as a flat JSON object: the
// submitted fields at top level next to the reserved timestamp and response
// keys.
type Record struct {
	Fields map[string]string

	// Created is set by the quick form.
	Created string
	// SubmittedAt is set by the full booking form.
	SubmittedAt string
	// SavedAt marks a record persisted without network confirmation.
	SavedAt string
	// ServerResponse is nil unless the endpoint confirmed the submission. A
	// confirmation whose body was not JSON holds the literal null.
	ServerResponse json.RawMessage
}

func (r Record) Name() string {
	return r.Fields[FieldName]
}

// Confirmed reports whether the remote endpoint accepted the submission.
func (r Record) Confirmed() bool {
	return r.ServerResponse != nil
}

func isReserved(key string) bool {
	switch key {
	case KeyCreated, KeySubmittedAt, KeySavedAt, KeyServerResponse:
		return true
	default:
		return false
	}
}

func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Fields)+3)

	for key, value := range r.Fields {
		if !isReserved(key) {
			flat[key] = value
		}
	}

	setIf := func(key, value string) {
		if value != "" {
			flat[key] = value
		}
	}

	setIf(KeyCreated, r.Created)
	setIf(KeySubmittedAt, r.SubmittedAt)
	setIf(KeySavedAt, r.SavedAt)

	if r.ServerResponse != nil {
		flat[KeyServerResponse] = r.ServerResponse
	}

	return json.Marshal(flat) //nolint:wrapcheck
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return fmt.Errorf("failed to decode %s: %w", EntityName, err)
	}

	*r = Record{Fields: map[string]string{}}

	for key, raw := range flat {
		if key == KeyServerResponse {
			r.ServerResponse = raw

			continue
		}

		value := scalar(raw)

		switch key {
		case KeyCreated:
			r.Created = value
		case KeySubmittedAt:
			r.SubmittedAt = value
		case KeySavedAt:
			r.SavedAt = value
		default:
			r.Fields[key] = value
		}
	}

	return nil
}

// scalar returns a JSON string's contents, or the raw text of any other
// value.
func scalar(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}

// Clone returns a copy that shares no maps or slices with r.
func (r Record) Clone() Record {
	out := r
	out.Fields = maps.Clone(r.Fields)

	if r.ServerResponse != nil {
		out.ServerResponse = append(json.RawMessage(nil), r.ServerResponse...)
	}

	return out
}
