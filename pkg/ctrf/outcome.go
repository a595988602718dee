package ctrf

import "time"

// Outcome is the end result of one full pipeline run.
type Outcome struct {
	RequestID string `json:"request_id" groups:"basic"`

	Success bool   `json:"success" groups:"basic"`
	Message string `json:"message" groups:"basic"`

	Summary *Summary               `json:"summary,omitempty" groups:"basic"`
	Record  *CanonicalStatusRecord `json:"record,omitempty" groups:"detailed"`
	Geo     *GeoResult             `json:"geo,omitempty" groups:"detailed"`
	Advice  *Advice                `json:"advice,omitempty" groups:"basic"`

	StartedAt   time.Time `json:"started_at" groups:"detailed"`
	CompletedAt time.Time `json:"completed_at" groups:"detailed"`
}
