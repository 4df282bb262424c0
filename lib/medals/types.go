// Package medals defines the canonical medal-award record that every
// upstream source is normalized into, along with the normalization and
// identity-derivation rules that make repeated ingestion runs converge
// on the same record set.
package medals

import "time"

type Medal string

const (
	Gold   Medal = "G"
	Silver Medal = "S"
	Bronze Medal = "B"
)

// MedalEvent is the canonical output record. A MedalEvent is never
// mutated after construction; an update is a new value with the same
// EventID applied as an overwrite at the sink.
type MedalEvent struct {
	// derived identity, the upsert key
	EventID string `json:"event_id"`
	// canonical discipline name
	Discipline string `json:"discipline"`
	// event name within the discipline, empty for sources
	// that only report per-discipline aggregates
	Event string `json:"event,omitempty"`
	// three-letter NOC code
	Country string `json:"country"`
	Medal   Medal  `json:"medal"`
	// award instant; a fixed per-batch placeholder when the
	// source carries no time of its own
	Timestamp time.Time `json:"ts"`
}
