// Package sample defines the value types produced by reading a data-logger
// CSV export: the Sample tuple itself, the fixed-offset timezone notation
// used by logger software, and timestamp parsing across the export formats
// observed in the wild.
package sample

import "time"

// Sample is one decoded sensor reading. Humidity and Battery are nil when
// the export carries no column for them.
type Sample struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	Humidity    *float64  `json:"humidity,omitempty"`
	Battery     *float64  `json:"battery,omitempty"`
}
