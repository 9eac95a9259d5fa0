// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SkippedRecord describes a registry record that failed validation.
type SkippedRecord struct {
	// Record is the positional identifier printed for the record.
	Record string `json:"record" yaml:"record"`

	// Field is the mandatory field that was missing or invalid.
	Field string `json:"field" yaml:"field"`

	// Reason is the human-readable failure message.
	Reason string `json:"reason" yaml:"reason"`
}

// Report summarizes one conversion run.
type Report struct {
	// SourceURL is the registry location that was fetched.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// OutputPath is the file the element list was written to.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// GeneratedAt is the UTC time the output was written.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Converted is the number of elements written.
	Converted int `json:"converted" yaml:"converted"`

	// Skipped lists records dropped during extraction, in source order.
	Skipped []SkippedRecord `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Total returns the number of records seen in the registry section.
func (r Report) Total() int {
	return r.Converted + len(r.Skipped)
}

// HasSkipped reports whether any record was dropped.
func (r Report) HasSkipped() bool {
	return len(r.Skipped) > 0
}
