// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/ipfix-elements/pkg/types"
)

// Source field names read from each record.
const (
	FieldElementID        = "elementId"
	FieldName             = "name"
	FieldDataType         = "dataType"
	FieldDataTypeSemantic = "dataTypeSemantic"
	FieldUnits            = "units"
	FieldStatus           = "status"
)

// diagnosticField is the child position printed for skipped records.
const diagnosticField = 1

var defaultUnits = []string{
	"none", "bits", "octets", "packets", "flows", "seconds", "milliseconds",
	"microseconds", "nanoseconds", "4-octet words", "messages", "hops",
	"entries", "frames",
}

// DefaultUnits returns the unit vocabulary recognized in the units field.
// The returned slice is a copy.
func DefaultUnits() []string {
	return append([]string(nil), defaultUnits...)
}

// ValidationError reports a record whose mandatory field is missing or
// invalid.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Extractor turns registry records into Elements.
type Extractor struct {
	// Units is the vocabulary of unit substrings. A units field that
	// contains none of them is dropped.
	Units []string
}

// NewExtractor returns an Extractor using DefaultUnits.
func NewExtractor() Extractor {
	return Extractor{Units: DefaultUnits()}
}

// Extract builds an Element from rec. It returns a *ValidationError when
// elementId is missing or not all digits, or when name or dataType is
// missing.
func (x Extractor) Extract(rec Record) (types.Element, error) {
	id, ok := rec.Field(FieldElementID)
	if !ok || !isDigits(id) {
		return types.Element{}, &ValidationError{Field: FieldElementID, Reason: "missing or non-numeric elementId"}
	}
	name, ok := rec.Field(FieldName)
	if !ok {
		return types.Element{}, &ValidationError{Field: FieldName, Reason: "missing name"}
	}
	dataType, ok := rec.Field(FieldDataType)
	if !ok {
		return types.Element{}, &ValidationError{Field: FieldDataType, Reason: "missing dataType"}
	}

	el := types.Element{ID: id, Name: name, DataType: dataType}
	el.DataSemantic, _ = rec.Field(FieldDataTypeSemantic)
	if units, ok := rec.Field(FieldUnits); ok {
		el.Units = x.normalizeUnits(units)
	}
	el.Status, _ = rec.Field(FieldStatus)
	return el, nil
}

// ExtractAll extracts every record of sec in order. Records that fail
// validation are reported on w and returned as skipped; they never abort
// the batch.
func (x Extractor) ExtractAll(sec *Section, w io.Writer) ([]types.Element, []types.SkippedRecord) {
	var (
		elements []types.Element
		skipped  []types.SkippedRecord
	)
	for _, rec := range sec.Records {
		el, err := x.Extract(rec)
		if err != nil {
			label := rec.Positional(diagnosticField)
			fmt.Fprintf(w, "    Element with ID: %-11s is ignored: %v\n", label, err)

			s := types.SkippedRecord{Record: label, Reason: err.Error()}
			if ve, ok := err.(*ValidationError); ok {
				s.Field = ve.Field
			}
			skipped = append(skipped, s)
			continue
		}
		elements = append(elements, el)
	}
	return elements, skipped
}

// normalizeUnits returns the last whitespace-delimited token of text when
// text contains any vocabulary term, and "" otherwise. The returned token
// is not necessarily the matched term (e.g. "packets [RFC1234]" yields
// "[RFC1234]").
func (x Extractor) normalizeUnits(text string) string {
	for _, u := range x.Units {
		if strings.Contains(text, u) {
			tokens := strings.Fields(text)
			if len(tokens) == 0 {
				return ""
			}
			return tokens[len(tokens)-1]
		}
	}
	return ""
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
