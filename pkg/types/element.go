// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "encoding/xml"

// Element is one simplified IPFIX information element.
// ID, Name and DataType are always set; the remaining fields are empty when
// the source record did not provide them, and are then omitted from output.
type Element struct {
	XMLName xml.Name `xml:"element" yaml:"-"`

	// ID is the decimal element identifier (e.g. "1").
	ID string `xml:"id" yaml:"id"`

	// Name is the element name (e.g. "octetDeltaCount").
	Name string `xml:"name" yaml:"name"`

	// DataType is the abstract data type (e.g. "unsigned64").
	DataType string `xml:"dataType" yaml:"data_type"`

	// DataSemantic is the data type semantic (e.g. "deltaCounter").
	DataSemantic string `xml:"dataSemantic,omitempty" yaml:"data_semantic,omitempty"`

	// Units is the normalized unit token.
	Units string `xml:"units,omitempty" yaml:"units,omitempty"`

	// Status is the registry status (e.g. "current", "deprecated").
	Status string `xml:"status,omitempty" yaml:"status,omitempty"`
}

// Biflow is the biflow reverse-element marker of a scope.
type Biflow struct {
	Mode string `xml:"mode,attr"`
	PEN  string `xml:",chardata"`
}

// Scope identifies the origin of the elements in a Document.
type Scope struct {
	PEN    string `xml:"pen"`
	Name   string `xml:"name"`
	Biflow Biflow `xml:"biflow"`
}

// IANAScope is the fixed scope descriptor for IANA-assigned elements.
// 29305 is the private enterprise number used for reverse (biflow) elements.
var IANAScope = Scope{
	PEN:    "1",
	Name:   "iana",
	Biflow: Biflow{Mode: "pen", PEN: "29305"},
}

// Document is the root of the generated element list.
type Document struct {
	XMLName  xml.Name  `xml:"ipfix-elements"`
	Scope    Scope     `xml:"scope"`
	Elements []Element `xml:"element"`
}

// NewDocument wraps elements under the IANA scope, preserving their order.
func NewDocument(elements []Element) Document {
	return Document{Scope: IANAScope, Elements: elements}
}
