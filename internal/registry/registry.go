// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry reads the IANA IPFIX registry document and extracts
// simplified information elements from it.
package registry

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Namespace is the XML namespace of IANA assignment registries.
const Namespace = "http://www.iana.org/assignments"

// InformationElementsID is the id of the registry section that lists
// IPFIX information elements.
const InformationElementsID = "ipfix-information-elements"

// ParseError reports a registry document that is not well-formed XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parsing registry: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// Document is a parsed registry document.
type Document struct {
	sections []Section
}

// Section is one top-level registry section of a Document.
type Section struct {
	ID      string
	Records []Record
}

// Record is a read-only view over one registry record: its namespaced
// child elements in document order.
type Record struct {
	fields []field
}

type field struct {
	name string
	text string
}

// Field returns the text of the first child element named name.
// Elements without text are reported as absent.
func (r Record) Field(name string) (string, bool) {
	for _, f := range r.fields {
		if f.name == name {
			if f.text == "" {
				return "", false
			}
			return f.text, true
		}
	}
	return "", false
}

// Positional returns the text of the i-th child element, or "" when the
// record has fewer children.
func (r Record) Positional(i int) string {
	if i < 0 || i >= len(r.fields) {
		return ""
	}
	return r.fields[i].text
}

// Len returns the number of child elements in the record.
func (r Record) Len() int { return len(r.fields) }

// Registry XML structures.
type xmlRoot struct {
	Sections []xmlSection `xml:"http://www.iana.org/assignments registry"`
}

type xmlSection struct {
	ID      string      `xml:"id,attr"`
	Records []xmlRecord `xml:"http://www.iana.org/assignments record"`
}

type xmlRecord struct {
	Children []xmlChild `xml:",any"`
}

type xmlChild struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// Parse decodes a registry document. Only the top-level registry sections
// of the root element and their records are retained.
func Parse(data []byte) (*Document, error) {
	var root xmlRoot
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		return nil, &ParseError{Err: err}
	}

	doc := &Document{sections: make([]Section, 0, len(root.Sections))}
	for _, s := range root.Sections {
		sec := Section{ID: s.ID, Records: make([]Record, 0, len(s.Records))}
		for _, r := range s.Records {
			var rec Record
			for _, c := range r.Children {
				if c.XMLName.Space != Namespace {
					continue
				}
				rec.fields = append(rec.fields, field{name: c.XMLName.Local, text: c.Text})
			}
			sec.Records = append(sec.Records, rec)
		}
		doc.sections = append(doc.sections, sec)
	}
	return doc, nil
}

// Section returns the top-level section whose id attribute equals id.
// The boolean is false when no such section exists.
func (d *Document) Section(id string) (*Section, bool) {
	for i := range d.sections {
		if d.sections[i].ID == id {
			return &d.sections[i], true
		}
	}
	return nil, false
}
