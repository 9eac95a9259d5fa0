// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render serializes the element list and writes it to disk with a
// generated-file notice.
package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/ipfix-elements/pkg/types"
)

// Declaration is the first line of every rendered document.
const Declaration = `<?xml version="1.0" encoding="utf-8"?>`

const indent = "    "

// GeneratedNotice is inserted after the declaration of written files.
const GeneratedNotice = `<!--
This code was generated by a tool.

Changes to this file may cause incorrect behavior
and will be lost when the list is regenerated.
-->`

// WriteError reports a failure to write the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("writing %s: %v", e.Path, e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// Render encodes doc as indented XML preceded by Declaration. Element
// children always appear as id, name, dataType, dataSemantic, units,
// status; empty optional children are omitted.
func Render(doc types.Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(Declaration)
	buf.WriteByte('\n')

	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding elements: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding elements: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteFile writes data to path, truncating any existing file. The first
// line of data is written unchanged, followed by GeneratedNotice and then
// the remaining lines, each terminated by a newline.
func WriteFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	_, writeErr := f.Write(withNotice(data))
	closeErr := f.Close()
	if writeErr != nil {
		return &WriteError{Path: path, Err: writeErr}
	}
	if closeErr != nil {
		return &WriteError{Path: path, Err: closeErr}
	}
	return nil
}

// withNotice splits data into lines and inserts GeneratedNotice after the
// first one.
func withNotice(data []byte) []byte {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	var b strings.Builder
	b.WriteString(lines[0])
	b.WriteByte('\n')
	b.WriteString(GeneratedNotice)
	b.WriteByte('\n')
	for _, line := range lines[1:] {
		b.WriteString(strings.TrimRight(line, "\r"))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
