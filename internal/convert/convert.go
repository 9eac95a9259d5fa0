// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the registry conversion: fetch the IANA registry,
// locate the information elements section, extract elements, and write the
// simplified list.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ipfix-elements/internal/httputil"
	"github.com/pdiddy/ipfix-elements/internal/registry"
	"github.com/pdiddy/ipfix-elements/internal/render"
	"github.com/pdiddy/ipfix-elements/pkg/types"
)

// ErrSectionNotFound is returned when the fetched document has no
// information elements section.
var ErrSectionNotFound = errors.New("information elements section not found")

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

// Run fetches cfg.URL and writes the extracted elements to cfg.OutputPath,
// printing progress to w. Records failing validation are reported and
// skipped. Any other failure aborts the run before the output file is
// opened, except write failures which may leave the file truncated.
func Run(ctx context.Context, client *http.Client, cfg types.ConvertConfig, w io.Writer) (types.Report, error) {
	report := types.Report{SourceURL: cfg.URL, OutputPath: cfg.OutputPath}

	fmt.Fprintf(w, "Downloading file from '%s'\n", cfg.URL)
	data, err := httputil.Fetch(ctx, client, cfg.URL, cfg.UserAgent)
	if err != nil {
		return report, err
	}

	fmt.Fprintln(w, "Parsing file")
	doc, err := registry.Parse(data)
	if err != nil {
		return report, err
	}
	sec, ok := doc.Section(registry.InformationElementsID)
	if !ok {
		fmt.Fprintf(w, "Element 'registry' with id='%s' not found\n", registry.InformationElementsID)
		return report, ErrSectionNotFound
	}

	elements, skipped := registry.NewExtractor().ExtractAll(sec, w)
	report.Converted = len(elements)
	report.Skipped = skipped

	out, err := render.Render(types.NewDocument(elements))
	if err != nil {
		return report, err
	}

	fmt.Fprintf(w, "Writing to file '%s'\n", cfg.OutputPath)
	if err := render.WriteFile(cfg.OutputPath, out); err != nil {
		return report, err
	}
	report.GeneratedAt = now()

	if cfg.ReportPath != "" {
		if err := writeReport(report, cfg.ReportPath); err != nil {
			return report, err
		}
	}
	return report, nil
}

// writeReport writes the run summary as YAML.
func writeReport(report types.Report, path string) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &render.WriteError{Path: path, Err: err}
	}
	return nil
}
