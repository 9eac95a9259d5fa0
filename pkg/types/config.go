// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

const (
	// DefaultRegistryURL is the location of the IANA IPFIX registry.
	DefaultRegistryURL = "https://www.iana.org/assignments/ipfix/ipfix.xml"

	// DefaultOutputFile is the file the element list is written to.
	DefaultOutputFile = "iana.xml"
)

// HTTPConfig holds HTTP settings used when fetching the registry.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the request
	// bounded only by the transport.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with the request
	// (e.g. "ipfix-elements/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ConvertConfig holds settings for one conversion run.
type ConvertConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the registry document location.
	URL string `json:"url" yaml:"url"`

	// OutputPath is the destination of the generated element list.
	OutputPath string `json:"file" yaml:"file"`

	// ReportPath, when set, receives a YAML summary of the run.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`
}
