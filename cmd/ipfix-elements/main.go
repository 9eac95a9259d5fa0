// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ipfix-elements CLI, which
// regenerates the simplified IANA IPFIX element list.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ipfix-elements/internal/convert"
	"github.com/pdiddy/ipfix-elements/internal/httputil"
	"github.com/pdiddy/ipfix-elements/internal/registry"
	"github.com/pdiddy/ipfix-elements/internal/render"
	"github.com/pdiddy/ipfix-elements/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd builds the CLI. Settings resolve from flags, then
// IPFIX_ELEMENTS_* environment variables, then the optional config file.
func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ipfix-elements",
		Short: "Convert the IANA IPFIX registry into a simplified element list",
		Long: `ipfix-elements downloads the IANA IPFIX information elements registry,
extracts the id, name, data type, semantic, units and status of every
element, and writes them as an XML element list. Records without a numeric
elementId, a name, or a data type are reported and skipped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, v)
		},
	}

	rootCmd.Flags().StringP("file", "f", types.DefaultOutputFile, "output file")
	rootCmd.Flags().StringP("url", "l", types.DefaultRegistryURL, "URL of the IANA IPFIX registry")
	v.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	v.BindPFlag("url", rootCmd.Flags().Lookup("url"))

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// loadConfig reads ipfix-elements.yaml from the working directory or
// ~/.config/ipfix-elements/ when present.
func loadConfig(v *viper.Viper) error {
	v.SetConfigName("ipfix-elements")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "ipfix-elements"))
	}

	v.SetEnvPrefix("IPFIX_ELEMENTS")
	v.AutomaticEnv()
	v.SetDefault("user_agent", "ipfix-elements/"+version)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	return nil
}

func runConvert(cmd *cobra.Command, v *viper.Viper) error {
	cfg := types.ConvertConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   v.GetDuration("timeout"),
			UserAgent: v.GetString("user_agent"),
		},
		URL:        v.GetString("url"),
		OutputPath: v.GetString("file"),
		ReportPath: v.GetString("report"),
	}

	client := &http.Client{Timeout: cfg.Timeout}
	out := cmd.OutOrStdout()

	report, err := convert.Run(cmd.Context(), client, cfg, out)
	if err != nil {
		reportFailure(out, err)
		return err
	}
	if report.HasSkipped() {
		fmt.Fprintf(out, "%d of %d records skipped\n", len(report.Skipped), report.Total())
	}
	return nil
}

// reportFailure prints the user-facing message for a failed run.
func reportFailure(w io.Writer, err error) {
	var (
		netErr   *httputil.NetworkError
		parseErr *registry.ParseError
		writeErr *render.WriteError
	)
	switch {
	case errors.As(err, &netErr):
		fmt.Fprintln(w, "Error while downloading file, check internet connection")
	case errors.As(err, &parseErr):
		fmt.Fprintln(w, "Error while parsing file")
	case errors.As(err, &writeErr):
		fmt.Fprintln(w, "Error while saving file")
	}
	if !errors.Is(err, convert.ErrSectionNotFound) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
