// SPDX-License-Identifier: MIT
// File: report.go
// Role: run report and its YAML, JSON and text encodings.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat: EncodeReport was asked for an unsupported format.
var ErrUnknownFormat = errors.New("graphio: unknown format")

// Report formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the accepted report formats.
func Formats() []string { return []string{FormatText, FormatYAML, FormatJSON} }

// Report summarizes one solver run.
type Report struct {
	Algorithm  string        `yaml:"algorithm" json:"algorithm"`
	Vertices   int           `yaml:"vertices" json:"vertices"`
	Edges      int           `yaml:"edges" json:"edges"`
	Components int           `yaml:"components" json:"components"`
	Committed  int           `yaml:"committed" json:"committed"`
	Size       int           `yaml:"size" json:"size"`
	Solution   []string      `yaml:"solution" json:"solution"`
	Elapsed    time.Duration `yaml:"-" json:"-"`
	ElapsedMS  int64         `yaml:"elapsed_ms" json:"elapsed_ms"`
}

// EncodeReport writes r to w in the given format.
func EncodeReport(w io.Writer, r Report, format string) error {
	r.ElapsedMS = r.Elapsed.Milliseconds()
	if r.Solution == nil {
		r.Solution = []string{}
	}

	var err error
	switch strings.ToLower(format) {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case FormatText, "":
		err = encodeText(w, r)
	default:
		return fmt.Errorf("graphio: EncodeReport: %q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("graphio: EncodeReport: %w", err)
	}

	return nil
}

func encodeText(w io.Writer, r Report) error {
	_, err := fmt.Fprintf(w,
		"algorithm:  %s\ngraph:      %s vertices, %s edges, %s components\nsolution:   %s vertices (%s from self-loops)\nelapsed:    %s\n",
		r.Algorithm,
		humanize.Comma(int64(r.Vertices)), humanize.Comma(int64(r.Edges)), humanize.Comma(int64(r.Components)),
		humanize.Comma(int64(r.Size)), humanize.Comma(int64(r.Committed)),
		r.Elapsed.Round(time.Millisecond))
	if err != nil {
		return err
	}

	return WriteSolution(w, r.Solution)
}
