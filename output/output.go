package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sagarc03/foodle"
)

const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formatter formats results for output.
type Formatter interface {
	FormatSettings(w io.Writer, s foodle.Settings, showSecrets bool) error
	FormatCheck(w io.Writer, report *CheckReport) error
	FormatError(w io.Writer, err error) error
}

// NewFormatter returns the formatter for format.
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatHuman:
		return &HumanFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown output format: %s (valid formats: human, json, yaml)", foodle.ErrInvalidInput, format)
	}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct{}

// FormatSettings prints one "KEY  value" line per setting, sorted by key.
func (f *HumanFormatter) FormatSettings(w io.Writer, s foodle.Settings, showSecrets bool) error {
	if !showSecrets {
		s = s.Redacted()
	}
	values := s.Map()

	keys := make([]string, 0, len(values))
	width := 0
	for k := range values {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	_, _ = fmt.Fprintf(w, "Variant: %s\n\n", s.Variant)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "  %-*s  %v\n", width, k, display(values[k]))
	}
	return nil
}

// FormatCheck prints each check with a status marker and any warnings.
func (f *HumanFormatter) FormatCheck(w io.Writer, report *CheckReport) error {
	_, _ = fmt.Fprintf(w, "Variant: %s\n\n", report.Variant)

	for i := range report.Checks {
		c := &report.Checks[i]
		status := "OK  "
		if !c.OK {
			status = "FAIL"
		}
		_, _ = fmt.Fprintf(w, "  [%s] %s", status, c.Name)
		if c.Detail != "" {
			_, _ = fmt.Fprintf(w, ": %s", c.Detail)
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(report.Warnings) > 0 {
		_, _ = fmt.Fprintln(w)
		for _, warning := range report.Warnings {
			_, _ = fmt.Fprintf(w, "  Warning: %s\n", warning)
		}
	}

	_, _ = fmt.Fprintln(w)
	if report.OK() {
		_, _ = fmt.Fprintln(w, "All checks passed.")
	} else {
		_, _ = fmt.Fprintln(w, "Some checks failed.")
	}
	return nil
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// FormatSettings formats settings as a JSON object keyed by setting name.
func (f *JSONFormatter) FormatSettings(w io.Writer, s foodle.Settings, showSecrets bool) error {
	if !showSecrets {
		s = s.Redacted()
	}
	return writeJSON(w, s)
}

// FormatCheck formats a check report as JSON.
func (f *JSONFormatter) FormatCheck(w io.Writer, report *CheckReport) error {
	return writeJSON(w, report.view())
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	return writeJSON(w, errorView{Error: err.Error()})
}

// YAMLFormatter outputs YAML.
type YAMLFormatter struct{}

// FormatSettings formats settings as a YAML mapping keyed by setting name.
func (f *YAMLFormatter) FormatSettings(w io.Writer, s foodle.Settings, showSecrets bool) error {
	if !showSecrets {
		s = s.Redacted()
	}
	return writeYAML(w, s)
}

// FormatCheck formats a check report as YAML.
func (f *YAMLFormatter) FormatCheck(w io.Writer, report *CheckReport) error {
	return writeYAML(w, report.view())
}

// FormatError formats an error as YAML.
func (f *YAMLFormatter) FormatError(w io.Writer, err error) error {
	return writeYAML(w, errorView{Error: err.Error()})
}

type errorView struct {
	Error string `json:"error" yaml:"error"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func display(v any) any {
	if s, ok := v.(string); ok && s == "" {
		return "(not set)"
	}
	return v
}
