package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, yaml or toml)", name)
	}
}

// document is the top-level value for formats that need a named root.
type document struct {
	Records []Record `json:"records" yaml:"records" toml:"records"`
}

// Write renders records to w.
func Write(w io.Writer, f Format, records []Record) error {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(document{Records: records}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Records: records}); err != nil {
			return fmt.Errorf("marshaling yaml: %w", err)
		}
		return enc.Close()

	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(document{Records: records}); err != nil {
			return fmt.Errorf("marshaling toml: %w", err)
		}
		return nil

	case FormatText, "":
		for _, r := range records {
			if err := writeText(w, r); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

func writeText(w io.Writer, r Record) error {
	var b strings.Builder
	title := r.SMILES
	if r.Name != "" {
		title = fmt.Sprintf("%s (%s)", r.Name, r.SMILES)
	}
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "  id: %s\n", r.ID)
	if r.Error != "" {
		fmt.Fprintf(&b, "  error: %s\n", r.Error)
		_, err := io.WriteString(w, b.String())
		return err
	}
	fmt.Fprintf(&b, "  formula: %s\n", r.Formula)
	fmt.Fprintf(&b, "  atoms: %d\n", len(r.Atoms))
	for _, a := range r.Atoms {
		fmt.Fprintf(&b, "    %d %s\n", a.Index, a.Spec)
	}
	fmt.Fprintf(&b, "  bonds: %d\n", len(r.Bonds))
	for _, bond := range r.Bonds {
		fmt.Fprintf(&b, "    %d %d-%d %s order=%d\n", bond.Index, bond.From, bond.To, bond.Kind, bond.Order)
	}
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&b, "  %s\n", d)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
