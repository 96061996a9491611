package report

import (
	"log/slog"

	"github.com/gitpan/Chemistry-File-SMILES/smiles"
	"github.com/google/uuid"
)

// Record is the rendered result of parsing one entry.
type Record struct {
	ID          string              `json:"id" yaml:"id" toml:"id"`
	Name        string              `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Line        int                 `json:"line,omitempty" yaml:"line,omitempty" toml:"line,omitempty"`
	SMILES      string              `json:"smiles" yaml:"smiles" toml:"smiles"`
	Formula     string              `json:"formula,omitempty" yaml:"formula,omitempty" toml:"formula,omitempty"`
	Atoms       []*smiles.Atom      `json:"atoms,omitempty" yaml:"atoms,omitempty" toml:"atoms,omitempty"`
	Bonds       []*smiles.Bond      `json:"bonds,omitempty" yaml:"bonds,omitempty" toml:"bonds,omitempty"`
	Diagnostics []smiles.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty" toml:"diagnostics,omitempty"`
	Error       string              `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`

	invalid bool // smiles.ValidateOrError reported error diagnostics
}

// Failed reports whether the entry did not parse or failed validation.
func (r Record) Failed() bool {
	return r.Error != "" || r.invalid
}

// Options controls Process.
type Options struct {
	Strict bool // reject open branches and rings at end of input
	Lint   bool // attach smiles.ValidateOrError diagnostics
	Logger *slog.Logger
}

// Process parses every entry. A parse failure is recorded on its Record and
// does not stop the remaining entries.
func Process(entries []Entry, opts Options) []Record {
	cfg := smiles.Config[*smiles.Graph, *smiles.Atom, *smiles.Bond]{
		Strict: opts.Strict,
		Logger: opts.Logger,
	}
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		rec := Record{
			ID:     uuid.NewString(),
			Name:   e.Name,
			Line:   e.Line,
			SMILES: e.SMILES,
		}
		g, err := smiles.ParseWith(cfg, e.SMILES)
		if err != nil {
			rec.Error = err.Error()
			records = append(records, rec)
			continue
		}
		rec.Formula = g.Formula()
		rec.Atoms = g.Atoms
		rec.Bonds = g.Bonds
		if opts.Lint {
			diags, err := smiles.ValidateOrError(g)
			rec.Diagnostics = diags
			rec.invalid = err != nil
		}
		records = append(records, rec)
	}
	return records
}
