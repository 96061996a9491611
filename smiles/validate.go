package smiles

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the graph is not a usable molecule.
	Error Severity = iota
	// Warning means the input parsed but likely does not say what was meant.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText renders the severity name in JSON, YAML and TOML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   `json:"rule" yaml:"rule" toml:"rule"`
	Severity Severity `json:"severity" yaml:"severity" toml:"severity"`
	Message  string   `json:"message" yaml:"message" toml:"message"`
	Atoms    []int    `json:"atoms,omitempty" yaml:"atoms,omitempty" toml:"atoms,omitempty"` // related atom indices (optional)
	Fix      string   `json:"fix,omitempty" yaml:"fix,omitempty" toml:"fix,omitempty"`
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if len(d.Atoms) > 0 {
		fmt.Fprintf(&b, " (atoms: %v)", d.Atoms)
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule is the interface for a single validation rule.
type LintRule interface {
	Name() string
	Apply(g *Graph) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against the graph.
// Returns all diagnostics regardless of severity. A diagnostic without a
// Rule is attributed to the rule that produced it.
func Validate(g *Graph, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		for _, d := range rule.Apply(g) {
			if d.Rule == "" {
				d.Rule = rule.Name()
			}
			diagnostics = append(diagnostics, d)
		}
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(g *Graph, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(g, extraRules...)

	var errors []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errors = append(errors, d)
		}
	}
	if len(errors) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errors}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		selfBondRule{},
		duplicateBondRule{},
		leadingBondRule{},
		disconnectedRule{},
	}
}

// self_bond: a ring closure must not bond an atom to itself ("C11").
type selfBondRule struct{}

func (selfBondRule) Name() string { return "self_bond" }

func (selfBondRule) Apply(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, b := range g.Bonds {
		if b.From != b.To {
			continue
		}
		diags = append(diags, Diagnostic{
			Rule:     "self_bond",
			Severity: Error,
			Message:  fmt.Sprintf("bond %d joins atom %d to itself", b.Index, b.From),
			Atoms:    []int{b.From},
			Fix:      "use different ring numbers for the two ends of the ring",
		})
	}
	return diags
}

// duplicate_bond: at most one bond may join a pair of atoms.
type duplicateBondRule struct{}

func (duplicateBondRule) Name() string { return "duplicate_bond" }

func (duplicateBondRule) Apply(g *Graph) []Diagnostic {
	seen := make(map[[2]int]int)
	var diags []Diagnostic
	for _, b := range g.Bonds {
		if b.From == b.To {
			continue
		}
		pair := [2]int{min(b.From, b.To), max(b.From, b.To)}
		first, ok := seen[pair]
		if !ok {
			seen[pair] = b.Index
			continue
		}
		diags = append(diags, Diagnostic{
			Rule:     "duplicate_bond",
			Severity: Error,
			Message:  fmt.Sprintf("bond %d repeats bond %d between atoms %d and %d", b.Index, first, pair[0], pair[1]),
			Atoms:    []int{pair[0], pair[1]},
			Fix:      "remove the ring closure between adjacent atoms or write the bond order once",
		})
	}
	return diags
}

// leading_bond: a bond symbol must be followed by an atom it can attach to.
type leadingBondRule struct{}

func (leadingBondRule) Name() string { return "leading_bond" }

func (leadingBondRule) Apply(g *Graph) []Diagnostic {
	var diags []Diagnostic
	for _, d := range g.DanglingBonds {
		diags = append(diags, Diagnostic{
			Rule:     "leading_bond",
			Severity: Warning,
			Message:  fmt.Sprintf("bond %q at col %d has no preceding atom and was ignored", d.Symbol, d.Pos.Column),
			Fix:      "remove the bond symbol",
		})
	}
	return diags
}

// disconnected: notes molecules made of several components ("[Na+].[Cl-]").
type disconnectedRule struct{}

func (disconnectedRule) Name() string { return "disconnected" }

func (disconnectedRule) Apply(g *Graph) []Diagnostic {
	components := g.Components()
	if len(components) <= 1 {
		return nil
	}
	first := make([]int, len(components))
	for i, c := range components {
		first[i] = c[0]
	}
	return []Diagnostic{{
		Rule:     "disconnected",
		Severity: Info,
		Message:  fmt.Sprintf("molecule has %d disconnected components", len(components)),
		Atoms:    first,
	}}
}
