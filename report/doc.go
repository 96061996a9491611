// Package report reads SMILES input files and renders parse results.
//
// Input is the common .smi layout: one SMILES string per line, optionally
// followed by whitespace and a molecule name. Blank lines and lines starting
// with '#' are skipped.
//
// Results are rendered as text, JSON, YAML or TOML.
package report
