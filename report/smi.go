package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Entry is one molecule line of a .smi file.
type Entry struct {
	Line   int // 1-based; 0 for entries not read from a file
	SMILES string
	Name   string
}

// ReadSMI reads entries from r.
func ReadSMI(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		smi, name := text, ""
		if i := strings.IndexAny(text, " \t"); i >= 0 {
			smi, name = text[:i], text[i+1:]
		}
		entries = append(entries, Entry{
			Line:   line,
			SMILES: smi,
			Name:   strings.TrimSpace(name),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", line+1, err)
	}
	return entries, nil
}

// EntriesFromArgs wraps command-line SMILES strings as entries.
func EntriesFromArgs(args []string) []Entry {
	entries := make([]Entry, len(args))
	for i, a := range args {
		entries[i] = Entry{SMILES: a}
	}
	return entries
}
