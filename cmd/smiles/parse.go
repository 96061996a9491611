package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gitpan/Chemistry-File-SMILES/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:   "parse [SMILES...]",
	Short: "Parse SMILES strings and print their atoms and bonds",
	Long:  "Parse SMILES strings given as arguments or read from a .smi file and print the resulting atom/bond graphs.",
	RunE:  runParse,
}

var errFailedEntries = errors.New("some entries failed")

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	return process(cmd, args, false)
}

// process parses the command input and writes the records to stdout.
func process(cmd *cobra.Command, args []string, lint bool) error {
	format, err := report.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}

	entries, err := loadEntries(args)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no SMILES given: pass them as arguments or use --file")
	}

	verbose := viper.GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "[smiles] Parsing %d entries\n", len(entries))
	}

	records := report.Process(entries, report.Options{
		Strict: viper.GetBool("strict"),
		Lint:   lint,
		Logger: parserLogger(),
	})

	if err := report.Write(cmd.OutOrStdout(), format, records); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	failed := 0
	for _, r := range records {
		if r.Failed() {
			failed++
		}
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[smiles] %d ok, %d failed\n", len(records)-failed, failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(records), errFailedEntries)
	}
	return nil
}

func loadEntries(args []string) ([]report.Entry, error) {
	entries := report.EntriesFromArgs(args)

	path := viper.GetString("file")
	if path == "" {
		return entries, nil
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening SMILES file: %w", err)
		}
		defer f.Close()
		r = f
	}

	fromFile, err := report.ReadSMI(r)
	if err != nil {
		return nil, fmt.Errorf("reading SMILES file: %w", err)
	}
	return append(entries, fromFile...), nil
}
