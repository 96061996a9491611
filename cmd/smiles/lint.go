package main

import "github.com/spf13/cobra"

var lintCmd = &cobra.Command{
	Use:   "lint [SMILES...]",
	Short: "Parse SMILES strings and check them for structural problems",
	Long:  "Parse SMILES strings and report self bonds, duplicate bonds, dangling bond symbols and disconnected components.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(cmd, args, true)
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
