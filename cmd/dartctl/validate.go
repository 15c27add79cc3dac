package main

import (
	"fmt"
	"os"

	"github.com/kesselring/dartbuf/types"
	"github.com/kesselring/dartbuf/validate"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <document>",
		Short: "Validate a finalized document's structural integrity",
		Long: `The validate command checks that a file's bytes are a well-formed,
self-consistent finalized dartbuf document: bounds-checked vtables,
monotonic child offsets, NUL-terminated strings, and a recursive
traversal that never reads past the declared length.

Example:
  dartctl validate doc.dart
  dartctl validate doc.dart --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	docPath := args[0]

	printVerbose("Validating document: %s\n", docPath)

	data, err := os.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	verr := validate.Bytes(data, types.Object)

	result := map[string]any{
		"file":  docPath,
		"valid": verr == nil,
	}
	if verr != nil {
		result["error"] = verr.Error()
	}

	if jsonOut {
		return printJSON(result)
	}

	printInfo("\nValidating %s...\n\n", docPath)
	if verr != nil {
		printInfo("  ✗ %v\n", verr)
		printInfo("\nResult: ✗ INVALID\n")
		return verr
	}

	printInfo("  ✓ All invariants satisfied\n")
	printInfo("\nResult: ✓ VALID\n")
	return nil
}
