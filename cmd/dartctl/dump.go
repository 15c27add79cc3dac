package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kesselring/dartbuf/source"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <document>",
		Short: "Print a finalized document as JSON",
		Long: `The dump command converts an entire finalized dartbuf document back to
JSON and prints it, exercising the same navigation every other dartctl
command uses but over the whole tree rather than a single path.

Example:
  dartctl dump doc.dart`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	docPath := args[0]

	printVerbose("Opening document: %s\n", docPath)

	buf, release, err := source.OpenObject(docPath)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer release()

	out, err := toJSONValue(buf.Root())
	if err != nil {
		return fmt.Errorf("failed to convert document: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
