package main

import (
	"fmt"
	"os"

	"github.com/kesselring/dartbuf/dart"
	"github.com/kesselring/dartbuf/jsonsrc"
	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/persist"
	"github.com/spf13/cobra"
)

var buildAtomic bool

func init() {
	cmd := newBuildCmd()
	cmd.Flags().BoolVar(&buildAtomic, "atomic", false, "Use the atomic (thread-safe) refcount policy")
	rootCmd.AddCommand(cmd)
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <input.json> <output.dart>",
		Short: "Build a finalized document from a JSON source file",
		Long: `The build command decodes a JSON file into a tree, finalizes it into
the binary dartbuf layout, and writes the result durably to disk.

Example:
  dartctl build doc.json doc.dart
  dartctl build doc.json doc.dart --atomic`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args)
		},
	}
	return cmd
}

func runBuild(args []string) error {
	inPath, outPath := args[0], args[1]

	printVerbose("Reading JSON source: %s\n", inPath)

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	val, err := jsonsrc.DecodeBytes(data)
	if err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}

	var buf *node.Buffer
	if buildAtomic {
		buf, err = dart.FinalizeAtomic(val)
	} else {
		buf, err = dart.Finalize(val)
	}
	if err != nil {
		return fmt.Errorf("failed to finalize document: %w", err)
	}

	if err := persist.WriteFile(outPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"input":  inPath,
			"output": outPath,
			"bytes":  len(buf.Bytes()),
		})
	}

	printInfo("✓ Built %s (%d bytes)\n", outPath, len(buf.Bytes()))
	return nil
}
