package main

import (
	"fmt"

	"github.com/kesselring/dartbuf/builder"
	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/persist"
	"github.com/kesselring/dartbuf/source"
	"github.com/spf13/cobra"
)

var mergeOutput string

func init() {
	cmd := newMergeCmd()
	cmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Output path (defaults to overwriting the base document)")
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <base> <incoming>...",
		Short: "Structurally merge one or more documents into a base document",
		Long: `The merge command applies one or more incoming finalized documents onto
a base document (§4.8): a dual-cursor lockstep walk where the incoming
side wins on key conflicts, applied successively, left to right.

Example:
  dartctl merge base.dart patch1.dart patch2.dart
  dartctl merge base.dart patch.dart --output merged.dart`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args)
		},
	}
	return cmd
}

func runMerge(args []string) error {
	basePath := args[0]
	incomingPaths := args[1:]
	outPath := mergeOutput
	if outPath == "" {
		outPath = basePath
	}

	printVerbose("Merging into base: %s\n", basePath)
	printVerbose("Incoming documents: %v\n", incomingPaths)

	baseBuf, baseRelease, err := source.OpenObject(basePath)
	if err != nil {
		return fmt.Errorf("failed to open base document: %w", err)
	}
	defer baseRelease()

	current := baseBuf.Root().Object()
	var merged *node.Buffer

	for _, p := range incomingPaths {
		incBuf, incRelease, err := source.OpenObject(p)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", p, err)
		}

		merged, err = builder.Merge(current, incBuf.Root().Object())
		incRelease()
		if err != nil {
			return fmt.Errorf("failed to merge %s: %w", p, err)
		}

		printInfo("  ✓ %s merged\n", p)
		current = merged.Root().Object()
	}

	if err := persist.WriteFile(outPath, merged.Bytes()); err != nil {
		return fmt.Errorf("failed to write merged document: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"base":     basePath,
			"incoming": incomingPaths,
			"output":   outPath,
			"success":  true,
		})
	}

	printInfo("✓ Merge complete: %s\n", outPath)
	return nil
}
