package main

import (
	"fmt"
	"strconv"

	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/source"
	"github.com/kesselring/dartbuf/types"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <document> <path>...",
		Short: "Get a value at a path within a finalized document",
		Long: `The get command navigates a finalized dartbuf document by a sequence
of object keys and array indices, printing the value found.

Example:
  dartctl get doc.dart user name
  dartctl get doc.dart items 0 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	docPath := args[0]
	path := args[1:]

	printVerbose("Opening document: %s\n", docPath)

	buf, release, err := source.OpenObject(docPath)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer release()

	v := buf.Root()
	for i, seg := range path {
		v, err = navigate(v, seg)
		if err != nil {
			return fmt.Errorf("at segment %d (%q): %w", i, seg, err)
		}
	}

	out, err := toJSONValue(v)
	if err != nil {
		return fmt.Errorf("failed to convert value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{"value": out})
	}

	printInfo("%v\n", out)
	return nil
}

// navigate steps from v into the child named by seg: an object key, or
// (if v is an array) a decimal index.
func navigate(v node.Value, seg string) (node.Value, error) {
	switch v.Kind() {
	case types.LogicalObject:
		child, ok := v.Object().Get(seg)
		if !ok {
			return node.Value{}, fmt.Errorf("no such key")
		}
		return child, nil
	case types.LogicalArray:
		idx, err := strconv.Atoi(seg)
		if err != nil {
			return node.Value{}, fmt.Errorf("not a valid array index: %w", err)
		}
		arr := v.Array()
		if idx < 0 || idx >= arr.Len() {
			return node.Value{}, fmt.Errorf("index out of range")
		}
		return arr.At(idx), nil
	default:
		return node.Value{}, fmt.Errorf("cannot descend into a scalar value")
	}
}
