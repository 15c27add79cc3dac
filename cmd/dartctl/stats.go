package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/source"
	"github.com/kesselring/dartbuf/types"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <document>",
		Short: "Show structural statistics for a finalized document",
		Long: `The stats command walks a finalized document recursively, counting
values by logical type and tracking maximum nesting depth.

Example:
  dartctl stats doc.dart
  dartctl stats doc.dart --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

type docStats struct {
	FilePath string
	FileSize int64
	MaxDepth int
	ByType   map[string]int
	Objects  int
	Arrays   int
}

func runStats(args []string) error {
	docPath := args[0]

	printVerbose("Opening document: %s\n", docPath)

	fileInfo, err := os.Stat(docPath)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	buf, release, err := source.OpenObject(docPath)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer release()

	stats := docStats{
		FilePath: docPath,
		FileSize: fileInfo.Size(),
		ByType:   make(map[string]int),
	}

	walkStats(buf.Root(), 1, &stats)

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("\nDocument Statistics: %s\n", docPath)
	printInfo("%s\n\n", strings.Repeat("-", 40))
	printInfo("File Size: %d bytes\n", stats.FileSize)
	printInfo("Max Depth: %d\n", stats.MaxDepth)
	printInfo("Objects: %d\n", stats.Objects)
	printInfo("Arrays: %d\n\n", stats.Arrays)

	printInfo("Values by Type:\n")
	kinds := make([]string, 0, len(stats.ByType))
	for k := range stats.ByType {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		printInfo("  %s: %d\n", k, stats.ByType[k])
	}

	return nil
}

func walkStats(v node.Value, depth int, stats *docStats) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	switch v.Kind() {
	case types.LogicalObject:
		stats.Objects++
		obj := v.Object()
		obj.Each(func(_ string, child node.Value) bool {
			walkStats(child, depth+1, stats)
			return true
		})
	case types.LogicalArray:
		stats.Arrays++
		arr := v.Array()
		arr.Each(func(_ int, child node.Value) bool {
			walkStats(child, depth+1, stats)
			return true
		})
	default:
		stats.ByType[kindName(v.Kind())]++
	}
}

func kindName(k types.Logical) string {
	switch k {
	case types.LogicalString:
		return "string"
	case types.LogicalInteger:
		return "integer"
	case types.LogicalDecimal:
		return "decimal"
	case types.LogicalBoolean:
		return "boolean"
	case types.LogicalNull:
		return "null"
	default:
		return "unknown"
	}
}
