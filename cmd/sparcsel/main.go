package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oisee/sparc-select/pkg/sparc"
	"github.com/oisee/sparc-select/pkg/ssa"
	"github.com/oisee/sparc-select/pkg/transform"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sparcsel",
		Short: "SPARC instruction selection — lower a generic SSA graph to target nodes",
	}

	var outPath string
	var snapshotPath string

	transformCmd := &cobra.Command{
		Use:   "transform [graph.json]",
		Short: "Run instruction selection on a JSON-encoded source graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readGraph(args[0])
			if err != nil {
				return err
			}

			target, err := transform.TransformGraph(src)
			if err != nil {
				return fmt.Errorf("transform: %w", err)
			}

			fmt.Printf("%s: %d source nodes -> %d target nodes\n", src.Name, len(src.Nodes), len(target.Nodes))

			if snapshotPath != "" {
				if err := sparc.SaveSnapshot(snapshotPath, target); err != nil {
					return fmt.Errorf("snapshot: %w", err)
				}
				fmt.Printf("snapshot written to %s\n", snapshotPath)
			}
			if outPath != "" {
				if err := writeTargetSummary(outPath, target); err != nil {
					return err
				}
				fmt.Printf("summary written to %s\n", outPath)
			}
			return nil
		},
	}
	transformCmd.Flags().StringVar(&outPath, "output", "", "JSON summary output path")
	transformCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "gob snapshot output path")

	dumpCmd := &cobra.Command{
		Use:   "dump [snapshot.gob]",
		Short: "Dump a previously saved target-graph snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := sparc.LoadSnapshot(args[0])
			if err != nil {
				return err
			}
			for _, n := range g.Nodes {
				fmt.Printf("  %s %s (preds=%d)\n", n.Op, kindName(n.Mode.Kind), len(n.Preds))
			}
			fmt.Printf("%d nodes total\n", len(g.Nodes))
			return nil
		},
	}

	var numWorkers int
	verifyCmd := &cobra.Command{
		Use:   "verify [graph.json]...",
		Short: "Check the testable properties (spec-independent invariants) against one or more source graphs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var graphs []*ssa.Graph
			for _, path := range args {
				g, err := readGraph(path)
				if err != nil {
					return err
				}
				graphs = append(graphs, g)
			}

			pool := transform.NewPool(numWorkers)
			pool.Verify(graphs)

			checked, passed := pool.Report.Stats()
			fmt.Printf("checked %d graph(s), %d passed cleanly\n", checked, passed)
			for _, v := range pool.Report.Violations() {
				fmt.Printf("  [%s] %s: %s\n", v.Graph, v.Property, v.Detail)
			}
			if int64(len(pool.Report.Violations())) > 0 {
				return fmt.Errorf("%d property violation(s) found", len(pool.Report.Violations()))
			}
			return nil
		},
	}
	verifyCmd.Flags().IntVar(&numWorkers, "workers", 0, "Number of workers (0 = NumCPU)")

	rootCmd.AddCommand(transformCmd, dumpCmd, verifyCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var kindNames = map[ssa.Kind]string{
	ssa.KindInt:       "int",
	ssa.KindReference: "reference",
	ssa.KindFloat:     "float",
	ssa.KindMemory:    "memory",
	ssa.KindControl:   "control",
}

func kindName(k ssa.Kind) string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func readGraph(path string) (*ssa.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	g, err := ssa.DecodeGraph(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return g, nil
}

type targetNodeSummary struct {
	Op    string `json:"op"`
	Mode  string `json:"mode"`
	Preds int    `json:"preds"`
}

func writeTargetSummary(path string, g *sparc.Graph) error {
	summary := make([]targetNodeSummary, len(g.Nodes))
	for i, n := range g.Nodes {
		summary[i] = targetNodeSummary{Op: n.Op.String(), Mode: kindName(n.Mode.Kind), Preds: len(n.Preds)}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
