package main

import (
	"fmt"

	"github.com/philipparndt/sphereply/pkg/analysis"
	"github.com/spf13/cobra"
)

var (
	edgesCount    int
	edgesShortest bool
)

var edgesCmd = &cobra.Command{
	Use:   "edges [file]",
	Short: "List the longest or shortest edges of a PLY or STL file",
	Long:  "Rank the triangle edges of a mesh by length. Long edges show where the grid is coarsest, short ones where it converges at the poles.",
	Args:  cobra.ExactArgs(1),
	Run:   runEdges,
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest instead of longest edges")
}

func runEdges(cmd *cobra.Command, args []string) {
	if edgesCount < 0 {
		fatal(fmt.Errorf("count must not be negative, got %d", edgesCount))
	}

	m, err := loadMesh(args[0])
	if err != nil {
		fatal(err)
	}

	result := analysis.AnalyzeMesh(m)

	var edges []analysis.EdgeInfo
	var title string
	if edgesShortest {
		edges = analysis.FindShortestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	} else {
		edges = analysis.FindLongestEdges(result, edgesCount)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total edges in mesh: %d\n\n", result.EdgeCount)

	if len(edges) == 0 {
		fmt.Println("No edges found.")
		return
	}

	fmt.Printf("%-6s %-8s %-35s %-35s %-15s\n", "Index", "Face", "Start", "End", "Length")
	fmt.Println("------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		fmt.Printf("%-6d %-8d %-35s %-35s %-15.9f\n",
			i+1,
			edge.TriangleID,
			analysis.FormatVector(m.Vertices[edge.Start].Pos),
			analysis.FormatVector(m.Vertices[edge.End].Pos),
			edge.Length)
	}
}
