package main

import (
	"fmt"

	"github.com/philipparndt/sphereply/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a PLY or STL file",
	Long:  "Show vertex and face counts, bounding box, surface area, texture coordinate ranges, winding and edge statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	m, err := loadMesh(filename)
	if err != nil {
		fatal(err)
	}

	result := analysis.AnalyzeMesh(m)

	fmt.Println("Mesh File Information")
	fmt.Println("=====================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Faces: %d\n", result.TriangleCount)
	fmt.Printf("  Zero-area faces: %d\n", result.ZeroAreaTriangles)
	fmt.Printf("  Inward-facing faces: %d of %d\n", result.InwardTriangles, result.TriangleCount-result.ZeroAreaTriangles)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	if result.VertexCount > 0 {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Printf("  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
		fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

		fmt.Println("Ranges:")
		fmt.Printf("  Radius: %s\n", analysis.FormatRange(result.Radius))
		fmt.Printf("  S: %s\n", analysis.FormatRange(result.S))
		fmt.Printf("  T: %s\n\n", analysis.FormatRange(result.T))
	}

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
