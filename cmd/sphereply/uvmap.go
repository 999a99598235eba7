package main

import (
	"fmt"

	"github.com/philipparndt/sphereply/internal/logger"
	"github.com/philipparndt/sphereply/pkg/ply"
	"github.com/philipparndt/sphereply/pkg/uvmap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	uvmapOutput    string
	uvmapSize      int
	uvmapLineWidth float32
)

var uvmapCmd = &cobra.Command{
	Use:   "uvmap [file]",
	Short: "Render the texture layout of a PLY file",
	Long:  "Draw every triangle edge at its texture coordinates and save the result as a PNG or WebP image.",
	Args:  cobra.ExactArgs(1),
	Run:   runUVMap,
}

func init() {
	rootCmd.AddCommand(uvmapCmd)

	uvmapCmd.Flags().StringVarP(&uvmapOutput, "output", "o", "uv.png", "Output image (.png or .webp)")
	uvmapCmd.Flags().IntVar(&uvmapSize, "size", 1024, "Image width and height in pixels")
	uvmapCmd.Flags().Float32Var(&uvmapLineWidth, "line-width", 1, "Edge width in pixels")
}

func runUVMap(cmd *cobra.Command, args []string) {
	if uvmapSize < 1 {
		fatal(fmt.Errorf("size must be at least 1, got %d", uvmapSize))
	}

	m, err := ply.Parse(args[0])
	if err != nil {
		fatal(fmt.Errorf("parsing PLY file: %w", err))
	}

	opts := uvmap.DefaultOptions()
	opts.Size = uvmapSize
	opts.LineWidth = uvmapLineWidth

	img := uvmap.Render(m, opts)
	if err := uvmap.WriteFile(uvmapOutput, img); err != nil {
		fatal(err)
	}

	logger.Log.Info("uv map written",
		zap.String("file", uvmapOutput),
		zap.Int("size", uvmapSize),
		zap.Int("faces", m.TriangleCount()))
	fmt.Println("Done.")
}
