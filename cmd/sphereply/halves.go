package main

import (
	"fmt"

	"github.com/philipparndt/sphereply/internal/config"
	"github.com/spf13/cobra"
)

var (
	halvesLeft      string
	halvesRight     string
	halvesLongitude int
	halvesLatitude  int
)

var halvesCmd = &cobra.Command{
	Use:   "halves",
	Short: "Generate the left and right halves of a UV sphere",
	Long: `Generate two half spheres covering longitudes [0, π] and [π, 2π].
Both halves use the same texture layout so one image can be mapped onto each.`,
	Args: cobra.NoArgs,
	Run:  runHalves,
}

func init() {
	rootCmd.AddCommand(halvesCmd)

	halvesCmd.Flags().StringVar(&halvesLeft, "left", "sphereL.ply", "Output PLY file for the left half")
	halvesCmd.Flags().StringVar(&halvesRight, "right", "sphereR.ply", "Output PLY file for the right half")
	halvesCmd.Flags().IntVar(&halvesLongitude, "longitude", 64, "Longitude subdivisions per half")
	halvesCmd.Flags().IntVar(&halvesLatitude, "latitude", 64, "Latitude subdivisions")
}

func runHalves(cmd *cobra.Command, args []string) {
	cfg := &config.Config{
		Jobs: []config.Job{
			{Name: "left", Kind: config.KindHalf, Hemisphere: "left", Longitude: halvesLongitude, Latitude: halvesLatitude, Output: halvesLeft},
			{Name: "right", Kind: config.KindHalf, Hemisphere: "right", Longitude: halvesLongitude, Latitude: halvesLatitude, Output: halvesRight},
		},
	}

	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	if err := runJobs(cfg.Jobs); err != nil {
		fatal(err)
	}

	fmt.Println("Done.")
}
