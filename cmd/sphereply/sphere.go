package main

import (
	"fmt"

	"github.com/philipparndt/sphereply/internal/config"
	"github.com/spf13/cobra"
)

var (
	sphereOutput    string
	sphereLongitude int
	sphereLatitude  int
)

var sphereCmd = &cobra.Command{
	Use:   "sphere",
	Short: "Generate a full UV sphere",
	Long:  "Generate a unit sphere whose longitude spans the full circle and write it as an ASCII PLY file.",
	Args:  cobra.NoArgs,
	Run:   runSphere,
}

func init() {
	rootCmd.AddCommand(sphereCmd)

	sphereCmd.Flags().StringVarP(&sphereOutput, "output", "o", "sphere.ply", "Output PLY file")
	sphereCmd.Flags().IntVar(&sphereLongitude, "longitude", 64, "Longitude subdivisions")
	sphereCmd.Flags().IntVar(&sphereLatitude, "latitude", 32, "Latitude subdivisions")
}

func runSphere(cmd *cobra.Command, args []string) {
	job := config.Job{
		Name:      "sphere",
		Kind:      config.KindFull,
		Longitude: sphereLongitude,
		Latitude:  sphereLatitude,
		Output:    sphereOutput,
	}

	if err := runJob(job); err != nil {
		fatal(err)
	}

	fmt.Println("Done.")
}
