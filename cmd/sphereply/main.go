package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/sphereply/internal/logger"
	"github.com/philipparndt/sphereply/version"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "sphereply",
	Short: "Generate UV sphere meshes as ASCII PLY files",
	Long: `sphereply generates triangulated unit spheres with equirectangular texture
coordinates and writes them as ASCII PLY files. It can generate a full sphere,
the two halves of a sphere, or every job listed in a YAML job file, and it can
inspect existing PLY files and render their texture layout.`,
	Version: version.GetFullVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logLevel, logFile)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file")
}

// fatal prints err, flushes the log and exits with status 1
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	logger.Sync()
	os.Exit(1)
}

func main() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}
