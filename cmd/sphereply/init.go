package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/philipparndt/sphereply/internal/config"
	"github.com/philipparndt/sphereply/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrJobFileExists is returned when init would overwrite a job file
var ErrJobFileExists = errors.New("job file already exists")

var (
	initConfigPath string
	initForce      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a job file with the default jobs",
	Long: `Write a YAML job file listing the three default jobs (sphereL.ply,
sphereR.ply and sphere.ply) as a starting point for 'sphereply run'.`,
	Args: cobra.NoArgs,
	Run:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initConfigPath, "config", "c", config.DefaultPath, "Job file to write")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing job file")
}

func runInit(cmd *cobra.Command, args []string) {
	if err := writeDefaultJobs(initConfigPath, initForce); err != nil {
		fatal(err)
	}
	fmt.Println("Done.")
}

// writeDefaultJobs saves the default config to path, refusing to replace
// an existing file unless force is set
func writeDefaultJobs(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrJobFileExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Log.Info("job file written", zap.String("file", path))
	return nil
}
