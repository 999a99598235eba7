package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/sphereply/internal/config"
	"github.com/philipparndt/sphereply/internal/logger"
	"github.com/philipparndt/sphereply/pkg/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultDebounce = 200 * time.Millisecond

var (
	runConfigPath string
	runWatch      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate every mesh listed in a job file",
	Long: `Generate every mesh listed in a YAML job file. Without a job file the
built-in jobs produce sphereL.ply, sphereR.ply (64x64 each) and sphere.ply (64x32).
With --watch the jobs run again whenever the job file changes.`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "YAML job file (default "+config.DefaultPath+" if present)")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Regenerate when the job file changes")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := loadJobs(cmd)
	if err != nil {
		fatal(err)
	}

	if err := runJobs(cfg.Jobs); err != nil {
		fatal(err)
	}
	fmt.Println("Done.")

	if !runWatch {
		return
	}

	if err := watchJobs(cmd, cfg); err != nil {
		fatal(err)
	}
}

// loadJobs loads and validates the job file.
// Logging settings from the file apply unless given on the command line.
func loadJobs(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return nil, err
	}

	level, file := cfg.Logging.Level, cfg.Logging.LogFile
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	if cmd.Flags().Changed("log-file") {
		file = logFile
	}
	if err := logger.Init(level, file); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// watchJobs reruns the jobs on every change of the job file until interrupted
func watchJobs(cmd *cobra.Command, cfg *config.Config) error {
	path := runConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("--watch needs a job file, %s does not exist", path)
		}
		return err
	}

	debounce := cfg.Watch.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fw, err := watcher.NewFileWatcher(debounce, logger.Log)
	if err != nil {
		return err
	}
	defer fw.Close()

	// Reloads run on this goroutine so the logger is only replaced here
	changes := make(chan string, 1)
	err = fw.Watch([]string{path}, func(changed string) {
		select {
		case changes <- changed:
		default:
		}
	})
	if err != nil {
		return err
	}
	fw.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Log.Info("watching for changes", zap.String("file", path))
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("stopped watching")
			return nil
		case changed := <-changes:
			reloadJobs(cmd, changed)
		}
	}
}

// reloadJobs reloads the job file and reruns it, logging failures instead of exiting
func reloadJobs(cmd *cobra.Command, changed string) {
	logger.Log.Info("job file changed", zap.String("file", changed))

	cfg, err := loadJobs(cmd)
	if err != nil {
		logger.Log.Error("failed to load jobs", zap.Error(err))
		return
	}
	if err := runJobs(cfg.Jobs); err != nil {
		logger.Log.Error("failed to run jobs", zap.Error(err))
		return
	}
	fmt.Println("Done.")
}
