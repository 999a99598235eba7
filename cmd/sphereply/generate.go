package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipparndt/sphereply/internal/config"
	"github.com/philipparndt/sphereply/internal/logger"
	"github.com/philipparndt/sphereply/pkg/mesh"
	"github.com/philipparndt/sphereply/pkg/ply"
	"github.com/philipparndt/sphereply/pkg/sphere"
	"github.com/philipparndt/sphereply/pkg/stl"
	"go.uber.org/zap"
)

// generateJob builds the mesh described by a validated job
func generateJob(job config.Job) (*mesh.Mesh, error) {
	if job.Kind != config.KindHalf {
		return sphere.Full(job.Grid())
	}

	h, err := sphere.ParseHemisphere(job.Hemisphere)
	if err != nil {
		return nil, err
	}
	return sphere.Half(job.Grid(), h)
}

// runJob generates one mesh and writes it to the job's output file.
// Nothing is written when generation fails.
func runJob(job config.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	start := time.Now()
	logger.Log.Debug("generating mesh",
		zap.String("job", job.Name),
		zap.String("kind", job.Kind),
		zap.String("hemisphere", job.Hemisphere),
		zap.Int("longitude", job.Longitude),
		zap.Int("latitude", job.Latitude),
		zap.Int("nodes", job.Grid().NodeCount()),
		zap.Int("cells", job.Grid().CellCount()))

	m, err := generateJob(job)
	if err != nil {
		return fmt.Errorf("job %q: %w", job.Name, err)
	}

	if err := ply.WriteFile(job.Output, m); err != nil {
		return fmt.Errorf("job %q: %w", job.Name, err)
	}

	logger.Log.Info("mesh written",
		zap.String("job", job.Name),
		zap.String("file", job.Output),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("faces", m.TriangleCount()),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// runJobs runs jobs in order and stops at the first failure
func runJobs(jobs []config.Job) error {
	for _, job := range jobs {
		if err := runJob(job); err != nil {
			return err
		}
	}
	return nil
}

func isSTL(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".stl")
}

// loadMesh reads a PLY or STL file, chosen by extension
func loadMesh(filename string) (*mesh.Mesh, error) {
	if isSTL(filename) {
		model, err := stl.Parse(filename)
		if err != nil {
			return nil, fmt.Errorf("parsing STL file: %w", err)
		}
		return model.ToMesh(), nil
	}

	m, err := ply.Parse(filename)
	if err != nil {
		return nil, fmt.Errorf("parsing PLY file: %w", err)
	}
	return m, nil
}
