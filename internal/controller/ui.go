// Package controller provides output adapters for displaying mutant generation results.
package controller

import (
	"context"

	m "mutar.dev/pkg/mutar/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeEstimate StartMode = iota
	ModeRun
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithEstimateMode sets the UI to estimation mode.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithRunMode sets the UI to mutant generation mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

func resolveStartConfig(options []StartOption) StartConfig {
	config := StartConfig{mode: ModeEstimate}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for displaying site estimates, run results and
// saved manifests.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayEstimation(ctx context.Context, estimates []m.FileEstimate, err error) error
	DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int)
	DisplayMutant(ctx context.Context, mutant m.FileMutant)
	DisplayMutantsWritten(ctx context.Context, count int, output m.Path)
	DisplayMutationSummary(ctx context.Context, reports []m.FileReport) error
	DisplayManifest(ctx context.Context, manifest m.Manifest) error
}
