package config

import (
	"fmt"
)

// Config holds all configuration parameters for the simulation
type Config struct {
	// Display settings
	ScreenWidth  int
	ScreenHeight int

	// Grid dimensions (must each be a power of two)
	Nx int
	Ny int

	// Physics parameters
	Dx        float64
	Dt        float64
	Hbar      float64
	Mass      float64
	TimeScale float64

	// Potential parameters
	PotentialType          string
	PotentialStrength      float64
	PotentialStrengthScale float64
	PotentialWidth         float64

	// Measurement parameters
	MeasurementRadius float64

	// Rendering parameters
	GridVisScale float64
	HeatmapGamma float64

	// Runtime flags
	StartPaused   bool
	FilterEnabled bool
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		// Display settings
		ScreenWidth:  1280,
		ScreenHeight: 720,

		// Grid dimensions
		Nx: 256,
		Ny: 256,

		// Physics parameters
		Dx:        10.0 / 256.0,
		Dt:        0.01,
		Hbar:      1.0,
		Mass:      1.0,
		TimeScale: 1.0,

		// Potential parameters
		PotentialType:          "none",
		PotentialStrength:      1.0,
		PotentialStrengthScale: 1.0,
		PotentialWidth:         2.0,

		// Measurement parameters
		MeasurementRadius: 0.2,

		// Rendering parameters
		GridVisScale: 1.0,
		HeatmapGamma: 0.6,

		// Runtime flags
		StartPaused:   false,
		FilterEnabled: true,
	}
}

func isPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 {
		return fmt.Errorf("invalid screen width: %d", c.ScreenWidth)
	}
	if c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen height: %d", c.ScreenHeight)
	}
	if !isPowerOfTwo(c.Nx) {
		return fmt.Errorf("invalid grid width: %d (must be a power of two >= 2)", c.Nx)
	}
	if !isPowerOfTwo(c.Ny) {
		return fmt.Errorf("invalid grid height: %d (must be a power of two >= 2)", c.Ny)
	}
	if c.Dx <= 0 {
		return fmt.Errorf("invalid cell spacing: %g", c.Dx)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("invalid time step: %g", c.Dt)
	}
	if c.Hbar <= 0 {
		return fmt.Errorf("invalid hbar: %g", c.Hbar)
	}
	if c.Mass <= 0 {
		return fmt.Errorf("invalid mass: %g", c.Mass)
	}
	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
