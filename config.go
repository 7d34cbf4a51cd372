package urdf

import (
	"errors"
	"fmt"

	"gopkg.in/gcfg.v1"
)

// --- Constants ---

const (
	// DefaultCoplanarThreshold is the |cos| between the view vector and a
	// revolute axis below which the camera-aware solver treats the view as
	// edge-on. Tuned by hand, not derived.
	DefaultCoplanarThreshold = 0.3
	// DefaultDragDeadZone is the pointer travel in pixels that turns a
	// press/release into a drag rather than a click.
	DefaultDragDeadZone = 4.0
	// DefaultTrajectoryLength is the number of samples a JointHistory keeps.
	DefaultTrajectoryLength = 100
)

// Err* are the validation errors returned by Config.Validate.
var (
	ErrInvalidThreshold = errors.New("coplanar threshold outside [0, 1]")
	ErrInvalidDeadZone  = errors.New("negative drag dead zone")
	ErrInvalidLength    = errors.New("trajectory length must be positive")
)

// Config holds the tunables of the pointer controls.
type Config struct {
	CoplanarThreshold float64
	DragDeadZone      float64
	TrajectoryLength  int
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		CoplanarThreshold: DefaultCoplanarThreshold,
		DragDeadZone:      DefaultDragDeadZone,
		TrajectoryLength:  DefaultTrajectoryLength,
	}
}

// Validate checks the ranges of every field.
func (c Config) Validate() error {
	if c.CoplanarThreshold < 0 || c.CoplanarThreshold > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, c.CoplanarThreshold)
	}
	if c.DragDeadZone < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDeadZone, c.DragDeadZone)
	}
	if c.TrajectoryLength <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, c.TrajectoryLength)
	}
	return nil
}

// ExampleConfigFile documents the config file format.
const ExampleConfigFile = `[Controls]

# Minimum |cos| between the view vector and a revolute joint axis for the
# swept-angle measure. Below it the drag is measured along the screen.
CoplanarThreshold = 0.3

# Pointer travel in pixels before a press becomes a drag instead of a click.
DragDeadZone = 4

# Number of joint value samples kept per history.
TrajectoryLength = 100`

type configFile struct {
	Controls Config
}

// ParseConfig reads a gcfg-formatted config. Variables left out keep their
// defaults.
func ParseConfig(text string) (Config, error) {
	f := configFile{Controls: DefaultConfig()}
	if err := gcfg.ReadStringInto(&f, text); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := f.Controls.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return f.Controls, nil
}

// LoadConfig reads a gcfg-formatted config file.
func LoadConfig(path string) (Config, error) {
	f := configFile{Controls: DefaultConfig()}
	if err := gcfg.ReadFileInto(&f, path); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := f.Controls.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return f.Controls, nil
}
