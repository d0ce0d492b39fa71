package planeseg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Calibration is a pinhole camera intrinsic used to back-project depth
// frames. DepthScale divides raw depth values into meters.
type Calibration struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fx         float64 `yaml:"fx"`
	Fy         float64 `yaml:"fy"`
	Cx         float64 `yaml:"cx"`
	Cy         float64 `yaml:"cy"`
	DepthScale float64 `yaml:"depth_scale"`
}

// PrimeSenseDefault is the 640x480 PrimeSense factory calibration.
func PrimeSenseDefault() Calibration {
	return Calibration{
		Width:      640,
		Height:     480,
		Fx:         525.0,
		Fy:         525.0,
		Cx:         319.5,
		Cy:         239.5,
		DepthScale: 1000.0,
	}
}

// LoadCalibration reads a calibration from a YAML file. Fields absent
// from the file keep the PrimeSense default values.
func LoadCalibration(path string) (Calibration, error) {
	c := PrimeSenseDefault()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse calibration: %w", err)
	}
	return c, nil
}
