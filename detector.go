package planeseg

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultStopFraction = 0.1

// KernelSize is a closing kernel rectangle.
type KernelSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DetectorConfig holds the tunable parameters of the detection pipeline.
// Zero values select the package defaults.
type DetectorConfig struct {
	// CropThreshold is a fixed inverse-depth cutoff. Non-positive
	// selects the mean statistic.
	CropThreshold float64 `yaml:"crop_threshold"`
	// MinComponentFraction drops components smaller than this fraction
	// of the foreground.
	MinComponentFraction float64 `yaml:"min_component_fraction"`
	// CloseComponents fills holes in component masks before extraction.
	CloseComponents bool         `yaml:"close_components"`
	CloseKernels    []KernelSize `yaml:"close_kernels"`
	// StopFraction ends plane extraction once fewer than this fraction
	// of a component's points remain.
	StopFraction     float64      `yaml:"stop_fraction"`
	RansacIterations int          `yaml:"ransac_iterations"`
	Calibration      *Calibration `yaml:"calibration"`
}

// LoadDetectorConfig reads a DetectorConfig from a YAML file.
func LoadDetectorConfig(path string) (DetectorConfig, error) {
	var cfg DetectorConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse detector config: %w", err)
	}
	return cfg, nil
}

// Detector runs the whole pipeline: depth crop, component split,
// optional hole closing and iterative plane extraction per component.
type Detector struct {
	cfg DetectorConfig
	ext *Extractor
	log logrus.FieldLogger
}

func NewDetector(cfg DetectorConfig, log logrus.FieldLogger) *Detector {
	if cfg.MinComponentFraction <= 0 {
		cfg.MinComponentFraction = defaultMinComponentFraction
	}
	if cfg.StopFraction <= 0 {
		cfg.StopFraction = defaultStopFraction
	}
	cal := PrimeSenseDefault()
	if cfg.Calibration != nil {
		cal = *cfg.Calibration
	}
	if log == nil {
		log = discardLogger()
	}
	ext := NewExtractor(cal)
	if cfg.RansacIterations > 0 {
		ext.Iterations = cfg.RansacIterations
	}
	ext.Log = log
	return &Detector{cfg: cfg, ext: ext, log: log}
}

// Extractor exposes the plane extractor used per component.
func (d *Detector) Extractor() *Extractor {
	return d.ext
}

// Detect returns the planes found in a raw depth frame.
func (d *Detector) Detect(dm *DepthMap) ([]PlaneRegion, error) {
	var th Threshold
	if d.cfg.CropThreshold > 0 {
		th = FixedThreshold(d.cfg.CropThreshold)
	}
	cropped, n := CropDepth(dm, th)
	d.log.WithField("pixels", n).Debug("cropped depth frame")

	regions, err := ConnectedComponents(cropped, d.cfg.MinComponentFraction)
	if err != nil {
		return nil, err
	}
	d.log.WithField("components", len(regions)).Debug("split into components")

	var out []PlaneRegion
	for _, r := range regions {
		m := r.Mask
		if d.cfg.CloseComponents {
			m, err = CloseMask(m, d.closeKernels())
			if err != nil {
				return nil, err
			}
		}
		out = append(out, d.ext.ExtractPlanes(m, r.Depth, m.Count(), d.cfg.StopFraction)...)
	}
	d.log.WithField("planes", len(out)).Info("plane detection finished")
	return out, nil
}

func (d *Detector) closeKernels() []image.Point {
	if len(d.cfg.CloseKernels) == 0 {
		return nil // CloseMask applies its defaults
	}
	ks := make([]image.Point, len(d.cfg.CloseKernels))
	for i, k := range d.cfg.CloseKernels {
		ks[i] = image.Pt(k.Width, k.Height)
	}
	return ks
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
