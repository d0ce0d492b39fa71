package planeseg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectorDetect(t *testing.T) {
	// One 10x10 block at constant depth inside a 20x20 frame.
	dm := blockDepthMap(20, 20, 5, 5, 15, 15, 2.0)

	cal := Calibration{Width: 20, Height: 20, Fx: 1, Fy: 1, Cx: 0, Cy: 0, DepthScale: 1}
	d := NewDetector(DetectorConfig{
		CropThreshold: 1.0, // 1/2.0=0.5 stays below the cutoff
		StopFraction:  1.0,
		Calibration:   &cal,
	}, nil)

	planes, err := d.Detect(dm)
	if err != nil {
		t.Fatal(err)
	}
	if len(planes) != 1 {
		t.Fatalf("Expected one plane, got: %d", len(planes))
	}
	if n := planes[0].Mask.Count(); n != 100 {
		t.Errorf("Expected the full block consumed, got: %d pixels", n)
	}
	for y := 5; y < 15; y++ {
		for x := 5; x < 15; x++ {
			if planes[0].Mask.At(x, y) == 0 {
				t.Fatalf("Expected block pixel (%d, %d) in the plane mask", x, y)
			}
		}
	}
}

func TestDetectorDetectEmpty(t *testing.T) {
	d := NewDetector(DetectorConfig{}, nil)
	planes, err := d.Detect(NewDepthMap(20, 20))
	if err != nil {
		t.Fatal(err)
	}
	if len(planes) != 0 {
		t.Errorf("Expected no planes in an empty frame, got: %d", len(planes))
	}
}

func TestLoadDetectorConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detector.yaml")
	data := []byte(`crop_threshold: 0.5
min_component_fraction: 0.25
close_components: true
close_kernels:
  - width: 5
    height: 50
stop_fraction: 0.2
ransac_iterations: 42
calibration:
  fx: 600
  fy: 600
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDetectorConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CropThreshold != 0.5 || cfg.MinComponentFraction != 0.25 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if !cfg.CloseComponents || len(cfg.CloseKernels) != 1 || cfg.CloseKernels[0].Height != 50 {
		t.Errorf("Unexpected closing config: %+v", cfg)
	}
	if cfg.Calibration == nil || cfg.Calibration.Fx != 600 {
		t.Errorf("Unexpected calibration: %+v", cfg.Calibration)
	}

	d := NewDetector(cfg, nil)
	if d.Extractor().Iterations != 42 {
		t.Errorf("Expected 42 iterations, got: %d", d.Extractor().Iterations)
	}
}

func TestNewDetectorDefaults(t *testing.T) {
	d := NewDetector(DetectorConfig{}, nil)
	if d.cfg.MinComponentFraction != defaultMinComponentFraction {
		t.Errorf("Expected default component fraction, got: %f", d.cfg.MinComponentFraction)
	}
	if d.cfg.StopFraction != defaultStopFraction {
		t.Errorf("Expected default stop fraction, got: %f", d.cfg.StopFraction)
	}
	if d.ext.Calibration != PrimeSenseDefault() {
		t.Errorf("Expected the PrimeSense calibration, got: %+v", d.ext.Calibration)
	}
	if d.ext.Iterations != defaultRansacIterations {
		t.Errorf("Expected default iterations, got: %d", d.ext.Iterations)
	}
}
