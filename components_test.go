package planeseg

import (
	"testing"
)

func blockDepthMap(w, h int, x0, y0, x1, y1 int, v float32) *DepthMap {
	dm := NewDepthMap(w, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dm.Set(x, y, v)
		}
	}
	return dm
}

func TestConnectedComponents(t *testing.T) {
	t.Run("SingleBlock", func(t *testing.T) {
		dm := blockDepthMap(20, 20, 5, 5, 15, 15, 2.0)

		regions, err := ConnectedComponents(dm, defaultMinComponentFraction)
		if err != nil {
			t.Fatal(err)
		}
		if len(regions) != 1 {
			t.Fatalf("Expected 1 component, got: %d", len(regions))
		}
		r := regions[0]
		if n := r.Mask.Count(); n != 100 {
			t.Errorf("Expected component of 100 pixels, got: %d", n)
		}
		for y := 0; y < 20; y++ {
			for x := 0; x < 20; x++ {
				inBlock := x >= 5 && x < 15 && y >= 5 && y < 15
				if inBlock != (r.Mask.At(x, y) != 0) {
					t.Fatalf("Mask mismatch at (%d, %d)", x, y)
				}
				if inBlock && r.Depth.At(x, y) != 2.0 {
					t.Fatalf("Depth must be restricted, not rescaled, at (%d, %d)", x, y)
				}
			}
		}
	})

	t.Run("SmallComponentDropped", func(t *testing.T) {
		dm := blockDepthMap(20, 20, 1, 1, 7, 7, 1.0) // 36 pixels
		for y := 15; y < 17; y++ {
			for x := 15; x < 17; x++ { // 4 pixels, below 0.3*40
				dm.Set(x, y, 1.0)
			}
		}

		regions, err := ConnectedComponents(dm, defaultMinComponentFraction)
		if err != nil {
			t.Fatal(err)
		}
		if len(regions) != 1 {
			t.Fatalf("Expected only the large component, got: %d", len(regions))
		}
		if n := regions[0].Mask.Count(); n != 36 {
			t.Errorf("Expected the 36 pixel component, got: %d", n)
		}
	})

	t.Run("DisjointSubsetOfForeground", func(t *testing.T) {
		dm := blockDepthMap(20, 20, 1, 1, 7, 7, 1.0)
		for y := 15; y < 19; y++ {
			for x := 15; x < 19; x++ {
				dm.Set(x, y, 3.0)
			}
		}

		regions, err := ConnectedComponents(dm, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(regions) != 2 {
			t.Fatalf("Expected 2 components, got: %d", len(regions))
		}
		for y := 0; y < 20; y++ {
			for x := 0; x < 20; x++ {
				var hits int
				for _, r := range regions {
					if r.Mask.At(x, y) != 0 {
						hits++
					}
				}
				if hits > 1 {
					t.Fatalf("Masks must be disjoint, pixel (%d, %d) in %d masks", x, y, hits)
				}
				if hits == 1 && dm.At(x, y) <= 0 {
					t.Fatalf("Mask pixel (%d, %d) outside the foreground", x, y)
				}
			}
		}
	})

	t.Run("Empty", func(t *testing.T) {
		regions, err := ConnectedComponents(NewDepthMap(10, 10), defaultMinComponentFraction)
		if err != nil {
			t.Fatal(err)
		}
		if len(regions) != 0 {
			t.Errorf("Expected no components, got: %d", len(regions))
		}
	})
}
