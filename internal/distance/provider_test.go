package distance

import (
	"context"
	"testing"
)

func TestRandomStaysInRange(t *testing.T) {
	p := NewRandom(1)
	ctx := context.Background()
	for i := 0; i < 200; i++ {
		km, err := p.DistanceKm(ctx, "Chennai", "Madurai")
		if err != nil {
			t.Fatalf("DistanceKm: %v", err)
		}
		if km < 100 || km >= 400 {
			t.Fatalf("distance %d outside [100, 400)", km)
		}
	}
}

func TestCacheKeyNormalizesInput(t *testing.T) {
	a := cacheKey("  Chennai Airport ", "Madurai")
	b := cacheKey("chennai  airport", "MADURAI")
	if a != b {
		t.Errorf("cache keys differ: %q vs %q", a, b)
	}
}
