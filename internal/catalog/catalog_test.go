package catalog

import (
	"testing"
)

func TestMutateDeterministic(t *testing.T) {
	seeds := []uint32{0, 1, 42, 0xdeadbeef, 99999}
	for _, v := range All() {
		for _, seed := range seeds {
			a := Mutate(v, seed)
			b := Mutate(v, seed)

			if a.FinalDuration != b.FinalDuration {
				t.Errorf("%s seed=%d: duration %f != %f", v.ID, seed, a.FinalDuration, b.FinalDuration)
			}
			if a.FinalParticleCount != b.FinalParticleCount {
				t.Errorf("%s seed=%d: particles %d != %d", v.ID, seed, a.FinalParticleCount, b.FinalParticleCount)
			}
			if len(a.FinalColors) != len(b.FinalColors) {
				t.Fatalf("%s seed=%d: color count mismatch", v.ID, seed)
			}
			for i := range a.FinalColors {
				if a.FinalColors[i] != b.FinalColors[i] {
					t.Errorf("%s seed=%d: color[%d] %v != %v", v.ID, seed, i, a.FinalColors[i], b.FinalColors[i])
				}
			}
			if a.Knobs != b.Knobs {
				t.Errorf("%s seed=%d: knobs differ: %+v vs %+v", v.ID, seed, a.Knobs, b.Knobs)
			}
		}
	}
}

func TestMutateRespectsBounds(t *testing.T) {
	for _, v := range All() {
		for seed := uint32(0); seed < 200; seed++ {
			m := Mutate(v, seed)
			if m.FinalDuration < v.Bounds.Duration.Min || m.FinalDuration > v.Bounds.Duration.Max {
				t.Errorf("%s seed=%d: duration %f outside [%f, %f]",
					v.ID, seed, m.FinalDuration, v.Bounds.Duration.Min, v.Bounds.Duration.Max)
			}
			p := float64(m.FinalParticleCount)
			// rounding may land exactly on a bound but never past it by more than 0.5
			if p < v.Bounds.Particles.Min-0.5 || p > v.Bounds.Particles.Max+0.5 {
				t.Errorf("%s seed=%d: particles %d outside [%f, %f]",
					v.ID, seed, m.FinalParticleCount, v.Bounds.Particles.Min, v.Bounds.Particles.Max)
			}
			if m.Knobs.Speed < v.Bounds.Speed.Min || m.Knobs.Speed > v.Bounds.Speed.Max {
				t.Errorf("%s seed=%d: speed %f out of bounds", v.ID, seed, m.Knobs.Speed)
			}
			if m.Knobs.Scale < v.Bounds.Scale.Min || m.Knobs.Scale > v.Bounds.Scale.Max {
				t.Errorf("%s seed=%d: scale %f out of bounds", v.ID, seed, m.Knobs.Scale)
			}
			if m.Knobs.PaletteSeed < 0 || m.Knobs.PaletteSeed >= 1 {
				t.Errorf("%s seed=%d: palette seed %f outside [0,1)", v.ID, seed, m.Knobs.PaletteSeed)
			}
			if m.FinalParticleCount <= 0 {
				t.Errorf("%s seed=%d: non-positive particle count", v.ID, seed)
			}
		}
	}
}

func TestMutateVariesAcrossSeeds(t *testing.T) {
	v, ok := ByID("prism-break")
	if !ok {
		t.Fatal("prism-break missing from catalog")
	}

	distinct := make(map[float64]bool)
	for seed := uint32(0); seed < 50; seed++ {
		distinct[Mutate(v, seed).FinalDuration] = true
	}
	if len(distinct) < 10 {
		t.Errorf("expected varied durations across 50 seeds, got %d distinct", len(distinct))
	}
}

func TestByID(t *testing.T) {
	if _, ok := ByID("no-such-variant"); ok {
		t.Error("expected miss for unknown id")
	}
	v, ok := ByID("gentle-bloom")
	if !ok {
		t.Fatal("gentle-bloom missing")
	}
	if v.Class != ClassRenewal {
		t.Errorf("got class %q, want %q", v.Class, ClassRenewal)
	}
}

func TestAccessorsFilter(t *testing.T) {
	low := LowTier()
	if len(low) == 0 {
		t.Fatal("no low-tier variants")
	}
	for _, v := range low {
		if !v.LowTierSafe {
			t.Errorf("%s returned by LowTier but not flagged", v.ID)
		}
	}

	fb := Fallbacks()
	if len(fb) < 2 {
		t.Fatalf("expected at least 2 fallback variants, got %d", len(fb))
	}
	foundPreferred := false
	for _, v := range fb {
		if !v.IsFallback {
			t.Errorf("%s returned by Fallbacks but not flagged", v.ID)
		}
		if v.ID == FallbackID {
			foundPreferred = true
		}
		if !v.LowTierSafe {
			t.Errorf("fallback %s must be low-tier safe", v.ID)
		}
	}
	if !foundPreferred {
		t.Errorf("preferred fallback %q not in fallback set", FallbackID)
	}

	for _, v := range ByClass(ClassRelease) {
		if v.Class != ClassRelease {
			t.Errorf("%s has class %q", v.ID, v.Class)
		}
	}
	for _, v := range ByIntensity(IntensityExtreme) {
		if v.Intensity != IntensityExtreme {
			t.Errorf("%s has intensity %q", v.ID, v.Intensity)
		}
	}
}

func TestReducedMotionPoolNonEmpty(t *testing.T) {
	// Selector's reduced-motion filter needs at least one low/ease variant.
	count := 0
	for _, v := range All() {
		if v.Intensity == IntensityLow && v.CurveProfile == CurveEase {
			count++
		}
	}
	if count == 0 {
		t.Fatal("catalog has no low-intensity ease variants")
	}
}

func TestGenerateSeedVaries(t *testing.T) {
	seen := make(map[uint32]bool)
	for i := 0; i < 100; i++ {
		seen[GenerateSeed()] = true
	}
	if len(seen) < 95 {
		t.Errorf("expected near-unique seeds, got %d distinct of 100", len(seen))
	}
}
