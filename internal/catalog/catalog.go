package catalog

// #region imports
import (
	"math"
	"sync/atomic"
	"time"
)

// #endregion

// #region accessors

// All returns the full catalog in stable declaration order.
// The returned slice is shared; callers must not modify it.
func All() []BaseVariant {
	return variantTable
}

// ByID looks up one variant. ok is false when the id is unknown.
func ByID(id string) (BaseVariant, bool) {
	i, ok := variantIndex[id]
	if !ok {
		return BaseVariant{}, false
	}
	return variantTable[i], true
}

// ByClass returns every variant in the given thematic class.
func ByClass(class VariantClass) []BaseVariant {
	var out []BaseVariant
	for _, v := range variantTable {
		if v.Class == class {
			out = append(out, v)
		}
	}
	return out
}

// LowTier returns the variants flagged safe for low-capability devices.
func LowTier() []BaseVariant {
	var out []BaseVariant
	for _, v := range variantTable {
		if v.LowTierSafe {
			out = append(out, v)
		}
	}
	return out
}

// Fallbacks returns the designated fallback set.
func Fallbacks() []BaseVariant {
	var out []BaseVariant
	for _, v := range variantTable {
		if v.IsFallback {
			out = append(out, v)
		}
	}
	return out
}

// ByIntensity returns every variant in the given intensity band.
func ByIntensity(band Intensity) []BaseVariant {
	var out []BaseVariant
	for _, v := range variantTable {
		if v.Intensity == band {
			out = append(out, v)
		}
	}
	return out
}

// #endregion accessors

// #region seed

var seedCounter uint32

// GenerateSeed produces a fresh seed for one selection. This is the
// non-deterministic half of the randomness split: entropy comes from
// the wall clock plus a process-local counter, while Mutate below is a
// pure function of the seed it is handed.
func GenerateSeed() uint32 {
	n := atomic.AddUint32(&seedCounter, 1)
	return mix32(uint32(time.Now().UnixNano()) + n*0x9E3779B9)
}

// #endregion seed

// #region mutation-stream

// mutStream is a splitmix32 draw sequence. Given the same seed it
// yields the same draws on every platform, which is what makes
// Mutate a pure function of (variant, seed).
type mutStream struct {
	state uint32
}

func mix32(z uint32) uint32 {
	z ^= z >> 16
	z *= 0x21f0aaad
	z ^= z >> 15
	z *= 0x735a2d97
	z ^= z >> 15
	return z
}

func (s *mutStream) nextUint32() uint32 {
	s.state += 0x9e3779b9
	return mix32(s.state)
}

// next returns a draw in [0, 1).
func (s *mutStream) next() float64 {
	return float64(s.nextUint32()>>8) / (1 << 24)
}

// #endregion mutation-stream

// #region mutate

// substitution pools for keep-or-substitute knob draws
var (
	curvePool  = []CurveProfile{CurveEase, CurveLinear, CurveBounce, CurvePulse}
	cameraPool = []CameraArchetype{CameraOrbit, CameraDolly, CameraRise, CameraDrift, CameraStatic}
)

const substituteChance = 0.3

// Mutate instantiates a variant with the procedural variation a seed
// produces. Calling it twice with the same (variant, seed) returns
// identical knobs and resolved outputs.
func Mutate(v BaseVariant, seed uint32) MutatedVariant {
	s := mutStream{state: seed}

	duration := clamp(lerp(v.Bounds.Duration, s.next()), v.Bounds.Duration)
	particles := clamp(lerp(v.Bounds.Particles, s.next()), v.Bounds.Particles)
	speed := clamp(lerp(v.Bounds.Speed, s.next()), v.Bounds.Speed)
	scale := clamp(lerp(v.Bounds.Scale, s.next()), v.Bounds.Scale)

	curve := v.CurveProfile
	if s.next() < substituteChance {
		curve = curvePool[int(s.next()*float64(len(curvePool)))%len(curvePool)]
	}
	camera := v.CameraArchetype
	if s.next() < substituteChance {
		camera = cameraPool[int(s.next()*float64(len(cameraPool)))%len(cameraPool)]
	}

	paletteSeed := s.next()
	audioIntensity := 0.5 + 0.5*s.next()
	audioOffset := s.next() * 0.5
	extraVisuals := int(s.next() * 3)

	knobs := MutationKnobs{
		Duration:       duration,
		Particles:      int(math.Round(particles)),
		Curve:          curve,
		Camera:         camera,
		PaletteSeed:    paletteSeed,
		AudioIntensity: audioIntensity,
		AudioOffset:    audioOffset,
		Speed:          speed,
		Scale:          scale,
		ExtraVisuals:   extraVisuals,
	}

	return MutatedVariant{
		Base:               v,
		Knobs:              knobs,
		Seed:               seed,
		FinalDuration:      duration,
		FinalParticleCount: knobs.Particles,
		FinalColors:        rotatePalette(v.Palette, paletteSeed),
	}
}

// #endregion mutate

// #region palette

// rotatePalette shifts every palette hue by up to ±30 degrees and
// nudges lightness, keyed entirely off paletteSeed so the derived
// colors stay deterministic per seed.
func rotatePalette(palette []Color, paletteSeed float64) []Color {
	shift := (paletteSeed - 0.5) * 60 // degrees
	out := make([]Color, len(palette))
	for i, c := range palette {
		h := math.Mod(c.H+shift+360, 360)
		l := c.L + (paletteSeed-0.5)*0.1
		if l < 0.05 {
			l = 0.05
		}
		if l > 0.95 {
			l = 0.95
		}
		out[i] = Color{H: h, S: c.S, L: l}
	}
	return out
}

// #endregion palette

// #region math-helpers

func lerp(b Bounds, t float64) float64 {
	return b.Min + (b.Max-b.Min)*t
}

func clamp(x float64, b Bounds) float64 {
	if x < b.Min {
		return b.Min
	}
	if x > b.Max {
		return b.Max
	}
	return x
}

// #endregion math-helpers
