package catalog

// #region variant-class

// VariantClass names the thematic family of a breakthrough sequence.
type VariantClass string

const (
	ClassClarity    VariantClass = "clarity"
	ClassRelease    VariantClass = "release"
	ClassConnection VariantClass = "connection"
	ClassCourage    VariantClass = "courage"
	ClassResolve    VariantClass = "resolve"
	ClassBoundary   VariantClass = "boundary"
	ClassRenewal    VariantClass = "renewal"
)

// #endregion

// #region intensity

// Intensity is the coarse energy band of a sequence.
type Intensity string

const (
	IntensityLow     Intensity = "low"
	IntensityMedium  Intensity = "medium"
	IntensityHigh    Intensity = "high"
	IntensityExtreme Intensity = "extreme"
)

// Level maps an intensity band onto [0,1] for averaging.
func (i Intensity) Level() float64 {
	switch i {
	case IntensityLow:
		return 0.25
	case IntensityMedium:
		return 0.5
	case IntensityHigh:
		return 0.75
	case IntensityExtreme:
		return 1.0
	}
	return 0
}

// #endregion

// #region moods

// ColorMood classifies the palette temperature of a variant.
type ColorMood string

const (
	MoodWarm   ColorMood = "warm"
	MoodCool   ColorMood = "cool"
	MoodDawn   ColorMood = "dawn"
	MoodDusk   ColorMood = "dusk"
	MoodNature ColorMood = "nature"
	MoodCosmic ColorMood = "cosmic"
)

// AudioMood classifies the sound bed a variant requests.
type AudioMood string

const (
	AudioSoft   AudioMood = "soft"
	AudioBright AudioMood = "bright"
	AudioDeep   AudioMood = "deep"
	AudioSilent AudioMood = "silent"
)

// #endregion

// #region motion-enums

// CurveProfile is the easing curve applied to sequence motion.
type CurveProfile string

const (
	CurveEase   CurveProfile = "ease"
	CurveLinear CurveProfile = "linear"
	CurveBounce CurveProfile = "bounce"
	CurvePulse  CurveProfile = "pulse"
)

// CameraArchetype names a camera path family the renderer knows how to drive.
type CameraArchetype string

const (
	CameraOrbit  CameraArchetype = "orbit"
	CameraDolly  CameraArchetype = "dolly"
	CameraRise   CameraArchetype = "rise"
	CameraDrift  CameraArchetype = "drift"
	CameraStatic CameraArchetype = "static"
)

// ParticlePattern names the emitter layout the renderer instantiates.
type ParticlePattern string

const (
	PatternBurst  ParticlePattern = "burst"
	PatternSpiral ParticlePattern = "spiral"
	PatternBloom  ParticlePattern = "bloom"
	PatternRain   ParticlePattern = "rain"
	PatternSwarm  ParticlePattern = "swarm"
	PatternRibbon ParticlePattern = "ribbon"
)

// #endregion

// #region quality-tier

// QualityTier is the coarse device-capability bucket supplied by the host.
type QualityTier string

const (
	TierLow  QualityTier = "low"
	TierMid  QualityTier = "mid"
	TierHigh QualityTier = "high"
)

// #endregion

// #region color

// Color is an HSL triple. Hue in degrees [0,360), saturation and
// lightness in [0,1]. HSL keeps palette rotation a pure hue shift.
type Color struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// #endregion

// #region bounds

// Bounds is an inclusive numeric range a mutation draw must land in.
type Bounds struct {
	Min float64
	Max float64
}

// MutationBounds declares the per-variant ranges the mutation step may
// explore. Draws outside a range are clamped, never widened.
type MutationBounds struct {
	Duration  Bounds // seconds
	Particles Bounds // emitter count
	Speed     Bounds // playback speed multiplier
	Scale     Bounds // spatial scale multiplier
}

// #endregion

// #region camera-path

// CameraPath describes the nominal camera trajectory for a variant.
type CameraPath struct {
	Archetype CameraArchetype
	Radius    float64 // orbit/dolly distance in world units
	Height    float64
	Period    float64 // seconds per full traversal
}

// #endregion

// #region effects

// Effects is the post-processing toggle set a variant requests.
type Effects struct {
	Bloom     bool
	Trails    bool
	Shockwave bool
	Vignette  bool
	LightRays bool
}

// #endregion

// #region base-variant

// BaseVariant is one immutable template in the static catalog.
// Defined entirely at build time; never created or destroyed at runtime.
type BaseVariant struct {
	ID        string
	Name      string
	Class     VariantClass
	Intensity Intensity
	ColorMood ColorMood
	AudioMood AudioMood

	BaseDuration      float64 // seconds
	BaseParticleCount int
	ParticlePattern   ParticlePattern
	CameraArchetype   CameraArchetype
	CurveProfile      CurveProfile

	Tags        []string
	LowTierSafe bool
	IsFallback  bool

	Bounds  MutationBounds
	Palette []Color
	Camera  CameraPath
	Effects Effects
}

// #endregion

// #region mutation-knobs

// MutationKnobs are the randomized values drawn (within a variant's
// bounds) for one instantiation.
type MutationKnobs struct {
	Duration       float64
	Particles      int
	Curve          CurveProfile
	Camera         CameraArchetype
	PaletteSeed    float64 // 0..1
	AudioIntensity float64 // 0..1
	AudioOffset    float64 // seconds
	Speed          float64
	Scale          float64
	ExtraVisuals   int
}

// #endregion

// #region mutated-variant

// MutatedVariant is a BaseVariant plus the knobs a seed produced and
// the resolved outputs consumers actually read. Owned exclusively by
// the caller for one playback; never mutated after creation.
type MutatedVariant struct {
	Base  BaseVariant
	Knobs MutationKnobs
	Seed  uint32

	FinalDuration      float64
	FinalParticleCount int
	FinalColors        []Color
}

// #endregion
