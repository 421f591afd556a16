package catalog

// #region fallback-id

// FallbackID is the preferred fallback variant, used by safe-mode and
// emergency paths when nothing better is eligible.
const FallbackID = "gentle-bloom"

// #endregion

// #region variant-table

// variantTable is the full static catalog, in declaration order.
// Order is stable so deterministic tests can rely on it.
var variantTable = []BaseVariant{
	{
		ID:                "gentle-bloom",
		Name:              "Gentle Bloom",
		Class:             ClassRenewal,
		Intensity:         IntensityLow,
		ColorMood:         MoodDawn,
		AudioMood:         AudioSoft,
		BaseDuration:      8,
		BaseParticleCount: 120,
		ParticlePattern:   PatternBloom,
		CameraArchetype:   CameraDrift,
		CurveProfile:      CurveEase,
		Tags:              []string{"calm", "open", "beginning"},
		LowTierSafe:       true,
		IsFallback:        true,
		Bounds: MutationBounds{
			Duration:  Bounds{6, 10},
			Particles: Bounds{80, 180},
			Speed:     Bounds{0.8, 1.1},
			Scale:     Bounds{0.9, 1.2},
		},
		Palette: []Color{{28, 0.55, 0.78}, {42, 0.6, 0.68}, {350, 0.3, 0.82}},
		Camera:  CameraPath{Archetype: CameraDrift, Radius: 10, Height: 2, Period: 16},
		Effects: Effects{Bloom: true, Vignette: true},
	},
	{
		ID:                "quiet-horizon",
		Name:              "Quiet Horizon",
		Class:             ClassClarity,
		Intensity:         IntensityLow,
		ColorMood:         MoodCool,
		AudioMood:         AudioSilent,
		BaseDuration:      9,
		BaseParticleCount: 90,
		ParticlePattern:   PatternRain,
		CameraArchetype:   CameraStatic,
		CurveProfile:      CurveEase,
		Tags:              []string{"calm", "space", "stillness"},
		LowTierSafe:       true,
		IsFallback:        true,
		Bounds: MutationBounds{
			Duration:  Bounds{7, 12},
			Particles: Bounds{60, 140},
			Speed:     Bounds{0.7, 1.0},
			Scale:     Bounds{0.9, 1.1},
		},
		Palette: []Color{{205, 0.45, 0.7}, {220, 0.4, 0.55}, {190, 0.35, 0.8}},
		Camera:  CameraPath{Archetype: CameraStatic, Radius: 12, Height: 3, Period: 20},
		Effects: Effects{Vignette: true},
	},
	{
		ID:                "first-light",
		Name:              "First Light",
		Class:             ClassRenewal,
		Intensity:         IntensityLow,
		ColorMood:         MoodDawn,
		AudioMood:         AudioSilent,
		BaseDuration:      7,
		BaseParticleCount: 100,
		ParticlePattern:   PatternBloom,
		CameraArchetype:   CameraDrift,
		CurveProfile:      CurveEase,
		Tags:              []string{"dawn", "soft", "emergence"},
		LowTierSafe:       true,
		Bounds: MutationBounds{
			Duration:  Bounds{5, 9},
			Particles: Bounds{70, 150},
			Speed:     Bounds{0.8, 1.0},
			Scale:     Bounds{0.8, 1.1},
		},
		Palette: []Color{{35, 0.7, 0.75}, {18, 0.6, 0.65}, {55, 0.5, 0.85}},
		Camera:  CameraPath{Archetype: CameraDrift, Radius: 8, Height: 1.5, Period: 14},
		Effects: Effects{Bloom: true, LightRays: true},
	},
	{
		ID:                "prism-break",
		Name:              "Prism Break",
		Class:             ClassClarity,
		Intensity:         IntensityMedium,
		ColorMood:         MoodCool,
		AudioMood:         AudioBright,
		BaseDuration:      10,
		BaseParticleCount: 260,
		ParticlePattern:   PatternBurst,
		CameraArchetype:   CameraOrbit,
		CurveProfile:      CurveLinear,
		Tags:              []string{"insight", "sharp", "light"},
		LowTierSafe:       true,
		Bounds: MutationBounds{
			Duration:  Bounds{8, 13},
			Particles: Bounds{180, 340},
			Speed:     Bounds{0.9, 1.3},
			Scale:     Bounds{0.9, 1.3},
		},
		Palette: []Color{{195, 0.75, 0.6}, {230, 0.65, 0.55}, {160, 0.55, 0.7}},
		Camera:  CameraPath{Archetype: CameraOrbit, Radius: 9, Height: 2.5, Period: 12},
		Effects: Effects{Bloom: true, Trails: true, LightRays: true},
	},
	{
		ID:                "tide-letting",
		Name:              "Tide Letting",
		Class:             ClassRelease,
		Intensity:         IntensityMedium,
		ColorMood:         MoodCool,
		AudioMood:         AudioSoft,
		BaseDuration:      11,
		BaseParticleCount: 220,
		ParticlePattern:   PatternRibbon,
		CameraArchetype:   CameraDolly,
		CurveProfile:      CurveEase,
		Tags:              []string{"letting-go", "flow", "water"},
		LowTierSafe:       true,
		Bounds: MutationBounds{
			Duration:  Bounds{9, 14},
			Particles: Bounds{150, 300},
			Speed:     Bounds{0.8, 1.2},
			Scale:     Bounds{0.9, 1.2},
		},
		Palette: []Color{{200, 0.6, 0.6}, {185, 0.5, 0.7}, {215, 0.45, 0.5}},
		Camera:  CameraPath{Archetype: CameraDolly, Radius: 11, Height: 2, Period: 18},
		Effects: Effects{Trails: true, Vignette: true},
	},
	{
		ID:                "rootline",
		Name:              "Rootline",
		Class:             ClassConnection,
		Intensity:         IntensityMedium,
		ColorMood:         MoodNature,
		AudioMood:         AudioSoft,
		BaseDuration:      12,
		BaseParticleCount: 240,
		ParticlePattern:   PatternSpiral,
		CameraArchetype:   CameraOrbit,
		CurveProfile:      CurveEase,
		Tags:              []string{"grounding", "growth", "belonging"},
		Bounds: MutationBounds{
			Duration:  Bounds{10, 15},
			Particles: Bounds{160, 320},
			Speed:     Bounds{0.8, 1.1},
			Scale:     Bounds{1.0, 1.4},
		},
		Palette: []Color{{120, 0.5, 0.45}, {90, 0.55, 0.55}, {40, 0.4, 0.6}},
		Camera:  CameraPath{Archetype: CameraOrbit, Radius: 10, Height: 1, Period: 20},
		Effects: Effects{Bloom: true, Trails: true},
	},
	{
		ID:                "keystone",
		Name:              "Keystone",
		Class:             ClassResolve,
		Intensity:         IntensityMedium,
		ColorMood:         MoodDawn,
		AudioMood:         AudioDeep,
		BaseDuration:      9,
		BaseParticleCount: 200,
		ParticlePattern:   PatternBloom,
		CameraArchetype:   CameraStatic,
		CurveProfile:      CurveLinear,
		Tags:              []string{"commitment", "steady", "weight"},
		LowTierSafe:       true,
		Bounds: MutationBounds{
			Duration:  Bounds{7, 11},
			Particles: Bounds{140, 260},
			Speed:     Bounds{0.8, 1.1},
			Scale:     Bounds{0.9, 1.2},
		},
		Palette: []Color{{30, 0.5, 0.6}, {15, 0.45, 0.5}, {45, 0.55, 0.7}},
		Camera:  CameraPath{Archetype: CameraStatic, Radius: 9, Height: 2, Period: 15},
		Effects: Effects{Vignette: true, LightRays: true},
	},
	{
		ID:                "hearth-line",
		Name:              "Hearth Line",
		Class:             ClassBoundary,
		Intensity:         IntensityMedium,
		ColorMood:         MoodWarm,
		AudioMood:         AudioSoft,
		BaseDuration:      10,
		BaseParticleCount: 180,
		ParticlePattern:   PatternRibbon,
		CameraArchetype:   CameraStatic,
		CurveProfile:      CurveEase,
		Tags:              []string{"protection", "edge", "warmth"},
		Bounds: MutationBounds{
			Duration:  Bounds{8, 12},
			Particles: Bounds{120, 240},
			Speed:     Bounds{0.8, 1.1},
			Scale:     Bounds{0.9, 1.3},
		},
		Palette: []Color{{20, 0.7, 0.6}, {35, 0.65, 0.55}, {5, 0.55, 0.5}},
		Camera:  CameraPath{Archetype: CameraStatic, Radius: 8, Height: 1.5, Period: 16},
		Effects: Effects{Bloom: true, Vignette: true},
	},
	{
		ID:                "ember-release",
		Name:              "Ember Release",
		Class:             ClassRelease,
		Intensity:         IntensityHigh,
		ColorMood:         MoodWarm,
		AudioMood:         AudioDeep,
		BaseDuration:      12,
		BaseParticleCount: 420,
		ParticlePattern:   PatternBurst,
		CameraArchetype:   CameraRise,
		CurveProfile:      CurvePulse,
		Tags:              []string{"letting-go", "fire", "catharsis"},
		Bounds: MutationBounds{
			Duration:  Bounds{10, 15},
			Particles: Bounds{300, 520},
			Speed:     Bounds{0.9, 1.4},
			Scale:     Bounds{1.0, 1.5},
		},
		Palette: []Color{{15, 0.85, 0.55}, {30, 0.8, 0.5}, {350, 0.7, 0.45}},
		Camera:  CameraPath{Archetype: CameraRise, Radius: 12, Height: 6, Period: 13},
		Effects: Effects{Bloom: true, Trails: true, Shockwave: true},
	},
	{
		ID:                "stormglass",
		Name:              "Stormglass",
		Class:             ClassCourage,
		Intensity:         IntensityHigh,
		ColorMood:         MoodDusk,
		AudioMood:         AudioDeep,
		BaseDuration:      11,
		BaseParticleCount: 380,
		ParticlePattern:   PatternSwarm,
		CameraArchetype:   CameraRise,
		CurveProfile:      CurveBounce,
		Tags:              []string{"facing", "storm", "threshold"},
		Bounds: MutationBounds{
			Duration:  Bounds{9, 14},
			Particles: Bounds{260, 480},
			Speed:     Bounds{1.0, 1.5},
			Scale:     Bounds{1.0, 1.4},
		},
		Palette: []Color{{260, 0.5, 0.45}, {285, 0.45, 0.5}, {230, 0.55, 0.4}},
		Camera:  CameraPath{Archetype: CameraRise, Radius: 13, Height: 5, Period: 12},
		Effects: Effects{Trails: true, Shockwave: true, Vignette: true},
	},
	{
		ID:                "iron-bloom",
		Name:              "Iron Bloom",
		Class:             ClassResolve,
		Intensity:         IntensityHigh,
		ColorMood:         MoodDusk,
		AudioMood:         AudioDeep,
		BaseDuration:      10,
		BaseParticleCount: 340,
		ParticlePattern:   PatternSpiral,
		CameraArchetype:   CameraDolly,
		CurveProfile:      CurvePulse,
		Tags:              []string{"strength", "forged", "decision"},
		Bounds: MutationBounds{
			Duration:  Bounds{8, 13},
			Particles: Bounds{240, 440},
			Speed:     Bounds{0.9, 1.4},
			Scale:     Bounds{1.0, 1.3},
		},
		Palette: []Color{{280, 0.4, 0.5}, {300, 0.35, 0.45}, {250, 0.45, 0.55}},
		Camera:  CameraPath{Archetype: CameraDolly, Radius: 10, Height: 3, Period: 14},
		Effects: Effects{Bloom: true, Shockwave: true},
	},
	{
		ID:                "solar-vow",
		Name:              "Solar Vow",
		Class:             ClassCourage,
		Intensity:         IntensityExtreme,
		ColorMood:         MoodWarm,
		AudioMood:         AudioBright,
		BaseDuration:      14,
		BaseParticleCount: 560,
		ParticlePattern:   PatternBurst,
		CameraArchetype:   CameraRise,
		CurveProfile:      CurvePulse,
		Tags:              []string{"vow", "radiant", "peak"},
		Bounds: MutationBounds{
			Duration:  Bounds{12, 18},
			Particles: Bounds{420, 700},
			Speed:     Bounds{1.0, 1.6},
			Scale:     Bounds{1.1, 1.6},
		},
		Palette: []Color{{45, 0.9, 0.6}, {25, 0.85, 0.55}, {60, 0.8, 0.7}},
		Camera:  CameraPath{Archetype: CameraRise, Radius: 15, Height: 8, Period: 15},
		Effects: Effects{Bloom: true, Trails: true, Shockwave: true, LightRays: true},
	},
	{
		ID:                "aurora-weave",
		Name:              "Aurora Weave",
		Class:             ClassConnection,
		Intensity:         IntensityExtreme,
		ColorMood:         MoodCosmic,
		AudioMood:         AudioBright,
		BaseDuration:      15,
		BaseParticleCount: 620,
		ParticlePattern:   PatternSwarm,
		CameraArchetype:   CameraOrbit,
		CurveProfile:      CurveBounce,
		Tags:              []string{"weave", "cosmic", "togetherness"},
		Bounds: MutationBounds{
			Duration:  Bounds{12, 18},
			Particles: Bounds{460, 760},
			Speed:     Bounds{1.0, 1.5},
			Scale:     Bounds{1.2, 1.7},
		},
		Palette: []Color{{170, 0.7, 0.55}, {290, 0.6, 0.5}, {210, 0.65, 0.6}},
		Camera:  CameraPath{Archetype: CameraOrbit, Radius: 16, Height: 4, Period: 18},
		Effects: Effects{Bloom: true, Trails: true, LightRays: true},
	},
}

// #endregion

// #region index

var variantIndex = func() map[string]int {
	idx := make(map[string]int, len(variantTable))
	for i, v := range variantTable {
		idx[v.ID] = i
	}
	return idx
}()

// #endregion
