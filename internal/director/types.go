package director

// #region imports
import (
	"time"

	"github.com/solsticedev/breakthrough/internal/catalog"
)

// #endregion

// #region phase

// Phase is the playback lifecycle state.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhasePrewarming Phase = "prewarming"
	PhasePlaying    Phase = "playing"
	PhaseSettling   Phase = "settling"
	PhaseError      Phase = "error"
)

// #endregion

// #region abort-reasons

// Well-known abort reasons. Abort accepts any string; these are the
// ones the engine itself emits.
const (
	ReasonContextLost   = "webgl_context_lost"
	ReasonUserCancelled = "user_cancelled"
)

// #endregion

// #region state

// State is a read-only snapshot of the director. Only the Director
// mutates the underlying fields.
type State struct {
	Phase      Phase
	Current    *catalog.MutatedVariant
	StartTime  time.Time
	Err        string
	FPSHistory []float64
	SafeMode   bool
}

// #endregion

// #region callbacks

// Callbacks are the wiring points to the renderer lifecycle.
type Callbacks struct {
	OnComplete    func()
	OnAbort       func(reason string)
	OnPhaseChange func(phase Phase)
}

// PhysicsHooks are the cooperative pause/resume hooks into the
// external simulation.
type PhysicsHooks struct {
	OnPause  func()
	OnResume func()
}

// #endregion

// #region config

// Config holds the director's tunable policy. The FPS threshold and
// window are deliberately policy, not contract.
type Config struct {
	// SettleDelay is how long settling lasts before the transition
	// back to idle, giving the renderer room for an exit transition.
	SettleDelay time.Duration

	// FPSWindow bounds the FPS sample history.
	FPSWindow int
	// FPSMinSamples is how many samples must exist before the safe
	// mode policy may trip.
	FPSMinSamples int
	// FPSFloor trips safe mode when the window mean falls below it.
	FPSFloor float64
}

// DefaultConfig returns the shipped policy: 1.2s settle, safe mode
// when the mean of the last 10 samples (at least 8 present) is under
// 24 FPS.
func DefaultConfig() Config {
	return Config{
		SettleDelay:   1200 * time.Millisecond,
		FPSWindow:     10,
		FPSMinSamples: 8,
		FPSFloor:      24,
	}
}

// #endregion
