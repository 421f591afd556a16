package director

// #region imports
import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/solsticedev/breakthrough/internal/catalog"
	"github.com/solsticedev/breakthrough/internal/history"
	"github.com/solsticedev/breakthrough/internal/selector"
)

// #endregion

// #region director-struct

// Director is the phase-based playback orchestrator. It is the sole
// owner of the lifecycle state: it requests selections, commits one
// variant at a time, times the settle transition, steers safe mode
// from FPS reports, and records every play in the ledger.
type Director struct {
	cfg  Config
	sel  *selector.Selector
	hist *history.Ledger

	mu         sync.Mutex
	phase      Phase
	current    *catalog.MutatedVariant
	startTime  time.Time
	errReason  string
	fps        []float64
	safeMode   bool
	physPaused bool

	// last prewarm outcome, so Play can attribute tier/fallback when
	// the caller hands back the variant we selected
	lastTier     catalog.QualityTier
	lastFallback bool
	lastSeed     uint32
	playTier     catalog.QualityTier
	playFallback bool

	settleTimer *time.Timer
	settleGen   int

	// phase transitions made under the lock, drained by pendingFires
	firedPhases []Phase

	cbs  Callbacks
	phys PhysicsHooks
}

// New creates an idle director.
func New(cfg Config, sel *selector.Selector, hist *history.Ledger) *Director {
	return &Director{
		cfg:      cfg,
		sel:      sel,
		hist:     hist,
		phase:    PhaseIdle,
		lastTier: catalog.TierMid,
		playTier: catalog.TierMid,
	}
}

// SetCallbacks wires the renderer lifecycle callbacks.
func (d *Director) SetCallbacks(cbs Callbacks) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cbs = cbs
}

// SetPhysicsHooks wires the external simulation pause/resume hooks.
func (d *Director) SetPhysicsHooks(hooks PhysicsHooks) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.phys = hooks
}

// #endregion

// #region prewarm

// Prewarm builds a selection context and asks the selector for a
// variant without committing it as current, so the caller can do
// speculative pre-computation before the renderer is ready. Safe mode
// forces the low-tier filter regardless of the reported tier.
func (d *Director) Prewarm(entities []selector.Entity, hint catalog.VariantClass, tier catalog.QualityTier, reducedMotion bool) selector.Result {
	d.mu.Lock()
	if d.safeMode && tier != catalog.TierLow {
		log.Printf("[DIR] safe mode active, forcing low tier (was %s)", tier)
		tier = catalog.TierLow
	}
	if d.phase == PhaseIdle {
		d.setPhaseLocked(PhasePrewarming)
	}
	d.mu.Unlock()

	ctx := d.sel.BuildContext(entities, hint, tier, reducedMotion)
	res := d.sel.Select(ctx)

	d.mu.Lock()
	d.lastTier = tier
	d.lastFallback = res.WasFallback
	d.lastSeed = res.Variant.Seed
	fires := d.pendingFires()
	d.mu.Unlock()
	fires.run()

	return res
}

// #endregion

// #region play

// Play commits the variant as current, pauses physics, and enters the
// playing phase. Fails if a sequence is already active.
func (d *Director) Play(v catalog.MutatedVariant) error {
	d.mu.Lock()
	if d.phase == PhasePlaying || d.phase == PhaseSettling {
		d.mu.Unlock()
		return fmt.Errorf("play: sequence already active (phase %s)", d.phase)
	}

	d.current = &v
	d.startTime = time.Now()
	d.errReason = ""
	if v.Seed == d.lastSeed {
		d.playTier = d.lastTier
		d.playFallback = d.lastFallback
	} else {
		d.playTier = catalog.TierMid
		d.playFallback = v.Base.IsFallback
	}

	if !d.physPaused && d.phys.OnPause != nil {
		d.phys.OnPause()
	}
	d.physPaused = true

	d.setPhaseLocked(PhasePlaying)
	log.Printf("[DIR] playing %s seed=%d duration=%.1fs particles=%d",
		v.Base.ID, v.Seed, v.FinalDuration, v.FinalParticleCount)
	fires := d.pendingFires()
	d.mu.Unlock()
	fires.run()
	return nil
}

// #endregion

// #region fps

// ReportFPS appends one frame-rate sample to the bounded history and
// applies the safe-mode policy: sustained readings below the floor
// flip the flag for future selections. The current sequence is never
// retroactively altered.
func (d *Director) ReportFPS(fps float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.fps = append(d.fps, fps)
	if over := len(d.fps) - d.cfg.FPSWindow; over > 0 {
		d.fps = d.fps[over:]
	}

	if d.safeMode || len(d.fps) < d.cfg.FPSMinSamples {
		return
	}
	var sum float64
	for _, f := range d.fps {
		sum += f
	}
	if mean := sum / float64(len(d.fps)); mean < d.cfg.FPSFloor {
		d.safeMode = true
		log.Printf("[DIR] safe mode: mean fps %.1f below floor %.1f over %d samples",
			mean, d.cfg.FPSFloor, len(d.fps))
	}
}

// TriggerSafeMode sets the safe-mode flag directly. It persists until
// ClearSafeMode or a new director instance.
func (d *Director) TriggerSafeMode() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.safeMode {
		d.safeMode = true
		log.Printf("[DIR] safe mode triggered manually")
	}
}

// ClearSafeMode resets the flag and the FPS window.
func (d *Director) ClearSafeMode() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.safeMode = false
	d.fps = nil
}

// #endregion

// #region complete

// Complete transitions playing → settling immediately, then idle after
// the settle delay. The delay gives the renderer room to run an exit
// transition before visual state is torn down.
func (d *Director) Complete() error {
	d.mu.Lock()
	if d.phase != PhasePlaying {
		d.mu.Unlock()
		return fmt.Errorf("complete: not playing (phase %s)", d.phase)
	}

	d.setPhaseLocked(PhaseSettling)
	d.settleGen++
	gen := d.settleGen
	d.settleTimer = time.AfterFunc(d.cfg.SettleDelay, func() {
		d.finishSettle(gen)
	})
	fires := d.pendingFires()
	d.mu.Unlock()
	fires.run()
	return nil
}

// finishSettle is the timed half of Complete. The generation guard
// makes a stale timer a no-op after an abort or a newer play.
func (d *Director) finishSettle(gen int) {
	d.mu.Lock()
	if gen != d.settleGen || d.phase != PhaseSettling {
		d.mu.Unlock()
		return
	}

	v := d.current
	if v != nil {
		d.hist.Record(v.Base.ID, v.Seed, v.Base.Intensity, d.playTier, true, d.playFallback)
	}

	d.current = nil
	d.errReason = ""
	d.setPhaseLocked(PhaseIdle)

	if d.physPaused && d.phys.OnResume != nil {
		d.phys.OnResume()
	}
	d.physPaused = false

	onComplete := d.cbs.OnComplete
	fires := d.pendingFires()
	d.mu.Unlock()

	if onComplete != nil {
		onComplete()
	}
	fires.run()
	log.Printf("[DIR] settled, back to idle")
}

// #endregion

// #region abort

// Abort short-circuits to idle immediately: no settle delay, any
// pending settle timer cancelled, physics resumed, the play recorded
// as not completed. A no-op when already idle.
func (d *Director) Abort(reason string) {
	d.mu.Lock()
	if d.phase == PhaseIdle {
		d.mu.Unlock()
		return
	}

	if d.settleTimer != nil {
		d.settleTimer.Stop()
		d.settleTimer = nil
	}
	d.settleGen++

	v := d.current
	if v != nil {
		d.hist.Record(v.Base.ID, v.Seed, v.Base.Intensity, d.playTier, false, d.playFallback)
	}

	d.current = nil
	d.errReason = ""
	d.setPhaseLocked(PhaseIdle)

	if d.physPaused && d.phys.OnResume != nil {
		d.phys.OnResume()
	}
	d.physPaused = false

	onAbort := d.cbs.OnAbort
	fires := d.pendingFires()
	d.mu.Unlock()

	log.Printf("[DIR] aborted: %s", reason)
	if onAbort != nil {
		onAbort(reason)
	}
	fires.run()
}

// HandleContextLost models recovery from a fatal rendering-surface
// failure: aborts the active sequence, otherwise a no-op.
func (d *Director) HandleContextLost() {
	d.mu.Lock()
	playing := d.phase == PhasePlaying
	d.mu.Unlock()

	if playing {
		d.Abort(ReasonContextLost)
	}
}

// #endregion

// #region introspection

// State returns a snapshot of the director state.
func (d *Director) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	fps := make([]float64, len(d.fps))
	copy(fps, d.fps)
	return State{
		Phase:      d.phase,
		Current:    d.current,
		StartTime:  d.startTime,
		Err:        d.errReason,
		FPSHistory: fps,
		SafeMode:   d.safeMode,
	}
}

// CurrentVariant returns the active variant, nil outside
// playing/settling.
func (d *Director) CurrentVariant() *catalog.MutatedVariant {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// SafeMode reports whether the degradation flag is set.
func (d *Director) SafeMode() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.safeMode
}

// #endregion

// #region phase-change

// pendingCallbacks collects phase transitions made under the lock so
// the callback can run outside it (a callback may call back into the
// director).
type pendingCallbacks struct {
	phases []Phase
	fn     func(Phase)
}

func (p pendingCallbacks) run() {
	if p.fn == nil {
		return
	}
	for _, ph := range p.phases {
		p.fn(ph)
	}
}

func (d *Director) setPhaseLocked(next Phase) {
	if d.phase == next {
		return
	}
	d.phase = next
	d.firedPhases = append(d.firedPhases, next)
}

func (d *Director) pendingFires() pendingCallbacks {
	p := pendingCallbacks{phases: d.firedPhases, fn: d.cbs.OnPhaseChange}
	d.firedPhases = nil
	return p
}

// #endregion
