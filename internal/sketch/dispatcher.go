package sketch

import (
	"log/slog"
)

// SetupFunc wires a mode to the input bus and returns how to unwire it.
type SetupFunc func(st *State, eng Engine, bus *Bus) Disposer

// Dispatcher keeps exactly one mode wired to pointer input.
type Dispatcher struct {
	Bus Bus

	st       *State
	eng      Engine
	modes    map[Mode]SetupFunc
	disposer Disposer
	started  bool

	switching bool
	queued    []Mode
}

func NewDispatcher(st *State, eng Engine) *Dispatcher {
	return &Dispatcher{
		st:  st,
		eng: eng,
		modes: map[Mode]SetupFunc{
			ModeDraw: SetupDraw,
			ModeMove: SetupMove,
			ModeEdit: SetupEdit,
		},
	}
}

// Register replaces the setup used for m. Takes effect the next time m is
// entered.
func (d *Dispatcher) Register(m Mode, setup SetupFunc) {
	d.modes[m] = setup
}

// Start wires the mode stored in the state.
func (d *Dispatcher) Start() {
	if d.started {
		return
	}
	d.started = true
	d.activate(d.st.Mode)
}

// Stop unwires the active mode.
func (d *Dispatcher) Stop() {
	d.dispose()
	d.started = false
}

// SetMode tears down the active mode and wires m. Requests made while a
// switch is running are applied once it finishes. Asking for the active
// mode does nothing.
func (d *Dispatcher) SetMode(m Mode) {
	if d.switching {
		d.queued = append(d.queued, m)
		return
	}
	d.switchTo(m)
	for len(d.queued) > 0 {
		next := d.queued[0]
		d.queued = d.queued[1:]
		d.switchTo(next)
	}
}

func (d *Dispatcher) switchTo(m Mode) {
	if d.started && m == d.st.Mode {
		return
	}
	d.switching = true
	prev := d.st.Mode
	d.dispose()
	d.activate(m)
	d.started = true
	d.switching = false

	slog.Debug("mode changed", "from", prev, "to", m)
	d.st.ModeChanged.Invoke(m)
}

func (d *Dispatcher) activate(m Mode) {
	d.st.Mode = m
	if setup, ok := d.modes[m]; ok {
		d.disposer = setup(d.st, d.eng, &d.Bus)
	}
}

func (d *Dispatcher) dispose() {
	if d.disposer == nil {
		return
	}
	disposer := d.disposer
	d.disposer = nil
	disposer.Dispose()
}

// Dispatch delivers a pointer event to the active mode.
func (d *Dispatcher) Dispatch(ev PointerEvent) {
	d.Bus.Invoke(ev)
}

// Mode returns the mode currently wired to input.
func (d *Dispatcher) Mode() Mode { return d.st.Mode }

// Reset clears the scene and all sketch state and returns to draw mode.
func (d *Dispatcher) Reset() {
	d.dispose()
	d.eng.DetachGizmo()
	d.eng.ClearHighlight()
	d.eng.AttachCameraControl()
	d.eng.ResetScene()
	d.st.Reset()
	d.activate(ModeDraw)
	d.started = true
	d.st.ModeChanged.Invoke(ModeDraw)
}
