package world

import "github.com/younwookim/platformer/internal/application/system"

// InputSource supplies input one tick at a time.
// It reports false once it has no more input.
type InputSource interface {
	Next() (system.InputState, bool)
}

// Repeat is an InputSource that holds the same input for Count ticks
type Repeat struct {
	Input system.InputState
	Count int
}

// Next implements InputSource
func (r *Repeat) Next() (system.InputState, bool) {
	if r.Count <= 0 {
		return system.InputState{}, false
	}
	r.Count--
	return r.Input, true
}

// Run steps w headlessly until it reaches a terminal state, src runs out
// or maxTicks ticks have run (0 means no limit). onOutcome, when non-nil,
// sees every tick's outcome. Returns the last outcome.
func Run(w *World, src InputSource, maxTicks uint64, onOutcome func(Outcome)) (Outcome, error) {
	last := Outcome{Tick: w.Tick(), State: w.State(), LevelID: w.Level().ID}
	for ran := uint64(0); maxTicks == 0 || ran < maxTicks; ran++ {
		if w.State().IsTerminal() {
			break
		}
		input, ok := src.Next()
		if !ok {
			break
		}

		out, err := w.Step(input)
		if err != nil {
			return out, err
		}
		if onOutcome != nil {
			onOutcome(out)
		}
		last = out
	}
	return last, nil
}
