package upsert

import (
	"errors"
	"fmt"
)

// State estado de un intento de envío de formulario.
type State string

// Estados del intento: Idle → Checking → {Conflict, Submitting} → {Success, Error}; Error vuelve a Idle.
const (
	StateIdle       State = "idle"
	StateChecking   State = "checking"
	StateConflict   State = "conflict"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// ErrIllegalTransition transición no permitida por la máquina de estados.
var ErrIllegalTransition = errors.New("transição de estado inválida")

var transitions = map[State][]State{
	StateIdle:       {StateChecking},
	StateChecking:   {StateConflict, StateSubmitting},
	StateSubmitting: {StateSuccess, StateError},
	StateError:      {StateIdle},
	// Conflict y Success son terminales para el intento.
}

// Attempt registra las transiciones de un intento de envío.
type Attempt struct {
	state State
	trail []State
}

// NewAttempt inicia un intento en Idle.
func NewAttempt() *Attempt {
	return &Attempt{state: StateIdle, trail: []State{StateIdle}}
}

// State estado actual.
func (a *Attempt) State() State { return a.state }

// Trail copia del recorrido de estados.
func (a *Attempt) Trail() []State {
	out := make([]State, len(a.trail))
	copy(out, a.trail)
	return out
}

// Advance mueve el intento a next si la transición es válida.
func (a *Attempt) Advance(next State) error {
	for _, allowed := range transitions[a.state] {
		if allowed == next {
			a.state = next
			a.trail = append(a.trail, next)
			return nil
		}
	}
	return fmt.Errorf("%w: %s → %s", ErrIllegalTransition, a.state, next)
}

// mustAdvance para transiciones que el propio workflow garantiza.
func (a *Attempt) mustAdvance(next State) {
	if err := a.Advance(next); err != nil {
		panic(err)
	}
}
