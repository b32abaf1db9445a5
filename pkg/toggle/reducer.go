// Package toggle implements a switch whose state can either be owned
// internally (uncontrolled) or dictated by an external owner (controlled),
// with every transition computed by a replaceable reducer.
package toggle

import (
	"errors"
	"fmt"
)

// ActionKind tags the transition an Action asks for.
type ActionKind string

const (
	ActionToggle ActionKind = "TOGGLE"
	ActionReset  ActionKind = "RESET"
)

// State is the value a Controller keeps in its state cell.
type State struct {
	On bool `json:"on" yaml:"on"`
	// Internal is not read by any built-in transition. Custom reducers may use it.
	Internal bool `json:"internal" yaml:"internal"`
}

// Action describes an intended state transition.
// InitialState is only meaningful for ActionReset.
type Action struct {
	Kind         ActionKind
	InitialState State
}

// Reducer computes the next state from the current state and an action.
type Reducer func(State, Action) (State, error)

// ErrUnknownAction is matched by every *UnknownActionError.
var ErrUnknownAction = errors.New("unknown action type")

// UnknownActionError is returned by Reduce for kinds it does not handle.
type UnknownActionError struct {
	Kind ActionKind
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action type %s", e.Kind)
}

func (e *UnknownActionError) Is(target error) bool {
	return target == ErrUnknownAction
}

// Reduce is the built-in Reducer.
func Reduce(state State, action Action) (State, error) {
	switch action.Kind {
	case ActionToggle:
		state.On = !state.On
		return state, nil
	case ActionReset:
		return action.InitialState, nil
	default:
		return State{}, &UnknownActionError{Kind: action.Kind}
	}
}
