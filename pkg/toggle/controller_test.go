package toggle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type change struct {
	state  State
	action Action
}

func recorder(changes *[]change) func(State, Action) {
	return func(s State, a Action) {
		*changes = append(*changes, change{state: s, action: a})
	}
}

func TestController_Defaults(t *testing.T) {
	t.Parallel()

	c := New(Config{})

	assert.False(t, c.IsControlled())
	assert.False(t, c.On())
	assert.Equal(t, State{}, c.State())
	assert.Equal(t, State{}, c.InitialState())
}

func TestController_UncontrolledToggleParity(t *testing.T) {
	t.Parallel()

	for n := range 7 {
		c := New(Config{})
		for range n {
			require.NoError(t, c.Toggle())
		}
		assert.Equal(t, n%2 == 1, c.On(), "after %d toggles", n)
	}
}

func TestController_UncontrolledReset(t *testing.T) {
	t.Parallel()

	c := New(Config{InitialOn: true})
	require.NoError(t, c.Toggle())
	require.NoError(t, c.Toggle())
	require.NoError(t, c.Toggle())
	require.False(t, c.On())

	require.NoError(t, c.Reset())

	assert.True(t, c.On())
	assert.Equal(t, State{On: true}, c.State())
}

func TestController_UncontrolledNotifiesWithNextState(t *testing.T) {
	t.Parallel()

	var changes []change
	c := New(Config{OnChange: recorder(&changes)})

	require.NoError(t, c.Toggle())

	require.Len(t, changes, 1)
	assert.True(t, c.On())
	assert.Equal(t, c.State(), changes[0].state)
	assert.Equal(t, ActionToggle, changes[0].action.Kind)
}

func TestController_ControlledToggleNeverChangesOn(t *testing.T) {
	t.Parallel()

	value := false
	var changes []change
	c := New(Config{Value: &value, OnChange: recorder(&changes)})

	for i := range 3 {
		require.NoError(t, c.Toggle())
		assert.False(t, c.On())
		require.Len(t, changes, i+1)
		assert.Equal(t, ActionToggle, changes[i].action.Kind)
		assert.True(t, changes[i].state.On)
	}
	assert.Equal(t, State{}, c.State())
}

func TestController_ControlledUsesVisibleValue(t *testing.T) {
	t.Parallel()

	value := true
	var changes []change
	c := New(Config{Value: &value, OnChange: recorder(&changes)})

	require.NoError(t, c.Toggle())

	require.Len(t, changes, 1)
	assert.False(t, changes[0].state.On, "would-be state is computed from the owner's value")
}

func TestController_ControlledFollowsOwner(t *testing.T) {
	t.Parallel()

	value := false
	c := New(Config{Value: &value})
	require.True(t, c.IsControlled())

	value = true
	assert.True(t, c.On())

	c.SetValue(nil)
	assert.False(t, c.IsControlled())
	assert.False(t, c.On())
}

func TestController_ControlledWithoutOnChangeIsNoop(t *testing.T) {
	t.Parallel()

	value := false
	c := New(Config{Value: &value})

	require.NoError(t, c.Toggle())
	require.NoError(t, c.Reset())

	assert.False(t, c.On())
	assert.Equal(t, State{}, c.State())
}

func TestController_ControlledReset(t *testing.T) {
	t.Parallel()

	value := true
	var changes []change
	c := New(Config{Value: &value, OnChange: recorder(&changes)})

	require.NoError(t, c.Reset())

	require.Len(t, changes, 1)
	assert.Equal(t, ActionReset, changes[0].action.Kind)
	assert.Equal(t, State{}, changes[0].action.InitialState)
	assert.Equal(t, State{}, changes[0].state)
}

func TestController_CustomReducer(t *testing.T) {
	t.Parallel()

	// Refuses to turn off once on, marking the refusal in Internal.
	sticky := func(s State, a Action) (State, error) {
		if a.Kind == ActionToggle && s.On {
			s.Internal = true
			return s, nil
		}
		return Reduce(s, a)
	}

	c := New(Config{Reducer: sticky})
	require.NoError(t, c.Toggle())
	require.NoError(t, c.Toggle())

	assert.True(t, c.On())
	assert.Equal(t, State{On: true, Internal: true}, c.State())

	require.NoError(t, c.Reset())
	assert.Equal(t, State{}, c.State())
}

func TestController_DispatchUnknownAction(t *testing.T) {
	t.Parallel()

	var changes []change
	c := New(Config{OnChange: recorder(&changes)})

	err := c.Dispatch(Action{Kind: "EXPLODE"})

	var unknown *UnknownActionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, ActionKind("EXPLODE"), unknown.Kind)
	assert.Empty(t, changes)
	assert.Equal(t, State{}, c.State())
}

func TestController_ControlledDispatchUnknownAction(t *testing.T) {
	t.Parallel()

	value := false
	var changes []change
	c := New(Config{Value: &value, OnChange: recorder(&changes)})

	err := c.Dispatch(Action{Kind: "EXPLODE"})

	require.ErrorIs(t, err, ErrUnknownAction)
	assert.Empty(t, changes)
}
