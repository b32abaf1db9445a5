package toggle

// Config holds the construction parameters of a Controller.
// The zero value builds an uncontrolled switch starting off.
type Config struct {
	// InitialOn is the On value of the state cell and of the Reset snapshot.
	InitialOn bool
	// Reducer defaults to Reduce.
	Reducer Reducer
	// OnChange, when set, receives the would-be next state and the action
	// that produced it on every dispatch, controlled or not.
	OnChange func(State, Action)
	// Value makes the Controller controlled when non-nil.
	Value *bool
}

// Controller owns a reducer-driven state cell and decides, per dispatch,
// whether to apply a transition itself or only report it to its owner.
//
// A controlled Controller without OnChange never changes and never reports.
// That is a usage error and is deliberately not rejected.
type Controller struct {
	reducer  Reducer
	onChange func(State, Action)
	value    *bool

	initial State
	state   State
}

// New builds a Controller, resolving defaults for unset Config fields.
func New(cfg Config) *Controller {
	reducer := cfg.Reducer
	if reducer == nil {
		reducer = Reduce
	}

	initial := State{On: cfg.InitialOn}
	return &Controller{
		reducer:  reducer,
		onChange: cfg.OnChange,
		value:    cfg.Value,
		initial:  initial,
		state:    initial,
	}
}

// SetValue replaces the externally supplied value. nil switches the
// Controller back to its own state cell.
func (c *Controller) SetValue(v *bool) {
	c.value = v
}

// SetOnChange replaces the change callback.
func (c *Controller) SetOnChange(fn func(State, Action)) {
	c.onChange = fn
}

func (c *Controller) IsControlled() bool {
	return c.value != nil
}

// On reports the externally visible value: the owner's value when
// controlled, the state cell otherwise.
func (c *Controller) On() bool {
	if c.value != nil {
		return *c.value
	}
	return c.state.On
}

// State returns a copy of the internal state cell.
func (c *Controller) State() State {
	return c.state
}

// InitialState returns the snapshot used as the Reset payload.
func (c *Controller) InitialState() State {
	return c.initial
}

// Dispatch runs action through the reducer.
//
// Uncontrolled, the result is stored in the state cell. In both modes
// OnChange then receives the reducer's answer for the pre-dispatch cell
// with its On replaced by On(), so an owner sees the transition from the
// value it is displaying rather than from the unused internal cell.
func (c *Controller) Dispatch(action Action) error {
	visible := c.state
	visible.On = c.On()

	if c.value == nil {
		next, err := c.reducer(c.state, action)
		if err != nil {
			return err
		}
		c.state = next
	}

	if c.onChange == nil {
		return nil
	}

	next, err := c.reducer(visible, action)
	if err != nil {
		return err
	}
	c.onChange(next, action)
	return nil
}

func (c *Controller) Toggle() error {
	return c.Dispatch(Action{Kind: ActionToggle})
}

// Reset dispatches a reset to the snapshot taken at construction.
func (c *Controller) Reset() error {
	return c.Dispatch(Action{Kind: ActionReset, InitialState: c.initial})
}
