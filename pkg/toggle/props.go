package toggle

import "maps"

// Handler is an activation callback.
type Handler func() error

// CallAll composes handlers into one that runs them in order.
// nil handlers are skipped; the first error stops the chain.
func CallAll(fns ...Handler) Handler {
	return func() error {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if err := fn(); err != nil {
				return err
			}
		}
		return nil
	}
}

// Props is the property bag handed to the element that renders a
// Controller.
type Props struct {
	// Pressed is nil for elements that carry no pressed indicator.
	Pressed *bool
	OnClick Handler
	Label   string
	Attrs   map[string]string
}

func (p Props) IsPressed() bool {
	return p.Pressed != nil && *p.Pressed
}

// TogglerProps returns extra with Pressed set to On() and OnClick wrapped
// so that Toggle runs before extra.OnClick.
func (c *Controller) TogglerProps(extra Props) Props {
	on := c.On()
	props := extra.clone()
	props.Pressed = &on
	props.OnClick = CallAll(c.Toggle, extra.OnClick)
	return props
}

// ResetterProps returns extra with OnClick wrapped so that Reset runs
// before extra.OnClick.
func (c *Controller) ResetterProps(extra Props) Props {
	props := extra.clone()
	props.OnClick = CallAll(c.Reset, extra.OnClick)
	return props
}

func (p Props) clone() Props {
	p.Attrs = maps.Clone(p.Attrs)
	return p
}
