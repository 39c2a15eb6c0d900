package chip

// State is the visual state of a chip. Selected mirrors the category item; Pressed is
// transient and never stored in the model.
type State struct {
	Selected bool
	Pressed  bool
}

// Animator plays the swap effect between two states. Calls are fire-and-forget:
// nothing waits for the effect to finish.
type Animator interface {
	Transition(from, to State)
}

// NopAnimator does nothing.
type NopAnimator struct{}

func (NopAnimator) Transition(from, to State) {}

// AnimatorFunc adapts a function to Animator.
type AnimatorFunc func(from, to State)

func (f AnimatorFunc) Transition(from, to State) { f(from, to) }

// Chip is a toggle button for one category.
type Chip struct {
	Title string

	// OnSelectingChanged fires synchronously on every tap with the new selection.
	OnSelectingChanged func(selected bool)

	state    State
	animator Animator
}

func New(title string, animator Animator) *Chip {
	if animator == nil {
		animator = NopAnimator{}
	}
	return &Chip{Title: title, animator: animator}
}

func (c *Chip) State() State { return c.state }

func (c *Chip) Selected() bool { return c.state.Selected }

func (c *Chip) Pressed() bool { return c.state.Pressed }

// SetSelected syncs the chip from the model. It does not emit.
func (c *Chip) SetSelected(v bool) {
	c.state.Selected = v
}

// Press starts a touch: the chip highlights until Release or Cancel.
func (c *Chip) Press() {
	c.state.Pressed = true
}

// Cancel ends a touch without tapping.
func (c *Chip) Cancel() {
	c.state.Pressed = false
}

// Release ends a touch. Releasing inside the chip is a tap.
func (c *Chip) Release(inside bool) {
	if !c.state.Pressed {
		return
	}
	c.state.Pressed = false
	if inside {
		c.tap()
	}
}

// Tap is a complete press-and-release inside the chip.
func (c *Chip) Tap() {
	c.Press()
	c.Release(true)
}

func (c *Chip) tap() {
	from := c.state
	c.state.Selected = !c.state.Selected
	if c.OnSelectingChanged != nil {
		c.OnSelectingChanged(c.state.Selected)
	}
	c.animator.Transition(from, c.state)
}
