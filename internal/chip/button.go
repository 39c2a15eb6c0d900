package chip

// Button is a plain push button that highlights while pressed ("Позже", "Продолжить").
type Button struct {
	Title string

	// OnActivate fires when a press is released inside the button.
	OnActivate func()

	pressed bool
}

func NewButton(title string, onActivate func()) *Button {
	return &Button{Title: title, OnActivate: onActivate}
}

func (b *Button) Pressed() bool { return b.pressed }

func (b *Button) Press() { b.pressed = true }

func (b *Button) Cancel() { b.pressed = false }

func (b *Button) Release(inside bool) {
	if !b.pressed {
		return
	}
	b.pressed = false
	if inside && b.OnActivate != nil {
		b.OnActivate()
	}
}

// Activate is a complete press-and-release inside the button.
func (b *Button) Activate() {
	b.Press()
	b.Release(true)
}
