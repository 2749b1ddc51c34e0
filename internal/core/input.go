package core

// Key is a physical key code. Names follow KeyboardEvent.code so games can
// match on the same identifiers regardless of the host backend.
type Key string

const (
	KeyNone       Key = ""
	KeySpace      Key = "Space"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyW          Key = "KeyW"
	KeyA          Key = "KeyA"
	KeyS          Key = "KeyS"
	KeyD          Key = "KeyD"
	KeyR          Key = "KeyR"
)

// IsStart reports whether the key is one of the start/restart keys.
func (k Key) IsStart() bool {
	return k == KeySpace || k == KeyEnter
}

// IsUp reports whether the key means "up" (arrow or W).
func (k Key) IsUp() bool {
	return k == KeyArrowUp || k == KeyW
}

// IsDown reports whether the key means "down" (arrow or S).
func (k Key) IsDown() bool {
	return k == KeyArrowDown || k == KeyS
}

// IsLeft reports whether the key means "left" (arrow or A).
func (k Key) IsLeft() bool {
	return k == KeyArrowLeft || k == KeyA
}

// IsRight reports whether the key means "right" (arrow or D).
func (k Key) IsRight() bool {
	return k == KeyArrowRight || k == KeyD
}
