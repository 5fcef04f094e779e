package flythrough

// Direction is one of the four logical steering inputs.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	numDirections
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Input reports which directions are held this tick. The tick only reads it.
type Input interface {
	Pressed(d Direction) bool
}

// KeyState is an Input written by the host's key events.
type KeyState [numDirections]bool

func (k *KeyState) Pressed(d Direction) bool {
	if d < 0 || d >= numDirections {
		return false
	}
	return k[d]
}

func (k *KeyState) Set(d Direction, pressed bool) {
	if d < 0 || d >= numDirections {
		return
	}
	k[d] = pressed
}

// Release clears every direction.
func (k *KeyState) Release() {
	*k = KeyState{}
}

// noInput never reports a held direction.
type noInput struct{}

func (noInput) Pressed(Direction) bool { return false }
