package control

// Mode is the interaction mode of the viewer
type Mode int

const (
	// Navigate forwards all mouse input to the camera
	Navigate Mode = iota
	// Select additionally routes left clicks to the picker
	Select
)

func (m Mode) String() string {
	switch m {
	case Navigate:
		return "navigate"
	case Select:
		return "select"
	}
	return "unknown"
}
