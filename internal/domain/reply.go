package domain

// Keyboard is a transport-agnostic set of selectable options,
// one button per row, kept until explicitly replaced
type Keyboard struct {
	Buttons []string
}

// Reply is a single outbound message
type Reply struct {
	Text           string
	Keyboard       *Keyboard
	RemoveKeyboard bool
}
