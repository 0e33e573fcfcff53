package timer

import "fmt"

// Field identifies one of the two numeric displays.
type Field int

const (
	FieldMinutes Field = iota
	FieldSeconds
)

func (f Field) String() string {
	if f == FieldMinutes {
		return "minutes"
	}
	return "seconds"
}

// Slot identifies a logical button position.
type Slot int

const (
	SlotUp Slot = iota
	SlotSelect
	SlotDown
)

// Icon is the context image shown next to a button. IconNone clears the slot.
type Icon int

const (
	IconNone Icon = iota
	IconStart
	IconPause
	IconReset
	IconPlus
	IconMinus
	IconMode
)

// Command is a single instruction to the presentation layer. Commands are
// fire-and-forget: the machine never reads anything back from the display.
type Command interface {
	isCommand()
}

// SetDisplay updates the text of a numeric field.
type SetDisplay struct {
	Field Field
	Text  string
}

// SetHighlight marks a field as the one currently being edited.
type SetHighlight struct {
	Field Field
	On    bool
}

// SetButtonIcon swaps the context image of a button slot.
type SetButtonIcon struct {
	Slot Slot
	Icon Icon
}

// SetExpiredBanner shows or hides the "Time's Up" banner.
type SetExpiredBanner struct {
	Visible bool
}

// Vibrate fires the fixed expiry notification pattern.
type Vibrate struct{}

func (SetDisplay) isCommand()       {}
func (SetHighlight) isCommand()     {}
func (SetButtonIcon) isCommand()    {}
func (SetExpiredBanner) isCommand() {}
func (Vibrate) isCommand()          {}

// FormatField renders a field value as two digits. Values outside [0,59]
// can only come from external corruption and render as a fixed sentinel
// instead of crashing or showing garbage.
func FormatField(v int) string {
	if v < 0 || v > 59 {
		return "!!"
	}
	return fmt.Sprintf("%02d", v)
}
