package tui

import "countdown/internal/timer"

// renderState is the imperative half of the command split: it consumes the
// machine's commands and holds what is currently "on screen".
type renderState struct {
	minText, secText string
	minHi, secHi     bool
	icons            [3]timer.Icon
	banner           bool
}

// apply executes a batch of machine commands against the render state and
// reports whether a vibration was requested.
func (s *renderState) apply(cmds []timer.Command) (vibrated bool) {
	for _, c := range cmds {
		switch c := c.(type) {
		case timer.SetDisplay:
			if c.Field == timer.FieldMinutes {
				s.minText = c.Text
			} else {
				s.secText = c.Text
			}
		case timer.SetHighlight:
			if c.Field == timer.FieldMinutes {
				s.minHi = c.On
			} else {
				s.secHi = c.On
			}
		case timer.SetButtonIcon:
			s.icons[c.Slot] = c.Icon
		case timer.SetExpiredBanner:
			s.banner = c.Visible
		case timer.Vibrate:
			vibrated = true
		}
	}
	return vibrated
}
