// Package timer holds the countdown state machine. Transitions are pure:
// each input event mutates the machine and returns the commands the
// presentation layer must execute, so the whole thing is testable without
// a display or a clock.
package timer

// Mode is the top-level UI mode.
type Mode int

const (
	ModeEditSeconds Mode = iota
	ModeEditMinutes
	ModeRun
)

// RunState is the sub-state while in ModeRun. It is meaningless in the
// edit modes.
type RunState int

const (
	RunIdle RunState = iota
	RunCounting
	RunExpired
)

type clockValue struct {
	min, sec int
}

func (v clockValue) total() int { return v.min*60 + v.sec }

// Machine owns all countdown state. It is single-threaded by contract:
// the host delivers one event at a time and each handler runs to completion.
type Machine struct {
	mode Mode
	run  RunState

	configured clockValue // last committed edit value
	current    clockValue // value on the display
	remaining  int        // whole seconds left while counting

	// Display cache. Text is only re-emitted when the value actually
	// changed since the last emission. -1 means never drawn.
	lastMin, lastSec int
	banner           bool
}

// New returns a machine in run mode, idle, with the given starting value.
// Out-of-range fields are clamped into [0,59].
func New(minutes, seconds int) *Machine {
	v := clockValue{clampField(minutes), clampField(seconds)}
	return &Machine{
		mode:       ModeRun,
		run:        RunIdle,
		configured: v,
		current:    v,
		lastMin:    -1,
		lastSec:    -1,
	}
}

func clampField(v int) int {
	if v < 0 {
		return 0
	}
	if v > 59 {
		return 59
	}
	return v
}

// Mode reports the current UI mode.
func (m *Machine) Mode() Mode { return m.mode }

// RunState reports the run sub-state. Only meaningful when Mode is ModeRun.
func (m *Machine) RunState() RunState { return m.run }

// Remaining reports the seconds left in the active countdown.
func (m *Machine) Remaining() int { return m.remaining }

// Configured reports the committed start value.
func (m *Machine) Configured() (minutes, seconds int) {
	return m.configured.min, m.configured.sec
}

// Boot emits the initial icon and display state for a fresh machine.
func (m *Machine) Boot() []Command {
	cmds := []Command{
		SetButtonIcon{SlotUp, IconStart},
		SetButtonIcon{SlotDown, IconReset},
	}
	return append(cmds, m.redisplay()...)
}

// Up handles the up button: increment in the edit modes, start or pause in
// run mode.
func (m *Machine) Up() []Command {
	switch m.mode {
	case ModeEditSeconds:
		m.configured.sec = (m.configured.sec + 1) % 60
		m.current.sec = m.configured.sec
		return m.redisplaySec()
	case ModeEditMinutes:
		m.configured.min = (m.configured.min + 1) % 60
		m.current.min = m.configured.min
		return m.redisplayMin()
	default:
		if m.run == RunCounting {
			// Pause.
			m.run = RunIdle
			return []Command{
				SetButtonIcon{SlotUp, IconStart},
				SetButtonIcon{SlotDown, IconReset},
			}
		}
		// Idle or Expired: start. A zero value has nothing to count.
		total := m.current.total()
		if total == 0 {
			return nil
		}
		m.remaining = total
		m.run = RunCounting
		cmds := []Command{
			SetButtonIcon{SlotUp, IconPause},
			SetButtonIcon{SlotSelect, IconNone},
			SetButtonIcon{SlotDown, IconNone},
		}
		return append(cmds, m.showBanner(false)...)
	}
}

// SelectShort toggles which field is being edited. Ignored in run mode.
func (m *Machine) SelectShort() []Command {
	switch m.mode {
	case ModeEditSeconds:
		m.mode = ModeEditMinutes
		return []Command{
			SetHighlight{FieldSeconds, false},
			SetHighlight{FieldMinutes, true},
		}
	case ModeEditMinutes:
		m.mode = ModeEditSeconds
		return []Command{
			SetHighlight{FieldMinutes, false},
			SetHighlight{FieldSeconds, true},
		}
	default:
		return nil
	}
}

// SelectLong switches between edit and run mode. The switch into edit mode
// is refused while the timer is counting.
func (m *Machine) SelectLong() []Command {
	switch m.mode {
	case ModeEditSeconds, ModeEditMinutes:
		edited := FieldSeconds
		if m.mode == ModeEditMinutes {
			edited = FieldMinutes
		}
		m.mode = ModeRun
		m.run = RunIdle
		cmds := []Command{
			SetHighlight{edited, false},
			SetButtonIcon{SlotUp, IconStart},
			SetButtonIcon{SlotSelect, IconNone},
			SetButtonIcon{SlotDown, IconReset},
		}
		return append(cmds, m.redisplay()...)
	default:
		if m.run == RunCounting {
			return nil
		}
		m.mode = ModeEditMinutes
		m.run = RunIdle
		m.current = m.configured
		cmds := m.showBanner(false)
		cmds = append(cmds,
			SetHighlight{FieldMinutes, true},
			SetButtonIcon{SlotUp, IconPlus},
			SetButtonIcon{SlotSelect, IconMode},
			SetButtonIcon{SlotDown, IconMinus},
		)
		return append(cmds, m.redisplay()...)
	}
}

// Down handles the down button: decrement in the edit modes, reset in run
// mode. It always clears the expired banner first.
func (m *Machine) Down() []Command {
	cmds := m.showBanner(false)
	switch m.mode {
	case ModeEditSeconds:
		m.configured.sec = (m.configured.sec + 59) % 60
		m.current.sec = m.configured.sec
		return append(cmds, m.redisplaySec()...)
	case ModeEditMinutes:
		m.configured.min = (m.configured.min + 59) % 60
		m.current.min = m.configured.min
		return append(cmds, m.redisplayMin()...)
	default:
		if m.run == RunCounting {
			return cmds
		}
		m.run = RunIdle
		m.current = m.configured
		m.remaining = m.current.total()
		if m.current.total() != 0 {
			cmds = append(cmds, SetButtonIcon{SlotUp, IconStart})
		}
		return append(cmds, m.redisplay()...)
	}
}

// Tick advances the countdown by one second. It is a no-op unless the timer
// is actually counting. On reaching zero the machine notifies, then
// immediately re-arms with the configured value so the next Up starts a
// fresh run without an extra reset press.
func (m *Machine) Tick() []Command {
	if m.mode != ModeRun || m.run != RunCounting {
		return nil
	}
	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining > 0 {
		m.current = clockValue{m.remaining / 60, m.remaining % 60}
		return m.redisplay()
	}

	// Expired.
	m.run = RunExpired
	cmds := []Command{Vibrate{}}
	cmds = append(cmds, m.showBanner(true)...)
	m.current = m.configured
	m.remaining = m.current.total()
	cmds = append(cmds,
		SetButtonIcon{SlotUp, IconStart},
		SetButtonIcon{SlotDown, IconReset},
	)
	return append(cmds, m.redisplay()...)
}

func (m *Machine) redisplayMin() []Command {
	if m.current.min == m.lastMin {
		return nil
	}
	m.lastMin = m.current.min
	return []Command{SetDisplay{FieldMinutes, FormatField(m.current.min)}}
}

func (m *Machine) redisplaySec() []Command {
	if m.current.sec == m.lastSec {
		return nil
	}
	m.lastSec = m.current.sec
	return []Command{SetDisplay{FieldSeconds, FormatField(m.current.sec)}}
}

func (m *Machine) redisplay() []Command {
	return append(m.redisplayMin(), m.redisplaySec()...)
}

func (m *Machine) showBanner(on bool) []Command {
	if m.banner == on {
		return nil
	}
	m.banner = on
	return []Command{SetExpiredBanner{on}}
}
