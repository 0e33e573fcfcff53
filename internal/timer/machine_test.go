package timer

import "testing"

func countVibrations(cmds []Command) int {
	n := 0
	for _, c := range cmds {
		if _, ok := c.(Vibrate); ok {
			n++
		}
	}
	return n
}

func findIcon(cmds []Command, slot Slot) (Icon, bool) {
	var icon Icon
	found := false
	for _, c := range cmds {
		if b, ok := c.(SetButtonIcon); ok && b.Slot == slot {
			icon = b.Icon
			found = true
		}
	}
	return icon, found
}

func displayText(cmds []Command, field Field) (string, bool) {
	text := ""
	found := false
	for _, c := range cmds {
		if d, ok := c.(SetDisplay); ok && d.Field == field {
			text = d.Text
			found = true
		}
	}
	return text, found
}

func enterEditMode(t *testing.T, m *Machine) {
	t.Helper()
	m.SelectLong()
	if m.Mode() != ModeEditMinutes {
		t.Fatalf("expected edit-minutes mode, got %v", m.Mode())
	}
}

func TestBootEmitsInitialState(t *testing.T) {
	m := New(1, 0)
	cmds := m.Boot()

	if icon, ok := findIcon(cmds, SlotUp); !ok || icon != IconStart {
		t.Fatalf("expected start icon on up slot, got %v (present=%v)", icon, ok)
	}
	if icon, ok := findIcon(cmds, SlotDown); !ok || icon != IconReset {
		t.Fatalf("expected reset icon on down slot, got %v (present=%v)", icon, ok)
	}
	if text, ok := displayText(cmds, FieldMinutes); !ok || text != "01" {
		t.Fatalf("expected minutes display 01, got %q (present=%v)", text, ok)
	}
	if text, ok := displayText(cmds, FieldSeconds); !ok || text != "00" {
		t.Fatalf("expected seconds display 00, got %q (present=%v)", text, ok)
	}
}

func TestEditIncrementWrapsAround(t *testing.T) {
	m := New(0, 0)
	enterEditMode(t, m)
	m.SelectShort() // edit seconds

	for n := 0; n < 60; n++ {
		_, sec := m.Configured()
		if sec != n {
			t.Fatalf("after %d increments expected seconds %d, got %d", n, n, sec)
		}
		m.Up()
	}
	if _, sec := m.Configured(); sec != 0 {
		t.Fatalf("expected wraparound 59->0, got %d", sec)
	}
}

func TestEditDecrementWrapsAround(t *testing.T) {
	m := New(0, 0)
	enterEditMode(t, m)

	m.Down()
	if min, _ := m.Configured(); min != 59 {
		t.Fatalf("expected wraparound 0->59, got %d", min)
	}
	for n := 0; n < 59; n++ {
		m.Down()
	}
	if min, _ := m.Configured(); min != 0 {
		t.Fatalf("expected to land back on 0, got %d", min)
	}
}

func TestUpWithZeroDurationStaysIdle(t *testing.T) {
	m := New(0, 0)
	m.Boot()

	cmds := m.Up()
	if m.RunState() != RunIdle {
		t.Fatalf("expected idle run state, got %v", m.RunState())
	}
	if len(cmds) != 0 {
		t.Fatalf("expected no commands from a zero-duration start, got %d", len(cmds))
	}
}

func TestStartSwapsIcons(t *testing.T) {
	m := New(1, 0)
	m.Boot()

	cmds := m.Up()
	if m.RunState() != RunCounting {
		t.Fatalf("expected counting, got %v", m.RunState())
	}
	if m.Remaining() != 60 {
		t.Fatalf("expected 60 seconds remaining, got %d", m.Remaining())
	}
	if icon, ok := findIcon(cmds, SlotUp); !ok || icon != IconPause {
		t.Fatalf("expected pause icon on up slot, got %v (present=%v)", icon, ok)
	}
	if icon, ok := findIcon(cmds, SlotDown); !ok || icon != IconNone {
		t.Fatalf("expected cleared down slot, got %v (present=%v)", icon, ok)
	}
}

func TestPauseAndResume(t *testing.T) {
	m := New(0, 30)
	m.Boot()
	m.Up()
	for i := 0; i < 10; i++ {
		m.Tick()
	}
	if m.Remaining() != 20 {
		t.Fatalf("expected 20 remaining, got %d", m.Remaining())
	}

	cmds := m.Up() // pause
	if m.RunState() != RunIdle {
		t.Fatalf("expected idle after pause, got %v", m.RunState())
	}
	if icon, ok := findIcon(cmds, SlotUp); !ok || icon != IconStart {
		t.Fatalf("expected start icon after pause, got %v (present=%v)", icon, ok)
	}

	if cmds := m.Tick(); len(cmds) != 0 {
		t.Fatalf("expected tick to be ignored while paused, got %d commands", len(cmds))
	}

	m.Up() // resume
	if m.RunState() != RunCounting || m.Remaining() != 20 {
		t.Fatalf("expected resume from 20s, got state=%v remaining=%d", m.RunState(), m.Remaining())
	}
}

func TestSixtyTicksExpireExactlyOnce(t *testing.T) {
	m := New(1, 0)
	m.Boot()
	m.Up()

	vibrations := 0
	expiries := 0
	for i := 0; i < 60; i++ {
		cmds := m.Tick()
		vibrations += countVibrations(cmds)
		if m.RunState() == RunExpired {
			expiries++
			break
		}
	}
	if expiries != 1 {
		t.Fatalf("expected exactly one expiry within 60 ticks, got %d", expiries)
	}
	if vibrations != 1 {
		t.Fatalf("expected exactly one vibration, got %d", vibrations)
	}

	// Further ticks are no-ops: the timer is no longer counting.
	if cmds := m.Tick(); countVibrations(cmds) != 0 || len(cmds) != 0 {
		t.Fatalf("expected no further commands after expiry, got %d", len(cmds))
	}
}

func TestExpiryAutoRearms(t *testing.T) {
	m := New(0, 2)
	m.Boot()
	m.Up()
	m.Tick()
	cmds := m.Tick()

	if m.RunState() != RunExpired {
		t.Fatalf("expected expired, got %v", m.RunState())
	}
	min, sec := m.Configured()
	if min != 0 || sec != 2 {
		t.Fatalf("expected configured value untouched, got %d:%d", min, sec)
	}
	if m.Remaining() != 2 {
		t.Fatalf("expected remaining re-armed to 2, got %d", m.Remaining())
	}
	if icon, ok := findIcon(cmds, SlotUp); !ok || icon != IconStart {
		t.Fatalf("expected start icon restored on expiry, got %v (present=%v)", icon, ok)
	}
	if text, ok := displayText(cmds, FieldSeconds); !ok || text != "02" {
		t.Fatalf("expected re-armed seconds display 02, got %q (present=%v)", text, ok)
	}

	bannerShown := false
	for _, c := range cmds {
		if b, ok := c.(SetExpiredBanner); ok && b.Visible {
			bannerShown = true
		}
	}
	if !bannerShown {
		t.Fatalf("expected expired banner command")
	}

	// Up starts a fresh run straight from Expired.
	m.Up()
	if m.RunState() != RunCounting || m.Remaining() != 2 {
		t.Fatalf("expected fresh 2s run, got state=%v remaining=%d", m.RunState(), m.Remaining())
	}
}

func TestStartClearsBanner(t *testing.T) {
	m := New(0, 1)
	m.Boot()
	m.Up()
	m.Tick() // expire, banner on

	cmds := m.Up() // fresh run
	cleared := false
	for _, c := range cmds {
		if b, ok := c.(SetExpiredBanner); ok && !b.Visible {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected banner cleared when a run starts")
	}
}

func TestDownClearsBannerAndResets(t *testing.T) {
	m := New(0, 1)
	m.Boot()
	m.Up()
	m.Tick() // expire

	cmds := m.Down()
	cleared := false
	for _, c := range cmds {
		if b, ok := c.(SetExpiredBanner); ok && !b.Visible {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected down to clear the banner")
	}
	if m.RunState() != RunIdle {
		t.Fatalf("expected idle after reset, got %v", m.RunState())
	}
	if icon, ok := findIcon(cmds, SlotUp); !ok || icon != IconStart {
		t.Fatalf("expected start icon after nonzero reset, got %v (present=%v)", icon, ok)
	}
}

func TestDownResetZeroValueOmitsStartIcon(t *testing.T) {
	m := New(0, 0)
	m.Boot()

	cmds := m.Down()
	if _, ok := findIcon(cmds, SlotUp); ok {
		t.Fatalf("expected no start icon when reset value is zero")
	}
}

func TestSelectShortTogglesEditField(t *testing.T) {
	m := New(1, 0)
	enterEditMode(t, m)

	cmds := m.SelectShort()
	if m.Mode() != ModeEditSeconds {
		t.Fatalf("expected edit-seconds, got %v", m.Mode())
	}
	var hi, lo *SetHighlight
	for _, c := range cmds {
		if h, ok := c.(SetHighlight); ok {
			h := h
			if h.On {
				hi = &h
			} else {
				lo = &h
			}
		}
	}
	if hi == nil || hi.Field != FieldSeconds {
		t.Fatalf("expected seconds highlighted, got %+v", hi)
	}
	if lo == nil || lo.Field != FieldMinutes {
		t.Fatalf("expected minutes unhighlighted, got %+v", lo)
	}

	m.SelectShort()
	if m.Mode() != ModeEditMinutes {
		t.Fatalf("expected edit-minutes again, got %v", m.Mode())
	}
}

func TestSelectShortIgnoredInRunMode(t *testing.T) {
	m := New(1, 0)
	m.Boot()
	if cmds := m.SelectShort(); len(cmds) != 0 {
		t.Fatalf("expected select to be ignored in run mode, got %d commands", len(cmds))
	}
}

func TestCannotEnterEditWhileCounting(t *testing.T) {
	m := New(1, 0)
	m.Boot()
	m.Up()

	if cmds := m.SelectLong(); len(cmds) != 0 {
		t.Fatalf("expected long select to be ignored while counting, got %d commands", len(cmds))
	}
	if m.Mode() != ModeRun || m.RunState() != RunCounting {
		t.Fatalf("expected counting to continue, got mode=%v run=%v", m.Mode(), m.RunState())
	}
	if cmds := m.Down(); len(cmds) != 0 {
		t.Fatalf("expected down to be ignored while counting, got %d commands", len(cmds))
	}
}

func TestModeRoundTripPreservesValue(t *testing.T) {
	m := New(5, 30)
	m.Boot()

	enterEditMode(t, m)
	m.SelectLong()
	if m.Mode() != ModeRun || m.RunState() != RunIdle {
		t.Fatalf("expected run/idle, got mode=%v run=%v", m.Mode(), m.RunState())
	}
	min, sec := m.Configured()
	if min != 5 || sec != 30 {
		t.Fatalf("expected 5:30 preserved across mode round trip, got %d:%d", min, sec)
	}
}

func TestEditModeIconSet(t *testing.T) {
	m := New(1, 0)
	m.Boot()

	cmds := m.SelectLong()
	if icon, ok := findIcon(cmds, SlotUp); !ok || icon != IconPlus {
		t.Fatalf("expected plus icon, got %v (present=%v)", icon, ok)
	}
	if icon, ok := findIcon(cmds, SlotSelect); !ok || icon != IconMode {
		t.Fatalf("expected mode icon, got %v (present=%v)", icon, ok)
	}
	if icon, ok := findIcon(cmds, SlotDown); !ok || icon != IconMinus {
		t.Fatalf("expected minus icon, got %v (present=%v)", icon, ok)
	}
}

func TestTickRedrawsOnlyChangedFields(t *testing.T) {
	m := New(1, 30)
	m.Boot()
	m.Up()

	cmds := m.Tick() // 1:30 -> 1:29
	if _, ok := displayText(cmds, FieldMinutes); ok {
		t.Fatalf("expected unchanged minutes not to be re-emitted")
	}
	if text, ok := displayText(cmds, FieldSeconds); !ok || text != "29" {
		t.Fatalf("expected seconds display 29, got %q (present=%v)", text, ok)
	}
}

func TestFormatFieldSentinel(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00"},
		{7, "07"},
		{59, "59"},
		{-1, "!!"},
		{60, "!!"},
		{412, "!!"},
	}
	for _, c := range cases {
		if got := FormatField(c.in); got != c.want {
			t.Fatalf("FormatField(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNewClampsOutOfRangeStart(t *testing.T) {
	m := New(99, -3)
	min, sec := m.Configured()
	if min != 59 || sec != 0 {
		t.Fatalf("expected clamp to 59:00, got %d:%d", min, sec)
	}
}
