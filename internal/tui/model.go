// Package tui is the terminal front end for the countdown machine. It maps
// key presses to machine events, drives the one-second tick, and renders
// the commands the machine emits.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"countdown/internal/config"
	"countdown/internal/history"
	"countdown/internal/timer"
)

// Notifier plays the expiry alert.
type Notifier interface {
	Buzz()
}

// Recorder persists finished runs.
type Recorder interface {
	Record(run history.Run) error
}

type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

type runRecordedMsg struct{ err error }

type Model struct {
	machine  *timer.Machine
	view     renderState
	progress progress.Model
	theme    Theme
	notifier Notifier
	recorder Recorder

	startedAt time.Time
	runTotal  int // seconds in the run being counted, for the progress bar

	width, height int
	err           error
}

// NewModel builds the root model. notifier and recorder may be nil; the
// timer then simply runs silent or without history.
func NewModel(machine *timer.Machine, notifier Notifier, recorder Recorder) Model {
	m := Model{
		machine:  machine,
		notifier: notifier,
		recorder: recorder,
		theme:    DefaultTheme(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
	m.view.apply(machine.Boot())
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case runRecordedMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.counting() && m.recorder != nil {
			_ = m.recorder.Record(m.runRow(history.OutcomeAbandoned))
		}
		return m, tea.Quit
	case "up", "k", "+":
		wasCounting := m.counting()
		next, cmd := m.dispatch(m.machine.Up())
		if !wasCounting && next.counting() {
			next.startedAt = time.Now()
			next.runTotal = next.machine.Remaining()
		}
		return next, cmd
	case "down", "j", "-":
		return m.dispatch(m.machine.Down())
	case "enter", " ":
		return m.dispatch(m.machine.SelectShort())
	case "m":
		return m.dispatch(m.machine.SelectLong())
	}
	return m, nil
}

func (m Model) handleTick() (Model, tea.Cmd) {
	next, cmd := m.dispatch(m.machine.Tick())
	return next, tea.Batch(tickCmd(), cmd)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	target := m.width - 8
	if target > 40 {
		target = 40
	}
	if target > 0 {
		m.progress.Width = target
	}
	return m, nil
}

// dispatch applies a batch of machine commands to the render state and
// turns a vibration into the buzz-and-record side effects.
func (m Model) dispatch(cmds []timer.Command) (Model, tea.Cmd) {
	if !m.view.apply(cmds) {
		return m, nil
	}

	run := m.runRow(history.OutcomeExpired)
	notifier, recorder := m.notifier, m.recorder
	return m, func() tea.Msg {
		var err error
		if recorder != nil {
			err = recorder.Record(run)
		}
		if notifier != nil {
			notifier.Buzz()
		}
		return runRecordedMsg{err: err}
	}
}

func (m Model) runRow(outcome history.Outcome) history.Run {
	min, sec := m.machine.Configured()
	return history.Run{
		ConfiguredSeconds: min*60 + sec,
		StartedAt:         m.startedAt,
		FinishedAt:        time.Now(),
		Outcome:           outcome,
	}
}

func (m Model) counting() bool {
	return m.machine.Mode() == timer.ModeRun && m.machine.RunState() == timer.RunCounting
}
