package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/brensch/paintbots/display"
	"github.com/brensch/paintbots/game"
	"github.com/brensch/paintbots/match"
	tea "github.com/charmbracelet/bubbletea"
)

type autoTickMsg time.Time

func autoTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return autoTickMsg(t)
	})
}

// stepper plays one game a turn at a time: enter or space steps, a toggles autoplay,
// q quits.
type stepper struct {
	runner *match.Runner
	styled *display.Styled
	delay  time.Duration

	auto   bool
	last   match.Turn
	recent []string
	result *match.Result
	err    error
}

func newStepper(r *match.Runner, styled *display.Styled, delay time.Duration) stepper {
	return stepper{runner: r, styled: styled, delay: delay}
}

func (m stepper) Init() tea.Cmd { return nil }

func (m stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", " ":
			return m.step(), nil
		case "a":
			m.auto = !m.auto
			if m.auto && !m.finished() {
				return m, autoTick(m.delay)
			}
		}
	case autoTickMsg:
		if !m.auto || m.finished() {
			return m, nil
		}
		m = m.step()
		if m.finished() {
			m.auto = false
			return m, nil
		}
		return m, autoTick(m.delay)
	}
	return m, nil
}

func (m stepper) finished() bool {
	return m.err != nil || m.runner.Done()
}

func (m stepper) step() stepper {
	if m.finished() {
		return m
	}
	t, err := m.runner.Step()
	m.last = t
	if err != nil {
		m.err = err
		m.auto = false
		return m
	}
	line := fmt.Sprintf("turn %3d: red %-12s blue %-12s", t.N, describe(t, game.RedRobot), describe(t, game.BlueRobot))
	m.recent = append([]string{line}, m.recent...)
	if len(m.recent) > 8 {
		m.recent = m.recent[:8]
	}
	if m.runner.Done() {
		res, err := m.runner.Result()
		if err != nil {
			m.err = err
			return m
		}
		m.result = &res
	}
	return m
}

func describe(t match.Turn, rc game.RobotColor) string {
	s := t.Requests[rc].Action.String()
	if t.Hits[rc] {
		s += "+hit"
	} else if t.Requests[rc].Shoot {
		s += "+shot"
	}
	if !t.Moved[rc] {
		s += " (blocked)"
	}
	return s
}

func (m stepper) View() string {
	scan := m.runner.Board().LongRangeScan()
	var sb strings.Builder
	sb.WriteString(m.styled.Render(fmt.Sprintf("game %s  turn %d", m.runner.ID().String()[:8], m.runner.Turn()), &scan))
	sb.WriteString("\n")
	for _, l := range m.recent {
		sb.WriteString(l + "\n")
	}
	switch {
	case m.err != nil:
		fmt.Fprintf(&sb, "\nerror: %v\n", m.err)
	case m.result != nil:
		announce(&sb, *m.result)
	}
	mode := "off"
	if m.auto {
		mode = "on"
	}
	fmt.Fprintf(&sb, "\nenter/space: step  a: autoplay (%s)  q: quit\n", mode)
	return sb.String()
}
