package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ameerdhi7/bashy/internal/domain"
)

const maxHistory = 50

type probeItem struct {
	res domain.ProbeResult
	err error
}

func (p probeItem) Title() string {
	status := "OK"
	if p.err != nil || p.res.Failed() {
		status = "FAIL"
	}
	return fmt.Sprintf("[%s] %s %s", status, p.res.At.Local().Format("15:04:05"), p.res.Method)
}

func (p probeItem) Description() string {
	switch {
	case p.err != nil:
		return userMessage(p.err)
	case p.res.Error != nil:
		return fmt.Sprintf("%s: %s", p.res.Error.Kind, clampString(p.res.Error.Message, 80))
	default:
		return fmt.Sprintf("%d · %dms · %s", p.res.StatusCode, p.res.LatencyMS, clampString(p.res.Body, 40))
	}
}

func (p probeItem) FilterValue() string { return p.Title() }

type model struct {
	theme Theme
	deps  Deps

	history list.Model

	paused   bool
	inflight bool

	ok   int
	fail int
	last *probeItem

	toast string
}

func Run(deps Deps) error {
	return run(deps, tea.WithAltScreen())
}

// run returns nil when the program ends because deps.Ctx was cancelled.
func run(deps Deps, opts ...tea.ProgramOption) error {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}

	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), append(opts, tea.WithContext(deps.Ctx))...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && deps.Ctx.Err() != nil {
		return nil
	}
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Probes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		history: l,
		// Init sends the first probe.
		inflight: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(cmdProbe(m.deps), cmdTick(m.deps.Interval))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.history.SetSize(msg.Width-4, msg.Height-14)
		return m, nil

	case tickMsg:
		if m.paused || m.inflight {
			return m, cmdTick(m.deps.Interval)
		}
		m.inflight = true
		return m, tea.Batch(cmdProbe(m.deps), cmdTick(m.deps.Interval))

	case probeDoneMsg:
		m.inflight = false
		it := probeItem{res: msg.res, err: msg.err}
		if msg.err != nil || msg.res.Failed() {
			m.fail++
		} else {
			m.ok++
		}
		m.last = &it
		m.toast = ""
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		return m, m.history.SetItems(prepend(m.history.Items(), it))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "p":
			m.paused = !m.paused
			return m, nil

		case "r":
			if m.inflight {
				return m, nil
			}
			m.inflight = true
			return m, cmdProbe(m.deps)
		}
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("bashy watch") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%s %s every %s", m.method(), m.deps.Spec.URL, m.interval())) + "\n"

	state := "running"
	if m.paused {
		state = "paused"
	}
	summary := fmt.Sprintf("%s %d   %s %d   state: %s",
		m.theme.OK.Render("OK"), m.ok,
		m.theme.Fail.Render("FAIL"), m.fail,
		state,
	)

	var details string
	if sel, ok := m.history.SelectedItem().(probeItem); ok {
		details = renderProbeDetails(sel.res)
	} else if m.last != nil {
		details = renderProbeDetails(m.last.res)
	} else {
		details = "waiting for first probe…"
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(summary)
	b.WriteString("\n\n")
	b.WriteString(m.theme.Card.Render(m.history.View()))
	b.WriteString("\n")
	b.WriteString(m.theme.Card.Render(strings.TrimRight(details, "\n")))
	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Fail.Render(m.toast))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("↑/↓ select • r probe now • p pause • q quit"))

	return wrap.Render(b.String())
}

func (m model) method() string {
	if m.deps.Spec.Method == "" {
		return "GET"
	}
	return strings.ToUpper(m.deps.Spec.Method)
}

func (m model) interval() time.Duration {
	if m.deps.Interval < minInterval {
		return minInterval
	}
	return m.deps.Interval
}

func prepend(items []list.Item, it probeItem) []list.Item {
	out := make([]list.Item, 0, len(items)+1)
	out = append(out, it)
	out = append(out, items...)
	if len(out) > maxHistory {
		out = out[:maxHistory]
	}
	return out
}
