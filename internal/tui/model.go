// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

// Package tui renders pipeline progress in the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Step statuses reported through PipelineStatusMsg.
const (
	StatusStarted = "started"
	StatusSuccess = "success"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// ActivityTimeout is how long the model waits for the next status update.
var ActivityTimeout = 5 * time.Minute

// maxLogLines is the number of recent log lines kept on screen.
const maxLogLines = 5

var (
	accent = lipgloss.Color("#4078c0")
	muted  = lipgloss.Color("#626262")
	green  = lipgloss.Color("#04B575")
	red    = lipgloss.Color("#FF0000")

	headerStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	counterStyle = lipgloss.NewStyle().Foreground(muted)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	runningStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(green)
	failedStyle  = lipgloss.NewStyle().Foreground(red)
	skippedStyle = pendingStyle.Faint(true)
	logStyle     = lipgloss.NewStyle().Foreground(muted)
)

// PipelineStatusMsg indicates a status update from the pipeline.
type PipelineStatusMsg struct {
	Step    string
	Status  string
	Message string
}

// ResultMsg indicates the final result.
type ResultMsg struct {
	Success bool
	Output  string
}

// stepState tracks one step of the run.
type stepState struct {
	name    string
	status  string
	started time.Time
	elapsed time.Duration
}

// Model is the bubbletea model for a pipeline run.
type Model struct {
	title      string
	spinner    spinner.Model
	steps      []stepState
	index      map[string]int
	current    int
	logs       []string
	quitting   bool
	err        error
	output     string
	now        func() time.Time
	statusChan <-chan PipelineStatusMsg
}

// NewModel creates a model that follows the named steps through statusChan.
func NewModel(title string, steps []string, statusChan <-chan PipelineStatusMsg) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accent)

	states := make([]stepState, len(steps))
	index := make(map[string]int, len(steps))
	for i, name := range steps {
		states[i] = stepState{name: name}
		index[name] = i
	}

	return Model{
		title:      title,
		spinner:    s,
		steps:      states,
		index:      index,
		now:        time.Now,
		statusChan: statusChan,
	}
}

// Init starts the spinner and waits for the first status update.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForActivity())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PipelineStatusMsg:
		m.record(msg)
		return m, m.waitForActivity()

	case ResultMsg:
		m.output = msg.Output
		if !msg.Success && m.err == nil && msg.Output != "" {
			m.err = fmt.Errorf("%s", msg.Output)
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// record applies one status update. Steps outside the plan, such as
// init errors, are only logged.
func (m *Model) record(msg PipelineStatusMsg) {
	now := m.now()
	if msg.Message != "" {
		m.logs = append(m.logs, fmt.Sprintf("[%s] %s: %s", now.Format("15:04:05"), msg.Step, msg.Message))
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
	}

	if msg.Status == StatusError && m.err == nil {
		m.err = fmt.Errorf("step %s failed: %s", msg.Step, msg.Message)
	}

	i, ok := m.index[msg.Step]
	if !ok {
		return
	}
	m.current = i
	st := &m.steps[i]
	st.status = msg.Status
	if msg.Status == StatusStarted {
		st.started = now
	} else if !st.started.IsZero() {
		st.elapsed = now.Sub(st.started)
	}
}

// Output returns the final result text once the program has exited.
func (m Model) Output() string {
	return m.output
}

// Err returns the first failure reported to the model.
func (m Model) Err() error {
	return m.err
}

func (m Model) waitForActivity() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg, ok := <-m.statusChan:
			if !ok {
				return nil
			}
			return msg
		case <-time.After(ActivityTimeout):
			return ResultMsg{Success: false, Output: "pipeline timed out waiting for activity"}
		}
	}
}

// finished counts steps that reached a final status.
func (m Model) finished() int {
	n := 0
	for _, st := range m.steps {
		switch st.status {
		case StatusSuccess, StatusError, StatusSkipped:
			n++
		}
	}
	return n
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(m.title))
	b.WriteString(" ")
	b.WriteString(counterStyle.Render(fmt.Sprintf("%d/%d steps", m.finished(), len(m.steps))))
	b.WriteString("\n\n")

	for i, st := range m.steps {
		b.WriteString(m.renderStep(i, st))
		b.WriteString("\n")
	}

	if len(m.logs) > 0 {
		b.WriteString("\n")
		for _, line := range m.logs {
			b.WriteString(logStyle.Render(line))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(failedStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString(logStyle.Render("\nPress q to quit\n"))
	return b.String()
}

func (m Model) renderStep(i int, st stepState) string {
	switch st.status {
	case StatusSuccess:
		return doneStyle.Render(fmt.Sprintf("✓ %s (%s)", st.name, st.elapsed.Round(time.Millisecond)))
	case StatusError:
		return failedStyle.Render("✗ " + st.name)
	case StatusSkipped:
		return skippedStyle.Render("○ " + st.name)
	case StatusStarted:
		return runningStyle.Render(m.spinner.View() + " " + st.name)
	}
	if i == m.current && m.finished() == 0 {
		return runningStyle.Render(m.spinner.View() + " " + st.name)
	}
	return pendingStyle.Render("  " + st.name)
}
