// Package watch renders a live feed of inbound webhook activity in the
// terminal. It is display-only: it subscribes to the handler's event bus
// and draws what arrives.
package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/courierkit/steadfast/internal/events"
	"github.com/courierkit/steadfast/internal/webhook"
)

const maxLogEntries = 200

type eventMsg events.Event

type tickMsg time.Time

// Model is the BubbleTea model for the watch TUI.
type Model struct {
	width  int
	height int

	startedAt time.Time
	received  int
	errors    int
	eventLog  []events.Event

	viewport viewport.Model
	theme    Theme

	hubEvents chan events.Event
	cancel    func()
}

// New creates a watch model subscribed to the handler's event bus.
func New(bus *events.Bus) *Model {
	ch := make(chan events.Event, 100)
	cancels := make([]func(), 0, 3)
	for _, name := range []string{webhook.EventReceived, webhook.EventError} {
		name := name
		cancels = append(cancels, bus.Subscribe(name, func(data any) {
			select {
			case ch <- events.Event{Name: name, At: time.Now(), Data: data}:
			default:
			}
		}))
	}

	return &Model{
		startedAt: time.Now(),
		theme:     NewDefaultTheme(),
		hubEvents: ch,
		cancel: func() {
			for _, c := range cancels {
				c()
			}
		},
	}
}

func receiveNextEvent(ch chan events.Event) tea.Cmd {
	return func() tea.Msg {
		return eventMsg(<-ch)
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		receiveNextEvent(m.hubEvents),
		tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) }),
		tea.EnterAltScreen,
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4

	case tickMsg:
		return m, tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })

	case eventMsg:
		e := events.Event(msg)
		if e.Name == webhook.EventError {
			m.errors++
		} else {
			m.received++
		}
		m.eventLog = append([]events.Event{e}, m.eventLog...)
		if len(m.eventLog) > maxLogEntries {
			m.eventLog = m.eventLog[:maxLogEntries]
		}
		m.viewport.SetContent(m.renderLog())
		return m, receiveNextEvent(m.hubEvents)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("steadfast webhooks"))
	b.WriteString("  ")
	b.WriteString(m.theme.Header.Render(fmt.Sprintf(
		"up %s  received %d  errors %d",
		time.Since(m.startedAt).Round(time.Second), m.received, m.errors,
	)))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render("q to quit"))
	return b.String()
}

func (m *Model) renderLog() string {
	var b strings.Builder
	for _, e := range m.eventLog {
		b.WriteString(m.theme.Time.Render(e.At.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(m.renderEvent(e))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderEvent(e events.Event) string {
	switch data := e.Data.(type) {
	case webhook.DeliveryStatusPayload:
		return m.theme.Success.Render(fmt.Sprintf(
			"delivery_status  cid=%d  invoice=%s  status=%s  cod=%.2f",
			data.ConsignmentID, data.Invoice, data.Status, data.CODAmount,
		))
	case webhook.TrackingUpdatePayload:
		return m.theme.Tracking.Render(fmt.Sprintf(
			"tracking_update  cid=%d  invoice=%s  %s",
			data.ConsignmentID, data.Invoice, data.TrackingMessage,
		))
	case *webhook.Error:
		return m.theme.Error.Render(fmt.Sprintf("rejected  %s: %s", data.Kind, data.Message))
	default:
		return m.theme.Dim.Render(e.Name)
	}
}
