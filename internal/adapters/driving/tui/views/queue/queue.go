// Package queue provides the work order priority queue view for the TUI.
package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/components/list"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/components/status"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/keymap"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/messages"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/styles"
	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
)

// briefingActions is how many immediate actions the side pane shows.
const briefingActions = 3

// View is the priority queue of open work orders.
type View struct {
	ctx        context.Context
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	workOrders driving.WorkOrderService
	catalog    driving.PlaybookCatalog

	list      *list.OrderList
	statusBar *status.Bar

	width  int
	height int
	err    error
}

// NewView creates a new queue view. catalog may be nil.
func NewView(
	s *styles.Styles,
	workOrders driving.WorkOrderService,
	catalog driving.PlaybookCatalog,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	bar := status.NewBar(s, km)
	bar.SetBindings(km.QueueHelp())

	return &View{
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		workOrders: workOrders,
		catalog:    catalog,
		list:       list.NewOrderList(s, km),
		statusBar:  bar,
		width:      80,
		height:     24,
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads the queue.
func (v *View) Init() tea.Cmd {
	v.statusBar.SetState(status.StateLoading)
	return v.loadQueue()
}

// loadQueue returns a command that fetches the priority queue.
func (v *View) loadQueue() tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		if v.workOrders == nil {
			return messages.QueueLoaded{Err: errors.New("work order service not available")}
		}
		q, err := v.workOrders.PriorityQueue(ctx)
		return messages.QueueLoaded{Queue: q, Err: err}
	}
}

// resolve returns a command that marks a work order completed.
func (v *View) resolve(taskID string) tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		res, err := v.workOrders.Resolve(ctx, taskID)
		return messages.WorkOrderResolved{Result: res, Err: err}
	}
}

// Update handles messages for the queue view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.QueueLoaded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.list.SetQueue(msg.Queue)
		v.statusBar.Clear()
		return v, nil

	case messages.WorkOrderResolved:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		v.statusBar.SetState(status.StateReady)
		if msg.Result.Synced {
			v.statusBar.SetMessage(fmt.Sprintf("%s resolved", msg.Result.Order.TaskID))
		} else {
			v.statusBar.SetMessage(fmt.Sprintf("%s resolved locally, sync queued", msg.Result.Order.TaskID))
		}
		return v, v.loadQueue()
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Open):
		wo := v.list.SelectedOrder()
		if wo == nil {
			return v, nil
		}
		order := *wo
		return v, func() tea.Msg {
			return messages.ChatRequested{WorkOrder: order}
		}

	case keymap.Matches(key, v.keymap.Resolve):
		wo := v.list.SelectedOrder()
		if wo == nil || v.workOrders == nil {
			return v, nil
		}
		v.statusBar.SetState(status.StateLoading)
		return v, v.resolve(wo.TaskID)

	case keymap.Matches(key, v.keymap.Refresh):
		v.statusBar.SetState(status.StateLoading)
		return v, v.loadQueue()
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *View) setError(err error) {
	v.err = err
	v.statusBar.SetState(status.StateError)
	v.statusBar.SetMessage(err.Error())
}

// View renders the queue with a briefing pane for the selected order.
func (v *View) View() string {
	title := v.styles.Title.Render("techassist") + v.styles.Muted.Render("  work order queue")

	listWidth := v.width * 3 / 5
	paneWidth := v.width - listWidth - 2
	bodyHeight := v.height - 4
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	v.list.SetDimensions(listWidth, bodyHeight)

	body := v.list.View()
	if paneWidth >= 20 {
		pane := lipgloss.NewStyle().Width(paneWidth).Render(v.renderBriefing())
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(listWidth).Render(body), "  ", pane)
	}

	v.statusBar.SetWidth(v.width)
	return strings.Join([]string{title, "", body, v.statusBar.View()}, "\n")
}

// renderBriefing shows the playbook summary for the selected order.
func (v *View) renderBriefing() string {
	wo := v.list.SelectedOrder()
	if wo == nil {
		return ""
	}

	lines := []string{v.styles.Subtitle.Render(wo.TaskID)}
	if wo.Location != "" {
		lines = append(lines, v.styles.Muted.Render(wo.Location))
	}

	var doc *domain.PlaybookDocument
	if v.catalog != nil {
		doc = v.catalog.Lookup(wo.IssueDocumentID)
	}
	if doc == nil {
		lines = append(lines, "", v.styles.Muted.Render("No playbook linked"))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, "", v.styles.Normal.Render(doc.Title), "", v.styles.Subtitle.Render("Immediate actions"))
	for i, action := range doc.ImmediateActions {
		if i == briefingActions {
			break
		}
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, action))
	}
	if len(doc.ResolutionSteps) > 0 {
		lines = append(lines, "", v.styles.Subtitle.Render("Next step"), doc.ResolutionSteps[0])
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// SelectedOrder returns the selected work order, or nil.
func (v *View) SelectedOrder() *domain.WorkOrder {
	return v.list.SelectedOrder()
}

// Count returns the number of listed orders.
func (v *View) Count() int {
	return v.list.Count()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusBar.Message()
}
