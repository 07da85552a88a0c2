// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/keymap"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/styles"
	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

// dueLayout is how deadlines are shown in the list.
const dueLayout = "Jan 2 15:04"

// OrderList displays open work orders in a navigable list, most urgent first.
type OrderList struct {
	orders   []domain.WorkOrder
	selected int
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	width    int
	height   int
}

// NewOrderList creates a new work order list component.
// Nil styles or keymap fall back to the defaults.
func NewOrderList(s *styles.Styles, km *keymap.KeyMap) *OrderList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &OrderList{
		styles: s,
		keymap: km,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *OrderList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *OrderList) Update(msg tea.Msg) (*OrderList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch key := msg.String(); {
		case keymap.Matches(key, l.keymap.Up):
			l.MoveUp()
		case keymap.Matches(key, l.keymap.Down):
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the list.
func (l *OrderList) View() string {
	if len(l.orders) == 0 {
		return l.styles.Muted.Render("No open work orders")
	}

	lines := make([]string, 0, len(l.orders)+2)
	lines = append(lines, l.styles.Subtitle.Render(fmt.Sprintf("Open work orders (%d)", len(l.orders))), "")

	visible := l.height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.orders) {
		end = len(l.orders)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderOrder(i, &l.orders[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *OrderList) renderOrder(index int, wo *domain.WorkOrder) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	badge := l.styles.Priority(wo.Priority).Render(fmt.Sprintf("%-8s", strings.ToUpper(wo.Priority.String())))

	due := ""
	if wo.HasDueDate() {
		due = "due " + wo.DueDate.Local().Format(dueLayout)
	}

	title := wo.Title
	if title == "" {
		title = "(untitled)"
	}
	maxTitle := l.width - len(wo.TaskID) - len(due) - 16
	if maxTitle < 10 {
		maxTitle = 10
	}
	if len([]rune(title)) > maxTitle {
		title = string([]rune(title)[:maxTitle-3]) + "..."
	}

	text := fmt.Sprintf("%s  %-*s", wo.TaskID, maxTitle, title)
	if index == l.selected {
		text = l.styles.Selected.Render(text)
	} else {
		text = l.styles.Normal.Render(text)
	}
	return indicator + badge + " " + text + "  " + l.styles.Muted.Render(due)
}

// SetQueue replaces the list contents with the queue's orders.
// The selection is kept on the same task when it is still present.
func (l *OrderList) SetQueue(q *domain.PriorityQueue) {
	var current string
	if wo := l.SelectedOrder(); wo != nil {
		current = wo.TaskID
	}

	l.orders = nil
	if q != nil {
		l.orders = q.Ordered()
	}

	l.selected = 0
	for i := range l.orders {
		if l.orders[i].TaskID == current {
			l.selected = i
			break
		}
	}
}

// Orders returns the listed orders.
func (l *OrderList) Orders() []domain.WorkOrder {
	return l.orders
}

// Selected returns the index of the selected order.
func (l *OrderList) Selected() int {
	return l.selected
}

// SelectedOrder returns the selected order, or nil if the list is empty.
func (l *OrderList) SelectedOrder() *domain.WorkOrder {
	if l.selected < 0 || l.selected >= len(l.orders) {
		return nil
	}
	return &l.orders[l.selected]
}

// MoveUp moves selection up.
func (l *OrderList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *OrderList) MoveDown() {
	if l.selected < len(l.orders)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *OrderList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of orders.
func (l *OrderList) Count() int {
	return len(l.orders)
}
