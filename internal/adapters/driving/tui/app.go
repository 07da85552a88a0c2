package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/keymap"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/messages"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/styles"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/views/chat"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/views/queue"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for service calls.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// queueView lists open work orders by priority.
	queueView *queue.View

	// chatView is the assistant conversation for the selected order.
	chatView *chat.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingAssistantService)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      keymap.DefaultKeyMap(),
		queueView:   queue.NewView(s, ports.WorkOrders, ports.Catalog),
		chatView:    chat.NewView(s),
		currentView: messages.ViewQueue,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.queueView.SetContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("techassist"),
		a.queueView.Init(),
	)
}

// openSession returns a command that starts an assistant conversation.
func (a *App) openSession(taskID string) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		conv, err := a.ports.Assistant.Open(ctx, taskID)
		return messages.SessionOpened{Conversation: conv, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ChatRequested:
		return a, a.openSession(msg.WorkOrder.TaskID)

	case messages.SessionOpened:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.currentView = messages.ViewChat
		return a, a.chatView.SetConversation(msg.Conversation)

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewQueue {
			return a, a.queueView.Init()
		}
		return a, nil

	case messages.QueueLoaded, messages.WorkOrderResolved:
		a.queueView, cmd = a.queueView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		a.closeChat()
		return a, tea.Quit
	}

	// Spinner ticks, replies and cursor blinks belong to the chat.
	a.chatView, cmd = a.chatView.Update(msg)
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	if key == "ctrl+c" {
		a.closeChat()
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewQueue:
		switch {
		case keymap.Matches(key, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(key, a.keymap.Help):
			a.currentView = messages.ViewHelp
			return a, nil
		}
		a.queueView, cmd = a.queueView.Update(msg)
		return a, cmd

	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		switch {
		case keymap.Matches(key, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(key, a.keymap.Back), keymap.Matches(key, a.keymap.Help):
			a.currentView = messages.ViewQueue
		}
	}
	return a, nil
}

// closeChat ends any open conversation.
func (a *App) closeChat() {
	if conv := a.chatView.Conversation(); conv != nil {
		conv.Close()
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewChat:
		body = a.chatView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.queueView.View()
	}

	if a.err != nil {
		body = a.styles.Error.Render("Error: "+a.err.Error()) + "\n" + body
	}
	return body
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	lines := []string{a.styles.Title.Render("Help"), ""}
	for _, group := range a.keymap.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-10s %s", h.Key, h.Desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, a.styles.Help.Render("[esc] back to queue"))
	return strings.Join(lines, "\n")
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// QueueView returns the queue view.
func (a *App) QueueView() *queue.View {
	return a.queueView
}

// ChatView returns the chat view.
func (a *App) ChatView() *chat.View {
	return a.chatView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.queueView.SetDimensions(width, height)
	a.chatView.SetDimensions(width, height)
}
