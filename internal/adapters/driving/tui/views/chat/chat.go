// Package chat provides the assistant conversation view for the TUI.
package chat

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anirvinkotaru/techassist/internal/adapters/driving/render"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/components/input"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/components/status"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/keymap"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/messages"
	"github.com/anirvinkotaru/techassist/internal/adapters/driving/tui/styles"
	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
)

// View is the assistant chat for one work order.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.ChatInput
	spinner   spinner.Model
	viewport  viewport.Model
	statusBar *status.Bar
	formatter *render.Formatter

	conv     driving.Conversation
	thinking bool

	width  int
	height int
}

// NewView creates a new chat view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()
	bar := status.NewBar(s, km)
	bar.SetBindings(km.ChatHelp())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Spinner

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewChatInput(s),
		spinner:   sp,
		viewport:  viewport.New(80, 18),
		statusBar: bar,
		formatter: render.NewFormatter(render.DefaultWidth),
		width:     80,
		height:    24,
	}
}

// SetConversation binds the view to an open conversation.
func (v *View) SetConversation(conv driving.Conversation) tea.Cmd {
	v.conv = conv
	v.thinking = conv != nil && conv.State() == domain.SessionAwaitingReply
	v.input.Reset()
	v.statusBar.Clear()
	v.refresh()

	cmds := []tea.Cmd{v.input.Focus(), v.input.Init()}
	if v.thinking {
		cmds = append(cmds, v.spinner.Tick, waitForReply(conv))
	}
	return tea.Batch(cmds...)
}

// Conversation returns the bound conversation, or nil.
func (v *View) Conversation() driving.Conversation {
	return v.conv
}

// waitForReply blocks on the conversation's reply channel.
func waitForReply(conv driving.Conversation) tea.Cmd {
	id := conv.ID()
	replies := conv.Replies()
	return func() tea.Msg {
		msg, ok := <-replies
		if !ok {
			return messages.ReplyReceived{SessionID: id, Closed: true}
		}
		return messages.ReplyReceived{SessionID: id, Message: msg}
	}
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ReplyReceived:
		if v.conv == nil || msg.SessionID != v.conv.ID() {
			return v, nil
		}
		v.thinking = false
		v.statusBar.SetState(status.StateReady)
		v.refresh()
		return v, nil

	case spinner.TickMsg:
		if !v.thinking {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		v.close()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewQueue}
		}

	case keymap.Matches(key, v.keymap.Send):
		return v, v.submit()

	case key == "pgup" || key == "pgdown":
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit sends the input text. Blank input and submissions while a
// reply is pending leave the view unchanged.
func (v *View) submit() tea.Cmd {
	if v.conv == nil {
		return nil
	}
	_, err := v.conv.Submit(v.input.Value())
	switch {
	case errors.Is(err, domain.ErrEmptyInput), errors.Is(err, domain.ErrReplyPending):
		return nil
	case err != nil:
		v.statusBar.SetState(status.StateError)
		v.statusBar.SetMessage(err.Error())
		return nil
	}

	v.input.Reset()
	v.thinking = true
	v.statusBar.SetState(status.StateThinking)
	v.refresh()
	return tea.Batch(v.spinner.Tick, waitForReply(v.conv))
}

// close ends the conversation. Any pending reply is dropped.
func (v *View) close() {
	if v.conv != nil {
		v.conv.Close()
	}
	v.conv = nil
	v.thinking = false
}

// refresh re-renders the history into the viewport.
func (v *View) refresh() {
	if v.conv == nil {
		v.viewport.SetContent("")
		return
	}

	history := v.conv.Messages()
	blocks := make([]string, 0, len(history))
	for _, m := range history {
		blocks = append(blocks, v.renderMessage(m))
	}
	v.viewport.SetContent(strings.Join(blocks, "\n\n"))
	v.viewport.GotoBottom()
}

func (v *View) renderMessage(m domain.ConversationMessage) string {
	if m.Role == domain.RoleUser {
		return v.styles.UserLabel.Render("You") + "\n" + m.Text
	}
	return v.styles.AssistantLabel.Render("Assistant") + "\n" + v.formatter.Format(m.Text).Text
}

// View renders the chat.
func (v *View) View() string {
	if v.conv == nil {
		return v.styles.Muted.Render("No conversation open")
	}

	wo := v.conv.WorkOrder()
	header := v.styles.Title.Render(wo.TaskID) + "  " +
		v.styles.Priority(wo.Priority).Render(strings.ToUpper(wo.Priority.String())) + "  " +
		v.styles.Normal.Render(wo.Title)

	typing := ""
	if v.thinking {
		typing = v.spinner.View() + " " + v.styles.Muted.Render("Assistant is thinking...")
	}

	v.statusBar.SetWidth(v.width)
	return strings.Join([]string{
		header,
		"",
		v.viewport.View(),
		typing,
		v.input.View(),
		v.statusBar.View(),
	}, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	// header, blank, typing line, bordered input (3) and status bar
	vpHeight := height - 7
	if vpHeight < 3 {
		vpHeight = 3
	}
	v.viewport.Width = width
	v.viewport.Height = vpHeight
	v.input.SetWidth(width)

	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}
	v.formatter = render.NewFormatter(wrap)
	v.refresh()
}

// Thinking reports whether the typing indicator is shown.
func (v *View) Thinking() bool {
	return v.thinking
}

// InputValue returns the current input text.
func (v *View) InputValue() string {
	return v.input.Value()
}

// SetInputValue sets the input text.
func (v *View) SetInputValue(value string) {
	v.input.SetValue(value)
}
