package ui

import (
	"fmt"
	"os"
	"time"

	"acconsole/internal/console"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenLogin screen = iota
	screenMain
)

type panelMode int

const (
	modeList panelMode = iota
	modeEditor
	modeConfirm
)

// Model is the whole console: a login screen and the tabbed panels.
type Model struct {
	ctrl   *console.Controller
	screen screen
	mode   panelMode
	width  int
	height int

	login loginModel

	nav       *console.Navigator
	panel     console.Panel
	table     table.Model
	loading   bool
	whitelist console.WhitelistSwitch

	editor     editor
	busy       bool
	confirmKey string

	toaster console.Toaster
}

func Run(ctrl *console.Controller) {
	p := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen(), tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running console: %v", err)
		os.Exit(1)
	}
}

func NewModel(ctrl *console.Controller) Model {
	t := table.New(table.WithFocused(true), table.WithHeight(10))
	t.SetStyles(tableStyles())

	m := Model{
		ctrl:  ctrl,
		login: newLoginModel(),
		nav:   console.NewNavigator(),
		table: t,
	}
	if ctrl.Session() != nil {
		m.screen = screenMain
		m.loading = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenMain {
		return refreshCmd(m.ctrl, m.nav.Active())
	}
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width - 6)
		m.table.SetHeight(max(msg.Height-14, 3))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case toastExpiredMsg:
		m.toaster.Dismiss(msg.seq)
		return m, nil

	case loginResultMsg:
		m.login.submitting = false
		cmd := m.notify(msg.out)
		if !msg.out.OK() {
			m.login.err = msg.out.Message()
			return m, cmd
		}
		return m, tea.Batch(cmd, m.enterMain())

	case panelMsg:
		if msg.out.SessionExpired() && m.screen == screenMain {
			return m.fail(msg.out)
		}
		if m.stale(msg.panel.Module) {
			return m, nil
		}
		m.loading = false
		if !msg.out.OK() {
			return m.fail(msg.out)
		}
		m.panel = msg.panel
		m.applyTable()
		if msg.panel.Module == console.ModuleWhitelist && !m.whitelist.Pending() {
			m.whitelist.Set(msg.panel.WhitelistEnabled)
		}
		return m, nil

	case editorLoadedMsg:
		m.busy = false
		if msg.out.SessionExpired() && m.screen == screenMain {
			return m.fail(msg.out)
		}
		if m.stale(msg.editor.module) || m.mode != modeList {
			return m, nil
		}
		if !msg.out.OK() {
			return m.fail(msg.out)
		}
		m.editor = msg.editor
		m.mode = modeEditor
		return m, m.editor.setFocus(0)

	case mutationMsg:
		m.busy = false
		if !msg.out.OK() {
			return m.fail(msg.out)
		}
		m.mode = modeList
		m.confirmKey = ""
		return m, tea.Batch(m.notify(msg.out), m.refresh())

	case toggleMsg:
		if msg.out.OK() {
			m.whitelist.Commit()
		} else {
			m.whitelist.Rollback()
			if msg.out.SessionExpired() {
				return m.fail(msg.out)
			}
		}
		return m, m.notify(msg.out)
	}

	if m.screen == screenLogin {
		return m.updateLogin(msg)
	}
	return m.updateMain(msg)
}

// fail shows the outcome's notice. A rejected session returns to login.
func (m Model) fail(out console.Outcome) (tea.Model, tea.Cmd) {
	cmd := m.notify(out)
	if out.SessionExpired() {
		m.screen = screenLogin
		m.mode = modeList
		m.busy = false
		m.loading = false
		m.confirmKey = ""
		m.panel = console.Panel{}
		m.whitelist = console.WhitelistSwitch{}
		m.login = newLoginModel()
		m.nav = console.NewNavigator()
		return m, tea.Batch(cmd, m.login.focus())
	}
	return m, cmd
}

// stale reports whether a result for mod arrived after the operator left
// that panel.
func (m Model) stale(mod console.Module) bool {
	return m.screen != screenMain || mod != m.nav.Active()
}

// notify shows the outcome's notice and schedules its dismissal.
func (m *Model) notify(out console.Outcome) tea.Cmd {
	if out.Notice == nil {
		return nil
	}
	seq := m.toaster.Show(*out.Notice)
	return tea.Tick(console.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) enterMain() tea.Cmd {
	m.screen = screenMain
	m.mode = modeList
	m.nav = console.NewNavigator()
	m.login.blur()
	return m.refresh()
}

func (m *Model) refresh() tea.Cmd {
	m.loading = true
	return refreshCmd(m.ctrl, m.nav.Active())
}

func (m *Model) switchTo(target console.Module) tea.Cmd {
	m.nav.Switch(target)
	m.panel = console.Panel{Module: m.nav.Active()}
	m.table.SetRows(nil)
	return m.refresh()
}

func (m *Model) applyTable() {
	t := m.panel.Table
	cols := make([]table.Column, len(t.Columns))
	for i, title := range t.Columns {
		w := lipgloss.Width(title)
		for _, row := range t.Rows {
			if i < len(row) {
				w = max(w, lipgloss.Width(row[i]))
			}
		}
		cols[i] = table.Column{Title: title, Width: min(w+2, 40)}
	}
	if t.Empty() && len(cols) > 0 {
		cols[0].Width = max(cols[0].Width, 20)
	}

	rows := make([]table.Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = table.Row(r)
	}

	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// selectedKey is the id of the highlighted row, empty on a placeholder.
func (m Model) selectedKey() string {
	keys := m.panel.Table.Keys
	i := m.table.Cursor()
	if i < 0 || i >= len(keys) {
		return ""
	}
	return keys[i]
}

func (m Model) View() string {
	var body string
	if m.screen == screenLogin {
		body = m.loginView()
	} else {
		body = m.mainView()
	}
	if n, ok := m.toaster.Current(); ok {
		toast := toastStyle(n.Severity).Render(toastIcon(n.Severity) + " " + n.Message)
		body = lipgloss.JoinVertical(lipgloss.Right, toast, body)
	}
	return body
}
