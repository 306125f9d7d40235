package ui

import (
	"fmt"
	"strings"

	"acconsole/internal/console"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeEditor:
		return m.updateEditor(msg)
	case modeConfirm:
		return m.updateConfirm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	active := m.nav.Active()
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "1", "2", "3", "4":
		target := console.Modules[int(key.Runes[0]-'1')]
		return m, m.switchTo(target)
	case "tab":
		return m, m.switchTo(m.nav.Next())
	case "shift+tab":
		return m, m.switchTo(m.nav.Prev())
	case "r":
		return m, m.refresh()
	case "L":
		out := m.ctrl.Logout()
		cmd := m.notify(out)
		m.screen = screenLogin
		m.mode = modeList
		m.busy = false
		m.panel = console.Panel{}
		m.whitelist = console.WhitelistSwitch{}
		m.login = newLoginModel()
		return m, tea.Batch(cmd, m.login.focus())
	case "n":
		if active == console.ModuleLog || m.busy {
			return m, nil
		}
		m.busy = true
		return m, openEditorCmd(m.ctrl, active, "")
	case "e", "enter":
		id := m.selectedKey()
		if id == "" || m.busy || (active != console.ModuleAnnouncement && active != console.ModuleCompensation) {
			return m, nil
		}
		m.busy = true
		return m, openEditorCmd(m.ctrl, active, id)
	case "d", "delete":
		id := m.selectedKey()
		if id == "" || active == console.ModuleLog {
			return m, nil
		}
		m.confirmKey = id
		m.mode = modeConfirm
		return m, nil
	case "t", " ":
		if active != console.ModuleWhitelist {
			return m, nil
		}
		next, ok := m.whitelist.Begin()
		if !ok {
			return m, nil
		}
		return m, toggleCmd(m.ctrl, next)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.mode = modeList
			return m, nil
		case "ctrl+s":
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, saveCmd(m.ctrl, m.editor)
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "enter":
		id := m.confirmKey
		m.confirmKey = ""
		m.mode = modeList
		m.busy = true
		return m, deleteCmd(m.ctrl, m.nav.Active(), id)
	case "n", "esc":
		m.confirmKey = ""
		m.mode = modeList
	}
	return m, nil
}

func (m Model) tabsView() string {
	s := m.ctrl.Session()
	tabs := make([]string, 0, len(console.Modules))
	for i, mod := range console.Modules {
		label := fmt.Sprintf("%d %s", i+1, mod.Title())
		switch {
		case mod == m.nav.Active():
			tabs = append(tabs, activeTabStyle.Render(label))
		case s != nil && !s.HasPermission(mod.Permission()):
			tabs = append(tabs, lockedTabStyle.Render(label))
		default:
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) mainView() string {
	width := max(m.width, 60)

	operator := ""
	if s := m.ctrl.Session(); s != nil {
		operator = s.Username
	}
	title := headerStyle.Width(width).Render("公告补偿管理后台  |  " + operator)

	var content string
	switch m.mode {
	case modeEditor:
		content = m.editor.View()
	case modeConfirm:
		content = fmt.Sprintf("\n%s\n\n%s\n\n(y/n)",
			console.DeletePrompt(m.nav.Active()),
			errorStyle.Bold(true).Render(m.confirmKey))
	default:
		content = m.listView()
	}

	box := baseStyle.Width(width - 4).Render(content)

	var help string
	switch m.mode {
	case modeEditor:
		help = ""
	case modeConfirm:
		help = keyHelp("y", "delete", "n", "cancel")
	default:
		help = m.listHelp()
	}

	parts := []string{title, m.tabsView(), box}
	if help != "" {
		parts = append(parts, footerStyle.Width(width-4).Render(help))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) listView() string {
	var b strings.Builder
	if m.nav.Active() == console.ModuleWhitelist {
		state := switchOffStyle.Render("○ 已禁用")
		if m.whitelist.Enabled() {
			state = switchOnStyle.Render("● 已启用")
		}
		b.WriteString("白名单状态: " + state)
		if m.whitelist.Pending() {
			b.WriteString(descStyle.Render("  (提交中)"))
		}
		b.WriteString("\n\n")
	}
	if m.loading {
		b.WriteString(descStyle.Render("加载中...") + "\n")
	}
	b.WriteString(m.table.View())
	return b.String()
}

func (m Model) listHelp() string {
	pairs := []string{"1-4/tab", "switch"}
	switch m.nav.Active() {
	case console.ModuleAnnouncement, console.ModuleCompensation:
		pairs = append(pairs, "n", "new", "e", "edit", "d", "delete")
	case console.ModuleWhitelist:
		pairs = append(pairs, "n", "add", "d", "delete", "t", "toggle")
	}
	pairs = append(pairs, "r", "refresh", "L", "logout", "q", "quit")
	return keyHelp(pairs...)
}
