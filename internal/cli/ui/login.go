package ui

import (
	"acconsole/internal/console"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loginModel struct {
	username   textinput.Model
	password   textinput.Model
	focused    int
	err        string
	submitting bool
}

func newLoginModel() loginModel {
	u := textinput.New()
	u.Placeholder = "用户名"
	u.CharLimit = 32
	u.Width = 30
	u.Focus()

	p := textinput.New()
	p.Placeholder = "密码"
	p.CharLimit = 64
	p.Width = 30
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'

	return loginModel{username: u, password: p}
}

func (l *loginModel) focus() tea.Cmd {
	if l.focused == 1 {
		l.username.Blur()
		return l.password.Focus()
	}
	l.password.Blur()
	return l.username.Focus()
}

func (l *loginModel) blur() {
	l.username.Blur()
	l.password.Blur()
}

func (l loginModel) form() console.LoginForm {
	return console.LoginForm{Username: l.username.Value(), Password: l.password.Value()}
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			m.login.focused = 1 - m.login.focused
			return m, m.login.focus()
		case "enter":
			if m.login.focused == 0 {
				m.login.focused = 1
				return m, m.login.focus()
			}
			if m.login.submitting {
				return m, nil
			}
			m.login.err = ""
			m.login.submitting = true
			return m, loginCmd(m.ctrl, m.login.form())
		}
	}

	var cmd tea.Cmd
	if m.login.focused == 0 {
		m.login.username, cmd = m.login.username.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

func (m Model) loginView() string {
	width := max(m.width, 50)
	title := headerStyle.Width(width).Render("公告补偿管理后台")

	content := labelStyle.Render("用户名") + "\n" + m.login.username.View() + "\n\n" +
		labelStyle.Render("密码") + "\n" + m.login.password.View() + "\n"

	if m.login.submitting {
		content += "\n" + descStyle.Render("登录中...")
	}
	if m.login.err != "" {
		content += "\n" + errorStyle.Render(m.login.err)
	}

	box := baseStyle.
		Width(44).
		Render(content)

	footer := keyHelp("tab", "switch field", "enter", "login", "esc", "quit")

	return lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, box),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, footer),
	)
}
