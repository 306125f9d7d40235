package ui

import (
	"context"

	"acconsole/internal/console"
	"acconsole/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

type loginResultMsg struct {
	session *domain.Session
	out     console.Outcome
}

type panelMsg struct {
	panel console.Panel
	out   console.Outcome
}

type editorLoadedMsg struct {
	editor editor
	out    console.Outcome
}

type mutationMsg struct {
	module console.Module
	out    console.Outcome
}

type toggleMsg struct {
	enabled bool
	out     console.Outcome
}

type toastExpiredMsg struct {
	seq uint64
}

func loginCmd(ctrl *console.Controller, form console.LoginForm) tea.Cmd {
	return func() tea.Msg {
		s, out := ctrl.Login(context.Background(), form)
		return loginResultMsg{session: s, out: out}
	}
}

func refreshCmd(ctrl *console.Controller, m console.Module) tea.Cmd {
	return func() tea.Msg {
		p, out := ctrl.Refresh(context.Background(), m)
		return panelMsg{panel: p, out: out}
	}
}

func openEditorCmd(ctrl *console.Controller, m console.Module, id string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		switch m {
		case console.ModuleAnnouncement:
			form, out := ctrl.EditAnnouncement(ctx, id)
			return editorLoadedMsg{editor: newAnnouncementEditor(form), out: out}
		case console.ModuleCompensation:
			form, out := ctrl.EditCompensation(ctx, id)
			return editorLoadedMsg{editor: newCompensationEditor(form), out: out}
		default:
			return editorLoadedMsg{editor: newWhitelistEditor()}
		}
	}
}

// saveCmd reads the editor synchronously so the request never races with
// later keystrokes.
func saveCmd(ctrl *console.Controller, e editor) tea.Cmd {
	m := e.module
	switch m {
	case console.ModuleAnnouncement:
		form := e.announcementForm()
		return func() tea.Msg {
			return mutationMsg{module: m, out: ctrl.SaveAnnouncement(context.Background(), form)}
		}
	case console.ModuleCompensation:
		form := e.compensationForm()
		return func() tea.Msg {
			return mutationMsg{module: m, out: ctrl.SaveCompensation(context.Background(), form)}
		}
	case console.ModuleWhitelist:
		form := e.whitelistForm()
		return func() tea.Msg {
			return mutationMsg{module: m, out: ctrl.AddWhitelist(context.Background(), form)}
		}
	}
	return nil
}

func deleteCmd(ctrl *console.Controller, m console.Module, id string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var out console.Outcome
		switch m {
		case console.ModuleAnnouncement:
			out = ctrl.DeleteAnnouncement(ctx, id)
		case console.ModuleCompensation:
			out = ctrl.DeleteCompensation(ctx, id)
		case console.ModuleWhitelist:
			out = ctrl.DeleteWhitelist(ctx, id)
		}
		return mutationMsg{module: m, out: out}
	}
}

func toggleCmd(ctrl *console.Controller, enabled bool) tea.Cmd {
	return func() tea.Msg {
		return toggleMsg{enabled: enabled, out: ctrl.SetWhitelistEnabled(context.Background(), enabled)}
	}
}
