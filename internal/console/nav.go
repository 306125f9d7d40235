// Package console holds the operator-facing behaviour of the admin panel:
// navigation, forms, the item editor, toasts and the controller that talks
// to the plugin backend. Front ends (the TUI and the CLI) only render what
// this package produces.
package console

import "acconsole/internal/domain"

type Module int

const (
	ModuleAnnouncement Module = iota
	ModuleCompensation
	ModuleWhitelist
	ModuleLog
)

// Modules lists the panels in tab order.
var Modules = []Module{ModuleAnnouncement, ModuleCompensation, ModuleWhitelist, ModuleLog}

func (m Module) String() string {
	switch m {
	case ModuleAnnouncement:
		return "announcement"
	case ModuleCompensation:
		return "compensation"
	case ModuleWhitelist:
		return "whitelist"
	case ModuleLog:
		return "log"
	}
	return "unknown"
}

func (m Module) Title() string {
	switch m {
	case ModuleAnnouncement:
		return "公告管理"
	case ModuleCompensation:
		return "补偿管理"
	case ModuleWhitelist:
		return "白名单管理"
	case ModuleLog:
		return "领取日志"
	}
	return ""
}

// Permission is the node the backend checks for this module.
func (m Module) Permission() string {
	switch m {
	case ModuleAnnouncement:
		return domain.PermAnnouncement
	case ModuleCompensation:
		return domain.PermCompensation
	case ModuleWhitelist:
		return domain.PermWhitelist
	case ModuleLog:
		return domain.PermLog
	}
	return ""
}

func ParseModule(name string) (Module, bool) {
	for _, m := range Modules {
		if m.String() == name {
			return m, true
		}
	}
	return ModuleAnnouncement, false
}

// Navigator tracks the single visible module. Callers reload the target's
// list after every switch; nothing is cached between visits.
type Navigator struct {
	active Module
}

func NewNavigator() *Navigator {
	return &Navigator{active: ModuleAnnouncement}
}

func (n *Navigator) Active() Module {
	return n.active
}

func (n *Navigator) Switch(target Module) Module {
	for _, m := range Modules {
		if m == target {
			n.active = target
			break
		}
	}
	return n.active
}

func (n *Navigator) Next() Module {
	return n.Switch(Modules[(n.index()+1)%len(Modules)])
}

func (n *Navigator) Prev() Module {
	return n.Switch(Modules[(n.index()+len(Modules)-1)%len(Modules)])
}

func (n *Navigator) index() int {
	for i, m := range Modules {
		if m == n.active {
			return i
		}
	}
	return 0
}
