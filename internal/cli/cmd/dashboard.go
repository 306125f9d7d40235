package cmd

import (
	"acconsole/internal/cli/ui"
)

func RunDashboard() {
	ui.Run(Container.Console)
}
