package main

import (
	"acconsole/internal/cli/cmd"
)

func main() {
	cmd.Execute()
}
