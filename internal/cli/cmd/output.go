package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"acconsole/internal/console"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerCell = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	bodyCell   = lipgloss.NewStyle().Padding(0, 1)
)

func printTable(title string, t console.Table) {
	fmt.Printf("\n--- %s ---\n", title)
	out := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		Headers(t.Columns...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return bodyCell
		})
	fmt.Println(out)
}

// report prints a successful outcome or exits with its message.
func report(out console.Outcome) {
	if !out.OK() {
		log.Fatalf("Error: %s", out.Message())
	}
	if msg := out.Message(); msg != "" {
		fmt.Println(msg)
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func prompt(label string) string {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
