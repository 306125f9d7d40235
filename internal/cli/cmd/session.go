package cmd

import (
	"fmt"
	"log"
	"strings"

	"acconsole/internal/console"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var loginUser, loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the plugin backend",
	Run: func(cmd *cobra.Command, args []string) {
		handleLogin(loginUser, loginPassword)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	Run: func(cmd *cobra.Command, args []string) {
		report(Container.Console.Logout())
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in operator",
	Run: func(cmd *cobra.Command, args []string) {
		handleWhoami()
	},
}

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Open the plugin's web panel in the browser",
	Run: func(cmd *cobra.Command, args []string) {
		url := Container.Client.PanelURL()
		fmt.Printf("Opening %s\n", url)
		if err := browser.OpenURL(url); err != nil {
			log.Fatalf("Error opening browser: %v", err)
		}
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUser, "username", "u", "", "Admin username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Admin password")

	RootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, webCmd)
}

func handleLogin(username, password string) {
	if username == "" {
		username = prompt("Username")
	}
	if password == "" {
		password = prompt("Password")
	}

	s, out := Container.Console.Login(ctx(), console.LoginForm{Username: username, Password: password})
	report(out)
	fmt.Printf("Logged in as %s\n", s.Username)
}

func handleWhoami() {
	s := Container.Sessions.Current()
	if s == nil {
		fmt.Println("Not logged in.")
		return
	}

	fmt.Println("\n--- SESSION ---")
	fmt.Printf("Operator:    %s\n", s.Username)
	fmt.Printf("Backend:     %s\n", Container.Client.BaseURL())
	fmt.Printf("Permissions: %s\n", strings.Join(s.Permissions, ", "))

	fmt.Println("\n--- MODULES ---")
	for _, m := range console.Modules {
		access := "yes"
		if !s.HasPermission(m.Permission()) {
			access = "no"
		}
		fmt.Printf("%-12s %-10s %s\n", m.String(), m.Title(), access)
	}
}
