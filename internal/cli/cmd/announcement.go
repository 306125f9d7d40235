package cmd

import (
	"log"

	"acconsole/internal/console"

	"github.com/spf13/cobra"
)

var announcementCmd = &cobra.Command{
	Use:     "announcement",
	Aliases: []string{"ann"},
	Short:   "Manage announcements",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		RootCmd.PersistentPreRun(cmd, args)
		requireSession()
	},
}

var annYes bool

var announcementListCmd = &cobra.Command{
	Use:   "list",
	Short: "List announcements",
	Run: func(cmd *cobra.Command, args []string) {
		list, out := Container.Console.LoadAnnouncements(ctx())
		if !out.OK() {
			log.Fatalf("Error: %s", out.Message())
		}
		printTable("ANNOUNCEMENTS", console.AnnouncementTable(list))
	},
}

var announcementSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create an announcement, or update one with --id",
	Run: func(cmd *cobra.Command, args []string) {
		handleAnnouncementSave(cmd)
	},
}

var announcementDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an announcement",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !annYes && !confirm(console.DeletePrompt(console.ModuleAnnouncement)) {
			return
		}
		report(Container.Console.DeleteAnnouncement(ctx(), args[0]))
	},
}

func init() {
	addAnnouncementFlags(announcementSaveCmd)
	announcementDeleteCmd.Flags().BoolVarP(&annYes, "yes", "y", false, "Skip confirmation")

	announcementCmd.AddCommand(announcementListCmd, announcementSaveCmd, announcementDeleteCmd)
	RootCmd.AddCommand(announcementCmd)
}

func addAnnouncementFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("id", "", "Announcement to update")
	flags.String("name", "", "Announcement name")
	flags.String("content", "", "Message text, & colour codes allowed")
	flags.String("send-time", "", "Delivery time as \"YYYY-MM-DD HH:MM\"; empty sends immediately")
	flags.String("priority", "0", "Priority")
}

// applyAnnouncementFlags overlays the flags given on the command line. When
// editing, flags left out keep the stored values.
func applyAnnouncementFlags(cmd *cobra.Command, form console.AnnouncementForm) console.AnnouncementForm {
	flags := cmd.Flags()
	if flags.Changed("name") {
		form.Name, _ = flags.GetString("name")
	}
	if flags.Changed("content") {
		form.Content, _ = flags.GetString("content")
	}
	if flags.Changed("send-time") {
		sendTime, _ := flags.GetString("send-time")
		form.SendTime = console.ToWidgetTime(sendTime)
	}
	if flags.Changed("priority") || !form.Editing() {
		form.Priority, _ = flags.GetString("priority")
	}
	return form
}

func handleAnnouncementSave(cmd *cobra.Command) {
	form := console.AnnouncementForm{}
	if id, _ := cmd.Flags().GetString("id"); id != "" {
		var out console.Outcome
		form, out = Container.Console.EditAnnouncement(ctx(), id)
		if !out.OK() {
			log.Fatalf("Error: %s", out.Message())
		}
	}

	report(Container.Console.SaveAnnouncement(ctx(), applyAnnouncementFlags(cmd, form)))
}
