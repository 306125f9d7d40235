package cmd

import (
	"testing"

	"acconsole/internal/console"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func saveFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "save"}
	addAnnouncementFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestApplyAnnouncementFlags(t *testing.T) {
	stored := console.AnnouncementForm{
		ID:       "7",
		Name:     "维护",
		Content:  "&c服务器维护",
		SendTime: "2024-01-01T10:00",
		Priority: "5",
	}

	tests := []struct {
		name string
		args []string
		want console.AnnouncementForm
	}{
		{
			name: "untouched flags keep stored values",
			args: []string{"--name", "更新"},
			want: console.AnnouncementForm{ID: "7", Name: "更新", Content: "&c服务器维护", SendTime: "2024-01-01T10:00", Priority: "5"},
		},
		{
			name: "explicit zero priority resets",
			args: []string{"--priority", "0"},
			want: console.AnnouncementForm{ID: "7", Name: "维护", Content: "&c服务器维护", SendTime: "2024-01-01T10:00", Priority: "0"},
		},
		{
			name: "empty send time sends immediately",
			args: []string{"--send-time="},
			want: console.AnnouncementForm{ID: "7", Name: "维护", Content: "&c服务器维护", SendTime: "", Priority: "5"},
		},
		{
			name: "send time converted to widget form",
			args: []string{"--send-time", "2024-02-03 08:30"},
			want: console.AnnouncementForm{ID: "7", Name: "维护", Content: "&c服务器维护", SendTime: "2024-02-03T08:30", Priority: "5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyAnnouncementFlags(saveFlags(t, tt.args...), stored)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestApplyAnnouncementFlagsCreate(t *testing.T) {
	form := applyAnnouncementFlags(saveFlags(t, "--name", "公告", "--content", "内容"), console.AnnouncementForm{})

	require.False(t, form.Editing())
	require.Equal(t, "0", form.Priority)

	req, err := form.Request()
	require.NoError(t, err)
	require.Equal(t, "", req.SendTime)
	require.Equal(t, 0, req.Priority)
}
