package console

import (
	"testing"

	"acconsole/pkg/sdk"

	"github.com/stretchr/testify/require"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		table Table
		want  string
	}{
		{AnnouncementTable(nil), "暂无公告数据"},
		{CompensationTable(nil), "暂无补偿数据"},
		{WhitelistTable(nil), "暂无白名单数据"},
		{ClaimLogTable(nil), "暂无领取日志数据"},
	}
	for _, tt := range tests {
		require.True(t, tt.table.Empty())
		require.Len(t, tt.table.Rows, 1)
		require.Equal(t, tt.want, tt.table.Rows[0][0])
		require.Len(t, tt.table.Rows[0], len(tt.table.Columns))
	}
}

func TestAnnouncementTable(t *testing.T) {
	table := AnnouncementTable([]sdk.Announcement{
		{ID: "2", Name: "&a维护", Sent: true, SendTime: "2024-01-01 10:00", CreateTime: "2023-12-31 09:00"},
		{ID: "1", Name: "活动"},
	})
	require.Equal(t, []string{"2", "1"}, table.Keys)
	require.Equal(t, []string{"2", "维护", "2024-01-01 10:00", "2023-12-31 09:00", StatusSent}, table.Rows[0])
	require.Equal(t, []string{"1", "活动", SendNow, "-", StatusPending}, table.Rows[1])
}

func TestWhitelistAndLogTables(t *testing.T) {
	wl := WhitelistTable([]sdk.WhitelistEntry{{UUID: "u-1", PlayerName: "Steve"}})
	require.Equal(t, []string{"u-1", "Steve", "-"}, wl.Rows[0])

	logs := ClaimLogTable([]sdk.ClaimLog{{ID: "9", PlayerName: "Alex", PlayerUUID: "u-2", CompensationID: "3", ClaimTime: "2024-02-02 12:00"}})
	require.Equal(t, []string{"9", "Alex", "u-2", "3", "2024-02-02 12:00"}, logs.Rows[0])
}
