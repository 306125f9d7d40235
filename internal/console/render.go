package console

import "acconsole/pkg/sdk"

// Table is a rendered list panel. Keys holds the entity id behind each row
// and is empty when the table shows only its placeholder.
type Table struct {
	Columns []string
	Rows    [][]string
	Keys    []string
}

// Empty reports whether the table holds the placeholder row only.
func (t Table) Empty() bool {
	return len(t.Keys) == 0
}

const (
	StatusSent    = "已发送"
	StatusPending = "未发送"
	SendNow       = "立即发送"
)

func placeholder(columns []string, text string) Table {
	row := make([]string, len(columns))
	row[0] = text
	return Table{Columns: columns, Rows: [][]string{row}}
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func AnnouncementTable(list []sdk.Announcement) Table {
	columns := []string{"ID", "名称", "发送时间", "创建时间", "状态"}
	if len(list) == 0 {
		return placeholder(columns, "暂无公告数据")
	}
	t := Table{Columns: columns}
	for _, a := range list {
		sendTime := a.SendTime
		if sendTime == "" {
			sendTime = SendNow
		}
		status := StatusPending
		if a.Sent {
			status = StatusSent
		}
		t.Rows = append(t.Rows, []string{cell(a.ID), cell(StripColor(a.Name)), sendTime, cell(a.CreateTime), status})
		t.Keys = append(t.Keys, a.ID)
	}
	return t
}

func CompensationTable(list []sdk.Compensation) Table {
	columns := []string{"ID", "名称", "描述", "创建时间"}
	if len(list) == 0 {
		return placeholder(columns, "暂无补偿数据")
	}
	t := Table{Columns: columns}
	for _, c := range list {
		t.Rows = append(t.Rows, []string{cell(c.ID), cell(StripColor(c.Name)), cell(StripColor(c.Description)), cell(c.CreateTime)})
		t.Keys = append(t.Keys, c.ID)
	}
	return t
}

func WhitelistTable(list []sdk.WhitelistEntry) Table {
	columns := []string{"UUID", "玩家名称", "添加时间"}
	if len(list) == 0 {
		return placeholder(columns, "暂无白名单数据")
	}
	t := Table{Columns: columns}
	for _, e := range list {
		t.Rows = append(t.Rows, []string{cell(e.UUID), cell(e.PlayerName), cell(e.AddTime)})
		t.Keys = append(t.Keys, e.UUID)
	}
	return t
}

func ClaimLogTable(list []sdk.ClaimLog) Table {
	columns := []string{"ID", "玩家名称", "玩家UUID", "补偿ID", "领取时间"}
	if len(list) == 0 {
		return placeholder(columns, "暂无领取日志数据")
	}
	t := Table{Columns: columns}
	for _, l := range list {
		t.Rows = append(t.Rows, []string{cell(l.ID), cell(l.PlayerName), cell(l.PlayerUUID), cell(l.CompensationID), cell(l.ClaimTime)})
		t.Keys = append(t.Keys, l.ID)
	}
	return t
}
