package console

import (
	"strconv"
	"strings"

	"acconsole/pkg/sdk"
)

type AnnouncementForm struct {
	ID       string
	Name     string
	Content  string
	SendTime string // datetime-local form, empty for immediate delivery
	Priority string
}

func AnnouncementFormFrom(a sdk.Announcement) AnnouncementForm {
	return AnnouncementForm{
		ID:       a.ID,
		Name:     a.Name,
		Content:  a.Content,
		SendTime: ToWidgetTime(a.SendTime),
		Priority: strconv.Itoa(a.Priority),
	}
}

func (f AnnouncementForm) Editing() bool { return f.ID != "" }

func (f AnnouncementForm) Title() string {
	if f.Editing() {
		return "编辑公告"
	}
	return "新增公告"
}

func (f AnnouncementForm) Request() (sdk.SaveAnnouncementRequest, error) {
	name := strings.TrimSpace(f.Name)
	content := strings.TrimSpace(f.Content)
	if name == "" {
		return sdk.SaveAnnouncementRequest{}, &sdk.ValidationError{Field: "name", Message: "公告名称不能为空"}
	}
	if content == "" {
		return sdk.SaveAnnouncementRequest{}, &sdk.ValidationError{Field: "content", Message: "公告内容不能为空"}
	}
	return sdk.SaveAnnouncementRequest{
		ID:       f.ID,
		Name:     name,
		Content:  content,
		SendTime: FromWidgetTime(f.SendTime),
		Priority: parsePriority(f.Priority),
	}, nil
}

func parsePriority(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

type CompensationForm struct {
	ID          string
	Name        string
	Description string
	Items       *ItemEditor
}

func NewCompensationForm() CompensationForm {
	return CompensationForm{Items: NewItemEditor()}
}

func CompensationFormFrom(c sdk.Compensation) CompensationForm {
	return CompensationForm{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Items:       NewItemEditor(c.Items...),
	}
}

func (f CompensationForm) Editing() bool { return f.ID != "" }

func (f CompensationForm) Title() string {
	if f.Editing() {
		return "编辑补偿"
	}
	return "新增补偿"
}

func (f CompensationForm) Request() (sdk.SaveCompensationRequest, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return sdk.SaveCompensationRequest{}, &sdk.ValidationError{Field: "name", Message: "补偿名称不能为空"}
	}
	var items []sdk.Item
	if f.Items != nil {
		items = f.Items.Collect()
	}
	if len(items) == 0 {
		return sdk.SaveCompensationRequest{}, &sdk.ValidationError{Field: "items", Message: "请至少添加一个物品"}
	}
	return sdk.SaveCompensationRequest{
		ID:          f.ID,
		Name:        name,
		Description: strings.TrimSpace(f.Description),
		Items:       items,
	}, nil
}

type WhitelistForm struct {
	UUID string
	Name string
}

func (f WhitelistForm) Validate() (uuid, name string, err error) {
	uuid = strings.TrimSpace(f.UUID)
	name = strings.TrimSpace(f.Name)
	if uuid == "" {
		return "", "", &sdk.ValidationError{Field: "uuid", Message: "玩家UUID不能为空"}
	}
	if name == "" {
		return "", "", &sdk.ValidationError{Field: "name", Message: "玩家名称不能为空"}
	}
	return uuid, name, nil
}

type LoginForm struct {
	Username string
	Password string
}

func (f LoginForm) Validate() (username, password string, err error) {
	username = strings.TrimSpace(f.Username)
	password = strings.TrimSpace(f.Password)
	if username == "" || password == "" {
		return "", "", &sdk.ValidationError{Field: "credentials", Message: "请输入用户名和密码"}
	}
	return username, password, nil
}
