package console

import (
	"context"
	"errors"
	"log/slog"

	"acconsole/internal/domain"
	"acconsole/pkg/sdk"
)

const ExpiredMessage = "登录失效，请重新登录"

// Backend is the plugin API as the console uses it. *sdk.Client satisfies it.
type Backend interface {
	ListAnnouncements(ctx context.Context) ([]sdk.Announcement, error)
	SaveAnnouncement(ctx context.Context, req sdk.SaveAnnouncementRequest) error
	DeleteAnnouncement(ctx context.Context, id string) error
	ListCompensations(ctx context.Context) ([]sdk.Compensation, error)
	SaveCompensation(ctx context.Context, req sdk.SaveCompensationRequest) error
	DeleteCompensation(ctx context.Context, id string) error
	GetWhitelist(ctx context.Context) (*sdk.Whitelist, error)
	SetWhitelistEnabled(ctx context.Context, enabled bool) error
	AddWhitelist(ctx context.Context, uuid, name string) error
	DeleteWhitelist(ctx context.Context, uuid string) error
	ListClaimLogs(ctx context.Context) ([]sdk.ClaimLog, error)
}

// Sessions is implemented by *session.Manager.
type Sessions interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Logout() error
	Current() *domain.Session
}

// Outcome is what an operator action produced: an optional notice for the
// toast and the underlying error, if any.
type Outcome struct {
	Notice *Notice
	Err    error
}

// SessionExpired reports whether the backend rejected the session. The
// front end must drop back to the login view regardless of the panel.
func (o Outcome) SessionExpired() bool {
	return errors.Is(o.Err, sdk.ErrUnauthorized)
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

// Message is the notice text, if any.
func (o Outcome) Message() string {
	if o.Notice == nil {
		return ""
	}
	return o.Notice.Message
}

// Panel is a rendered module list.
type Panel struct {
	Module           Module
	Table            Table
	WhitelistEnabled bool
}

type Controller struct {
	backend  Backend
	sessions Sessions
	logger   *slog.Logger
}

func NewController(backend Backend, sessions Sessions, logger *slog.Logger) *Controller {
	return &Controller{backend: backend, sessions: sessions, logger: logger}
}

func (c *Controller) Session() *domain.Session {
	return c.sessions.Current()
}

func (c *Controller) Login(ctx context.Context, form LoginForm) (*domain.Session, Outcome) {
	username, password, err := form.Validate()
	if err != nil {
		return nil, c.failure(err, "登录")
	}
	s, err := c.sessions.Login(ctx, username, password)
	if err != nil {
		var apiErr *sdk.APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = "登录失败"
			}
			return nil, Outcome{Notice: Failure(msg), Err: err}
		}
		c.logger.Error("Login request failed", slog.Any("error", err))
		return nil, Outcome{Notice: Failure("网络错误，请重试"), Err: err}
	}
	return s, Outcome{Notice: Success("登录成功")}
}

func (c *Controller) Logout() Outcome {
	if err := c.sessions.Logout(); err != nil {
		c.logger.Error("Failed to clear session", slog.Any("error", err))
	}
	return Outcome{Notice: Success("已退出登录")}
}

// Refresh reloads the list behind a module. Successful loads carry no
// notice.
func (c *Controller) Refresh(ctx context.Context, m Module) (Panel, Outcome) {
	p := Panel{Module: m}
	switch m {
	case ModuleAnnouncement:
		list, out := c.LoadAnnouncements(ctx)
		if !out.OK() {
			return p, out
		}
		p.Table = AnnouncementTable(list)
	case ModuleCompensation:
		list, out := c.LoadCompensations(ctx)
		if !out.OK() {
			return p, out
		}
		p.Table = CompensationTable(list)
	case ModuleWhitelist:
		wl, out := c.LoadWhitelist(ctx)
		if !out.OK() {
			return p, out
		}
		p.Table = WhitelistTable(wl.Entries)
		p.WhitelistEnabled = wl.Enabled
	case ModuleLog:
		list, out := c.LoadClaimLogs(ctx)
		if !out.OK() {
			return p, out
		}
		p.Table = ClaimLogTable(list)
	}
	return p, Outcome{}
}

func (c *Controller) LoadAnnouncements(ctx context.Context) ([]sdk.Announcement, Outcome) {
	list, err := c.backend.ListAnnouncements(ctx)
	if err != nil {
		return nil, c.failure(err, "加载公告")
	}
	return list, Outcome{}
}

// EditAnnouncement prepares the editor. An empty id yields a blank form;
// otherwise the list is fetched again and searched for the id.
func (c *Controller) EditAnnouncement(ctx context.Context, id string) (AnnouncementForm, Outcome) {
	if id == "" {
		return AnnouncementForm{}, Outcome{}
	}
	list, out := c.LoadAnnouncements(ctx)
	if !out.OK() {
		return AnnouncementForm{}, out
	}
	for _, a := range list {
		if a.ID == id {
			return AnnouncementFormFrom(a), Outcome{}
		}
	}
	return AnnouncementForm{}, c.failure(&sdk.APIError{Message: "公告不存在"}, "加载公告")
}

func (c *Controller) SaveAnnouncement(ctx context.Context, form AnnouncementForm) Outcome {
	req, err := form.Request()
	if err != nil {
		return c.failure(err, "保存公告")
	}
	if err := c.backend.SaveAnnouncement(ctx, req); err != nil {
		return c.failure(err, "保存公告")
	}
	if form.Editing() {
		return Outcome{Notice: Success("公告编辑成功")}
	}
	return Outcome{Notice: Success("公告新增成功")}
}

func (c *Controller) DeleteAnnouncement(ctx context.Context, id string) Outcome {
	if err := c.backend.DeleteAnnouncement(ctx, id); err != nil {
		return c.failure(err, "删除公告")
	}
	return Outcome{Notice: Success("公告删除成功")}
}

func (c *Controller) LoadCompensations(ctx context.Context) ([]sdk.Compensation, Outcome) {
	list, err := c.backend.ListCompensations(ctx)
	if err != nil {
		return nil, c.failure(err, "加载补偿")
	}
	return list, Outcome{}
}

func (c *Controller) EditCompensation(ctx context.Context, id string) (CompensationForm, Outcome) {
	if id == "" {
		return NewCompensationForm(), Outcome{}
	}
	list, out := c.LoadCompensations(ctx)
	if !out.OK() {
		return CompensationForm{}, out
	}
	for _, comp := range list {
		if comp.ID == id {
			return CompensationFormFrom(comp), Outcome{}
		}
	}
	return CompensationForm{}, c.failure(&sdk.APIError{Message: "补偿不存在"}, "加载补偿")
}

func (c *Controller) SaveCompensation(ctx context.Context, form CompensationForm) Outcome {
	req, err := form.Request()
	if err != nil {
		return c.failure(err, "保存补偿")
	}
	if err := c.backend.SaveCompensation(ctx, req); err != nil {
		return c.failure(err, "保存补偿")
	}
	if form.Editing() {
		return Outcome{Notice: Success("补偿编辑成功")}
	}
	return Outcome{Notice: Success("补偿新增成功")}
}

func (c *Controller) DeleteCompensation(ctx context.Context, id string) Outcome {
	if err := c.backend.DeleteCompensation(ctx, id); err != nil {
		return c.failure(err, "删除补偿")
	}
	return Outcome{Notice: Success("补偿删除成功")}
}

func (c *Controller) LoadWhitelist(ctx context.Context) (*sdk.Whitelist, Outcome) {
	wl, err := c.backend.GetWhitelist(ctx)
	if err != nil {
		return nil, c.failure(err, "加载白名单")
	}
	return wl, Outcome{}
}

// SetWhitelistEnabled sends the new switch value. Callers roll their
// switch back when the outcome is not OK.
func (c *Controller) SetWhitelistEnabled(ctx context.Context, enabled bool) Outcome {
	if err := c.backend.SetWhitelistEnabled(ctx, enabled); err != nil {
		return c.failure(err, "切换白名单状态")
	}
	if enabled {
		return Outcome{Notice: Success("白名单已启用")}
	}
	return Outcome{Notice: Success("白名单已禁用")}
}

func (c *Controller) AddWhitelist(ctx context.Context, form WhitelistForm) Outcome {
	uuid, name, err := form.Validate()
	if err != nil {
		return c.failure(err, "添加白名单")
	}
	if err := c.backend.AddWhitelist(ctx, uuid, name); err != nil {
		return c.failure(err, "添加白名单")
	}
	return Outcome{Notice: Success("白名单添加成功")}
}

func (c *Controller) DeleteWhitelist(ctx context.Context, uuid string) Outcome {
	if err := c.backend.DeleteWhitelist(ctx, uuid); err != nil {
		return c.failure(err, "删除白名单")
	}
	return Outcome{Notice: Success("白名单删除成功")}
}

func (c *Controller) LoadClaimLogs(ctx context.Context) ([]sdk.ClaimLog, Outcome) {
	list, err := c.backend.ListClaimLogs(ctx)
	if err != nil {
		return nil, c.failure(err, "加载日志")
	}
	return list, Outcome{}
}

// failure maps err to the notice shown for action, e.g. "保存公告".
func (c *Controller) failure(err error, action string) Outcome {
	if errors.Is(err, sdk.ErrUnauthorized) {
		return Outcome{Notice: Failure(ExpiredMessage), Err: err}
	}

	var validation *sdk.ValidationError
	if errors.As(err, &validation) {
		return Outcome{Notice: Warning(validation.Message), Err: err}
	}

	var apiErr *sdk.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = action + "失败"
		}
		return Outcome{Notice: Failure(msg), Err: err}
	}

	c.logger.Error("Backend request failed", slog.String("action", action), slog.Any("error", err))
	return Outcome{Notice: Failure("网络错误，" + action + "失败"), Err: err}
}

// DeletePrompt is the confirmation shown before removing an entity of m.
func DeletePrompt(m Module) string {
	switch m {
	case ModuleAnnouncement:
		return "确定要删除该公告吗？"
	case ModuleCompensation:
		return "确定要删除该补偿吗？"
	case ModuleWhitelist:
		return "确定要删除该白名单吗？"
	}
	return ""
}
