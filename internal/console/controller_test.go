package console

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"acconsole/internal/domain"
	"acconsole/internal/fakebackend"
	"acconsole/internal/session"
	"acconsole/internal/storage"
	"acconsole/pkg/sdk"

	"github.com/stretchr/testify/require"
)

type harness struct {
	ctrl    *Controller
	backend *fakebackend.Backend
	mgr     *session.Manager
	server  *httptest.Server
}

func newHarness(t *testing.T, perms ...string) *harness {
	t.Helper()
	backend := fakebackend.New()
	backend.AddAdmin("admin", "secret", perms...)
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mgr := session.NewManager(storage.NewMemoryStore(), logger)
	client := sdk.NewClient(srv.URL,
		sdk.WithTokenSource(mgr),
		sdk.WithMiddleware(sdk.OnUnauthorized(mgr.Expire)),
	)
	mgr.SetAuthenticator(client)

	return &harness{
		ctrl:    NewController(client, mgr, logger),
		backend: backend,
		mgr:     mgr,
		server:  srv,
	}
}

func (h *harness) login(t *testing.T) {
	t.Helper()
	_, out := h.ctrl.Login(context.Background(), LoginForm{Username: "admin", Password: "secret"})
	require.True(t, out.OK())
}

func TestControllerLogin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	s, out := h.ctrl.Login(ctx, LoginForm{Username: "admin", Password: "wrong"})
	require.Nil(t, s)
	require.False(t, out.OK())
	require.False(t, out.SessionExpired())
	require.Equal(t, "密码错误", out.Message())
	require.Nil(t, h.ctrl.Session())

	s, out = h.ctrl.Login(ctx, LoginForm{Username: "nobody", Password: "x"})
	require.Nil(t, s)
	require.Equal(t, "用户名不存在", out.Message())

	s, out = h.ctrl.Login(ctx, LoginForm{Username: "admin", Password: "secret"})
	require.True(t, out.OK())
	require.Equal(t, "登录成功", out.Message())
	require.Equal(t, "admin", s.Username)
	require.NotNil(t, h.ctrl.Session())

	out = h.ctrl.Logout()
	require.Equal(t, "已退出登录", out.Message())
	require.Nil(t, h.ctrl.Session())
}

func TestControllerLoginRequiresCredentials(t *testing.T) {
	h := newHarness(t)
	_, out := h.ctrl.Login(context.Background(), LoginForm{Username: "admin"})
	require.Equal(t, SeverityWarning, out.Notice.Severity)
	require.Empty(t, h.backend.Requests())
}

func TestControllerLoginNetworkError(t *testing.T) {
	h := newHarness(t)
	h.server.Close()
	_, out := h.ctrl.Login(context.Background(), LoginForm{Username: "admin", Password: "secret"})
	require.Equal(t, "网络错误，请重试", out.Message())
}

func TestAnnouncementLifecycle(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	ctx := context.Background()

	out := h.ctrl.SaveAnnouncement(ctx, AnnouncementForm{Name: "维护", Content: "今晚维护", SendTime: "2024-01-01T10:00"})
	require.True(t, out.OK())
	require.Equal(t, "公告新增成功", out.Message())

	req, ok := h.backend.LastRequest(http.MethodPost, "/api/announcement")
	require.True(t, ok)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Body, &body))
	require.Equal(t, "2024-01-01 10:00", body["sendTime"])

	list, out := h.ctrl.LoadAnnouncements(ctx)
	require.True(t, out.OK())
	require.Len(t, list, 1)
	id := list[0].ID

	form, out := h.ctrl.EditAnnouncement(ctx, id)
	require.True(t, out.OK())
	require.Equal(t, "编辑公告", form.Title())
	require.Equal(t, "2024-01-01T10:00", form.SendTime)

	form.Content = "明早维护"
	out = h.ctrl.SaveAnnouncement(ctx, form)
	require.Equal(t, "公告编辑成功", out.Message())

	out = h.ctrl.DeleteAnnouncement(ctx, id)
	require.Equal(t, "公告删除成功", out.Message())

	panel, out := h.ctrl.Refresh(ctx, ModuleAnnouncement)
	require.True(t, out.OK())
	require.True(t, panel.Table.Empty())

	out = h.ctrl.DeleteAnnouncement(ctx, id)
	require.Equal(t, "公告不存在", out.Message())
}

func TestEditAnnouncementBlankAndMissing(t *testing.T) {
	h := newHarness(t)
	h.login(t)

	form, out := h.ctrl.EditAnnouncement(context.Background(), "")
	require.True(t, out.OK())
	require.Equal(t, "新增公告", form.Title())

	_, out = h.ctrl.EditAnnouncement(context.Background(), "404")
	require.False(t, out.OK())
	require.Equal(t, "公告不存在", out.Message())
}

func TestCompensationWithoutItemsSkipsNetwork(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	before := len(h.backend.Requests())

	f := NewCompensationForm()
	f.Name = "补偿"
	out := h.ctrl.SaveCompensation(context.Background(), f)
	require.Equal(t, "请至少添加一个物品", out.Message())
	require.Len(t, h.backend.Requests(), before)
}

func TestCompensationLifecycle(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	ctx := context.Background()

	f := NewCompensationForm()
	f.Name = "停服补偿"
	f.Items.Add("diamond", "3", "&b钻石", "感谢支持")
	require.Equal(t, "补偿新增成功", h.ctrl.SaveCompensation(ctx, f).Message())

	list, _ := h.ctrl.LoadCompensations(ctx)
	require.Len(t, list, 1)
	require.Equal(t, []sdk.Item{{Material: "DIAMOND", Amount: 3, CustomName: "&b钻石", Lore: []string{"感谢支持"}}}, list[0].Items)

	edit, out := h.ctrl.EditCompensation(ctx, list[0].ID)
	require.True(t, out.OK())
	require.Equal(t, 1, edit.Items.Len())
	edit.Items.Add("apple", "10", "", "")
	require.Equal(t, "补偿编辑成功", h.ctrl.SaveCompensation(ctx, edit).Message())

	list, _ = h.ctrl.LoadCompensations(ctx)
	require.Len(t, list[0].Items, 2)

	require.Equal(t, "补偿删除成功", h.ctrl.DeleteCompensation(ctx, list[0].ID).Message())
}

func TestWhitelistToggleRollback(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	ctx := context.Background()

	wl, out := h.ctrl.LoadWhitelist(ctx)
	require.True(t, out.OK())

	var sw WhitelistSwitch
	sw.Set(wl.Enabled)

	h.backend.FailNext("POST /api/whitelist", http.StatusInternalServerError, "")
	next, _ := sw.Begin()
	out = h.ctrl.SetWhitelistEnabled(ctx, next)
	require.Equal(t, "切换白名单状态失败", out.Message())
	sw.Rollback()
	require.False(t, sw.Enabled())
	require.False(t, h.backend.WhitelistEnabled())

	next, _ = sw.Begin()
	out = h.ctrl.SetWhitelistEnabled(ctx, next)
	require.Equal(t, "白名单已启用", out.Message())
	sw.Commit()
	require.True(t, sw.Enabled())
	require.True(t, h.backend.WhitelistEnabled())

	h.server.Close()
	next, _ = sw.Begin()
	out = h.ctrl.SetWhitelistEnabled(ctx, next)
	require.Equal(t, "网络错误，切换白名单状态失败", out.Message())
	sw.Rollback()
	require.True(t, sw.Enabled())
}

func TestWhitelistEntries(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	ctx := context.Background()

	before := len(h.backend.Requests())
	out := h.ctrl.AddWhitelist(ctx, WhitelistForm{UUID: "u-1"})
	require.Equal(t, "玩家名称不能为空", out.Message())
	require.Len(t, h.backend.Requests(), before)

	require.Equal(t, "白名单添加成功", h.ctrl.AddWhitelist(ctx, WhitelistForm{UUID: "u-1", Name: "Steve"}).Message())

	panel, out := h.ctrl.Refresh(ctx, ModuleWhitelist)
	require.True(t, out.OK())
	require.Equal(t, []string{"u-1"}, panel.Table.Keys)

	require.Equal(t, "白名单删除成功", h.ctrl.DeleteWhitelist(ctx, "u-1").Message())
}

func TestClaimLogs(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.AddClaimLog("Alex", "u-2", "3")

	panel, out := h.ctrl.Refresh(context.Background(), ModuleLog)
	require.True(t, out.OK())
	require.Len(t, panel.Table.Keys, 1)
	require.Equal(t, "Alex", panel.Table.Rows[0][1])
}

func TestForbiddenLoadExpiresSession(t *testing.T) {
	h := newHarness(t, domain.PermAnnouncement)
	h.login(t)

	_, out := h.ctrl.Refresh(context.Background(), ModuleLog)
	require.True(t, out.SessionExpired())
	require.Equal(t, ExpiredMessage, out.Message())
	require.Nil(t, h.ctrl.Session())
}

func TestRevokedTokenExpiresSession(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.backend.RevokeTokens()

	out := h.ctrl.DeleteCompensation(context.Background(), "1")
	require.True(t, out.SessionExpired())
	require.Nil(t, h.mgr.Current())
}

func TestTransportFailureMessages(t *testing.T) {
	h := newHarness(t)
	h.login(t)
	h.server.Close()

	_, out := h.ctrl.LoadAnnouncements(context.Background())
	require.Equal(t, "网络错误，加载公告失败", out.Message())
	require.False(t, out.SessionExpired())

	_, out = h.ctrl.Refresh(context.Background(), ModuleLog)
	require.Equal(t, "网络错误，加载日志失败", out.Message())
}

func TestDeletePrompt(t *testing.T) {
	require.Equal(t, "确定要删除该公告吗？", DeletePrompt(ModuleAnnouncement))
	require.Equal(t, "确定要删除该补偿吗？", DeletePrompt(ModuleCompensation))
	require.Equal(t, "确定要删除该白名单吗？", DeletePrompt(ModuleWhitelist))
	require.Empty(t, DeletePrompt(ModuleLog))
}
