package fakebackend

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"acconsole/pkg/sdk"
)

func (b *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req sdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体格式不正确（非JSON）")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "用户名/密码不能为空")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	a, ok := b.admins[req.Username]
	if !ok {
		writeError(w, http.StatusUnauthorized, "用户名不存在")
		return
	}
	if a.password != req.Password {
		writeError(w, http.StatusUnauthorized, "密码错误")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "登录成功",
		"token":       b.issueToken(req.Username),
		"username":    req.Username,
		"permissions": a.permissions,
	})
}

func (b *Backend) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	data := append([]sdk.Announcement{}, b.announcements...)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": data})
}

func (b *Backend) handleSaveAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req sdk.SaveAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体格式不正确（非JSON）")
		return
	}
	if req.Name == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "公告名称/内容不能为空")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if req.ID != "" {
		for i := range b.announcements {
			if b.announcements[i].ID == req.ID {
				a := &b.announcements[i]
				a.Name, a.Content, a.SendTime, a.Priority = req.Name, req.Content, req.SendTime, req.Priority
				writeOK(w, "公告更新成功")
				return
			}
		}
	}

	id := req.ID
	if id == "" {
		id = b.newID()
	}
	b.announcements = append(b.announcements, sdk.Announcement{
		ID:         id,
		Name:       req.Name,
		Content:    req.Content,
		Priority:   req.Priority,
		SendTime:   req.SendTime,
		CreateTime: time.Now().Format(timeLayout),
	})
	writeOK(w, "公告添加成功")
}

func (b *Backend) handleDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "公告ID不能为空")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.announcements {
		if b.announcements[i].ID == id {
			b.announcements = append(b.announcements[:i], b.announcements[i+1:]...)
			writeOK(w, "公告删除成功")
			return
		}
	}
	writeError(w, http.StatusNotFound, "公告不存在")
}

func (b *Backend) handleListCompensations(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	data := append([]sdk.Compensation{}, b.compensations...)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": data})
}

func (b *Backend) handleSaveCompensation(w http.ResponseWriter, r *http.Request) {
	var req sdk.SaveCompensationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体格式不正确（非JSON）")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "补偿名称/说明不能为空")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if req.ID != "" {
		for i := range b.compensations {
			if b.compensations[i].ID == req.ID {
				c := &b.compensations[i]
				c.Name, c.Description, c.Items = req.Name, req.Description, req.Items
				writeOK(w, "补偿更新成功")
				return
			}
		}
	}

	id := req.ID
	if id == "" {
		id = b.newID()
	}
	b.compensations = append(b.compensations, sdk.Compensation{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Items:       req.Items,
		CreateTime:  time.Now().Format(timeLayout),
	})
	writeOK(w, "补偿添加成功")
}

func (b *Backend) handleDeleteCompensation(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "补偿ID不能为空")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.compensations {
		if b.compensations[i].ID == id {
			b.compensations = append(b.compensations[:i], b.compensations[i+1:]...)
			writeOK(w, "补偿删除成功")
			return
		}
	}
	writeError(w, http.StatusNotFound, "补偿不存在")
}

func (b *Backend) handleGetWhitelist(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	data := append([]sdk.WhitelistEntry{}, b.whitelist...)
	enabled := b.whitelistEnabled
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "enabled": enabled, "data": data})
}

func (b *Backend) handleWhitelistAction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action  string `json:"action"`
		Enabled *bool  `json:"enabled"`
		UUID    string `json:"uuid"`
		Name    string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "请求体格式不正确（非JSON）")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch req.Action {
	case "add":
		if strings.TrimSpace(req.UUID) == "" || strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "玩家UUID/名称不能为空")
			return
		}
		b.whitelist = append(b.whitelist, sdk.WhitelistEntry{
			UUID:       req.UUID,
			PlayerName: req.Name,
			AddTime:    time.Now().Format(timeLayout),
		})
		writeOK(w, "白名单添加成功")
	case "toggle":
		if req.Enabled == nil {
			writeError(w, http.StatusBadRequest, "启用状态不能为空（true/false）")
			return
		}
		b.whitelistEnabled = *req.Enabled
		if b.whitelistEnabled {
			writeOK(w, "白名单已启用")
		} else {
			writeOK(w, "白名单已禁用")
		}
	default:
		writeError(w, http.StatusBadRequest, "不支持的操作类型（仅add/toggle）")
	}
}

func (b *Backend) handleDeleteWhitelist(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("uuid"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "玩家UUID不能为空")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.whitelist {
		if b.whitelist[i].UUID == id {
			b.whitelist = append(b.whitelist[:i], b.whitelist[i+1:]...)
			writeOK(w, "白名单删除成功")
			return
		}
	}
	writeError(w, http.StatusNotFound, "白名单不存在")
}

func (b *Backend) handleListLogs(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	data := append([]sdk.ClaimLog{}, b.logs...)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": data})
}
