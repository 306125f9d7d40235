package fakebackend

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"acconsole/internal/domain"
)

func (b *Backend) recordMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		route := r.Method + " " + r.URL.Path

		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   body,
		})
		f, forced := b.failures[route]
		if forced {
			delete(b.failures, route)
		}
		b.mu.Unlock()

		if forced {
			writeError(w, f.status, f.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) authMiddleware(next http.Handler, requiredPermission string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tokenString string
		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			writeError(w, http.StatusUnauthorized, "未登录，请先登录")
			return
		}

		b.mu.Lock()
		username, ok := b.tokens[tokenString]
		a := b.admins[username]
		b.mu.Unlock()

		if !ok {
			writeError(w, http.StatusUnauthorized, "Token失效，请重新登录")
			return
		}

		if !hasPermission(a.permissions, requiredPermission) {
			writeError(w, http.StatusForbidden, "无权限")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func hasPermission(granted []string, node string) bool {
	for _, p := range granted {
		if p == domain.PermAll || p == node {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func writeOK(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": message,
	})
}
