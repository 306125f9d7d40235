package sdk

import (
	"log/slog"
	"net/http"
	"time"
)

// Doer sends a single HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Middleware wraps a Doer. The first middleware passed to the client is the
// outermost one.
type Middleware func(next Doer) Doer

// TokenSource supplies the bearer credential for authenticated calls.
type TokenSource interface {
	Token() string
}

// OnUnauthorized calls hook whenever an authenticated request comes back with
// 401 or 403. Anonymous requests such as login are left alone.
func OnUnauthorized(hook func()) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.Do(req)
			if err != nil {
				return resp, err
			}
			if req.Header.Get("Authorization") != "" && isAuthFailure(resp.StatusCode) {
				hook()
			}
			return resp, nil
		})
	}
}

// Logging records every request with its outcome and latency.
func Logging(logger *slog.Logger) Middleware {
	return func(next Doer) Doer {
		return DoerFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.Do(req)
			if err != nil {
				logger.Error("request failed",
					slog.String("method", req.Method),
					slog.String("path", req.URL.Path),
					slog.Any("error", err),
				)
				return resp, err
			}
			logger.Debug("request completed",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", resp.StatusCode),
				slog.Duration("elapsed", time.Since(start)),
			)
			return resp, nil
		})
	}
}
