// Package transport holds http.RoundTripper wrappers used by the metrics client.
package transport

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LogRoundTripper logs every outgoing request at debug level.
type LogRoundTripper struct {
	Base   http.RoundTripper
	Logger *zap.SugaredLogger
}

func (l *LogRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rt := l.Base
	if rt == nil {
		rt = http.DefaultTransport
	}
	if l.Logger == nil {
		return rt.RoundTrip(req)
	}

	start := time.Now()
	resp, err := rt.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		l.Logger.Debugw("request failed",
			"method", req.Method, "url", req.URL.String(), "duration", duration, "error", err)
		return nil, err
	}
	l.Logger.Debugw("request done",
		"method", req.Method, "url", req.URL.String(), "status", resp.StatusCode, "duration", duration)
	return resp, nil
}
