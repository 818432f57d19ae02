// Package health exposes the liveness probe: a small JSON document with
// the server time, the host's IP, and optional echo strings (useful for
// checking that query/path parameters survive a proxy hop).
package health

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/kashsosa-888/cloud-computing-project/internal/utils/response"
)

// Health is the probe response body.
type Health struct {
	Status        int     `json:"status"`
	StatusMessage string  `json:"status_message"`
	Timestamp     string  `json:"timestamp"`
	IPAddress     string  `json:"ip_address"`
	Echo          *string `json:"echo"`
	PathEcho      *string `json:"path_echo"`
}

// Get handles GET /health and GET /health/{path_echo}.
// ?echo=... is reflected back in the echo field; the {path_echo} path
// segment (when the route has one) in path_echo.
func Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := Health{
			Status:        http.StatusOK,
			StatusMessage: "OK",
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			IPAddress:     hostIP(),
		}
		if v := r.URL.Query().Get("echo"); v != "" {
			h.Echo = &v
		}
		if v := r.PathValue("path_echo"); v != "" {
			h.PathEcho = &v
		}
		response.WriteJSON(w, http.StatusOK, h)
	}
}

// hostIP resolves the host's first IPv4 address, falling back to the
// loopback address when resolution fails (common inside containers).
func hostIP() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	addrs, err := net.LookupIP(hostname)
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		if v4 := addr.To4(); v4 != nil {
			return v4.String()
		}
	}
	return "127.0.0.1"
}
