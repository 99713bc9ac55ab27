package http

import (
	"net/http"
	"time"

	"github.com/presensi-app/presensi-backend-go/internal/handler/http/response"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/clock"
)

// ServerTime reports the server's current time in the canonical timezone,
// so clients can render clock-in windows without trusting the device clock.
func ServerTime(c clock.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := c.Now()
		response.Success(w, map[string]interface{}{
			"server_time": now.Format(time.RFC3339),
			"timezone":    c.Location().String(),
			"date":        now.Format("2006-01-02"),
		})
	}
}
