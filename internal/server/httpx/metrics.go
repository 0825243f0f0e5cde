package httpx

import (
	"fmt"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	common "github.com/gameshelf/gameshelf/internal/cli/common"
)

// Metrics serves a small plain-text counter dump: uptime, request totals
// and per-level log counts.
func Metrics(service string, startedAt time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, errored := RequestCounters()
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.Status(http.StatusOK)
		w := c.Writer
		fmt.Fprintf(w, "%s_uptime_seconds %d\n", service, int64(time.Since(startedAt).Seconds()))
		fmt.Fprintf(w, "%s_http_requests_total %d\n", service, total)
		fmt.Fprintf(w, "%s_http_requests_errored %d\n", service, errored)
		for lvl, n := range common.GetLogCounters() {
			fmt.Fprintf(w, "%s_log_%s_total %d\n", service, lvl, n)
		}
	}
}
