package middleware

import (
	"net/http"
	"time"

	"github.com/amu0701/aman-khelkud-backend-main/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

// Metrics records request count and latency per route template.
// It must run outside Recovery to see the 500 written for a panic; a panic
// that still reaches it is recorded as 500 and re-raised.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		done := metrics.RequestStarted()

		defer func() {
			status := c.Writer.Status()
			rec := recover()
			if rec != nil {
				status = http.StatusInternalServerError
			}

			path := c.FullPath()
			if path == "" {
				path = "unmatched"
			}
			done(c.Request.Method, path, status, time.Since(start))

			if rec != nil {
				panic(rec)
			}
		}()

		c.Next()
	}
}
