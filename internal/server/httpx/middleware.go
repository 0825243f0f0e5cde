package httpx

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	gin "github.com/gin-gonic/gin"
)

var requestsTotal, requestsErrored atomic.Int64

// RequestCounters returns totals accumulated by the Logger middleware.
func RequestCounters() (total, errored int64) {
	return requestsTotal.Load(), requestsErrored.Load()
}

// RequestID injects/propagates an X-Request-ID for traceability.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if strings.TrimSpace(rid) == "" {
			b := make([]byte, 16)
			if _, err := rand.Read(b); err == nil {
				rid = hex.EncodeToString(b)
			} else {
				rid = fmt.Sprintf("%d", time.Now().UnixNano())
			}
		}
		c.Set("reqid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// CORS applies an env-driven allowlist; dev default is allow-all.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		w := c.Writer
		allowOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOW_ORIGINS"))
		originHdr := c.Request.Header.Get("Origin")
		if allowOrigins == "" || allowOrigins == "*" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if originHdr != "" {
			for _, o := range strings.Split(allowOrigins, ",") {
				if strings.TrimSpace(o) == originHdr {
					w.Header().Set("Access-Control-Allow-Origin", originHdr)
					w.Header().Add("Vary", "Origin")
					break
				}
			}
		}
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Logger logs one line per request via slog, escalating level on 4xx/5xx.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)
		st := c.Writer.Status()
		requestsTotal.Add(1)
		lvl := slog.LevelInfo
		if st >= 500 {
			lvl = slog.LevelError
			requestsErrored.Add(1)
		} else if st >= 400 {
			lvl = slog.LevelWarn
		}
		rid, _ := c.Get("reqid")
		slog.Log(c, lvl, "http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", st,
			"bytes", c.Writer.Size(),
			"remote", c.ClientIP(),
			"reqid", rid,
			"dur", dur.String(),
		)
	}
}
