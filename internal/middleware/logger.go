package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

// Logger configuration
type LoggerConfig struct {
	EnableColors    bool
	LogRequestBody  bool
	LogResponseBody bool
	MaxBodySize     int64 // bytes captured for logging
	SkipPaths       []string
	Output          *log.Logger
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		EnableColors:    true,
		LogRequestBody:  true,
		LogResponseBody: false, // errors are always logged
		MaxBodySize:     2048,
		SkipPaths:       []string{"/health"},
		Output:          log.Default(),
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	if config.Output == nil {
		config.Output = log.Default()
	}
	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, ok := skip[path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		method := c.Request.Method

		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				requestBody = "[Request body too large to log]"
			} else {
				bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, config.MaxBodySize))
				if err == nil {
					c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
					requestBody = compactJSON(bodyBytes)
				}
			}
		}

		writer := &limitedResponseWriter{
			ResponseWriter: c.Writer,
			maxSize:        config.MaxBodySize,
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		entry := requestLog{
			requestID: c.GetString(RequestIDKey),
			method:    method,
			path:      path,
			query:     c.Request.URL.RawQuery,
			ip:        c.ClientIP(),
			status:    status,
			latency:   time.Since(start),
			size:      writer.size,
			reqBody:   requestBody,
		}
		if writer.body.Len() > 0 && (config.LogResponseBody || status >= 400) {
			entry.respBody = compactJSON(writer.body.Bytes())
		}

		entry.write(config)
	}
}

// limitedResponseWriter keeps at most maxSize bytes of the response for logging
type limitedResponseWriter struct {
	gin.ResponseWriter
	body    bytes.Buffer
	size    int64
	maxSize int64
}

func (w *limitedResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)

	if w.size+int64(n) <= w.maxSize {
		w.body.Write(b[:n])
	}
	w.size += int64(n)

	return n, err
}

type requestLog struct {
	requestID string
	method    string
	path      string
	query     string
	ip        string
	status    int
	latency   time.Duration
	size      int64
	reqBody   string
	respBody  string
}

func (e requestLog) write(config LoggerConfig) {
	color := func(code string) string {
		if config.EnableColors {
			return code
		}
		return ""
	}
	reset := color(ColorReset)

	target := e.path
	if e.query != "" {
		target += "?" + truncateString(e.query, 100)
	}

	config.Output.Printf("%s%s%s %s%s%s %s%d%s %v %s ip=%s id=%s",
		color(getMethodColor(e.method)), e.method, reset,
		color(ColorBlue), target, reset,
		color(getStatusColor(e.status)), e.status, reset,
		e.latency, formatSize(e.size), e.ip, e.requestID)

	if e.reqBody != "" {
		config.Output.Printf("%s    body:%s %s", color(ColorGray), reset, e.reqBody)
	}
	if e.respBody != "" {
		config.Output.Printf("%s    response:%s %s", color(ColorGray), reset, e.respBody)
	}
}

func formatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	} else if bytes < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
}

func getMethodColor(method string) string {
	switch method {
	case "GET":
		return ColorGreen
	case "POST":
		return ColorBlue
	case "PUT":
		return ColorYellow
	case "DELETE":
		return ColorRed
	default:
		return ColorWhite
	}
}

func getStatusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return ColorGreen
	case status >= 300 && status < 400:
		return ColorCyan
	case status >= 400 && status < 500:
		return ColorYellow
	case status >= 500:
		return ColorRed
	default:
		return ColorWhite
	}
}

// compactJSON re-encodes JSON on one line; anything else is truncated as text
func compactJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err == nil {
		return truncateString(buf.String(), 500)
	}
	return truncateString(strings.TrimSpace(string(body)), 200)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
