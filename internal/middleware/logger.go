package middleware

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggerConfig holds configuration for the logger middleware
type LoggerConfig struct {
	Format string // "json" or "pretty"
}

// LogEntry represents a structured request log entry
type LogEntry struct {
	Timestamp  string `json:"timestamp"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	StatusCode int    `json:"status_code"`
	Latency    string `json:"latency"`
	ClientIP   string `json:"client_ip"`
	Error      string `json:"error,omitempty"`
}

// RequestLogger creates a middleware that logs every request with status and latency
func RequestLogger(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		entry := LogEntry{
			Timestamp:  time.Now().Format(time.RFC3339),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Latency:    latency.String(),
			ClientIP:   c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.String()
		}

		if config.Format == "pretty" {
			log.Printf("%s %s -> %d (%s)", entry.Method, entry.Path, entry.StatusCode, entry.Latency)
		} else {
			jsonEntry, err := json.Marshal(entry)
			if err != nil {
				log.Printf("Failed to marshal log entry: %v", err)
				return
			}
			log.Println(string(jsonEntry))
		}
	}
}
