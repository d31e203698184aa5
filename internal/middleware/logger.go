package middleware

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
)

var skipPaths = []string{"/health", "/ping"}

// Logger logs each request with method, path, status, latency, and the
// authenticated subject when present.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		for _, skip := range skipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		method := c.Request.Method
		userID := c.GetString("userID")

		line := ""
		line += statusColor(status) + "[" + strconv.Itoa(status) + "]" + colorReset + " "
		line += methodColor(method) + method + colorReset + " "
		line += colorBlue + path + colorReset + " "
		line += colorGray + latency.String() + colorReset
		if userID != "" {
			line += colorGray + " user=" + userID + colorReset
		}
		if query := c.Request.URL.RawQuery; query != "" {
			line += colorGray + " query=" + query + colorReset
		}

		log.Print(line)
	}
}

func methodColor(method string) string {
	switch method {
	case "GET":
		return colorGreen
	case "POST":
		return colorBlue
	case "PUT":
		return colorYellow
	case "DELETE":
		return colorRed
	case "PATCH":
		return colorPurple
	default:
		return colorWhite
	}
}

func statusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return colorGreen
	case status >= 300 && status < 400:
		return colorCyan
	case status >= 400 && status < 500:
		return colorYellow
	case status >= 500:
		return colorRed
	default:
		return colorWhite
	}
}
