// ================== internal/middleware/cors.go ==================
package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured frontend origin. "*" echoes any origin.
func CORS(allowedOrigin string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}
	config.MaxAge = 12 * time.Hour

	if strings.TrimSpace(allowedOrigin) == "*" {
		config.AllowOriginFunc = func(string) bool { return true }
	} else {
		config.AllowOrigins = []string{allowedOrigin}
	}

	return cors.New(config)
}
