package middleware

import (
	"github.com/gin-gonic/gin"
)

// ClientIDHeader lets a caller identify itself for analytics. Without it the client IP is used.
const ClientIDHeader = "X-Client-ID"

const clientIDKey = contextKey("clientID")

// ClientIdentity stores the caller's identifier in the Gin context.
func ClientIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetHeader(ClientIDHeader)
		if clientID == "" {
			clientID = c.ClientIP()
		}
		c.Set(string(clientIDKey), clientID)
		c.Next()
	}
}

// GetClientIDFromContext retrieves the caller identifier from the Gin context.
// It returns the identifier and a boolean indicating if it was found.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(clientIDKey))
	if !exists {
		return "", false
	}
	clientID, ok := val.(string)
	if !ok || clientID == "" {
		return "", false
	}
	return clientID, true
}
