package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message writes a bare {"message": ...} body, the shape the SPA expects for
// every non-payload reply.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ServerError maps an unexpected failure to a generic 500 with the underlying
// detail attached for diagnostics. Never include credentials in err.
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Server error",
		"error":   err.Error(),
	})
}
