package httputil

import "github.com/gin-gonic/gin"

// ContextURL is the key the base URL of the API is stored at in the gin context.
const ContextURL = "alocar-backend-url"

// BaseURL returns the base URL of the API for the request, e.g.
// "https://example.com/api".
func BaseURL(c *gin.Context) string {
	return c.GetString(ContextURL)
}
