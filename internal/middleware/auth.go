package middleware

import (
	"github.com/gin-gonic/gin"
)

// BasicAuth returns a middleware that protects a route group with HTTP Basic
// auth. It is a no-op when user or password is empty.
func BasicAuth(user, password string) gin.HandlerFunc {
	if user == "" || password == "" {
		return func(c *gin.Context) { c.Next() }
	}
	return gin.BasicAuth(gin.Accounts{user: password})
}
