package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is a wrapper that rejects requests without a logged-in session
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler gin.HandlerFunc) {
	session := LoadSession(c)
	if session.Username() == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	handler(c)
}

// Required is the same check as Router, usable as plain middleware on
// route groups.
func Required(c *gin.Context) {
	if LoadSession(c).Username() == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	c.Next()
}

func (cr *Router) GET(path string, handler gin.HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler gin.HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
