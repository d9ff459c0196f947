package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const usernameKey = "username"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(username string) {
	s.Set(usernameKey, username)
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(usernameKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

// Username returns "" when nobody is logged in.
func (s *Session) Username() string {
	name := s.Get(usernameKey)
	if name == nil {
		return ""
	}
	return name.(string)
}
