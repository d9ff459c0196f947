package handlers

import (
	"net/http"

	"photobook/auth"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func UserLogin(c *gin.Context) {
	r := LoginRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if !auth.CheckCredentials(r.Username, r.Password) {
		c.JSON(http.StatusUnauthorized, Response{"Wrong username or password."})
		return
	}
	auth.LoadSession(c).LoginUser(r.Username)
	c.JSON(http.StatusOK, OKResponse)
}

func UserLogout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, OKResponse)
}

func UserGetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": auth.LoadSession(c).Username()})
}
