package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wazehfarhan/rento/user"
)

type sessionResponse struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Age    int    `json:"age"`
}

type setSessionRequest struct {
	UserID int `json:"userId" binding:"required"`
}

func (a *API) getSessionHandler(c *gin.Context) {
	userID, err := a.ur.CurrentUserID(c)
	if err != nil {
		serverError(c, "failed to read session", err)
		return
	}
	if userID == 0 {
		c.JSON(http.StatusOK, nil)
		return
	}

	u, err := a.ur.GetUser(c, userID)
	if errors.Is(err, user.ErrNotFound) {
		// Stale pointer to a removed user counts as no session.
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		serverError(c, "failed to get user", err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{UserID: u.ID, Name: u.Name, Email: u.Email, Age: u.Age})
}

func (a *API) setSessionHandler(c *gin.Context) {
	var req setSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}

	u, err := a.ur.GetUser(c, req.UserID)
	if errors.Is(err, user.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": "USER_NOT_FOUND", "message": "User not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to get user", err)
		return
	}

	if err := a.ur.SetCurrentUserID(c, u.ID); err != nil {
		serverError(c, "failed to set session", err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{UserID: u.ID, Name: u.Name, Email: u.Email, Age: u.Age})
}
