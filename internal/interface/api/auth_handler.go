package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetwatch-service/internal/usecase"
)

// Login checks the credentials and sets the session cookie
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid login data", "errors": describeBindError(err)})
		return
	}

	user, session, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect username or password"})
		return
	}
	if err != nil {
		h.recordStorageError("logging in", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, session.ID, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, user)
}

// Logout ends the current session, if any
func (h *Handler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		h.recordStorageError("logging out", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging out"})
		return
	}

	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CurrentUser returns the user bound to the session cookie
func (h *Handler) CurrentUser(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)
	user, err := h.auth.CurrentUser(c.Request.Context(), token)
	if errors.Is(err, usecase.ErrNotAuthenticated) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}
	if err != nil {
		h.recordStorageError("fetching current user", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching current user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// DashboardStats returns the live dashboard figures
func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		h.storageFailure(c, "fetching dashboard stats", resource{"dashboard", "dashboard"}, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
