package controllers

import (
	"errors"
	"net/http"

	"github.com/atelier-arc/portfolio-backend/src/middleware"
	"github.com/atelier-arc/portfolio-backend/src/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service       *services.AuthService
	secureCookies bool
}

func NewAuthController(service *services.AuthService, secureCookies bool) *AuthController {
	return &AuthController{service: service, secureCookies: secureCookies}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login checks the admin password and, on success, issues the session token
// both in the response body and as an httpOnly cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if req.Password == "" {
		c.JSON(400, gin.H{"error": "Password is required"})
		return
	}

	token, err := ac.service.Authenticate(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(401, gin.H{"error": "Invalid password"})
			return
		}
		c.JSON(500, gin.H{"error": "Login failed"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, int(ac.service.SessionTTL().Seconds()), "/", "", ac.secureCookies, true)
	c.JSON(200, gin.H{"success": true, "token": token})
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", ac.secureCookies, true)
	c.JSON(200, gin.H{"success": true})
}
