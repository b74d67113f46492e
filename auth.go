package main

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zaywreck/warehouse_backend/config"
	"github.com/zaywreck/warehouse_backend/middlewares"
	"github.com/zaywreck/warehouse_backend/models"
	"github.com/zaywreck/warehouse_backend/utils"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (app *application) registerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.NewUser
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		user, err := models.RegisterUser(c.Request.Context(), app.db, req)
		if err != nil {
			respondModelError(c, err)
			return
		}

		user.PrepareGive()
		c.JSON(http.StatusCreated, user)
	}
}

// loginHandler authenticates email+password, gated by the api-key shared
// secret. Wrong key, unknown email and password mismatch are distinct
// failures internally but share one outward 401.
func (app *application) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		unauthorized := func(err error) {
			config.LogError(app.logger, "auth.go", "loginHandler", "login rejected", nil, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		}

		apiKey := c.GetHeader("api-key")
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(app.cfg.APIKey)) != 1 {
			unauthorized(utils.ErrInvalidAPIKey)
			return
		}

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		user, err := models.Authenticate(c.Request.Context(), app.db, req.Email, req.Password)
		if err != nil {
			unauthorized(err)
			return
		}

		lifespan := time.Duration(app.cfg.TokenLifespanMinutes) * time.Minute
		token, err := utils.JwtGenerate([]byte(app.cfg.JWTSecret), user.Email, lifespan)
		if err != nil {
			respondModelError(c, err)
			return
		}

		c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

func (app *application) meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middlewares.CtxValue(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		user, err := models.UserByEmail(c.Request.Context(), app.db, email)
		if err != nil {
			// The subject may have been deleted after the token was
			// issued; answer like any other validation failure.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		user.PrepareGive()
		c.JSON(http.StatusOK, user)
	}
}

// logoutHandler acknowledges the logout. Tokens are stateless; the one
// presented stays valid until its natural expiry.
func (app *application) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "successfully logged out"})
	}
}
