package controllers

import (
	"net/http"
	"time"

	"github.com/NebiyouChanie/sapore/pkg/resp"
	"github.com/NebiyouChanie/sapore/services"
	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	service *services.AuthService
	ttl     time.Duration
}

func NewAuthController(service *services.AuthService, ttl time.Duration) *AuthController {
	return &AuthController{service: service, ttl: ttl}
}

// POST /auth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, "[AUTH_SIGNUP]", err)
		return
	}

	admin, err := a.service.Signup(req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		resp.Error(c, "[AUTH_SIGNUP]", err)
		return
	}

	resp.Created(c, gin.H{"id": admin.ID, "email": admin.Email, "message": "User created successfully"})
}

// POST /auth/signin
func (a *AuthController) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, "[AUTH_SIGNIN]", err)
		return
	}

	token, admin, err := a.service.SignIn(req.Email, req.Password)
	if err != nil {
		resp.Error(c, "[AUTH_SIGNIN]", err)
		return
	}

	// session cookie for the admin panel; the token is also returned
	// for clients using the Authorization header
	c.SetCookie("session", token, int(a.ttl.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"admin": gin.H{"id": admin.ID, "email": admin.Email},
	})
}
