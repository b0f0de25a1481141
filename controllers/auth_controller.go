package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/resp"
	"github.com/albertkemp/home-cooking/services"
	"github.com/albertkemp/home-cooking/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func userOut(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email, "name": u.Name,
		"role": u.Role, "address": u.Address, "bio": u.Bio, "image": u.Image,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, userOut(user))
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": userOut(user)})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, userOut(user))
}

// GET /account
func (a *AuthController) Account(c *gin.Context) {
	a.Me(c)
}

// PATCH /account
func (a *AuthController) UpdateAccount(c *gin.Context) {
	var req services.UpdateAccountIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.UpdateAccount(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, userOut(user))
}
