package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/internal/service"
	"github.com/seha22/studienhouse/internal/util"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Account fields"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "Bad Request"
// @Router /api/register [post]
func (ctl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := ctl.AuthService.Register(user); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	util.Created(c, user)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} util.Response{data=object{token=string}}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	token, err := ctl.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(c)
		return
	}

	util.Success(c, gin.H{"token": token})
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/profile [get]
func (ctl *AuthController) GetProfile(c *gin.Context) {
	id := util.GetIdentity(c)

	user, err := ctl.AuthService.GetProfile(id.UserID)
	if err != nil {
		util.NotFound(c)
		return
	}

	util.Success(c, user)
}
