package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayank7tyagi/FitJourney-App/services"
	"github.com/mayank7tyagi/FitJourney-App/utils"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	user, err := uc.users.FindByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type AvatarInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

func (uc *UserController) UpdateAvatar(c *gin.Context) {
	var input AvatarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, utils.NewValidationError("Invalid input"))
		return
	}

	url, err := uc.users.UpdateAvatar(c.Request.Context(), currentUserID(c), input.ImageBase64)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"img": url})
}
