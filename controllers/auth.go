// controllers/auth.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barberbook-backend/utils"
)

type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth utils.Authenticator
}

func NewAuthController(auth utils.Authenticator) *AuthController {
	return &AuthController{Auth: auth}
}

// Login gates the admin view behind the shared shop credential and issues
// a session token on success.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !ac.Auth.Verify(input.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := utils.GenerateToken("admin")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
