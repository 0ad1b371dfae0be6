package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"purefarm/src/models"
	"purefarm/src/service"
)

//admin user management
type UserController struct {
	Auth *service.AuthService
}

func (ct *UserController) ListUsers(c *gin.Context) {
	users, err := ct.Auth.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

//approve or reject a pending account
func (ct *UserController) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required,oneof=pending approved rejected"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ct.Auth.UpdateUserStatus(c.Param("id"), models.AccountStatus(input.Status))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
