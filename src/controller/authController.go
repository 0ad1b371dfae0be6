package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"purefarm/src/helper"
	"purefarm/src/middleware"
	"purefarm/src/models"
	"purefarm/src/service"
)

type AuthController struct {
	Auth *service.AuthService
}

//register farmer/supplier/customer
func (ct *AuthController) Register(c *gin.Context) {
	var input struct {
		FirstName   string `json:"first_name" binding:"required"`
		LastName    string `json:"last_name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required"`
		Phone       string `json:"phone"`
		Address     string `json:"address"`
		FarmName    string `json:"farm_name"`
		CompanyName string `json:"company_name"`
		Role        string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	//password validation
	if valid, message := helper.ValidatePassword(input.Password); !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	profile, err := ct.Auth.Signup(service.SignupInput{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Password:    input.Password,
		Phone:       input.Phone,
		Address:     input.Address,
		FarmName:    input.FarmName,
		CompanyName: input.CompanyName,
		Role:        models.Role(input.Role),
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrEmailTaken) || errors.Is(err, service.ErrInvalidRole) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration received. Your account is pending admin approval.",
		"user_id": profile.ID,
	})
}

func (ct *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, profile, role, err := ct.Auth.Login(input.Email, input.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, service.ErrAccountRestricted) || errors.Is(err, service.ErrAccountNotApproved) {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user_id": profile.ID,
		"role":    role,
	})
}

func (ct *AuthController) Me(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	profile, err := ct.Auth.CurrentUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	role, _ := middleware.RoleFrom(c)
	c.JSON(http.StatusOK, gin.H{"user": profile, "role": role})
}

func (ct *AuthController) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.UserIDFrom(c)

	var input struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ct.Auth.UpdateProfile(userID, input.FirstName, input.LastName, input.Phone, input.Address); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
