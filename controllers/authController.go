package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"fixit-be/models"
	"fixit-be/store"
	authUtils "fixit-be/utils"

	"github.com/gin-gonic/gin"
)

// RegisterUser handles user registration
func RegisterUser(c *gin.Context) {
	var input struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=6"`
		Role        string `json:"role" binding:"required"`
		DisplayName string `json:"displayName,omitempty" binding:"max=50"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.UserRole(input.Role)
	if !models.ValidUserRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	if err := userDir.AddUser(input.Email, input.Password, role); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
			return
		}
		log.Println("Error registering user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	profile, err := userDir.GetProfile(input.Email)
	if err != nil {
		log.Println("Error loading profile:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	if input.DisplayName != "" {
		profile.DisplayName = input.DisplayName
		if err := userDir.SetProfile(input.Email, *profile); err != nil {
			log.Println("Error updating profile:", err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"email":       profile.Email,
		"role":        profile.Role,
		"displayName": profile.DisplayName,
		"createdAt":   profile.CreatedAt,
	})
}

// LoginUser handles user login. The role field scopes the lookup: the
// admin login page cannot log a citizen account in.
func LoginUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.UserRole(input.Role)
	if input.Role != "" && !models.ValidUserRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	profile, err := userDir.FindUser(input.Email, input.Password, role)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := authUtils.GenerateAndSetToken(profile.Email, string(profile.Role))
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600, // 1 hour
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(http.StatusOK, gin.H{
		"email":       profile.Email,
		"role":        profile.Role,
		"displayName": profile.DisplayName,
		"createdAt":   profile.CreatedAt,
	})
}

// GetMe retrieves the authenticated user's profile
func GetMe(c *gin.Context) {
	email, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := userDir.GetProfile(email.(string))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// LogoutUser handles user logout by clearing the auth_token cookie
func LogoutUser(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
