package controllers

import (
	"net/http"

	"fixit-be/models"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	email, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := userDir.GetProfile(email.(string))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile replaces the authenticated user's profile. Whole-object
// replace, no merge: clients read, modify and send the full profile
// back. Email, role and creation time are pinned by the directory.
func UpdateProfile(c *gin.Context) {
	email, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := userDir.SetProfile(email.(string), profile); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	updated, err := userDir.GetProfile(email.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
