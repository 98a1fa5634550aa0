package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"fixit-be/models"
	"fixit-be/scheduling"
	"fixit-be/store"

	"github.com/gin-gonic/gin"
)

const handlerTimeout = 10 * time.Second

// issueView is an issue plus the read-time urgency fields the
// dashboards tint rows with. Urgency is recomputed on every read and
// never persisted.
type issueView struct {
	models.Issue
	Urgency  scheduling.Urgency `json:"urgency"`
	DueLabel string             `json:"dueLabel"`
}

func viewOf(issue models.Issue, now time.Time) issueView {
	return issueView{
		Issue:    issue,
		Urgency:  scheduling.ClassifyUrgency(issue.DueDate, issue.Status, now),
		DueLabel: scheduling.FormatDueDate(issue.DueDate, issue.Status, now),
	}
}

// CreateIssue handles the creation of a new issue report
func CreateIssue(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title       string  `json:"title" binding:"required,max=200"`
		Description string  `json:"description" binding:"required,max=1000"`
		Type        string  `json:"type" binding:"required"`
		Priority    string  `json:"priority" binding:"required"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Address     string  `json:"address,omitempty" binding:"max=200"`
		ImageURL    *string `json:"imageUrl,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidIssueType(models.IssueType(input.Type)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
		return
	}
	if !models.ValidIssuePriority(models.IssuePriority(input.Priority)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	location := models.Location{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Address:   input.Address,
	}
	// 0,0 means the device location was never acquired
	if !location.Acquired() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location not acquired"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	issue, err := issueStore.Create(ctx, models.NewIssueInput{
		Title:        input.Title,
		Description:  input.Description,
		Type:         models.IssueType(input.Type),
		Priority:     models.IssuePriority(input.Priority),
		Location:     location,
		ReportedByID: userID.(string),
		ImageURL:     input.ImageURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	c.JSON(http.StatusCreated, viewOf(*issue, time.Now()))
}

// GetAllIssues handles retrieving issues with filtering, sorting and
// pagination
func GetAllIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	issueType := c.Query("type")
	status := c.Query("status")
	priority := c.Query("priority")
	search := c.Query("search")
	sortBy := c.DefaultQuery("sort", "newest")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := store.Filter{Search: search}
	if issueType != "" && issueType != "all" {
		filter.Type = models.IssueType(issueType)
	}
	if status != "" && status != "all" {
		filter.Status = models.IssueStatus(status)
	}
	if priority != "" && priority != "all" {
		filter.Priority = models.IssuePriority(priority)
	}
	if c.Query("mine") == "true" {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		filter.ReportedByID = userID.(string)
	}

	issues, err := issueStore.List(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	switch sortBy {
	case "oldest":
		sort.Slice(issues, func(i, j int) bool {
			return issues[i].ReportedAt.Before(issues[j].ReportedAt)
		})
	case "due":
		// soonest deadline first, resolved issues last
		sort.Slice(issues, func(i, j int) bool {
			if (issues[i].Status == models.Resolved) != (issues[j].Status == models.Resolved) {
				return issues[j].Status == models.Resolved
			}
			return issues[i].DueDate.Before(issues[j].DueDate)
		})
	case "newest":
		fallthrough
	default:
		sort.Slice(issues, func(i, j int) bool {
			return issues[i].ReportedAt.After(issues[j].ReportedAt)
		})
	}

	totalCount := len(issues)
	totalPages := (totalCount + limit - 1) / limit

	start := (page - 1) * limit
	if start > totalCount {
		start = totalCount
	}
	end := start + limit
	if end > totalCount {
		end = totalCount
	}
	pageIssues := issues[start:end]

	now := time.Now()
	views := make([]issueView, 0, len(pageIssues))
	for _, issue := range pageIssues {
		views = append(views, viewOf(issue, now))
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      views,
		"totalIssues": totalCount,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

// GetIssue retrieves an issue by its ID
func GetIssue(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	issue, err := issueStore.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	c.JSON(http.StatusOK, viewOf(*issue, time.Now()))
}

// UpdateIssueStatus moves an issue between Pending, In Progress and
// Resolved. Any transition is legal; resolution timestamping happens
// in the store.
func UpdateIssueStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidIssueStatus(models.IssueStatus(input.Status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	if err := issueStore.SetStatus(ctx, c.Param("id"), models.IssueStatus(input.Status)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue status updated successfully"})
}

// UpdateIssuePriority changes the priority; the store recomputes the
// due date from the original report time.
func UpdateIssuePriority(c *gin.Context) {
	var input struct {
		Priority string `json:"priority" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidIssuePriority(models.IssuePriority(input.Priority)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	if err := issueStore.SetPriority(ctx, c.Param("id"), models.IssuePriority(input.Priority)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue priority updated successfully"})
}

// AssignIssue updates the admin-only annotations on an issue
func AssignIssue(c *gin.Context) {
	var input struct {
		AssignedTo *string `json:"assignedTo,omitempty"`
		AdminNotes *string `json:"adminNotes,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	if err := issueStore.SetAssignment(ctx, c.Param("id"), input.AssignedTo, input.AdminNotes); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue assignment updated successfully"})
}

// DeleteIssue permanently removes an issue
func DeleteIssue(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	if err := issueStore.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete issue"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}

// StreamIssues pushes change events over SSE so dashboards refresh
// without polling
func StreamIssues(c *gin.Context) {
	events, cancel := issueStore.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("issue", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// GetIssueAnalytics returns the aggregate numbers the admin dashboard
// charts: per-type counts, urgency totals, and a last-7-days series
func GetIssueAnalytics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), handlerTimeout)
	defer cancel()

	issues, err := issueStore.List(ctx, store.Filter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	now := time.Now()
	byType := map[models.IssueType]int{}
	var open, resolved, overdue, dueSoon int

	for _, issue := range issues {
		byType[issue.Type]++
		if issue.Status == models.Resolved {
			resolved++
			continue
		}
		open++
		switch scheduling.ClassifyUrgency(issue.DueDate, issue.Status, now) {
		case scheduling.UrgencyOverdue:
			overdue++
		case scheduling.UrgencyDueSoon:
			dueSoon++
		}
	}

	issuesByType := make([]gin.H, 0, len(byType))
	for _, t := range []models.IssueType{models.Road, models.Garbage, models.Streetlight, models.Park, models.Other} {
		if count, ok := byType[t]; ok {
			issuesByType = append(issuesByType, gin.H{"name": t, "value": count})
		}
	}

	var last7Days []gin.H
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		nextDay := day.AddDate(0, 0, 1)

		count := 0
		for _, issue := range issues {
			if !issue.ReportedAt.Before(day) && issue.ReportedAt.Before(nextDay) {
				count++
			}
		}
		last7Days = append(last7Days, gin.H{
			"date":  day.Format("2006-01-02"),
			"count": count,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"issuesByType":   issuesByType,
		"last7Days":      last7Days,
		"totalIssues":    len(issues),
		"openIssues":     open,
		"resolvedIssues": resolved,
		"overdueIssues":  overdue,
		"dueSoonIssues":  dueSoon,
	})
}
