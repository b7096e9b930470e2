package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-planner/internal/domain/profile"
)

// GetPreferences returns the caller's preferences.
func (h *Handler) GetPreferences(c *gin.Context) {
	prefs, err := h.profileSvc.GetPreferences(c.Request.Context(), clientID(c))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences applies a partial preferences update.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var req profile.PreferencesUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errMessage(err), err)
		return
	}
	prefs, err := h.profileSvc.UpdatePreferences(c.Request.Context(), clientID(c), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// ResetPreferences drops the caller's stored profile.
func (h *Handler) ResetPreferences(c *gin.Context) {
	prefs, err := h.profileSvc.ResetPreferences(c.Request.Context(), clientID(c))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// ToggleFavorite adds or removes a favourite activity.
func (h *Handler) ToggleFavorite(c *gin.Context) {
	prefs, err := h.profileSvc.ToggleFavorite(c.Request.Context(), clientID(c), c.Param("activityId"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// ListLocations returns the caller's saved locations.
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.profileSvc.ListLocations(c.Request.Context(), clientID(c))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// AddLocation saves a new location.
func (h *Handler) AddLocation(c *gin.Context) {
	var req profile.NewLocation
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errMessage(err), err)
		return
	}
	loc, err := h.profileSvc.AddLocation(c.Request.Context(), clientID(c), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, loc)
}

// RemoveLocation deletes a saved location.
func (h *Handler) RemoveLocation(c *gin.Context) {
	if err := h.profileSvc.RemoveLocation(c.Request.Context(), clientID(c), c.Param("id")); err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetDefaultLocation moves the default flag.
func (h *Handler) SetDefaultLocation(c *gin.Context) {
	locations, err := h.profileSvc.SetDefaultLocation(c.Request.Context(), clientID(c), c.Param("id"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// History lists recorded activities, newest first.
func (h *Handler) History(c *gin.Context) {
	limit, err := optionalInt(c, "limit")
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	entries, err := h.profileSvc.History(c.Request.Context(), clientID(c), profile.HistoryQuery{
		ActivityID: c.Query("activityId"),
		Limit:      limit,
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}

// RecordActivity appends to the caller's history.
func (h *Handler) RecordActivity(c *gin.Context) {
	var req profile.NewHistoryEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errMessage(err), err)
		return
	}
	entry, err := h.profileSvc.RecordActivity(c.Request.Context(), clientID(c), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, entry)
}
