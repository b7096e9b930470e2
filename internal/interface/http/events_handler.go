package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-planner/internal/domain/events"
)

// ListEvents pages through local events.
func (h *Handler) ListEvents(c *gin.Context) {
	filter, err := eventFilter(c)
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	page, err := h.eventsSvc.List(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, page)
}

// SearchEvents matches events by text.
func (h *Handler) SearchEvents(c *gin.Context) {
	near, err := nearPoint(c)
	if err != nil {
		badRequest(c, err.Error(), err)
		return
	}
	found, err := h.eventsSvc.Search(c.Request.Context(), c.Query("q"), near)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": found})
}

// EventCategories lists the known event categories.
func (h *Handler) EventCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.eventsSvc.Categories()})
}

// Event returns one event.
func (h *Handler) Event(c *gin.Context) {
	event, err := h.eventsSvc.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, event)
}

func eventFilter(c *gin.Context) (events.Filter, error) {
	near, err := nearPoint(c)
	if err != nil {
		return events.Filter{}, err
	}
	isFree, err := optionalBool(c, "free")
	if err != nil {
		return events.Filter{}, err
	}
	isIndoor, err := optionalBool(c, "indoor")
	if err != nil {
		return events.Filter{}, err
	}
	radius, err := optionalFloat(c, "radius")
	if err != nil {
		return events.Filter{}, err
	}
	page, err := optionalInt(c, "page")
	if err != nil {
		return events.Filter{}, err
	}
	filter := events.Filter{
		Near:     near,
		Category: c.Query("category"),
		IsFree:   isFree,
		IsIndoor: isIndoor,
		Page:     page,
	}
	if radius != nil {
		filter.RadiusKm = *radius
	}
	return filter, nil
}
