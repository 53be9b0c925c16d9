package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
	"github.com/ardabeyazoglu/habitrack/internal/core/services"
)

type AnalyticsHandler struct {
	svc *services.AnalyticsService
}

func NewAnalyticsHandler(svc *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		svc: svc,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/habits/:name/streaks", h.Streaks)

	analytics := router.Group("/analytics")
	{
		analytics.GET("/leaderboard", h.Leaderboard)
		analytics.GET("/last-month", h.LastMonth)
	}
}

func (h *AnalyticsHandler) Streaks(c *gin.Context) {
	name := c.Param("name")

	current, err := h.svc.CurrentStreak(c.Request.Context(), name)
	if err != nil {
		h.renderStreakError(c, err)
		return
	}

	longest, err := h.svc.LongestStreak(c.Request.Context(), name)
	if err != nil {
		h.renderStreakError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"habit":   domain.NormalizeName(name),
		"current": current,
		"longest": longest,
	})
}

func (h *AnalyticsHandler) renderStreakError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrHabitNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		return
	}
	// A stored periodicity the engine does not recognize is corrupted
	// state, not a bad request.
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func (h *AnalyticsHandler) Leaderboard(c *gin.Context) {
	entries, err := h.svc.StreakLeaderboard(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoHabits) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no habits defined"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

func (h *AnalyticsHandler) LastMonth(c *gin.Context) {
	entries, err := h.svc.MostCompletedLastMonth(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoCompletions) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no completions recorded last month"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"most_completed": entries})
}
