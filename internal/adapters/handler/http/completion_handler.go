package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
	"github.com/ardabeyazoglu/habitrack/internal/core/services"
)

type CompletionHandler struct {
	svc *services.CompletionService
}

func NewCompletionHandler(svc *services.CompletionService) *CompletionHandler {
	return &CompletionHandler{
		svc: svc,
	}
}

type checkOffRequest struct {
	Date string `json:"date"`
}

func (h *CompletionHandler) RegisterRoutes(router *gin.RouterGroup) {
	completions := router.Group("/habits/:name/completions")
	{
		completions.POST("", h.CheckOff)
		completions.GET("", h.ListDates)
		completions.DELETE("", h.RemoveAll)
		completions.DELETE("/:date", h.Remove)
	}
}

func (h *CompletionHandler) CheckOff(c *gin.Context) {
	var req checkOffRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completion, err := h.svc.CheckOff(c.Request.Context(), c.Param("name"), req.Date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHabitNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		case errors.Is(err, domain.ErrCompletionConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "habit already completed on this date"})
		case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrCompletionBeforeCreation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, completion)
}

func (h *CompletionHandler) ListDates(c *gin.Context) {
	dates, err := h.svc.ListDates(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

func (h *CompletionHandler) Remove(c *gin.Context) {
	err := h.svc.Remove(c.Request.Context(), c.Param("name"), c.Param("date"))
	if err != nil {
		if errors.Is(err, domain.ErrCompletionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "completion not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CompletionHandler) RemoveAll(c *gin.Context) {
	err := h.svc.RemoveAllForHabit(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}
