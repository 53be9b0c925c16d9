package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardabeyazoglu/habitrack/internal/core/domain"
	"github.com/ardabeyazoglu/habitrack/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type createHabitRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Periodicity string `json:"periodicity" binding:"required"`
	CreatedAt   string `json:"created_at"`
}

type updateHabitRequest struct {
	Description string `json:"description"`
	Periodicity string `json:"periodicity"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.GET("/:name", h.Get)
		habits.PUT("/:name", h.Update)
		habits.DELETE("/:name", h.Delete)
	}
}

func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CreateHabitInput{
		Name:        req.Name,
		Description: req.Description,
		Periodicity: req.Periodicity,
		CreatedAt:   req.CreatedAt,
	}

	habit, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrHabitConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "habit already exists"})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, habit)
}

func (h *HabitHandler) List(c *gin.Context) {
	if p := c.Query("periodicity"); p != "" {
		periodicity, err := domain.ParsePeriodicity(p)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		list, err := h.svc.ListByPeriodicity(c.Request.Context(), string(periodicity))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *HabitHandler) Get(c *gin.Context) {
	habit, err := h.svc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) Update(c *gin.Context) {
	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.UpdateHabitInput{
		Name:        c.Param("name"),
		Description: req.Description,
		Periodicity: req.Periodicity,
	}

	habit, err := h.svc.Update(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("name"))
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

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrHabitNameEmpty) ||
		errors.Is(err, domain.ErrHabitNameTooLong) ||
		errors.Is(err, domain.ErrHabitDescTooLong) ||
		errors.Is(err, domain.ErrInvalidPeriodicity) ||
		errors.Is(err, domain.ErrInvalidDate)
}
