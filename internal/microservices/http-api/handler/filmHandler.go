package handler

import (
	"net/http"
	"strconv"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FilmHandler struct {
	svc     service.FilmService
	reports service.ReportService
	opts    Options
}

func NewFilmHandler(svc service.FilmService, reports service.ReportService, opts Options) *FilmHandler {
	return &FilmHandler{svc: svc, reports: reports, opts: opts}
}

func (h *FilmHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/search", h.SearchByTitle)
	rg.GET("/released", h.ListReleasedSince)
	rg.GET("/:film_id", h.Get)
	rg.GET("/:film_id/reviewers", h.Reviewers)

	rg.POST("", h.Create)
	rg.PUT("/:film_id", h.Update)
	rg.PATCH("/:film_id", h.Update)
	rg.DELETE("/:film_id", h.Delete)
}

// List handles GET /films?order=asc|desc
func (h *FilmHandler) List(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	films, err := h.svc.List(ctx, c.Query("order"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToFilmResponses(films))
}

func (h *FilmHandler) Get(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	f, err := h.svc.GetByID(ctx, c.Param("film_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToFilmResponse(*f))
}

// SearchByTitle handles GET /films/search?title=
func (h *FilmHandler) SearchByTitle(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	films, err := h.svc.SearchByTitle(ctx, c.Query("title"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToFilmResponses(films))
}

// ListReleasedSince handles GET /films/released?year=
func (h *FilmHandler) ListReleasedSince(c *gin.Context) {
	raw := c.Query("year")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year is required"})
		return
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	films, err := h.svc.ListReleasedSince(ctx, year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToFilmResponses(films))
}

// Reviewers handles GET /films/:film_id/reviewers
func (h *FilmHandler) Reviewers(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	reviewers, err := h.reports.FilmReviewers(ctx, c.Param("film_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviewers)
}

func (h *FilmHandler) Create(c *gin.Context) {
	var in dto.CreateFilmDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	if err := h.svc.Create(ctx, &model); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToFilmResponse(model))
}

func (h *FilmHandler) Update(c *gin.Context) {
	var in dto.UpdateFilmDTO
	if err := h.opts.bindPatch(c, &in); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	f, err := h.svc.Update(ctx, c.Param("film_id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToFilmResponse(*f))
}

func (h *FilmHandler) Delete(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("film_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

