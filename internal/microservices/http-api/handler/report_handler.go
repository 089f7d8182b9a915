package handler

import (
	"math"
	"net/http"
	"strconv"

	"filmhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc  service.ReportService
	opts Options
}

func NewReportHandler(svc service.ReportService, opts Options) *ReportHandler {
	return &ReportHandler{svc: svc, opts: opts}
}

func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/films/count", h.CountFilms)
	rg.GET("/films/genres", h.CountFilmsByGenre)
	rg.GET("/films/average-rating", h.AverageRating)
	rg.GET("/films/top-rated", h.TopRated)
	rg.GET("/reviews", h.ReviewsAboveRating)
}

func (h *ReportHandler) CountFilms(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	n, err := h.svc.CountFilms(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": n})
}

func (h *ReportHandler) CountFilmsByGenre(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	counts, err := h.svc.CountFilmsByGenre(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// AverageRating handles GET /reports/films/average-rating?min=
func (h *ReportHandler) AverageRating(c *gin.Context) {
	raw := c.Query("min")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min is required"})
		return
	}
	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min"})
		return
	}

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	rows, err := h.svc.AverageRatingAbove(ctx, threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) TopRated(c *gin.Context) {
	limit, ok := queryInt(c, "limit", service.DefaultTopRatedLimit)
	if !ok {
		return
	}

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	rows, err := h.svc.TopRatedFilms(ctx, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ReviewsAboveRating handles GET /reports/reviews?min_rating=&skip=&limit=
func (h *ReportHandler) ReviewsAboveRating(c *gin.Context) {
	if c.Query("min_rating") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_rating is required"})
		return
	}
	threshold, ok := queryInt(c, "min_rating", 0)
	if !ok {
		return
	}
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", service.DefaultReviewsLimit)
	if !ok {
		return
	}

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	rows, err := h.svc.ReviewsAboveRating(ctx, threshold, skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// queryInt reads an optional integer query parameter. On a malformed value
// it writes the 400 itself and reports false.
func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return 0, false
	}
	return n, true
}
