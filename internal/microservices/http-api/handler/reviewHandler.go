package handler

import (
	"net/http"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc  service.ReviewService
	opts Options
}

func NewReviewHandler(svc service.ReviewService, opts Options) *ReviewHandler {
	return &ReviewHandler{svc: svc, opts: opts}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:review_id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:review_id", h.Update)
	rg.PATCH("/:review_id", h.Update)
	rg.DELETE("/:review_id", h.Delete)
}

func (h *ReviewHandler) List(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	reviews, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.FromModelToReviewResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /reviews/:review_id. With ?resolve=live the current user
// and film records are attached next to the stored snapshot.
func (h *ReviewHandler) Get(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	id := c.Param("review_id")
	switch c.Query("resolve") {
	case "":
		r, err := h.svc.GetByID(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromModelToReviewResponse(*r))
	case "live":
		v, err := h.svc.GetView(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.FromViewToReviewViewResponse(*v))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "resolve must be live"})
	}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var in dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	r, err := h.svc.Create(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToReviewResponse(*r))
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var in dto.UpdateReviewDTO
	if err := h.opts.bindPatch(c, &in); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	r, err := h.svc.Update(ctx, c.Param("review_id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToReviewResponse(*r))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("review_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
