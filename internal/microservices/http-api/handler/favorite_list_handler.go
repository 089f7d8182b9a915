package handler

import (
	"net/http"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteListHandler struct {
	svc  service.FavoriteListService
	opts Options
}

func NewFavoriteListHandler(svc service.FavoriteListService, opts Options) *FavoriteListHandler {
	return &FavoriteListHandler{svc: svc, opts: opts}
}

func (h *FavoriteListHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:list_id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:list_id", h.Update)
	rg.PATCH("/:list_id", h.Update)
	rg.DELETE("/:list_id", h.Delete)

	// Membership
	rg.POST("/:list_id/films/:film_id", h.AddFilm)
	rg.DELETE("/:list_id/films/:film_id", h.RemoveFilm)
}

func (h *FavoriteListHandler) List(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	lists, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.FavoriteListResponse, 0, len(lists))
	for _, l := range lists {
		resp = append(resp, dto.FromModelToFavoriteListResponse(l))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FavoriteListHandler) Get(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	l, err := h.svc.GetByID(ctx, c.Param("list_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToFavoriteListResponse(*l))
}

func (h *FavoriteListHandler) Create(c *gin.Context) {
	var in dto.CreateFavoriteListDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	l, err := h.svc.Create(ctx, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToFavoriteListResponse(*l))
}

func (h *FavoriteListHandler) Update(c *gin.Context) {
	var in dto.UpdateFavoriteListDTO
	if err := h.opts.bindPatch(c, &in); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	l, err := h.svc.Update(ctx, c.Param("list_id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToFavoriteListResponse(*l))
}

func (h *FavoriteListHandler) Delete(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("list_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddFilm handles POST /favorite-lists/:list_id/films/:film_id. Adding a film
// that is already present returns the list unchanged.
func (h *FavoriteListHandler) AddFilm(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	l, err := h.svc.AddFilm(ctx, c.Param("list_id"), c.Param("film_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToFavoriteListResponse(*l))
}

func (h *FavoriteListHandler) RemoveFilm(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	l, err := h.svc.RemoveFilm(ctx, c.Param("list_id"), c.Param("film_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToFavoriteListResponse(*l))
}
