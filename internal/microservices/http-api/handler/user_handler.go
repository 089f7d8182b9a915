package handler

import (
	"net/http"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc     service.UserService
	reports service.ReportService
	opts    Options
}

func NewUserHandler(svc service.UserService, reports service.ReportService, opts Options) *UserHandler {
	return &UserHandler{svc: svc, reports: reports, opts: opts}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:user_id", h.Get)
	rg.GET("/:user_id/favorite-films", h.FavoriteFilms)
	rg.POST("", h.Create)
	rg.PUT("/:user_id", h.Update)
	rg.PATCH("/:user_id", h.Update)
	rg.DELETE("/:user_id", h.Delete)
}

func (h *UserHandler) List(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	users, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.FromModelToUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) Get(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	u, err := h.svc.GetByID(ctx, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(*u))
}

// FavoriteFilms handles GET /users/:user_id/favorite-films
func (h *UserHandler) FavoriteFilms(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	films, err := h.reports.FavoriteFilms(ctx, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToFilmResponses(films))
}

func (h *UserHandler) Create(c *gin.Context) {
	var in dto.CreateUserDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := in.ToModel()

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	if err := h.svc.Create(ctx, &user); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToUserResponse(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	var in dto.UpdateUserDTO
	if err := h.opts.bindPatch(c, &in); err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	u, err := h.svc.Update(ctx, c.Param("user_id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(*u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	ctx, cancel := h.opts.requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
