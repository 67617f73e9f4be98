package handler

import (
	"github.com/gin-gonic/gin"
	studioapp "github.com/pos/backend/internal/application/studio"
)

// StudioPageHandler handles studio page endpoints and the public welcome feed
type StudioPageHandler struct {
	BaseHandler
	pageService *studioapp.PageService
}

// NewStudioPageHandler creates a new StudioPageHandler
func NewStudioPageHandler(pageService *studioapp.PageService) *StudioPageHandler {
	return &StudioPageHandler{pageService: pageService}
}

// RegisterRoutes implements router.RouteRegistrar
func (h *StudioPageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/welcome", h.Welcome)

	pages := rg.Group("/studio-pages")
	pages.GET("", h.List)
	pages.POST("", h.Create)
	pages.GET("/:id", h.Get)
	pages.PUT("/:id", h.Update)
	pages.DELETE("/:id", h.Delete)
}

// Welcome godoc
// @Summary      Welcome sections
// @Description  Active studio pages in menu order
// @Tags         studio
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /welcome [get]
func (h *StudioPageHandler) Welcome(c *gin.Context) {
	sections, err := h.pageService.Welcome(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"sections": sections})
}

// List godoc
// @Summary      List studio pages
// @Tags         studio
// @Produce      json
// @Param        search query string false "Menu label or title contains"
// @Param        page   query int    false "Page number"
// @Success      200 {object} dto.Response
// @Router       /studio-pages [get]
func (h *StudioPageHandler) List(c *gin.Context) {
	var req studioapp.ListPagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	pages, err := h.pageService.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pages)
}

// Get godoc
// @Summary      Get a studio page
// @Tags         studio
// @Produce      json
// @Param        id path string true "Page ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /studio-pages/{id} [get]
func (h *StudioPageHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid page ID format")
		return
	}

	page, err := h.pageService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, page)
}

// Create godoc
// @Summary      Create a studio page
// @Tags         studio
// @Accept       json
// @Produce      json
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /studio-pages [post]
func (h *StudioPageHandler) Create(c *gin.Context) {
	var req studioapp.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.pageService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, page)
}

// Update godoc
// @Summary      Update a studio page
// @Tags         studio
// @Accept       json
// @Produce      json
// @Param        id path string true "Page ID"
// @Success      200 {object} dto.Response
// @Router       /studio-pages/{id} [put]
func (h *StudioPageHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid page ID format")
		return
	}

	var req studioapp.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	page, err := h.pageService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, page)
}

// Delete godoc
// @Summary      Delete a studio page
// @Tags         studio
// @Param        id path string true "Page ID"
// @Success      204
// @Router       /studio-pages/{id} [delete]
func (h *StudioPageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid page ID format")
		return
	}

	if err := h.pageService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
