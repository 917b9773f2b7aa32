package api

import (
	"errors"
	"log/slog"
	"net/http"

	"charmforge/internal/domain/user"
	reqdto "charmforge/internal/handler/dto/request"
	resdto "charmforge/internal/handler/dto/response"
	"charmforge/internal/handler/httperr"
	"charmforge/internal/handler/middleware"
	"charmforge/internal/pkg/errs"
	"charmforge/internal/usecase/commands"
	"charmforge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List bracelets
// @Description List active bracelets. Admins may include inactive ones.
// @Tags catalog
// @Produce json
// @Param include_inactive query bool false "Include inactive bracelets"
// @Success 200 {array} resdto.BraceletResponse
// @Router /bracelets [get]
func (h *CatalogHandler) ListBracelets(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true" && isAdmin(c)

	views, err := h.catalogQueries.ListBracelets(c.Request.Context(), includeInactive)
	if err != nil {
		slog.Error("list bracelets failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]*resdto.BraceletResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBraceletView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get bracelet
// @Description Get bracelet by slug
// @Tags catalog
// @Produce json
// @Param slug path string true "Bracelet slug"
// @Success 200 {object} resdto.BraceletResponse
// @Failure 404 {object} httperr.Response
// @Router /bracelets/{slug} [get]
func (h *CatalogHandler) GetBracelet(c *gin.Context) {
	view, err := h.catalogQueries.GetBraceletBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, errs.ErrBraceletNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Bracelet not found", nil)
			return
		}
		slog.Error("get bracelet failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBraceletView(view))
}

// @Summary List charms
// @Description List active charms. Admins may include inactive ones.
// @Tags catalog
// @Produce json
// @Param include_inactive query bool false "Include inactive charms"
// @Success 200 {array} resdto.CharmResponse
// @Router /charms [get]
func (h *CatalogHandler) ListCharms(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true" && isAdmin(c)

	views, err := h.catalogQueries.ListCharms(c.Request.Context(), includeInactive)
	if err != nil {
		slog.Error("list charms failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]*resdto.CharmResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromCharmView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create bracelet
// @Description Create a new bracelet (admin only)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBraceletRequest true "Bracelet request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/bracelets [post]
func (h *CatalogHandler) CreateBracelet(c *gin.Context) {
	var req reqdto.CreateBraceletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.catalogCommands.CreateBracelet(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err, commands.ErrBraceletSlugTaken, "Bracelet slug already taken")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update bracelet
// @Description Update bracelet fields (admin only)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bracelet ID"
// @Param request body reqdto.UpdateBraceletRequest true "Bracelet patch"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bracelets/{id} [patch]
func (h *CatalogHandler) UpdateBracelet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateBraceletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.catalogCommands.UpdateBracelet(c.Request.Context(), id, req); err != nil {
		h.writeCatalogError(c, err, commands.ErrBraceletSlugTaken, "Bracelet slug already taken")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create charm
// @Description Create a new charm (admin only)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCharmRequest true "Charm request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/charms [post]
func (h *CatalogHandler) CreateCharm(c *gin.Context) {
	var req reqdto.CreateCharmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.catalogCommands.CreateCharm(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err, commands.ErrCharmSkuTaken, "Charm sku already taken")
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update charm
// @Description Update charm fields (admin only)
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Charm ID"
// @Param request body reqdto.UpdateCharmRequest true "Charm patch"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/charms/{id} [patch]
func (h *CatalogHandler) UpdateCharm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateCharmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.catalogCommands.UpdateCharm(c.Request.Context(), id, req); err != nil {
		h.writeCatalogError(c, err, commands.ErrCharmSkuTaken, "Charm sku already taken")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) writeCatalogError(c *gin.Context, err, conflictErr error, conflictMsg string) {
	switch {
	case errors.Is(err, conflictErr):
		httperr.AbortWithError(c, http.StatusConflict, err, conflictMsg, nil)
	case errors.Is(err, errs.ErrBraceletNotFound), errors.Is(err, errs.ErrCharmNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		slog.Error("catalog write failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func isAdmin(c *gin.Context) bool {
	role, ok := middleware.GetUserRole(c)
	return ok && role == user.RoleAdmin
}
