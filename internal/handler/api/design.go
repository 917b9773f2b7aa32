package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "charmforge/internal/handler/dto/request"
	resdto "charmforge/internal/handler/dto/response"
	"charmforge/internal/handler/httperr"
	"charmforge/internal/handler/middleware"
	"charmforge/internal/pkg/config"
	"charmforge/internal/pkg/errs"
	"charmforge/internal/usecase/commands"
	"charmforge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DesignHandler struct {
	designCommands commands.DesignCommands
	designQueries  queries.DesignQueries
	locale         string
}

func NewDesignHandler(designCommands commands.DesignCommands, designQueries queries.DesignQueries, checkoutCfg config.CheckoutConfig) *DesignHandler {
	return &DesignHandler{
		designCommands: designCommands,
		designQueries:  designQueries,
		locale:         checkoutCfg.Locale,
	}
}

// @Summary Create design
// @Description Validate, price and persist a new bracelet design
// @Tags designs
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDesignRequest true "Design request"
// @Success 201 {object} resdto.DesignResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /designs [post]
func (h *DesignHandler) CreateDesign(c *gin.Context) {
	var req reqdto.CreateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	view, err := h.designCommands.CreateDesign(c.Request.Context(), req, userID)
	if err != nil {
		var verrs commands.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			httperr.AbortWithError(c, validationStatus(verrs), verrs, "Design validation failed", resdto.FromValidationErrors(verrs))
		case errors.Is(err, errs.ErrBraceletNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Bracelet not found", nil)
		case errors.Is(err, errs.ErrBraceletInactive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Bracelet is not available", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			slog.Error("create design failed", "error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDesignView(view, h.locale))
}

// @Summary Get design
// @Description Get design by ID with stored totals
// @Tags designs
// @Produce json
// @Param id path string true "Design ID"
// @Success 200 {object} resdto.DesignResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /designs/{id} [get]
func (h *DesignHandler) GetDesign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.designQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrDesignNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Design not found", nil)
			return
		}
		slog.Error("get design failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDesignView(view, h.locale))
}

// @Summary Preview design
// @Description Resolve stored placements to path-unit positions and angles
// @Tags designs
// @Produce json
// @Param id path string true "Design ID"
// @Success 200 {object} resdto.DesignPreviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /designs/{id}/preview [get]
func (h *DesignHandler) PreviewDesign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	preview, err := h.designQueries.Preview(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrDesignNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Design not found", nil)
			return
		}
		slog.Error("preview design failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDesignPreview(preview))
}

// validationStatus picks the response code for an aggregated violation set.
// Stock and per-charm limit conflicts outrank unknown charms, which outrank
// plain field bound errors.
func validationStatus(verrs commands.ValidationErrors) int {
	switch {
	case verrs.HasKind(commands.KindStock), verrs.HasKind(commands.KindLimit):
		return http.StatusConflict
	case verrs.HasKind(commands.KindUnknownCharm):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
