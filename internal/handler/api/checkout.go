package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "charmforge/internal/handler/dto/request"
	resdto "charmforge/internal/handler/dto/response"
	"charmforge/internal/handler/httperr"
	"charmforge/internal/pkg/errs"
	"charmforge/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
	}
}

// @Summary Prepare checkout
// @Description Re-check stock, add shipping and open a payment session
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) PrepareCheckout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.checkoutCommands.PrepareCheckout(c.Request.Context(), req.DesignID)
	if err != nil {
		var verrs commands.ValidationErrors
		switch {
		case errors.Is(err, errs.ErrDesignNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Design not found", nil)
		case errors.Is(err, errs.ErrAlreadyOrdered):
			httperr.AbortWithError(c, http.StatusConflict, err, "Design is already ordered", nil)
		case errors.As(err, &verrs):
			httperr.AbortWithError(c, http.StatusConflict, verrs, "Design validation failed", resdto.FromValidationErrors(verrs))
		default:
			slog.Error("prepare checkout failed", "error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// @Summary Finalize order
// @Description Complete an order for a payment reference. Safe to retry.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.FinalizeOrderRequest true "Finalize request"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkout/finalize [post]
func (h *CheckoutHandler) FinalizeOrder(c *gin.Context) {
	var req reqdto.FinalizeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.checkoutCommands.FinalizeOrder(c.Request.Context(), req.PaymentReference)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, errs.ErrPaymentNotCompleted):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment not completed", nil)
		case errors.Is(err, errs.ErrInsufficientStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "Charm stock is no longer sufficient", nil)
		default:
			slog.Error("finalize order failed", "error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFinalizeResult(result))
}
