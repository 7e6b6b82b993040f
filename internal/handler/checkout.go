package handler

import (
	"net/http"

	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/middleware"
	"storefront-checkout-demo/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) GetCheckout(c echo.Context) error {
	state, err := h.checkoutService.Begin(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *CheckoutHandler) CreateIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var form dto.CheckoutForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	intent, err := h.checkoutService.Submit(ctx, middleware.SessionID(c), &form)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, intent)
}

func (h *CheckoutHandler) PaymentSuccess(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentSuccessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	orderID, err := h.checkoutService.CompletePayment(ctx, middleware.SessionID(c), &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"orderId": orderID})
}

func (h *CheckoutHandler) PaymentFailure(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentFailureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err := h.checkoutService.FailPayment(ctx, middleware.SessionID(c), req.OrderID, req.Reason)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": service.StatusPaymentFailed})
}

func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	orderID := c.Param("orderId")
	if orderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing order id")
	}

	order, err := h.checkoutService.Confirmation(c.Request().Context(), middleware.SessionID(c), orderID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, order)
}
