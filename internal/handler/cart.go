package handler

import (
	"net/http"

	"storefront-checkout-demo/internal/cart"
	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/middleware"
	"storefront-checkout-demo/internal/repository"
	"storefront-checkout-demo/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CartHandler struct {
	carts           *cart.Store
	products        repository.ProductRepository
	checkoutService service.CheckoutService
}

func NewCartHandler(carts *cart.Store, products repository.ProductRepository, checkoutService service.CheckoutService) *CartHandler {
	return &CartHandler{
		carts:           carts,
		products:        products,
		checkoutService: checkoutService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	items := h.carts.Items(middleware.SessionID(c))
	if items == nil {
		items = []cart.Item{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// Legacy branch: the original cart endpoint doubled as the payment
	// order creation call. Kept on the wire, but it never reads the item
	// fields and never mutates the cart.
	if req.CreateOrder {
		orderID, err := h.checkoutService.CreateBareIntent(ctx)
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, map[string]string{"orderId": orderID})
	}

	item := cart.Item{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Name:      req.Name,
		UnitPrice: req.Price,
		ImageURL:  req.ImageURL,
	}

	// Fill name/price from the catalog when the client sent only an id.
	if item.ProductID != "" && (item.Name == "" || item.UnitPrice.IsZero()) {
		if product, err := h.products.FindByID(ctx, item.ProductID); err == nil {
			if item.Name == "" {
				item.Name = product.Name
			}
			if item.UnitPrice.IsZero() {
				item.UnitPrice = decimal.NewFromInt(product.Price).Div(decimal.NewFromInt(100))
			}
			if item.ImageURL == "" {
				item.ImageURL = product.ImageURL
			}
		}
	}

	if err := h.carts.AddItem(middleware.SessionID(c), item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Product ID and quantity are required")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Item added to cart"})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	h.carts.Clear(middleware.SessionID(c))
	return c.JSON(http.StatusOK, map[string]string{"message": "Cart cleared"})
}

func (h *CartHandler) ListProducts(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}
