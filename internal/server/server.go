package server

import (
	"context"

	"storefront-checkout-demo/internal/cart"
	"storefront-checkout-demo/internal/handler"
	appmiddleware "storefront-checkout-demo/internal/middleware"
	"storefront-checkout-demo/internal/repository"
	"storefront-checkout-demo/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	sessionHandler  *handler.SessionHandler
}

func NewServer(
	carts *cart.Store,
	products repository.ProductRepository,
	checkoutService service.CheckoutService,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmiddleware.Session())

	e.Validator = NewValidator()

	s := &Server{
		echo:            e,
		cartHandler:     handler.NewCartHandler(carts, products, checkoutService),
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
		sessionHandler:  handler.NewSessionHandler(carts),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/products", s.cartHandler.ListProducts)

	// -------- cart --------
	api.GET("/cart", s.cartHandler.GetCart)
	api.POST("/cart", s.cartHandler.AddItem)
	api.DELETE("/cart", s.cartHandler.ClearCart)

	// -------- checkout --------
	checkout := api.Group("/checkout")
	checkout.GET("", s.checkoutHandler.GetCheckout)
	checkout.POST("/intent", s.checkoutHandler.CreateIntent)
	checkout.POST("/callback/success", s.checkoutHandler.PaymentSuccess)
	checkout.POST("/callback/failure", s.checkoutHandler.PaymentFailure)

	api.GET("/orders/:orderId", s.checkoutHandler.GetOrder)

	// -------- navigation shell --------
	api.GET("/session", s.sessionHandler.GetSession)
	api.POST("/session/theme", s.sessionHandler.SetTheme)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
