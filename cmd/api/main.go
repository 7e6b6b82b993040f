package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-checkout-demo/internal/cart"
	"storefront-checkout-demo/internal/client"
	"storefront-checkout-demo/internal/config"
	"storefront-checkout-demo/internal/repository"
	"storefront-checkout-demo/internal/server"
	"storefront-checkout-demo/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.DatabaseURL)
	razorpayClient := client.NewRazorpayClient(&cfg.Razorpay)

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	if err := productRepo.Seed(context.Background()); err != nil {
		log.Fatal("seed products:", err)
	}

	carts := cart.NewStore(cfg.Checkout.CartTTL)
	defer carts.Close()

	checkoutService := service.NewCheckoutService(
		db,
		razorpayClient,
		carts,
		orderRepo,
		&cfg.Checkout,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(carts, productRepo, checkoutService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
