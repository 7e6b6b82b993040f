package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"storefront.db"`

	Razorpay Razorpay `envPrefix:"RAZORPAY_"`
	Checkout Checkout `envPrefix:"CHECKOUT_"`
}

type Razorpay struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.razorpay.com"`
	KeyID      string `env:"KEY_ID"`
	KeySecret  string `env:"KEY_SECRET"`
}

type Checkout struct {
	Currency string `env:"CURRENCY" envDefault:"INR"`
	// ClearDelay is how long after a successful payment the cart sticks
	// around, so the confirmation view never races the clear.
	ClearDelay time.Duration `env:"CLEAR_DELAY" envDefault:"500ms"`
	// CartTTL is how long an idle cart session survives before cleanup.
	CartTTL time.Duration `env:"CART_TTL" envDefault:"2h"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
