package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Invoicer"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Catalog struct {
		// Path to the price list, either .xlsx or .csv.
		Path string `envconfig:"CATALOG_PATH" default:"Price List.xlsx"`
	}

	Business struct {
		Name     string `envconfig:"BUSINESS_NAME" default:"Strip Buyer Surplus LLC"`
		Street   string `envconfig:"BUSINESS_STREET" default:"2664 Alfreda Way"`
		CityLine string `envconfig:"BUSINESS_CITY" default:"Redding, CA 96002"`
	}

	Payment struct {
		Instructions string `envconfig:"PAYMENT_INSTRUCTIONS" default:"Please Make Payment to Paypal"`
		Zelle        string `envconfig:"PAYMENT_ZELLE" default:"derek@stripbuyer.com"`
	}

	Shipping struct {
		Carrier string `envconfig:"SHIPPING_CARRIER" default:"UPS"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
