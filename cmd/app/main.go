package main

import (
	"os"

	"ordering/cmd"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(configs)
	runCheckoutDemo(app, configs)
}

func getConfigs() cmd.Config {
	_ = godotenv.Load(".env")

	return cmd.Config{
		DefaultCurrency: envOrDefault("DEFAULT_CURRENCY", "USD"),
		DefaultLocale:   envOrDefault("DEFAULT_LOCALE", kernel.DefaultLocale),
	}
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// runCheckoutDemo walks one order through its whole lifecycle: create, add
// items, confirm, record the total on the customer, ship, and finally show
// that a shipped order rejects further changes.
func runCheckoutDemo(app cmd.CompositionRoot, configs cmd.Config) {
	currency, err := kernel.NewCurrency(configs.DefaultCurrency)
	if err != nil {
		log.Fatalf("invalid default currency: %v", err)
	}

	cust, err := customer.NewCustomer("cust-1", "Alice")
	if err != nil {
		log.Fatalf("create customer: %v", err)
	}

	ord, err := order.NewOrder(
		kernel.NewUUID(),
		cust.ID(),
		currency,
		kernel.NewDateTimeNow(app.Clock()),
		app.IDGenerator(),
	)
	if err != nil {
		log.Fatalf("create order: %v", err)
	}
	log.Infof("order %s created for customer %s at %s", ord.ID(), ord.CustomerID(), ord.OrderedAt())

	if err = ord.AddItem("product-1", 2, decimal.NewFromInt(100)); err != nil {
		log.Fatalf("add item: %v", err)
	}
	if err = ord.AddItem("product-2", 20, decimal.NewFromInt(50)); err != nil {
		log.Fatalf("add item: %v", err)
	}

	if err = ord.Confirm(); err != nil {
		log.Fatalf("confirm order: %v", err)
	}
	log.Infof("order %s confirmed with %d items", ord.ID(), len(ord.Items()))

	checkout := app.CreateCheckoutService()
	total, err := checkout.RecordOrderTotal(ord, cust)
	if err != nil {
		log.Fatalf("record order total: %v", err)
	}
	log.Infof("total for %s: %s", cust.Name(), total.Format(configs.DefaultLocale))

	if err = ord.Ship(); err != nil {
		log.Fatalf("ship order: %v", err)
	}
	log.Infof("order %s shipped", ord.ID())

	if err = ord.AddItem("product-3", 1, decimal.NewFromInt(10)); err != nil {
		log.Warnf("late item rejected: %v", err)
	}
	if err = ord.Cancel(); err != nil {
		log.Warnf("late cancellation rejected: %v", err)
	}
}
