package cmd

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/clock"
)

type CompositionRoot struct {
	configs Config
	clock   clock.Clock
	ids     kernel.IDGenerator
}

func NewCompositionRoot(configs Config) CompositionRoot {
	return CompositionRoot{
		configs: configs,
		clock:   clock.NewSystem(),
		ids:     kernel.NewRandomIDGenerator(),
	}
}

func (c *CompositionRoot) Clock() clock.Clock {
	return c.clock
}

func (c *CompositionRoot) IDGenerator() kernel.IDGenerator {
	return c.ids
}

func (c *CompositionRoot) CreateCheckoutService() services.CheckoutService {
	return services.NewCheckoutService()
}
