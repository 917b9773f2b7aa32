package components

import (
	"charmforge/internal/payments"
	"charmforge/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentsModule = fx.Module("payments",
	fx.Provide(
		fx.Annotate(
			payments.NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)
