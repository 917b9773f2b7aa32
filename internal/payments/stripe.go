package payments

import (
	"context"
	"strings"

	"charmforge/internal/pkg/config"
	"charmforge/internal/pkg/errs"
	"charmforge/internal/usecase/commands"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

type stripeSessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeGateway implements the checkout payment port with Stripe Checkout
// sessions. One session per payment reference; the reference doubles as the
// Stripe idempotency key.
type StripeGateway struct {
	sessions   stripeSessionAPI
	successURL string
	cancelURL  string
	locale     string
}

func NewStripeGateway(cfg config.StripeConfig, checkout config.CheckoutConfig) (*StripeGateway, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errs.New("stripe api key is required")
	}

	sc := client.New(apiKey, nil)
	return &StripeGateway{
		sessions:   sc.CheckoutSessions,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		locale:     checkout.Locale,
	}, nil
}

// newStripeGatewayWithSessions is the test seam.
func newStripeGatewayWithSessions(sessions stripeSessionAPI, successURL, cancelURL, locale string) *StripeGateway {
	return &StripeGateway{
		sessions:   sessions,
		successURL: successURL,
		cancelURL:  cancelURL,
		locale:     locale,
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, req commands.PaymentSessionRequest) (*commands.PaymentSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(req.Currency)),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
			},
		},
		Metadata: map[string]string{
			"payment_reference": req.Reference,
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.Reference)
	if g.locale != "" {
		params.Locale = stripe.String(strings.ReplaceAll(strings.ToLower(g.locale), "_", "-"))
	}

	session, err := g.sessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "create stripe checkout session")
	}

	return &commands.PaymentSession{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (g *StripeGateway) VerifyCompleted(ctx context.Context, sessionID string) (bool, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := g.sessions.Get(sessionID, params)
	if err != nil {
		return false, errs.Wrap(err, "get stripe checkout session")
	}

	return session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}
