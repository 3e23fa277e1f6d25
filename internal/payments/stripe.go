package payments

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway creates PaymentIntents through the official Stripe SDK. One
// instance per process; the API client is safe for concurrent use.
type StripeGateway struct {
	api      *client.API
	currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	if currency == "" {
		currency = "usd"
	}

	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeGateway{
		api:      api,
		currency: currency,
	}
}

func (g *StripeGateway) CreateIntent(req IntentRequest) (*Intent, error) {
	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(currency),
		Description:        stripe.String(req.Description),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.AddMetadata("business_id", req.BusinessID)

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}
