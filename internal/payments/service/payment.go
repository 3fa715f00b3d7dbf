package service

import (
	"context"

	"aircnc/pkg/config"
	apperrors "aircnc/pkg/errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// IntentCreator is the single payment-provider operation this service
// consumes: create a card-payable intent and hand back its client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}

type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type paymentService struct {
	provider IntentCreator
	cfg      *config.Config
}

func NewPaymentService(provider IntentCreator, cfg *config.Config) PaymentService {
	return &paymentService{
		provider: provider,
		cfg:      cfg,
	}
}

// CreateIntent converts the price to the smallest currency unit (cents,
// truncated per provider convention) and creates a usd card intent.
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)

	clientSecret, err := s.provider.CreateIntent(ctx, amount, "usd")
	if err != nil {
		s.cfg.Log.Error("Failed to create payment intent", "amount", amount, "error", err)
		return "", apperrors.Internal("Failed to create payment intent", err)
	}

	s.cfg.Log.Info("Payment intent created", "amount", amount)
	return clientSecret, nil
}
