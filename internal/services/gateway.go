package services

import (
	"context"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// PaymentIntentRef : référence de l'intention de paiement côté passerelle
type PaymentIntentRef struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// PaymentGateway : abstraction de la passerelle de paiement hébergée,
// injectée dans PaymentService pour que les tests substituent un fake
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*PaymentIntentRef, error)
}

// StripeGateway crée des PaymentIntents Stripe (la clé API est globale au
// process, initialisée dans main)
type StripeGateway struct{}

func (StripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*PaymentIntentRef, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: metadata,
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return &PaymentIntentRef{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}
