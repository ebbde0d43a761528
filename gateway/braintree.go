package gateway

import (
	"context"
	"math"

	"Ecommerce/config"

	braintree "github.com/braintree-go/braintree-go"
)

// BraintreeGateway adapts the Braintree SDK to the Gateway interface.
type BraintreeGateway struct {
	bt *braintree.Braintree
}

func NewBraintree(cfg config.BraintreeConfig) *BraintreeGateway {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}
	return &BraintreeGateway{
		bt: braintree.New(env, cfg.MerchantID, cfg.PublicKey, cfg.PrivateKey),
	}
}

func (g *BraintreeGateway) ClientToken(ctx context.Context) (string, error) {
	return g.bt.ClientToken().Generate(ctx)
}

func (g *BraintreeGateway) Sale(ctx context.Context, amount float64, nonce string) (SaleResult, error) {
	cents := int64(math.Round(amount * 100))
	tx, err := g.bt.Transaction().Create(ctx, &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             braintree.NewDecimal(cents, 2),
		PaymentMethodNonce: nonce,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	})
	if err != nil {
		return SaleResult{}, err
	}

	return SaleResult{
		TransactionID: tx.Id,
		Status:        string(tx.Status),
	}, nil
}
