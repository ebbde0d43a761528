package gateway

import "context"

// SaleResult is the subset of the gateway response the order record keeps.
type SaleResult struct {
	TransactionID string
	Status        string
}

// Gateway is the payment processor surface used by the payment handlers.
type Gateway interface {
	// ClientToken returns a token the browser payment widget initializes with.
	ClientToken(ctx context.Context) (string, error)
	// Sale submits a sale for the given amount against a payment-method nonce.
	Sale(ctx context.Context, amount float64, nonce string) (SaleResult, error)
}
