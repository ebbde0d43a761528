package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"

	"Ecommerce/gateway"
	"Ecommerce/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fakeGateway records the sale it was asked to run.
type fakeGateway struct {
	token     string
	tokenErr  error
	saleErr   error
	gotAmount float64
	gotNonce  string
}

func (f *fakeGateway) ClientToken(ctx context.Context) (string, error) {
	return f.token, f.tokenErr
}

func (f *fakeGateway) Sale(ctx context.Context, amount float64, nonce string) (gateway.SaleResult, error) {
	f.gotAmount = amount
	f.gotNonce = nonce
	if f.saleErr != nil {
		return gateway.SaleResult{}, f.saleErr
	}
	return gateway.SaleResult{TransactionID: "txn-1", Status: "submitted_for_settlement"}, nil
}

func TestBraintreeTokenPassthrough(t *testing.T) {
	gw := &fakeGateway{token: "client-token-abc"}

	router := gin.New()
	router.GET("/braintree/token", func(c *gin.Context) {
		BraintreeTokenHandler(c, gw)
	})

	recorder := performJSON(router, http.MethodGet, "/braintree/token", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}
	body := decodeBody(t, recorder)
	if body["clientToken"] != "client-token-abc" {
		t.Errorf("clientToken = %v", body["clientToken"])
	}
}

func TestBraintreeTokenGatewayError(t *testing.T) {
	gw := &fakeGateway{tokenErr: errors.New("gateway down")}

	router := gin.New()
	router.GET("/braintree/token", func(c *gin.Context) {
		BraintreeTokenHandler(c, gw)
	})

	recorder := performJSON(router, http.MethodGet, "/braintree/token", nil)
	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusInternalServerError)
	}
	body := decodeBody(t, recorder)
	if body["error"] != "gateway down" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestBraintreePaymentPersistsOrderOnSuccess(t *testing.T) {
	db := setupTestDB(t)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleCustomer)
	category := createTestCategory(t, db, "Electronics", "electronics")
	laptop := createTestProduct(t, db, "laptop", 1500.66, category.ID)
	mouse := createTestProduct(t, db, "mouse", 15.33, category.ID)

	gw := &fakeGateway{}
	router := signedInRouter(buyer.ID)
	router.POST("/braintree/payment", func(c *gin.Context) {
		BraintreePaymentHandler(c, db, gw)
	})

	recorder := performJSON(router, http.MethodPost, "/braintree/payment", map[string]interface{}{
		"nonce": "fake-nonce",
		"cart": []map[string]interface{}{
			{"_id": laptop.ID, "price": laptop.Price},
			{"_id": mouse.ID, "price": mouse.Price},
		},
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	body := decodeBody(t, recorder)
	if body["ok"] != true {
		t.Errorf("body = %v", body)
	}

	if gw.gotNonce != "fake-nonce" {
		t.Errorf("nonce = %q", gw.gotNonce)
	}
	if math.Abs(gw.gotAmount-1515.99) > 1e-9 {
		t.Errorf("amount = %v, want 1515.99", gw.gotAmount)
	}

	var order models.Order
	err := db.Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.position ASC")
	}).First(&order, "buyer_id = ?", buyer.ID).Error
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if order.PaymentID != "txn-1" || !order.PaymentSuccess {
		t.Errorf("payment record = %+v", order)
	}
	if len(order.OrderItems) != 2 {
		t.Fatalf("order items = %d, want 2", len(order.OrderItems))
	}
	if order.OrderItems[0].ProductID != laptop.ID || order.OrderItems[1].ProductID != mouse.ID {
		t.Errorf("item sequence not preserved: %+v", order.OrderItems)
	}
}

func TestBraintreePaymentGatewayFailureLeavesNoOrder(t *testing.T) {
	db := setupTestDB(t)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleCustomer)

	gw := &fakeGateway{saleErr: errors.New("card declined")}
	router := signedInRouter(buyer.ID)
	router.POST("/braintree/payment", func(c *gin.Context) {
		BraintreePaymentHandler(c, db, gw)
	})

	recorder := performJSON(router, http.MethodPost, "/braintree/payment", map[string]interface{}{
		"nonce": "fake-nonce",
		"cart":  []map[string]interface{}{{"_id": 1, "price": 10}},
	})
	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusInternalServerError)
	}
	body := decodeBody(t, recorder)
	if body["error"] != "card declined" {
		t.Errorf("error = %v", body["error"])
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Error("order persisted despite gateway failure")
	}
}

func TestBraintreePaymentEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	buyer := createTestUser(t, db, "buyer@example.com", models.RoleCustomer)

	gw := &fakeGateway{}
	router := signedInRouter(buyer.ID)
	router.POST("/braintree/payment", func(c *gin.Context) {
		BraintreePaymentHandler(c, db, gw)
	})

	recorder := performJSON(router, http.MethodPost, "/braintree/payment", map[string]interface{}{
		"nonce": "fake-nonce",
		"cart":  []map[string]interface{}{},
	})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
	if gw.gotNonce != "" {
		t.Error("gateway called for an empty cart")
	}
}
