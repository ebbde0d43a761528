package handlers

import (
	"log"
	"net/http"

	"Ecommerce/gateway"
	"Ecommerce/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BraintreeTokenHandler passes the gateway-issued client token through.
func BraintreeTokenHandler(c *gin.Context, gw gateway.Gateway) {
	token, err := gw.ClientToken(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientToken": token,
	})
}

// BraintreePaymentHandler sums the submitted cart, runs the sale through the
// gateway and, only on gateway success, persists the order for the buyer.
func BraintreePaymentHandler(c *gin.Context, db *gorm.DB, gw gateway.Gateway) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "unable to get user id",
		})
		return
	}

	var req struct {
		Nonce string `json:"nonce"`
		Cart  []struct {
			ID    uint    `json:"_id"`
			Price float64 `json:"price"`
		} `json:"cart"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	if len(req.Cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "cart is empty",
		})
		return
	}

	total := 0.0
	for _, item := range req.Cart {
		total += item.Price
	}

	result, err := gw.Sale(c, total, req.Nonce)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	order := models.Order{
		BuyerID:        userID.(uint),
		Status:         models.StatusNotProcessed,
		PaymentID:      result.TransactionID,
		PaymentStatus:  result.Status,
		PaymentSuccess: true,
	}
	for i, item := range req.Cart {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ProductID: item.ID,
			Position:  i,
			Price:     item.Price,
		})
	}

	// The sale already settled at the gateway; a persistence failure here is
	// logged but not compensated.
	if err := db.Create(&order).Error; err != nil {
		log.Printf("order persisting failed after gateway success (transaction %s): %v",
			result.TransactionID, err)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
