package handlers

import (
	"fmt"
	"net/http"

	"Ecommerce/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOrdersHandler lists the signed-in buyer's orders, product photos omitted.
func GetOrdersHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error While Getting Orders",
		})
		return
	}

	var orders []models.Order
	err := db.
		Where("buyer_id = ?", userID).
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.position ASC")
		}).
		Preload("OrderItems.Product", func(db *gorm.DB) *gorm.DB {
			return db.Omit("photo")
		}).
		Preload("Buyer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error While Getting Orders",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetAllOrdersHandler lists every order for the admin back office, newest first.
func GetAllOrdersHandler(c *gin.Context, db *gorm.DB) {
	var orders []models.Order
	err := db.
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.position ASC")
		}).
		Preload("OrderItems.Product", func(db *gorm.DB) *gorm.DB {
			return db.Omit("photo")
		}).
		Preload("Buyer", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error While Getting Orders",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// OrderStatusHandler moves an order through the status enum.
func OrderStatusHandler(c *gin.Context, db *gorm.DB) {
	orderID := c.Param("orderId")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error While Updating Order",
			"error":   err.Error(),
		})
		return
	}

	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error While Updating Order",
			"error":   fmt.Sprintf("invalid status %q", req.Status),
		})
		return
	}

	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error While Updating Order",
			"error":   err.Error(),
		})
		return
	}

	order.Status = req.Status
	if err := db.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error While Updating Order",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}
