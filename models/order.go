package models

import "gorm.io/gorm"

// Order statuses, mutated by admins only.
const (
	StatusNotProcessed = "Not Processed"
	StatusProcessing   = "Processing"
	StatusShipped      = "Shipped"
	StatusDelivered    = "Delivered"
	StatusCancelled    = "Cancelled"
)

var OrderStatuses = []string{
	StatusNotProcessed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

type Order struct {
	gorm.Model
	OrderItems     []OrderItem `json:"products"`
	BuyerID        uint        `gorm:"not null" json:"-"`
	Buyer          User        `json:"buyer"`
	Status         string      `gorm:"not null;default:'Not Processed'" json:"status"`
	PaymentID      string      `json:"-"`
	PaymentStatus  string      `json:"-"`
	PaymentSuccess bool        `json:"paymentSuccess"`
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
