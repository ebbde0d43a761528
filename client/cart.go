package client

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Descriptions get cut to this many characters on the listing cards.
const descriptionLimit = 60

var pricePrinter = message.NewPrinter(language.English)

// TotalPrice sums the cart and renders it as a grouped dollar amount,
// e.g. "$1,515.99". An empty cart renders "$0.00".
func TotalPrice(items []CartItem) string {
	total := 0.0
	for _, item := range items {
		total += item.Price
	}
	return pricePrinter.Sprintf("$%.2f", total)
}

// AddToCart appends the item and mirrors the new cart to the store. The
// in-memory slice is updated even when persisting fails.
func (s *Store) AddToCart(items []CartItem, item CartItem) []CartItem {
	items = append(items, item)
	// optimistic: the in-memory cart wins even when the mirror write fails
	_ = s.SaveCart(items)
	return items
}

// RemoveFromCart drops the first item with the given id.
func (s *Store) RemoveFromCart(items []CartItem, id uint) []CartItem {
	for i, item := range items {
		if item.ID == id {
			items = append(items[:i], items[i+1:]...)
			break
		}
	}
	_ = s.SaveCart(items)
	return items
}

// TruncateDescription cuts a description for card rendering, appending an
// ellipsis when something was dropped.
func TruncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= descriptionLimit {
		return description
	}
	return string(runes[:descriptionLimit]) + "..."
}
