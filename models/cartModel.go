package models

import "math"

// MenuItemRef is the embedded menu item inside a cart line.
type MenuItemRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price Amount `json:"price"`
}

type CartLine struct {
	MenuItemID int64       `json:"menuItemId"`
	MenuItem   MenuItemRef `json:"menuItem"`
	Quantity   int         `json:"quantity"`
}

// CartSnapshot is the cart service's full view of the session's cart.
// It is never cached: every view fetches it fresh and every mutation
// response replaces the previous one wholesale.
type CartSnapshot struct {
	Items []CartLine `json:"items"`
	Total Amount     `json:"total"`
}

// ComputedTotal re-derives the total from the lines rather than trusting
// the server's total field, which is unreliable on this backend.
func (s *CartSnapshot) ComputedTotal() float64 {
	var total float64
	for _, line := range s.Items {
		total += line.MenuItem.Price.Float64() * float64(line.Quantity)
	}
	return math.Round(total*100) / 100
}

// Count is the cart badge number: the sum of line quantities.
func (s *CartSnapshot) Count() int {
	var count int
	for _, line := range s.Items {
		count += line.Quantity
	}
	return count
}

func (s *CartSnapshot) Empty() bool {
	return s == nil || len(s.Items) == 0
}
