package views

import (
	"html/template"

	"github.com/bistrohq/bistro-web/models"
	"github.com/bistrohq/bistro-web/utils"
)

type CartLineView struct {
	MenuItemID int64
	Name       string
	UnitPrice  string
	Quantity   int
	LineTotal  string
}

// CartView is the render model for the cart fragment. The total is
// always re-derived from the lines; the server's total field is not
// trusted (it goes to zero on the same backend bug that eats order
// totals).
type CartView struct {
	Lines           []CartLineView
	Total           string
	Count           int
	Empty           bool
	CheckoutEnabled bool
}

func NewCartView(snapshot *models.CartSnapshot) CartView {
	if snapshot.Empty() {
		return CartView{Total: "0.00", Empty: true}
	}

	view := CartView{
		Lines:           make([]CartLineView, 0, len(snapshot.Items)),
		Total:           utils.FormatCurrency(snapshot.ComputedTotal()),
		Count:           snapshot.Count(),
		CheckoutEnabled: true,
	}
	for _, line := range snapshot.Items {
		price := line.MenuItem.Price.Float64()
		view.Lines = append(view.Lines, CartLineView{
			MenuItemID: line.MenuItemID,
			Name:       line.MenuItem.Name,
			UnitPrice:  utils.FormatCurrency(price),
			Quantity:   line.Quantity,
			LineTotal:  utils.FormatCurrency(price * float64(line.Quantity)),
		})
	}
	return view
}

// RenderCart turns a snapshot into the cart list fragment, or the
// dedicated empty state with checkout disabled.
func RenderCart(snapshot *models.CartSnapshot) (template.HTML, error) {
	return render("cart_items.html", NewCartView(snapshot))
}

// RenderCheckoutSummary is the read-only item summary on the checkout
// form.
func RenderCheckoutSummary(snapshot *models.CartSnapshot) (template.HTML, error) {
	return render("checkout_summary.html", NewCartView(snapshot))
}
