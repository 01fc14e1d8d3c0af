package views

import (
	"fmt"
	"html/template"

	"github.com/bistrohq/bistro-web/models"
	"github.com/bistrohq/bistro-web/utils"
)

type OrderItemView struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type OrderView struct {
	ID           int64
	Status       string
	Total        string
	Date         string
	ItemsSummary string
	CanCancel    bool
	Items        []OrderItemView
}

func NewOrderView(order *models.Order) OrderView {
	view := OrderView{
		ID:        order.ID,
		Status:    order.Status,
		Total:     utils.FormatCurrency(order.TotalAmount.Float64()),
		Date:      utils.FormatDate(order.OrderDate),
		CanCancel: models.CanCancel(order.Status),
	}

	for _, item := range order.Items {
		price := item.Price.Float64()
		view.Items = append(view.Items, OrderItemView{
			Name:      item.MenuItemName,
			Quantity:  item.Quantity,
			UnitPrice: utils.FormatCurrency(price),
			LineTotal: utils.FormatCurrency(price * float64(item.Quantity)),
		})
	}

	view.ItemsSummary = itemsSummary(order.Items)
	return view
}

func itemsSummary(items []models.OrderItem) string {
	if len(items) == 0 {
		return ""
	}
	first := items[0]
	if len(items) == 1 {
		return fmt.Sprintf("%s × %d", first.MenuItemName, first.Quantity)
	}
	others := len(items) - 1
	if others == 1 {
		return fmt.Sprintf("%s and 1 more item", first.MenuItemName)
	}
	return fmt.Sprintf("%s and %d more items", first.MenuItemName, others)
}

// RenderOrderList renders the order history rows. The cancel control is
// emitted only for orders that are still pending.
func RenderOrderList(orders []models.Order) (template.HTML, error) {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, NewOrderView(&orders[i]))
	}
	return render("order_list.html", views)
}

func RenderOrderDetail(order *models.Order) (template.HTML, error) {
	return render("order_detail.html", NewOrderView(order))
}
