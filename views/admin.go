package views

import (
	"html/template"

	"github.com/bistrohq/bistro-web/models"
	"github.com/bistrohq/bistro-web/utils"
)

type DashboardView struct {
	TotalOrders       int
	TotalRevenue      string
	PendingOrders     int
	TotalUsers        int
	OrderStatusCounts map[string]int
	RecentOrders      []OrderView
}

func RenderDashboard(stats *models.DashboardStats) (template.HTML, error) {
	view := DashboardView{
		TotalOrders:       stats.TotalOrders,
		TotalRevenue:      utils.FormatCurrency(stats.TotalRevenue.Float64()),
		PendingOrders:     stats.PendingOrders,
		TotalUsers:        stats.TotalUsers,
		OrderStatusCounts: stats.OrderStatusCounts,
	}
	for i := range stats.RecentOrders {
		view.RecentOrders = append(view.RecentOrders, NewOrderView(&stats.RecentOrders[i]))
	}
	return render("dashboard.html", view)
}

type AdminOrdersView struct {
	Orders   []OrderView
	Statuses []string
}

// RenderAdminOrders renders the back-office order table. Unlike the
// customer view, the status control offers every state; the server is
// trusted to validate transitions.
func RenderAdminOrders(orders []models.Order) (template.HTML, error) {
	view := AdminOrdersView{Statuses: models.AllStatuses}
	for i := range orders {
		view.Orders = append(view.Orders, NewOrderView(&orders[i]))
	}
	return render("admin_orders.html", view)
}

func RenderUsersTable(users []models.SessionUser) (template.HTML, error) {
	return render("users_table.html", users)
}

func RenderAdminMenu(items []models.MenuItem) (template.HTML, error) {
	return render("admin_menu.html", menuItemViews(items))
}
