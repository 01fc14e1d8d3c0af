package models

type MenuItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       Amount `json:"price"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	Available   bool   `json:"available"`
	Featured    bool   `json:"featured"`
}

// DashboardStats is the aggregate payload from api/admin/dashboard.
type DashboardStats struct {
	TotalOrders       int            `json:"totalOrders"`
	TotalRevenue      Amount         `json:"totalRevenue"`
	PendingOrders     int            `json:"pendingOrders"`
	TotalUsers        int            `json:"totalUsers"`
	OrderStatusCounts map[string]int `json:"orderStatusCounts"`
	RecentOrders      []Order        `json:"recentOrders"`
}
