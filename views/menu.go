package views

import (
	"html/template"

	"github.com/bistrohq/bistro-web/models"
	"github.com/bistrohq/bistro-web/utils"
)

type MenuItemView struct {
	ID          int64
	Name        string
	Description string
	Price       string
	Category    string
	ImageURL    string
	Available   bool
	Featured    bool
}

func NewMenuItemView(item *models.MenuItem) MenuItemView {
	return MenuItemView{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       utils.FormatCurrency(item.Price.Float64()),
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Available:   item.Available,
		Featured:    item.Featured,
	}
}

func menuItemViews(items []models.MenuItem) []MenuItemView {
	views := make([]MenuItemView, 0, len(items))
	for i := range items {
		views = append(views, NewMenuItemView(&items[i]))
	}
	return views
}

func RenderMenuGrid(items []models.MenuItem) (template.HTML, error) {
	return render("menu_grid.html", menuItemViews(items))
}
