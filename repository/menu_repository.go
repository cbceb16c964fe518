package repository

import (
	"github.com/andyrob2215/AAASmores/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// RecipeIngredient is one ingredient line attached to a menu listing.
type RecipeIngredient struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// MenuListing is a menu item plus its recipe and computed availability.
type MenuListing struct {
	entity.MenuItem
	RecipeIngredients []RecipeIngredient `json:"recipe_ingredients"`
	IsAvailable       bool               `json:"is_available"`
}

// ListVisible returns non-deleted visible items with availability computed at
// read time: the manual flag is overridden whenever any recipe ingredient is
// out of stock.
func (r *MenuRepository) ListVisible() ([]MenuListing, error) {
	var items []entity.MenuItem
	if err := r.DB.
		Where("is_deleted = ? AND is_visible = ?", false, true).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return r.withRecipes(items)
}

// ListForAdmin returns every non-deleted item, hidden ones included.
func (r *MenuRepository) ListForAdmin() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("is_deleted = ?", false).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) withRecipes(items []entity.MenuItem) ([]MenuListing, error) {
	out := make([]MenuListing, 0, len(items))
	for _, m := range items {
		var rows []struct {
			ID        uint
			Name      string
			Quantity  int
			IsInStock bool
		}
		if err := r.DB.Table("recipe_items AS mr").
			Select("i.id, i.name, mr.quantity, i.is_in_stock").
			Joins("JOIN ingredients i ON i.id = mr.ingredient_id").
			Where("mr.menu_item_id = ? AND mr.deleted_at IS NULL", m.ID).
			Scan(&rows).Error; err != nil {
			return nil, err
		}

		listing := MenuListing{MenuItem: m, IsAvailable: m.ManualAvailability}
		for _, row := range rows {
			listing.RecipeIngredients = append(listing.RecipeIngredients, RecipeIngredient{
				ID: row.ID, Name: row.Name, Qty: row.Quantity,
			})
			if !row.IsInStock {
				listing.IsAvailable = false
			}
		}
		out = append(out, listing)
	}
	return out, nil
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Where("is_deleted = ?", false).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(tx *gorm.DB, m *entity.MenuItem) error {
	return tx.Create(m).Error
}

func (r *MenuRepository) Update(tx *gorm.DB, id uint, fields map[string]any) error {
	return tx.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// SoftDelete hides the item without losing order history rows pointing at it.
func (r *MenuRepository) SoftDelete(id uint) error {
	return r.DB.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

// ---------------- Recipes ----------------

// ReplaceRecipe rewrites the full recipe for a menu item.
func (r *MenuRepository) ReplaceRecipe(tx *gorm.DB, menuItemID uint, rows []entity.RecipeItem) error {
	if err := tx.Unscoped().
		Where("menu_item_id = ?", menuItemID).
		Delete(&entity.RecipeItem{}).Error; err != nil {
		return err
	}
	for i := range rows {
		rows[i].MenuItemID = menuItemID
		if rows[i].Quantity <= 0 {
			rows[i].Quantity = 1
		}
		if err := tx.Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *MenuRepository) GetRecipe(menuItemID uint) ([]entity.RecipeItem, error) {
	var rows []entity.RecipeItem
	err := r.DB.Where("menu_item_id = ?", menuItemID).Find(&rows).Error
	return rows, err
}

func (r *MenuRepository) AllRecipes() ([]entity.RecipeItem, error) {
	var rows []entity.RecipeItem
	err := r.DB.Find(&rows).Error
	return rows, err
}
