package services

import (
	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	DB   *gorm.DB
	Repo *repository.MenuRepository
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository) *MenuService {
	return &MenuService{DB: db, Repo: repo}
}

// RecipeIn is an ingredient reference from the admin form. A bare ID list
// normalizes to quantity 1 in the controller.
type RecipeIn struct {
	ID  uint `json:"id"`
	Qty int  `json:"qty"`
}

func (s *MenuService) ListPublic() ([]repository.MenuListing, error) {
	return s.Repo.ListVisible()
}

// Create inserts the item and its recipe links in one transaction.
func (s *MenuService) Create(item *entity.MenuItem, recipe []RecipeIn) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, item); err != nil {
			return err
		}
		return s.Repo.ReplaceRecipe(tx, item.ID, toRecipeRows(recipe))
	})
}

// Update rewrites item fields; the recipe is only touched when the form sent
// an ingredient list, and the image only when a new one was uploaded.
func (s *MenuService) Update(id uint, fields map[string]any, recipe []RecipeIn, recipeSent bool) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, id, fields); err != nil {
			return err
		}
		if recipeSent {
			return s.Repo.ReplaceRecipe(tx, id, toRecipeRows(recipe))
		}
		return nil
	})
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.SoftDelete(id)
}

func toRecipeRows(recipe []RecipeIn) []entity.RecipeItem {
	rows := make([]entity.RecipeItem, 0, len(recipe))
	for _, r := range recipe {
		qty := r.Qty
		if qty <= 0 {
			qty = 1
		}
		rows = append(rows, entity.RecipeItem{IngredientID: r.ID, Quantity: qty})
	}
	return rows
}
