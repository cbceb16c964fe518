package services

import (
	"testing"

	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMenuService(t *testing.T, db *gorm.DB) *MenuService {
	t.Helper()
	return NewMenuService(db, repository.NewMenuRepository(db))
}

func seedIngredient(t *testing.T, db *gorm.DB, name string, inStock bool) entity.Ingredient {
	t.Helper()
	ing := entity.Ingredient{Name: name, IsInStock: inStock}
	require.NoError(t, db.Create(&ing).Error)
	if !inStock {
		require.NoError(t, db.Model(&ing).Update("is_in_stock", false).Error)
	}
	return ing
}

func TestMenuAvailability_OutOfStockIngredientOverridesManualFlag(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(t, db)

	choc := seedIngredient(t, db, "Chocolate", false)
	item := entity.MenuItem{Name: "Classic S'more", Price: 4.00, ManualAvailability: true, IsVisible: true}
	require.NoError(t, svc.Create(&item, []RecipeIn{{ID: choc.ID, Qty: 1}}))

	listings, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.False(t, listings[0].IsAvailable, "out-of-stock ingredient must win over the manual flag")

	// restock flips it back on the next read, no cache involved
	require.NoError(t, db.Model(&entity.Ingredient{}).Where("id = ?", choc.ID).
		Update("is_in_stock", true).Error)
	listings, err = svc.ListPublic()
	require.NoError(t, err)
	assert.True(t, listings[0].IsAvailable)
}

func TestMenuAvailability_ManualFlagAloneDisables(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(t, db)

	choc := seedIngredient(t, db, "Chocolate", true)
	item := entity.MenuItem{Name: "Classic S'more", Price: 4.00, IsVisible: true}
	require.NoError(t, svc.Create(&item, []RecipeIn{{ID: choc.ID, Qty: 1}}))
	require.NoError(t, db.Model(&item).Update("manual_availability", false).Error)

	listings, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.False(t, listings[0].IsAvailable)
}

func TestMenuList_HiddenAndDeletedItemsFiltered(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(t, db)

	visible := entity.MenuItem{Name: "Classic", Price: 4, ManualAvailability: true, IsVisible: true}
	hidden := entity.MenuItem{Name: "Secret", Price: 5, ManualAvailability: true}
	deleted := entity.MenuItem{Name: "Retired", Price: 6, ManualAvailability: true, IsVisible: true}
	require.NoError(t, svc.Create(&visible, nil))
	require.NoError(t, svc.Create(&hidden, nil))
	require.NoError(t, svc.Create(&deleted, nil))
	require.NoError(t, db.Model(&hidden).Update("is_visible", false).Error)
	require.NoError(t, svc.Delete(deleted.ID))

	listings, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Classic", listings[0].Name)

	// admin view keeps hidden items but not deleted ones
	admin, err := svc.Repo.ListForAdmin()
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

func TestMenuUpdate_RecipeRewriteOnlyWhenSent(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(t, db)

	choc := seedIngredient(t, db, "Chocolate", true)
	mallow := seedIngredient(t, db, "Marshmallow", true)

	item := entity.MenuItem{Name: "Classic", Price: 4, ManualAvailability: true, IsVisible: true}
	require.NoError(t, svc.Create(&item, []RecipeIn{{ID: choc.ID, Qty: 1}}))

	// no ingredient list sent: recipe untouched
	require.NoError(t, svc.Update(item.ID, map[string]any{"price": 4.50}, nil, false))
	recipe, err := svc.Repo.GetRecipe(item.ID)
	require.NoError(t, err)
	require.Len(t, recipe, 1)

	// list sent: full rewrite, zero qty normalizes to 1
	require.NoError(t, svc.Update(item.ID, map[string]any{}, []RecipeIn{
		{ID: mallow.ID, Qty: 2}, {ID: choc.ID},
	}, true))
	recipe, err = svc.Repo.GetRecipe(item.ID)
	require.NoError(t, err)
	require.Len(t, recipe, 2)
	byIng := map[uint]int{}
	for _, row := range recipe {
		byIng[row.IngredientID] = row.Quantity
	}
	assert.Equal(t, 2, byIng[mallow.ID])
	assert.Equal(t, 1, byIng[choc.ID])
}

func TestIngredientDelete_RemovesRecipeRows(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(t, db)
	ingRepo := repository.NewIngredientRepository(db)

	choc := seedIngredient(t, db, "Chocolate", true)
	item := entity.MenuItem{Name: "Classic", Price: 4, ManualAvailability: true, IsVisible: true}
	require.NoError(t, svc.Create(&item, []RecipeIn{{ID: choc.ID, Qty: 1}}))

	require.NoError(t, ingRepo.Delete(choc.ID))

	recipe, err := svc.Repo.GetRecipe(item.ID)
	require.NoError(t, err)
	assert.Empty(t, recipe)

	// without the requirement the item is available again
	listings, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.True(t, listings[0].IsAvailable)
}
