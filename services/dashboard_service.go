package services

import (
	"time"

	"github.com/andyrob2215/AAASmores/entity"
	"github.com/andyrob2215/AAASmores/repository"
)

type DashboardService struct {
	Repo      *repository.DashboardRepository
	MenuRepo  *repository.MenuRepository
	IngRepo   *repository.IngredientRepository
	DiscRepo  *repository.DiscountRepository
	ConfigSvc *ConfigService
	Now       func() time.Time
}

func NewDashboardService(
	repo *repository.DashboardRepository,
	menuRepo *repository.MenuRepository,
	ingRepo *repository.IngredientRepository,
	discRepo *repository.DiscountRepository,
	configSvc *ConfigService,
) *DashboardService {
	return &DashboardService{
		Repo:      repo,
		MenuRepo:  menuRepo,
		IngRepo:   ingRepo,
		DiscRepo:  discRepo,
		ConfigSvc: configSvc,
		Now:       time.Now,
	}
}

// Sales is the completed-order revenue rollup.
type Sales struct {
	Today float64 `json:"today"`
	Week  float64 `json:"week"`
	Month float64 `json:"month"`
	Total float64 `json:"total"`
}

// Dashboard is everything the admin screen needs in one poll.
type Dashboard struct {
	AwaitingPayment []repository.DashboardOrder `json:"awaitingPayment"`
	Pending         []repository.DashboardOrder `json:"pending"`
	History         []repository.DashboardOrder `json:"history"`
	Ingredients     []entity.Ingredient         `json:"ingredients"`
	MenuItems       []entity.MenuItem           `json:"menuItems"`
	Recipes         []entity.RecipeItem         `json:"recipes"`
	Discounts       []entity.DiscountCode       `json:"discounts"`
	DeliveryEnabled bool                        `json:"deliveryEnabled"`
	CashUnlockCode  string                      `json:"cashUnlockCode"`
	Sales           Sales                       `json:"sales"`
}

func (s *DashboardService) Build() (*Dashboard, error) {
	out := &Dashboard{}
	var err error

	if out.AwaitingPayment, err = s.Repo.ListAwaitingPayment(); err != nil {
		return nil, err
	}
	if out.Pending, err = s.Repo.ListActive(); err != nil {
		return nil, err
	}
	if out.History, err = s.Repo.ListHistory(50); err != nil {
		return nil, err
	}
	if out.Ingredients, err = s.IngRepo.ListAll(); err != nil {
		return nil, err
	}
	if out.MenuItems, err = s.MenuRepo.ListForAdmin(); err != nil {
		return nil, err
	}
	if out.Recipes, err = s.MenuRepo.AllRecipes(); err != nil {
		return nil, err
	}
	if out.Discounts, err = s.DiscRepo.ListAll(); err != nil {
		return nil, err
	}

	settings, err := s.ConfigSvc.Get()
	if err != nil {
		return nil, err
	}
	out.DeliveryEnabled = settings.DeliveriesEnabled
	out.CashUnlockCode = settings.CashUnlockCode

	now := s.Now()
	if out.Sales.Today, err = s.Repo.SalesSince(now.AddDate(0, 0, -1)); err != nil {
		return nil, err
	}
	if out.Sales.Week, err = s.Repo.SalesSince(now.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}
	if out.Sales.Month, err = s.Repo.SalesSince(now.AddDate(0, -1, 0)); err != nil {
		return nil, err
	}
	if out.Sales.Total, err = s.Repo.SalesAllTime(); err != nil {
		return nil, err
	}

	return out, nil
}
