package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"itinera/internal/repositories"
)

var Module = fx.Provide(provideCatalogRepo)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepositoryInterface {
	return repositories.NewCatalogRepository(db)
}
