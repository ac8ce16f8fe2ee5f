package service

import (
	"context"

	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/policy"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/models"
)

// catalogService serves the global allergen and educational-resource
// catalogs. Reads require an authenticated caller; no write path exists.
type catalogService struct {
	catalogRepository store.CatalogRepository

	logger *logger.Logger
}

func NewCatalogService(catalogRepository store.CatalogRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		logger:            logger,
	}
}

func (c *catalogService) GetAllergens(ctx context.Context, callerID string) ([]models.Allergen, error) {
	if err := policy.Authorize(policy.Identity(callerID), policy.CollectionAllergens, policy.OpRead); err != nil {
		return nil, err
	}

	return c.catalogRepository.GetAllergens(ctx)
}

func (c *catalogService) GetAllergen(ctx context.Context, callerID, allergenID string) (models.Allergen, error) {
	if allergenID == "" {
		return models.Allergen{}, ErrInvalidDataProvided
	}
	if err := policy.Authorize(policy.Identity(callerID), policy.CollectionAllergens+"/"+allergenID, policy.OpRead); err != nil {
		return models.Allergen{}, err
	}

	return c.catalogRepository.GetAllergen(ctx, allergenID)
}

func (c *catalogService) GetResources(ctx context.Context, callerID string) ([]models.EducationalResource, error) {
	if err := policy.Authorize(policy.Identity(callerID), policy.CollectionResources, policy.OpRead); err != nil {
		return nil, err
	}

	return c.catalogRepository.GetResources(ctx)
}
