package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/models"
)

// catalogRepository reads the global allergen and educational-resource
// catalogs. Catalog documents are stored as JSONB and decoded here into
// their typed models; there are no write methods, matching the policy that
// grants no write on either catalog.
type catalogRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *catalogRepository) GetAllergens(ctx context.Context) ([]models.Allergen, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllAllergens)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.GetAllergens").Msg("query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	allergens := make([]models.Allergen, 0)
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var allergen models.Allergen
		if err = json.Unmarshal(doc, &allergen); err != nil {
			return nil, fmt.Errorf("decode allergen document: %w", err)
		}
		allergens = append(allergens, allergen)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return allergens, nil
}

func (r *catalogRepository) GetAllergen(ctx context.Context, id string) (models.Allergen, error) {
	log := logger.FromContext(ctx)

	var doc []byte
	row := r.db.QueryRowContext(ctx, getAllergenByID, id)
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Allergen{}, ErrAllergenNotFound
		}
		log.Err(err).Str("func", "*catalogRepository.GetAllergen").Msg("query failed")
		return models.Allergen{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var allergen models.Allergen
	if err := json.Unmarshal(doc, &allergen); err != nil {
		return models.Allergen{}, fmt.Errorf("decode allergen document: %w", err)
	}

	return allergen, nil
}

func (r *catalogRepository) GetResources(ctx context.Context) ([]models.EducationalResource, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllResources)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.GetResources").Msg("query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	resources := make([]models.EducationalResource, 0)
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var resource models.EducationalResource
		if err = json.Unmarshal(doc, &resource); err != nil {
			return nil, fmt.Errorf("decode resource document: %w", err)
		}
		resources = append(resources, resource)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return resources, nil
}
