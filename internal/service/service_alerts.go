package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/policy"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/models"
)

// alertFeed is the current recall/contamination feed. A later iteration will
// replace this with a poller over external food-safety sources; the filtering
// below already works against any feed shape.
var alertFeed = []models.Alert{
	{
		ID:                "alert1",
		Type:              "Recall",
		Title:             "Recall: Brand X Oat Milk",
		Description:       "Undeclared almond allergen found.",
		RelevantAllergens: []string{"almond"},
	},
	{
		ID:                "alert2",
		Type:              "Contamination",
		Title:             "Warning: Restaurant Y Update",
		Description:       "Reported cross-contamination risk for sesame.",
		RelevantAllergens: []string{"sesame"},
	},
}

type alertService struct {
	profileRepository store.ProfileRepository

	logger *logger.Logger
}

func NewAlertService(profileRepository store.ProfileRepository, logger *logger.Logger) AlertService {
	return &alertService{profileRepository: profileRepository, logger: logger}
}

// GetAlerts returns the alerts relevant to the caller's registered allergens.
// Callers with no saved profile, or a profile without allergens, get the whole
// feed: missing preferences must widen the notice surface, not silence it.
func (s *alertService) GetAlerts(ctx context.Context, callerID string) ([]models.Alert, error) {
	if err := policy.Authorize(policy.Identity(callerID), models.ProfileTopic(callerID), policy.OpRead); err != nil {
		return nil, err
	}

	profile, err := s.profileRepository.GetProfile(ctx, callerID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return alertFeed, nil
		}
		return nil, fmt.Errorf("load caller profile: %w", err)
	}

	if len(profile.Allergens) == 0 {
		return alertFeed, nil
	}

	registered := make(map[string]struct{}, len(profile.Allergens))
	for _, allergen := range profile.Allergens {
		registered[strings.ToLower(allergen)] = struct{}{}
	}

	relevant := make([]models.Alert, 0, len(alertFeed))
	for _, alert := range alertFeed {
		if len(alert.RelevantAllergens) == 0 {
			relevant = append(relevant, alert)
			continue
		}
		for _, allergen := range alert.RelevantAllergens {
			if _, ok := registered[strings.ToLower(allergen)]; ok {
				relevant = append(relevant, alert)
				break
			}
		}
	}

	return relevant, nil
}
