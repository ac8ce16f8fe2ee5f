package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/safebite/safebite/internal/hub"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/policy"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/models"
)

// profileService reads and merge-writes the per-user profile document.
// Every operation is authorized against the owner-only rule for
// "users/{uid}/profiles/user_profile" before the repository is touched, and
// every successful save is published to the profile's subscription topic.
type profileService struct {
	profileRepository store.ProfileRepository
	hub               *hub.Hub

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, h *hub.Hub, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		hub:               h,
		logger:            logger,
	}
}

func (p *profileService) GetProfile(ctx context.Context, callerID, userID string) (models.UserProfile, error) {
	path := models.ProfileTopic(userID)
	if err := policy.Authorize(policy.Identity(callerID), path, policy.OpRead); err != nil {
		return models.UserProfile{}, err
	}

	return p.profileRepository.GetProfile(ctx, userID)
}

// SaveProfile merge-writes the supplied fields and notifies the profile's
// subscribers with the merged document. The write result is returned to the
// caller directly; subscribers converge asynchronously.
func (p *profileService) SaveProfile(ctx context.Context, callerID, userID string, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	path := models.ProfileTopic(userID)
	if err := policy.Authorize(policy.Identity(callerID), path, policy.OpWrite); err != nil {
		return models.UserProfile{}, err
	}

	merged, err := p.profileRepository.SaveProfile(ctx, userID, profile)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("save profile: %w", err)
	}

	payload, err := json.Marshal(merged)
	if err != nil {
		log.Err(err).Msg("encode merged profile for notification")
	} else {
		p.hub.Publish(models.Notification{
			Topic:   path,
			Kind:    models.NotificationChange,
			Payload: payload,
		})
	}

	return merged, nil
}
