package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/safebite/safebite/internal/hub"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/policy"
	"github.com/safebite/safebite/internal/store"
	"github.com/safebite/safebite/models"
)

// logService appends and reads the immutable log collection under
// "users/{uid}/logs". Appends are normalized here so that the stored
// document always satisfies the symptom invariant: the no-symptom marker
// form and the free-text symptom list never mix.
type logService struct {
	logRepository store.LogRepository
	hub           *hub.Hub

	logger *logger.Logger
}

func NewLogService(logRepository store.LogRepository, h *hub.Hub, logger *logger.Logger) LogService {
	return &logService{
		logRepository: logRepository,
		hub:           h,
		logger:        logger,
	}
}

// AppendLog validates, normalizes and stores one entry, then notifies the
// logs topic with the stored document.
func (l *logService) AppendLog(ctx context.Context, callerID, userID string, req models.LogAppendRequest) (models.LogEntry, error) {
	log := logger.FromContext(ctx)

	topic := models.LogsTopic(userID)
	if err := policy.Authorize(policy.Identity(callerID), topic, policy.OpCreate); err != nil {
		return models.LogEntry{}, err
	}

	entry, err := normalizeLogEntry(req)
	if err != nil {
		log.Err(err).Str("type", req.Type).Msg("invalid log entry submitted")
		return models.LogEntry{}, err
	}

	stored, err := l.logRepository.AppendLog(ctx, userID, entry)
	if err != nil {
		return models.LogEntry{}, fmt.Errorf("append log: %w", err)
	}

	if payload, err := json.Marshal(stored); err == nil {
		l.hub.Publish(models.Notification{
			Topic:   topic,
			Kind:    models.NotificationChange,
			Payload: payload,
		})
	}

	return stored, nil
}

// GetLogs returns the user's entries in their observable order: the
// occurrence time reconstructed from each entry's own date/time strings,
// not the server timestamp.
func (l *logService) GetLogs(ctx context.Context, callerID, userID string) ([]models.LogEntry, error) {
	topic := models.LogsTopic(userID)
	if err := policy.Authorize(policy.Identity(callerID), topic, policy.OpRead); err != nil {
		return nil, err
	}

	entries, err := l.logRepository.GetLogs(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("get logs: %w", err)
	}

	models.SortLogsChronologically(entries)
	return entries, nil
}

// normalizeLogEntry turns an append request into the stored document shape.
//
// Symptom entries follow the exclusive invariant: NoSymptoms=true stores
// exactly ["Nil"] and drops severity and exposure source; otherwise at
// least one non-empty symptom is required and the marker is rejected.
func normalizeLogEntry(req models.LogAppendRequest) (models.LogEntry, error) {
	switch req.Type {
	case models.LogTypeFoodIntake:
		if strings.TrimSpace(req.FoodIntakeText) == "" || req.FoodIntakeDate == "" {
			return models.LogEntry{}, ErrInvalidDataProvided
		}
		return models.LogEntry{
			Type:           models.LogTypeFoodIntake,
			FoodIntakeText: req.FoodIntakeText,
			FoodIntakeDate: req.FoodIntakeDate,
			FoodIntakeTime: req.FoodIntakeTime,
		}, nil

	case models.LogTypeSymptom:
		if req.SymptomDate == "" {
			return models.LogEntry{}, ErrInvalidDataProvided
		}

		if req.NoSymptoms {
			return models.LogEntry{
				Type:                models.LogTypeSymptom,
				SymptomDate:         req.SymptomDate,
				SymptomTime:         req.SymptomTime,
				SymptomsExperienced: []string{models.NoSymptomsMarker},
			}, nil
		}

		symptoms := make([]string, 0, len(req.Symptoms))
		for _, s := range req.Symptoms {
			s = strings.TrimSpace(s)
			if s == "" || s == models.NoSymptomsMarker {
				continue
			}
			symptoms = append(symptoms, s)
		}
		if len(symptoms) == 0 {
			return models.LogEntry{}, ErrInvalidDataProvided
		}

		return models.LogEntry{
			Type:                    models.LogTypeSymptom,
			SymptomDate:             req.SymptomDate,
			SymptomTime:             req.SymptomTime,
			SymptomsExperienced:     symptoms,
			Severity:                req.Severity,
			PotentialExposureSource: req.PotentialExposureSource,
		}, nil

	default:
		return models.LogEntry{}, ErrInvalidDataProvided
	}
}
