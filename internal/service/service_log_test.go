// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SafeBite Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/safebite/safebite/internal/hub"
	"github.com/safebite/safebite/internal/logger"
	"github.com/safebite/safebite/internal/policy"
	"github.com/safebite/safebite/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogServiceForTest(repo *mockLogRepository) (*logService, *hub.Hub) {
	h := hub.New(logger.Nop())
	return &logService{
		logRepository: repo,
		hub:           h,
		logger:        logger.Nop(),
	}, h
}

// ─────────────────────────────────────────────
// AppendLog
// ─────────────────────────────────────────────

func TestLogService_AppendLog_FoodIntake(t *testing.T) {
	repo := &mockLogRepository{
		appendFn: func(_ context.Context, userID string, entry models.LogEntry) (models.LogEntry, error) {
			assert.Equal(t, "user-1", userID)
			entry.ID = "log-1"
			entry.Timestamp = time.Now().UTC()
			return entry, nil
		},
	}
	svc, _ := newLogServiceForTest(repo)

	stored, err := svc.AppendLog(context.Background(), "user-1", "user-1", models.LogAppendRequest{
		Type:           models.LogTypeFoodIntake,
		FoodIntakeText: "lupin flour pancakes",
		FoodIntakeDate: "2026-08-01",
		FoodIntakeTime: "09:30",
	})

	require.NoError(t, err)
	assert.Equal(t, "log-1", stored.ID)
	assert.Equal(t, "lupin flour pancakes", stored.FoodIntakeText)
	assert.Empty(t, stored.SymptomsExperienced)
}

func TestLogService_AppendLog_NoSymptomsStoresMarkerOnly(t *testing.T) {
	repo := &mockLogRepository{
		appendFn: func(_ context.Context, _ string, entry models.LogEntry) (models.LogEntry, error) {
			return entry, nil
		},
	}
	svc, _ := newLogServiceForTest(repo)

	stored, err := svc.AppendLog(context.Background(), "user-1", "user-1", models.LogAppendRequest{
		Type:        models.LogTypeSymptom,
		SymptomDate: "2026-08-01",
		SymptomTime: "12:00",
		NoSymptoms:  true,
		// the normalization must win over any accompanying noise
		Symptoms: []string{"hives"},
		Severity: "severe",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{models.NoSymptomsMarker}, stored.SymptomsExperienced)
	assert.Empty(t, stored.Severity)
	assert.Empty(t, stored.PotentialExposureSource)
	assert.True(t, stored.NoSymptoms())
}

func TestLogService_AppendLog_SymptomListDropsMarkerAndBlanks(t *testing.T) {
	repo := &mockLogRepository{}
	svc, _ := newLogServiceForTest(repo)

	stored, err := svc.AppendLog(context.Background(), "user-1", "user-1", models.LogAppendRequest{
		Type:        models.LogTypeSymptom,
		SymptomDate: "2026-08-01",
		Symptoms:    []string{" hives ", "", models.NoSymptomsMarker, "nausea"},
		Severity:    "moderate",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"hives", "nausea"}, stored.SymptomsExperienced)
	assert.Equal(t, "moderate", stored.Severity)
	assert.False(t, stored.NoSymptoms())
}

func TestLogService_AppendLog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		req  models.LogAppendRequest
	}{
		{
			name: "unknown type",
			req:  models.LogAppendRequest{Type: "note"},
		},
		{
			name: "food intake without text",
			req:  models.LogAppendRequest{Type: models.LogTypeFoodIntake, FoodIntakeDate: "2026-08-01"},
		},
		{
			name: "food intake without date",
			req:  models.LogAppendRequest{Type: models.LogTypeFoodIntake, FoodIntakeText: "toast"},
		},
		{
			name: "symptom without date",
			req:  models.LogAppendRequest{Type: models.LogTypeSymptom, Symptoms: []string{"hives"}},
		},
		{
			name: "symptom list empty after normalization",
			req: models.LogAppendRequest{
				Type:        models.LogTypeSymptom,
				SymptomDate: "2026-08-01",
				Symptoms:    []string{"", models.NoSymptomsMarker},
			},
		},
	}

	svc, _ := newLogServiceForTest(&mockLogRepository{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AppendLog(context.Background(), "user-1", "user-1", tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestLogService_AppendLog_CrossUserDenied(t *testing.T) {
	repo := &mockLogRepository{
		appendFn: func(_ context.Context, _ string, _ models.LogEntry) (models.LogEntry, error) {
			t.Fatal("repository must not be reached on a denied create")
			return models.LogEntry{}, nil
		},
	}
	svc, _ := newLogServiceForTest(repo)

	_, err := svc.AppendLog(context.Background(), "user-a", "user-b", models.LogAppendRequest{
		Type:           models.LogTypeFoodIntake,
		FoodIntakeText: "toast",
		FoodIntakeDate: "2026-08-01",
	})

	assert.ErrorIs(t, err, policy.ErrPermissionDenied)
}

func TestLogService_AppendLog_PublishesToLogsTopic(t *testing.T) {
	repo := &mockLogRepository{
		appendFn: func(_ context.Context, _ string, entry models.LogEntry) (models.LogEntry, error) {
			entry.ID = "log-7"
			return entry, nil
		},
	}
	svc, h := newLogServiceForTest(repo)

	sub := h.Subscribe(models.LogsTopic("user-1"))
	defer sub.Stop()

	_, err := svc.AppendLog(context.Background(), "user-1", "user-1", models.LogAppendRequest{
		Type:           models.LogTypeFoodIntake,
		FoodIntakeText: "toast",
		FoodIntakeDate: "2026-08-01",
	})
	require.NoError(t, err)

	select {
	case n := <-sub.C:
		assert.Equal(t, models.LogsTopic("user-1"), n.Topic)
		assert.Equal(t, models.NotificationChange, n.Kind)
		assert.Contains(t, string(n.Payload), "log-7")
	case <-time.After(time.Second):
		t.Fatal("expected a change notification on the logs topic")
	}
}

// ─────────────────────────────────────────────
// GetLogs
// ─────────────────────────────────────────────

func TestLogService_GetLogs_SortedByOccurrence(t *testing.T) {
	base := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	repo := &mockLogRepository{
		getFn: func(_ context.Context, userID string, logType string) ([]models.LogEntry, error) {
			assert.Equal(t, "user-1", userID)
			assert.Empty(t, logType)
			// stored order: newest server timestamp first, but the symptom
			// entry refers to an earlier moment than the food intake
			return []models.LogEntry{
				{ID: "b", Type: models.LogTypeFoodIntake, FoodIntakeDate: "2026-08-02", FoodIntakeTime: "09:00", Timestamp: base.Add(time.Hour)},
				{ID: "a", Type: models.LogTypeSymptom, SymptomDate: "2026-08-01", SymptomTime: "20:00", Timestamp: base.Add(2 * time.Hour)},
				{ID: "c", Type: models.LogTypeFoodIntake, FoodIntakeDate: "2026-08-03", Timestamp: base},
			}, nil
		},
	}
	svc, _ := newLogServiceForTest(repo)

	entries, err := svc.GetLogs(context.Background(), "user-1", "user-1")

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
	assert.Equal(t, "c", entries[2].ID)
}

func TestLogService_GetLogs_StorageError(t *testing.T) {
	repo := &mockLogRepository{
		getFn: func(_ context.Context, _ string, _ string) ([]models.LogEntry, error) {
			return nil, errStorage
		},
	}
	svc, _ := newLogServiceForTest(repo)

	_, err := svc.GetLogs(context.Background(), "user-1", "user-1")

	assert.ErrorIs(t, err, errStorage)
}

func TestLogService_GetLogs_CrossUserDenied(t *testing.T) {
	svc, _ := newLogServiceForTest(&mockLogRepository{})

	_, err := svc.GetLogs(context.Background(), "user-a", "user-b")

	assert.ErrorIs(t, err, policy.ErrPermissionDenied)
}
