package models

import (
	"sort"
	"time"
)

// Log entry types. A log entry is either a food intake record or a symptom
// report; the two carry disjoint field sets.
const (
	LogTypeFoodIntake = "food_intake"
	LogTypeSymptom    = "symptom"
)

// NoSymptomsMarker is the single element stored in SymptomsExperienced when
// the user explicitly reports having had no symptoms. The marker form and
// the free-text symptom list are mutually exclusive.
const NoSymptomsMarker = "Nil"

// LogEntry is an immutable diary record stored at "users/{userID}/logs/{id}".
// Entries are only ever created; no update or delete operation exists.
//
// Date and time are kept as the separate string fields the user submitted
// ("2006-01-02" and "15:04"). Chronological ordering is reconstructed from
// those fields per entry type — see [LogEntry.OccurredAt] — with the
// server-assigned Timestamp used only as a tiebreaker.
type LogEntry struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type"`

	// Food intake fields. Present only when Type == LogTypeFoodIntake.
	FoodIntakeText string `json:"foodIntakeText,omitempty"`
	FoodIntakeDate string `json:"foodIntakeDate,omitempty"`
	FoodIntakeTime string `json:"foodIntakeTime,omitempty"`

	// Symptom fields. Present only when Type == LogTypeSymptom.
	SymptomDate             string   `json:"symptomDate,omitempty"`
	SymptomTime             string   `json:"symptomTime,omitempty"`
	SymptomsExperienced     []string `json:"symptomsExperienced,omitempty"`
	Severity                string   `json:"severity,omitempty"`
	PotentialExposureSource string   `json:"potentialExposureSource,omitempty"`

	// Timestamp is assigned by the server at creation time.
	Timestamp time.Time `json:"timestamp"`
}

func (l LogEntry) TableName() string {
	return "log_entries"
}

// NoSymptoms reports whether the entry is an explicit "no symptoms" report.
func (l LogEntry) NoSymptoms() bool {
	return l.Type == LogTypeSymptom &&
		len(l.SymptomsExperienced) == 1 &&
		l.SymptomsExperienced[0] == NoSymptomsMarker
}

// dateTimeLayouts are the accepted layouts for the user-submitted date and
// time strings, in the order they are tried.
var dateTimeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02"}

// OccurredAt reconstructs the moment the entry refers to from its
// type-dependent date/time string pair. If the strings cannot be parsed the
// server-assigned Timestamp is returned, so an entry is never unsortable.
func (l LogEntry) OccurredAt() time.Time {
	var date, clock string
	switch l.Type {
	case LogTypeFoodIntake:
		date, clock = l.FoodIntakeDate, l.FoodIntakeTime
	case LogTypeSymptom:
		date, clock = l.SymptomDate, l.SymptomTime
	}

	candidate := date
	if clock != "" {
		candidate = date + " " + clock
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t
		}
	}

	return l.Timestamp
}

// SortLogsChronologically orders entries by their reconstructed occurrence
// time, oldest first. Entries with equal occurrence times keep the order of
// their server timestamps.
func SortLogsChronologically(logs []LogEntry) {
	sort.SliceStable(logs, func(i, j int) bool {
		ti, tj := logs[i].OccurredAt(), logs[j].OccurredAt()
		if ti.Equal(tj) {
			return logs[i].Timestamp.Before(logs[j].Timestamp)
		}
		return ti.Before(tj)
	})
}

// LogAppendRequest is the payload for appending one log entry. The service
// layer normalizes it into a [LogEntry]: for symptom entries NoSymptoms=true
// stores exactly [NoSymptomsMarker] and drops severity/exposure fields.
type LogAppendRequest struct {
	Type string `json:"type"`

	FoodIntakeText string `json:"foodIntakeText,omitempty"`
	FoodIntakeDate string `json:"foodIntakeDate,omitempty"`
	FoodIntakeTime string `json:"foodIntakeTime,omitempty"`

	SymptomDate             string   `json:"symptomDate,omitempty"`
	SymptomTime             string   `json:"symptomTime,omitempty"`
	NoSymptoms              bool     `json:"noSymptoms,omitempty"`
	Symptoms                []string `json:"symptoms,omitempty"`
	Severity                string   `json:"severity,omitempty"`
	PotentialExposureSource string   `json:"potentialExposureSource,omitempty"`
}
