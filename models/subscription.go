package models

import "encoding/json"

// Notification kinds delivered over a live subscription. Every subscription
// starts with exactly one snapshot followed by zero or more changes, in the
// order the server applied them.
const (
	NotificationSnapshot = "snapshot"
	NotificationChange   = "change"
)

// Well-known subscription topics. Per-user topics are built with
// ProfileTopic and LogsTopic.
const (
	TopicAllergens = "allergens"
	TopicResources = "educational_resources"
)

// ProfileTopic returns the subscription topic of a user's profile document.
func ProfileTopic(userID string) string {
	return "users/" + userID + "/profiles/user_profile"
}

// LogsTopic returns the subscription topic of a user's logs collection.
func LogsTopic(userID string) string {
	return "users/" + userID + "/logs"
}

// Notification is one message delivered on a live subscription. Payload
// holds the topic's current value (for snapshots) or the changed document
// (for changes), JSON-encoded in the topic's own document shape.
type Notification struct {
	Topic   string          `json:"topic"`
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}
