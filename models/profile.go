package models

// UserProfile is the per-user allergy profile document stored at
// "users/{userID}/profiles/user_profile".
//
// Profile writes use merge semantics: a save carrying only some of these
// fields leaves the remaining stored fields untouched. All fields are
// therefore optional on the wire.
type UserProfile struct {
	// Allergens holds references (catalog IDs) to the user's known allergens.
	Allergens []string `json:"allergens,omitempty"`

	EmergencyContacts []EmergencyContact `json:"emergencyContacts,omitempty"`

	// SecondaryRestrictions is a free-text field for dietary restrictions
	// that are not allergies (e.g. "vegan", "halal").
	SecondaryRestrictions string `json:"secondaryRestrictions,omitempty"`

	EmergencyPlan *EmergencyPlan `json:"emergencyPlan,omitempty"`
}

// EmergencyContact is a person to notify during an allergic reaction.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// EmergencyPlan describes the user's emergency medication instructions.
type EmergencyPlan struct {
	Medication   string `json:"medication,omitempty"`
	Dosage       string `json:"dosage,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}
