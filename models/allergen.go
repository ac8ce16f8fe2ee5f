package models

// Allergen is a single entry of the global allergen catalog. The catalog is
// maintained administratively and is read-only for every regular user.
type Allergen struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	CommonNames        []string `json:"commonNames,omitempty"`
	HiddenSources      []string `json:"hiddenSources,omitempty"`
	CrossReactiveFoods []string `json:"crossReactiveFoods,omitempty"`
}

func (a Allergen) TableName() string {
	return "allergens"
}

// EducationalResource is a curated article in the global resource catalog.
// Content may contain rich text markup; it is stored and served verbatim.
type EducationalResource struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Source           string   `json:"source,omitempty"`
	Content          string   `json:"content"`
	AllergensCovered []string `json:"allergensCovered,omitempty"`
}

func (r EducationalResource) TableName() string {
	return "educational_resources"
}
