package dto

// GeneratePlanRequest carries the completed selection. All three fields are
// required; the handler maps a violation to MISSING_SELECTION, which the
// client recovers from by navigating back.
type GeneratePlanRequest struct {
	City        string `json:"city"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

type SavePlanRequest struct {
	Filename string `json:"filename" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// CredentialRequest carries the opaque API secret. Emptiness is the only
// validation the credential ever gets; an empty value clears it.
type CredentialRequest struct {
	APIKey string `json:"api_key"`
}

// SelectionRequest updates individual selection cells; absent fields are left
// untouched.
type SelectionRequest struct {
	CityID      *string `json:"city_id,omitempty"`
	Category    *string `json:"category,omitempty"`
	Subcategory *string `json:"subcategory,omitempty"`
}

type HistoryRequest struct {
	Path string `json:"path" validate:"required"`
}
