package domain

import "time"

// PlanningSelection is the in-progress user choice. Fields fill in one at a
// time while the user navigates; the selection is persisted to the durable
// store once complete so a reload can resume it.
type PlanningSelection struct {
	City        string `json:"city"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// Complete reports whether all three fields have been chosen.
func (s PlanningSelection) Complete() bool {
	return s.City != "" && s.Category != "" && s.Subcategory != ""
}

// PlanResult is the generated itinerary: a Markdown document plus the derived
// filename and the selection that produced it.
type PlanResult struct {
	City        string `json:"city"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Plan        string `json:"plan"`
	Filename    string `json:"filename"`
}

// SavedPlan is one entry of the append-only saved-plans list in the durable
// store. Entries are never edited or removed.
type SavedPlan struct {
	Filename string    `json:"filename"`
	Content  string    `json:"content"`
	SaveDate time.Time `json:"saveDate"`
}
