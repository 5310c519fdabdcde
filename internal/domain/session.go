package domain

// SessionState holds the independently updatable cells owned by one client
// session: the in-progress selection, the last generated result, the
// navigation history and the transient UI flags. Writes are last-write-wins;
// a session never has more than one logical writer.
type SessionState struct {
	CityID       string      `json:"cityId,omitempty"`
	Category     string      `json:"category,omitempty"`
	Subcategory  string      `json:"subcategory,omitempty"`
	PlanResult   *PlanResult `json:"planResult,omitempty"`
	History      []string    `json:"history"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
	Loading      bool        `json:"loading"`
}

// NewSessionState returns the documented empty value of every cell.
func NewSessionState() *SessionState {
	return &SessionState{History: []string{}}
}

// Selection assembles the planning selection from the session cells.
func (s *SessionState) Selection() PlanningSelection {
	return PlanningSelection{
		City:        s.CityID,
		Category:    s.Category,
		Subcategory: s.Subcategory,
	}
}
