package services

// Selection is the user's current start/end choice. Ids are not validated
// when set; the orchestrator validates them when a route is requested.
type Selection struct {
	Start string
	End   string
}

func (s *Selection) SetStart(id string) { s.Start = id }

func (s *Selection) SetEnd(id string) { s.End = id }

func (s *Selection) Clear() { *s = Selection{} }

// Complete reports whether both ends are chosen. Start and End may be equal.
func (s Selection) Complete() bool { return s.Start != "" && s.End != "" }
