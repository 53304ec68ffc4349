package domain

// Campus is one of the fixed destinations every listing's commute is
// computed against.
type Campus struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`
}
