package connectwise

import "strings"

// Company is a ConnectWise company (the ticketing side of a client mapping).
type Company struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Board struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Inactive    bool   `json:"inactiveFlag,omitempty"`
}

type Status struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	BoardID        int    `json:"boardId,omitempty"`
	SortOrder      int    `json:"sortOrder,omitempty"`
	DisplayOnBoard bool   `json:"displayOnBoard,omitempty"`
	Inactive       bool   `json:"inactiveFlag,omitempty"`
	ClosedStatus   bool   `json:"closedStatus,omitempty"`
}

type Priority struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	SortOrder int    `json:"sortOrder,omitempty"`
	Inactive  bool   `json:"inactiveFlag,omitempty"`
}

type Type struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	BoardID  int    `json:"boardId,omitempty"`
	Inactive bool   `json:"inactiveFlag,omitempty"`
}

type Member struct {
	ID           int    `json:"id"`
	Identifier   string `json:"identifier"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Title        string `json:"title,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	Inactive     bool   `json:"inactiveFlag,omitempty"`
}

// Ticket is a service ticket as returned by the ConnectWise API.
type Ticket struct {
	ID      int    `json:"id"`
	Summary string `json:"summary"`
	Status  struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		ClosedStatus bool   `json:"closedStatus"`
	} `json:"status"`
	Company struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"company"`
}

// closedStatusNames are status names treated as closed regardless of the
// closedStatus flag; boards are not always configured with the flag set.
var closedStatusNames = map[string]struct{}{
	"closed":    {},
	"cancelled": {},
	"canceled":  {},
	"completed": {},
	"resolved":  {},
	"done":      {},
	"finished":  {},
	"complete":  {},
}

// IsClosed reports whether the ticket sits in a closed status. The
// closedStatus flag wins; otherwise the status name is normalized
// (lowercased, leading ">" markers stripped) and checked against the
// well-known closed names.
func (t *Ticket) IsClosed() bool {
	if t.Status.ClosedStatus {
		return true
	}

	statusName := strings.ToLower(strings.TrimSpace(t.Status.Name))
	statusName = strings.TrimLeft(statusName, ">")
	statusName = strings.TrimSpace(statusName)

	_, ok := closedStatusNames[statusName]
	return ok
}
