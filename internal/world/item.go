package world

import (
	"fmt"
	"strconv"

	"github.com/pixil98/go-errors"
)

// Item is a carryable object. An item lives in exactly one container (a
// room's item list or a user's inventory) at a time, except that a
// duplified item may stay in its room while its owners hold copies.
type Item struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Owners      []string `json:"owners"`
	Glued       bool     `json:"glued,omitempty"`
	Duplified   bool     `json:"duplified,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.ID < 0 {
		el.Add(fmt.Errorf("item id must be non-negative"))
	}
	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if _, err := strconv.Atoi(i.Name); err == nil {
		el.Add(fmt.Errorf("item name cannot be an integer"))
	}

	return el.Err()
}
