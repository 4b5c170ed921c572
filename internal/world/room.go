package world

import (
	"fmt"
	"strconv"

	"github.com/pixil98/go-errors"
)

// Exit is a named passage out of a room. Exits have no id of their own;
// they are addressed by their index within the owning room's exit list.
type Exit struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Owners      []string `json:"owners"`
	Dest        int      `json:"dest"`
}

// Room is a location in the world. Rooms hold items by id and users by name.
type Room struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Owners      []string `json:"owners"`
	Exits       []*Exit  `json:"exits"`
	Items       []int    `json:"items"`
	Users       []string `json:"users"`
	Keys        []int    `json:"keys,omitempty"`
	Locked      bool     `json:"locked,omitempty"`
	Sealed      bool     `json:"sealed,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.ID < 0 {
		el.Add(fmt.Errorf("room id must be non-negative"))
	}
	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	if _, err := strconv.Atoi(r.Name); err == nil {
		el.Add(fmt.Errorf("room name cannot be an integer"))
	}

	for i, e := range r.Exits {
		if e.Name == "" {
			el.Add(fmt.Errorf("exit %d: name is required", i))
		}
		if e.Dest < 0 {
			el.Add(fmt.Errorf("exit %d: destination must be non-negative", i))
		}
	}

	return el.Err()
}

// Exit returns the exit at index id, or nil when out of range.
func (r *Room) Exit(id int) *Exit {
	if id < 0 || id >= len(r.Exits) {
		return nil
	}
	return r.Exits[id]
}

// HasItem reports whether the item id is in the room's item list.
func (r *Room) HasItem(id int) bool {
	for _, it := range r.Items {
		if it == id {
			return true
		}
	}
	return false
}

// RemoveItem removes the first occurrence of the item id from the room.
// Returns false if the item was not present.
func (r *Room) RemoveItem(id int) bool {
	for i, it := range r.Items {
		if it == id {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// AddItem appends the item id unless it is already present.
func (r *Room) AddItem(id int) {
	if !r.HasItem(id) {
		r.Items = append(r.Items, id)
	}
}

// RemoveUser removes a user name from the room's occupant list.
func (r *Room) RemoveUser(name string) {
	for i, u := range r.Users {
		if u == name {
			r.Users = append(r.Users[:i], r.Users[i+1:]...)
			return
		}
	}
}

// AddUser appends a user name unless already present.
func (r *Room) AddUser(name string) {
	for _, u := range r.Users {
		if u == name {
			return
		}
	}
	r.Users = append(r.Users, name)
}
