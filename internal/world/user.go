package world

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// UsernamePattern describes the characters permitted in a registered name.
const usernameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

// User is a registered account. Name is the lowercase canonical form used
// everywhere a user is referenced; Nick is the display form.
type User struct {
	Name        string   `json:"name"`
	Nick        string   `json:"nick"`
	Description string   `json:"description,omitempty"`
	PassHash    string   `json:"passhash"`
	Room        int      `json:"room"`
	Inventory   []int    `json:"inventory"`
	Pronouns    string   `json:"pronouns"`
	Wizard      bool     `json:"wizard,omitempty"`
	Autolook    bool     `json:"autolook"`
	ChatEnabled bool     `json:"chat_enabled"`
	ChatIgnored []string `json:"chat_ignored,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (u *User) Validate() error {
	el := errors.NewErrorList()

	if err := ValidateUsername(u.Name); err != nil {
		el.Add(err)
	}
	if u.Name != strings.ToLower(u.Name) {
		el.Add(fmt.Errorf("user name must be lowercase"))
	}
	if u.PassHash == "" {
		el.Add(fmt.Errorf("password hash is required"))
	}
	if u.Room < 0 {
		el.Add(fmt.Errorf("room must be non-negative"))
	}

	return el.Err()
}

// ValidateUsername checks the registration rules for a username: letters,
// digits and underscores only, and never the bare article "the".
func ValidateUsername(name string) error {
	if name == "" {
		return fmt.Errorf("username is required")
	}
	for _, r := range name {
		if !strings.ContainsRune(usernameChars, r) {
			return fmt.Errorf("usernames may contain alphanumerics and underscores only")
		}
	}
	if strings.EqualFold(name, "the") {
		return fmt.Errorf("username %q is not allowed", name)
	}
	return nil
}

// Holding reports whether the item id is in the user's inventory.
func (u *User) Holding(id int) bool {
	for _, it := range u.Inventory {
		if it == id {
			return true
		}
	}
	return false
}

// AddToInventory appends the item id unless it is already held.
// Inventories never contain duplicates.
func (u *User) AddToInventory(id int) {
	if !u.Holding(id) {
		u.Inventory = append(u.Inventory, id)
	}
}

// RemoveFromInventory removes the item id from the inventory.
// Returns false if the item was not held.
func (u *User) RemoveFromInventory(id int) bool {
	for i, it := range u.Inventory {
		if it == id {
			u.Inventory = append(u.Inventory[:i], u.Inventory[i+1:]...)
			return true
		}
	}
	return false
}
