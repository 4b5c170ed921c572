package storage

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pixil98/go-realm/internal/world"
)

// WorldStore is the typed facade over the three record collections. Rooms
// and items are keyed by decimal id, users by lowercase name.
type WorldStore struct {
	rooms Storer[*world.Room]
	items Storer[*world.Item]
	users Storer[*world.User]
}

func NewWorldStore(rooms Storer[*world.Room], items Storer[*world.Item], users Storer[*world.User]) *WorldStore {
	return &WorldStore{
		rooms: rooms,
		items: items,
		users: users,
	}
}

// Room returns the room by id, or nil if absent.
func (s *WorldStore) Room(id int) *world.Room {
	return s.rooms.Get(strconv.Itoa(id))
}

// Item returns the item by id, or nil if absent.
func (s *WorldStore) Item(id int) *world.Item {
	return s.items.Get(strconv.Itoa(id))
}

// User returns the user by name, case-insensitively, or nil if absent.
func (s *WorldStore) User(name string) *world.User {
	return s.users.Get(strings.ToLower(name))
}

// Rooms returns all rooms in ascending id order.
func (s *WorldStore) Rooms() []*world.Room {
	all := s.rooms.GetAll()
	rooms := make([]*world.Room, 0, len(all))
	for _, r := range all {
		rooms = append(rooms, r)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms
}

// Items returns all items in ascending id order.
func (s *WorldStore) Items() []*world.Item {
	all := s.items.GetAll()
	items := make([]*world.Item, 0, len(all))
	for _, i := range all {
		items = append(items, i)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *WorldStore) SaveRoom(r *world.Room) error {
	return s.rooms.Save(strconv.Itoa(r.ID), r)
}

func (s *WorldStore) SaveItem(i *world.Item) error {
	return s.items.Save(strconv.Itoa(i.ID), i)
}

func (s *WorldStore) SaveUser(u *world.User) error {
	return s.users.Save(u.Name, u)
}

// NextRoomID allocates the next room id by scanning for the current
// maximum. Ids freed by out-of-band deletion are not deliberately reused,
// but the scan only sees current maxima; keeping lower ids retired is
// caller discipline. Two concurrent creators can compute the same id
// before either write lands; see DESIGN.md for why that race is accepted.
func (s *WorldStore) NextRoomID() int {
	max := -1
	for _, r := range s.rooms.GetAll() {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// NextItemID allocates the next item id; the item namespace is independent
// from the room namespace.
func (s *WorldStore) NextItemID() int {
	max := -1
	for _, i := range s.items.GetAll() {
		if i.ID > max {
			max = i.ID
		}
	}
	return max + 1
}
