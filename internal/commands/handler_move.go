package commands

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-realm/internal/world"
)

func goCmd() *command {
	return &command{
		usage:   "go <exit>",
		minArgs: 1,
		maxArgs: -1,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			actor := s.User
			room := h.currentRoom(actor)
			if room == nil {
				return "", fmt.Errorf("no room for user %s", actor.Name)
			}

			target := strings.Join(args, " ")

			// Exits live inside their room, so the candidate set is the
			// exit indices; an exit's id is its position in the list.
			indices := make([]int, len(room.Exits))
			for i := range indices {
				indices[i] = i
			}
			res := Resolve(target, indices,
				func(i int) string { return room.Exits[i].Name },
				func(i int) int { return i },
			)
			if res.Outcome != ResolvedExact {
				return "", resolutionError("go", res, "exit", "in this room", target)
			}
			exit := room.Exits[res.Entity]

			dest := h.store.Room(exit.Dest)
			if dest == nil {
				return "", NewUserError("go: That exit leads nowhere.")
			}

			if dest.Locked && !h.mayEnter(actor, dest) {
				return "", NewUserError("go: That room is locked.")
			}

			room.RemoveUser(actor.Name)
			dest.AddUser(actor.Name)
			actor.Room = dest.ID

			// Rooms first, then the user, matching the transfer engine's
			// write ordering discipline.
			if err := h.store.SaveRoom(room); err != nil {
				return "", fmt.Errorf("saving room %d: %w", room.ID, err)
			}
			if err := h.store.SaveRoom(dest); err != nil {
				return "", fmt.Errorf("saving room %d: %w", dest.ID, err)
			}
			if err := h.store.SaveUser(actor); err != nil {
				return "", fmt.Errorf("saving user %s: %w", actor.Name, err)
			}

			if h.pub != nil {
				_ = h.pub.BroadcastRoom(room.ID, []string{actor.Name},
					fmt.Sprintf("%s left through %s.", actor.Nick, exit.Name))
				_ = h.pub.BroadcastRoom(dest.ID, []string{actor.Name},
					fmt.Sprintf("%s arrived.", actor.Nick))
			}

			if actor.Autolook {
				return renderRoom(h.store, dest, actor)
			}
			return fmt.Sprintf("go: You go through %s.", exit.Name), nil
		},
	}
}

// mayEnter reports whether actor can pass into a locked room: owners and
// wizards always, anyone else only while holding one of the room's keys.
func (h *Handler) mayEnter(actor *world.User, room *world.Room) bool {
	if CanMutate(actor, room) {
		return true
	}
	for _, key := range room.Keys {
		if actor.Holding(key) {
			return true
		}
	}
	return false
}
