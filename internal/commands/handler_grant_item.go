package commands

import "strings"

func grantItemCmd() *command {
	return &command{
		usage:   "grant item <item> <username>",
		minArgs: 2,
		maxArgs: -1,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			actor := s.User
			target := strings.Join(args[:len(args)-1], " ")
			username := args[len(args)-1]

			// The item must be in hand or in the room to grant on it.
			candidates := HeldItems(h.store, actor)
			if room := h.currentRoom(actor); room != nil {
				candidates = append(candidates, RoomItems(h.store, room)...)
			}
			res := Resolve(target, candidates, itemName, itemID)
			if res.Outcome != ResolvedExact {
				return "", resolutionError("grant item", res, "item", "here", target)
			}
			item := res.Entity

			return h.grantOwner("grant item", item, CanMutate(actor, item), username, "item",
				func() error { return h.store.SaveItem(item) })
		},
	}
}
