package commands

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/pixil98/go-realm/internal/storage"
	"github.com/pixil98/go-realm/internal/world"
)

// Broadcaster delivers a message to the occupants of a room, minus the
// excluded user names. Delivery itself (subjects, sessions, transport) is
// the messaging collaborator's concern.
type Broadcaster interface {
	BroadcastRoom(roomID int, exclude []string, msg string) error
}

// SessionState is the per-connection state the dispatcher carries into
// every command: who is logged in, and whether the session asked to end.
// Commands never read ambient globals; actor identity always arrives here.
type SessionState struct {
	User *world.User
	Quit bool
}

// command describes one verb: its argument bounds, who may run it, and the
// function that does the work. Run returns the single success response;
// failures come back as a UserError carrying the single failure line, or
// as a system error for the dispatcher to treat as a hard failure.
type command struct {
	usage     string
	minArgs   int
	maxArgs   int // -1 means unlimited
	anonymous bool // may run without being logged in
	wizard    bool
	run       func(h *Handler, s *SessionState, args []string) (string, error)
}

// Handler owns the verb table and the collaborators every command needs.
type Handler struct {
	store       *storage.WorldStore
	pub         Broadcaster
	transfer    *Transfer
	defaultRoom int

	commands map[string]*command
}

func NewHandler(store *storage.WorldStore, pub Broadcaster, defaultRoom int) *Handler {
	h := &Handler{
		store:       store,
		pub:         pub,
		transfer:    &Transfer{Store: store, Pub: pub},
		defaultRoom: defaultRoom,
		commands:    map[string]*command{},
	}

	h.commands["get"] = getCmd()
	h.commands["drop"] = dropCmd()
	h.commands["look"] = lookCmd()
	h.commands["go"] = goCmd()
	h.commands["inventory"] = inventoryCmd()
	h.commands["say"] = sayCmd()
	h.commands["register"] = registerCmd()
	h.commands["login"] = loginCmd()
	h.commands["logout"] = logoutCmd()
	h.commands["quit"] = quitCmd()
	h.commands["make room"] = makeRoomCmd()
	h.commands["make item"] = makeItemCmd()
	h.commands["make exit"] = makeExitCmd()
	h.commands["grant exit"] = grantExitCmd()
	h.commands["grant room"] = grantRoomCmd()
	h.commands["grant item"] = grantItemCmd()
	h.commands["list items"] = listItemsCmd()
	h.commands["list rooms"] = listRoomsCmd()
	h.commands["help"] = helpCmd()

	return h
}

// Exec parses one input line into a verb and arguments and runs it.
// Two-word verbs ("make room", "grant exit", "list items") take precedence
// over a one-word verb of the same leading word.
func (h *Handler) Exec(ctx context.Context, s *SessionState, input string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return "", nil
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	cmd, ok := h.commands[name]
	if len(fields) >= 2 {
		twoWord := name + " " + strings.ToLower(fields[1])
		if c, found := h.commands[twoWord]; found {
			cmd, ok = c, true
			name = twoWord
			args = fields[2:]
		}
	}
	if !ok {
		return "", NewUserError("Unknown command: " + name)
	}

	if !cmd.anonymous && s.User == nil {
		return "", NewUserError(name + ": must be logged in first")
	}
	if cmd.wizard && (s.User == nil || !s.User.Wizard) {
		return "", NewUserError(name + ": you do not have permission to use this command")
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return "", NewUserError("Usage: " + cmd.usage)
	}

	return cmd.run(h, s, args)
}

// Usages returns the usage line of every registered verb, sorted.
func (h *Handler) Usages() []string {
	usages := make([]string, 0, len(h.commands))
	for _, c := range h.commands {
		usages = append(usages, c.usage)
	}
	sort.Strings(usages)
	return usages
}

// currentRoom looks up the actor's room. A user pointing at a missing room
// is a data-integrity failure; the actor is sent back to the default room
// rather than stranded.
func (h *Handler) currentRoom(actor *world.User) *world.Room {
	room := h.store.Room(actor.Room)
	if room != nil {
		return room
	}
	slog.Warn("user references missing room", "user", actor.Name, "room", actor.Room)
	return h.store.Room(h.defaultRoom)
}
