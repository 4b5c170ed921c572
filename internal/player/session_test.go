package player

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-realm/internal/commands"
	"github.com/pixil98/go-realm/internal/storage"
	"github.com/pixil98/go-realm/internal/world"
)

type memStorer[T storage.ValidatingSpec] struct {
	records map[string]T
}

func (s *memStorer[T]) Save(key string, o T) error {
	s.records[key] = o
	return nil
}

func (s *memStorer[T]) Get(key string) T {
	val, ok := s.records[key]
	if !ok {
		var nilVal T
		return nilVal
	}
	return val
}

func (s *memStorer[T]) GetAll() map[string]T {
	vals := map[string]T{}
	for k, v := range s.records {
		vals[k] = v
	}
	return vals
}

type mockSubscriber struct {
	subjects []string
	unsubbed int
}

func (m *mockSubscriber) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	m.subjects = append(m.subjects, subject)
	return func() { m.unsubbed++ }, nil
}

// conn glues a scripted input to a captured output.
type mockConn struct {
	io.Reader
	out bytes.Buffer
}

func (c *mockConn) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func newSessionWorld(t *testing.T) *commands.Handler {
	t.Helper()
	store := storage.NewWorldStore(
		&memStorer[*world.Room]{records: map[string]*world.Room{}},
		&memStorer[*world.Item]{records: map[string]*world.Item{}},
		&memStorer[*world.User]{records: map[string]*world.User{}},
	)
	err := store.SaveRoom(&world.Room{ID: 0, Name: "town square", Owners: []string{}})
	if err != nil {
		t.Fatalf("seeding room: %v", err)
	}
	return commands.NewHandler(store, nil, 0)
}

func TestSession_RunsCommandsUntilEOF(t *testing.T) {
	h := newSessionWorld(t)
	sub := &mockSubscriber{}
	conn := &mockConn{Reader: strings.NewReader("help\nbogus\n")}

	err := newSession(h, sub, conn).run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := conn.out.String()
	for _, want := range []string{banner, "Commands:", "Unknown command: bogus", "> "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSession_QuitEndsTheLoop(t *testing.T) {
	h := newSessionWorld(t)
	sub := &mockSubscriber{}
	conn := &mockConn{Reader: strings.NewReader("quit\nhelp\n")}

	err := newSession(h, sub, conn).run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := conn.out.String()
	if !strings.Contains(out, "Goodbye.") {
		t.Errorf("output missing goodbye:\n%s", out)
	}
	// Nothing after quit runs.
	if strings.Contains(out, "Commands:") {
		t.Errorf("command after quit was executed:\n%s", out)
	}
}

func TestSession_SubscriptionFollowsLogin(t *testing.T) {
	h := newSessionWorld(t)
	sub := &mockSubscriber{}
	conn := &mockConn{Reader: strings.NewReader(
		"register alice hunter2\nlogin alice hunter2\nlogout\n")}

	err := newSession(h, sub, conn).run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sub.subjects) != 1 || sub.subjects[0] != "user-alice" {
		t.Fatalf("subjects = %v, expected exactly [user-alice]", sub.subjects)
	}
	if sub.unsubbed != 1 {
		t.Errorf("unsubscribed %d times, expected 1", sub.unsubbed)
	}
}
