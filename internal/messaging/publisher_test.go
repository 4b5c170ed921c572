package messaging

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestUserSubject(t *testing.T) {
	testutil.AssertEqual(t, "subject", UserSubject("alice"), "user-alice")
}
