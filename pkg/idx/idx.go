package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a ULID-backed identifier. The zero value is invalid.
type ID string

const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	initOnce sync.Once

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
)

func setup() {
	entropy = ulid.Monotonic(rand.Reader, 0)
}

// New returns a lexicographically sortable identifier based on the current
// UTC time and a shared monotonic entropy source.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt generates an ID at the provided time. Useful for tests that need
// deterministic ordering.
func NewAt(t time.Time) ID {
	initOnce.Do(setup)

	mu.Lock()
	defer mu.Unlock()
	return ID(ulid.MustNew(ulid.Timestamp(t), entropy).String())
}

// Parse validates s as a canonical ULID and returns it as an ID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}
	return ID(s), nil
}

// IsValid reports whether s parses as a canonical ULID. Handy for telling
// identifiers apart from usernames in mixed path parameters.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// MustParse parses or panics. For hard-coded IDs in tests.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) IsZero() bool   { return id == Zero }
func (id ID) String() string { return string(id) }

// Time extracts the embedded UTC timestamp, or the zero time for invalid IDs.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
