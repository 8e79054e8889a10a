package ulid

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Document namespaces in storage are keyed by ULIDs. The generator is a
// package-level variable so tests can pin it to a fixed value.
var (
	entropy     io.Reader
	entropyOnce sync.Once
	generator   = DefaultGenerator
)

func defaultEntropy() io.Reader {
	entropyOnce.Do(func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		entropy = &ulid.LockedMonotonicReader{
			MonotonicReader: ulid.Monotonic(rng, 0),
		}
	})
	return entropy
}

// GenerateID mints a new document identifier.
func GenerateID() string {
	return generator()
}

func DefaultGenerator() string {
	ts := ulid.Timestamp(time.Now())
	return ulid.MustNew(ts, defaultEntropy()).String()
}

// ValidID reports whether id parses as a canonical 26-character ULID.
func ValidID(id string) bool {
	if len(id) != ulid.EncodedSize {
		return false
	}
	_, err := ulid.ParseStrict(id)
	return err == nil
}

func MockGenerator(mockValue string) {
	generator = func() string { return mockValue }
}

func ResetGenerator() {
	generator = DefaultGenerator
}
