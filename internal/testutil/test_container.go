//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode"
)

// Backend selects which shared containers SetupTestMain starts.
type Backend int

const (
	// MongoDB starts a shared MongoDB container.
	MongoDB Backend = iota
	// Postgres starts a shared PostgreSQL container.
	Postgres
)

var (
	sharedMu       sync.RWMutex
	sharedMongo    *Container
	sharedPostgres *Container
)

// SetupTestMain starts the requested shared containers, runs the tests and
// tears the containers down. Usage:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMain(context.Background(), m, testutil.MongoDB))
//	}
func SetupTestMain(ctx context.Context, m *testing.M, backends ...Backend) int {
	for _, b := range backends {
		if err := startShared(ctx, b); err != nil {
			cleanupShared(ctx)
			panic(err)
		}
	}

	code := m.Run()
	cleanupShared(ctx)
	return code
}

func startShared(ctx context.Context, b Backend) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	var err error
	switch b {
	case MongoDB:
		if sharedMongo == nil {
			sharedMongo, err = SetupMongoDB(ctx)
		}
	case Postgres:
		if sharedPostgres == nil {
			sharedPostgres, err = SetupPostgres(ctx)
		}
	default:
		err = fmt.Errorf("unknown backend %d", b)
	}
	return err
}

func cleanupShared(ctx context.Context) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	for _, c := range []*Container{sharedMongo, sharedPostgres} {
		if err := c.Cleanup(ctx); err != nil {
			// Docker reaps the container eventually
			_, _ = os.Stderr.WriteString("Warning: " + err.Error() + "\n")
		}
	}
	sharedMongo, sharedPostgres = nil, nil
}

// MongoURI returns the URI of the shared MongoDB container.
// Panics if SetupTestMain did not start it.
func MongoURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedMongo == nil {
		panic("shared MongoDB container not initialized - pass testutil.MongoDB to SetupTestMain")
	}
	return sharedMongo.URI
}

// PostgresURI returns the URI of the shared PostgreSQL container.
// Panics if SetupTestMain did not start it.
func PostgresURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedPostgres == nil {
		panic("shared PostgreSQL container not initialized - pass testutil.Postgres to SetupTestMain")
	}
	return sharedPostgres.URI
}

// SanitizeName turns a test name into a lowercase identifier usable both as a
// MongoDB database name and as a PostgreSQL schema name, with a time suffix
// for uniqueness.
func SanitizeName(testName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(testName) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	sanitized := b.String()
	if len(sanitized) > 40 {
		sanitized = sanitized[:40]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
