// Package testutil connects mongo contract tests to a real cluster.
// Tests are skipped unless MONGO_TEST_URI is set.
package testutil

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stokvelmanager/whatsapp-bot/internal/adapters/mongodb"
)

// NewTestDB returns a database handle scoped to a throwaway database name,
// dropped on cleanup.
func NewTestDB(t *testing.T) (*mongodb.DB, func()) {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set; skipping mongo contract tests")
	}

	name := "stokvel_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := mongodb.Connect(ctx, uri, name)
	if err != nil {
		t.Fatalf("connect test mongo: %v", err)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = db.Close(ctx)
	}
	return db, cleanup
}
