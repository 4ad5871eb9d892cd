package audit

import (
	"context"
	"os"
	"testing"
)

// TestMongoStoreRoundTrip requires a live MongoDB instance, since this
// package has no fake for the wire protocol; it's skipped otherwise.
func TestMongoStoreRoundTrip(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping mongo integration test")
	}

	ctx := context.Background()
	store, err := NewMongoStore(ctx, uri, "overlap_test", "runs_test")
	if err != nil {
		t.Fatalf("NewMongoStore: %v", err)
	}
	defer store.Close(ctx)

	rec := Record{RunID: "mongo-test-run", FamilyHash: "xyz", NumSets: 5, Components: 2}
	if err := store.Record(ctx, rec); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := store.Get(ctx, "mongo-test-run")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FamilyHash != "xyz" {
		t.Fatalf("Get = %+v", got)
	}
}
