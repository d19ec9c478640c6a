package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/mmynk/settleup/internal/storage"
	"github.com/mmynk/settleup/internal/storage/storetest"
)

// Every record is scoped by a fresh group UUID, so runs can share one database.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("SETTLEUP_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("SETTLEUP_TEST_POSTGRES_DSN not set")
	}

	storetest.Run(t, func(t *testing.T) storage.Store {
		store, err := New(context.Background(), dsn, 8)
		if err != nil {
			t.Fatalf("Failed to create store: %v", err)
		}
		return store
	})
}

func TestNewRejectsBadDSN(t *testing.T) {
	_, err := New(context.Background(), "postgres://%zz", 1)
	if err == nil {
		t.Fatal("Expected error for malformed DSN")
	}
}

func TestNullable(t *testing.T) {
	if nullable("") != nil {
		t.Error("empty string should map to NULL")
	}
	if v := nullable("x"); v == nil || *v != "x" {
		t.Errorf("nullable(\"x\") = %v", v)
	}
}
