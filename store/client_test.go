package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewClientLockedDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "stillpoint.db")

	client, err := NewClient(dbPath)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		_ = client.Close()
	}()

	_, err = NewClient(dbPath)
	if !errors.Is(err, errAlreadyRunning) {
		t.Fatalf(
			"expected the second open to report a running instance, got: %v",
			err,
		)
	}
}

func TestNewClientReleasesLockOnClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "stillpoint.db")

	client, err := NewClient(dbPath)
	if err != nil {
		t.Fatal(err)
	}

	err = client.Close()
	if err != nil {
		t.Fatal(err)
	}

	reopened, err := NewClient(dbPath)
	if err != nil {
		t.Fatalf("expected the lock to be released on close, got: %v", err)
	}

	_ = reopened.Close()
}
