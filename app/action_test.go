package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/urfave/cli/v2"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/stillpoint/config"
	"github.com/ayoisaiah/stillpoint/store"
)

const testConfig = `session:
  default_technique: mindfulness
  cue_interval: 15s
  persist: true
notifications:
  enabled: true
system:
  user: local
`

// seedUndecodableSession writes a session value that cannot be decoded so
// that listing the database fails after it has been opened.
func seedUndecodableSession(t *testing.T, dbPath string) {
	t.Helper()

	err := os.MkdirAll(filepath.Dir(dbPath), 0o755)
	if err != nil {
		t.Fatal(err)
	}

	db, err := bolt.Open(dbPath, 0o600, nil)
	if err != nil {
		t.Fatal(err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("sessions"))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte("events"))
		if err != nil {
			return err
		}

		return b.Put([]byte("bad"), []byte("{"))
	})
	if err != nil {
		t.Fatal(err)
	}

	err = db.Close()
	if err != nil {
		t.Fatal(err)
	}
}

func TestSessionHelperReleasesStoreOnError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("STILLPOINT_ENV", "test")

	xdg.Reload()

	config.InitializePaths()

	err := os.WriteFile(config.ConfigFilePath(), []byte(testConfig), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	seedUndecodableSession(t, config.DBFilePath())

	ctx := cli.NewContext(
		&cli.App{},
		flag.NewFlagSet("list", flag.ContinueOnError),
		nil,
	)

	_, _, err = sessionHelper(ctx)
	if err == nil {
		t.Fatal("expected an error from the undecodable session record")
	}

	// The file lock must be free for the next opener.
	client, err := store.NewClient(config.DBFilePath())
	if err != nil {
		t.Fatalf("expected the database lock to be released, got: %v", err)
	}

	_ = client.Close()
}
