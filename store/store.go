// Package store connects to the data store and manages session records and
// their event logs
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/stillpoint/internal/session"
)

const (
	sessionBucket = "sessions"
	eventBucket   = "events"
)

// eventKeySep joins a session ID and a timestamp into an event key so that
// a cursor prefix scan yields one session's events in recording order.
const eventKeySep = "\x00"

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	observers
	pathToDB string
}

func (c *Client) CreateSession(sess *session.Record) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	err = c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put([]byte(sess.ID), value)
	})
	if err != nil {
		return err
	}

	c.notify()

	return nil
}

func (c *Client) GetSession(id string) (*session.Record, error) {
	var sess session.Record

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket)).Get([]byte(id))
		if len(b) == 0 {
			return ErrSessionNotFound
		}

		return json.Unmarshal(b, &sess)
	})
	if err != nil {
		return nil, err
	}

	return &sess, nil
}

func (c *Client) ListSessions(userID string) ([]session.Record, error) {
	var sessions []session.Record

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).
			ForEach(func(_, v []byte) error {
				var sess session.Record

				err := json.Unmarshal(v, &sess)
				if err != nil {
					return err
				}

				if userID == "" || sess.UserID == userID {
					sessions = append(sessions, sess)
				}

				return nil
			})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	return sessions, nil
}

func (c *Client) RecordEvent(ev *session.Event) error {
	if ev.RecordedAt.IsZero() {
		ev.RecordedAt = time.Now()
	}

	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	key := []byte(
		ev.SessionID + eventKeySep + ev.RecordedAt.Format(time.RFC3339Nano),
	)

	err = c.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(sessionBucket)).Get([]byte(ev.SessionID)) == nil {
			return ErrSessionNotFound
		}

		return tx.Bucket([]byte(eventBucket)).Put(key, value)
	})
	if err != nil {
		return err
	}

	c.notify()

	return nil
}

func (c *Client) SetStatus(
	id string,
	status session.Status,
	endedAt time.Time,
) error {
	if !status.Valid() {
		return errUnknownStatus.Fmt(status)
	}

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		v := b.Get([]byte(id))
		if len(v) == 0 {
			return ErrSessionNotFound
		}

		var sess session.Record

		err := json.Unmarshal(v, &sess)
		if err != nil {
			return err
		}

		sess.Status = status
		sess.EndedAt = endedAt

		value, err := json.Marshal(&sess)
		if err != nil {
			return err
		}

		return b.Put([]byte(id), value)
	})
	if err != nil {
		return err
	}

	c.notify()

	return nil
}

func (c *Client) ListEvents(sessionID string) ([]session.Event, error) {
	var events []session.Event

	prefix := []byte(sessionID + eventKeySep)

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(eventBucket)).Cursor()

		for k, v := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cur.Next() {
			var ev session.Event

			err := json.Unmarshal(v, &ev)
			if err != nil {
				return err
			}

			events = append(events, ev)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (c *Client) DeleteSessions(ids []string) error {
	err := c.Update(func(tx *bolt.Tx) error {
		sessions := tx.Bucket([]byte(sessionBucket))
		events := tx.Bucket([]byte(eventBucket))

		for _, id := range ids {
			err := sessions.Delete([]byte(id))
			if err != nil {
				return err
			}

			// Collect the event keys first as deleting while iterating
			// invalidates the cursor position
			prefix := []byte(id + eventKeySep)
			cur := events.Cursor()

			var keys [][]byte

			for k, _ := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = cur.Next() {
				keys = append(keys, append([]byte(nil), k...))
			}

			for _, k := range keys {
				err = events.Delete(k)
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	c.notify()

	return nil
}

func (c *Client) Subscribe(fn func()) (cancel func()) {
	return c.subscribe(fn)
}

func (c *Client) Open() error {
	db, err := openDB(c.pathToDB)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(eventBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		DB:       db,
		pathToDB: dbPath,
	}, nil
}
