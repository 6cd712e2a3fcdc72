//go:generate go run go.uber.org/mock/mockgen -source=lifecycle.go -destination=../mocks/mock_lifecycle_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const lifecyclePrefix = "lifecycle:"

type ILifecycleRepository interface {
	StoreRecord(record LifecycleRecord) error
	GetRecent(limit int) ([]LifecycleRecord, error)
}

type LifecycleRepository struct {
	db           *badger.DB
	log          *slog.Logger
	defaultLimit int
}

func NewLifecycleRepository(db *badger.DB, log *slog.Logger, defaultLimit int) LifecycleRepository {
	return LifecycleRepository{db: db, log: log, defaultLimit: defaultLimit}
}

// LifecycleRecord is one journaled session transition. Detail never holds a QR code.
type LifecycleRecord struct {
	ID     uuid.UUID `json:"id"`
	Kind   string    `json:"kind"`
	Detail string    `json:"detail,omitempty"`
	At     time.Time `json:"at"`
}

// StoreRecord persists a record under "lifecycle:{timestamp_padded}:{uuid}".
// The 19-digit padding keeps lexicographical order chronological, the uuid
// separates two records landing on the same nanosecond.
func (r LifecycleRepository) StoreRecord(record LifecycleRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	key := fmt.Sprintf("%s%019d:%s", lifecyclePrefix, record.At.UnixNano(), record.ID)
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetRecent returns the newest records first, at most limit of them.
// A non-positive limit falls back to the repository default.
func (r LifecycleRepository) GetRecent(limit int) ([]LifecycleRecord, error) {
	return r.scan(limit, "")
}

// GetRecentByKind is GetRecent restricted to one event kind. The limit counts
// matching records only.
func (r LifecycleRepository) GetRecentByKind(kind string, limit int) ([]LifecycleRecord, error) {
	return r.scan(limit, kind)
}

func (r LifecycleRepository) scan(limit int, kind string) ([]LifecycleRecord, error) {
	if limit <= 0 {
		limit = r.defaultLimit
	}
	var records []LifecycleRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(lifecyclePrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the greatest key under the prefix
		seekKey := append([]byte(lifecyclePrefix), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if len(records) == limit {
				r.log.Debug("Journal limit reached", "limit", limit)
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var record LifecycleRecord
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				if kind == "" || record.Kind == kind {
					records = append(records, record)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
