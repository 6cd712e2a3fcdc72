package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Store_And_Get_Recent_Records(t *testing.T) {
	req := require.New(t)
	repository := NewLifecycleRepository(openDB(t), slog.Default(), 50)
	at := time.Now().UTC()

	records := []LifecycleRecord{
		{ID: uuid.New(), Kind: "qr", At: at},
		{ID: uuid.New(), Kind: "authenticated", At: at.Add(1 * time.Second)},
		{ID: uuid.New(), Kind: "ready", At: at.Add(2 * time.Second)},
		{ID: uuid.New(), Kind: "disconnected", Detail: "NAVIGATION", At: at.Add(3 * time.Second)},
	}
	for _, record := range records {
		req.NoError(repository.StoreRecord(record))
	}

	fetched, err := repository.GetRecent(0)
	req.NoError(err)
	req.Len(fetched, len(records))

	// Newest first
	req.Equal("disconnected", fetched[0].Kind)
	req.Equal("NAVIGATION", fetched[0].Detail)
	req.Equal("qr", fetched[3].Kind)
	req.True(fetched[0].At.Equal(records[3].At))
	req.Equal(records[3].ID, fetched[0].ID)
}

func Test_Get_Recent_Records_With_Limit(t *testing.T) {
	req := require.New(t)
	repository := NewLifecycleRepository(openDB(t), slog.Default(), 50)
	at := time.Now().UTC()

	for i := 0; i < 5; i++ {
		req.NoError(repository.StoreRecord(LifecycleRecord{Kind: "qr", At: at.Add(time.Duration(i) * time.Second)}))
	}

	fetched, err := repository.GetRecent(2)
	req.NoError(err)
	req.Len(fetched, 2)
	req.True(fetched[0].At.After(fetched[1].At))
}

func Test_Same_Nanosecond_Records_Are_Kept(t *testing.T) {
	req := require.New(t)
	repository := NewLifecycleRepository(openDB(t), slog.Default(), 50)
	at := time.Now().UTC()

	req.NoError(repository.StoreRecord(LifecycleRecord{Kind: "ready", At: at}))
	req.NoError(repository.StoreRecord(LifecycleRecord{Kind: "disconnected", At: at}))

	fetched, err := repository.GetRecent(10)
	req.NoError(err)
	req.Len(fetched, 2)
	req.NotEqual(uuid.Nil, fetched[0].ID)
}

func Test_Empty_Journal(t *testing.T) {
	req := require.New(t)
	repository := NewLifecycleRepository(openDB(t), slog.Default(), 50)

	fetched, err := repository.GetRecent(10)
	req.NoError(err)
	req.Empty(fetched)
}

func Test_Get_Recent_Records_By_Kind_Counts_Matches_Only(t *testing.T) {
	req := require.New(t)
	repository := NewLifecycleRepository(openDB(t), slog.Default(), 50)
	at := time.Now().UTC()

	// Given three ready records buried under newer qr records
	for i := 0; i < 3; i++ {
		req.NoError(repository.StoreRecord(LifecycleRecord{Kind: "ready", At: at.Add(time.Duration(i) * time.Second)}))
	}
	for i := 3; i < 10; i++ {
		req.NoError(repository.StoreRecord(LifecycleRecord{Kind: "qr", At: at.Add(time.Duration(i) * time.Second)}))
	}

	// When asking for the last two ready records
	fetched, err := repository.GetRecentByKind("ready", 2)

	// Then the limit applies to the matching records
	req.NoError(err)
	req.Len(fetched, 2)
	req.Equal("ready", fetched[0].Kind)
	req.Equal("ready", fetched[1].Kind)
	req.True(fetched[0].At.Equal(at.Add(2 * time.Second)))
	req.True(fetched[1].At.Equal(at.Add(1 * time.Second)))
}
