package sink

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"wa-gateway/domain/event"
	"wa-gateway/mocks"
	"wa-gateway/repositories"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJournalSink_StoresTransitionWithoutQRCode(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockILifecycleRepository(ctrl)
	journal := NewJournalSink(repo, slog.Default())
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	var stored []repositories.LifecycleRecord
	repo.EXPECT().StoreRecord(gomock.Any()).
		DoAndReturn(func(record repositories.LifecycleRecord) error {
			stored = append(stored, record)
			return nil
		}).
		Times(2)

	req.NoError(journal.Consume(context.Background(), event.QRIssued{Code: "SECRET", At: at}))
	req.NoError(journal.Consume(context.Background(), event.Disconnected{Reason: "NAVIGATION", At: at}))

	req.Len(stored, 2)
	req.Equal("qr", stored[0].Kind)
	req.Empty(stored[0].Detail)
	req.Equal("disconnected", stored[1].Kind)
	req.Equal("NAVIGATION", stored[1].Detail)
	req.Equal(at, stored[1].At)
}

func TestJournalSink_PropagatesRepositoryError(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockILifecycleRepository(ctrl)
	repo.EXPECT().StoreRecord(gomock.Any()).Return(fmt.Errorf("closed")).Times(1)

	err := NewJournalSink(repo, slog.Default()).Consume(context.Background(), event.Ready{At: time.Now()})
	req.Error(err)
}

func TestJournalSink_SkipsWhenContextDone(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockILifecycleRepository(ctrl)
	repo.EXPECT().StoreRecord(gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewJournalSink(repo, slog.Default()).Consume(ctx, event.Ready{At: time.Now()})
	req.ErrorIs(err, context.Canceled)
}

func TestConsoleSink_DrawsQRCode(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	console := NewConsoleSink(slog.Default(), &out)

	req.NoError(console.Consume(context.Background(), event.QRIssued{Code: "ABC123", At: time.Now()}))

	// Then a block drawing was written
	req.NotEmpty(out.String())
	req.True(strings.ContainsAny(out.String(), "█▀▄"))
}

func TestConsoleSink_OtherEventsOnlyLog(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	console := NewConsoleSink(slog.Default(), &out)

	req.NoError(console.Consume(context.Background(), event.Ready{At: time.Now()}))
	req.NoError(console.Consume(context.Background(), event.AuthFailure{Reason: "x", At: time.Now()}))
	req.Empty(out.String())
}
