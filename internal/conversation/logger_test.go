package conversation_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argo-assistant/internal/conversation"
	"argo-assistant/internal/conversation/repository"
	"argo-assistant/internal/model"
)

type recordingLogger struct {
	mu     sync.Mutex
	warns  []string
	errors []string
}

func (m *recordingLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *recordingLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *recordingLogger) Info(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *recordingLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Warnf(ctx context.Context, format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(format, args...))
}
func (m *recordingLogger) Error(ctx context.Context, args ...any) {}
func (m *recordingLogger) Errorf(ctx context.Context, format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, fmt.Sprintf(format, args...))
}
func (m *recordingLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *recordingLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *recordingLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *recordingLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakeRepo struct {
	entries []model.LogEntry
	err     error
	ctxErr  error
}

func (f *fakeRepo) AppendEntry(ctx context.Context, entry model.LogEntry) error {
	f.ctxErr = ctx.Err()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeRepo) FindRecords(ctx context.Context, opt repository.FindRecordsOptions) ([]model.Record, error) {
	return nil, nil
}

func TestAppend(t *testing.T) {
	entry := model.LogEntry{Timestamp: time.Now(), UserMessage: "hi", AssistantResponse: "hello"}

	t.Run("writes to the store", func(t *testing.T) {
		l := &recordingLogger{}
		repo := &fakeRepo{}
		conversation.New(l, repo, time.Second).Append(context.Background(), entry)

		require.Len(t, repo.entries, 1)
		assert.Equal(t, entry, repo.entries[0])
		assert.Empty(t, l.warns)
		assert.Empty(t, l.errors)
	})

	t.Run("store not configured is a warning", func(t *testing.T) {
		l := &recordingLogger{}
		conversation.New(l, nil, time.Second).Append(context.Background(), entry)

		assert.Len(t, l.warns, 1)
		assert.Empty(t, l.errors)
	})

	t.Run("store failure is reported, not returned", func(t *testing.T) {
		l := &recordingLogger{}
		conversation.New(l, &fakeRepo{err: errors.New("connection refused")}, time.Second).Append(context.Background(), entry)

		require.Len(t, l.errors, 1)
		assert.Contains(t, l.errors[0], "connection refused")
	})

	t.Run("malformed acknowledgement is reported", func(t *testing.T) {
		l := &recordingLogger{}
		err := fmt.Errorf("%w: 0 rows affected", repository.ErrMalformedAck)
		conversation.New(l, &fakeRepo{err: err}, time.Second).Append(context.Background(), entry)

		require.Len(t, l.errors, 1)
		assert.Contains(t, l.errors[0], "malformed acknowledgement")
	})

	t.Run("cancelled request still writes", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		repo := &fakeRepo{}
		conversation.New(&recordingLogger{}, repo, time.Second).Append(ctx, entry)

		require.Len(t, repo.entries, 1)
		assert.NoError(t, repo.ctxErr)
	})
}
