package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/carrylink/carrylink/internal/db"
	mock_database "github.com/carrylink/carrylink/internal/db/mocks"
	"github.com/carrylink/carrylink/internal/repository"
)

type sentMessage struct {
	topic string
	key   string
	value string
}

type fakeProducer struct {
	sent    []sentMessage
	sendErr error
	closed  bool
}

func (p *fakeProducer) SendMessage(_ context.Context, topic string, key, value []byte) error {
	if p.sendErr != nil {
		return p.sendErr
	}
	p.sent = append(p.sent, sentMessage{topic: topic, key: string(key), value: string(value)})
	return nil
}

func (p *fakeProducer) Close() error {
	p.closed = true
	return nil
}

type statusUpdate struct {
	id       uuid.UUID
	status   repository.TaskStatus
	attempts int
	lastErr  *string
	inTx     bool
}

type fakeOutboxRepo struct {
	tasks   []*repository.OutboxTask
	updates []statusUpdate
}

func (r *fakeOutboxRepo) GetProcessableTasksTx(_ context.Context, _ db.Tx, _ int) ([]*repository.OutboxTask, error) {
	return r.tasks, nil
}

func (r *fakeOutboxRepo) UpdateTaskStatusTx(_ context.Context, _ db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, _ *time.Time) error {
	r.updates = append(r.updates, statusUpdate{id: id, status: status, attempts: attempts, lastErr: lastError, inTx: true})
	return nil
}

func (r *fakeOutboxRepo) UpdateTaskStatus(_ context.Context, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, _ *time.Time) error {
	r.updates = append(r.updates, statusUpdate{id: id, status: status, attempts: attempts, lastErr: lastError})
	return nil
}

func newPublisherUnderTest(t *testing.T, repo *fakeOutboxRepo, producer *fakeProducer) *Publisher {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)

	mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
	mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(errors.New("tx is closed")).AnyTimes()

	return NewPublisher(mockDB, repo, producer,
		PublisherConfig{PollInterval: time.Second, BatchSize: 50}, zap.NewNop())
}

func TestProcessBatch(t *testing.T) {
	t.Run("claims, sends and completes tasks", func(t *testing.T) {
		taskA := &repository.OutboxTask{ID: uuid.New(), Topic: "request_audit", Payload: []byte(`{"action":"request_created"}`)}
		taskB := &repository.OutboxTask{ID: uuid.New(), Topic: "request_audit", Payload: []byte(`{"action":"matching_confirmed"}`)}
		repo := &fakeOutboxRepo{tasks: []*repository.OutboxTask{taskA, taskB}}
		producer := &fakeProducer{}

		p := newPublisherUnderTest(t, repo, producer)
		require.NoError(t, p.processBatch(context.Background()))

		require.Len(t, producer.sent, 2)
		assert.Equal(t, "request_audit", producer.sent[0].topic)
		assert.Equal(t, taskA.ID.String(), producer.sent[0].key)
		assert.Equal(t, `{"action":"request_created"}`, producer.sent[0].value)

		require.Len(t, repo.updates, 4)
		assert.Equal(t, repository.TaskStatusProcessing, repo.updates[0].status)
		assert.True(t, repo.updates[0].inTx)
		assert.Equal(t, repository.TaskStatusProcessing, repo.updates[1].status)
		assert.Equal(t, repository.TaskStatusDone, repo.updates[2].status)
		assert.Equal(t, repository.TaskStatusDone, repo.updates[3].status)
	})

	t.Run("empty batch commits and sends nothing", func(t *testing.T) {
		repo := &fakeOutboxRepo{}
		producer := &fakeProducer{}

		p := newPublisherUnderTest(t, repo, producer)
		require.NoError(t, p.processBatch(context.Background()))

		assert.Empty(t, producer.sent)
		assert.Empty(t, repo.updates)
	})

	t.Run("send failure marks task failed with attempt count", func(t *testing.T) {
		task := &repository.OutboxTask{ID: uuid.New(), Topic: "request_audit", Payload: []byte(`{}`), Attempts: 1}
		repo := &fakeOutboxRepo{tasks: []*repository.OutboxTask{task}}
		producer := &fakeProducer{sendErr: errors.New("broker unreachable")}

		p := newPublisherUnderTest(t, repo, producer)
		require.NoError(t, p.processBatch(context.Background()))

		require.Len(t, repo.updates, 2)
		failed := repo.updates[1]
		assert.Equal(t, repository.TaskStatusFailed, failed.status)
		assert.Equal(t, 2, failed.attempts)
		require.NotNil(t, failed.lastErr)
		assert.Equal(t, "broker unreachable", *failed.lastErr)
	})
}

func TestPublisherShutdown(t *testing.T) {
	producer := &fakeProducer{}
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)

	p := NewPublisher(mockDB, &fakeOutboxRepo{}, producer,
		PublisherConfig{PollInterval: time.Hour, BatchSize: 1}, zap.NewNop())

	done := make(chan struct{})
	go func() {
		p.Run(context.Background())
		close(done)
	}()

	p.Shutdown()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher did not stop after shutdown")
	}
	assert.True(t, producer.closed)
	p.Shutdown()
}
