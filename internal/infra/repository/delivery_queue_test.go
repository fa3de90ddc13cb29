//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsletter-delivery/internal/infra"
	"newsletter-delivery/internal/infra/repository"
	sqlc "newsletter-delivery/internal/infra/sqlc/generated"
	"newsletter-delivery/internal/usecase/shared"
	repositorymock "newsletter-delivery/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDeliveryQueueRepository_Enqueue(t *testing.T) {
	ctx := context.Background()
	issueID := uuid.New()

	testCases := []struct {
		name        string
		rows        int64
		queryErr    error
		expectCount int64
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "success: one task per confirmed subscriber", rows: 3, expectCount: 3},
		{name: "success: no confirmed subscribers", rows: 0, expectCount: 0},
		{
			name:       "error: issue missing",
			queryErr:   &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockDeliveryQueueWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewDeliveryQueueRepository(mockQueries)

			mockQueries.EXPECT().EnqueueDeliveryTasks(ctx, mockDB, issueID).Return(tc.rows, tc.queryErr)

			n, err := repo.Enqueue(ctx, mockDB, issueID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectCount, n)
		})
	}
}

func TestDeliveryQueueRepository_Dequeue(t *testing.T) {
	ctx := context.Background()
	issueID := uuid.New()
	executeAfter := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	t.Run("success: task mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDeliveryQueueWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewDeliveryQueueRepository(mockQueries)

		mockQueries.EXPECT().DequeueDeliveryTask(ctx, mockDB).Return(sqlc.IssueDeliveryQueue{
			NewsletterIssueID: issueID,
			SubscriberEmail:   "reader@example.com",
			NRetries:          1,
			ExecuteAfter:      pgtype.Timestamptz{Time: executeAfter, Valid: true},
		}, nil)

		task, err := repo.Dequeue(ctx, mockDB)
		require.NoError(t, err)
		assert.Equal(t, issueID, task.NewsletterIssueID)
		assert.Equal(t, "reader@example.com", task.SubscriberEmail)
		assert.Equal(t, int32(1), task.NRetries)
		assert.True(t, executeAfter.Equal(task.ExecuteAfter))
	})

	t.Run("error: empty queue is NOT_FOUND", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockDeliveryQueueWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewDeliveryQueueRepository(mockQueries)

		mockQueries.EXPECT().DequeueDeliveryTask(ctx, mockDB).Return(sqlc.IssueDeliveryQueue{}, pgx.ErrNoRows)

		task, err := repo.Dequeue(ctx, mockDB)
		require.Error(t, err)
		assert.Nil(t, task)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestDeliveryQueueRepository_DeleteAndReschedule(t *testing.T) {
	ctx := context.Background()
	task := shared.DeliveryTask{NewsletterIssueID: uuid.New(), SubscriberEmail: "reader@example.com"}
	next := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	testCases := []struct {
		name       string
		rows       int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "error: task already gone", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run("Delete/"+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockDeliveryQueueWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewDeliveryQueueRepository(mockQueries)

			mockQueries.EXPECT().DeleteDeliveryTask(ctx, mockDB, sqlc.DeleteDeliveryTaskParams{
				NewsletterIssueID: task.NewsletterIssueID,
				SubscriberEmail:   task.SubscriberEmail,
			}).Return(tc.rows, tc.queryErr)

			err := repo.Delete(ctx, mockDB, task)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			assert.NoError(t, err)
		})

		t.Run("Reschedule/"+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockDeliveryQueueWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewDeliveryQueueRepository(mockQueries)

			mockQueries.EXPECT().RescheduleDeliveryTask(ctx, mockDB, sqlc.RescheduleDeliveryTaskParams{
				NewsletterIssueID: task.NewsletterIssueID,
				SubscriberEmail:   task.SubscriberEmail,
				ExecuteAfter:      pgtype.Timestamptz{Time: next, Valid: true},
			}).Return(tc.rows, tc.queryErr)

			err := repo.Reschedule(ctx, mockDB, task, next)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDeliveryQueueRepository_Count(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockDeliveryQueueWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewDeliveryQueueRepository(mockQueries)

	mockQueries.EXPECT().CountDeliveryTasks(ctx, mockDB).Return(int64(7), nil)

	n, err := repo.Count(ctx, mockDB)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
