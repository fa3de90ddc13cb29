//go:build unit

package repository_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"newsletter-delivery/internal/domain/idempotency"
	"newsletter-delivery/internal/infra"
	"newsletter-delivery/internal/infra/repository"
	sqlc "newsletter-delivery/internal/infra/sqlc/generated"
	repositorymock "newsletter-delivery/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// InsertClaim Tests
// =============================================================================

func TestIdempotencyRepository_InsertClaim(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	key, err := idempotency.NewKey("abc123")
	require.NoError(t, err)

	testCases := []struct {
		name          string
		rows          int64
		queryErr      error
		expectClaimed bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: first insert claims the key", rows: 1, expectClaimed: true},
		{name: "success: existing record is not claimed", rows: 0, expectClaimed: false},
		{
			name:       "error: lock wait timed out",
			queryErr:   &pgconn.PgError{Code: "55P03", Message: "canceling statement due to lock timeout"},
			expectKind: infra.KindLockTimeout,
		},
		{
			name:       "error: database error occurs",
			queryErr:   errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries)

			mockQueries.EXPECT().
				ClaimIdempotencyKey(ctx, mockDB, sqlc.ClaimIdempotencyKeyParams{UserID: ownerID, IdempotencyKey: "abc123"}).
				Return(tc.rows, tc.queryErr)

			claimed, err := repo.InsertClaim(ctx, mockDB, ownerID, key)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.False(t, claimed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectClaimed, claimed)
		})
	}
}

// =============================================================================
// FetchSavedResponse Tests
// =============================================================================

func TestIdempotencyRepository_FetchSavedResponse(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	key, err := idempotency.NewKey("abc123")
	require.NoError(t, err)

	t.Run("success: completed record is decoded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries)

		mockQueries.EXPECT().GetSavedResponse(ctx, mockDB, gomock.Any()).Return(sqlc.GetSavedResponseRow{
			ResponseStatusCode: pgtype.Int2{Int16: http.StatusSeeOther, Valid: true},
			ResponseHeaders:    []byte(`[{"name":"Location","value":"/admin/dashboard"},{"name":"Set-Cookie","value":"_flash=x"}]`),
			ResponseBody:       []byte{},
		}, nil)

		got, err := repo.FetchSavedResponse(ctx, mockDB, ownerID, key)
		require.NoError(t, err)
		require.NotNil(t, got)

		want := idempotency.SavedResponse{
			StatusCode: http.StatusSeeOther,
			Headers: []idempotency.Header{
				{Name: "Location", Value: "/admin/dashboard"},
				{Name: "Set-Cookie", Value: "_flash=x"},
			},
			Body: []byte{},
		}
		if diff := cmp.Diff(want, *got); diff != "" {
			t.Errorf("saved response mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: in-progress record returns nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries)

		mockQueries.EXPECT().GetSavedResponse(ctx, mockDB, gomock.Any()).Return(sqlc.GetSavedResponseRow{}, nil)

		got, err := repo.FetchSavedResponse(ctx, mockDB, ownerID, key)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("error: missing record is NOT_FOUND", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries)

		mockQueries.EXPECT().GetSavedResponse(ctx, mockDB, gomock.Any()).Return(sqlc.GetSavedResponseRow{}, pgx.ErrNoRows)

		_, err := repo.FetchSavedResponse(ctx, mockDB, ownerID, key)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: broken header snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewIdempotencyRepository(mockQueries)

		mockQueries.EXPECT().GetSavedResponse(ctx, mockDB, gomock.Any()).Return(sqlc.GetSavedResponseRow{
			ResponseStatusCode: pgtype.Int2{Int16: 200, Valid: true},
			ResponseHeaders:    []byte(`{not-json`),
		}, nil)

		_, err := repo.FetchSavedResponse(ctx, mockDB, ownerID, key)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// CompleteClaim Tests
// =============================================================================

func TestIdempotencyRepository_CompleteClaim(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	key, err := idempotency.NewKey("abc123")
	require.NoError(t, err)

	resp, err := idempotency.NewSavedResponse(http.StatusOK,
		[]idempotency.Header{{Name: "Content-Type", Value: "application/json; charset=utf-8"}},
		[]byte(`{"status":"accepted"}`))
	require.NoError(t, err)

	testCases := []struct {
		name       string
		rows       int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: snapshot written", rows: 1},
		{name: "error: no in-progress claim", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries)

			mockQueries.EXPECT().SaveIdempotentResponse(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.SaveIdempotentResponseParams) (int64, error) {
					assert.Equal(t, ownerID, arg.UserID)
					assert.Equal(t, "abc123", arg.IdempotencyKey)
					assert.Equal(t, int16(http.StatusOK), arg.ResponseStatusCode.Int16)
					assert.JSONEq(t, `[{"name":"Content-Type","value":"application/json; charset=utf-8"}]`, string(arg.ResponseHeaders))
					assert.Equal(t, `{"status":"accepted"}`, string(arg.ResponseBody))
					return tc.rows, tc.queryErr
				})

			err := repo.CompleteClaim(ctx, mockDB, ownerID, key, resp)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIdempotencyRepository_SetLockTimeout(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewIdempotencyRepository(mockQueries)

	mockQueries.EXPECT().SetLocalLockTimeout(ctx, mockDB, "2500ms").Return(nil)
	mockQueries.EXPECT().SetLocalLockTimeout(ctx, mockDB, "1ms").Return(nil)

	require.NoError(t, repo.SetLockTimeout(ctx, mockDB, 2500*time.Millisecond))
	require.NoError(t, repo.SetLockTimeout(ctx, mockDB, 0))
}

func TestIdempotencyRepository_DeleteCompletedBefore(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewIdempotencyRepository(mockQueries)

	mockQueries.EXPECT().
		DeleteIdempotencyKeysBefore(ctx, mockDB, pgtype.Timestamptz{Time: cutoff, Valid: true}).
		Return(int64(4), nil)

	n, err := repo.DeleteCompletedBefore(ctx, mockDB, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
