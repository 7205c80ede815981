// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinecast/internal/castclient"
	"github.com/taibuivan/cinecast/internal/movie"
	"github.com/taibuivan/cinecast/internal/platform/apperr"
	"github.com/taibuivan/cinecast/pkg/optional"
)

func newService(checker *stubChecker, policy movie.IndeterminatePolicy) (*movie.Service, *memoryRepository) {
	repo := newMemoryRepository()
	return movie.NewService(repo, checker, policy, discardLogger()), repo
}

func validInput(castsID ...int64) movie.CreateInput {
	return movie.CreateInput{
		Name:    "Seven Samurai",
		Plot:    "Farmers hire ronin to defend their village.",
		Genres:  []string{"drama", "action"},
		CastsID: castsID,
	}
}

/*
TestService_CreateMovie_Validation covers required fields and column limits.
*/
func TestService_CreateMovie_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*movie.CreateInput)
		wantField string
	}{
		{"missing_name", func(in *movie.CreateInput) { in.Name = "" }, movie.FieldName},
		{"missing_plot", func(in *movie.CreateInput) { in.Plot = " " }, movie.FieldPlot},
		{"missing_genres", func(in *movie.CreateInput) { in.Genres = nil }, movie.FieldGenres},
		{"missing_casts", func(in *movie.CreateInput) { in.CastsID = nil }, movie.FieldCastsID},
		{"long_plot", func(in *movie.CreateInput) { in.Plot = string(bytes.Repeat([]byte("p"), 251)) }, movie.FieldPlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := newStubChecker(1)
			service, repo := newService(checker, movie.PolicyDeny)

			input := validInput(1)
			tt.mutate(&input)

			_, err := service.CreateMovie(context.Background(), input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, tt.wantField, ae.Details[0].Field)
			assert.Empty(t, repo.rows)
			assert.Empty(t, checker.calls, "validation runs before any cast check")
		})
	}
}

func TestService_CreateMovie_EmptyCastList(t *testing.T) {
	checker := newStubChecker()
	service, _ := newService(checker, movie.PolicyDeny)

	input := validInput()
	input.CastsID = []int64{}

	created, err := service.CreateMovie(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, []int64{}, created.CastsID)
	assert.Empty(t, checker.calls)
}

/*
TestService_CreateMovie_MissingCast rejects the whole write when one cast is absent.
*/
func TestService_CreateMovie_MissingCast(t *testing.T) {
	checker := newStubChecker(1)
	service, repo := newService(checker, movie.PolicyDeny)

	_, err := service.CreateMovie(context.Background(), validInput(1, 2))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, apperr.CodeCastNotFound, ae.Code)
	assert.Equal(t, "Cast with id 2 not found", ae.Message)
	assert.Empty(t, repo.rows)
	assert.Equal(t, []int64{1, 2}, checker.calls)
}

func TestService_CreateMovie_StopsAtFirstMissingCast(t *testing.T) {
	checker := newStubChecker(3)
	service, _ := newService(checker, movie.PolicyDeny)

	_, err := service.CreateMovie(context.Background(), validInput(5, 3))

	assert.True(t, apperr.HasCode(err, apperr.CodeCastNotFound))
	assert.Equal(t, []int64{5}, checker.calls)
}

/*
TestService_CreateMovie_IndeterminatePolicy shows both ways of treating an unanswered check.
*/
func TestService_CreateMovie_IndeterminatePolicy(t *testing.T) {
	tests := []struct {
		policy     movie.IndeterminatePolicy
		wantStatus int
		wantCode   string
	}{
		{movie.PolicyDeny, http.StatusNotFound, apperr.CodeCastNotFound},
		{movie.PolicyUnavailable, http.StatusServiceUnavailable, apperr.CodeUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			checker := newStubChecker()
			checker.outcomes[1] = castclient.Outcome{Verdict: castclient.Indeterminate, Err: errors.New("connection refused")}

			var logs bytes.Buffer
			repo := newMemoryRepository()
			service := movie.NewService(repo, checker, tt.policy, slog.New(slog.NewJSONHandler(&logs, nil)))

			_, err := service.CreateMovie(context.Background(), validInput(1))

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Contains(t, ae.Message, "1")
			assert.Empty(t, repo.rows)
			assert.Contains(t, logs.String(), "cast_check_indeterminate")
		})
	}
}

func TestService_CreateMovie_RoundTrip(t *testing.T) {
	service, _ := newService(newStubChecker(1), movie.PolicyDeny)
	ctx := context.Background()

	created, err := service.CreateMovie(ctx, validInput(1))
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	fetched, err := service.GetMovie(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, fetched.CastsID)
	assert.Equal(t, created, fetched)
}

/*
TestService_UpdateMovie_GenresOnly must not touch the cast service at all.
*/
func TestService_UpdateMovie_GenresOnly(t *testing.T) {
	checker := newStubChecker(1)
	service, _ := newService(checker, movie.PolicyDeny)
	ctx := context.Background()

	created, err := service.CreateMovie(ctx, validInput(1))
	require.NoError(t, err)

	// Cast 1 disappears; a genres-only update must still succeed.
	delete(checker.outcomes, 1)
	checker.calls = nil

	updated, err := service.UpdateMovie(ctx, created.ID, movie.UpdateInput{Genres: optional.Of([]string{"western"})})
	require.NoError(t, err)
	assert.Empty(t, checker.calls)
	assert.Equal(t, []string{"western"}, updated.Genres)
	assert.Equal(t, []int64{1}, updated.CastsID)
	assert.Equal(t, created.Name, updated.Name)
}

func TestService_UpdateMovie_CastsChecked(t *testing.T) {
	checker := newStubChecker(1, 2)
	service, _ := newService(checker, movie.PolicyDeny)
	ctx := context.Background()

	created, err := service.CreateMovie(ctx, validInput(1))
	require.NoError(t, err)

	// Valid replacement list.
	updated, err := service.UpdateMovie(ctx, created.ID, movie.UpdateInput{CastsID: optional.Of([]int64{2, 1})})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, updated.CastsID)

	// Invalid list leaves the stored movie untouched.
	_, err = service.UpdateMovie(ctx, created.ID, movie.UpdateInput{
		Name:    optional.Of("Renamed"),
		CastsID: optional.Of([]int64{2, 9}),
	})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Cast with id 9 not found", ae.Message)

	stored, err := service.GetMovie(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestService_UpdateMovie_EmptyPayload(t *testing.T) {
	checker := newStubChecker(1)
	service, _ := newService(checker, movie.PolicyDeny)
	ctx := context.Background()

	created, err := service.CreateMovie(ctx, validInput(1))
	require.NoError(t, err)
	checker.calls = nil

	updated, err := service.UpdateMovie(ctx, created.ID, movie.UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, created, updated)
	assert.Empty(t, checker.calls)
}

func TestService_UpdateMovie_RejectsNulls(t *testing.T) {
	service, _ := newService(newStubChecker(1), movie.PolicyDeny)
	ctx := context.Background()

	created, err := service.CreateMovie(ctx, validInput(1))
	require.NoError(t, err)

	_, err = service.UpdateMovie(ctx, created.ID, movie.UpdateInput{
		Genres:  optional.Null[[]string](),
		CastsID: optional.Null[[]int64](),
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.Len(t, ae.Details, 2)
}

func TestService_UpdateMovie_NotFoundBeforeCastCheck(t *testing.T) {
	checker := newStubChecker(1)
	service, _ := newService(checker, movie.PolicyDeny)

	_, err := service.UpdateMovie(context.Background(), 404, movie.UpdateInput{CastsID: optional.Of([]int64{1})})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.Equal(t, "Movie with id 404 not found", ae.Message)
	assert.Empty(t, checker.calls)
}

func TestService_DeleteMovie(t *testing.T) {
	service, repo := newService(newStubChecker(1), movie.PolicyDeny)
	ctx := context.Background()

	created, err := service.CreateMovie(ctx, validInput(1))
	require.NoError(t, err)

	deleted, err := service.DeleteMovie(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)
	assert.Empty(t, repo.rows)

	_, err = service.DeleteMovie(ctx, created.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_ReportDanglingCast flags, and never edits, movies referencing a deleted cast.
*/
func TestService_ReportDanglingCast(t *testing.T) {
	var logs bytes.Buffer
	repo := newMemoryRepository()
	service := movie.NewService(repo, newStubChecker(1, 2), movie.PolicyDeny, slog.New(slog.NewJSONHandler(&logs, nil)))
	ctx := context.Background()

	withBoth, err := service.CreateMovie(ctx, validInput(1, 2))
	require.NoError(t, err)
	_, err = service.CreateMovie(ctx, validInput(2))
	require.NoError(t, err)

	flagged, err := service.ReportDanglingCast(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, flagged)
	assert.Contains(t, logs.String(), "movie_cast_reference_dangling")

	stored, err := service.GetMovie(ctx, withBoth.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, stored.CastsID)
}

func TestService_StorageFailurePropagates(t *testing.T) {
	checker := newStubChecker(1)
	service, repo := newService(checker, movie.PolicyDeny)
	repo.err = apperr.Internal(errors.New("connection refused"))

	_, err := service.CreateMovie(context.Background(), validInput(1))

	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
}
