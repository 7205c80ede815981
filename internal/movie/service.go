// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/cinecast/internal/castclient"
	"github.com/taibuivan/cinecast/internal/platform/apperr"
	"github.com/taibuivan/cinecast/internal/platform/constants"
	"github.com/taibuivan/cinecast/internal/platform/dberr"
	"github.com/taibuivan/cinecast/internal/platform/validate"
)

// IndeterminatePolicy decides how a write treats a cast check that got no answer.
type IndeterminatePolicy string

const (
	// PolicyDeny rejects the write as if the cast did not exist.
	PolicyDeny IndeterminatePolicy = constants.IndeterminateDeny
	// PolicyUnavailable rejects the write with 503 so the client can tell the cases apart.
	PolicyUnavailable IndeterminatePolicy = constants.IndeterminateUnavailable
)

type Service struct {
	repo    Repository
	checker CastChecker
	policy  IndeterminatePolicy
	logger  *slog.Logger
}

func NewService(repo Repository, checker CastChecker, policy IndeterminatePolicy, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		checker: checker,
		policy:  policy,
		logger:  logger,
	}
}

func (service *Service) ListMovies(ctx context.Context) ([]*Movie, error) {
	return service.repo.List(ctx)
}

func (service *Service) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	m, err := service.repo.Get(ctx, id)
	if dberr.IsNotFound(err) {
		return nil, notFound(id)
	}
	return m, err
}

// CreateMovie validates the payload, verifies every referenced cast, then inserts.
// Nothing is written unless every cast check passes.
func (service *Service) CreateMovie(ctx context.Context, input CreateInput) (*Movie, error) {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, MaxNameLen)
	validator.Required(FieldPlot, input.Plot).MaxLen(FieldPlot, input.Plot, MaxPlotLen)
	validator.Present(FieldGenres, input.Genres != nil)
	validator.Present(FieldCastsID, input.CastsID != nil)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.ensureCastsExist(ctx, input.CastsID); err != nil {
		return nil, err
	}

	m := &Movie{
		Name:    input.Name,
		Plot:    input.Plot,
		Genres:  input.Genres,
		CastsID: input.CastsID,
	}
	if err := service.repo.Add(ctx, m); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "movie_created",
		slog.Int64("movie_id", m.ID),
		slog.Any("casts_id", m.CastsID),
	)
	return m, nil
}

// UpdateMovie overwrites only the fields present in input. Casts are verified
// only when casts_id is part of the payload.
func (service *Service) UpdateMovie(ctx context.Context, id int64, input UpdateInput) (*Movie, error) {
	validator := &validate.Validator{}

	validator.NotNull(FieldName, input.Name.Set && input.Name.Null)
	validator.NotNull(FieldPlot, input.Plot.Set && input.Plot.Null)
	validator.NotNull(FieldGenres, input.Genres.Set && input.Genres.Null)
	validator.NotNull(FieldCastsID, input.CastsID.Set && input.CastsID.Null)
	if input.Name.Present() {
		validator.Required(FieldName, input.Name.Value).MaxLen(FieldName, input.Name.Value, MaxNameLen)
	}
	if input.Plot.Present() {
		validator.Required(FieldPlot, input.Plot.Value).MaxLen(FieldPlot, input.Plot.Value, MaxPlotLen)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	m, err := service.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CastsID.Present() {
		if err := service.ensureCastsExist(ctx, input.CastsID.Value); err != nil {
			return nil, err
		}
	}

	input.apply(m)

	if err := service.repo.Update(ctx, m); err != nil {
		// The row vanished between the read and the write.
		if dberr.IsNotFound(err) {
			return nil, notFound(id)
		}
		return nil, err
	}

	service.logger.InfoContext(ctx, "movie_updated", slog.Int64("movie_id", id))
	return m, nil
}

// DeleteMovie removes the movie and returns it as it was before deletion.
func (service *Service) DeleteMovie(ctx context.Context, id int64) (*Movie, error) {
	m, err := service.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	affected, err := service.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	service.logger.WarnContext(ctx, "movie_deleted", slog.Int64("movie_id", id), slog.Int64("affected", affected))
	return m, nil
}

// ReportDanglingCast logs every movie that still references a deleted cast.
// References are flagged, never rewritten. It returns the number of movies flagged.
func (service *Service) ReportDanglingCast(ctx context.Context, castID int64) (int, error) {
	movies, err := service.repo.ListByCast(ctx, castID)
	if err != nil {
		return 0, err
	}

	for _, m := range movies {
		service.logger.WarnContext(ctx, "movie_cast_reference_dangling",
			slog.Int64("movie_id", m.ID),
			slog.Int64("cast_id", castID),
		)
	}

	return len(movies), nil
}

// # Cast Verification

// ensureCastsExist checks ids in order and stops at the first one that is not confirmed.
func (service *Service) ensureCastsExist(ctx context.Context, ids []int64) error {
	for _, castID := range ids {
		outcome := service.checker.Check(ctx, castID)

		switch outcome.Verdict {
		case castclient.Confirmed:
			continue

		case castclient.Denied:
			service.logger.InfoContext(ctx, "cast_check_denied", slog.Int64("cast_id", castID))
			return apperr.ReferenceNotFound("Cast", castID)

		default:
			service.logger.WarnContext(ctx, "cast_check_indeterminate",
				slog.Int64("cast_id", castID),
				slog.Int("status", outcome.StatusCode),
				slog.Bool("timeout", outcome.IsTimeout()),
				slog.Any("error", outcome.Err),
				slog.String("policy", string(service.policy)),
			)

			if service.policy == PolicyUnavailable {
				return apperr.UpstreamUnavailable(
					fmt.Sprintf("Cast service could not verify cast with id %d", castID),
					outcome.Err,
				)
			}
			return apperr.ReferenceNotFound("Cast", castID)
		}
	}

	return nil
}

func notFound(id int64) *apperr.AppError {
	return apperr.NotFound(fmt.Sprintf("Movie with id %d", id))
}
