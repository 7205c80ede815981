// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cast

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/cinecast/internal/platform/apperr"
	"github.com/taibuivan/cinecast/internal/platform/dberr"
	"github.com/taibuivan/cinecast/internal/platform/validate"
	"github.com/taibuivan/cinecast/pkg/pointer"
)

type Service struct {
	repo      Repository
	publisher EventPublisher
	logger    *slog.Logger
}

func NewService(repo Repository, publisher EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (service *Service) ListCasts(ctx context.Context) ([]*Cast, error) {
	return service.repo.List(ctx)
}

func (service *Service) GetCast(ctx context.Context, id int64) (*Cast, error) {
	c, err := service.repo.Get(ctx, id)
	if dberr.IsNotFound(err) {
		return nil, notFound(id)
	}
	return c, err
}

func (service *Service) CreateCast(ctx context.Context, input CreateInput) (*Cast, error) {
	validator := &validate.Validator{}

	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, MaxNameLen)
	validator.MaxLen(FieldNationality, pointer.Val(input.Nationality), MaxNationalityLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	c := &Cast{Name: input.Name, Nationality: input.Nationality}
	if err := service.repo.Add(ctx, c); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "cast_created", slog.Int64("cast_id", c.ID))
	return c, nil
}

// UpdateCast overwrites only the fields present in input and returns the merged record.
func (service *Service) UpdateCast(ctx context.Context, id int64, input UpdateInput) (*Cast, error) {
	validator := &validate.Validator{}

	validator.NotNull(FieldName, input.Name.Set && input.Name.Null)
	if input.Name.Present() {
		validator.Required(FieldName, input.Name.Value).MaxLen(FieldName, input.Name.Value, MaxNameLen)
	}
	if input.Nationality.Present() {
		validator.MaxLen(FieldNationality, input.Nationality.Value, MaxNationalityLen)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	c, err := service.GetCast(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(c)

	if err := service.repo.Update(ctx, c); err != nil {
		// The row vanished between the read and the write.
		if dberr.IsNotFound(err) {
			return nil, notFound(id)
		}
		return nil, err
	}

	service.logger.InfoContext(ctx, "cast_updated", slog.Int64("cast_id", id))
	return c, nil
}

// DeleteCast removes the cast and returns it as it was before deletion.
func (service *Service) DeleteCast(ctx context.Context, id int64) (*Cast, error) {
	c, err := service.GetCast(ctx, id)
	if err != nil {
		return nil, err
	}

	affected, err := service.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	service.logger.WarnContext(ctx, "cast_deleted", slog.Int64("cast_id", id), slog.Int64("affected", affected))

	// Movies may still reference this id; the event lets the movie service flag them.
	if affected > 0 {
		if err := service.publisher.CastDeleted(ctx, id); err != nil {
			service.logger.ErrorContext(ctx, "cast_deleted_publish_failed",
				slog.Int64("cast_id", id),
				slog.Any("error", err),
			)
		}
	}

	return c, nil
}

func notFound(id int64) *apperr.AppError {
	return apperr.NotFound(fmt.Sprintf("Cast with id %d", id))
}
