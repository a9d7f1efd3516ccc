package postgre

import (
	"context"
	"database/sql"
	"errors"

	"strategy-shop/internal/model"
	repo "strategy-shop/internal/profile/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (model.Profile, error) {
	var p model.Profile
	err := row.Scan(
		&p.ID, &p.Email, &p.BusinessName, &p.BusinessType, &p.Revenue, &p.TeamSize,
		&p.BiggestChallenge, &p.CreatedAt, &p.ConversationCount, &p.HasProvidedEmail,
		&p.HasCompletedProfile,
	)
	return p, err
}

// GetProfile retrieves a Profile by id.
// Returns zero-value Profile (ID == "") when not found.
func (r *implRepository) GetProfile(ctx context.Context, id string) (model.Profile, error) {
	query, args, err := r.buildGetQuery(id)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetProfile"), err)
		return model.Profile{}, repo.ErrFailedToGet
	}

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.Profile{}, repo.ErrFailedToGet
	}
	return p, nil
}

// CreateProfile inserts a new Profile row, or returns the existing one.
func (r *implRepository) CreateProfile(ctx context.Context, opt repo.CreateProfileOptions) (model.Profile, error) {
	query, args, err := r.buildCreateQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateProfile"), err)
		return model.Profile{}, repo.ErrFailedToInsert
	}

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProfile"), err)
		return model.Profile{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// UpdateProfile overwrites the editable fields and returns the stored row.
func (r *implRepository) UpdateProfile(ctx context.Context, opt repo.UpdateProfileOptions) (model.Profile, error) {
	query, args, err := r.buildUpdateQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("UpdateProfile"), err)
		return model.Profile{}, repo.ErrFailedToUpdate
	}

	p, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProfile"), err)
		return model.Profile{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

// IncrementConversationCount bumps the counter atomically and returns the new value.
func (r *implRepository) IncrementConversationCount(ctx context.Context, id string) (int, error) {
	query, args, err := r.buildIncrementQuery(id)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("IncrementConversationCount"), err)
		return 0, repo.ErrFailedToUpdate
	}

	var count int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementConversationCount"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return count, nil
}

// DeleteProfile removes a Profile. Deleting an unknown id is not an error.
func (r *implRepository) DeleteProfile(ctx context.Context, id string) error {
	query, args, err := r.buildDeleteQuery(id)
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("DeleteProfile"), err)
		return repo.ErrFailedToDelete
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProfile"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
