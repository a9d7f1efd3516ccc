package postgre

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	repo "strategy-shop/internal/profile/repository"
)

func returning() string {
	return "RETURNING " + strings.Join(profileColumns, ", ")
}

func (r *implRepository) buildGetQuery(id string) (string, []any, error) {
	return r.psql.
		Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

// buildCreateQuery upserts so concurrent first requests for one caller
// both get the stored row back.
func (r *implRepository) buildCreateQuery(opt repo.CreateProfileOptions) (string, []any, error) {
	return r.psql.
		Insert(profilesTable).
		Columns("id", "created_at", "updated_at").
		Values(opt.ID, opt.CreatedAt, opt.CreatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id " + returning()).
		ToSql()
}

func (r *implRepository) buildUpdateQuery(opt repo.UpdateProfileOptions) (string, []any, error) {
	return r.psql.
		Update(profilesTable).
		Set("email", opt.Email).
		Set("business_name", opt.BusinessName).
		Set("business_type", opt.BusinessType).
		Set("revenue", opt.Revenue).
		Set("team_size", opt.TeamSize).
		Set("biggest_challenge", opt.BiggestChallenge).
		Set("has_provided_email", opt.HasProvidedEmail).
		Set("has_completed_profile", opt.HasCompletedProfile).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": opt.ID}).
		Suffix(returning()).
		ToSql()
}

func (r *implRepository) buildIncrementQuery(id string) (string, []any, error) {
	return r.psql.
		Update(profilesTable).
		Set("conversation_count", sq.Expr("conversation_count + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING conversation_count").
		ToSql()
}

func (r *implRepository) buildDeleteQuery(id string) (string, []any, error) {
	return r.psql.
		Delete(profilesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
