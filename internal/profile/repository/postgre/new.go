package postgre

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"strategy-shop/internal/profile/repository"
	"strategy-shop/pkg/log"
)

const profilesTable = "profiles"

var profileColumns = []string{
	"id", "email", "business_name", "business_type", "revenue", "team_size",
	"biggest_challenge", "created_at", "conversation_count", "has_provided_email",
	"has_completed_profile",
}

type implRepository struct {
	db   *sql.DB
	psql sq.StatementBuilderType
	l    log.Logger
}

// New creates a new PostgreSQL-backed Repository for profiles.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("profile/repository/postgre: db is required")
	}
	return &implRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		l:    l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("profile/repository/postgre.%s", method)
}
