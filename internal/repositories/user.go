package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/users-service/internal/logger"
	"github.com/sbilibin2017/users-service/internal/middlewares"
	"github.com/sbilibin2017/users-service/internal/models"
)

// uniqueViolation is the postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// querier returns the request transaction when one is present, otherwise db.
func querier(ctx context.Context, db *sqlx.DB) sqlx.QueryerContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// logQuery logs the query in a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, username, email, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, email)
}

// GetByID returns the user with the given id, or nil if there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, username, email, created_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`
	return r.getOne(ctx, query, id)
}

// List returns every user in insertion order.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT id, username, email, created_at
		FROM users
		ORDER BY id
	`
	return r.selectAll(ctx, query)
}

// ListByCreatedAtDesc returns every user, newest first.
func (r *UserReadRepository) ListByCreatedAtDesc(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT id, username, email, created_at
		FROM users
		ORDER BY created_at DESC, id DESC
	`
	return r.selectAll(ctx, query)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, querier(ctx, r.db), &user, query, args...)
	logQuery(query, args, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserReadRepository) selectAll(ctx context.Context, query string) ([]models.User, error) {
	users := []models.User{}
	err := sqlx.SelectContext(ctx, querier(ctx, r.db), &users, query)
	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns the stored row.
// A duplicate email is reported as models.ErrUniqueViolation.
// Without a request transaction in ctx, Save runs in its own transaction and
// rolls it back when the insert fails.
func (r *UserWriteRepository) Save(ctx context.Context, username, email string) (*models.User, error) {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return r.insert(ctx, tx, username, email)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	user, err := r.insert(ctx, tx, username, email)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback insert", "email", email, "error", rbErr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return user, nil
}

func (r *UserWriteRepository) insert(ctx context.Context, q sqlx.QueryerContext, username, email string) (*models.User, error) {
	const query = `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		RETURNING id, username, email, created_at
	`
	args := []any{username, email}

	var user models.User
	err := sqlx.GetContext(ctx, q, &user, query, args...)
	logQuery(query, args, user.ID, err)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", models.ErrUniqueViolation, pgErr.ConstraintName)
		}
		return nil, err
	}
	return &user, nil
}
