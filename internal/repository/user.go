package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/thisuriee/peer-pulse/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, email, role, skills, telegram_chat_id, created_at
			  FROM users
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, pq.Array(&u.Skills), &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) ListTutors(ctx context.Context, subject string) ([]*domain.User, error) {
	query := `SELECT id, name, email, role, skills, telegram_chat_id, created_at
			  FROM users
			  WHERE role = $1`
	args := []any{domain.RoleTutor}

	if subject != "" {
		query += ` AND $2 = ANY(skills)`
		args = append(args, subject)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		var u domain.User
		if err = rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, pq.Array(&u.Skills), &u.TelegramChatID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}
