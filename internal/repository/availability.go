package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/thisuriee/peer-pulse/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AvailabilityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAvailabilityRepo(db *dbpg.DB) *AvailabilityRepository {
	return &AvailabilityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AvailabilityRepository) GetByTutor(ctx context.Context, tutorID string) (*domain.Availability, error) {
	query := `SELECT id, tutor_id, timezone, weekly_schedule, date_overrides,
					 subjects, session_durations, is_active, created_at, updated_at
			  FROM availabilities
			  WHERE tutor_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tutorID)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	var (
		a            domain.Availability
		scheduleRaw  []byte
		overridesRaw []byte
		durationsInt []int64
	)
	if err = row.Scan(
		&a.ID, &a.TutorID, &a.Timezone, &scheduleRaw, &overridesRaw,
		pq.Array(&a.Subjects), pq.Array(&durationsInt), &a.IsActive,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAvailabilityNotFound
		}
		return nil, fmt.Errorf("scan availability: %w", err)
	}

	if err = json.Unmarshal(scheduleRaw, &a.WeeklySchedule); err != nil {
		return nil, fmt.Errorf("decode weekly schedule: %w", err)
	}
	if err = json.Unmarshal(overridesRaw, &a.DateOverrides); err != nil {
		return nil, fmt.Errorf("decode date overrides: %w", err)
	}
	a.SessionDurations = make([]int, 0, len(durationsInt))
	for _, d := range durationsInt {
		a.SessionDurations = append(a.SessionDurations, int(d))
	}

	return &a, nil
}

func (r *AvailabilityRepository) Create(ctx context.Context, a *domain.Availability) error {
	scheduleRaw, overridesRaw, err := encodeSchedule(a)
	if err != nil {
		return err
	}

	query := `INSERT INTO availabilities
				(id, tutor_id, timezone, weekly_schedule, date_overrides,
				 subjects, session_durations, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.TutorID, a.Timezone, scheduleRaw, overridesRaw,
		pq.Array(a.Subjects), pq.Array(a.SessionDurations), a.IsActive,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		// уникальный tutor_id: параллельное lazy-create уже успело
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil
		}
		return fmt.Errorf("insert availability: %w", err)
	}

	return nil
}

func (r *AvailabilityRepository) Update(ctx context.Context, a *domain.Availability) error {
	scheduleRaw, overridesRaw, err := encodeSchedule(a)
	if err != nil {
		return err
	}

	query := `UPDATE availabilities
			  SET timezone=$2, weekly_schedule=$3, date_overrides=$4,
				  subjects=$5, session_durations=$6, is_active=$7, updated_at=now()
			  WHERE tutor_id=$1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.TutorID, a.Timezone, scheduleRaw, overridesRaw,
		pq.Array(a.Subjects), pq.Array(a.SessionDurations), a.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update availability: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("availability rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAvailabilityNotFound
	}

	return nil
}

func encodeSchedule(a *domain.Availability) (scheduleRaw, overridesRaw []byte, err error) {
	schedule := a.WeeklySchedule
	if schedule == nil {
		schedule = domain.WeeklySchedule{}
	}
	scheduleRaw, err = json.Marshal(schedule)
	if err != nil {
		return nil, nil, fmt.Errorf("encode weekly schedule: %w", err)
	}

	overrides := a.DateOverrides
	if overrides == nil {
		overrides = []domain.DateOverride{}
	}
	overridesRaw, err = json.Marshal(overrides)
	if err != nil {
		return nil, nil, fmt.Errorf("encode date overrides: %w", err)
	}

	return scheduleRaw, overridesRaw, nil
}
