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

const bookingColumns = `id, student_id, tutor_id, subject, description, notes,
		scheduled_at, duration_minutes, status, meeting_link, calendar_event_id,
		cancel_reason, cancelled_by, completed_at, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Сериализуем check-then-insert по одному репетитору
	if err = lockTutor(ctx, tx, b.TutorID); err != nil {
		return err
	}

	conflict, err := hasOverlap(ctx, tx, b.TutorID, b.ScheduledAt, b.EndTime(), "")
	if err != nil {
		return err
	}
	if conflict {
		return domain.ErrBookingConflict
	}

	query := `INSERT INTO bookings
				(id, student_id, tutor_id, subject, description, notes,
				 scheduled_at, duration_minutes, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.StudentID, b.TutorID, b.Subject, b.Description, b.Notes,
		b.ScheduledAt, b.Duration, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return domain.ErrBookingConflict
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) Reschedule(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockTutor(ctx, tx, b.TutorID); err != nil {
		return err
	}

	conflict, err := hasOverlap(ctx, tx, b.TutorID, b.ScheduledAt, b.EndTime(), b.ID)
	if err != nil {
		return err
	}
	if conflict {
		return domain.ErrBookingConflict
	}

	query := `UPDATE bookings
			  SET subject=$2, description=$3, notes=$4,
				  scheduled_at=$5, duration_minutes=$6, updated_at=now()
			  WHERE id=$1 AND status=$7`

	res, err := tx.ExecContext(
		ctx, query,
		b.ID, b.Subject, b.Description, b.Notes,
		b.ScheduledAt, b.Duration, domain.BookingStatusPending,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return domain.ErrBookingConflict
		}
		return fmt.Errorf("update booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotPending
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	var args []any

	if filter.StudentID != "" {
		args = append(args, filter.StudentID)
		query += fmt.Sprintf(" AND student_id=$%d", len(args))
	}
	if filter.TutorID != "" {
		args = append(args, filter.TutorID)
		query += fmt.Sprintf(" AND tutor_id=$%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status=$%d", len(args))
	}
	query += ` ORDER BY scheduled_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListActiveOverlapping(ctx context.Context, tutorID string, from, to time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE tutor_id=$1 AND status = ANY($2)
				AND scheduled_at < $4
				AND scheduled_at + duration_minutes * interval '1 minute' > $3
			  ORDER BY scheduled_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tutorID, pq.Array(domain.ActiveStatuses), from, to)
	if err != nil {
		return nil, fmt.Errorf("list overlapping bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) Accept(ctx context.Context, id, meetingLink, notes string) error {
	query := `UPDATE bookings
			  SET status=$2,
				  meeting_link = COALESCE(NULLIF($3, ''), meeting_link),
				  notes = COALESCE(NULLIF($4, ''), notes),
				  updated_at=now()
			  WHERE id=$1 AND status=$5`

	return r.transition(ctx, id, query, id, domain.BookingStatusAccepted, meetingLink, notes, domain.BookingStatusPending)
}

func (r *BookingRepository) Confirm(ctx context.Context, id, eventID, meetLink string) error {
	query := `UPDATE bookings
			  SET status=$2, calendar_event_id=$3,
				  meeting_link = COALESCE(NULLIF($4, ''), meeting_link),
				  updated_at=now()
			  WHERE id=$1 AND status=$5`

	return r.transition(ctx, id, query, id, domain.BookingStatusConfirmed, eventID, meetLink, domain.BookingStatusAccepted)
}

func (r *BookingRepository) Decline(ctx context.Context, id, reason, actorID string) error {
	query := `UPDATE bookings
			  SET status=$2, cancel_reason=$3, cancelled_by=$4, updated_at=now()
			  WHERE id=$1 AND status=$5`

	return r.transition(ctx, id, query, id, domain.BookingStatusDeclined, reason, actorID, domain.BookingStatusPending)
}

func (r *BookingRepository) Cancel(ctx context.Context, id, reason, actorID string) error {
	query := `UPDATE bookings
			  SET status=$2, cancel_reason=$3, cancelled_by=$4, updated_at=now()
			  WHERE id=$1 AND status = ANY($5)`

	return r.transition(ctx, id, query, id, domain.BookingStatusCancelled, reason, actorID, pq.Array(domain.ActiveStatuses))
}

func (r *BookingRepository) Complete(ctx context.Context, id string, completedAt time.Time) error {
	query := `UPDATE bookings
			  SET status=$2, completed_at=$3, updated_at=now()
			  WHERE id=$1 AND status = ANY($4)`

	allowed := []domain.BookingStatus{domain.BookingStatusAccepted, domain.BookingStatusConfirmed}
	return r.transition(ctx, id, query, id, domain.BookingStatusCompleted, completedAt, pq.Array(allowed))
}

func (r *BookingRepository) CancelStalePending(ctx context.Context) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status=$2, cancel_reason=$3, updated_at=now()
			  WHERE status=$1 AND scheduled_at < now()
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled,
		"booking request expired before the tutor responded",
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale pending: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// transition runs one status update; zero affected rows means the booking
// is gone or a concurrent transition won.
func (r *BookingRepository) transition(ctx context.Context, id, query string, args ...any) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("transition booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrBookingNotFound
		}
		return domain.ErrInvalidTransition
	}

	return nil
}

func (r *BookingRepository) exists(ctx context.Context, id string) (bool, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id=$1)`, id)
	if err != nil {
		return false, fmt.Errorf("check booking: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan booking existence: %w", err)
	}
	return exists, nil
}

func lockTutor(ctx context.Context, tx *sql.Tx, tutorID string) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, tutorID); err != nil {
		return fmt.Errorf("lock tutor: %w", err)
	}
	return nil
}

func hasOverlap(ctx context.Context, tx *sql.Tx, tutorID string, from, to time.Time, excludeID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE tutor_id=$1 AND status = ANY($2)
				  AND id != $3
				  AND scheduled_at < $5
				  AND scheduled_at + duration_minutes * interval '1 minute' > $4)`

	exclude := excludeID
	if exclude == "" {
		exclude = "00000000-0000-0000-0000-000000000000"
	}

	var conflict bool
	err := tx.QueryRowContext(ctx, query, tutorID, pq.Array(domain.ActiveStatuses), exclude, from, to).Scan(&conflict)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}
	return conflict, nil
}

func isExclusionViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b           domain.Booking
		cancelledBy sql.NullString
		completedAt sql.NullTime
	)
	if err := row.Scan(
		&b.ID, &b.StudentID, &b.TutorID, &b.Subject, &b.Description, &b.Notes,
		&b.ScheduledAt, &b.Duration, &b.Status, &b.MeetingLink, &b.CalendarEventID,
		&b.CancelReason, &cancelledBy, &completedAt, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if cancelledBy.Valid {
		b.CancelledBy = cancelledBy.String
	}
	if completedAt.Valid {
		t := completedAt.Time
		b.CompletedAt = &t
	}

	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
