package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartcampus/room-booking-backend/internal/pkg/apperror"
)

// Repository is the booking ledger storage contract.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, b *Booking) error

	// HasOverlap checks whether any active (pending/approved) booking for the
	// room overlaps [start, end). excludeBookingID lets the approval re-check
	// ignore the booking's own interval.
	HasOverlap(ctx context.Context, roomID string, start, end time.Time, excludeBookingID string) (bool, error)

	// ListIntersecting returns active bookings whose interval intersects
	// [from, to), ordered by start_time ascending.
	ListIntersecting(ctx context.Context, roomID string, from, to time.Time) ([]*Booking, error)

	// Aggregation queries for the reporting engine.
	CountByStatus(ctx context.Context, userID string) (map[Status]int, error)
	CountStartingBetween(ctx context.Context, from time.Time, to *time.Time) (int, error)
	TopRooms(ctx context.Context, limit int) ([]RoomCount, error)
	PeakHours(ctx context.Context, limit int) ([]HourCount, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = `
	b.id, b.user_id, u.full_name, u.email,
	b.room_id, r.name, r.location, r.type,
	b.start_time, b.end_time, b.purpose, b.status,
	COALESCE(b.admin_comment, ''), b.created_at, b.updated_at`

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("user_id", "room_id", "start_time", "end_time", "purpose", "status").
		Values(b.UserID, b.RoomID, b.StartTime, b.EndTime, b.Purpose, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		// Two concurrent creates can both pass the overlap check; the
		// bookings_no_overlap exclusion constraint catches the loser here.
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ExclusionViolation {
			return ErrTimeConflict
		}
		return apperror.Unavailable(fmt.Errorf("create booking failed: %w", err))
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `
		SELECT` + bookingColumns + `
		FROM public.bookings b
		JOIN public.users u ON b.user_id = u.id
		JOIN public.rooms r ON b.room_id = r.id
		WHERE b.id = $1
	`
	b, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.user_id", "u.full_name", "u.email",
		"b.room_id", "r.name", "r.location", "r.type",
		"b.start_time", "b.end_time", "b.purpose", "b.status",
		"COALESCE(b.admin_comment, '')", "b.created_at", "b.updated_at",
		"count(*) OVER() AS total_count",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.rooms r ON b.room_id = r.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"b.room_id": filter.RoomID})
	}
	if filter.RoomType != "" {
		query = query.Where(squirrel.Eq{"r.type": filter.RoomType})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.ActiveOnly {
		query = query.Where(squirrel.Eq{"b.status": []Status{StatusPending, StatusApproved}})
	}

	// Search date range: inclusive on both bounds.
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"b.start_time": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"b.start_time": *filter.DateTo})
	}

	// Calendar window: half-open on start_time.
	if filter.StartFrom != nil {
		query = query.Where(squirrel.GtOrEq{"b.start_time": *filter.StartFrom})
	}
	if filter.StartTo != nil {
		query = query.Where(squirrel.Lt{"b.start_time": *filter.StartTo})
	}

	if filter.SortAsc {
		query = query.OrderBy("b.start_time ASC")
	} else {
		query = query.OrderBy("b.start_time DESC")
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(uint64(filter.Limit)).Offset(uint64((page - 1) * filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, apperror.Unavailable(fmt.Errorf("list bookings failed: %w", err))
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.UserName, &b.UserEmail,
			&b.RoomID, &b.RoomName, &b.RoomLocation, &b.RoomType,
			&b.StartTime, &b.EndTime, &b.Purpose, &b.Status,
			&b.AdminComment, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, apperror.Unavailable(fmt.Errorf("scan booking failed: %w", err))
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperror.Unavailable(fmt.Errorf("list bookings failed: %w", err))
	}

	return bookings, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", b.Status).
		Set("admin_comment", b.AdminComment).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ExclusionViolation {
			return ErrTimeConflict
		}
		return apperror.Unavailable(fmt.Errorf("update booking failed: %w", err))
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, roomID string, start, end time.Time, excludeBookingID string) (bool, error) {
	// Overlap predicate on half-open intervals:
	// existing.start < end AND existing.end > start.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": []Status{StatusPending, StatusApproved}}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if excludeBookingID != "" {
		subQuery = subQuery.Where(squirrel.NotEq{"id": excludeBookingID})
	}

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
		return false, apperror.Unavailable(fmt.Errorf("check overlap failed: %w", err))
	}
	return exists, nil
}

func (r *pgxRepository) ListIntersecting(ctx context.Context, roomID string, from, to time.Time) ([]*Booking, error) {
	query := `
		SELECT` + bookingColumns + `
		FROM public.bookings b
		JOIN public.users u ON b.user_id = u.id
		JOIN public.rooms r ON b.room_id = r.id
		WHERE b.room_id = $1
		  AND b.status IN ('pending', 'approved')
		  AND b.start_time < $3
		  AND b.end_time > $2
		ORDER BY b.start_time ASC
	`
	rows, err := r.pool.Query(ctx, query, roomID, from, to)
	if err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("list intersecting bookings failed: %w", err))
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("list intersecting bookings failed: %w", err))
	}
	return bookings, nil
}

func (r *pgxRepository) CountByStatus(ctx context.Context, userID string) (map[Status]int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("status", "count(*)").
		From("public.bookings").
		GroupBy("status")

	if userID != "" {
		query = query.Where(squirrel.Eq{"user_id": userID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by status query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("count by status failed: %w", err))
	}
	defer rows.Close()

	counts := make(map[Status]int)
	for rows.Next() {
		var st Status
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, apperror.Unavailable(fmt.Errorf("scan status count failed: %w", err))
		}
		counts[st] = n
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("count by status failed: %w", err))
	}
	return counts, nil
}

func (r *pgxRepository) CountStartingBetween(ctx context.Context, from time.Time, to *time.Time) (int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("count(*)").
		From("public.bookings").
		Where(squirrel.GtOrEq{"start_time": from})

	if to != nil {
		query = query.Where(squirrel.Lt{"start_time": *to})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count window query failed: %w", err)
	}

	var n int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, apperror.Unavailable(fmt.Errorf("count window failed: %w", err))
	}
	return n, nil
}

func (r *pgxRepository) TopRooms(ctx context.Context, limit int) ([]RoomCount, error) {
	const query = `
		SELECT b.room_id, r.name, r.location, count(*) AS total
		FROM public.bookings b
		JOIN public.rooms r ON b.room_id = r.id
		GROUP BY b.room_id, r.name, r.location
		ORDER BY total DESC, r.name ASC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("top rooms failed: %w", err))
	}
	defer rows.Close()

	var out []RoomCount
	for rows.Next() {
		var rc RoomCount
		if err := rows.Scan(&rc.RoomID, &rc.RoomName, &rc.Location, &rc.TotalBookings); err != nil {
			return nil, apperror.Unavailable(fmt.Errorf("scan top room failed: %w", err))
		}
		out = append(out, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("top rooms failed: %w", err))
	}
	return out, nil
}

func (r *pgxRepository) PeakHours(ctx context.Context, limit int) ([]HourCount, error) {
	const query = `
		SELECT EXTRACT(HOUR FROM b.start_time)::int AS hour, count(*) AS total
		FROM public.bookings b
		GROUP BY hour
		ORDER BY total DESC, hour ASC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("peak hours failed: %w", err))
	}
	defer rows.Close()

	var out []HourCount
	for rows.Next() {
		var hc HourCount
		if err := rows.Scan(&hc.Hour, &hc.Bookings); err != nil {
			return nil, apperror.Unavailable(fmt.Errorf("scan peak hour failed: %w", err))
		}
		out = append(out, hc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("peak hours failed: %w", err))
	}
	return out, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.UserID, &b.UserName, &b.UserEmail,
		&b.RoomID, &b.RoomName, &b.RoomLocation, &b.RoomType,
		&b.StartTime, &b.EndTime, &b.Purpose, &b.Status,
		&b.AdminComment, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, apperror.Unavailable(fmt.Errorf("scan booking failed: %w", err))
	}
	return &b, nil
}
