package room

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartcampus/room-booking-backend/internal/pkg/apperror"
)

// Repository defines methods for accessing room data from storage.
type Repository interface {
	Create(ctx context.Context, rm *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	ListActive(ctx context.Context) ([]*Room, error)
	Update(ctx context.Context, rm *Room) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.rooms").
		Columns("name", "type", "capacity", "features", "location", "is_active").
		Values(rm.Name, rm.Type, rm.Capacity, featureStrings(rm.Features), rm.Location, rm.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&rm.ID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrNameTaken
		}
		return apperror.Unavailable(fmt.Errorf("create room failed: %w", err))
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	const query = `
		SELECT id, name, type, capacity, features, location, is_active, created_at, updated_at
		FROM public.rooms
		WHERE id = $1
	`
	return scanRoom(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) ListActive(ctx context.Context) ([]*Room, error) {
	const query = `
		SELECT id, name, type, capacity, features, location, is_active, created_at, updated_at
		FROM public.rooms
		WHERE is_active = true
		ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("list rooms failed: %w", err))
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Unavailable(fmt.Errorf("list rooms failed: %w", err))
	}
	return rooms, nil
}

func (r *pgxRepository) Update(ctx context.Context, rm *Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.rooms").
		Set("name", rm.Name).
		Set("type", rm.Type).
		Set("capacity", rm.Capacity).
		Set("features", featureStrings(rm.Features)).
		Set("location", rm.Location).
		Set("is_active", rm.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rm.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrNameTaken
		}
		return apperror.Unavailable(fmt.Errorf("update room failed: %w", err))
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRoom(row pgx.Row) (*Room, error) {
	var rm Room
	var features []string
	if err := row.Scan(
		&rm.ID,
		&rm.Name,
		&rm.Type,
		&rm.Capacity,
		&features,
		&rm.Location,
		&rm.IsActive,
		&rm.CreatedAt,
		&rm.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, apperror.Unavailable(fmt.Errorf("scan room failed: %w", err))
	}
	for _, f := range features {
		rm.Features = append(rm.Features, Feature(f))
	}
	return &rm, nil
}

func featureStrings(features []Feature) []string {
	out := make([]string, len(features))
	for i, f := range features {
		out[i] = string(f)
	}
	return out
}
