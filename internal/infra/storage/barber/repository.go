package barber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lubooking/booking-service/internal/domain"
	"github.com/lubooking/booking-service/pkg/dbmetrics"
	"github.com/lubooking/booking-service/pkg/psqlbuilder"
)

var barberColumns = []string{
	"id",
	"user_id",
	"slug",
	"name",
	"bio",
	"location",
	"logo_url",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с профилями барберов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория барберов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает барбера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetBySlug получает барбера по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Barber, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, "GetBySlug")
}

// GetByUserID получает барбера по идентификатору auth-провайдера.
// Используется для привязки dashboard-запросов к своему профилю.
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Barber, error) {
	return r.getOne(ctx, squirrel.Eq{"user_id": userID}, "GetByUserID")
}

// ListActive возвращает активных барберов (режим marketplace)
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		barber, err := scanBarber(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// UpdateLogo устанавливает или сбрасывает логотип барбера.
// logoURL = nil означает удаление логотипа.
func (r *Repository) UpdateLogo(ctx context.Context, barberID int64, logoURL *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("barbers").
		Set("logo_url", logoURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": barberID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateLogo - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateLogo - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateLogo - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBarberNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	barber, err := scanBarber(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan barber: %v", ErrScanRow, op, err)
	}

	return barber, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBarber(row rowScanner) (*domain.Barber, error) {
	var barber domain.Barber
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&barber.ID,
		&barber.UserID,
		&barber.Slug,
		&barber.Name,
		&barber.Bio,
		&barber.Location,
		&barber.LogoURL,
		&barber.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	barber.CreatedAt = createdAt.Time
	barber.UpdatedAt = updatedAt.Time

	return &barber, nil
}
