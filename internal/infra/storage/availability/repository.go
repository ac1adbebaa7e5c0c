package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/lubooking/booking-service/internal/domain"
	"github.com/lubooking/booking-service/pkg/dbmetrics"
	"github.com/lubooking/booking-service/pkg/psqlbuilder"
)

const (
	pqExclusionViolation = "23P01"
	pqUniqueViolation    = "23505"
)

var windowColumns = []string{
	"id",
	"barber_id",
	"date",
	"start_time",
	"end_time",
	"created_at",
}

// Repository репозиторий для работы с окнами доступности
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает окно доступности по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	window, err := scanWindow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan window: %v", ErrScanRow, err)
	}

	return window, nil
}

// GetByBarberAndDate возвращает все окна доступности барбера на дату,
// отсортированные по времени начала
func (r *Repository) GetByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability").
		Where(squirrel.Eq{"barber_id": barberID, "date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// ListByBarberFromDate возвращает ближайшие окна барбера начиная с даты
// (лента "upcoming" в dashboard)
func (r *Repository) ListByBarberFromDate(ctx context.Context, barberID int64, from time.Time, limit uint64) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		OrderBy("date ASC, start_time ASC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarberFromDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarberFromDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// DatesWithWindows возвращает даты в диапазоне [from, to], на которые у
// барбера уже есть окна. Используется при генерации недельного расписания,
// чтобы не дублировать существующие дни.
func (r *Repository) DatesWithWindows(ctx context.Context, barberID int64, from, to time.Time) (map[string]bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT date").
		From("availability").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DatesWithWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DatesWithWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make(map[string]bool)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: DatesWithWindows - scan date: %v", ErrScanRow, err)
		}
		dates[date.Format(domain.DateFormat)] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DatesWithWindows - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// Create сохраняет новое окно доступности
func (r *Repository) Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability").
		Columns("barber_id", "date", "start_time", "end_time").
		Values(window.BarberID, window.Date.Format(domain.DateFormat), window.StartTime, window.EndTime).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&window.ID, &createdAt)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateWindow
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time

	return window, nil
}

// CreateBatch сохраняет несколько окон одним набором вставок.
// Вызывается внутри транзакции (weekly schedule generation).
func (r *Repository) CreateBatch(ctx context.Context, windows []*domain.AvailabilityWindow) error {
	if len(windows) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability").
		Columns("barber_id", "date", "start_time", "end_time")

	for _, w := range windows {
		insertBuilder = insertBuilder.Values(w.BarberID, w.Date.Format(domain.DateFormat), w.StartTime, w.EndTime)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isDuplicate(err) {
			return ErrDuplicateWindow
		}
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteByID удаляет окно доступности
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// DeleteByBarberAndDate удаляет все окна барбера на дату
// (PUT-семантика замены расписания дня)
func (r *Repository) DeleteByBarberAndDate(ctx context.Context, barberID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability").
		Where(squirrel.Eq{"barber_id": barberID, "date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByBarberAndDate - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByBarberAndDate - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWindow(row rowScanner) (*domain.AvailabilityWindow, error) {
	var window domain.AvailabilityWindow
	var createdAt sql.NullTime

	err := row.Scan(
		&window.ID,
		&window.BarberID,
		&window.Date,
		&window.StartTime,
		&window.EndTime,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	window.CreatedAt = createdAt.Time

	return &window, nil
}

func scanWindows(rows *sql.Rows) ([]*domain.AvailabilityWindow, error) {
	windows := make([]*domain.AvailabilityWindow, 0)

	for rows.Next() {
		window, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

func isDuplicate(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pqExclusionViolation || string(pqErr.Code) == pqUniqueViolation
}
