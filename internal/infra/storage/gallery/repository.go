package gallery

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

var imageColumns = []string{
	"id",
	"barber_id",
	"image_url",
	"display_order",
	"created_at",
}

// Repository репозиторий для работы с галереей барбера
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория галереи
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает изображение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(imageColumns...).
		From("gallery_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	image, err := scanImage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan image: %v", ErrScanRow, err)
	}

	return image, nil
}

// ListByBarber возвращает галерею барбера в порядке display_order
func (r *Repository) ListByBarber(ctx context.Context, barberID int64) ([]*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(imageColumns...).
		From("gallery_images").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("display_order ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		image, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBarber - scan row: %v", ErrScanRow, err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBarber - rows error: %v", ErrScanRow, err)
	}

	return images, nil
}

// Create сохраняет изображение в конец галереи.
// display_order вычисляется в запросе как max+1 по барберу.
func (r *Repository) Create(ctx context.Context, image *domain.GalleryImage) (*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("gallery_images").
		Columns("barber_id", "image_url", "display_order").
		Values(
			image.BarberID,
			image.ImageURL,
			squirrel.Expr("(SELECT COALESCE(MAX(display_order), 0) + 1 FROM gallery_images WHERE barber_id = ?)", image.BarberID),
		).
		Suffix("RETURNING id, display_order, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&image.ID, &image.DisplayOrder, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	image.CreatedAt = createdAt.Time

	return image, nil
}

// Delete удаляет изображение из галереи
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("gallery_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrImageNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanImage(row rowScanner) (*domain.GalleryImage, error) {
	var image domain.GalleryImage
	var createdAt sql.NullTime

	err := row.Scan(
		&image.ID,
		&image.BarberID,
		&image.ImageURL,
		&image.DisplayOrder,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	image.CreatedAt = createdAt.Time

	return &image, nil
}
