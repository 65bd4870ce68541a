package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий каталога услуг салона
// Локализованные name/description хранятся в JSONB колонках
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var serviceColumns = []string{
	"id",
	"slug",
	"category_slug",
	"name",
	"description",
	"duration_minutes",
	"price",
	"image_url",
}

// ListServices возвращает услуги, опционально отфильтрованные по категории
func (r *Repository) ListServices(ctx context.Context, categorySlug *string) ([]*domain.Service, error) {
	builder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("category_slug", "id")

	if categorySlug != nil {
		builder = builder.Where(squirrel.Eq{"category_slug": *categorySlug})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - iterate rows: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	return r.getService(ctx, squirrel.Eq{"id": id})
}

// GetServiceBySlug получает услугу по slug (deep-link параметр)
func (r *Repository) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	return r.getService(ctx, squirrel.Eq{"slug": slug})
}

func (r *Repository) getService(ctx context.Context, where squirrel.Eq) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getService - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	service, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}

	return service, nil
}

// ListCategories возвращает все группы услуг
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.ServiceCategory, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"slug",
		"name",
		"description",
	).
		From("service_groups").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.ServiceCategory, 0)
	for rows.Next() {
		var category domain.ServiceCategory
		var nameRaw, descriptionRaw []byte

		if err := rows.Scan(&category.ID, &category.Slug, &nameRaw, &descriptionRaw); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan category: %v", ErrScanRow, err)
		}

		if category.Name, err = unmarshalLocalized(nameRaw); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - decode name: %v", ErrScanRow, err)
		}
		if category.Description, err = unmarshalLocalized(descriptionRaw); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - decode description: %v", ErrScanRow, err)
		}

		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - iterate rows: %v", ErrScanRow, err)
	}

	return categories, nil
}

// GetCategoryBySlug получает группу услуг по slug
func (r *Repository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.ServiceCategory, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"slug",
		"name",
		"description",
	).
		From("service_groups").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var category domain.ServiceCategory
	var nameRaw, descriptionRaw []byte

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&category.ID,
		&category.Slug,
		&nameRaw,
		&descriptionRaw,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategoryBySlug - scan category: %v", ErrScanRow, err)
	}

	if category.Name, err = unmarshalLocalized(nameRaw); err != nil {
		return nil, fmt.Errorf("%w: GetCategoryBySlug - decode name: %v", ErrScanRow, err)
	}
	if category.Description, err = unmarshalLocalized(descriptionRaw); err != nil {
		return nil, fmt.Errorf("%w: GetCategoryBySlug - decode description: %v", ErrScanRow, err)
	}

	return &category, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var service domain.Service
	var nameRaw, descriptionRaw []byte
	var imageURL sql.NullString

	err := row.Scan(
		&service.ID,
		&service.Slug,
		&service.CategorySlug,
		&nameRaw,
		&descriptionRaw,
		&service.DurationMinutes,
		&service.Price,
		&imageURL,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanService: %v", ErrScanRow, err)
	}

	if service.Name, err = unmarshalLocalized(nameRaw); err != nil {
		return nil, fmt.Errorf("%w: scanService - decode name: %v", ErrScanRow, err)
	}
	if service.Description, err = unmarshalLocalized(descriptionRaw); err != nil {
		return nil, fmt.Errorf("%w: scanService - decode description: %v", ErrScanRow, err)
	}

	if imageURL.Valid {
		service.ImageURL = &imageURL.String
	}

	return &service, nil
}

func unmarshalLocalized(raw []byte) (domain.LocalizedText, error) {
	if len(raw) == 0 {
		return domain.LocalizedText{}, nil
	}
	var text domain.LocalizedText
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil, err
	}
	return text, nil
}
