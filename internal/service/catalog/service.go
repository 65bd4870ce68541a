package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
)

// Service сервис каталога услуг салона
// Каталог неизменяем в течение сессии бронирования, услуга принадлежит
// ровно одной группе
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListServices возвращает услуги, опционально отфильтрованные по категории
func (s *Service) ListServices(ctx context.Context, categorySlug *string) ([]*domain.Service, error) {
	services, err := s.repo.ListServices(ctx, categorySlug)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services", len(services))
	return services, nil
}

// ListCategories возвращает все группы услуг
func (s *Service) ListCategories(ctx context.Context) ([]*domain.ServiceCategory, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCategories: fetched %d categories", len(categories))
	return categories, nil
}

// GetServiceByID получает услугу по ID
func (s *Service) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	service, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetServiceByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetServiceByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetServiceByID - repository error: %v", ErrInternal, err)
	}
	return service, nil
}

// GetServiceBySlug получает услугу по slug
func (s *Service) GetServiceBySlug(ctx context.Context, slug string) (*domain.Service, error) {
	service, err := s.repo.GetServiceBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetServiceBySlug: service %q not found", slug)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetServiceBySlug: repository error for %q: %v", slug, err)
		return nil, fmt.Errorf("%w: GetServiceBySlug - repository error: %v", ErrInternal, err)
	}
	return service, nil
}

// GetCategoryBySlug получает группу услуг по slug
func (s *Service) GetCategoryBySlug(ctx context.Context, slug string) (*domain.ServiceCategory, error) {
	category, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCategoryNotFound) {
			s.logger.Warn("GetCategoryBySlug: category %q not found", slug)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("GetCategoryBySlug: repository error for %q: %v", slug, err)
		return nil, fmt.Errorf("%w: GetCategoryBySlug - repository error: %v", ErrInternal, err)
	}
	return category, nil
}
