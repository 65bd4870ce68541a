package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	services   map[int64]*domain.Service
	bySlug     map[string]*domain.Service
	categories map[string]*domain.ServiceCategory
	err        error
}

func (f *fakeRepo) ListServices(_ context.Context, _ *string) ([]*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Service, 0, len(f.services))
	for _, s := range f.services {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (f *fakeRepo) GetServiceBySlug(_ context.Context, slug string) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.bySlug[slug]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (f *fakeRepo) ListCategories(_ context.Context) ([]*domain.ServiceCategory, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.ServiceCategory, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) GetCategoryBySlug(_ context.Context, slug string) (*domain.ServiceCategory, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.categories[slug]; ok {
		return c, nil
	}
	return nil, catalogRepo.ErrCategoryNotFound
}

func newTestService() *Service {
	repo := &fakeRepo{
		services: map[int64]*domain.Service{
			1: {ID: 1, Slug: "haircut", CategorySlug: "hair", Name: domain.LocalizedText{"en": "Haircut"}},
		},
		bySlug: map[string]*domain.Service{
			"haircut": {ID: 1, Slug: "haircut", CategorySlug: "hair", Name: domain.LocalizedText{"en": "Haircut"}},
		},
		categories: map[string]*domain.ServiceCategory{
			"hair": {ID: 1, Slug: "hair", Name: domain.LocalizedText{"en": "Hair"}},
		},
	}
	return NewService(repo, nopLogger{})
}

func TestService_GetServiceByID(t *testing.T) {
	svc := newTestService()

	service, err := svc.GetServiceByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "haircut", service.Slug)

	_, err = svc.GetServiceByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_GetServiceBySlug(t *testing.T) {
	svc := newTestService()

	service, err := svc.GetServiceBySlug(context.Background(), "haircut")
	require.NoError(t, err)
	assert.Equal(t, int64(1), service.ID)

	_, err = svc.GetServiceBySlug(context.Background(), "massage")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_GetCategoryBySlug(t *testing.T) {
	svc := newTestService()

	category, err := svc.GetCategoryBySlug(context.Background(), "hair")
	require.NoError(t, err)
	assert.Equal(t, "hair", category.Slug)

	_, err = svc.GetCategoryBySlug(context.Background(), "spa")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestService_RepositoryErrorMapsToInternal(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.GetServiceByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetCategoryBySlug(context.Background(), "hair")
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.ListServices(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}
