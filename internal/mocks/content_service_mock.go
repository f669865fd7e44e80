// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/localization"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Get(ctx context.Context, discriminator string, id int64) (model.Content, error) {
	args := m.Called(ctx, discriminator, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Content), args.Error(1)
}

func (m *MockContentService) GetAll(ctx context.Context) (model.Sections, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Sections), args.Error(1)
}

func (m *MockContentService) Put(ctx context.Context, req dto.PutContentRequest) (model.Content, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Content), args.Error(1)
}

func (m *MockContentService) PutText(ctx context.Context, req dto.PutTextRequest) (*model.Translation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Translation), args.Error(1)
}

func (m *MockContentService) Delete(ctx context.Context, discriminator string, id int64) (string, error) {
	args := m.Called(ctx, discriminator, id)
	return args.String(0), args.Error(1)
}

func (m *MockContentService) Page(ctx context.Context, lang localization.Language) (*localization.Page, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*localization.Page), args.Error(1)
}
