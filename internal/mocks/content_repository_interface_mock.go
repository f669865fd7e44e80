// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/portfolio-service/internal/domain/model"
)

type MockContentRepositoryInterface struct {
	mock.Mock
}

func (m *MockContentRepositoryInterface) FindByID(ctx context.Context, kind model.Kind, id int64) (model.Content, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Content), args.Error(1)
}

func (m *MockContentRepositoryInterface) FindAll(ctx context.Context, kind model.Kind) ([]model.Content, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Content), args.Error(1)
}

func (m *MockContentRepositoryInterface) FindAllByTag(ctx context.Context, kind model.Kind, tag string) ([]model.Content, error) {
	args := m.Called(ctx, kind, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Content), args.Error(1)
}

func (m *MockContentRepositoryInterface) Upsert(ctx context.Context, content model.Content) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockContentRepositoryInterface) Delete(ctx context.Context, kind model.Kind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockContentRepositoryInterface) Exists(ctx context.Context, kind model.Kind, id int64) (bool, error) {
	args := m.Called(ctx, kind, id)
	return args.Bool(0), args.Error(1)
}
