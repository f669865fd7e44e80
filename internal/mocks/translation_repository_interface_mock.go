// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/portfolio-service/internal/domain/model"
)

type MockTranslationRepositoryInterface struct {
	mock.Mock
}

func (m *MockTranslationRepositoryInterface) Upsert(ctx context.Context, translation *model.Translation) error {
	args := m.Called(ctx, translation)
	return args.Error(0)
}
