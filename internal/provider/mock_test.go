package provider

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetRate(ctx context.Context, req UpstreamRequest) (*UpstreamResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*UpstreamResponse)
	return resp, args.Error(1)
}
