package mocks

import (
	"context"

	"library-manager/core/engine"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of engine.Client
type Client struct {
	mock.Mock
}

func (m *Client) List(ctx context.Context) ([]engine.Book, error) {
	args := m.Called(ctx)
	if books, ok := args.Get(0).([]engine.Book); ok {
		return books, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Add(ctx context.Context, b engine.Book) ([]engine.Book, error) {
	args := m.Called(ctx, b)
	if books, ok := args.Get(0).([]engine.Book); ok {
		return books, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Delete(ctx context.Context, id int) ([]engine.Book, error) {
	args := m.Called(ctx, id)
	if books, ok := args.Get(0).([]engine.Book); ok {
		return books, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Issue(ctx context.Context, id int) ([]engine.Book, error) {
	args := m.Called(ctx, id)
	if books, ok := args.Get(0).([]engine.Book); ok {
		return books, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Return(ctx context.Context, id int) ([]engine.Book, error) {
	args := m.Called(ctx, id)
	if books, ok := args.Get(0).([]engine.Book); ok {
		return books, args.Error(1)
	}
	return nil, args.Error(1)
}
