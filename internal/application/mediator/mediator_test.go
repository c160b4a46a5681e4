package mediator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10igma/spacetrader-web/internal/application/mediator"
)

type pingQuery struct{ n int }

type pingHandler struct{}

func (pingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return request.(*pingQuery).n + 1, nil
}

func TestMediator_SendDispatchesByType(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, pingHandler{}))

	resp, err := m.Send(context.Background(), &pingQuery{n: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, resp)
}

func TestMediator_RejectsDuplicateAndUnknown(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, pingHandler{}))

	assert.Error(t, mediator.RegisterHandler[*pingQuery](m, pingHandler{}))
	_, err := m.Send(context.Background(), struct{}{})
	assert.Error(t, err)
	_, err = m.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](m, pingHandler{}))
	var order []string
	trace := func(name string) mediator.Middleware {
		return func(ctx context.Context, r mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			order = append(order, name+">")
			resp, err := next(ctx, r)
			order = append(order, "<"+name)
			return resp, err
		}
	}
	m.RegisterMiddleware(trace("outer"))
	m.RegisterMiddleware(trace("inner"))

	// Act
	_, err := m.Send(context.Background(), &pingQuery{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"outer>", "inner>", "<inner", "<outer"}, order)
}
