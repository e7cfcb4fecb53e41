package response

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	notFound := NewError(404, "order not found")

	assert.ErrorIs(t, fmt.Errorf("lookup: %w", notFound), notFound)
	assert.ErrorIs(t, NewError(404, "order not found"), notFound)
	assert.NotErrorIs(t, NewError(400, "order not found"), notFound)
	assert.NotErrorIs(t, errors.New("order not found"), notFound)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, 404, StatusOf(fmt.Errorf("wrapped: %w", NewError(404, "x")), 500))
	assert.Equal(t, 500, StatusOf(errors.New("plain"), 500))
}
