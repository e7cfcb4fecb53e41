package productRepository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewRowColumns = []string{"id", "product_id", "user_name", "rating", "text", "created_at"}

func TestListReviews(t *testing.T) {
	client, mock := newTestClient(t)
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM reviews\s+WHERE product_id = \$1\s+ORDER BY created_at DESC\s+LIMIT \$2`).
		WithArgs("p-1", 20).
		WillReturnRows(sqlmock.NewRows(reviewRowColumns).
			AddRow("r-2", "p-1", "Wanjiru", 5.0, "Lovely glow", now).
			AddRow("r-1", "p-1", nil, 4.0, "Good", now.Add(-time.Hour)))

	got, err := client.Reviews.ListReviews(context.Background(), "p-1", 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Wanjiru", got[0].UserName)
	assert.Equal(t, "", got[1].UserName)
	assert.Equal(t, 4.0, got[1].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReviewsClampsLimit(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`FROM reviews`).
		WithArgs("p-9", maxReviewLimit).
		WillReturnRows(sqlmock.NewRows(reviewRowColumns))

	got, err := client.Reviews.ListReviews(context.Background(), "p-9", 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReviewsError(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`FROM reviews`).WillReturnError(errors.New("connection reset"))

	_, err := client.Reviews.ListReviews(context.Background(), "p-1", 10)
	assert.Error(t, err)
}
