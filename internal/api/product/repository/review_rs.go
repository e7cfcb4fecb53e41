package productRepository

import (
	"GlamoraBackend/internal/entity"
	contextPkg "GlamoraBackend/pkg/context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const maxReviewLimit = 100

type ReviewDB struct {
	ID        sql.NullString  `db:"id"`
	ProductID sql.NullString  `db:"product_id"`
	UserName  sql.NullString  `db:"user_name"`
	Rating    sql.NullFloat64 `db:"rating"`
	Text      sql.NullString  `db:"text"`
	CreatedAt time.Time       `db:"created_at"`
}

func (r *reviewsRepository) ListReviews(ctx context.Context, productID string, limit int) ([]entity.Review, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if limit <= 0 || limit > maxReviewLimit {
		limit = maxReviewLimit
	}

	query, args, err := sqlx.Named(queryListReviews, map[string]interface{}{
		"product_id": productID,
		"limit":      limit,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListReviews named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	var rows []ReviewDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"product_id": productID,
			"error":      err.Error(),
		}).Error("ListReviews execution err")
		return nil, err
	}

	reviews := make([]entity.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, entity.Review{
			ID:        row.ID.String,
			ProductID: row.ProductID.String,
			UserName:  row.UserName.String,
			Rating:    row.Rating.Float64,
			Text:      row.Text.String,
			CreatedAt: row.CreatedAt,
		})
	}

	return reviews, nil
}
