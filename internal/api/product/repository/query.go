package productRepository

const (
	productColumns = `
			id,
			name,
			description,
			category,
			price,
			rating,
			discount,
			image_urls,
			created_at,
			updated_at
	`

	queryGetProductByID = `
		SELECT` + productColumns + `
		FROM products
		WHERE id = :id
	`

	queryFindProductsByPattern = `
		SELECT` + productColumns + `
		FROM products
		WHERE name ~* :pattern
			OR description ~* :pattern
			OR category ~* :pattern
		ORDER BY
			CASE WHEN name ~* :pattern THEN 0 ELSE 1 END,
			rating DESC,
			name ASC
		LIMIT :limit
	`

	queryListProducts = `
		SELECT` + productColumns + `
		FROM products
		WHERE (:category = '' OR LOWER(category) = LOWER(:category))
			AND (:description_pattern = '' OR description ~* :description_pattern)
		ORDER BY %s
		LIMIT :limit OFFSET :offset
	`

	querySearchProductsText = `
		SELECT` + productColumns + `,
			ts_rank(
				to_tsvector('english', name || ' ' || description || ' ' || category),
				plainto_tsquery('english', :query)
			) AS score
		FROM products
		WHERE to_tsvector('english', name || ' ' || description || ' ' || category)
			@@ plainto_tsquery('english', :query)
		ORDER BY score DESC, rating DESC
		LIMIT :limit
	`

	queryCountProducts = `
		SELECT COUNT(*)
		FROM products
		WHERE (:category = '' OR LOWER(category) = LOWER(:category))
	`
)

var productOrderBy = map[string]string{
	"rating":     "rating DESC, name ASC",
	"price_asc":  "price ASC, name ASC",
	"price_desc": "price DESC, name ASC",
	"value":      "rating DESC, price ASC, name ASC",
	"newest":     "created_at DESC, name ASC",
	"name":       "name ASC",
}

const queryListReviews = `
		SELECT
			id,
			product_id,
			user_name,
			rating,
			text,
			created_at
		FROM reviews
		WHERE product_id = :product_id
		ORDER BY created_at DESC
		LIMIT :limit
	`
