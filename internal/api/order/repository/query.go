package orderRepository

const (
	queryGetOrderByOrderID = `
		SELECT
			o.id,
			o.order_id,
			o.user_id,
			o.status,
			o.total_price,
			o.discount_applied,
			o.final_price,
			o.created_at,
			o.updated_at,
			p.method AS payment_method,
			p.status AS payment_status,
			p.transaction_id AS payment_transaction_id,
			s.full_name AS shipping_full_name,
			s.address AS shipping_address,
			s.city AS shipping_city,
			s.country AS shipping_country,
			s.postal_code AS shipping_postal_code,
			s.delivery_date AS shipping_delivery_date
		FROM orders o
		LEFT JOIN payments p ON p.order_id = o.id
		LEFT JOIN shipping_details s ON s.order_id = o.id
		WHERE o.order_id = :order_id
	`

	queryGetOrderItems = `
		SELECT
			oi.product_id,
			COALESCE(pr.name, '') AS name,
			oi.quantity,
			oi.price
		FROM order_items oi
		LEFT JOIN products pr ON pr.id = oi.product_id
		WHERE oi.order_id = :order_id
		ORDER BY oi.position ASC
	`
)

const (
	querySumOrdersByStatus = `
		SELECT
			status,
			COUNT(*) AS orders,
			COALESCE(SUM(final_price), 0) AS sales
		FROM orders
		GROUP BY status
	`

	queryTopProducts = `
		SELECT
			pr.id,
			pr.name,
			pr.image_urls,
			SUM(oi.price) AS total_sales
		FROM order_items oi
		JOIN products pr ON pr.id = oi.product_id
		GROUP BY pr.id, pr.name, pr.image_urls
		ORDER BY total_sales DESC, pr.name ASC
		LIMIT :limit
	`
)
