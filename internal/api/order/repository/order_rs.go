package orderRepository

import (
	"GlamoraBackend/internal/api/order"
	"GlamoraBackend/internal/entity"
	contextPkg "GlamoraBackend/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type OrderDB struct {
	ID                   sql.NullString  `db:"id"`
	OrderID              sql.NullString  `db:"order_id"`
	UserID               sql.NullString  `db:"user_id"`
	Status               sql.NullString  `db:"status"`
	TotalPrice           sql.NullFloat64 `db:"total_price"`
	DiscountApplied      sql.NullFloat64 `db:"discount_applied"`
	FinalPrice           sql.NullFloat64 `db:"final_price"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
	PaymentMethod        sql.NullString  `db:"payment_method"`
	PaymentStatus        sql.NullString  `db:"payment_status"`
	PaymentTransactionID sql.NullString  `db:"payment_transaction_id"`
	ShippingFullName     sql.NullString  `db:"shipping_full_name"`
	ShippingAddress      sql.NullString  `db:"shipping_address"`
	ShippingCity         sql.NullString  `db:"shipping_city"`
	ShippingCountry      sql.NullString  `db:"shipping_country"`
	ShippingPostalCode   sql.NullString  `db:"shipping_postal_code"`
	ShippingDeliveryDate sql.NullTime    `db:"shipping_delivery_date"`
}

type OrderItemDB struct {
	ProductID sql.NullString  `db:"product_id"`
	Name      sql.NullString  `db:"name"`
	Quantity  sql.NullInt64   `db:"quantity"`
	Price     sql.NullFloat64 `db:"price"`
}

func (r *ordersRepository) GetOrderByOrderID(ctx context.Context, orderID string) (entity.Order, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"order_id": orderID,
	}

	query, args, err := sqlx.Named(queryGetOrderByOrderID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderByOrderID named query preparation err")
		return entity.Order{}, err
	}
	query = r.q.Rebind(query)

	var row OrderDB
	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"order_id":   orderID,
			}).Warn("GetOrderByOrderID no rows found")
			return entity.Order{}, order.ErrOrderNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderByOrderID execution err")
		return entity.Order{}, err
	}

	itemsQuery, itemsArgs, err := sqlx.Named(queryGetOrderItems, map[string]interface{}{
		"order_id": row.ID.String,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderItems named query preparation err")
		return entity.Order{}, err
	}
	itemsQuery = r.q.Rebind(itemsQuery)

	var items []OrderItemDB
	if err := r.q.SelectContext(ctx, &items, itemsQuery, itemsArgs...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderItems execution err")
		return entity.Order{}, err
	}

	return r.makeOrder(row, items), nil
}

// hasShipping reports whether any shipping column was set.
func (row OrderDB) hasShipping() bool {
	return row.ShippingFullName.Valid || row.ShippingAddress.Valid || row.ShippingCity.Valid ||
		row.ShippingCountry.Valid || row.ShippingPostalCode.Valid || row.ShippingDeliveryDate.Valid
}

func (r *ordersRepository) makeOrder(row OrderDB, items []OrderItemDB) entity.Order {
	o := entity.Order{
		ID:              row.ID.String,
		OrderID:         row.OrderID.String,
		UserID:          row.UserID.String,
		Status:          entity.OrderStatus(row.Status.String),
		Items:           make([]entity.OrderItem, 0, len(items)),
		TotalPrice:      row.TotalPrice.Float64,
		DiscountApplied: row.DiscountApplied.Float64,
		FinalPrice:      row.FinalPrice.Float64,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	for _, item := range items {
		o.Items = append(o.Items, entity.OrderItem{
			ProductID: item.ProductID.String,
			Name:      item.Name.String,
			Quantity:  int(item.Quantity.Int64),
			Price:     item.Price.Float64,
		})
	}

	if row.PaymentMethod.Valid || row.PaymentStatus.Valid {
		o.Payment = &entity.Payment{
			Method:        row.PaymentMethod.String,
			Status:        row.PaymentStatus.String,
			TransactionID: row.PaymentTransactionID.String,
		}
	}

	if row.hasShipping() {
		o.Shipping = &entity.Shipping{
			FullName:   row.ShippingFullName.String,
			Address:    row.ShippingAddress.String,
			City:       row.ShippingCity.String,
			Country:    row.ShippingCountry.String,
			PostalCode: row.ShippingPostalCode.String,
		}
		if row.ShippingDeliveryDate.Valid {
			o.Shipping.DeliveryDate = row.ShippingDeliveryDate.Time
		}
	}

	return o
}
