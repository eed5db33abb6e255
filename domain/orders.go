package domain

import "time"

// Read-only view over the marketplace orders table:
//
// CREATE TABLE public.orders (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id         BIGINT NOT NULL,
//     product_id      BIGINT NOT NULL,
//     quantity        INT,
//     order_status    TEXT,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type OrderLine struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"column:user_id" json:"user_id"`
	ProductID   uint64    `gorm:"column:product_id" json:"product_id"`
	Quantity    int       `gorm:"column:quantity" json:"quantity"`
	OrderStatus string    `gorm:"column:order_status" json:"order_status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (OrderLine) TableName() string {
	return "orders"
}
