package entity

import "github.com/shopspring/decimal"

type LaundryItem struct {
	ID        int64           `db:"laundry_item_id"`
	Name      string          `db:"name"`
	BasePrice decimal.Decimal `db:"base_price"`
}
