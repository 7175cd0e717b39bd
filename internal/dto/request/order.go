package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

const quantityFieldPrefix = "quantity_"

// Quantities maps a laundry item id to the raw quantity submitted for it.
// JSON values may be strings or numbers; they are kept as text so that the
// order workflow can report unparseable input per item.
type Quantities map[string]string

func (q *Quantities) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Quantities, len(raw))
	for id, val := range raw {
		val = bytes.TrimSpace(val)
		if bytes.Equal(val, []byte("null")) {
			continue
		}
		var s string
		if err := json.Unmarshal(val, &s); err == nil {
			out[id] = s
			continue
		}
		var n json.Number
		if err := json.Unmarshal(val, &n); err != nil {
			return fmt.Errorf("quantity for item %s: %w", id, err)
		}
		out[id] = n.String()
	}

	*q = out
	return nil
}

type PlaceOrderRequest struct {
	Quantities          Quantities `json:"quantities"`
	SpecialInstructions string     `json:"special_instructions" validate:"max=2000"`
}

// BindForm reads quantity_<item id> fields as submitted by the order form.
func (r *PlaceOrderRequest) BindForm(form url.Values) {
	r.Quantities = make(Quantities)
	for key := range form {
		if id, ok := strings.CutPrefix(key, quantityFieldPrefix); ok && id != "" {
			r.Quantities[id] = form.Get(key)
		}
	}
	r.SpecialInstructions = form.Get("special_instructions")
}

// Quantity returns the submitted quantity for itemID; ok is false when the
// field is absent or blank.
func (r *PlaceOrderRequest) Quantity(itemID int64) (string, bool) {
	raw, ok := r.Quantities[fmt.Sprint(itemID)]
	raw = strings.TrimSpace(raw)
	return raw, ok && raw != ""
}

type UpdateStatusRequest struct {
	OrderStatus string `json:"order_status"`
	DueDate     string `json:"due_date"`
}

func (r *UpdateStatusRequest) BindForm(form url.Values) {
	r.OrderStatus = form.Get("order_status")
	r.DueDate = form.Get("due_date")
}
