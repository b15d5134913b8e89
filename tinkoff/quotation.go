package tinkoff

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// quotation is the API's fixed-point number: integer units plus nanos.
// The gateway serializes int64 units as a JSON string.
type quotation struct {
	Units int64 `json:"units"`
	Nano  int32 `json:"nano"`
}

// moneyValue is a quotation tagged with a lower-cased currency code.
type moneyValue struct {
	quotation
	Currency string `json:"currency"`
}

// decimal returns the exact value of the quotation.
func (q quotation) decimal() decimal.Decimal {
	return decimal.New(q.Units, 0).Add(decimal.New(int64(q.Nano), -9))
}

// float returns the value as a float64, the shape the engine's Operation
// record carries.
func (q quotation) float() float64 { return q.decimal().InexactFloat64() }

func (q *quotation) UnmarshalJSON(b []byte) error {
	var raw struct {
		Units int64String `json:"units"`
		Nano  int32       `json:"nano"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	q.Units = int64(raw.Units)
	q.Nano = raw.Nano
	return nil
}

// int64String is an int64 that the gateway may serialize as a JSON string
// (proto3 mapping) or a plain number.
type int64String int64

func (i *int64String) UnmarshalJSON(b []byte) error {
	var raw json.Number
	if err := json.Unmarshal(b, &raw); err != nil {
		// Quoted form: strip the quotes and parse.
		var s string
		if err2 := json.Unmarshal(b, &s); err2 != nil {
			return err
		}
		raw = json.Number(s)
	}
	if raw == "" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseInt(raw.String(), 10, 64)
	if err != nil {
		return err
	}
	*i = int64String(v)
	return nil
}
