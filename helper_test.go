package kupon

import "time"

// base is an arbitrary trading day used by the tests.
var base = time.Date(2025, time.August, 4, 10, 0, 0, 0, time.UTC)

// RUB is a helper for tests to create rouble money from const.
func RUB(v float64) Money { return M(v, "RUB") }

// at returns the base day shifted by a number of hours.
func at(hours int) time.Time { return base.Add(time.Duration(hours) * time.Hour) }

// buyOp creates an executed purchase: cash out, instrument and quantity set.
func buyOp(h int, figi string, qty int64, total float64) Operation {
	return Operation{
		Time:         at(h),
		Kind:         "Покупка ценных бумаг",
		InstrumentID: figi,
		Quantity:     qty,
		UnitPrice:    total / float64(qty),
		Amount:       -total,
		Currency:     "RUB",
	}
}

// sellOp creates an executed sale: cash in, instrument and quantity set.
func sellOp(h int, figi string, qty int64, total float64) Operation {
	return Operation{
		Time:         at(h),
		Kind:         "Продажа ценных бумаг",
		InstrumentID: figi,
		Quantity:     qty,
		UnitPrice:    total / float64(qty),
		Amount:       total,
		Currency:     "RUB",
	}
}

// cashOp creates a non-trade operation of the given kind and payment.
func cashOp(h int, kind string, amount float64) Operation {
	return Operation{Time: at(h), Kind: kind, Amount: amount, Currency: "RUB"}
}
