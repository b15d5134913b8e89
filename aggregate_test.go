package kupon

import (
	"errors"
	"math"
	"testing"
)

func TestAggregate(t *testing.T) {
	ops := []Operation{
		cashOp(0, "Пополнение брокерского счета", 10000),
		cashOp(1, "Выплата купонов", 35.5),
		cashOp(2, "Выплата купонов", 14.5),
		cashOp(3, "Выплата дивидендов", 120),
		cashOp(4, "Удержание налога", -15.6),
		cashOp(5, "Удержание комиссии за операцию", -3.04),
		cashOp(6, "Вывод денежных средств", -2500),
		cashOp(7, "Перенос позиции", 42), // unclassified, must not count
	}
	s, err := Aggregate(ops)
	if err != nil {
		t.Fatalf("Aggregate() unexpected error = %v", err)
	}

	want := map[Category]Money{
		Deposit:    RUB(10000),
		Coupon:     RUB(50),
		Dividend:   RUB(120),
		Tax:        RUB(15.6),
		Commission: RUB(3.04),
		Withdrawal: RUB(2500),
	}
	for c, w := range want {
		if got := s.Total(c); !got.Equal(w) {
			t.Errorf("Total(%s) = %s, want %s", c, got, w)
		}
	}
	if got := s.Total(Amortisation); !got.IsZero() {
		t.Errorf("Total(amortisation) = %s, want zero", got)
	}
	if got := s.Accruals(); !got.Equal(RUB(170)) {
		t.Errorf("Accruals() = %s, want %s", got, RUB(170))
	}
	if got := s.NetInvested(); !got.Equal(RUB(7500)) {
		t.Errorf("NetInvested() = %s, want %s", got, RUB(7500))
	}
}

// TestAggregateOrderIndependence checks that permuting the batch leaves the
// totals exactly equal: decimal summation is associative and commutative.
func TestAggregateOrderIndependence(t *testing.T) {
	ops := []Operation{
		cashOp(0, "Выплата купонов", 0.1),
		cashOp(1, "Выплата купонов", 0.2),
		cashOp(2, "Выплата купонов", 0.3),
		cashOp(3, "Удержание налога", -1.15),
		cashOp(4, "Пополнение счета", 300.77),
	}
	reversed := make([]Operation, 0, len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		reversed = append(reversed, ops[i])
	}

	a, err := Aggregate(ops)
	if err != nil {
		t.Fatalf("Aggregate() unexpected error = %v", err)
	}
	b, err := Aggregate(reversed)
	if err != nil {
		t.Fatalf("Aggregate() unexpected error = %v", err)
	}
	for _, c := range Categories {
		if !a.Total(c).Equal(b.Total(c)) {
			t.Errorf("Total(%s) depends on order: %s vs %s", c, a.Total(c), b.Total(c))
		}
	}
}

// TestAggregateDisjoint checks that an operation contributes to exactly one
// category: the sum of per-category counts equals the classified count.
func TestAggregateDisjoint(t *testing.T) {
	ops := []Operation{
		cashOp(0, "Выплата купонов", 50),
		{Time: at(1), Kind: "Удержание налога по дивидендам", Description: "налог на купон", Amount: -7, Currency: "RUB"},
		cashOp(2, "Пополнение счета", 100),
		cashOp(3, "Перенос позиции", 1),
	}
	counts := make(map[Category]int)
	classified := 0
	for _, op := range ops {
		c := Classify(op)
		if c != Unclassified {
			counts[c]++
			classified++
		}
	}
	sum := 0
	for _, n := range counts {
		sum += n
	}
	if sum != classified {
		t.Fatalf("per-category counts sum to %d, want %d", sum, classified)
	}
	if classified != 3 {
		t.Errorf("classified %d operations, want 3", classified)
	}
}

func TestAggregateEmpty(t *testing.T) {
	s, err := Aggregate(nil)
	if err != nil {
		t.Fatalf("Aggregate(nil) unexpected error = %v", err)
	}
	for _, c := range Categories {
		if !s.Total(c).IsZero() {
			t.Errorf("Total(%s) = %s, want zero", c, s.Total(c))
		}
	}
}

func TestAggregateRejectsNonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		ops := []Operation{cashOp(0, "Выплата купонов", bad)}
		if _, err := Aggregate(ops); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Aggregate() error = %v for amount %v, want ErrInvalidInput", err, bad)
		}
	}
}

func TestAggregateRejectsMixedCurrencies(t *testing.T) {
	ops := []Operation{
		cashOp(0, "Выплата купонов", 50),
		{Time: at(1), Kind: "Dividend", Amount: 10, Currency: "USD"},
	}
	if _, err := Aggregate(ops); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Aggregate() error = %v for a mixed-currency batch, want ErrInvalidInput", err)
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	ops := []Operation{cashOp(0, "Выплата купонов", 50)}
	before := ops[0]
	if _, err := Aggregate(ops); err != nil {
		t.Fatalf("Aggregate() unexpected error = %v", err)
	}
	if ops[0] != before {
		t.Error("Aggregate() mutated its input")
	}
}
