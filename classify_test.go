package kupon

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want Category
	}{
		{"russian deposit", Operation{Kind: "Пополнение брокерского счета"}, Deposit},
		{"enum deposit", Operation{Kind: "OPERATION_TYPE_CASH_IN"}, Deposit},
		{"russian withdrawal", Operation{Kind: "Вывод денежных средств"}, Withdrawal},
		{"enum withdrawal", Operation{Kind: "operation_type_cash_out"}, Withdrawal},
		{"coupon by kind", Operation{Kind: "Выплата купонов"}, Coupon},
		{"coupon by description", Operation{Kind: "Прочее", Description: "частичная выплата купона ОФЗ"}, Coupon},
		{"dividend by kind", Operation{Kind: "Выплата дивидендов"}, Dividend},
		{"dividend by description", Operation{Kind: "Прочее", Description: "Dividend payout AAPL"}, Dividend},
		{"amortisation", Operation{Kind: "Частичное погашение облигаций (амортизация)"}, Amortisation},
		{"commission", Operation{Kind: "Удержание комиссии за операцию"}, Commission},
		{"fee enum", Operation{Kind: "broker_fee"}, Commission},
		{"tax", Operation{Kind: "Удержание налога"}, Tax},
		{"unclassified", Operation{Kind: "Перенос позиции", Description: "margin transfer"}, Unclassified},
		{"empty", Operation{}, Unclassified},
	}
	for _, tt := range tests {
		if got := Classify(tt.op); got != tt.want {
			t.Errorf("%s: Classify(%q/%q) = %s, want %s", tt.name, tt.op.Kind, tt.op.Description, got, tt.want)
		}
	}
}

// TestClassifyPriority pins the rule order down. Substring matching makes
// co-matches easy, and the earlier rule must always win.
func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want Category
	}{
		// The coupon rule fires on the kind before the dividend rule ever
		// looks at the description.
		{"coupon kind beats dividend description",
			Operation{Kind: "fee_coupon_adjustment", Description: "dividend related"}, Coupon},
		// A dividend tax names both families; dividend is checked first.
		{"dividend beats tax",
			Operation{Kind: "Удержание налога по дивидендам"}, Dividend},
		// Same for coupons.
		{"coupon beats tax",
			Operation{Kind: "Удержание налога по купонам"}, Coupon},
		// A fee charged as a cash write-off matches the withdrawal family
		// first. Deliberate: the cascade follows the kind's cash semantics.
		{"withdrawal beats commission",
			Operation{Kind: "Списание комиссии"}, Withdrawal},
		// The commission rule never reads the description.
		{"commission ignores description",
			Operation{Kind: "Прочее", Description: "broker fee refund"}, Unclassified},
	}
	for _, tt := range tests {
		if got := Classify(tt.op); got != tt.want {
			t.Errorf("%s: Classify(%q/%q) = %s, want %s", tt.name, tt.op.Kind, tt.op.Description, got, tt.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify(Operation{Kind: "ВЫПЛАТА КУПОНОВ"}); got != Coupon {
		t.Errorf("Classify(upper-case kind) = %s, want coupon", got)
	}
	if got := Classify(Operation{Kind: "Broker FEE"}); got != Commission {
		t.Errorf("Classify(mixed-case kind) = %s, want commission", got)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = (%s, %v), want (%s, nil)", c.String(), got, err, c)
		}
	}
	if _, err := ParseCategory("salary"); err == nil {
		t.Error("ParseCategory() expected an error for an unknown name")
	}
}
