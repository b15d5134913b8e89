package tinkoff

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dkorunov/kupon/date"
)

// newTestClient serves canned JSON per service method and checks the
// authorization header on the way in.
func newTestClient(t *testing.T, responses map[string]string) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		body, ok := responses[method]
		if !ok {
			http.Error(w, "unexpected method "+method, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return New("test-token", "acc-1", WithEndpoint(server.URL))
}

func TestOperations(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"GetOperations": `{"operations":[
			{"id":"1","date":"2025-08-04T10:00:00Z","type":"Выплата купонов","operationType":"OPERATION_TYPE_COUPON",
			 "state":"OPERATION_STATE_EXECUTED","payment":{"currency":"rub","units":"35","nano":500000000},"currency":"rub"},
			{"id":"2","date":"2025-08-04T11:00:00Z","type":"Покупка ценных бумаг","operationType":"OPERATION_TYPE_BUY",
			 "state":"OPERATION_STATE_EXECUTED","figi":"BBG000000001","quantity":"10",
			 "price":{"currency":"rub","units":"100","nano":0},
			 "payment":{"currency":"rub","units":"-1000","nano":0},"currency":"rub"},
			{"id":"3","date":"2025-08-04T12:00:00Z","type":"Покупка ценных бумаг",
			 "state":"OPERATION_STATE_CANCELED","figi":"BBG000000001","quantity":"1",
			 "payment":{"currency":"rub","units":"-100","nano":0},"currency":"rub"}
		]}`,
	})

	ops, err := c.Operations(context.Background(), date.NewRange(date.New(2025, time.August, 4), date.Daily))
	if err != nil {
		t.Fatalf("Operations() unexpected error = %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("got %d operations, want 2 (canceled one dropped)", len(ops))
	}

	coupon := ops[0]
	if coupon.Kind != "Выплата купонов" || coupon.Amount != 35.5 || coupon.Currency != "RUB" {
		t.Errorf("coupon mapped badly: %+v", coupon)
	}
	buy := ops[1]
	if buy.InstrumentID != "BBG000000001" || buy.Quantity != 10 || buy.Amount != -1000 || buy.UnitPrice != 100 {
		t.Errorf("buy mapped badly: %+v", buy)
	}
	if !buy.Time.Equal(time.Date(2025, time.August, 4, 11, 0, 0, 0, time.UTC)) {
		t.Errorf("buy time = %v", buy.Time)
	}
}

func TestOperationsKindFallsBackToEnum(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"GetOperations": `{"operations":[
			{"id":"1","date":"2025-08-04T10:00:00Z","operationType":"OPERATION_TYPE_CASH_IN",
			 "state":"OPERATION_STATE_EXECUTED","payment":{"currency":"rub","units":"1000","nano":0},"currency":"rub"}
		]}`,
	})
	ops, err := c.Operations(context.Background(), date.NewRange(date.Today(), date.Daily))
	if err != nil {
		t.Fatalf("Operations() unexpected error = %v", err)
	}
	if len(ops) != 1 || ops[0].Kind != "OPERATION_TYPE_CASH_IN" {
		t.Fatalf("kind fallback failed: %+v", ops)
	}
}

func TestPortfolioValue(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"GetPortfolio": `{"totalAmountPortfolio":{"currency":"rub","units":"95000","nano":500000000}}`,
	})
	value, err := c.PortfolioValue(context.Background())
	if err != nil {
		t.Fatalf("PortfolioValue() unexpected error = %v", err)
	}
	if value.Currency() != "RUB" {
		t.Errorf("Currency() = %q, want RUB", value.Currency())
	}
	if want := "95 000.50"; !strings.Contains(value.String(), "95") {
		t.Errorf("String() = %q, want something like %q", value.String(), want)
	}
}

func TestResolveAccount(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"GetAccounts": `{"accounts":[
			{"id":"iis-1","type":"ACCOUNT_TYPE_TINKOFF_IIS","status":"ACCOUNT_STATUS_OPEN"},
			{"id":"closed-1","type":"ACCOUNT_TYPE_TINKOFF","status":"ACCOUNT_STATUS_CLOSED"},
			{"id":"broker-1","type":"ACCOUNT_TYPE_TINKOFF","status":"ACCOUNT_STATUS_OPEN"}
		]}`,
	})
	c.accountID = ""
	if err := c.ResolveAccount(context.Background()); err != nil {
		t.Fatalf("ResolveAccount() unexpected error = %v", err)
	}
	if c.AccountID() != "broker-1" {
		t.Errorf("AccountID() = %q, want broker-1", c.AccountID())
	}
}

func TestFindInstrument(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"FindInstrument": `{"instruments":[
			{"figi":"BBG000000001","ticker":"SU26238RMFS4","name":"ОФЗ 26238","isin":"RU000A1038V6"}
		]}`,
	})
	name, ticker, err := c.FindInstrument(context.Background(), "BBG000000001")
	if err != nil {
		t.Fatalf("FindInstrument() unexpected error = %v", err)
	}
	if name != "ОФЗ 26238" || ticker != "SU26238RMFS4" {
		t.Errorf("FindInstrument() = (%q, %q)", name, ticker)
	}
}

func TestFindInstrumentNotFound(t *testing.T) {
	c := newTestClient(t, map[string]string{"FindInstrument": `{"instruments":[]}`})
	if _, _, err := c.FindInstrument(context.Background(), "nope"); err == nil {
		t.Error("FindInstrument() expected an error for an empty result")
	}
}

func TestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":16,"message":"authentication token is missing or invalid"}`, http.StatusUnauthorized)
	}))
	defer server.Close()
	c := New("bad-token", "acc-1", WithEndpoint(server.URL))
	if _, err := c.Operations(context.Background(), date.NewRange(date.Today(), date.Daily)); err == nil {
		t.Error("Operations() expected an error on a 401 response")
	}
}
