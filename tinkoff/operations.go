package tinkoff

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dkorunov/kupon"
	"github.com/dkorunov/kupon/date"
)

// executedState is the only execution state the engine should ever see.
const executedState = "OPERATION_STATE_EXECUTED"

// apiOperation is the gateway's operation record.
type apiOperation struct {
	ID            string      `json:"id"`
	Date          time.Time   `json:"date"`
	Type          string      `json:"type"`          // human label, e.g. "Выплата купонов"
	OperationType string      `json:"operationType"` // enum name, e.g. "OPERATION_TYPE_COUPON"
	Description   string      `json:"description"`
	State         string      `json:"state"`
	Figi          string      `json:"figi"`
	Quantity      int64String `json:"quantity"`
	Price         moneyValue  `json:"price"`
	Payment       moneyValue  `json:"payment"`
	Currency      string      `json:"currency"`
}

// kind returns the classification label: the human type when the gateway
// provides one, the enum name otherwise. Both carry the keyword families
// the classifier knows.
func (op apiOperation) kind() string {
	if op.Type != "" {
		return op.Type
	}
	return op.OperationType
}

func (op apiOperation) currency() string {
	cur := op.Payment.Currency
	if cur == "" {
		cur = op.Currency
	}
	return strings.ToUpper(cur)
}

// Operations fetches the executed operations of the account for a date
// window, oldest first. It implements kupon.OperationSource.
func (c *Client) Operations(ctx context.Context, r date.Range) ([]kupon.Operation, error) {
	request := struct {
		AccountID string `json:"accountId"`
		From      string `json:"from"`
		To        string `json:"to"`
		State     string `json:"state"`
	}{
		AccountID: c.accountID,
		From:      r.Start().Format(time.RFC3339),
		To:        r.End().Format(time.RFC3339),
		State:     executedState,
	}
	var response struct {
		Operations []apiOperation `json:"operations"`
	}
	if err := c.jpost(ctx, operationsService, "GetOperations", request, &response); err != nil {
		return nil, fmt.Errorf("operations for %s: %w", r.Identifier(), err)
	}

	ops := make([]kupon.Operation, 0, len(response.Operations))
	for _, raw := range response.Operations {
		// The request already filters on execution state; a different state
		// here would be a gateway bug, skip it all the same.
		if raw.State != "" && raw.State != executedState {
			continue
		}
		ops = append(ops, kupon.Operation{
			Time:         raw.Date,
			Kind:         raw.kind(),
			Description:  raw.Description,
			InstrumentID: raw.Figi,
			Quantity:     int64(raw.Quantity),
			UnitPrice:    raw.Price.float(),
			Amount:       raw.Payment.float(),
			Currency:     raw.currency(),
		})
	}
	return ops, nil
}

// PortfolioValue fetches the total valuation of the account's portfolio.
// It implements kupon.PortfolioValuer.
func (c *Client) PortfolioValue(ctx context.Context) (kupon.Money, error) {
	request := struct {
		AccountID string `json:"accountId"`
	}{AccountID: c.accountID}

	var response struct {
		TotalAmountPortfolio moneyValue `json:"totalAmountPortfolio"`
	}
	if err := c.jpost(ctx, operationsService, "GetPortfolio", request, &response); err != nil {
		return kupon.Money{}, fmt.Errorf("portfolio value: %w", err)
	}
	total := response.TotalAmountPortfolio
	return kupon.M(total.decimal(), strings.ToUpper(total.Currency)), nil
}

// brokerAccountType is the plain brokerage account (as opposed to IIS or
// investment-box accounts).
const brokerAccountType = "ACCOUNT_TYPE_TINKOFF"

// ResolveAccount fills the client's account id when it was not configured:
// the first open brokerage account owned by the token.
func (c *Client) ResolveAccount(ctx context.Context) error {
	if c.accountID != "" {
		return nil
	}
	var response struct {
		Accounts []struct {
			ID     string `json:"id"`
			Type   string `json:"type"`
			Status string `json:"status"`
		} `json:"accounts"`
	}
	if err := c.jpost(ctx, usersService, "GetAccounts", struct{}{}, &response); err != nil {
		return fmt.Errorf("listing accounts: %w", err)
	}
	for _, acc := range response.Accounts {
		if acc.Type == brokerAccountType && acc.Status != "ACCOUNT_STATUS_CLOSED" {
			c.accountID = acc.ID
			return nil
		}
	}
	return fmt.Errorf("no open brokerage account for this token")
}
