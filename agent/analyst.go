package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/dkorunov/kupon"
	"github.com/dkorunov/kupon/date"
	"github.com/dkorunov/kupon/docs"
	"github.com/dkorunov/kupon/renderer"
)

const model = "gemini-2.5-pro"

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// NewAnalyst creates the income analyst expert. Its tools read the account
// through the same collaborators the report commands use, so its answers
// and the rendered reports never disagree.
func NewAnalyst(src kupon.OperationSource, valuer kupon.PortfolioValuer, resolver kupon.Resolver, opts kupon.SalaryOptions) *Expert {
	lib := []Function{
		salaryReportFunc(src, valuer, resolver, opts),
		reviewFunc(src, resolver),
	}
	return &Expert{
		Name: "Analyst",
		Description: `This is the income analyst. He reads the brokerage account
		and computes coupon income, realized profit and the account's yield.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst for a private bond investor. The account lives at a
				brokerage; your tools read it and return markdown reports about coupon
				income, dividends, commissions, taxes and realized profit from sales.

				The user thinks of coupon income as a salary. Answer questions about how
				much the account earned, over which window, and how it compares to the
				previous day or month, grounding every figure in a tool response. If a
				question needs a window the tools don't cover, combine several calls.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func salaryReportFunc(src kupon.OperationSource, valuer kupon.PortfolioValuer, resolver kupon.Resolver, opts kupon.SalaryOptions) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "SalaryReport",
			Description: `SalaryReport computes the full coupon salary report: income per
			window (day, previous day, week, month, previous month, all time), realized
			profit, the portfolio valuation, yield, and the top coupon payers.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted salary report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			report, err := kupon.NewSalaryReport(ctx, src, valuer, resolver, opts)
			if err != nil {
				return errorResponse(id, "SalaryReport", err)
			}
			return outputResponse(id, "SalaryReport", renderer.SalaryMarkdown(report))
		},
	}
}

func reviewFunc(src kupon.OperationSource, resolver kupon.Resolver) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Review",
			Description: `Review computes the income digest of one reporting window:
			totals per category, realized profit and the top payout tables.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type: genai.TypeString,
						Description: `A day inside the wanted window. Today is the default.
						Below is the doc about the accepted formats:

						` + must(docs.GetTopic("dates")),
					},
					"period": {
						Type:        genai.TypeString,
						Description: "The window size: day, week, month, quarter or year. Day is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted review of the window.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := argDate(args, "date")
			if err != nil {
				return errorResponse(id, "Review", err)
			}
			period, err := argPeriod(args, "period")
			if err != nil {
				return errorResponse(id, "Review", err)
			}
			span := date.NewRange(on, period)
			ops, err := src.Operations(ctx, span)
			if err != nil {
				return errorResponse(id, "Review", err)
			}
			review, err := kupon.NewReview(ops, span, resolver)
			if err != nil {
				return errorResponse(id, "Review", err)
			}
			return outputResponse(id, "Review", renderer.PeriodicMarkdown(review))
		},
	}
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func argDate(args map[string]any, key string) (date.Date, error) {
	v, ok := args[key]
	if !ok {
		return date.Today(), nil
	}
	s, ok := v.(string)
	if !ok {
		return date.Date{}, fmt.Errorf("argument %q is not a string as expected but %T", key, v)
	}
	return date.Parse(s)
}

func argPeriod(args map[string]any, key string) (date.Period, error) {
	v, ok := args[key]
	if !ok {
		return date.Daily, nil
	}
	s, ok := v.(string)
	if !ok {
		return date.Daily, fmt.Errorf("argument %q is not a string as expected but %T", key, v)
	}
	return date.ParsePeriod(s)
}
