package tinkoff

import (
	"context"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// FindInstrument looks an instrument up by FIGI (or any query the API
// accepts) and returns its display name and ticker. It implements
// instrument.Finder.
//
// The response nests the instruments deep in metadata this client has no
// use for, so the two interesting fields are plucked by path instead of
// mirroring the whole payload as structs.
func (c *Client) FindInstrument(ctx context.Context, query string) (name, ticker string, err error) {
	request := struct {
		Query string `json:"query"`
	}{Query: query}

	var response any
	if err := c.jpost(ctx, instrumentsService, "FindInstrument", request, &response); err != nil {
		return "", "", fmt.Errorf("finding instrument %q: %w", query, err)
	}

	name = pluckString(response, "$.instruments[0].name")
	ticker = pluckString(response, "$.instruments[0].ticker")
	if name == "" && ticker == "" {
		return "", "", fmt.Errorf("instrument %q not found", query)
	}
	return name, ticker, nil
}

// pluckString extracts one string by jsonpath, "" when absent or not a
// string. jsonpath is never clear about whether it returns a list of one
// answer or a single answer, so both are accepted.
func pluckString(doc any, path string) string {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return ""
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}
