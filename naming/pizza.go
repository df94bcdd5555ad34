package naming

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dcazrael/color-sentence/core"
)

// Sentinel errors
var (
	ErrEmptyAnswer = errors.New("naming service returned no colors")
)

// PizzaClient queries the Color Pizza service for curated color names
type PizzaClient struct {
	http *resty.Client
}

// NewPizzaClient builds a client with the configured base URL and timeout
func NewPizzaClient(cfg Config) *PizzaClient {
	return &PizzaClient{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json"),
	}
}

// pizzaResponse mirrors the service payload, best match first
type pizzaResponse struct {
	Colors []struct {
		Name     string  `json:"name"`
		Hex      string  `json:"hex"`
		Distance float64 `json:"distance"`
	} `json:"colors"`
}

// Lookup asks the service for the nearest curated name to c
func (p *PizzaClient) Lookup(ctx context.Context, c core.RGB) (Info, error) {
	var payload pizzaResponse
	resp, err := p.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"values":        strings.TrimPrefix(c.Hex(), "#"),
			"goodnamesonly": "true",
			"noduplicates":  "true",
		}).
		SetResult(&payload).
		Get("/")
	if err != nil {
		return Info{}, fmt.Errorf("name lookup: %w", err)
	}
	if !resp.IsSuccess() {
		return Info{}, fmt.Errorf("name lookup: unexpected status %s", resp.Status())
	}
	if len(payload.Colors) == 0 {
		return Info{}, ErrEmptyAnswer
	}

	best := payload.Colors[0]
	if best.Name == "" {
		return Info{}, fmt.Errorf("name lookup: match without a name")
	}

	info := Info{
		Name:       best.Name,
		MatchedHex: normalizeHex(best.Hex),
		Distance:   best.Distance,
	}
	info.Exact = best.Distance == 0 || info.MatchedHex == c.Hex()
	return info, nil
}

// normalizeHex reshapes a service hex into lowercase #rrggbb, keeping the
// lowercased raw value when it does not parse
func normalizeHex(s string) string {
	if s == "" {
		return ""
	}
	in := s
	if !strings.HasPrefix(in, "#") {
		in = "#" + in
	}
	col, err := colorful.Hex(in)
	if err != nil {
		return strings.ToLower(s)
	}
	r, g, b := col.RGB255()
	return core.RGB{R: r, G: g, B: b}.Hex()
}
