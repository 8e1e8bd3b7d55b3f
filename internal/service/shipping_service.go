package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type ShippingOption struct {
	ServiceName   string `json:"serviceName"`
	CostCents     int64  `json:"costCents"`
	EstimatedDays int    `json:"estimatedDays"`
}

// ShippingService quotes delivery for a CEP. The primary path asks an
// external carrier-rate API; any failure there degrades to the static
// region table, never to an error. After CEP validation there is no hard
// failure path for the caller.
type ShippingService struct {
	apiURL string
	client *http.Client
	log    *zap.Logger
}

func NewShippingService(apiURL string, timeout time.Duration, log *zap.Logger) *ShippingService {
	return &ShippingService{
		apiURL: apiURL,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// fallbackRates is keyed by the CEP's leading digit (the postal region).
// Costs are rough flat rates; the zero key is the catch-all default.
var fallbackRates = map[byte]ShippingOption{
	'1': {ServiceName: "Entrega Padrão", CostCents: 1490, EstimatedDays: 4},
	'2': {ServiceName: "Entrega Padrão", CostCents: 1690, EstimatedDays: 5},
	'3': {ServiceName: "Entrega Padrão", CostCents: 1290, EstimatedDays: 3},
	'4': {ServiceName: "Entrega Padrão", CostCents: 1890, EstimatedDays: 6},
	'8': {ServiceName: "Entrega Padrão", CostCents: 1990, EstimatedDays: 7},
	'9': {ServiceName: "Entrega Padrão", CostCents: 2190, EstimatedDays: 8},
}

var fallbackDefault = ShippingOption{ServiceName: "Entrega Padrão", CostCents: 1990, EstimatedDays: 7}

func (s *ShippingService) Estimate(ctx context.Context, postalCode string) ([]ShippingOption, error) {
	cep := normalizeCEP(postalCode)
	if len(cep) != 8 {
		return nil, ErrInvalidPostalCode
	}

	if opts := s.fromAPI(ctx, cep); len(opts) > 0 {
		return opts, nil
	}
	return fallbackOptions(cep), nil
}

// carrierQuote is the external rate API response shape.
type carrierQuote struct {
	Service   string `json:"service"`
	CostCents int64  `json:"cost_cents"`
	Days      int    `json:"estimated_days"`
}

func (s *ShippingService) fromAPI(ctx context.Context, cep string) []ShippingOption {
	if s.apiURL == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?cep=%s", s.apiURL, cep), nil)
	if err != nil {
		return nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("shipping api unreachable, using fallback rates", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warn("shipping api returned non-ok status, using fallback rates",
			zap.Int("status", resp.StatusCode))
		return nil
	}

	var quotes []carrierQuote
	if err := json.NewDecoder(resp.Body).Decode(&quotes); err != nil {
		s.log.Warn("shipping api response malformed, using fallback rates", zap.Error(err))
		return nil
	}

	opts := make([]ShippingOption, 0, len(quotes))
	for _, q := range quotes {
		if q.Service == "" || q.CostCents <= 0 {
			continue
		}
		opts = append(opts, ShippingOption{
			ServiceName:   q.Service,
			CostCents:     q.CostCents,
			EstimatedDays: q.Days,
		})
	}
	return opts
}

func fallbackOptions(cep string) []ShippingOption {
	base, ok := fallbackRates[cep[0]]
	if !ok {
		base = fallbackDefault
	}

	express := ShippingOption{
		ServiceName:   "Entrega Expressa",
		CostCents:     base.CostCents + 1200,
		EstimatedDays: base.EstimatedDays/2 + 1,
	}
	return []ShippingOption{base, express}
}

func normalizeCEP(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
