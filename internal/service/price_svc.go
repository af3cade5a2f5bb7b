package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"mdf_gestor/internal/model"
)

// PriceSuggestion is one suggested price pair for a thickness.
type PriceSuggestion struct {
	ThicknessMm   float64 `json:"thicknessMm"`
	WorkshopPrice float64 `json:"workshopPrice"`
	CounterPrice  float64 `json:"counterPrice"`
}

// PricingConfig points at the external pricing endpoint. An empty URL
// disables the feature.
type PricingConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// PriceService asks an external pricing model for per-thickness workshop and
// counter prices. Callers persist accepted suggestions with origin "ai".
type PriceService struct {
	client *resty.Client
	cfg    PricingConfig
}

func NewPriceService(cfg PricingConfig) *PriceService {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2)
	if cfg.APIKey != "" {
		client.SetHeader("x-api-key", cfg.APIKey)
	}

	return &PriceService{
		client: client,
		cfg:    cfg,
	}
}

type priceRequest struct {
	BrandName   string    `json:"brandName"`
	Name        string    `json:"name"`
	LineName    string    `json:"lineName,omitempty"`
	Texture     string    `json:"texture,omitempty"`
	Finish      string    `json:"finish,omitempty"`
	Thicknesses []float64 `json:"thicknesses"`
}

type priceResponse struct {
	Suggestions []PriceSuggestion `json:"suggestions"`
}

// Suggest posts the board's attributes and thickness values to the pricing
// endpoint and returns its suggestions.
func (s *PriceService) Suggest(ctx context.Context, board *model.Board) ([]PriceSuggestion, error) {
	if s.cfg.URL == "" {
		return nil, fmt.Errorf("%w: pricing endpoint is not configured", ErrValidation)
	}

	req := priceRequest{
		BrandName: board.BrandName,
		Name:      board.Name,
		LineName:  board.LineName,
		Texture:   board.Texture,
		Finish:    board.Finish,
	}
	for _, t := range board.Thicknesses {
		req.Thicknesses = append(req.Thicknesses, t.ThicknessMm)
	}

	var res priceResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&res).
		Post(s.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("pricing request: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("pricing endpoint returned %d: %s", resp.StatusCode(), resp.String())
	}

	return res.Suggestions, nil
}
