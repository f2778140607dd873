package catalog

import (
	"context"
	"fmt"
	"time"

	"bike-shop/models"

	jsoniter "github.com/json-iterator/go"
	"resty.dev/v3"
)

const itemsPath = "/items"

// HTTPService talks to the catalog API over HTTP.
type HTTPService struct {
	client *resty.Client
}

func NewHTTPService(baseURL string, timeout time.Duration) *HTTPService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPService{client: client}
}

func (s *HTTPService) List(ctx context.Context, search string) ([]models.Item, error) {
	req := s.client.R().SetContext(ctx)
	if search != "" {
		req = req.SetQueryParam("search", search)
	}

	resp, err := req.Get(itemsPath)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}

	if resp.IsError() {
		var errResp models.ErrorResponse
		_ = jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(resp.String(), &errResp)
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), errResp.Message)
	}

	items := []models.Item{}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(resp.String(), &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

func (s *HTTPService) Close() error {
	return s.client.Close()
}
