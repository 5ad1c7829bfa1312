package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/smmdash/order-query-service/internal/models"
)

// maxErrorBody bounds how much of an upstream error response is kept.
const maxErrorBody = 4 << 10

// Client talks to the provider order API. All calls carry the API key in
// the X-Api-Key header and are attempted exactly once, no retries.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an upstream client. The timeout applies per call so an
// unresponsive upstream cannot stall a request indefinitely.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// listEnvelope is the documented upstream list schema. Anything that does
// not carry a data object is treated as an UpstreamError rather than probed
// for alternative keys.
type listEnvelope struct {
	Data *struct {
		List []models.OrderSummary `json:"list"`
	} `json:"data"`
}

type detailEnvelope struct {
	Data *models.OrderDetail `json:"data"`
}

// ListOrders issues one GET to {base}/orders with the resolved parameters
// and returns the raw list, possibly empty. Upstream paging metadata is
// ignored; the caller computes its own links.
func (c *Client) ListOrders(ctx context.Context, req models.PageRequest) ([]models.OrderSummary, error) {
	v := req.Values()
	v.Set("offset", strconv.Itoa(req.Offset))
	url := c.baseURL + "/orders?" + v.Encode()

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &Error{StatusCode: http.StatusOK, Body: "malformed list payload: " + err.Error()}
	}
	if envelope.Data == nil {
		return nil, &Error{StatusCode: http.StatusOK, Body: "list payload missing data object"}
	}

	list := envelope.Data.List
	if list == nil {
		list = []models.OrderSummary{}
	}
	return list, nil
}

// GetOrder issues one GET to {base}/orders/{id}.
func (c *Client) GetOrder(ctx context.Context, id int64) (*models.OrderDetail, error) {
	url := fmt.Sprintf("%s/orders/%d", c.baseURL, id)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var envelope detailEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &Error{StatusCode: http.StatusOK, Body: "malformed detail payload: " + err.Error()}
	}
	if envelope.Data == nil {
		return nil, &Error{StatusCode: http.StatusOK, Body: "detail payload missing data object"}
	}

	return envelope.Data, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}
	return body, nil
}
