package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"app/internal/domain/model"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Admin APIのバージョンは元運用で固定していたもの。
const DefaultAPIVersion = "2023-10"

// APIError はShopifyが2xx以外を返したときのエラー。
type APIError struct {
	Op     string
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shopify %s: unexpected status %d", e.Op, e.Status)
}

// Client はShopify Admin REST APIのクライアント。
// repository.ProductCatalog と repository.DraftOrders を実装する。
type Client struct {
	httpClient *http.Client
	baseURL    string // https://<store>/admin/api/<version>
	token      string

	logger   *zap.Logger
	requests *prometheus.CounterVec // shopify_requests_total{op,outcome}（nil可）
}

// DI
func NewClient(httpClient *http.Client, store, apiVersion, token string, logger *zap.Logger, requests *prometheus.CounterVec) *Client {
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    fmt.Sprintf("https://%s/admin/api/%s", store, apiVersion),
		token:      token,
		logger:     logger,
		requests:   requests,
	}
}

type productsResponse struct {
	Products []struct {
		ID       int64  `json:"id"`
		Title    string `json:"title"`
		Variants []struct {
			Price string `json:"price"`
		} `json:"variants"`
	} `json:"products"`
}

// ListProducts は GET /products.json の結果をモデルに変換して返す。
// 価格は先頭バリアントのもの（元運用と同じ）。バリアント無しの商品は飛ばす。
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	const op = "list_products"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products.json", nil)
	if err != nil {
		return nil, fmt.Errorf("shopify %s: %w", op, err)
	}
	c.setHeaders(req)

	var body productsResponse
	if err := c.do(req, op, &body); err != nil {
		return nil, err
	}

	products := make([]model.Product, 0, len(body.Products))
	for _, p := range body.Products {
		if len(p.Variants) == 0 {
			c.logger.Warn("shopify_product_without_variant", zap.Int64("product_id", p.ID))
			continue
		}
		price, err := model.ParsePrice(p.Variants[0].Price)
		if err != nil {
			return nil, fmt.Errorf("shopify %s: product %d: %w", op, p.ID, err)
		}
		products = append(products, model.Product{
			ID:    strconv.FormatInt(p.ID, 10),
			Title: p.Title,
			Price: price,
		})
	}
	return products, nil
}

type draftOrderLineItem struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Quantity int64  `json:"quantity"`
}

type draftOrderRequest struct {
	DraftOrder struct {
		LineItems       []draftOrderLineItem `json:"line_items"`
		Email           string               `json:"email"`
		FinancialStatus string               `json:"financial_status"`
	} `json:"draft_order"`
}

type draftOrderResponse struct {
	DraftOrder struct {
		ID int64 `json:"id"`
	} `json:"draft_order"`
}

// CreateDraftOrder は POST /draft_orders.json で支払い済みドラフト注文を作る。
// 支払いはチャット側で確認済みなので financial_status は常に "paid"。
func (c *Client) CreateDraftOrder(ctx context.Context, email string, entries []model.CartEntry) (int64, error) {
	const op = "create_draft_order"

	var payload draftOrderRequest
	payload.DraftOrder.Email = email
	payload.DraftOrder.FinancialStatus = "paid"
	payload.DraftOrder.LineItems = make([]draftOrderLineItem, 0, len(entries))
	for _, e := range entries {
		payload.DraftOrder.LineItems = append(payload.DraftOrder.LineItems, draftOrderLineItem{
			Title:    e.Title,
			Price:    model.FormatPrice(e.Price),
			Quantity: 1,
		})
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("shopify %s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/draft_orders.json", bytes.NewReader(buf))
	if err != nil {
		return 0, fmt.Errorf("shopify %s: %w", op, err)
	}
	c.setHeaders(req)

	var body draftOrderResponse
	if err := c.do(req, op, &body); err != nil {
		return 0, err
	}
	if body.DraftOrder.ID == 0 {
		return 0, fmt.Errorf("shopify %s: response has no draft order id", op)
	}
	return body.DraftOrder.ID, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-Shopify-Access-Token", c.token)
	req.Header.Set("Content-Type", "application/json")
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.count(op, "error")
		return fmt.Errorf("shopify %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.count(op, "error")
		c.logger.Error("shopify_request_failed",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
		)
		return &APIError{Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.count(op, "error")
		return fmt.Errorf("shopify %s: decode response: %w", op, err)
	}

	c.count(op, "success")
	return nil
}

func (c *Client) count(op, outcome string) {
	if c.requests == nil {
		return
	}
	c.requests.WithLabelValues(op, outcome).Inc()
}
