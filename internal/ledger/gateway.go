package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/DrGermanius/Gophercash/internal/model"
)

var (
	ErrTooManyRequests  = errors.New("ledger: too many requests")
	ErrCustomerNotFound = errors.New("ledger: customer not found")
	ErrUnexpectedStatus = errors.New("ledger: unexpected status")
)

// Gateway returns a customer's outstanding balance from the external accounting system.
type Gateway interface {
	GetBalance(ctx context.Context, taxID string) (model.LedgerBalance, error)
}

type HTTPGateway struct {
	client *http.Client
	logger *zap.SugaredLogger
	url    string
}

func NewHTTPGateway(addr string, timeout time.Duration, logger *zap.SugaredLogger) *HTTPGateway {
	return &HTTPGateway{
		client: &http.Client{Timeout: timeout},
		logger: logger,
		url:    strings.TrimRight(addr, "/"),
	}
}

func (g *HTTPGateway) GetBalance(ctx context.Context, taxID string) (model.LedgerBalance, error) {
	body, err := g.makeRequest(ctx, taxID)
	if err != nil {
		return model.LedgerBalance{}, err
	}

	res := balanceResponse{}
	if err = json.Unmarshal(body, &res); err != nil {
		return model.LedgerBalance{}, fmt.Errorf("ledger: decode balance: %w", err)
	}

	lb := model.LedgerBalance{
		Balance: res.Balance,
		Source:  res.Source,
		AsOf:    res.AsOf,
	}
	if lb.Source == "" {
		lb.Source = "ledger"
	}
	if lb.AsOf.IsZero() {
		lb.AsOf = time.Now()
	}
	return lb, nil
}

func (g *HTTPGateway) makeRequest(ctx context.Context, taxID string) ([]byte, error) {
	u := g.url + "/api/customers/" + url.PathEscape(taxID) + "/balance"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, ErrTooManyRequests
	case http.StatusNotFound:
		return nil, ErrCustomerNotFound
	default:
		g.logger.Warnw("ledger returned unexpected status", "status", res.StatusCode, "taxID", taxID)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, res.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
	Source  string          `json:"source"`
	AsOf    time.Time       `json:"as_of"`
}
