package productfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// maxBodyBytes bounds how much of the upstream response is read.
const maxBodyBytes = 32 << 20

var (
	// ErrUnexpectedStatus is returned when the upstream answers with a non-200 status.
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrMissingDateOfSale marks an entry that cannot be placed in any month.
	ErrMissingDateOfSale = errors.New("missing dateOfSale")
)

// Product is one entry of the upstream product transaction dataset.
type Product struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Price       float64    `json:"price"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Image       string     `json:"image"`
	Sold        bool       `json:"sold"`
	DateOfSale  *time.Time `json:"dateOfSale"`
}

// Client downloads the product transaction dataset.
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

func NewClient(url string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchProducts retrieves and decodes the full dataset.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.log.Debugf("productfeed returned %d products", len(products))
	return products, nil
}

// FetchTransactions retrieves the dataset as records ready to be stored.
// Entries without a date of sale are skipped.
func (c *Client) FetchTransactions(ctx context.Context) ([]*transaction.TransactionCreate, error) {
	products, err := c.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	creates := make([]*transaction.TransactionCreate, 0, len(products))
	for i := range products {
		create, err := products[i].ToCreate()
		if err != nil {
			c.log.WithError(err).WithField("productID", products[i].ID).Warn("productfeed.FetchTransactions.skipped")
			continue
		}
		creates = append(creates, create)
	}
	return creates, nil
}

// ToCreate converts p into a storable record. The upstream id and image are
// not kept, and the price is rounded to cents.
func (p *Product) ToCreate() (*transaction.TransactionCreate, error) {
	if p.DateOfSale == nil || p.DateOfSale.IsZero() {
		return nil, fmt.Errorf("product %d: %w", p.ID, ErrMissingDateOfSale)
	}
	return &transaction.TransactionCreate{
		Title:       p.Title,
		Description: p.Description,
		Price:       decimal.NewFromFloat(p.Price).Round(2).InexactFloat64(),
		DateOfSale:  p.DateOfSale.UTC(),
		Sold:        p.Sold,
		Category:    p.Category,
	}, nil
}
