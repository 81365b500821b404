// Package api is the HTTP client for the remote vehicle store. Every call is a
// single attempt: no caching, retries, backoff or request deduplication.
package api

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

	"github.com/alexisbeaulieu97/frota/internal/logger"
	"github.com/alexisbeaulieu97/frota/internal/vehicle"
	frotaerrors "github.com/alexisbeaulieu97/frota/pkg/errors"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:3001"

const resource = "vehicle"

// VehicleAPI is the contract screen controllers depend on.
type VehicleAPI interface {
	List(ctx context.Context) ([]vehicle.Vehicle, error)
	Get(ctx context.Context, id vehicle.ID) (vehicle.Vehicle, error)
	Create(ctx context.Context, draft vehicle.Vehicle) (vehicle.Vehicle, error)
	Update(ctx context.Context, id vehicle.ID, record vehicle.Vehicle) (vehicle.Vehicle, error)
	Delete(ctx context.Context, id vehicle.ID) error
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client implements VehicleAPI over JSON/HTTP.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *logger.Logger
}

// New creates a Client for the given base URL.
func New(opts Options) (*Client, error) {
	raw := strings.TrimRight(opts.BaseURL, "/")
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must use http or https", raw)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		base:   base,
		http:   httpClient,
		logger: opts.Logger.With("component", "api"),
	}, nil
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// List fetches all vehicles in whatever order the store returns them.
func (c *Client) List(ctx context.Context) ([]vehicle.Vehicle, error) {
	var out []vehicle.Vehicle
	if _, err := c.do(ctx, "list", http.MethodGet, "/vehicles", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []vehicle.Vehicle{}
	}
	return out, nil
}

// Get fetches one vehicle, failing with a NotFoundError for unknown IDs. A
// success status without a body is a NetworkError.
func (c *Client) Get(ctx context.Context, id vehicle.ID) (vehicle.Vehicle, error) {
	var out vehicle.Vehicle
	hasBody, err := c.do(ctx, "get", http.MethodGet, vehiclePath(id), nil, &out)
	if err != nil {
		return vehicle.Vehicle{}, c.notFound(err, id)
	}
	if !hasBody {
		return vehicle.Vehicle{}, frotaerrors.NewNetworkError("get", 0, errors.New("response carried no body"))
	}
	if out.IsDraft() {
		out.ID = id
	}
	return out, nil
}

// Create posts a draft and returns the stored record with its assigned ID.
func (c *Client) Create(ctx context.Context, draft vehicle.Vehicle) (vehicle.Vehicle, error) {
	var out vehicle.Vehicle
	if _, err := c.do(ctx, "create", http.MethodPost, "/vehicles", draft.Fields(), &out); err != nil {
		return vehicle.Vehicle{}, err
	}
	if out.IsDraft() {
		return vehicle.Vehicle{}, frotaerrors.NewNetworkError("create", 0, errors.New("response carried no id"))
	}
	return out, nil
}

// Update replaces the mutable fields of the record with the given ID.
func (c *Client) Update(ctx context.Context, id vehicle.ID, record vehicle.Vehicle) (vehicle.Vehicle, error) {
	var out vehicle.Vehicle
	hasBody, err := c.do(ctx, "update", http.MethodPut, vehiclePath(id), record.Fields(), &out)
	if err != nil {
		return vehicle.Vehicle{}, c.notFound(err, id)
	}
	if !hasBody {
		out = record.Fields()
	}
	if out.IsDraft() {
		out.ID = id
	}
	return out, nil
}

// Delete removes a record. Only 200 and 204 count as success.
func (c *Client) Delete(ctx context.Context, id vehicle.ID) error {
	req, err := c.newRequest(ctx, http.MethodDelete, vehiclePath(id), nil)
	if err != nil {
		return frotaerrors.NewNetworkError("delete", 0, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "op", "delete", "error", err)
		return frotaerrors.NewNetworkError("delete", 0, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		c.logger.Debug(ctx, "vehicle deleted", "id", id.String())
		return nil
	case http.StatusNotFound:
		return frotaerrors.NewNotFoundError(resource, id.String())
	default:
		return frotaerrors.NewNetworkError("delete", resp.StatusCode, nil)
	}
}

// do performs a JSON round trip. It reports whether a response body was
// decoded into out.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (bool, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return false, fmt.Errorf("encode %s request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return false, frotaerrors.NewNetworkError(op, 0, err)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "op", op, "error", err)
		return false, frotaerrors.NewNetworkError(op, 0, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request completed", "op", op, "status", resp.StatusCode, "duration_ms", time.Since(started).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, frotaerrors.NewNetworkError(op, resp.StatusCode, nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, frotaerrors.NewNetworkError(op, 0, err)
	}
	if len(bytes.TrimSpace(data)) == 0 || out == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, frotaerrors.NewNetworkError(op, 0, fmt.Errorf("decode response: %w", err))
	}
	return true, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	target := c.base.String() + path
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// notFound converts a 404 NetworkError into a NotFoundError.
func (c *Client) notFound(err error, id vehicle.ID) error {
	var netErr *frotaerrors.NetworkError
	if errors.As(err, &netErr) && netErr.Status == http.StatusNotFound {
		return frotaerrors.NewNotFoundError(resource, id.String())
	}
	return err
}

func vehiclePath(id vehicle.ID) string {
	return "/vehicles/" + url.PathEscape(id.String())
}

var _ VehicleAPI = (*Client)(nil)
