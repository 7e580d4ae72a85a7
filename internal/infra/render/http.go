package render

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"furnished-lease-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRendererNotConfigured = errs.New("document renderer is not configured")

// HTTPRenderer asks the document service to render a lease and returns the stored document reference.
type HTTPRenderer struct {
	baseURL string
	client  *http.Client
}

func NewHTTPRenderer(baseURL string, timeout time.Duration) *HTTPRenderer {
	return &HTTPRenderer{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type renderRequest struct {
	LeaseID uuid.UUID `json:"leaseId"`
}

type renderResponse struct {
	DocumentRef string `json:"documentRef"`
}

func (r *HTTPRenderer) RenderLeaseDocument(ctx context.Context, leaseID uuid.UUID) (string, error) {
	if r.baseURL == "" {
		return "", ErrRendererNotConfigured
	}

	body, err := json.Marshal(renderRequest{LeaseID: leaseID})
	if err != nil {
		return "", errs.Wrap(err, "marshal render request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/leases/render", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "build render request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", leaseID.String())

	resp, err := r.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "call renderer")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", errs.Wrap(err, "read renderer response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.Newf("renderer returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out renderResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errs.Wrap(err, "decode renderer response")
	}
	if strings.TrimSpace(out.DocumentRef) == "" {
		return "", errs.Newf("renderer returned an empty document reference for lease %s", leaseID)
	}
	return out.DocumentRef, nil
}
