package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mouse-blink/reprise/internal/logging"
	m "github.com/mouse-blink/reprise/internal/model"
)

const maxErrorBody = 4 << 10

// ClientConfig is the network configuration shared by every remote
// collaborator. It is built once by the CLI and injected.
type ClientConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// HTTPError is returned for any non-2xx backend response.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}

	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// HTTPStore implements Store against the reprise JSON API.
type HTTPStore struct {
	baseURL *url.URL
	client  *http.Client
}

// NewHTTPStore validates cfg and constructs an HTTPStore.
func NewHTTPStore(cfg ClientConfig) (*HTTPStore, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}

	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", cfg.BaseURL)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &HTTPStore{baseURL: base, client: client}, nil
}

type motifCreateRequest struct {
	Content  string `json:"content"`
	Citation string `json:"citation,omitempty"`
}

type motifUpdateRequest struct {
	Content  string `json:"content"`
	Citation string `json:"citation,omitempty"`
}

type citationCreateRequest struct {
	Title string `json:"title"`
}

type citationListResponse struct {
	Citations []m.Citation `json:"citations"`
}

type clozeDeletionCreateRequest struct {
	MotifUUID  string        `json:"motif_uuid"`
	MaskTuples m.IntervalSet `json:"mask_tuples"`
}

type clozeDeletionUpdateRequest struct {
	UUID       string        `json:"uuid"`
	MaskTuples m.IntervalSet `json:"mask_tuples"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ListMotifs implements Store.
func (s *HTTPStore) ListMotifs(ctx context.Context, page, pageSize int) (m.MotifPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var out m.MotifPage
	if err := s.do(ctx, http.MethodGet, "/motifs", query, nil, &out); err != nil {
		return m.MotifPage{}, err
	}

	return out, nil
}

// GetMotif implements Store.
func (s *HTTPStore) GetMotif(ctx context.Context, uuid string) (m.Motif, error) {
	var out m.Motif
	if err := s.do(ctx, http.MethodGet, "/motifs/"+url.PathEscape(uuid), nil, nil, &out); err != nil {
		return m.Motif{}, err
	}

	return out, nil
}

// CreateMotif implements Store.
func (s *HTTPStore) CreateMotif(ctx context.Context, content, citation string) (m.Motif, error) {
	var out m.Motif
	if err := s.do(ctx, http.MethodPost, "/motifs", nil, motifCreateRequest{Content: content, Citation: citation}, &out); err != nil {
		return m.Motif{}, err
	}

	return out, nil
}

// UpdateMotif implements Store.
func (s *HTTPStore) UpdateMotif(ctx context.Context, uuid, content, citation string) (m.Motif, error) {
	var out m.Motif

	body := motifUpdateRequest{Content: content, Citation: citation}
	if err := s.do(ctx, http.MethodPut, "/motifs/"+url.PathEscape(uuid), nil, body, &out); err != nil {
		return m.Motif{}, err
	}

	return out, nil
}

// DeleteMotif implements Store.
func (s *HTTPStore) DeleteMotif(ctx context.Context, uuid string) error {
	return s.do(ctx, http.MethodDelete, "/motifs/"+url.PathEscape(uuid), nil, nil, nil)
}

// ListCitations implements Store.
func (s *HTTPStore) ListCitations(ctx context.Context) ([]m.Citation, error) {
	var out citationListResponse
	if err := s.do(ctx, http.MethodGet, "/citations", nil, nil, &out); err != nil {
		return nil, err
	}

	return out.Citations, nil
}

// AddCitation implements Store.
func (s *HTTPStore) AddCitation(ctx context.Context, title string) (m.Citation, error) {
	var out m.Citation
	if err := s.do(ctx, http.MethodPost, "/citations", nil, citationCreateRequest{Title: title}, &out); err != nil {
		return m.Citation{}, err
	}

	return out, nil
}

// CreateClozeDeletion implements Store.
func (s *HTTPStore) CreateClozeDeletion(ctx context.Context, motifUUID string, set m.IntervalSet) (m.ClozeDeletion, error) {
	var out m.ClozeDeletion

	body := clozeDeletionCreateRequest{MotifUUID: motifUUID, MaskTuples: set}
	if err := s.do(ctx, http.MethodPost, "/cloze_deletions", nil, body, &out); err != nil {
		return m.ClozeDeletion{}, err
	}

	if out.MotifUUID == "" {
		out.MotifUUID = motifUUID
	}

	return out, nil
}

// UpdateClozeDeletion implements Store.
func (s *HTTPStore) UpdateClozeDeletion(ctx context.Context, uuid string, set m.IntervalSet) (m.ClozeDeletion, error) {
	var out m.ClozeDeletion

	body := clozeDeletionUpdateRequest{UUID: uuid, MaskTuples: set}
	if err := s.do(ctx, http.MethodPut, "/cloze_deletions", nil, body, &out); err != nil {
		return m.ClozeDeletion{}, err
	}

	return out, nil
}

// DeleteClozeDeletion implements Store.
func (s *HTTPStore) DeleteClozeDeletion(ctx context.Context, uuid string) error {
	return s.do(ctx, http.MethodDelete, "/cloze_deletions/"+url.PathEscape(uuid), nil, nil, nil)
}

// Reprise implements Store.
func (s *HTTPStore) Reprise(ctx context.Context) ([]m.Motif, error) {
	var out []m.Motif
	if err := s.do(ctx, http.MethodPost, "/reprise", nil, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Close implements Store.
func (s *HTTPStore) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

func (s *HTTPStore) do(ctx context.Context, method, path string, query url.Values, body, out any) (err error) {
	started := time.Now()

	defer func() {
		logging.StoreRequest(ctx, "http", method, path, time.Since(started), err)
	}()

	// path is already escaped; JoinPath keeps Path and RawPath in step.
	target := s.baseURL.JoinPath(path)
	target.RawQuery = query.Encode()

	var reader io.Reader

	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, marshalErr)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(method, path, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}

func newHTTPError(method, path string, resp *http.Response) error {
	httpErr := &HTTPError{Method: method, Path: path, StatusCode: resp.StatusCode}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload errorResponse
	if json.Unmarshal(data, &payload) == nil {
		httpErr.Message = payload.Error
		if httpErr.Message == "" {
			httpErr.Message = payload.Message
		}
	}

	if httpErr.Message == "" {
		httpErr.Message = strings.TrimSpace(string(data))
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrNotFound, httpErr)
	}

	return httpErr
}

// IsNotFound reports whether err came from a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
