package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/reprise/internal/model"
)

func newTestHTTPStore(t *testing.T, handler http.HandlerFunc) *HTTPStore {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := NewHTTPStore(ClientConfig{BaseURL: server.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)

	return store
}

func TestNewHTTPStore_RejectsBadBaseURL(t *testing.T) {
	_, err := NewHTTPStore(ClientConfig{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	_, err = NewHTTPStore(ClientConfig{BaseURL: "://"})
	assert.Error(t, err)
}

func TestHTTPStore_ListMotifs(t *testing.T) {
	store := newTestHTTPStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/motifs", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("page_size"))

		_, _ = io.WriteString(w, `{
			"motifs": [{
				"uuid": "m-1",
				"content": "The quick brown fox",
				"citation": "Aesop",
				"created_at": "2024-01-01T00:00:00",
				"cloze_deletions": [{"uuid": "cd-1", "mask_tuples": [[4, 8]]}]
			}],
			"total_count": 6
		}`)
	})

	page, err := store.ListMotifs(context.Background(), 2, 5)
	require.NoError(t, err)

	assert.Equal(t, 6, page.TotalCount)
	require.Len(t, page.Motifs, 1)
	assert.Equal(t, "Aesop", page.Motifs[0].Citation)
	assert.Equal(t, m.IntervalSet{{Start: 4, End: 8}}, page.Motifs[0].ClozeDeletions[0].MaskTuples)
}

func TestHTTPStore_CreateClozeDeletion_SendsMotifUUIDAndTuples(t *testing.T) {
	store := newTestHTTPStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cloze_deletions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "m-1", body["motif_uuid"])
		assert.Equal(t, []any{[]any{0.0, 2.0}, []any{10.0, 11.0}}, body["mask_tuples"])
		assert.NotContains(t, body, "uuid")

		_, _ = io.WriteString(w, `{"uuid": "cd-9", "mask_tuples": [[0, 2], [10, 11]]}`)
	})

	cd, err := store.CreateClozeDeletion(context.Background(), "m-1", m.IntervalSet{{Start: 0, End: 2}, {Start: 10, End: 11}})
	require.NoError(t, err)

	assert.Equal(t, "cd-9", cd.UUID)
	assert.Equal(t, "m-1", cd.MotifUUID)
}

func TestHTTPStore_UpdateClozeDeletion_SendsUUID(t *testing.T) {
	store := newTestHTTPStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/cloze_deletions", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cd-1", body["uuid"])
		assert.NotContains(t, body, "motif_uuid")

		_, _ = io.WriteString(w, `{"uuid": "cd-1", "mask_tuples": [[3, 3]]}`)
	})

	cd, err := store.UpdateClozeDeletion(context.Background(), "cd-1", m.IntervalSet{{Start: 3, End: 3}})
	require.NoError(t, err)

	assert.Equal(t, m.IntervalSet{{Start: 3, End: 3}}, cd.MaskTuples)
}

func TestHTTPStore_DeleteClozeDeletion(t *testing.T) {
	called := false
	store := newTestHTTPStore(t, func(w http.ResponseWriter, r *http.Request) {
		called = true

		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/cloze_deletions/cd-1", r.URL.Path)

		_, _ = io.WriteString(w, `{"message": "deleted"}`)
	})

	require.NoError(t, store.DeleteClozeDeletion(context.Background(), "cd-1"))
	assert.True(t, called)
}

func TestHTTPStore_UpdateMotif(t *testing.T) {
	store := newTestHTTPStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/motifs/m-1", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"content": "Know thyself"}, body, "empty citation is left out")

		_, _ = io.WriteString(w, `{
			"uuid": "m-1",
			"content": "Know thyself",
			"citation": "Delphi",
			"cloze_deletions": [{"uuid": "cd-1", "mask_tuples": [[5, 11]]}]
		}`)
	})

	motif, err := store.UpdateMotif(context.Background(), "m-1", "Know thyself", "")
	require.NoError(t, err)

	assert.Equal(t, "Delphi", motif.Citation)
	require.Len(t, motif.ClozeDeletions, 1)
	assert.Equal(t, m.IntervalSet{{Start: 5, End: 11}}, motif.ClozeDeletions[0].MaskTuples)
}

func TestHTTPStore_DeleteMotif(t *testing.T) {
	called := false
	store := newTestHTTPStore(t, func(w http.ResponseWriter, r *http.Request) {
		called = true

		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/motifs/m-1", r.URL.Path)

		_, _ = io.WriteString(w, `{"message": "deleted"}`)
	})

	require.NoError(t, store.DeleteMotif(context.Background(), "m-1"))
	assert.True(t, called)
}

func TestHTTPStore_EscapesPathSegmentsOnce(t *testing.T) {
	store := newTestHTTPStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/motifs/a%25b%2Fc", r.RequestURI)
		assert.Equal(t, "/motifs/a%b/c", r.URL.Path)

		_, _ = io.WriteString(w, `{"uuid": "a%b/c", "content": "abc"}`)
	})

	motif, err := store.GetMotif(context.Background(), "a%b/c")
	require.NoError(t, err)
	assert.Equal(t, "abc", motif.Content)
}

func TestHTTPStore_Reprise(t *testing.T) {
	store := newTestHTTPStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reprise", r.URL.Path)

		_, _ = io.WriteString(w, `[{"uuid": "m-1", "content": "abc", "cloze_deletions": [{"uuid": "cd-1", "mask_tuples": [[1, 1]]}]}]`)
	})

	motifs, err := store.Reprise(context.Background())
	require.NoError(t, err)

	require.Len(t, motifs, 1)
	assert.Equal(t, "abc", motifs[0].Content)
}

func TestHTTPStore_Citations(t *testing.T) {
	store := newTestHTTPStore(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = io.WriteString(w, `{"citations": [{"uuid": "c-1", "title": "Meditations"}]}`)
		case http.MethodPost:
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Ethics", body["title"])

			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"uuid": "c-2", "title": "Ethics"}`)
		}
	})

	citations, err := store.ListCitations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []m.Citation{{UUID: "c-1", Title: "Meditations"}}, citations)

	citation, err := store.AddCitation(context.Background(), "Ethics")
	require.NoError(t, err)
	assert.Equal(t, "c-2", citation.UUID)
}

func TestHTTPStore_ErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		message  string
		notFound bool
	}{
		{"json error field", http.StatusBadRequest, `{"error": "mask_tuples invalid"}`, "mask_tuples invalid", false},
		{"plain text body", http.StatusInternalServerError, "kaboom", "kaboom", false},
		{"not found", http.StatusNotFound, `{"error": "no such motif"}`, "no such motif", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestHTTPStore(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := store.GetMotif(context.Background(), "m-1")
			require.Error(t, err)

			var httpErr *HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.message, httpErr.Message)
			assert.Equal(t, "/motifs/m-1", httpErr.Path)
			assert.Equal(t, tt.notFound, IsNotFound(err))
		})
	}
}

func TestHTTPStore_HonoursContextCancellation(t *testing.T) {
	release := make(chan struct{})
	store := newTestHTTPStore(t, func(w http.ResponseWriter, _ *http.Request) {
		<-release
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := store.Reprise(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPStore_KeepsBasePath(t *testing.T) {
	store := newTestHTTPStore(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/api/citations", r.URL.Path)
			_, _ = io.WriteString(w, `{"citations": []}`)
		case http.MethodDelete:
			assert.Equal(t, "/api/motifs/m%201", r.RequestURI)
			_, _ = io.WriteString(w, `{"message": "deleted"}`)
		}
	})

	store.baseURL.Path = "/api/"

	_, err := store.ListCitations(context.Background())
	require.NoError(t, err)

	require.NoError(t, store.DeleteMotif(context.Background(), "m 1"))
}
