package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/internal/core"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(srv.URL, staticToken("test-token"), 2*time.Second, zerolog.Nop())
	return c, srv
}

func writeEnvelope(w http.ResponseWriter, data any, total int) {
	payload := map[string]any{"success": true, "data": data}
	if total > 0 {
		payload["pagination"] = map[string]int{"total": total}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func TestListClients_Live(t *testing.T) {
	clients := []core.Client{
		{ID: 10, RUT: "76.123.456-0", Name: "Comercial Andina SpA", Active: true},
	}
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clients", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		writeEnvelope(w, clients, 57)
	}))

	res := c.ListClients(context.Background())
	require.Equal(t, SourceLive, res.Source)
	assert.Empty(t, res.Reason)
	assert.Equal(t, 57, res.Total)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Comercial Andina SpA", res.Data[0].Name)
}

// A dead backend must yield exactly the built-in sample dataset, flagged as
// such, never an error page.
func TestListClients_NetworkFailureAdoptsFallback(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close() // connection refused from here on
	c := New(srv.URL, staticToken("t"), time.Second, zerolog.Nop())

	res := c.ListClients(context.Background())
	require.Equal(t, SourceFallback, res.Source)
	assert.NotEmpty(t, res.Reason)
	require.Len(t, res.Data, len(fallbackClients))
	for i := range fallbackClients {
		assert.Equal(t, fallbackClients[i], res.Data[i])
	}
}

func TestListEntries_EnvelopeFailureAdoptsFallback(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "ledger service unavailable"})
	}))

	res := c.ListEntries(context.Background())
	require.Equal(t, SourceFallback, res.Source)
	assert.Contains(t, res.Reason, "ledger service unavailable")
	assert.Equal(t, fallbackEntries, res.Data)
}

func TestListNotifications_MalformedJSONAdoptsFallback(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte("<html>gateway timeout</html>"))
	}))

	res := c.ListNotifications(context.Background(), 5)
	require.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, fallbackNotifications, res.Data)
}

func TestCreateEntry_SendsIdempotencyKeyAndSurfacesErrors(t *testing.T) {
	entry := core.LedgerEntry{
		Date:        "2026-08-14",
		Description: "Venta",
		Lines: []core.LedgerLine{
			{Account: "1120", Debit: clp(119000)},
			{Account: "4101", Credit: clp(119000)},
		},
	}

	t.Run("success echoes stored entry", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			var got entryPayload
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, "key-123", got.IdempotencyKey)

			stored := got.LedgerEntry
			stored.ID = 99
			writeEnvelope(w, stored, 0)
		}))

		out, err := c.CreateEntry(context.Background(), entry, "key-123")
		require.NoError(t, err)
		assert.Equal(t, 99, out.ID)
	})

	t.Run("backend rejection becomes APIError", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "entry is out of balance"})
		}))

		_, err := c.CreateEntry(context.Background(), entry, "key-124")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
		assert.Contains(t, apiErr.Message, "out of balance")
	})
}

func TestChangeOrderStatus(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/purchase-orders/18/status", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "approved", body["status"])
		writeEnvelope(w, core.PurchaseOrder{ID: 18, Status: core.StatusApproved}, 0)
	}))

	out, err := c.ChangeOrderStatus(context.Background(), 18, core.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, core.StatusApproved, out.Status)
}

// Each fetch gets a strictly increasing generation so state holders can
// discard resolutions that lost the race to a newer request.
func TestGenerationsAreMonotonic(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, []core.Client{}, 0)
	}))

	first := c.ListClients(context.Background())
	second := c.ListClients(context.Background())
	third := c.ListInvoices(context.Background())
	assert.Less(t, first.Generation, second.Generation)
	assert.Less(t, second.Generation, third.Generation)
}

func TestDownloadOrderPDF(t *testing.T) {
	t.Run("saves pdf body", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/purchase-orders/18/pdf", r.URL.Path)
			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte("%PDF-1.7 fake"))
		}))

		dir := t.TempDir()
		path, err := c.DownloadOrderPDF(context.Background(), 18, dir)
		require.NoError(t, err)
		body, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.7 fake", string(body))
	})

	t.Run("rejects non-pdf content type", func(t *testing.T) {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html>login required</html>"))
		}))

		_, err := c.DownloadOrderPDF(context.Background(), 18, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "application/pdf")
	})
}

func TestValidateRUT_LocalCheckShortCircuits(t *testing.T) {
	called := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		writeEnvelope(w, core.RUTValidation{RUT: "76123456-0", Valid: true}, 0)
	}))

	// Bad check digit never reaches the backend.
	out, err := c.ValidateRUT(context.Background(), "76.123.456-1")
	require.NoError(t, err)
	assert.False(t, out.Valid)
	assert.False(t, called)

	// Good check digit is confirmed by the SII integration.
	out, err = c.ValidateRUT(context.Background(), "76.123.456-0")
	require.NoError(t, err)
	assert.True(t, out.Valid)
	assert.True(t, called)
}
