package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelechimadu/invoice-tally/constants"
	"github.com/kelechimadu/invoice-tally/internal/auth"
	"github.com/kelechimadu/invoice-tally/internal/batch"
	"github.com/kelechimadu/invoice-tally/internal/common"
	"github.com/kelechimadu/invoice-tally/internal/entity"
	"github.com/kelechimadu/invoice-tally/internal/repository"
	"github.com/kelechimadu/invoice-tally/internal/vision"
)

// fakeVerifier maps tokens straight to user IDs.
type fakeVerifier struct {
	tokens map[string]string
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (auth.Identity, error) {
	if uid, ok := f.tokens[token]; ok {
		return auth.Identity{UserID: uid}, nil
	}
	return auth.Identity{}, common.NewAppError("UNAUTHORIZED", "bad token", common.ErrUnauthorized)
}

// fakeExtractor returns canned results per filename.
type fakeExtractor struct {
	results map[string]vision.Result
	errs    map[string]error
}

func (f *fakeExtractor) Extract(_ context.Context, _ []byte, filename string) (vision.Result, error) {
	if err, ok := f.errs[filename]; ok {
		return vision.Result{}, err
	}
	res := f.results[filename]
	res.Filename = filename
	return res, nil
}

// memBatchRepo is an in-memory stand-in for the Ent-backed repository.
type memBatchRepo struct {
	batches  map[uuid.UUID]*entity.Batch
	invoices map[uuid.UUID]*entity.Invoice
}

func newMemRepo() *memBatchRepo {
	return &memBatchRepo{
		batches:  map[uuid.UUID]*entity.Batch{},
		invoices: map[uuid.UUID]*entity.Invoice{},
	}
}

func (m *memBatchRepo) CreateBatch(_ context.Context, req *repository.CreateBatchRequest) (*entity.Batch, []*entity.Invoice, error) {
	b := &entity.Batch{
		ID:             uuid.New(),
		UserID:         req.UserID,
		Name:           req.Name,
		TotalParts:     req.Summary.TotalParts,
		TotalLabor:     req.Summary.TotalLabor,
		TotalTax:       req.Summary.TotalTax,
		TotalInvoices:  req.Summary.TotalInvoices,
		FlaggedCount:   req.Summary.FlaggedCount,
		ProcessedCount: req.Summary.ProcessedCount,
	}
	m.batches[b.ID] = b

	out := make([]*entity.Invoice, 0, len(req.Rows))
	for _, row := range req.Rows {
		inv := &entity.Invoice{
			ID:         uuid.New(),
			BatchID:    b.ID,
			UserID:     req.UserID,
			Filename:   row.Filename,
			Parts:      row.Parts,
			Labor:      row.Labor,
			Flagged:    row.Flagged,
			Confidence: string(row.Confidence),
			RawText:    row.RawText,
		}
		inv.SetTax(row.Tax)
		if row.Error != "" {
			msg := row.Error
			inv.ErrorMessage = &msg
		}
		m.invoices[inv.ID] = inv
		out = append(out, inv)
	}
	return b, out, nil
}

func (m *memBatchRepo) ListBatches(_ context.Context, userID string) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range m.batches {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBatchRepo) GetBatch(_ context.Context, userID string, id uuid.UUID) (*entity.Batch, []*entity.Invoice, error) {
	b, ok := m.batches[id]
	if !ok || b.UserID != userID {
		return nil, nil, common.NewAppError("NOT_FOUND", "batch not found", common.ErrNotFound)
	}
	var invs []*entity.Invoice
	for _, inv := range m.invoices {
		if inv.BatchID == id {
			invs = append(invs, inv)
		}
	}
	return b, invs, nil
}

func (m *memBatchRepo) DeleteBatch(_ context.Context, userID string, id uuid.UUID) error {
	b, ok := m.batches[id]
	if !ok || b.UserID != userID {
		return common.NewAppError("NOT_FOUND", "batch not found", common.ErrNotFound)
	}
	delete(m.batches, id)
	for iid, inv := range m.invoices {
		if inv.BatchID == id {
			delete(m.invoices, iid)
		}
	}
	return nil
}

func (m *memBatchRepo) GetInvoice(_ context.Context, userID string, id uuid.UUID) (*entity.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok || inv.UserID != userID {
		return nil, common.NewAppError("NOT_FOUND", "invoice not found", common.ErrNotFound)
	}
	return inv, nil
}

func (m *memBatchRepo) UpdateInvoice(_ context.Context, userID string, id uuid.UUID, req *repository.UpdateInvoiceRequest) (*entity.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok || inv.UserID != userID {
		return nil, common.NewAppError("NOT_FOUND", "invoice not found", common.ErrNotFound)
	}
	if req.Parts != nil {
		inv.Parts = *req.Parts
	}
	if req.Labor != nil {
		inv.Labor = *req.Labor
	}
	if req.Tax != nil {
		inv.SetTax(*req.Tax)
	}
	inv.Flagged = inv.Tax().RequiresReview()
	return inv, nil
}

type fakeExporter struct {
	data []byte
}

func (f *fakeExporter) ExportBatchXLSX(_ context.Context, _ string, _ uuid.UUID) ([]byte, error) {
	return f.data, nil
}

func buildApp(t *testing.T, extractor vision.Extractor) (*fiber.App, *memBatchRepo) {
	t.Helper()
	repo := newMemRepo()
	processor := batch.NewAggregator(extractor, slog.Default())
	handler := NewHandler(repo, repo, processor, &fakeExporter{data: []byte("xlsx-bytes")}, nil, 10, slog.Default())
	verifier := &fakeVerifier{tokens: map[string]string{
		"tok-alice": "alice",
		"tok-bob":   "bob",
	}}
	app, err := New(Deps{
		Handler:     handler,
		Verifier:    verifier,
		Logger:      slog.Default(),
		MaxUploadMB: 10,
	})
	require.NoError(t, err)
	return app, repo
}

func multipartBody(t *testing.T, files map[string][]byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, data := range files {
		fw, err := w.CreateFormFile("invoices", name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCreateBatchEndToEnd(t *testing.T) {
	extractor := &fakeExtractor{
		results: map[string]vision.Result{
			"ok.jpg": {Parts: 100.25, Labor: 50, Tax: vision.NumericTax(0), Confidence: constants.ConfidenceHigh},
			"na.jpg": {Parts: 60, Tax: vision.TextualTax("N/A"), Flagged: true, Confidence: constants.ConfidenceMedium},
		},
	}
	app, _ := buildApp(t, extractor)

	body, ct := multipartBody(t, map[string][]byte{
		"ok.jpg": []byte("img-a"),
		"na.jpg": []byte("img-b"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/batches", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer tok-alice")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Batch    entity.Batch      `json:"batch"`
		Invoices []*entity.Invoice `json:"invoices"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.Batch.TotalInvoices)
	assert.Equal(t, 1, out.Batch.FlaggedCount)
	assert.Equal(t, 100.25, out.Batch.TotalParts)
	assert.Equal(t, 50.0, out.Batch.TotalLabor)
	require.Len(t, out.Invoices, 2)
}

func TestCreateBatchRejectsUnsupportedType(t *testing.T) {
	app, _ := buildApp(t, &fakeExtractor{})

	body, ct := multipartBody(t, map[string][]byte{"notes.txt": []byte("text")})
	req := httptest.NewRequest(http.MethodPost, "/api/batches", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer tok-alice")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPIRequiresBearerToken(t *testing.T) {
	app, _ := buildApp(t, &fakeExtractor{})

	req := httptest.NewRequest(http.MethodGet, "/api/batches", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/batches", nil)
	req.Header.Set("Authorization", "Bearer unknown")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetBatchScopedToOwner(t *testing.T) {
	app, repo := buildApp(t, &fakeExtractor{})
	b, _, err := repo.CreateBatch(context.Background(), &repository.CreateBatchRequest{UserID: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/batches/"+b.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer tok-bob")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/batches/"+b.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer tok-alice")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateInvoiceRecomputesFlag(t *testing.T) {
	app, repo := buildApp(t, &fakeExtractor{})
	_, invoices, err := repo.CreateBatch(context.Background(), &repository.CreateBatchRequest{
		UserID: "alice",
		Rows: []batch.Row{
			{Filename: "a.jpg", Parts: 10, Tax: vision.TextualTax("N/A"), Flagged: true, Confidence: constants.ConfidenceMedium},
		},
	})
	require.NoError(t, err)
	invID := invoices[0].ID

	patch := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPatch, "/api/invoices/"+invID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok-alice")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	resp := patch(`{"tax": 0}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var inv entity.Invoice
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&inv))
	assert.False(t, inv.Flagged, "numeric zero tax clears the flag")

	resp = patch(`{"tax": "Included"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&inv))
	assert.True(t, inv.Flagged, "textual tax re-raises the flag")

	resp = patch(`{"parts": -5}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = patch(`{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExportBatchSetsDownloadHeaders(t *testing.T) {
	app, repo := buildApp(t, &fakeExtractor{})
	b, _, err := repo.CreateBatch(context.Background(), &repository.CreateBatchRequest{UserID: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/batches/"+b.ID.String()+"/export", nil)
	req.Header.Set("Authorization", "Bearer tok-alice")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "xlsx-bytes", string(data))
}

func TestHealthzAndRequestID(t *testing.T) {
	app, _ := buildApp(t, &fakeExtractor{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
