package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kelechimadu/invoice-tally/constants"
	"github.com/kelechimadu/invoice-tally/internal/batch"
	"github.com/kelechimadu/invoice-tally/internal/entity"
	"github.com/kelechimadu/invoice-tally/internal/repository"
	"github.com/kelechimadu/invoice-tally/internal/storage"
	"github.com/kelechimadu/invoice-tally/internal/vision"
)

// Processor runs the extraction pipeline over a batch of images.
type Processor interface {
	Process(ctx context.Context, images []batch.Image) ([]batch.Row, batch.Summary)
}

// Exporter renders one batch as an XLSX workbook.
type Exporter interface {
	ExportBatchXLSX(ctx context.Context, userID string, batchID uuid.UUID) ([]byte, error)
}

// Pinger is the health-check slice of the connection pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler owns the API routes.
type Handler struct {
	batches     repository.BatchRepository
	invoices    repository.InvoiceRepository
	processor   Processor
	exporter    Exporter
	store       storage.Storage // nil disables original-image retention
	maxUploadMB int
	logger      *slog.Logger
}

func NewHandler(
	batches repository.BatchRepository,
	invoices repository.InvoiceRepository,
	processor Processor,
	exporter Exporter,
	store storage.Storage,
	maxUploadMB int,
	logger *slog.Logger,
) *Handler {
	if maxUploadMB <= 0 {
		maxUploadMB = constants.MaxUploadMBDefault
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		batches:     batches,
		invoices:    invoices,
		processor:   processor,
		exporter:    exporter,
		store:       store,
		maxUploadMB: maxUploadMB,
		logger:      logger,
	}
}

type batchResponse struct {
	Batch    *entity.Batch     `json:"batch"`
	Invoices []*entity.Invoice `json:"invoices"`
}

// CreateBatch handles the multipart upload: every file under the "invoices"
// field is extracted in order, the batch is persisted with its summary, and
// the full result comes back in one response.
func (h *Handler) CreateBatch(c *fiber.Ctx) error {
	userID := userIDFromCtx(c)

	form, err := c.MultipartForm()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "multipart form required")
	}
	files := form.File["invoices"]
	if len(files) == 0 {
		return writeError(c, fiber.StatusBadRequest, "FILES_REQUIRED", "at least one invoice image is required")
	}

	maxBytes := int64(h.maxUploadMB) << 20
	images := make([]batch.Image, 0, len(files))
	for _, fh := range files {
		if !constants.IsAllowedExt(fh.Filename) {
			return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_TYPE",
				fmt.Sprintf("%s: unsupported file type", fh.Filename))
		}
		if fh.Size > maxBytes {
			return writeError(c, fiber.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
				fmt.Sprintf("%s: exceeds %d MB limit", fh.Filename, h.maxUploadMB))
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read uploaded file")
		}
		images = append(images, batch.Image{Data: data, Filename: fh.Filename})
	}

	rows, summary := h.processor.Process(c.UserContext(), images)

	storageKeys := h.retainOriginals(c.UserContext(), userID, images)

	b, invoices, err := h.batches.CreateBatch(c.UserContext(), &repository.CreateBatchRequest{
		UserID:      userID,
		Name:        c.FormValue("name"),
		Rows:        rows,
		Summary:     summary,
		StorageKeys: storageKeys,
	})
	if err != nil {
		return writeAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(batchResponse{Batch: b, Invoices: invoices})
}

// retainOriginals uploads the source images when storage is configured.
// Retention is best effort: a storage outage never fails the batch.
func (h *Handler) retainOriginals(ctx context.Context, userID string, images []batch.Image) map[string]string {
	if h.store == nil {
		return nil
	}
	session := uuid.New()
	keys := make(map[string]string, len(images))
	for _, img := range images {
		key := storage.ObjectKey(userID, session, img.Filename)
		_, err := h.store.Put(ctx, key, bytes.NewReader(img.Data), storage.PutOptions{
			Size:        int64(len(img.Data)),
			ContentType: "application/octet-stream",
		})
		if err != nil {
			h.logger.Warn("storage.put.failed", "filename", img.Filename, "error", err)
			continue
		}
		keys[img.Filename] = key
	}
	return keys
}

func (h *Handler) ListBatches(c *fiber.Ctx) error {
	batches, err := h.batches.ListBatches(c.UserContext(), userIDFromCtx(c))
	if err != nil {
		return writeAppError(c, err)
	}
	return c.JSON(fiber.Map{"batches": batches})
}

func (h *Handler) GetBatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid batch id")
	}
	b, invoices, err := h.batches.GetBatch(c.UserContext(), userIDFromCtx(c), id)
	if err != nil {
		return writeAppError(c, err)
	}
	return c.JSON(batchResponse{Batch: b, Invoices: invoices})
}

func (h *Handler) DeleteBatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid batch id")
	}
	userID := userIDFromCtx(c)

	if h.store != nil {
		_, invoices, err := h.batches.GetBatch(c.UserContext(), userID, id)
		if err == nil {
			for _, inv := range invoices {
				if inv.StorageKey == nil {
					continue
				}
				if err := h.store.Delete(c.UserContext(), *inv.StorageKey); err != nil {
					h.logger.Warn("storage.delete.failed", "key", *inv.StorageKey, "error", err)
				}
			}
		}
	}

	if err := h.batches.DeleteBatch(c.UserContext(), userID, id); err != nil {
		return writeAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ExportBatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid batch id")
	}
	data, err := h.exporter.ExportBatchXLSX(c.UserContext(), userIDFromCtx(c), id)
	if err != nil {
		return writeAppError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="batch-%s.xlsx"`, id))
	return c.Send(data)
}

type updateInvoicePayload struct {
	Parts *float64         `json:"parts"`
	Labor *float64         `json:"labor"`
	Tax   *vision.TaxValue `json:"tax"`
}

// UpdateInvoice applies a hand-edit to one row. The flagged bit in the
// response reflects the recomputed tax-shape rule, never client input.
func (h *Handler) UpdateInvoice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid invoice id")
	}

	var payload updateInvoicePayload
	if err := c.BodyParser(&payload); err != nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
	}
	if payload.Parts == nil && payload.Labor == nil && payload.Tax == nil {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "no editable fields in request")
	}
	if payload.Parts != nil && *payload.Parts < 0 {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "parts must be non-negative")
	}
	if payload.Labor != nil && *payload.Labor < 0 {
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "labor must be non-negative")
	}

	inv, err := h.invoices.UpdateInvoice(c.UserContext(), userIDFromCtx(c), id, &repository.UpdateInvoiceRequest{
		Parts: payload.Parts,
		Labor: payload.Labor,
		Tax:   payload.Tax,
	})
	if err != nil {
		return writeAppError(c, err)
	}
	return c.JSON(inv)
}

// Health checks DB connectivity; Healthz is the bare liveness probe.
func Health(pinger Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := pinger.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

func Healthz(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}
