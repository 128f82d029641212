package handler

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"github.com/rajifPy/kantin-stok/internal/service"
	pkgbarcode "github.com/rajifPy/kantin-stok/pkg/barcode"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/gofiber/fiber/v2"
)

type BarcodeHandler struct {
	service service.CatalogService
}

func NewBarcodeHandler(s service.CatalogService) *BarcodeHandler {
	return &BarcodeHandler{service: s}
}

// GenerateRequest adalah body POST /barcode/generate
type GenerateRequest struct {
	BarcodeID string `json:"barcode_id"`
}

// Scan memvalidasi barcode hasil scan dan mengembalikan produknya.
// POST /barcode/scan
func (h *BarcodeHandler) Scan(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	return h.scan(c, req.BarcodeID)
}

// ScanQuery adalah varian GET dengan ?barcode_id=
func (h *BarcodeHandler) ScanQuery(c *fiber.Ctx) error {
	return h.scan(c, c.Query("barcode_id"))
}

func (h *BarcodeHandler) scan(c *fiber.Ctx, barcodeID string) error {
	if barcodeID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Barcode ID required"})
	}

	result, err := h.service.ScanBarcode(barcodeID)
	if err != nil {
		return c.Status(statusForError(err, 500)).JSON(fiber.Map{
			"error":      err.Error(),
			"barcode_id": barcodeID,
			"found":      false,
		})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"found":        true,
		"product":      result.Product,
		"barcode_type": result.BarcodeType,
		"stock_status": result.StockStatus,
	})
}

// Generate merender barcode CODE128 sebagai PNG data URL untuk
// dicetak jadi label produk.
// POST /barcode/generate
func (h *BarcodeHandler) Generate(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	return h.generate(c, req.BarcodeID)
}

// GenerateQuery adalah varian GET dengan ?barcode_id=
func (h *BarcodeHandler) GenerateQuery(c *fiber.Ctx) error {
	return h.generate(c, c.Query("barcode_id"))
}

func (h *BarcodeHandler) generate(c *fiber.Ctx, barcodeID string) error {
	if barcodeID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Barcode ID required"})
	}

	sanitized := pkgbarcode.Sanitize(barcodeID)
	if !pkgbarcode.ValidateFormat(sanitized) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid barcode format"})
	}

	encoded, err := code128.Encode(sanitized)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to encode barcode"})
	}

	scaled, err := barcode.Scale(encoded, 300, 100)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render barcode"})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render barcode"})
	}

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	return c.JSON(fiber.Map{
		"success":     true,
		"barcode_id":  sanitized,
		"barcode_url": dataURL,
		"format":      "png",
		"display":     pkgbarcode.FormatDisplay(sanitized),
	})
}

// NewID membuat kandidat barcode ID yang belum terpakai untuk
// form tambah produk.
// GET /barcode/new-id
func (h *BarcodeHandler) NewID(c *fiber.Ctx) error {
	id, err := h.service.GenerateBarcodeID()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"barcode_id": id})
}
