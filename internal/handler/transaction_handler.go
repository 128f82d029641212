package handler

import (
	"strconv"
	"time"

	"github.com/rajifPy/kantin-stok/internal/repository"
	"github.com/rajifPy/kantin-stok/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	service service.CheckoutService
}

func NewTransactionHandler(s service.CheckoutService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// CheckoutRequest adalah body POST /transactions
type CheckoutRequest struct {
	BarcodeID string `json:"barcode_id"`
	Jumlah    int    `json:"jumlah"`
}

// CartRequest adalah body POST /transactions/cart
type CartRequest struct {
	Items []service.CartItem `json:"items"`
}

// CreateTransaction menjual satu produk hasil scan.
// POST /transactions
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.BarcodeID == "" || req.Jumlah <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": service.ErrInvalidRequest.Error()})
	}

	result, err := h.service.Checkout(req.BarcodeID, req.Jumlah)
	if err != nil {
		return c.Status(statusForError(err, 500)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"data":            result.Transaction,
		"message":         "Transaksi berhasil",
		"stock_remaining": result.StockRemaining,
	})
}

// CheckoutCart menjual seluruh keranjang sekaligus; semua baris
// tersimpan atau tidak sama sekali.
// POST /transactions/cart
func (h *TransactionHandler) CheckoutCart(c *fiber.Ctx) error {
	var req CartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if len(req.Items) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": service.ErrInvalidRequest.Error()})
	}

	results, err := h.service.CheckoutCart(req.Items)
	if err != nil {
		return c.Status(statusForError(err, 500)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"data":    results,
		"message": "Transaksi berhasil",
		"count":   len(results),
	})
}

// GetTransactions lists history, newest first.
// Query params: startDate, endDate (RFC3339 atau YYYY-MM-DD), limit
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	var filter repository.TransactionFilter

	if v := c.Query("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid startDate"})
		}
		filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid endDate"})
		}
		filter.EndDate = &t
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid limit"})
		}
		filter.Limit = limit
	}

	transactions, err := h.service.GetTransactions(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"data": transactions, "count": len(transactions)})
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	trans, err := h.service.GetTransaction(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"data": trans})
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
