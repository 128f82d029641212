package handler

import (
	"github.com/rajifPy/kantin-stok/internal/model"
	"github.com/rajifPy/kantin-stok/internal/repository"
	"github.com/rajifPy/kantin-stok/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.CatalogService
}

func NewProductHandler(s service.CatalogService) *ProductHandler {
	return &ProductHandler{service: s}
}

// AdjustStockRequest adalah body PATCH /products/:id
type AdjustStockRequest struct {
	Action string `json:"action"`
	Jumlah int    `json:"jumlah"`
}

// GetProducts lists the catalog.
// Query params: search, kategori, lowStock
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Search:   c.Query("search"),
		Kategori: c.Query("kategori"),
		LowStock: c.Query("lowStock") == "true",
	}

	products, err := h.service.GetProducts(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"data": products, "count": len(products)})
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"data": product})
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return c.Status(statusForError(err, 400)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"data": product, "message": "Produk berhasil ditambahkan"})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var input service.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, err := h.service.UpdateProduct(id, &input)
	if err != nil {
		return c.Status(statusForError(err, 400)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"data": product, "message": "Produk berhasil diupdate"})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return c.Status(statusForError(err, 500)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Produk berhasil dihapus"})
}

// AdjustStock menangani koreksi stok manual dari halaman katalog
// (bukan penjualan; penjualan lewat POST /transactions).
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Action == "" || req.Jumlah == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
	}

	product, err := h.service.AdjustStock(id, req.Action, req.Jumlah)
	if err != nil {
		return c.Status(statusForError(err, 500)).JSON(fiber.Map{"error": err.Error()})
	}

	message := "Stok berhasil ditambah"
	if req.Action == service.StockActionReduce {
		message = "Stok berhasil dikurangi"
	}

	return c.JSON(fiber.Map{"data": product, "message": message})
}
