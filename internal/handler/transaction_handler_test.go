package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/rajifPy/kantin-stok/internal/model"
	"github.com/rajifPy/kantin-stok/internal/repository"
	"github.com/rajifPy/kantin-stok/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCheckoutService lets each test script the service responses.
type stubCheckoutService struct {
	checkout     func(barcodeID string, jumlah int) (*service.CheckoutResult, error)
	cart         func(items []service.CartItem) ([]service.CheckoutResult, error)
	transactions []model.Transaction
	lastFilter   repository.TransactionFilter
}

func (s *stubCheckoutService) Checkout(barcodeID string, jumlah int) (*service.CheckoutResult, error) {
	return s.checkout(barcodeID, jumlah)
}

func (s *stubCheckoutService) CheckoutCart(items []service.CartItem) ([]service.CheckoutResult, error) {
	return s.cart(items)
}

func (s *stubCheckoutService) GetTransactions(filter repository.TransactionFilter) ([]model.Transaction, error) {
	s.lastFilter = filter
	return s.transactions, nil
}

func (s *stubCheckoutService) GetTransaction(id uuid.UUID) (*model.Transaction, error) {
	return nil, service.ErrTransactionNotFound
}

func newTransactionApp(stub *stubCheckoutService) *fiber.App {
	app := fiber.New()
	h := NewTransactionHandler(stub)
	app.Post("/transactions", h.CreateTransaction)
	app.Post("/transactions/cart", h.CheckoutCart)
	app.Get("/transactions", h.GetTransactions)
	app.Get("/transactions/:id", h.GetTransaction)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	return doJSON(t, app, "POST", path, body)
}

func postPatch(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	return doJSON(t, app, "PATCH", path, body)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestCreateTransactionSuccess(t *testing.T) {
	stub := &stubCheckoutService{
		checkout: func(barcodeID string, jumlah int) (*service.CheckoutResult, error) {
			require.Equal(t, "BRK0001", barcodeID)
			require.Equal(t, 2, jumlah)
			return &service.CheckoutResult{
				Transaction: &model.Transaction{
					TransaksiID: "TRX00001",
					BarcodeID:   barcodeID,
					NamaProduk:  "Teh Botol",
					Jumlah:      jumlah,
					HargaSatuan: 1500,
					TotalHarga:  3000,
					Keuntungan:  1000,
				},
				StockRemaining: 3,
			}, nil
		},
	}
	app := newTransactionApp(stub)

	status, body := postJSON(t, app, "/transactions", fiber.Map{"barcode_id": "BRK0001", "jumlah": 2})

	assert.Equal(t, 201, status)
	assert.Equal(t, "Transaksi berhasil", body["message"])
	assert.Equal(t, float64(3), body["stock_remaining"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "TRX00001", data["transaksi_id"])
	assert.Equal(t, float64(3000), data["total_harga"])
	assert.Equal(t, float64(1000), data["keuntungan"])
}

func TestCreateTransactionRejectsBadInput(t *testing.T) {
	stub := &stubCheckoutService{
		checkout: func(string, int) (*service.CheckoutResult, error) {
			t.Fatal("service should not be called for invalid input")
			return nil, nil
		},
	}
	app := newTransactionApp(stub)

	status, body := postJSON(t, app, "/transactions", fiber.Map{"barcode_id": "BRK0001", "jumlah": 0})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Invalid request data", body["error"])

	status, _ = postJSON(t, app, "/transactions", fiber.Map{"jumlah": 2})
	assert.Equal(t, 400, status)
}

func TestCreateTransactionErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"product not found", service.ErrProductNotFound, 404},
		{"insufficient stock", &service.InsufficientStockError{Available: 1}, 400},
		{"stock update failed", service.ErrStockUpdateFailed, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubCheckoutService{
				checkout: func(string, int) (*service.CheckoutResult, error) {
					return nil, tc.err
				},
			}
			app := newTransactionApp(stub)

			status, body := postJSON(t, app, "/transactions", fiber.Map{"barcode_id": "BRK0001", "jumlah": 2})
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.err.Error(), body["error"])
		})
	}
}

func TestCreateTransactionInsufficientStockMessage(t *testing.T) {
	stub := &stubCheckoutService{
		checkout: func(string, int) (*service.CheckoutResult, error) {
			return nil, &service.InsufficientStockError{Available: 1}
		},
	}
	app := newTransactionApp(stub)

	status, body := postJSON(t, app, "/transactions", fiber.Map{"barcode_id": "BRK0001", "jumlah": 2})
	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "Stok tersedia: 1")
}

func TestCheckoutCart(t *testing.T) {
	stub := &stubCheckoutService{
		cart: func(items []service.CartItem) ([]service.CheckoutResult, error) {
			require.Len(t, items, 2)
			results := make([]service.CheckoutResult, len(items))
			for i, item := range items {
				results[i] = service.CheckoutResult{
					Transaction:    &model.Transaction{BarcodeID: item.BarcodeID, Jumlah: item.Jumlah},
					StockRemaining: 10 - item.Jumlah,
				}
			}
			return results, nil
		},
	}
	app := newTransactionApp(stub)

	status, body := postJSON(t, app, "/transactions/cart", fiber.Map{
		"items": []fiber.Map{
			{"barcode_id": "BRK0001", "jumlah": 2},
			{"barcode_id": "BRK0002", "jumlah": 1},
		},
	})

	assert.Equal(t, 201, status)
	assert.Equal(t, float64(2), body["count"])
}

func TestCheckoutCartLineFailure(t *testing.T) {
	stub := &stubCheckoutService{
		cart: func(items []service.CartItem) ([]service.CheckoutResult, error) {
			return nil, &service.CartLineError{Index: 1, Err: &service.InsufficientStockError{Available: 0}}
		},
	}
	app := newTransactionApp(stub)

	status, body := postJSON(t, app, "/transactions/cart", fiber.Map{
		"items": []fiber.Map{
			{"barcode_id": "BRK0001", "jumlah": 2},
			{"barcode_id": "BRK0002", "jumlah": 1},
		},
	})

	assert.Equal(t, 400, status)
	assert.Contains(t, body["error"], "item ke-2")
}

func TestCheckoutCartEmpty(t *testing.T) {
	stub := &stubCheckoutService{
		cart: func([]service.CartItem) ([]service.CheckoutResult, error) {
			t.Fatal("service should not be called for empty cart")
			return nil, nil
		},
	}
	app := newTransactionApp(stub)

	status, _ := postJSON(t, app, "/transactions/cart", fiber.Map{"items": []fiber.Map{}})
	assert.Equal(t, 400, status)
}

func TestGetTransactionsFilters(t *testing.T) {
	stub := &stubCheckoutService{transactions: []model.Transaction{}}
	app := newTransactionApp(stub)

	req := httptest.NewRequest("GET", "/transactions?startDate=2025-03-01&endDate=2025-03-15&limit=50", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	require.NotNil(t, stub.lastFilter.StartDate)
	require.NotNil(t, stub.lastFilter.EndDate)
	assert.Equal(t, 50, stub.lastFilter.Limit)
	assert.Equal(t, 2025, stub.lastFilter.StartDate.Year())

	// tanggal tidak valid ditolak
	req = httptest.NewRequest("GET", "/transactions?startDate=kemarin", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 400, resp.StatusCode)
}
