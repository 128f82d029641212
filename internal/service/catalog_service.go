package service

import (
	"errors"
	"fmt"

	"github.com/rajifPy/kantin-stok/internal/model"
	"github.com/rajifPy/kantin-stok/internal/repository"
	"github.com/rajifPy/kantin-stok/internal/ws"
	"github.com/rajifPy/kantin-stok/pkg/barcode"
	"github.com/rajifPy/kantin-stok/pkg/validator"

	"github.com/google/uuid"
)

// Aksi untuk AdjustStock (PATCH /products/:id)
const (
	StockActionAdd    = "add"
	StockActionReduce = "reduce"
)

// batas percobaan cari barcode ID yang belum terpakai
const maxBarcodeAttempts = 10

// UpdateProductInput adalah partial update katalog. Field nil dibiarkan
// seperti semula.
type UpdateProductInput struct {
	NamaProduk *string         `json:"nama_produk"`
	Kategori   *model.Kategori `json:"kategori"`
	Stok       *int            `json:"stok"`
	HargaModal *int64          `json:"harga_modal"`
	HargaJual  *int64          `json:"harga_jual"`
}

// ScanResult adalah jawaban untuk barcode hasil scan kasir.
type ScanResult struct {
	Product     *model.Product `json:"product"`
	BarcodeType string         `json:"barcode_type"`
	StockStatus StockStatus    `json:"stock_status"`
}

type StockStatus struct {
	IsLowStock   bool   `json:"isLowStock"`
	IsOutOfStock bool   `json:"isOutOfStock"`
	Message      string `json:"message"`
}

type CatalogService interface {
	CreateProduct(req *model.Product) error
	UpdateProduct(id uuid.UUID, input *UpdateProductInput) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetProducts(filter repository.ProductFilter) ([]model.Product, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
	AdjustStock(id uuid.UUID, action string, jumlah int) (*model.Product, error)
	ScanBarcode(barcodeID string) (*ScanResult, error)
	GenerateBarcodeID() (string, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	hub         *ws.Hub
}

func NewCatalogService(productRepo repository.ProductRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		hub:         hub,
	}
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	req.BarcodeID = barcode.Sanitize(req.BarcodeID)

	// 1. Validasi struct dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Invariant harga: jual harus di atas modal
	if req.HargaJual <= req.HargaModal {
		return ErrPriceInvariant
	}

	// 3. Cek duplikasi barcode
	existing, _ := s.productRepo.FindByBarcode(req.BarcodeID)
	if existing != nil {
		return ErrDuplicateBarcode
	}

	// 4. Simpan ke database
	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.hub.PublishStockUpdate("product_created",
		fmt.Sprintf("Produk '%s' ditambahkan", req.NamaProduk), req)
	return nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, input *UpdateProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if input.NamaProduk != nil {
		product.NamaProduk = *input.NamaProduk
	}
	if input.Kategori != nil {
		product.Kategori = *input.Kategori
	}
	if input.Stok != nil {
		product.Stok = *input.Stok
	}
	if input.HargaModal != nil {
		product.HargaModal = *input.HargaModal
	}
	if input.HargaJual != nil {
		product.HargaJual = *input.HargaJual
	}

	// Invariant dicek terhadap hasil merge, bukan cuma field yang dikirim.
	// Partial update satu harga saja tetap tidak boleh membalik margin.
	if product.HargaJual <= product.HargaModal {
		return nil, ErrPriceInvariant
	}
	if product.Stok < 0 {
		return nil, ErrInvalidRequest
	}

	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	s.hub.PublishStockUpdate("product_updated",
		fmt.Sprintf("Produk '%s' diupdate", product.NamaProduk), product)
	return product, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if err := s.productRepo.Delete(id); err != nil {
		return ErrProductNotFound
	}

	s.hub.PublishStockUpdate("product_deleted", "Produk dihapus", map[string]interface{}{"id": id})
	return nil
}

func (s *catalogService) GetProducts(filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindAll(filter)
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *catalogService) AdjustStock(id uuid.UUID, action string, jumlah int) (*model.Product, error) {
	if jumlah <= 0 {
		return nil, ErrInvalidRequest
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	var updated *model.Product
	switch action {
	case StockActionAdd:
		updated, err = s.productRepo.AddStock(id, jumlah)
		if err != nil {
			return nil, ErrStockUpdateFailed
		}
	case StockActionReduce:
		if product.Stok < jumlah {
			return nil, &InsufficientStockError{Available: product.Stok}
		}
		updated, err = s.productRepo.ReduceStock(id, jumlah)
		if err != nil {
			// Guard "stok >= jumlah" di statement update gagal: ada
			// request lain yang keburu mengurangi stok.
			return nil, &InsufficientStockError{Available: product.Stok}
		}
	default:
		return nil, ErrInvalidAction
	}

	s.hub.PublishStockUpdate("stock_adjusted",
		fmt.Sprintf("Stok '%s' sekarang %d", updated.NamaProduk, updated.Stok), updated)
	return updated, nil
}

func (s *catalogService) ScanBarcode(barcodeID string) (*ScanResult, error) {
	sanitized := barcode.Sanitize(barcodeID)
	if sanitized == "" {
		return nil, ErrInvalidRequest
	}

	product, err := s.productRepo.FindByBarcode(sanitized)
	if err != nil {
		return nil, ErrProductNotFound
	}

	status := StockStatus{
		IsLowStock:   product.IsLowStock(),
		IsOutOfStock: product.Stok == 0,
	}
	switch {
	case status.IsOutOfStock:
		status.Message = "Stok habis"
	case status.IsLowStock:
		status.Message = "Stok menipis"
	default:
		status.Message = "Stok tersedia"
	}

	return &ScanResult{
		Product:     product,
		BarcodeType: barcode.DetectType(sanitized),
		StockStatus: status,
	}, nil
}

// GenerateBarcodeID mencari ID acak yang belum dipakai. Generator cuma
// punya 9999 kombinasi, jadi uniqueness tetap dijaga unique index di
// database; ini sekadar menghindari tabrakan yang gampang dihindari.
func (s *catalogService) GenerateBarcodeID() (string, error) {
	for i := 0; i < maxBarcodeAttempts; i++ {
		id := barcode.GenerateID()
		if existing, _ := s.productRepo.FindByBarcode(id); existing == nil {
			return id, nil
		}
	}
	return "", errors.New("Gagal membuat barcode ID unik, coba lagi")
}
