package repository

import (
	"github.com/rajifPy/kantin-stok/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter menyaring listing katalog
type ProductFilter struct {
	Search   string
	Kategori string
	LowStock bool
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(filter ProductFilter) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByBarcode(barcodeID string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	AddStock(id uuid.UUID, amount int) (*model.Product, error)
	ReduceStock(id uuid.UUID, amount int) (*model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(filter ProductFilter) ([]model.Product, error) {
	var products []model.Product

	query := r.db.Order("created_at DESC")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("nama_produk ILIKE ? OR barcode_id ILIKE ?", pattern, pattern)
	}
	if filter.Kategori != "" && filter.Kategori != "all" {
		query = query.Where("kategori = ?", filter.Kategori)
	}
	if filter.LowStock {
		query = query.Where("stok < ?", model.LowStockThreshold)
	}

	err := query.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByBarcode(barcodeID string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "barcode_id = ?", barcodeID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddStock menambah stok secara atomik di level statement
func (r *productRepo) AddStock(id uuid.UUID, amount int) (*model.Product, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stok", gorm.Expr("stok + ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// ReduceStock mengurangi stok dengan guard "stok >= amount" di statement
// yang sama, jadi stok tidak pernah bisa negatif walau ada request paralel.
// RowsAffected == 0 berarti stok tidak cukup (atau produk tidak ada).
func (r *productRepo) ReduceStock(id uuid.UUID, amount int) (*model.Product, error) {
	res := r.db.Model(&model.Product{}).
		Where("id = ? AND stok >= ?", id, amount).
		Update("stok", gorm.Expr("stok - ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}
