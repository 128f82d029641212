package service

import (
	"fmt"
	"time"

	"github.com/rajifPy/kantin-stok/internal/repository"

	"github.com/xuri/excelize/v2"
)

const topProductsLimit = 10

// Stats adalah payload GET /reports/stats, bentuknya mengikuti apa yang
// dikonsumsi halaman laporan dashboard.
type Stats struct {
	Products     *repository.InventorySummary `json:"products"`
	Transactions *repository.SalesSummary     `json:"transactions"`
	Categories   []repository.CategorySummary `json:"categories"`
	TopProducts  []repository.ProductSales    `json:"topProducts"`
	Period       PeriodInfo                   `json:"period"`
}

type PeriodInfo struct {
	Type  string    `json:"type"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

type ReportService interface {
	GetStats(period string) (*Stats, error)
	ExportTransactions(period string) ([]byte, string, error)
}

type reportService struct {
	txRepo repository.TransactionRepository
}

func NewReportService(txRepo repository.TransactionRepository) ReportService {
	return &reportService{txRepo: txRepo}
}

// periodRange menerjemahkan period ke rentang tanggal. Selain "today",
// batas awalnya dipatok ke tengah malam.
func periodRange(period string, now time.Time) (time.Time, time.Time, string) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := midnight.Add(24*time.Hour - time.Nanosecond)

	switch period {
	case "week":
		return midnight.AddDate(0, 0, -7), now, "7 Hari Terakhir"
	case "month":
		return midnight.AddDate(0, -1, 0), now, "30 Hari Terakhir"
	case "year":
		return midnight.AddDate(-1, 0, 0), now, "1 Tahun Terakhir"
	default:
		return midnight, endOfDay, "Hari Ini"
	}
}

func (s *reportService) GetStats(period string) (*Stats, error) {
	start, end, label := periodRange(period, time.Now())

	inventory, err := s.txRepo.GetInventorySummary()
	if err != nil {
		return nil, err
	}

	sales, err := s.txRepo.GetSalesSummary(start, end)
	if err != nil {
		return nil, err
	}

	categories, err := s.txRepo.GetCategorySummary()
	if err != nil {
		return nil, err
	}

	topProducts, err := s.txRepo.GetTopProducts(start, end, topProductsLimit)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Products:     inventory,
		Transactions: sales,
		Categories:   categories,
		TopProducts:  topProducts,
		Period: PeriodInfo{
			Type:  period,
			Start: start,
			End:   end,
			Label: label,
		},
	}, nil
}

// ExportTransactions menulis riwayat transaksi periode tersebut ke
// workbook .xlsx dan mengembalikan isi file plus nama file unduhannya.
func (s *reportService) ExportTransactions(period string) ([]byte, string, error) {
	start, end, label := periodRange(period, time.Now())

	transactions, err := s.txRepo.FindAll(repository.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transaksi"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Transaksi ID", "Tanggal", "Barcode", "Produk", "Jumlah", "Harga Satuan", "Total Harga", "Keuntungan"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	var totalHarga, totalUntung int64
	for row, t := range transactions {
		values := []interface{}{
			t.TransaksiID,
			t.CreatedAt.Format("02 Jan 2006 15:04"),
			t.BarcodeID,
			t.NamaProduk,
			t.Jumlah,
			t.HargaSatuan,
			t.TotalHarga,
			t.Keuntungan,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
		totalHarga += t.TotalHarga
		totalUntung += t.Keuntungan
	}

	// Baris ringkasan di bawah data
	sumRow := len(transactions) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", sumRow), fmt.Sprintf("TOTAL (%s)", label))
	f.SetCellValue(sheet, fmt.Sprintf("G%d", sumRow), totalHarga)
	f.SetCellValue(sheet, fmt.Sprintf("H%d", sumRow), totalUntung)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("laporan_%s_%s.xlsx", period, time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
