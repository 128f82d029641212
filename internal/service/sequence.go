package service

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	transaksiIDPrefix = "TRX"
	firstTransaksiID  = "TRX00001"
)

// nextTransaksiID menurunkan nomor transaksi berikutnya dari yang terakhir
// tersimpan: TRX00042 -> TRX00043. Lewat TRX99999 lebarnya ikut bertambah
// (TRX100000), parsing tetap jalan karena prefix-nya yang dibuang, bukan
// lebar digitnya.
func nextTransaksiID(last string) (string, error) {
	if last == "" {
		return firstTransaksiID, nil
	}

	num, err := strconv.Atoi(strings.TrimPrefix(last, transaksiIDPrefix))
	if err != nil {
		return "", fmt.Errorf("transaksi_id terakhir tidak valid: %q", last)
	}

	return fmt.Sprintf("%s%05d", transaksiIDPrefix, num+1), nil
}
