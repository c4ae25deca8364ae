// Package export writes order snapshots to files for offline use.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/timeutil"
)

var csvHeader = []string{
	"id", "shop_id", "shop_name", "customer_phone", "city", "address",
	"payment_amount", "status", "created_at", "courier_id", "courier_name",
	"assigned_at", "delivered_at",
}

// CSVExporter dumps all orders into a timestamped CSV file in the
// configured directory.
type CSVExporter struct {
	orders ports.OrderReader
	dir    string
}

// NewCSVExporter creates an exporter writing into dir.
func NewCSVExporter(orders ports.OrderReader, dir string) *CSVExporter {
	return &CSVExporter{orders: orders, dir: dir}
}

// Export writes the current order list and returns the created file path.
func (e *CSVExporter) Export(ctx context.Context) (string, error) {
	orders, err := e.orders.GetAll(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", errs.NewStorageError("create export directory", err)
	}

	name := fmt.Sprintf("orders_%s.csv", timeutil.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(e.dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", errs.NewStorageError("create export file", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		return "", errs.NewStorageError("write export header", err)
	}
	for _, o := range orders {
		if err := w.Write(csvRecord(o)); err != nil {
			return "", errs.NewStorageError("write export record", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", errs.NewStorageError("flush export file", err)
	}
	return path, nil
}

func csvRecord(o *order.Order) []string {
	courierID := ""
	if courier := o.Courier(); courier != nil {
		courierID = courier.String()
	}

	return []string{
		o.ID().String(),
		o.ShopID().String(),
		o.ShopName(),
		o.CustomerPhone(),
		o.City(),
		o.Address(),
		strconv.FormatFloat(o.PaymentAmount(), 'f', 2, 64),
		o.Status().String(),
		o.CreatedAt(),
		courierID,
		o.CourierName(),
		o.AssignedAt(),
		o.DeliveredAt(),
	}
}
