package export_test

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"dispatch/internal/adapters/out/export"
	"dispatch/internal/adapters/out/jsonstore"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededReader(t *testing.T) *jsonstore.OrderReader {
	t.Helper()
	ctx := context.Background()

	store, err := jsonstore.NewStore(filepath.Join(t.TempDir(), "orders.json"),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	shopID, err := kernel.NewUserID(100)
	require.NoError(t, err)
	courierID, err := kernel.NewUserID(200)
	require.NoError(t, err)

	orderID, err := kernel.NewOrderID(1)
	require.NoError(t, err)
	pending, err := order.NewOrder(orderID, shopID, "Sultoni Kabob", "+992901234567",
		"Dushanbe", "Rudaki 15", 120, "2026-03-01 11:00:00")
	require.NoError(t, err)

	orderID2, err := kernel.NewOrderID(2)
	require.NoError(t, err)
	delivered, err := order.NewOrder(orderID2, shopID, "Sultoni Kabob", "+992901234567",
		"Dushanbe", "Somoni 3", 80.5, "2026-03-01 12:00:00")
	require.NoError(t, err)
	require.NoError(t, delivered.Assign(courierID, "Farrukh | +992900000002", "2026-03-01 13:00:00"))
	require.NoError(t, delivered.MarkDelivered("2026-03-01 18:30:00"))

	uow := jsonstore.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, pending))
	require.NoError(t, uow.OrderRepository().Add(ctx, delivered))
	require.NoError(t, uow.Commit(ctx))

	return jsonstore.NewOrderReader(store)
}

func TestCSVExporter_Export(t *testing.T) {
	dir := t.TempDir()
	exporter := export.NewCSVExporter(newSeededReader(t), dir)

	path, err := exporter.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + two orders

	assert.Equal(t, "id", records[0][0])
	assert.Equal(t, "delivered_at", records[0][12])

	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "pending", records[1][7])
	assert.Equal(t, "", records[1][9]) // no courier on a pending order

	assert.Equal(t, "2", records[2][0])
	assert.Equal(t, "delivered", records[2][7])
	assert.Equal(t, "200", records[2][9])
	assert.Equal(t, "80.50", records[2][6])
	assert.Equal(t, "2026-03-01 18:30:00", records[2][12])
}

func TestCSVExporter_EmptyStore(t *testing.T) {
	store, err := jsonstore.NewStore(filepath.Join(t.TempDir(), "orders.json"),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	exporter := export.NewCSVExporter(jsonstore.NewOrderReader(store), t.TempDir())
	path, err := exporter.Export(context.Background())
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}
