package interchange

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/martgen/internal/gen"
)

var testWindowEnd = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

func testDataset(t *testing.T, seed int64) *gen.Params {
	t.Helper()
	return &gen.Params{
		Seed:      seed,
		Customers: 15,
		Products:  8,
		Orders:    20,
		Reviews:   10,
		WindowEnd: testWindowEnd,
	}
}

func TestSameSeedWritesByteIdenticalFiles(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	require.NoError(t, WriteDataset(dirA, gen.Build(*testDataset(t, 42))))
	require.NoError(t, WriteDataset(dirB, gen.Build(*testDataset(t, 42))))

	for _, name := range []string{CustomersFile, ProductsFile, OrdersFile, OrderItemsFile, ReviewsFile} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, "file %s differs between identically seeded runs", name)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ds := gen.Build(*testDataset(t, 7))
	require.NoError(t, WriteDataset(dir, ds))

	got, err := ReadDataset(dir)
	require.NoError(t, err)
	require.Equal(t, ds, got)
}

func TestHeadersMatchDeclaredColumns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDataset(dir, gen.Build(*testDataset(t, 3))))

	data, err := os.ReadFile(filepath.Join(dir, OrdersFile))
	require.NoError(t, err)
	first, _, _ := strings.Cut(string(data), "\n")
	assert.Equal(t, "order_id,customer_id,order_date,status,total_amount,shipping_country", first)
}

func TestDecimalsRenderWithTwoFractionalDigits(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDataset(dir, gen.Build(*testDataset(t, 5))))

	data, err := os.ReadFile(filepath.Join(dir, ProductsFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 7)
		for _, f := range []string{fields[4], fields[5]} {
			_, frac, ok := strings.Cut(f, ".")
			assert.True(t, ok, "decimal %q has no fraction", f)
			assert.Len(t, frac, 2, "decimal %q", f)
		}
	}
}

func TestMalformedRowReportsPosition(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDataset(dir, gen.Build(*testDataset(t, 9))))

	path := filepath.Join(dir, CustomersFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("only,two\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = ReadDataset(dir)
	require.Error(t, err)

	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, path, malformed.File)
	assert.Equal(t, 17, malformed.Line) // header + 15 rows + the bad one
}

func TestBadFieldTypeReportsPosition(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDataset(dir, gen.Build(*testDataset(t, 9))))

	path := filepath.Join(dir, ReviewsFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("999,1,some-customer,five,bad rating,2025-01-01T00:00:00\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = ReadDataset(dir)
	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, path, malformed.File)
	assert.Contains(t, err.Error(), "rating")
}

func TestHeaderMismatchRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDataset(dir, gen.Build(*testDataset(t, 9))))

	path := filepath.Join(dir, ProductsFile)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, rest, _ := strings.Cut(string(data), "\n")
	bad := "product_id,sku,name,category,price,cost,creation_date\n" + rest
	require.NoError(t, os.WriteFile(path, []byte(bad), 0644))

	_, err = ReadDataset(dir)
	var malformed *MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Line)
	assert.Contains(t, malformed.Err.Error(), "header mismatch")
}
