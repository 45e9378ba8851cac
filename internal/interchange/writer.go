package interchange

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Lumos-Labs-HQ/martgen/internal/model"
)

// WriteDataset serializes every entity set of ds into dir, one CSV per
// entity. Column order is fixed and identifiers pass through verbatim.
func WriteDataset(dir string, ds *model.Dataset) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := writeFile(filepath.Join(dir, CustomersFile), customerColumns, len(ds.Customers), func(i int) []string {
		return customerRecord(ds.Customers[i])
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, ProductsFile), productColumns, len(ds.Products), func(i int) []string {
		return productRecord(ds.Products[i])
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, OrdersFile), orderColumns, len(ds.Orders), func(i int) []string {
		return orderRecord(ds.Orders[i])
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, OrderItemsFile), orderItemColumns, len(ds.Items), func(i int) []string {
		return orderItemRecord(ds.Items[i])
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, ReviewsFile), reviewColumns, len(ds.Reviews), func(i int) []string {
		return reviewRecord(ds.Reviews[i])
	})
}

func writeFile(path string, header []string, n int, record func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(record(i)); err != nil {
			f.Close()
			return fmt.Errorf("failed to write record to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return f.Close()
}

func customerRecord(c model.Customer) []string {
	return []string{
		c.ID,
		c.Name,
		c.Email,
		c.SignupDate.Format(model.TimeLayout),
		c.Country,
		strconv.FormatBool(c.IsPremium),
	}
}

func productRecord(p model.Product) []string {
	return []string{
		strconv.FormatInt(p.ID, 10),
		p.SKU,
		p.Name,
		p.Category,
		p.Price.String(),
		p.Cost.String(),
		p.CreatedAt.Format(model.TimeLayout),
	}
}

func orderRecord(o model.Order) []string {
	return []string{
		strconv.FormatInt(o.ID, 10),
		o.CustomerID,
		o.OrderDate.Format(model.TimeLayout),
		o.Status,
		o.TotalAmount.String(),
		o.ShippingCountry,
	}
}

func orderItemRecord(it model.OrderItem) []string {
	return []string{
		strconv.FormatInt(it.ID, 10),
		strconv.FormatInt(it.OrderID, 10),
		strconv.FormatInt(it.ProductID, 10),
		strconv.Itoa(it.Quantity),
		it.UnitPrice.String(),
	}
}

func reviewRecord(r model.Review) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		strconv.FormatInt(r.ProductID, 10),
		r.CustomerID,
		strconv.Itoa(r.Rating),
		r.Comment,
		r.CreatedAt.Format(model.TimeLayout),
	}
}
