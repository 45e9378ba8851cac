package interchange

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/Lumos-Labs-HQ/martgen/internal/model"
)

// MalformedRecordError reports an interchange row that does not parse
// into its expected shape, with enough position information to find
// it. It always aborts the load before anything reaches the store.
type MalformedRecordError struct {
	File string
	Line int
	Err  error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s: line %d: %v", e.File, e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// ReadDataset parses the five interchange files under dir back into
// entities. It validates shape only (column names, arity, field
// types); referential and arithmetic consistency are the store
// layer's concern.
func ReadDataset(dir string) (*model.Dataset, error) {
	ds := &model.Dataset{}

	err := readFile(filepath.Join(dir, CustomersFile), customerColumns, func(rec []string) error {
		c, err := parseCustomer(rec)
		if err != nil {
			return err
		}
		ds.Customers = append(ds.Customers, c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readFile(filepath.Join(dir, ProductsFile), productColumns, func(rec []string) error {
		p, err := parseProduct(rec)
		if err != nil {
			return err
		}
		ds.Products = append(ds.Products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readFile(filepath.Join(dir, OrdersFile), orderColumns, func(rec []string) error {
		o, err := parseOrder(rec)
		if err != nil {
			return err
		}
		ds.Orders = append(ds.Orders, o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readFile(filepath.Join(dir, OrderItemsFile), orderItemColumns, func(rec []string) error {
		it, err := parseOrderItem(rec)
		if err != nil {
			return err
		}
		ds.Items = append(ds.Items, it)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = readFile(filepath.Join(dir, ReviewsFile), reviewColumns, func(rec []string) error {
		r, err := parseReview(rec)
		if err != nil {
			return err
		}
		ds.Reviews = append(ds.Reviews, r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ds, nil
}

func readFile(path string, header []string, row func(rec []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open interchange file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	got, err := r.Read()
	if err != nil {
		return &MalformedRecordError{File: path, Line: 1, Err: err}
	}
	if !slices.Equal(got, header) {
		return &MalformedRecordError{
			File: path,
			Line: 1,
			Err:  fmt.Errorf("header mismatch: got %v, want %v", got, header),
		}
	}

	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &MalformedRecordError{File: path, Line: line, Err: err}
		}
		if err := row(rec); err != nil {
			return &MalformedRecordError{File: path, Line: line, Err: err}
		}
	}
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(model.TimeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func parseCustomer(rec []string) (model.Customer, error) {
	signup, err := parseTime(rec[3])
	if err != nil {
		return model.Customer{}, fmt.Errorf("signup_date: %w", err)
	}
	premium, err := strconv.ParseBool(rec[5])
	if err != nil {
		return model.Customer{}, fmt.Errorf("is_premium: %w", err)
	}
	return model.Customer{
		ID:         rec[0],
		Name:       rec[1],
		Email:      rec[2],
		SignupDate: signup,
		Country:    rec[4],
		IsPremium:  premium,
	}, nil
}

func parseProduct(rec []string) (model.Product, error) {
	id, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("product_id: %w", err)
	}
	price, err := model.ParseCents(rec[4])
	if err != nil {
		return model.Product{}, fmt.Errorf("price: %w", err)
	}
	cost, err := model.ParseCents(rec[5])
	if err != nil {
		return model.Product{}, fmt.Errorf("cost: %w", err)
	}
	created, err := parseTime(rec[6])
	if err != nil {
		return model.Product{}, fmt.Errorf("created_at: %w", err)
	}
	return model.Product{
		ID:        id,
		SKU:       rec[1],
		Name:      rec[2],
		Category:  rec[3],
		Price:     price,
		Cost:      cost,
		CreatedAt: created,
	}, nil
}

func parseOrder(rec []string) (model.Order, error) {
	id, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return model.Order{}, fmt.Errorf("order_id: %w", err)
	}
	date, err := parseTime(rec[2])
	if err != nil {
		return model.Order{}, fmt.Errorf("order_date: %w", err)
	}
	total, err := model.ParseCents(rec[4])
	if err != nil {
		return model.Order{}, fmt.Errorf("total_amount: %w", err)
	}
	return model.Order{
		ID:              id,
		CustomerID:      rec[1],
		OrderDate:       date,
		Status:          rec[3],
		TotalAmount:     total,
		ShippingCountry: rec[5],
	}, nil
}

func parseOrderItem(rec []string) (model.OrderItem, error) {
	id, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return model.OrderItem{}, fmt.Errorf("order_item_id: %w", err)
	}
	orderID, err := strconv.ParseInt(rec[1], 10, 64)
	if err != nil {
		return model.OrderItem{}, fmt.Errorf("order_id: %w", err)
	}
	productID, err := strconv.ParseInt(rec[2], 10, 64)
	if err != nil {
		return model.OrderItem{}, fmt.Errorf("product_id: %w", err)
	}
	qty, err := strconv.Atoi(rec[3])
	if err != nil {
		return model.OrderItem{}, fmt.Errorf("quantity: %w", err)
	}
	unitPrice, err := model.ParseCents(rec[4])
	if err != nil {
		return model.OrderItem{}, fmt.Errorf("unit_price: %w", err)
	}
	return model.OrderItem{
		ID:        id,
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: unitPrice,
	}, nil
}

func parseReview(rec []string) (model.Review, error) {
	id, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return model.Review{}, fmt.Errorf("review_id: %w", err)
	}
	productID, err := strconv.ParseInt(rec[1], 10, 64)
	if err != nil {
		return model.Review{}, fmt.Errorf("product_id: %w", err)
	}
	rating, err := strconv.Atoi(rec[3])
	if err != nil {
		return model.Review{}, fmt.Errorf("rating: %w", err)
	}
	created, err := parseTime(rec[5])
	if err != nil {
		return model.Review{}, fmt.Errorf("created_at: %w", err)
	}
	return model.Review{
		ID:         id,
		ProductID:  productID,
		CustomerID: rec[2],
		Rating:     rating,
		Comment:    rec[4],
		CreatedAt:  created,
	}, nil
}
