// Package interchange is the tabular boundary between the generator
// and the store: one UTF-8, comma-delimited file per entity, a header
// row naming the columns, dates rendered ISO-8601 and decimals with
// two fractional digits. No validation beyond shape lives here.
package interchange

// File names, in foreign-key dependency order.
const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	ReviewsFile    = "reviews.csv"
)

var (
	customerColumns  = []string{"customer_id", "name", "email", "signup_date", "country", "is_premium"}
	productColumns   = []string{"product_id", "sku", "name", "category", "price", "cost", "created_at"}
	orderColumns     = []string{"order_id", "customer_id", "order_date", "status", "total_amount", "shipping_country"}
	orderItemColumns = []string{"order_item_id", "order_id", "product_id", "quantity", "unit_price"}
	reviewColumns    = []string{"review_id", "product_id", "customer_id", "rating", "review_text", "created_at"}
)
