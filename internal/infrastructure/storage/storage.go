// Package storage provides SQLite persistence for purchase orders.
package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"

	"github.com/emorozco/podesk/internal/domain/order"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// ErrDuplicateOrderNumber is returned when an insert or update collides with
// an existing order number.
var ErrDuplicateOrderNumber = errors.New("order number already exists")

// Filters constrain a list query. Nil/empty fields are unconstrained; the
// caller is responsible for having validated enum values and bound ordering.
type Filters struct {
	Search   string // case-insensitive substring over order number and supplier name
	Status   order.Status
	Currency order.Currency
	MinTotal *decimal.Decimal
	MaxTotal *decimal.Decimal
	From     *time.Time // createdAt lower bound
	To       *time.Time // createdAt upper bound
}

// Store provides SQLite database access for purchase orders.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and applies pending
// migrations.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

const orderColumns = "id, order_number, supplier_name, status, total_amount, currency, expected_delivery_date, created_at"

// ListOrders returns orders matching the filters, oldest first.
func (s *Store) ListOrders(f Filters) ([]order.PurchaseOrder, error) {
	query := "SELECT " + orderColumns + " FROM purchase_orders"

	var conditions []string
	var args []any

	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		conditions = append(conditions, "(LOWER(order_number) LIKE ? OR LOWER(supplier_name) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	if f.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(f.Status))
	}
	if f.Currency != "" {
		conditions = append(conditions, "currency = ?")
		args = append(args, string(f.Currency))
	}
	if f.MinTotal != nil {
		conditions = append(conditions, "CAST(total_amount AS REAL) >= ?")
		args = append(args, f.MinTotal.InexactFloat64())
	}
	if f.MaxTotal != nil {
		conditions = append(conditions, "CAST(total_amount AS REAL) <= ?")
		args = append(args, f.MaxTotal.InexactFloat64())
	}
	if f.From != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *f.From)
	}
	if f.To != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *f.To)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	orders := make([]order.PurchaseOrder, 0)
	for rows.Next() {
		po, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}

// GetOrder retrieves one order by id. Returns (nil, nil) when absent.
func (s *Store) GetOrder(id int64) (*order.PurchaseOrder, error) {
	row := s.db.QueryRow("SELECT "+orderColumns+" FROM purchase_orders WHERE id = ?", id)
	po, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &po, nil
}

// CreateOrder inserts a new order, assigning its id and createdAt.
func (s *Store) CreateOrder(po order.PurchaseOrder) (*order.PurchaseOrder, error) {
	po.CreatedAt = time.Now().UTC().Truncate(time.Second)

	res, err := s.db.Exec(`
	INSERT INTO purchase_orders
	(order_number, supplier_name, status, total_amount, currency, expected_delivery_date, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`,
		po.OrderNumber,
		po.SupplierName,
		string(po.Status),
		po.TotalAmount.String(),
		string(po.Currency),
		po.ExpectedDeliveryDate.String(),
		po.CreatedAt,
	)
	if err != nil {
		return nil, mapConstraintError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	po.ID = id
	return &po, nil
}

// UpdateOrder replaces every caller-supplied field of an existing order.
// createdAt is never touched. Returns (nil, nil) when the id is unknown.
func (s *Store) UpdateOrder(id int64, po order.PurchaseOrder) (*order.PurchaseOrder, error) {
	res, err := s.db.Exec(`
	UPDATE purchase_orders
	SET order_number = ?, supplier_name = ?, status = ?, total_amount = ?, currency = ?, expected_delivery_date = ?
	WHERE id = ?`,
		po.OrderNumber,
		po.SupplierName,
		string(po.Status),
		po.TotalAmount.String(),
		string(po.Currency),
		po.ExpectedDeliveryDate.String(),
		id,
	)
	if err != nil {
		return nil, mapConstraintError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return s.GetOrder(id)
}

// DeleteOrder removes an order. The bool reports whether it existed.
func (s *Store) DeleteOrder(id int64) (bool, error) {
	res, err := s.db.Exec("DELETE FROM purchase_orders WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(sc scanner) (order.PurchaseOrder, error) {
	var po order.PurchaseOrder
	var status, currency, amount, delivery string

	err := sc.Scan(
		&po.ID,
		&po.OrderNumber,
		&po.SupplierName,
		&status,
		&amount,
		&currency,
		&delivery,
		&po.CreatedAt,
	)
	if err != nil {
		return order.PurchaseOrder{}, err
	}

	po.Status = order.Status(status)
	po.Currency = order.Currency(currency)

	po.TotalAmount, err = decimal.NewFromString(amount)
	if err != nil {
		return order.PurchaseOrder{}, fmt.Errorf("corrupt total_amount %q: %w", amount, err)
	}

	po.ExpectedDeliveryDate, err = order.ParseDate(delivery)
	if err != nil {
		return order.PurchaseOrder{}, fmt.Errorf("corrupt expected_delivery_date %q: %w", delivery, err)
	}

	return po, nil
}

func mapConstraintError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrDuplicateOrderNumber
	}
	return err
}
