package store

import (
	"encoding/json"
	"fmt"

	"pizzaiolo/internal/order"

	"github.com/jinzhu/gorm"
)

// OrderRecord is a persisted completed order. UserID is nil for guest orders.
type OrderRecord struct {
	gorm.Model
	UserID    *string `gorm:"index" json:"user_id"`
	OrderData string  `gorm:"type:text" json:"order_data"`
	Status    string  `json:"status"`
}

// Order statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDelivered = "delivered"
)

// PersistenceError reports a failed order save or lookup. Saves are not
// retried here; the caller surfaces the failure and the order remains
// logically complete on the client side.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Store persists completed orders.
type Store struct {
	db *gorm.DB
}

// New creates a store and migrates its schema.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&OrderRecord{}).Error; err != nil {
		return nil, &PersistenceError{Op: "migrate", Err: err}
	}
	return &Store{db: db}, nil
}

// Save inserts a completed order with status pending. identity may be nil for
// guest orders. The save is attempted exactly once.
func (s *Store) Save(o order.PartialOrder, identity *string) (*OrderRecord, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, &PersistenceError{Op: "encode order", Err: err}
	}

	record := &OrderRecord{
		UserID:    identity,
		OrderData: string(data),
		Status:    StatusPending,
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, &PersistenceError{Op: "save order", Err: err}
	}
	return record, nil
}

// ListOrders returns the caller's order history, newest first. A nil identity
// lists guest orders.
func (s *Store) ListOrders(identity *string) ([]OrderRecord, error) {
	query := s.db.Order("created_at desc")
	if identity == nil {
		query = query.Where("user_id IS NULL")
	} else {
		query = query.Where("user_id = ?", *identity)
	}

	var records []OrderRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, &PersistenceError{Op: "list orders", Err: err}
	}
	return records, nil
}

// GetOrder fetches a single order by ID.
func (s *Store) GetOrder(id uint) (*OrderRecord, error) {
	var record OrderRecord
	if err := s.db.First(&record, id).Error; err != nil {
		return nil, &PersistenceError{Op: "get order", Err: err}
	}
	return &record, nil
}

// Order decodes the record's serialized order data.
func (r *OrderRecord) Order() (order.PartialOrder, error) {
	var o order.PartialOrder
	if err := json.Unmarshal([]byte(r.OrderData), &o); err != nil {
		return order.PartialOrder{}, &PersistenceError{Op: "decode order", Err: err}
	}
	return o, nil
}
