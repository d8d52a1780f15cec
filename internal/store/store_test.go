package store

import (
	"testing"

	"pizzaiolo/internal/order"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/stretchr/testify/assert"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s, err := New(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return s
}

func TestSaveAndDecode(t *testing.T) {
	s := testStore(t)

	o := order.PartialOrder{
		Pizza:           "Pepperoni",
		Toppings:        []string{"Extra Cheese", "Olives"},
		DeliveryAddress: "123 main street",
		Allergies:       "none",
	}

	record, err := s.Save(o, nil)
	assert.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, StatusPending, record.Status)
	assert.Nil(t, record.UserID)

	got, err := record.Order()
	assert.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestListOrdersByIdentity(t *testing.T) {
	s := testStore(t)

	alice := "user-alice"
	_, err := s.Save(order.PartialOrder{Pizza: "Veggie"}, &alice)
	assert.NoError(t, err)
	_, err = s.Save(order.PartialOrder{Pizza: "Hawaiian"}, &alice)
	assert.NoError(t, err)
	_, err = s.Save(order.PartialOrder{Pizza: "Margherita"}, nil)
	assert.NoError(t, err)

	records, err := s.ListOrders(&alice)
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	guests, err := s.ListOrders(nil)
	assert.NoError(t, err)
	assert.Len(t, guests, 1)
}

func TestGetOrder(t *testing.T) {
	s := testStore(t)

	record, err := s.Save(order.PartialOrder{Pizza: "BBQ Chicken"}, nil)
	assert.NoError(t, err)

	got, err := s.GetOrder(record.ID)
	assert.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)

	_, err = s.GetOrder(9999)
	var perr *PersistenceError
	assert.ErrorAs(t, err, &perr)
}
