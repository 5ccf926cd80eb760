package store

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/retail-reports/internal/model"
	"github.com/pgEdge/retail-reports/internal/schema"
)

var testDay = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return New(FixedClock{Time: testDay})
}

// seedBasics inserts one category, location, customer and product so sale
// inserts have something to reference.
func seedBasics(t *testing.T, s *Store) {
	t.Helper()
	mustInsert := func(_ int64, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("Seed insert failed: %v", err)
		}
	}
	mustInsert(s.InsertCategory(model.Category{ID: 1, Name: "Books"}))
	mustInsert(s.InsertLocation(model.Location{ID: 1, City: "Chicago", State: "IL", Region: "Midwest"}))
	mustInsert(s.InsertCustomer(model.Customer{
		ID: 1, FirstName: "Bob", LastName: "Johnson",
		Email: model.Ptr("bob@example.com"), LocationID: model.Ptr(int64(1)),
	}))
	mustInsert(s.InsertProduct(model.Product{
		ID: 1, Name: "Novel", CategoryID: model.Ptr(int64(1)),
		UnitPrice: decimal.RequireFromString("14.99"), StockQuantity: 80,
	}))
}

func TestInsertAppliesDefaults(t *testing.T) {
	s := newTestStore()
	seedBasics(t, s)

	c, ok := s.GetCustomer(1)
	if !ok {
		t.Fatal("Customer not found after insert")
	}
	if !c.JoinDate.Equal(testDay) {
		t.Errorf("JoinDate should default to clock date, got %v", c.JoinDate)
	}

	p, ok := s.GetProduct(1)
	if !ok {
		t.Fatal("Product not found after insert")
	}
	if p.Active == nil || !*p.Active {
		t.Error("Active should default to true")
	}

	if _, err := s.InsertSale(model.Sale{
		ID: 1, CustomerID: 1, ProductID: 1, Quantity: 2,
		UnitPrice: decimal.RequireFromString("14.99"),
	}); err != nil {
		t.Fatalf("InsertSale failed: %v", err)
	}
	sale, _ := s.GetSale(1)
	if !sale.SaleDate.Equal(testDay) {
		t.Errorf("SaleDate should default to clock date, got %v", sale.SaleDate)
	}
}

func TestInsertSaleDerivesTotal(t *testing.T) {
	s := newTestStore()
	seedBasics(t, s)

	// The caller-supplied total must be discarded.
	_, err := s.InsertSale(model.Sale{
		ID: 1, CustomerID: 1, ProductID: 1, Quantity: 3,
		UnitPrice:   decimal.RequireFromString("19.99"),
		TotalAmount: decimal.RequireFromString("1.00"),
	})
	if err != nil {
		t.Fatalf("InsertSale failed: %v", err)
	}

	sale, _ := s.GetSale(1)
	want := decimal.RequireFromString("59.97")
	if !sale.TotalAmount.Equal(want) {
		t.Errorf("Expected total 59.97, got %s", sale.TotalAmount)
	}
}

func TestInsertSaleTotalIsExact(t *testing.T) {
	s := newTestStore()
	seedBasics(t, s)

	// 0.1 * 3 style cases drift under float64; decimal must not.
	cases := []struct {
		id       int64
		quantity int
		price    string
		want     string
	}{
		{1, 3, "0.10", "0.30"},
		{2, 7, "19.99", "139.93"},
		{3, 100, "0.01", "1.00"},
	}
	for _, tc := range cases {
		_, err := s.InsertSale(model.Sale{
			ID: tc.id, CustomerID: 1, ProductID: 1, Quantity: tc.quantity,
			UnitPrice: decimal.RequireFromString(tc.price),
		})
		if err != nil {
			t.Fatalf("InsertSale failed: %v", err)
		}
		sale, _ := s.GetSale(tc.id)
		if sale.TotalAmount.String() != decimal.RequireFromString(tc.want).String() {
			t.Errorf("%d x %s: expected %s, got %s",
				tc.quantity, tc.price, tc.want, sale.TotalAmount)
		}
	}
}

func TestRejectedInsertLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore()
	seedBasics(t, s)

	attempts := []model.Sale{
		{ID: 10, CustomerID: 1, ProductID: 99, Quantity: 1,
			UnitPrice: decimal.RequireFromString("5.00")}, // dangling product
		{ID: 11, CustomerID: 99, ProductID: 1, Quantity: 1,
			UnitPrice: decimal.RequireFromString("5.00")}, // dangling customer
		{ID: 12, CustomerID: 1, ProductID: 1, Quantity: 0,
			UnitPrice: decimal.RequireFromString("5.00")}, // bad quantity
	}

	for _, sale := range attempts {
		_, err := s.InsertSale(sale)
		if err == nil {
			t.Fatalf("Expected insert of sale %d to fail", sale.ID)
		}
		var v *schema.Violation
		if !errors.As(err, &v) {
			t.Fatalf("Expected a Violation, got %T: %v", err, err)
		}
	}

	if n := len(s.Sales()); n != 0 {
		t.Errorf("Sale table should be empty after rejected inserts, has %d rows", n)
	}
}

func TestInsertForeignKeyViolationRule(t *testing.T) {
	s := newTestStore()
	seedBasics(t, s)

	_, err := s.InsertSale(model.Sale{
		ID: 1, CustomerID: 1, ProductID: 42, Quantity: 1,
		UnitPrice: decimal.RequireFromString("5.00"),
	})
	var v *schema.Violation
	if !errors.As(err, &v) {
		t.Fatalf("Expected a Violation, got %v", err)
	}
	if v.Rule != schema.RuleForeignKey || v.Field != "product_id" {
		t.Errorf("Expected foreign_key on product_id, got %s on %s", v.Rule, v.Field)
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	s := newTestStore()
	seedBasics(t, s)

	_, err := s.InsertCategory(model.Category{ID: 1, Name: "Duplicate"})
	var v *schema.Violation
	if !errors.As(err, &v) {
		t.Fatalf("Expected a Violation, got %v", err)
	}
	if v.Rule != schema.RuleUnique || v.Field != "id" {
		t.Errorf("Expected unique on id, got %s on %s", v.Rule, v.Field)
	}
	if len(s.Categories()) != 1 {
		t.Error("Duplicate insert should not grow the table")
	}
}

func TestEmailUniquenessAmongNonNil(t *testing.T) {
	s := newTestStore()
	seedBasics(t, s)

	_, err := s.InsertCustomer(model.Customer{
		ID: 2, FirstName: "Jane", LastName: "Doe",
		Email: model.Ptr("bob@example.com"),
	})
	var v *schema.Violation
	if !errors.As(err, &v) || v.Rule != schema.RuleUnique {
		t.Errorf("Expected unique email violation, got %v", err)
	}

	// Any number of customers without an email is fine.
	for id := int64(3); id <= 5; id++ {
		if _, err := s.InsertCustomer(model.Customer{
			ID: id, FirstName: "No", LastName: "Email",
		}); err != nil {
			t.Errorf("Customer %d without email rejected: %v", id, err)
		}
	}
}

func TestScanPreservesInsertionOrder(t *testing.T) {
	s := newTestStore()

	// Deliberately out of id order.
	ids := []int64{5, 2, 9, 1}
	for _, id := range ids {
		if _, err := s.InsertCategory(model.Category{ID: id, Name: "C"}); err != nil {
			t.Fatalf("InsertCategory failed: %v", err)
		}
	}

	got := s.Categories()
	for i, c := range got {
		if c.ID != ids[i] {
			t.Fatalf("Position %d: expected id %d, got %d", i, ids[i], c.ID)
		}
	}

	// Re-scanning yields the same snapshot.
	again := s.Categories()
	if len(again) != len(got) {
		t.Fatal("Second scan returned different row count")
	}
	for i := range got {
		if again[i].ID != got[i].ID {
			t.Error("Second scan returned different order")
		}
	}
}

func TestSnapshotIsolatedFromLaterInserts(t *testing.T) {
	s := newTestStore()
	if _, err := s.InsertCategory(model.Category{ID: 1, Name: "A"}); err != nil {
		t.Fatal(err)
	}

	snap := s.Categories()
	if _, err := s.InsertCategory(model.Category{ID: 2, Name: "B"}); err != nil {
		t.Fatal(err)
	}
	if len(snap) != 1 {
		t.Errorf("Snapshot should not see later inserts, has %d rows", len(snap))
	}
}

func TestCounts(t *testing.T) {
	s := newTestStore()
	seedBasics(t, s)

	counts := s.Counts()
	for _, entity := range []schema.Entity{
		schema.Categories, schema.Locations, schema.Customers, schema.Products,
	} {
		if counts[entity] != 1 {
			t.Errorf("Expected 1 row in %s, got %d", entity, counts[entity])
		}
	}
	if counts[schema.Sales] != 0 {
		t.Errorf("Expected 0 sales, got %d", counts[schema.Sales])
	}
}

func TestHashJoin(t *testing.T) {
	type left struct {
		id  int64
		ref *int64
	}
	type right struct{ id int64 }

	lefts := []left{
		{1, model.Ptr(int64(10))},
		{2, nil},
		{3, model.Ptr(int64(20))},
		{4, model.Ptr(int64(99))},
	}
	rights := []right{{10}, {20}}

	pairs := HashJoin(lefts, rights,
		func(l left) (int64, bool) {
			if l.ref == nil {
				return 0, false
			}
			return *l.ref, true
		},
		func(r right) int64 { return r.id })

	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Left.id != 1 || pairs[0].Right.id != 10 {
		t.Errorf("First pair wrong: %+v", pairs[0])
	}
	if pairs[1].Left.id != 3 || pairs[1].Right.id != 20 {
		t.Errorf("Second pair wrong: %+v", pairs[1])
	}
}

func TestLeftJoinKeepsUnmatchedRows(t *testing.T) {
	type customer struct{ id int64 }
	type sale struct {
		id       int64
		customer int64
	}

	customers := []customer{{1}, {2}, {3}}
	sales := []sale{{1, 1}, {2, 1}, {3, 3}}

	pairs := LeftJoin(customers, sales,
		func(c customer) (int64, bool) { return c.id, true },
		func(s sale) int64 { return s.customer })

	// Customer 1 twice, customer 2 unmatched, customer 3 once.
	if len(pairs) != 4 {
		t.Fatalf("Expected 4 output rows, got %d", len(pairs))
	}
	if pairs[2].Left.id != 2 || pairs[2].Right != nil {
		t.Errorf("Customer 2 should be unmatched, got %+v", pairs[2])
	}
	if pairs[3].Left.id != 3 || pairs[3].Right == nil {
		t.Errorf("Customer 3 should match, got %+v", pairs[3])
	}
}

func TestFixedClock(t *testing.T) {
	c := FixedClock{Time: testDay}
	if !c.Now().Equal(testDay) {
		t.Error("FixedClock should return its instant")
	}
	if s := New(nil); s == nil {
		t.Error("New with nil clock should fall back to the system clock")
	}
}
