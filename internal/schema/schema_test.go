package schema

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/retail-reports/internal/model"
)

// fakeRefs is a canned RefLookup: ids 1-3 exist in every table, and one
// email is taken.
type fakeRefs struct{}

func (fakeRefs) HasCategory(id int64) bool { return id >= 1 && id <= 3 }
func (fakeRefs) HasLocation(id int64) bool { return id >= 1 && id <= 3 }
func (fakeRefs) HasCustomer(id int64) bool { return id >= 1 && id <= 3 }
func (fakeRefs) HasProduct(id int64) bool  { return id >= 1 && id <= 3 }
func (fakeRefs) EmailTaken(email string) bool {
	return email == "taken@example.com"
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name     string
		category model.Category
		wantRule Rule
	}{
		{
			name:     "valid",
			category: model.Category{ID: 1, Name: "Electronics"},
		},
		{
			name:     "missing name",
			category: model.Category{ID: 1},
			wantRule: RuleRequired,
		},
		{
			name:     "zero id",
			category: model.Category{Name: "Electronics"},
			wantRule: RulePositive,
		},
		{
			name:     "negative id",
			category: model.Category{ID: -4, Name: "Electronics"},
			wantRule: RulePositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateCategory(tt.category)
			checkViolation(t, v, tt.wantRule)
		})
	}
}

func TestValidateLocation(t *testing.T) {
	if v := ValidateLocation(model.Location{ID: 1, City: "Chicago"}); v != nil {
		t.Errorf("Expected no violation, got %v", v)
	}
	v := ValidateLocation(model.Location{ID: 1, State: "IL"})
	if v == nil || v.Rule != RuleRequired || v.Field != "city" {
		t.Errorf("Expected required city violation, got %v", v)
	}
}

func TestValidateCustomer(t *testing.T) {
	tests := []struct {
		name     string
		customer model.Customer
		wantRule Rule
	}{
		{
			name:     "valid with nullable fields unset",
			customer: model.Customer{ID: 1, FirstName: "John", LastName: "Smith"},
		},
		{
			name: "valid with location and email",
			customer: model.Customer{ID: 1, FirstName: "John", LastName: "Smith",
				Email: model.Ptr("john@example.com"), LocationID: model.Ptr(int64(2))},
		},
		{
			name:     "missing first name",
			customer: model.Customer{ID: 1, LastName: "Smith"},
			wantRule: RuleRequired,
		},
		{
			name:     "missing last name",
			customer: model.Customer{ID: 1, FirstName: "John"},
			wantRule: RuleRequired,
		},
		{
			name: "duplicate email",
			customer: model.Customer{ID: 1, FirstName: "John", LastName: "Smith",
				Email: model.Ptr("taken@example.com")},
			wantRule: RuleUnique,
		},
		{
			name: "dangling location",
			customer: model.Customer{ID: 1, FirstName: "John", LastName: "Smith",
				LocationID: model.Ptr(int64(99))},
			wantRule: RuleForeignKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateCustomer(tt.customer, fakeRefs{})
			checkViolation(t, v, tt.wantRule)
		})
	}
}

func TestValidateProduct(t *testing.T) {
	price := decimal.RequireFromString("19.99")

	tests := []struct {
		name     string
		product  model.Product
		wantRule Rule
	}{
		{
			name:    "valid",
			product: model.Product{ID: 1, Name: "T-Shirt", UnitPrice: price},
		},
		{
			name:     "zero price",
			product:  model.Product{ID: 1, Name: "T-Shirt"},
			wantRule: RulePositive,
		},
		{
			name: "negative price",
			product: model.Product{ID: 1, Name: "T-Shirt",
				UnitPrice: decimal.RequireFromString("-0.01")},
			wantRule: RulePositive,
		},
		{
			name: "dangling category",
			product: model.Product{ID: 1, Name: "T-Shirt", UnitPrice: price,
				CategoryID: model.Ptr(int64(42))},
			wantRule: RuleForeignKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateProduct(tt.product, fakeRefs{})
			checkViolation(t, v, tt.wantRule)
		})
	}
}

func TestValidateSale(t *testing.T) {
	price := decimal.RequireFromString("14.99")

	tests := []struct {
		name     string
		sale     model.Sale
		wantRule Rule
	}{
		{
			name: "valid",
			sale: model.Sale{ID: 1, CustomerID: 1, ProductID: 2, Quantity: 2, UnitPrice: price},
		},
		{
			name:     "zero quantity",
			sale:     model.Sale{ID: 1, CustomerID: 1, ProductID: 2, UnitPrice: price},
			wantRule: RulePositive,
		},
		{
			name:     "zero price",
			sale:     model.Sale{ID: 1, CustomerID: 1, ProductID: 2, Quantity: 2},
			wantRule: RulePositive,
		},
		{
			name:     "dangling customer",
			sale:     model.Sale{ID: 1, CustomerID: 42, ProductID: 2, Quantity: 2, UnitPrice: price},
			wantRule: RuleForeignKey,
		},
		{
			name:     "dangling product",
			sale:     model.Sale{ID: 1, CustomerID: 1, ProductID: 42, Quantity: 2, UnitPrice: price},
			wantRule: RuleForeignKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateSale(tt.sale, fakeRefs{})
			checkViolation(t, v, tt.wantRule)
		})
	}
}

func checkViolation(t *testing.T, v *Violation, want Rule) {
	t.Helper()
	if want == "" {
		if v != nil {
			t.Errorf("Expected no violation, got %v", v)
		}
		return
	}
	if v == nil {
		t.Fatalf("Expected %s violation, got nil", want)
	}
	if v.Rule != want {
		t.Errorf("Expected rule %s, got %s (field %s)", want, v.Rule, v.Field)
	}
	if v.Error() == "" {
		t.Error("Violation error string should not be empty")
	}
}

func TestFields(t *testing.T) {
	for _, entity := range Entities() {
		t.Run(string(entity), func(t *testing.T) {
			fields := Fields(entity)
			if len(fields) == 0 {
				t.Fatalf("No field definitions for %s", entity)
			}
			if fields[0].Name != "id" {
				t.Errorf("First field should be id, got %s", fields[0].Name)
			}
			for _, f := range fields {
				if f.Name == "" {
					t.Error("Field name should not be empty")
				}
				if f.Type == "" {
					t.Errorf("Field %s has no type", f.Name)
				}
			}
		})
	}

	if Fields(Entity("nope")) != nil {
		t.Error("Unknown entity should have nil fields")
	}
}

func TestFieldsMarkDerivedTotal(t *testing.T) {
	for _, f := range Fields(Sales) {
		if f.Name == "total_amount" {
			if !f.Derived {
				t.Error("total_amount should be marked derived")
			}
			return
		}
	}
	t.Error("sales should define total_amount")
}
