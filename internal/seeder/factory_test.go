package seeder

import (
	"database/sql"
	"encoding/base64"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/filldb/internal/store"
)

func TestFactoryIsDeterministicForASeed(t *testing.T) {
	a := NewFactory(rand.New(rand.NewSource(42)))
	b := NewFactory(rand.New(rand.NewSource(42)))

	pa, pb := a.Product(0), b.Product(0)
	assert.Equal(t, pa.SKU, pb.SKU)
	assert.Equal(t, pa.ShortDescription, pb.ShortDescription)
	assert.True(t, pa.Price.Equal(pb.Price))
	assert.Equal(t, pa.Weight, pb.Weight)
	assert.Equal(t, pa.StockQuantity, pb.StockQuantity)
}

func TestCategoryFixedFields(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	c := f.Category(3, 17)

	assert.Equal(t, "Sample_Category_3", c.Name)
	assert.Equal(t, int64(17), c.ParentCategoryID)
	assert.Equal(t, 1, c.CategoryTemplateID)
	assert.Equal(t, 6, c.PageSize)
	assert.Equal(t, "6, 3, 9", c.PageSizeOptions)
	assert.True(t, c.Published)
	assert.True(t, c.IncludeInTopMenu)
	assert.Equal(t, c.CreatedOnUTC, c.UpdatedOnUTC)
}

func TestURLRecordSlugIsLowercasedName(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	r := f.URLRecord("Category", 9, "Sample_Category_4")

	assert.Equal(t, int64(9), r.EntityID)
	assert.Equal(t, "Category", r.EntityName)
	assert.Equal(t, "sample_category_4", r.Slug)
	assert.True(t, r.IsActive)
	assert.Zero(t, r.LanguageID)
}

func TestProductFieldPolicies(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(99)))

	for i := 0; i < 200; i++ {
		p := f.Product(i)

		// Price lands on a whole currency unit between 100 and 99999.
		assert.True(t, p.Price.GreaterThanOrEqual(decimal.NewFromInt(100)), p.Price)
		assert.True(t, p.Price.LessThanOrEqual(decimal.NewFromInt(99999)), p.Price)
		assert.True(t, p.Price.Equal(p.Price.Truncate(0)), p.Price)

		for _, dim := range []int{p.Weight, p.Length, p.Width, p.Height} {
			assert.GreaterOrEqual(t, dim, 1)
			assert.LessOrEqual(t, dim, 19)
		}
		assert.Less(t, p.StockQuantity, 1000)
		assert.Less(t, p.OrderMaximumQuantity, 10000)

		sku, err := base64.StdEncoding.DecodeString(p.SKU)
		require.NoError(t, err)
		assert.Len(t, sku, 10)

		assert.Equal(t, ProductTypeSimple, p.ProductType)
		assert.Equal(t, ManageInventoryStock, p.ManageInventoryMethod)
		assert.Equal(t, LowStockDisableBuyButton, p.LowStockActivity)
		assert.Equal(t, BackorderModeNone, p.BackorderMode)
		assert.True(t, p.Published)
	}
}

func TestAddressSharedProfile(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	state := int64(5)
	a := f.Address(2, &state, nil)

	assert.Equal(t, "FirstName_2", a.FirstName)
	assert.Equal(t, "LastName_2", a.LastName)
	assert.Equal(t, "sample_user_2@example.com", a.Email)
	assert.Equal(t, "750 Bel Air Rd.", a.Address1)
	assert.Equal(t, "Los Angeles", a.City)
	assert.Equal(t, "90077", a.ZipPostalCode)
	assert.Equal(t, "87654321", a.PhoneNumber)
	require.NotNil(t, a.StateProvinceID)
	assert.Equal(t, state, *a.StateProvinceID)
	assert.Nil(t, a.CountryID)

	// Nullable geography columns stay NULL when the lookup found nothing.
	values := a.Values()
	assert.Equal(t, &state, values["state_province_id"])
	assert.Nil(t, values["country_id"])
}

func TestCustomerUsesEmailAsUsername(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	c := f.Customer(7, 1, 42)

	assert.Equal(t, "sample_user_7@example.com", c.Email)
	assert.Equal(t, c.Email, c.Username)
	assert.Equal(t, int64(42), c.BillingAddressID)
	assert.Equal(t, int64(42), c.ShippingAddressID)
	assert.True(t, c.Active)
	assert.NotEqual(t, f.Customer(8, 1, 42).CustomerGUID, c.CustomerGUID)
}

func TestPasswordStoredClear(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	p := f.Password(11)

	assert.Equal(t, int64(11), p.CustomerID)
	assert.Equal(t, "123456", p.Password)
	assert.Equal(t, PasswordFormatClear, p.PasswordFormat)
	assert.Empty(t, p.PasswordSalt)
}

func TestOrderAddressFallback(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))

	valid := func(id int64) sql.NullInt64 { return sql.NullInt64{Int64: id, Valid: true} }

	tests := []struct {
		name     string
		customer store.CustomerRef
		billing  int64
		shipping int64
	}{
		{
			name:     "both set",
			customer: store.CustomerRef{ID: 1, BillingAddressID: valid(10), ShippingAddressID: valid(20)},
			billing:  10,
			shipping: 20,
		},
		{
			name:     "billing only",
			customer: store.CustomerRef{ID: 1, BillingAddressID: valid(10)},
			billing:  10,
			shipping: 10,
		},
		{
			name:     "shipping only",
			customer: store.CustomerRef{ID: 1, ShippingAddressID: valid(20)},
			billing:  20,
			shipping: 20,
		},
		{
			name:     "neither set falls back",
			customer: store.CustomerRef{ID: 1},
			billing:  99,
			shipping: 99,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := f.Order(tt.customer, 1, 1, 99)
			assert.Equal(t, tt.billing, o.BillingAddressID)
			assert.Equal(t, tt.shipping, o.ShippingAddressID)
		})
	}
}

func TestOrderFixedTotals(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	o := f.Order(store.CustomerRef{ID: 4}, 1, 2, 3)

	assert.Equal(t, int64(4), o.CustomerID)
	assert.True(t, o.OrderSubtotalInclTax.Equal(decimal.NewFromInt(1855)))
	assert.True(t, o.OrderTotal.Equal(decimal.NewFromInt(1855)))
	assert.True(t, o.OrderTax.IsZero())
	assert.Equal(t, "Payments.CheckMoneyOrder", o.PaymentMethodSystemName)
	assert.Equal(t, "Shipping.FixedByWeightByTotal", o.ShippingRateComputationMethodSystemName)
	assert.Equal(t, "Ground", o.ShippingMethod)
	assert.Equal(t, OrderStatusComplete, o.OrderStatus)
	assert.Equal(t, PaymentStatusPaid, o.PaymentStatus)
	assert.Equal(t, ShippingStatusNotYetShipped, o.ShippingStatus)
	assert.Empty(t, o.CustomOrderNumber)
}

func TestOrderItemReusesOnePriceValue(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	item := f.OrderItem(5, 9)

	assert.Equal(t, int64(5), item.OrderID)
	assert.Equal(t, int64(9), item.ProductID)
	assert.True(t, item.UnitPriceInclTax.Equal(item.UnitPriceExclTax))
	assert.True(t, item.UnitPriceInclTax.Equal(item.PriceInclTax))
	assert.True(t, item.UnitPriceInclTax.Equal(item.PriceExclTax))
	assert.True(t, item.UnitPriceInclTax.GreaterThanOrEqual(decimal.NewFromInt(1)))
	assert.True(t, item.UnitPriceInclTax.LessThanOrEqual(decimal.NewFromInt(19)))
	assert.GreaterOrEqual(t, item.Quantity, 1)
	assert.LessOrEqual(t, item.Quantity, 19)
	assert.True(t, item.OriginalProductCost.IsZero())
}

func TestGiftCardFixedPersona(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	card := f.GiftCard(33)

	assert.Equal(t, int64(33), card.PurchasedWithOrderItemID)
	assert.Equal(t, GiftCardTypeVirtual, card.GiftCardType)
	assert.Equal(t, "Brenda Lindgren", card.RecipientName)
	assert.Equal(t, "brenda_lindgren@example.com", card.RecipientEmail)
	assert.Equal(t, "Steve Gates", card.SenderName)
	assert.Equal(t, "steve_gates@example.com", card.SenderEmail)
	assert.False(t, card.IsGiftCardActivated)
	assert.True(t, card.Amount.LessThan(decimal.NewFromInt(50)))
}

func TestPickCoversTheSnapshot(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(7)))
	ids := []int64{3, 5, 8}

	seen := map[int64]bool{}
	for i := 0; i < 100; i++ {
		id := f.pick(ids)
		assert.Contains(t, ids, id)
		seen[id] = true
	}
	assert.Len(t, seen, 3)
}
