package seeder

import (
	"encoding/base64"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commercekit/filldb/internal/store"
)

// Gift card persona, fixed for every generated card.
const (
	giftCardRecipientName  = "Brenda Lindgren"
	giftCardRecipientEmail = "brenda_lindgren@example.com"
	giftCardSenderName     = "Steve Gates"
	giftCardSenderEmail    = "steve_gates@example.com"
)

// Factory builds fully-populated fixture rows. All randomness flows
// through the single injected source, so a seeded source gives a
// reproducible run.
type Factory struct {
	rng *rand.Rand
}

func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

// key returns a short random blob encoded as base64, used wherever the
// fixtures want an opaque string (SKUs, descriptions, company names).
func (f *Factory) key(n int) string {
	b := make([]byte, n)
	f.rng.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

// pick selects one id uniformly from a snapshot. Callers guarantee the
// snapshot is non-empty.
func (f *Factory) pick(ids []int64) int64 {
	return ids[f.rng.Intn(len(ids))]
}

func (f *Factory) Category(i int, parentID int64) Category {
	now := time.Now().UTC()
	return Category{
		Name:                           fmt.Sprintf("Sample_Category_%d", i),
		CategoryTemplateID:             1,
		ParentCategoryID:               parentID,
		PageSize:                       6,
		AllowCustomersToSelectPageSize: true,
		PageSizeOptions:                "6, 3, 9",
		IncludeInTopMenu:               true,
		Published:                      true,
		DisplayOrder:                   1,
		CreatedOnUTC:                   now,
		UpdatedOnUTC:                   now,
	}
}

func (f *Factory) URLRecord(entityName string, entityID int64, name string) URLRecord {
	return URLRecord{
		EntityID:   entityID,
		EntityName: entityName,
		LanguageID: 0,
		IsActive:   true,
		Slug:       strings.ToLower(name),
	}
}

func (f *Factory) Product(i int) Product {
	now := time.Now().UTC()
	return Product{
		ProductType:          ProductTypeSimple,
		VisibleIndividually:  true,
		Name:                 fmt.Sprintf("Sample_Product_%d", i),
		SKU:                  f.key(10),
		ShortDescription:     f.key(50),
		FullDescription:      "<p>" + f.key(300) + "</p>",
		ProductTemplateID:    1,
		AllowCustomerReviews: true,
		// Integer division is intentional: the price grid has a step of
		// one whole currency unit.
		Price:                        decimal.NewFromInt(int64((f.rng.Intn(999000) + 1000) / 10)),
		IsShipEnabled:                f.rng.Intn(2) == 1,
		IsFreeShipping:               f.rng.Intn(2) == 1,
		Weight:                       f.rng.Intn(19) + 1,
		Length:                       f.rng.Intn(19) + 1,
		Width:                        f.rng.Intn(19) + 1,
		Height:                       f.rng.Intn(19) + 1,
		TaxCategoryID:                0,
		ManageInventoryMethod:        ManageInventoryStock,
		StockQuantity:                f.rng.Intn(1000),
		NotifyAdminForQuantityBelow:  1,
		AllowBackInStockSubscription: false,
		DisplayStockAvailability:     true,
		LowStockActivity:             LowStockDisableBuyButton,
		BackorderMode:                BackorderModeNone,
		OrderMinimumQuantity:         1,
		OrderMaximumQuantity:         f.rng.Intn(10000),
		Published:                    true,
		ShowOnHomepage:               false,
		MarkAsNew:                    true,
		CreatedOnUTC:                 now,
		UpdatedOnUTC:                 now,
	}
}

func (f *Factory) ProductCategory(productID, categoryID int64) ProductCategory {
	return ProductCategory{
		ProductID:    productID,
		CategoryID:   categoryID,
		DisplayOrder: f.rng.Intn(999) + 1,
	}
}

func (f *Factory) Customer(i int, storeID, addressID int64) Customer {
	now := time.Now().UTC()
	email := customerEmail(i)
	return Customer{
		CustomerGUID:        uuid.New(),
		Email:               email,
		Username:            email,
		Active:              true,
		BillingAddressID:    addressID,
		ShippingAddressID:   addressID,
		RegisteredInStoreID: storeID,
		CreatedOnUTC:        now,
		LastActivityDateUTC: now,
	}
}

func customerEmail(i int) string {
	return fmt.Sprintf("sample_user_%d@example.com", i)
}

func (f *Factory) Address(i int, stateProvinceID, countryID *int64) Address {
	return Address{
		FirstName:       fmt.Sprintf("FirstName_%d", i),
		LastName:        fmt.Sprintf("LastName_%d", i),
		Email:           customerEmail(i),
		PhoneNumber:     "87654321",
		FaxNumber:       "",
		Company:         f.key(10),
		Address1:        "750 Bel Air Rd.",
		Address2:        "",
		City:            "Los Angeles",
		StateProvinceID: stateProvinceID,
		CountryID:       countryID,
		ZipPostalCode:   "90077",
		CreatedOnUTC:    time.Now().UTC(),
	}
}

func (f *Factory) Password(customerID int64) CustomerPassword {
	return CustomerPassword{
		CustomerID:     customerID,
		Password:       "123456",
		PasswordFormat: PasswordFormatClear,
		PasswordSalt:   "",
		CreatedOnUTC:   time.Now().UTC(),
	}
}

func (f *Factory) Order(customer store.CustomerRef, storeID, languageID, fallbackAddressID int64) Order {
	now := time.Now().UTC()

	billing := fallbackAddressID
	shipping := fallbackAddressID
	switch {
	case customer.BillingAddressID.Valid:
		billing = customer.BillingAddressID.Int64
	case customer.ShippingAddressID.Valid:
		billing = customer.ShippingAddressID.Int64
	}
	switch {
	case customer.ShippingAddressID.Valid:
		shipping = customer.ShippingAddressID.Int64
	case customer.BillingAddressID.Valid:
		shipping = customer.BillingAddressID.Int64
	}

	return Order{
		OrderGUID:            uuid.New(),
		StoreID:              storeID,
		CustomerID:           customer.ID,
		CustomerLanguageID:   languageID,
		CustomerIP:           "127.0.0.1",
		OrderSubtotalInclTax: decimal.NewFromInt(1855),
		OrderSubtotalExclTax: decimal.NewFromInt(1855),
		OrderShippingInclTax: decimal.Zero,
		OrderShippingExclTax: decimal.Zero,
		TaxRates:             "0:0;",
		OrderTax:             decimal.Zero,
		OrderTotal:           decimal.NewFromInt(1855),
		RefundedAmount:       decimal.Zero,
		OrderDiscount:        decimal.Zero,
		CustomerCurrencyCode: "USD",
		CurrencyRate:         decimal.NewFromInt(1),
		AffiliateID:          0,
		OrderStatus:          OrderStatusComplete,
		PaymentMethodSystemName: "Payments.CheckMoneyOrder",
		PaymentStatus:        PaymentStatusPaid,
		PaidDateUTC:          now,
		BillingAddressID:     billing,
		ShippingAddressID:    shipping,
		ShippingStatus:       ShippingStatusNotYetShipped,
		ShippingMethod:       "Ground",
		PickupInStore:        false,
		ShippingRateComputationMethodSystemName: "Shipping.FixedByWeightByTotal",
		CustomOrderNumber:    "",
		CreatedOnUTC:         now,
	}
}

func (f *Factory) OrderItem(orderID, productID int64) OrderItem {
	// One random tax value serves as all four price columns.
	tax := decimal.NewFromInt(int64(f.rng.Intn(19) + 1))
	return OrderItem{
		OrderItemGUID:         uuid.New(),
		OrderID:               orderID,
		ProductID:             productID,
		UnitPriceInclTax:      tax,
		UnitPriceExclTax:      tax,
		PriceInclTax:          tax,
		PriceExclTax:          tax,
		OriginalProductCost:   decimal.Zero,
		Quantity:              f.rng.Intn(19) + 1,
		DiscountAmountInclTax: decimal.Zero,
		DiscountAmountExclTax: decimal.Zero,
		DownloadCount:         0,
		IsDownloadActivated:   false,
	}
}

func (f *Factory) GiftCard(orderItemID int64) GiftCard {
	return GiftCard{
		GiftCardType:             GiftCardTypeVirtual,
		PurchasedWithOrderItemID: orderItemID,
		Amount:                   decimal.NewFromInt(int64(f.rng.Intn(50))),
		IsGiftCardActivated:      false,
		GiftCardCouponCode:       "",
		RecipientName:            giftCardRecipientName,
		RecipientEmail:           giftCardRecipientEmail,
		SenderName:               giftCardSenderName,
		SenderEmail:              giftCardSenderEmail,
		Message:                  f.key(50),
		IsRecipientNotified:      false,
		CreatedOnUTC:             time.Now().UTC(),
	}
}

func (f *Factory) OrderNote(orderID int64, note string) OrderNote {
	return OrderNote{
		OrderID:      orderID,
		Note:         note,
		CreatedOnUTC: time.Now().UTC(),
	}
}
