package seeder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Enum values mirror the host platform's storage encoding.
const (
	ProductTypeSimple           = 5
	ManageInventoryStock        = 1
	LowStockDisableBuyButton    = 1
	BackorderModeNone           = 0
	OrderStatusComplete         = 30
	PaymentStatusPaid           = 30
	ShippingStatusNotYetShipped = 20
	PasswordFormatClear         = 0
	GiftCardTypeVirtual         = 0
)

// Category is a fixture row for the categories table. All generated
// categories share one display template; only the name and parent vary.
type Category struct {
	Name                           string
	CategoryTemplateID             int
	ParentCategoryID               int64
	PageSize                       int
	AllowCustomersToSelectPageSize bool
	PageSizeOptions                string
	IncludeInTopMenu               bool
	Published                      bool
	DisplayOrder                   int
	CreatedOnUTC                   time.Time
	UpdatedOnUTC                   time.Time
}

func (c Category) Values() map[string]any {
	return map[string]any{
		"name":                 c.Name,
		"category_template_id": c.CategoryTemplateID,
		"parent_category_id":   c.ParentCategoryID,
		"page_size":            c.PageSize,
		"allow_customers_to_select_page_size": c.AllowCustomersToSelectPageSize,
		"page_size_options":    c.PageSizeOptions,
		"include_in_top_menu":  c.IncludeInTopMenu,
		"published":            c.Published,
		"display_order":        c.DisplayOrder,
		"created_on_utc":       c.CreatedOnUTC,
		"updated_on_utc":       c.UpdatedOnUTC,
	}
}

// URLRecord is the slug row written for every seeded category and product.
type URLRecord struct {
	EntityID   int64
	EntityName string
	LanguageID int64
	IsActive   bool
	Slug       string
}

func (u URLRecord) Values() map[string]any {
	return map[string]any{
		"entity_id":   u.EntityID,
		"entity_name": u.EntityName,
		"language_id": u.LanguageID,
		"is_active":   u.IsActive,
		"slug":        u.Slug,
	}
}

type Product struct {
	ProductType                  int
	VisibleIndividually          bool
	Name                         string
	SKU                          string
	ShortDescription             string
	FullDescription              string
	ProductTemplateID            int
	AllowCustomerReviews         bool
	Price                        decimal.Decimal
	IsShipEnabled                bool
	IsFreeShipping               bool
	Weight                       int
	Length                       int
	Width                        int
	Height                       int
	TaxCategoryID                int64
	ManageInventoryMethod        int
	StockQuantity                int
	NotifyAdminForQuantityBelow  int
	AllowBackInStockSubscription bool
	DisplayStockAvailability     bool
	LowStockActivity             int
	BackorderMode                int
	OrderMinimumQuantity         int
	OrderMaximumQuantity         int
	Published                    bool
	ShowOnHomepage               bool
	MarkAsNew                    bool
	CreatedOnUTC                 time.Time
	UpdatedOnUTC                 time.Time
}

func (p Product) Values() map[string]any {
	return map[string]any{
		"product_type":                     p.ProductType,
		"visible_individually":             p.VisibleIndividually,
		"name":                             p.Name,
		"sku":                              p.SKU,
		"short_description":                p.ShortDescription,
		"full_description":                 p.FullDescription,
		"product_template_id":              p.ProductTemplateID,
		"allow_customer_reviews":           p.AllowCustomerReviews,
		"price":                            p.Price,
		"is_ship_enabled":                  p.IsShipEnabled,
		"is_free_shipping":                 p.IsFreeShipping,
		"weight":                           p.Weight,
		"length":                           p.Length,
		"width":                            p.Width,
		"height":                           p.Height,
		"tax_category_id":                  p.TaxCategoryID,
		"manage_inventory_method":          p.ManageInventoryMethod,
		"stock_quantity":                   p.StockQuantity,
		"notify_admin_for_quantity_below":  p.NotifyAdminForQuantityBelow,
		"allow_back_in_stock_subscription": p.AllowBackInStockSubscription,
		"display_stock_availability":       p.DisplayStockAvailability,
		"low_stock_activity":               p.LowStockActivity,
		"backorder_mode":                   p.BackorderMode,
		"order_minimum_quantity":           p.OrderMinimumQuantity,
		"order_maximum_quantity":           p.OrderMaximumQuantity,
		"published":                        p.Published,
		"show_on_homepage":                 p.ShowOnHomepage,
		"mark_as_new":                      p.MarkAsNew,
		"created_on_utc":                   p.CreatedOnUTC,
		"updated_on_utc":                   p.UpdatedOnUTC,
	}
}

type ProductCategory struct {
	ProductID    int64
	CategoryID   int64
	DisplayOrder int
}

func (pc ProductCategory) Values() map[string]any {
	return map[string]any{
		"product_id":    pc.ProductID,
		"category_id":   pc.CategoryID,
		"display_order": pc.DisplayOrder,
	}
}

type Customer struct {
	CustomerGUID        uuid.UUID
	Email               string
	Username            string
	Active              bool
	BillingAddressID    int64
	ShippingAddressID   int64
	RegisteredInStoreID int64
	CreatedOnUTC        time.Time
	LastActivityDateUTC time.Time
}

func (c Customer) Values() map[string]any {
	return map[string]any{
		"customer_guid":          c.CustomerGUID.String(),
		"email":                  c.Email,
		"username":               c.Username,
		"active":                 c.Active,
		"billing_address_id":     c.BillingAddressID,
		"shipping_address_id":    c.ShippingAddressID,
		"registered_in_store_id": c.RegisteredInStoreID,
		"created_on_utc":         c.CreatedOnUTC,
		"last_activity_date_utc": c.LastActivityDateUTC,
	}
}

// Address is the one billing+shipping address each seeded customer gets.
// State and country are nullable; they stay unset when the reference rows
// are absent from the target store.
type Address struct {
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	FaxNumber       string
	Company         string
	Address1        string
	Address2        string
	City            string
	StateProvinceID *int64
	CountryID       *int64
	ZipPostalCode   string
	CreatedOnUTC    time.Time
}

func (a Address) Values() map[string]any {
	return map[string]any{
		"first_name":        a.FirstName,
		"last_name":         a.LastName,
		"email":             a.Email,
		"phone_number":      a.PhoneNumber,
		"fax_number":        a.FaxNumber,
		"company":           a.Company,
		"address1":          a.Address1,
		"address2":          a.Address2,
		"city":              a.City,
		"state_province_id": a.StateProvinceID,
		"country_id":        a.CountryID,
		"zip_postal_code":   a.ZipPostalCode,
		"created_on_utc":    a.CreatedOnUTC,
	}
}

type CustomerPassword struct {
	CustomerID     int64
	Password       string
	PasswordFormat int
	PasswordSalt   string
	CreatedOnUTC   time.Time
}

func (p CustomerPassword) Values() map[string]any {
	return map[string]any{
		"customer_id":     p.CustomerID,
		"password":        p.Password,
		"password_format": p.PasswordFormat,
		"password_salt":   p.PasswordSalt,
		"created_on_utc":  p.CreatedOnUTC,
	}
}

type CustomerAddressMapping struct {
	CustomerID int64
	AddressID  int64
}

func (m CustomerAddressMapping) Values() map[string]any {
	return map[string]any{
		"customer_id": m.CustomerID,
		"address_id":  m.AddressID,
	}
}

type CustomerRoleMapping struct {
	CustomerID     int64
	CustomerRoleID int64
}

func (m CustomerRoleMapping) Values() map[string]any {
	return map[string]any{
		"customer_id":      m.CustomerID,
		"customer_role_id": m.CustomerRoleID,
	}
}

type GenericAttribute struct {
	EntityID int64
	KeyGroup string
	Key      string
	Value    string
	StoreID  int64
}

func (g GenericAttribute) Values() map[string]any {
	return map[string]any{
		"entity_id":       g.EntityID,
		"key_group":       g.KeyGroup,
		"attribute_key":   g.Key,
		"attribute_value": g.Value,
		"store_id":        g.StoreID,
	}
}

// Order carries fixed header totals that are deliberately uncorrelated
// with its generated item prices; see README.
type Order struct {
	OrderGUID                               uuid.UUID
	StoreID                                 int64
	CustomerID                              int64
	CustomerLanguageID                      int64
	CustomerIP                              string
	OrderSubtotalInclTax                    decimal.Decimal
	OrderSubtotalExclTax                    decimal.Decimal
	OrderShippingInclTax                    decimal.Decimal
	OrderShippingExclTax                    decimal.Decimal
	TaxRates                                string
	OrderTax                                decimal.Decimal
	OrderTotal                              decimal.Decimal
	RefundedAmount                          decimal.Decimal
	OrderDiscount                           decimal.Decimal
	CustomerCurrencyCode                    string
	CurrencyRate                            decimal.Decimal
	AffiliateID                             int64
	OrderStatus                             int
	PaymentMethodSystemName                 string
	PaymentStatus                           int
	PaidDateUTC                             time.Time
	BillingAddressID                        int64
	ShippingAddressID                       int64
	ShippingStatus                          int
	ShippingMethod                          string
	PickupInStore                           bool
	ShippingRateComputationMethodSystemName string
	CustomOrderNumber                       string
	CreatedOnUTC                            time.Time
}

func (o Order) Values() map[string]any {
	return map[string]any{
		"order_guid":              o.OrderGUID.String(),
		"store_id":                o.StoreID,
		"customer_id":             o.CustomerID,
		"customer_language_id":    o.CustomerLanguageID,
		"customer_ip":             o.CustomerIP,
		"order_subtotal_incl_tax": o.OrderSubtotalInclTax,
		"order_subtotal_excl_tax": o.OrderSubtotalExclTax,
		"order_shipping_incl_tax": o.OrderShippingInclTax,
		"order_shipping_excl_tax": o.OrderShippingExclTax,
		"tax_rates":               o.TaxRates,
		"order_tax":               o.OrderTax,
		"order_total":             o.OrderTotal,
		"refunded_amount":         o.RefundedAmount,
		"order_discount":          o.OrderDiscount,
		"customer_currency_code":  o.CustomerCurrencyCode,
		"currency_rate":           o.CurrencyRate,
		"affiliate_id":            o.AffiliateID,
		"order_status":            o.OrderStatus,
		"payment_method_system_name": o.PaymentMethodSystemName,
		"payment_status":          o.PaymentStatus,
		"paid_date_utc":           o.PaidDateUTC,
		"billing_address_id":      o.BillingAddressID,
		"shipping_address_id":     o.ShippingAddressID,
		"shipping_status":         o.ShippingStatus,
		"shipping_method":         o.ShippingMethod,
		"pickup_in_store":         o.PickupInStore,
		"shipping_rate_computation_method_system_name": o.ShippingRateComputationMethodSystemName,
		"custom_order_number":     o.CustomOrderNumber,
		"created_on_utc":          o.CreatedOnUTC,
	}
}

// OrderItem reuses one random tax value for all four price columns, as
// the fixture policy dictates.
type OrderItem struct {
	OrderItemGUID         uuid.UUID
	OrderID               int64
	ProductID             int64
	UnitPriceInclTax      decimal.Decimal
	UnitPriceExclTax      decimal.Decimal
	PriceInclTax          decimal.Decimal
	PriceExclTax          decimal.Decimal
	OriginalProductCost   decimal.Decimal
	Quantity              int
	DiscountAmountInclTax decimal.Decimal
	DiscountAmountExclTax decimal.Decimal
	DownloadCount         int
	IsDownloadActivated   bool
}

func (i OrderItem) Values() map[string]any {
	return map[string]any{
		"order_item_guid":          i.OrderItemGUID.String(),
		"order_id":                 i.OrderID,
		"product_id":               i.ProductID,
		"unit_price_incl_tax":      i.UnitPriceInclTax,
		"unit_price_excl_tax":      i.UnitPriceExclTax,
		"price_incl_tax":           i.PriceInclTax,
		"price_excl_tax":           i.PriceExclTax,
		"original_product_cost":    i.OriginalProductCost,
		"quantity":                 i.Quantity,
		"discount_amount_incl_tax": i.DiscountAmountInclTax,
		"discount_amount_excl_tax": i.DiscountAmountExclTax,
		"download_count":           i.DownloadCount,
		"is_download_activated":    i.IsDownloadActivated,
	}
}

type GiftCard struct {
	GiftCardType             int
	PurchasedWithOrderItemID int64
	Amount                   decimal.Decimal
	IsGiftCardActivated      bool
	GiftCardCouponCode       string
	RecipientName            string
	RecipientEmail           string
	SenderName               string
	SenderEmail              string
	Message                  string
	IsRecipientNotified      bool
	CreatedOnUTC             time.Time
}

func (g GiftCard) Values() map[string]any {
	return map[string]any{
		"gift_card_type":               g.GiftCardType,
		"purchased_with_order_item_id": g.PurchasedWithOrderItemID,
		"amount":                       g.Amount,
		"is_gift_card_activated":       g.IsGiftCardActivated,
		"gift_card_coupon_code":        g.GiftCardCouponCode,
		"recipient_name":               g.RecipientName,
		"recipient_email":              g.RecipientEmail,
		"sender_name":                  g.SenderName,
		"sender_email":                 g.SenderEmail,
		"message":                      g.Message,
		"is_recipient_notified":        g.IsRecipientNotified,
		"created_on_utc":               g.CreatedOnUTC,
	}
}

type OrderNote struct {
	OrderID      int64
	Note         string
	CreatedOnUTC time.Time
}

func (n OrderNote) Values() map[string]any {
	return map[string]any{
		"order_id":       n.OrderID,
		"note":           n.Note,
		"created_on_utc": n.CreatedOnUTC,
	}
}
