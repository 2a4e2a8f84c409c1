package seeder

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/fatih/color"

	"github.com/commercekit/filldb/internal/config"
	"github.com/commercekit/filldb/internal/store"
)

// Phase names, in execution order.
const (
	PhaseCategories = "categories"
	PhaseProducts   = "products"
	PhaseCustomers  = "customers"
	PhaseOrders     = "orders"
)

const registeredRoleName = "Registered"

// Every order gets these four notes regardless of its actual shipping
// status. Observed fixture behavior, kept on purpose.
var orderNoteTexts = [4]string{
	"Order placed",
	"Order paid",
	"Order shipped",
	"Order delivered",
}

// PreconditionError reports reference data a phase assumes exists and
// does not create itself.
type PreconditionError struct {
	Missing string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("missing precondition: no %s could be loaded", e.Missing)
}

// PhaseError wraps a failure inside one seeding phase. Rows inserted by
// earlier phases (and earlier in the failed phase) stay committed.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s phase failed: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// Result counts the rows a run inserted, per entity kind.
type Result struct {
	Categories        int `json:"categories"`
	Products          int `json:"products"`
	ProductCategories int `json:"product_categories"`
	Customers         int `json:"customers"`
	Orders            int `json:"orders"`
	OrderItems        int `json:"order_items"`
	GiftCards         int `json:"gift_cards"`
	OrderNotes        int `json:"order_notes"`
}

func (r *Result) Summary() string {
	return fmt.Sprintf("%d categories, %d products, %d customers, %d orders (%d items, %d gift cards, %d notes)",
		r.Categories, r.Products, r.Customers, r.Orders, r.OrderItems, r.GiftCards, r.OrderNotes)
}

// Seeder fills the host platform's database with synthetic commerce
// records in four strictly sequential phases. There is no batching, no
// transaction and no rollback: each row is inserted as it is built, and a
// failure abandons the remaining phases while keeping everything already
// written. Re-running after a partial failure duplicates completed phases.
type Seeder struct {
	store   *store.Store
	factory *Factory
	rng     *rand.Rand
}

// New builds a Seeder around the given random source. Both the factory
// and reference-row selection consume the same source.
func New(st *store.Store, rng *rand.Rand) *Seeder {
	return &Seeder{
		store:   st,
		factory: NewFactory(rng),
		rng:     rng,
	}
}

// Run executes categories → products → customers → orders.
func (s *Seeder) Run(ctx context.Context, counts config.Counts) (*Result, error) {
	color.Cyan("🌱 Filling database with random commerce data...")

	storeID, err := s.store.FirstStoreID(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &PreconditionError{Missing: "default store"}
		}
		return nil, err
	}

	res := &Result{}

	if err := s.seedCategories(ctx, counts.Categories, res); err != nil {
		return res, &PhaseError{Phase: PhaseCategories, Err: err}
	}
	if err := s.seedProducts(ctx, counts.Products, res); err != nil {
		return res, &PhaseError{Phase: PhaseProducts, Err: err}
	}
	if err := s.seedCustomers(ctx, counts.Customers, storeID, res); err != nil {
		return res, &PhaseError{Phase: PhaseCustomers, Err: err}
	}
	if err := s.seedOrders(ctx, counts.Orders, storeID, res); err != nil {
		return res, &PhaseError{Phase: PhaseOrders, Err: err}
	}

	color.Green("✅ Generate complete! Inserted %s", res.Summary())
	return res, nil
}

func (s *Seeder) seedCategories(ctx context.Context, count int, res *Result) error {
	if count <= 0 {
		return nil
	}
	color.Cyan("  📝 Seeding categories (%d records)...", count)

	// Parents come from a snapshot taken before the loop; rows inserted
	// here never become parent candidates within the same run.
	parents, err := s.store.CategoryIDs(ctx)
	if err != nil {
		return err
	}
	if len(parents) == 0 {
		return &PreconditionError{Missing: "parent category"}
	}

	for i := 0; i < count; i++ {
		category := s.factory.Category(i, s.factory.pick(parents))
		id, err := s.store.Insert(ctx, "categories", category.Values())
		if err != nil {
			return err
		}

		slug := s.factory.URLRecord("Category", id, category.Name)
		if _, err := s.store.Insert(ctx, "url_records", slug.Values()); err != nil {
			return err
		}
		res.Categories++
	}

	color.Green("  ✅ categories seeded")
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context, count int, res *Result) error {
	if count <= 0 {
		return nil
	}
	color.Cyan("  📝 Seeding products (%d records)...", count)

	categories, err := s.store.CategoryIDs(ctx)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		product := s.factory.Product(i)
		id, err := s.store.Insert(ctx, "products", product.Values())
		if err != nil {
			return err
		}

		slug := s.factory.URLRecord("Product", id, product.Name)
		if _, err := s.store.Insert(ctx, "url_records", slug.Values()); err != nil {
			return err
		}
		res.Products++

		if len(categories) == 0 {
			continue
		}
		for j := s.rng.Intn(5); j > 0; j-- {
			link := s.factory.ProductCategory(id, s.factory.pick(categories))
			if _, err := s.store.Insert(ctx, "product_categories", link.Values()); err != nil {
				return err
			}
			res.ProductCategories++
		}
	}

	color.Green("  ✅ products seeded")
	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context, count int, storeID int64, res *Result) error {
	// The role is validated even for a zero count; a store without it is
	// broken for every later run.
	roleID, err := s.store.CustomerRoleIDBySystemName(ctx, registeredRoleName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &PreconditionError{Missing: fmt.Sprintf("%q customer role", registeredRoleName)}
		}
		return err
	}
	if count <= 0 {
		return nil
	}
	color.Cyan("  📝 Seeding customers (%d records)...", count)

	stateID, err := s.store.StateProvinceIDByName(ctx, "California")
	if err != nil {
		return err
	}
	countryID, err := s.store.CountryIDByISO3(ctx, "USA")
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		address := s.factory.Address(i, stateID, countryID)
		addressID, err := s.store.Insert(ctx, "addresses", address.Values())
		if err != nil {
			return err
		}

		customer := s.factory.Customer(i, storeID, addressID)
		customerID, err := s.store.Insert(ctx, "customers", customer.Values())
		if err != nil {
			return err
		}

		addressMapping := CustomerAddressMapping{CustomerID: customerID, AddressID: addressID}
		if _, err := s.store.Insert(ctx, "customer_address_mappings", addressMapping.Values()); err != nil {
			return err
		}
		roleMapping := CustomerRoleMapping{CustomerID: customerID, CustomerRoleID: roleID}
		if _, err := s.store.Insert(ctx, "customer_role_mappings", roleMapping.Values()); err != nil {
			return err
		}

		names := []GenericAttribute{
			{EntityID: customerID, KeyGroup: "Customer", Key: "FirstName", Value: address.FirstName},
			{EntityID: customerID, KeyGroup: "Customer", Key: "LastName", Value: address.LastName},
		}
		for _, attribute := range names {
			if _, err := s.store.Insert(ctx, "generic_attributes", attribute.Values()); err != nil {
				return err
			}
		}

		if _, err := s.store.Insert(ctx, "customer_passwords", s.factory.Password(customerID).Values()); err != nil {
			return err
		}
		res.Customers++
	}

	color.Green("  ✅ customers seeded")
	return nil
}

func (s *Seeder) seedOrders(ctx context.Context, count int, storeID int64, res *Result) error {
	languageID, err := s.store.FirstLanguageID(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &PreconditionError{Missing: "language"}
		}
		return err
	}
	if count <= 0 {
		return nil
	}
	color.Cyan("  📝 Seeding orders (%d records)...", count)

	customers, err := s.store.Customers(ctx)
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		return &PreconditionError{Missing: "customer"}
	}

	productIDs, err := s.store.ProductIDs(ctx)
	if err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return &PreconditionError{Missing: "product"}
	}

	fallbackAddressID, err := s.store.FirstAddressID(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &PreconditionError{Missing: "fallback address"}
		}
		return err
	}

	for i := 0; i < count; i++ {
		customer := customers[s.rng.Intn(len(customers))]

		order := s.factory.Order(customer, storeID, languageID, fallbackAddressID)
		orderID, err := s.store.Insert(ctx, "orders", order.Values())
		if err != nil {
			return err
		}
		// The human-readable order number is the assigned id, set in a
		// second write once the id is known.
		number := map[string]any{"custom_order_number": strconv.FormatInt(orderID, 10)}
		if err := s.store.Update(ctx, "orders", orderID, number); err != nil {
			return err
		}
		res.Orders++

		for j := s.rng.Intn(4) + 1; j > 0; j-- {
			item := s.factory.OrderItem(orderID, s.factory.pick(productIDs))
			itemID, err := s.store.Insert(ctx, "order_items", item.Values())
			if err != nil {
				return err
			}
			res.OrderItems++

			if s.rng.Intn(3) == 1 {
				card := s.factory.GiftCard(itemID)
				if _, err := s.store.Insert(ctx, "gift_cards", card.Values()); err != nil {
					return err
				}
				res.GiftCards++
			}
		}

		for _, text := range orderNoteTexts {
			note := s.factory.OrderNote(orderID, text)
			if _, err := s.store.Insert(ctx, "order_notes", note.Values()); err != nil {
				return err
			}
			res.OrderNotes++
		}
	}

	color.Green("  ✅ orders seeded")
	return nil
}
