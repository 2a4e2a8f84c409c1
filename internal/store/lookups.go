package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// ErrNotFound is returned when a required reference row does not exist.
// The seeder turns it into a missing-precondition failure.
var ErrNotFound = errors.New("not found")

// CustomerRef is the slice of a customer row the order phase needs.
type CustomerRef struct {
	ID                int64
	BillingAddressID  sql.NullInt64
	ShippingAddressID sql.NullInt64
}

func (s *Store) firstID(ctx context.Context, table string) (int64, error) {
	query, args, err := s.builder.Select("id").From(table).OrderBy("id").Limit(1).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build lookup for %s: %w", table, err)
	}

	var id int64
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", table, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to query %s: %w", table, err)
	}
	return id, nil
}

// FirstStoreID returns the default store. Every run requires one.
func (s *Store) FirstStoreID(ctx context.Context) (int64, error) {
	return s.firstID(ctx, "stores")
}

func (s *Store) FirstLanguageID(ctx context.Context) (int64, error) {
	return s.firstID(ctx, "languages")
}

// FirstAddressID is the fallback billing/shipping address for orders whose
// customer has none.
func (s *Store) FirstAddressID(ctx context.Context) (int64, error) {
	return s.firstID(ctx, "addresses")
}

// StateProvinceIDByName resolves a state by display name. A missing state
// is not an error; the address foreign key is simply left null.
func (s *Store) StateProvinceIDByName(ctx context.Context, name string) (*int64, error) {
	return s.optionalID(ctx, "state_provinces", sq.Eq{"name": name})
}

// CountryIDByISO3 resolves a country by its three-letter ISO code, again
// null on absence.
func (s *Store) CountryIDByISO3(ctx context.Context, code string) (*int64, error) {
	return s.optionalID(ctx, "countries", sq.Eq{"three_letter_iso_code": code})
}

func (s *Store) optionalID(ctx context.Context, table string, where sq.Eq) (*int64, error) {
	query, args, err := s.builder.Select("id").From(table).Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup for %s: %w", table, err)
	}

	var id int64
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	return &id, nil
}

// CustomerRoleIDBySystemName resolves a role such as "Registered".
func (s *Store) CustomerRoleIDBySystemName(ctx context.Context, systemName string) (int64, error) {
	query, args, err := s.builder.Select("id").From("customer_roles").
		Where(sq.Eq{"system_name": systemName}).Limit(1).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build role lookup: %w", err)
	}

	var id int64
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("customer role %q: %w", systemName, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to query customer_roles: %w", err)
	}
	return id, nil
}

// CategoryIDs returns a snapshot of all category ids, fetched once per
// phase so parent selection stays consistent while new rows are written.
func (s *Store) CategoryIDs(ctx context.Context) ([]int64, error) {
	return s.allIDs(ctx, "categories")
}

// ProductIDs returns a snapshot of all product ids for order items.
func (s *Store) ProductIDs(ctx context.Context) ([]int64, error) {
	return s.allIDs(ctx, "products")
}

func (s *Store) allIDs(ctx context.Context, table string) ([]int64, error) {
	query, args, err := s.builder.Select("id").From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot query for %s: %w", table, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s id: %w", table, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Customers returns a snapshot of all customers with their address links.
func (s *Store) Customers(ctx context.Context) ([]CustomerRef, error) {
	query, args, err := s.builder.
		Select("id", "billing_address_id", "shipping_address_id").
		From("customers").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build customer snapshot query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []CustomerRef
	for rows.Next() {
		var c CustomerRef
		if err := rows.Scan(&c.ID, &c.BillingAddressID, &c.ShippingAddressID); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
