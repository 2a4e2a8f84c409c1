package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/commercekit/filldb/internal/config"
	"github.com/commercekit/filldb/internal/seeder"
	"github.com/commercekit/filldb/internal/store"
)

var (
	fillCategories int
	fillProducts   int
	fillOrders     int
	fillCustomers  int
	fillSeed       int64
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Run one seeding pass against the configured database",
	Long: `Insert the configured number of random categories, products, customers
and orders. Count flags override the persisted settings; a successful run
persists the counts it used as the new defaults.

Examples:
  filldb fill
  filldb fill --categories 5 --products 100
  filldb fill --orders 0 --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		counts := cfg.Seed
		if cmd.Flags().Changed("categories") {
			counts.Categories = fillCategories
		}
		if cmd.Flags().Changed("products") {
			counts.Products = fillProducts
		}
		if cmd.Flags().Changed("orders") {
			counts.Orders = fillOrders
		}
		if cmd.Flags().Changed("customers") {
			counts.Customers = fillCustomers
		}

		st, err := store.Open(cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer st.Close()

		seed := time.Now().UnixNano()
		if cmd.Flags().Changed("seed") {
			seed = fillSeed
		}
		rng := rand.New(rand.NewSource(seed))

		if _, err := seeder.New(st, rng).Run(cmd.Context(), counts); err != nil {
			return err
		}

		if err := cfg.SaveCounts(counts); err != nil {
			color.Yellow("⚠️  Counts not persisted: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)
	fillCmd.Flags().IntVar(&fillCategories, "categories", 0, "Number of categories to insert")
	fillCmd.Flags().IntVar(&fillProducts, "products", 0, "Number of products to insert")
	fillCmd.Flags().IntVar(&fillOrders, "orders", 0, "Number of orders to insert")
	fillCmd.Flags().IntVar(&fillCustomers, "customers", 0, "Number of customers to insert")
	fillCmd.Flags().Int64Var(&fillSeed, "seed", 0, "Random seed (default: system entropy)")
}
