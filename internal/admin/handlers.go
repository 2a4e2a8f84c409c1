package admin

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/commercekit/filldb/internal/config"
	"github.com/commercekit/filldb/internal/seeder"
)

// Response is the JSON API envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (s *Server) handleConfigure(c *fiber.Ctx) error {
	return c.Render("templates/configure", fiber.Map{
		"Title":  "Fill database with random data",
		"Counts": s.cfg.Seed,
	})
}

func (s *Server) handleSubmit(c *fiber.Ctx) error {
	counts, err := parseCounts(c)
	if err != nil {
		// Malformed input never reaches the seeder.
		c.Status(fiber.StatusBadRequest)
		return c.Render("templates/configure", fiber.Map{
			"Title":  "Fill database with random data",
			"Counts": s.cfg.Seed,
			"Error":  "All four counts must be whole numbers",
		})
	}

	result, runErr := s.run(c, counts)
	if runErr != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.Render("templates/configure", fiber.Map{
			"Title":  "Fill database with random data",
			"Counts": s.cfg.Seed,
			"Error":  runErr.Error(),
		})
	}

	// Only a fully successful run makes the submitted counts the new
	// defaults.
	if err := s.cfg.SaveCounts(counts); err != nil {
		return c.Render("templates/configure", fiber.Map{
			"Title":   "Fill database with random data",
			"Counts":  counts,
			"Message": "Generate complete! Inserted " + result.Summary(),
			"Error":   "Counts could not be saved: " + err.Error(),
		})
	}

	return c.Render("templates/configure", fiber.Map{
		"Title":   "Fill database with random data",
		"Counts":  counts,
		"Message": "Generate complete! Inserted " + result.Summary(),
	})
}

func (s *Server) handleGetSettings(c *fiber.Ctx) error {
	return c.JSON(Response{Success: true, Data: s.cfg.Seed})
}

func (s *Server) handleFill(c *fiber.Ctx) error {
	var counts config.Counts
	if err := c.BodyParser(&counts); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Success: false, Message: "Invalid request"})
	}

	result, err := s.run(c, counts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(Response{Success: false, Message: err.Error()})
	}

	if err := s.cfg.SaveCounts(counts); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(Response{Success: false, Message: err.Error(), Data: result})
	}

	return c.JSON(Response{Success: true, Message: "Generate complete", Data: result})
}

func (s *Server) run(c *fiber.Ctx, counts config.Counts) (*seeder.Result, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return seeder.New(s.store, rng).Run(c.UserContext(), counts)
}

func parseCounts(c *fiber.Ctx) (config.Counts, error) {
	var counts config.Counts
	var err error

	if counts.Categories, err = strconv.Atoi(c.FormValue("countCategories")); err != nil {
		return counts, err
	}
	if counts.Products, err = strconv.Atoi(c.FormValue("countProducts")); err != nil {
		return counts, err
	}
	if counts.Orders, err = strconv.Atoi(c.FormValue("countOrders")); err != nil {
		return counts, err
	}
	if counts.Customers, err = strconv.Atoi(c.FormValue("countCustomers")); err != nil {
		return counts, err
	}
	return counts, nil
}
