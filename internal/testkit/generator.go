// Package testkit generates seeded synthetic tables with known statistical
// structure, used as gold-standard fixtures in engine tests.
package testkit

import (
	"fmt"
	"math/rand"

	"github.com/Yadav-Aayansh/data-profile/domain/table"
)

// OrdersConfig configures the synthetic order-table generator.
type OrdersConfig struct {
	Rows        int
	Seed        int64
	MissingRate float64 // fraction of rows with the discount column absent
}

// DefaultOrdersConfig returns a deterministic medium-sized fixture.
func DefaultOrdersConfig() OrdersConfig {
	return OrdersConfig{
		Rows:        200,
		Seed:        42,
		MissingRate: 0.25,
	}
}

var cities = []struct {
	city    string
	country string
}{
	{"paris", "fr"},
	{"lyon", "fr"},
	{"berlin", "de"},
	{"munich", "de"},
	{"madrid", "es"},
}

// GenerateOrders builds a table with baked-in structure:
//   - order_id is a candidate key (unique, never missing)
//   - city -> country is an exact functional dependency
//   - total = 2 * quantity, a perfect linear pair
//   - discount is missing together with note at the configured rate
func GenerateOrders(cfg OrdersConfig) table.Table {
	rng := rand.New(rand.NewSource(cfg.Seed))

	tbl := make(table.Table, 0, cfg.Rows)
	for i := 0; i < cfg.Rows; i++ {
		loc := cities[rng.Intn(len(cities))]
		quantity := float64(1 + rng.Intn(50))

		rec := table.Record{
			"order_id": fmt.Sprintf("ord-%05d", i),
			"city":     loc.city,
			"country":  loc.country,
			"quantity": quantity,
			"total":    2 * quantity,
			"express":  rng.Float64() < 0.2,
		}
		if rng.Float64() >= cfg.MissingRate {
			rec["discount"] = rng.Float64() * 15
			rec["note"] = fmt.Sprintf("note-%d", rng.Intn(3))
		}
		tbl = append(tbl, rec)
	}
	return tbl
}
