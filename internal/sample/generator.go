// Package sample generates synthetic mention batches for demo sessions.
// Batches are memoized per requested count so that repeated pipeline runs within
// one process observe identical data instead of a fresh random draw.
package sample

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"negative-mentions/internal/domain/entity"
)

// lookbackDays is the sampling window for mention dates: the last 5 years.
const lookbackDays = 365 * 5

// Generator produces synthetic Mention batches from a catalog.
// The zero value is not usable; construct with NewGenerator.
type Generator struct {
	catalog entity.Catalog
	now     func() time.Time
	rng     *rand.Rand

	mu    sync.Mutex
	cache map[int][]entity.Mention
}

// NewGenerator creates a Generator over the given catalog, seeded from the
// current time.
func NewGenerator(catalog entity.Catalog) *Generator {
	return &Generator{
		catalog: catalog,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:   make(map[int][]entity.Mention),
	}
}

// NewGeneratorWithClock creates a Generator with a fixed clock and seed.
// Intended for tests that need reproducible batches.
func NewGeneratorWithClock(catalog entity.Catalog, now func() time.Time, seed int64) *Generator {
	return &Generator{
		catalog: catalog,
		now:     now,
		rng:     rand.New(rand.NewSource(seed)),
		cache:   make(map[int][]entity.Mention),
	}
}

// Batch returns n synthetic mentions.
// The first call for a given n draws a fresh random batch; later calls with the
// same n return the identical cached slice. The cache is never evicted for the
// lifetime of the process, so every session served by one process sees the same
// sample data.
func (g *Generator) Batch(n int) []entity.Mention {
	g.mu.Lock()
	defer g.mu.Unlock()

	if batch, ok := g.cache[n]; ok {
		return batch
	}
	batch := g.generate(n)
	g.cache[n] = batch
	return batch
}

// generate draws one batch. Caller must hold g.mu (the shared rng is not
// otherwise synchronized).
func (g *Generator) generate(n int) []entity.Mention {
	base := entity.NormalizeDate(g.now())

	batch := make([]entity.Mention, 0, n)
	for i := 0; i < n; i++ {
		company := g.catalog.Companies[g.rng.Intn(len(g.catalog.Companies))]
		source := g.catalog.Sources[g.rng.Intn(len(g.catalog.Sources))]
		date := base.AddDate(0, 0, -g.rng.Intn(lookbackDays+1))

		var text string
		var score float64
		if g.rng.Float64() < 0.5 {
			kw := g.catalog.NegativeKeywords[g.rng.Intn(len(g.catalog.NegativeKeywords))]
			text = fmt.Sprintf("This is a user rant about %s: %s encountered while using their payments.", company, kw)
			score = -(0.2 + g.rng.Float64()*0.8)
		} else {
			text = fmt.Sprintf("User mentions %s in passing — neutral comment.", company)
			score = g.rng.Float64() * 0.2
		}

		batch = append(batch, entity.Mention{
			Company: company,
			Source:  source,
			Date:    date,
			Text:    text,
			Link:    fmt.Sprintf("https://example.com/post/%d", i),
			Score:   score,
		})
	}
	return batch
}
