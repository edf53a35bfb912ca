// Package analysis computes the ranked summaries drawn from a cleaned table.
// Every function here is pure: no I/O and the input table is never modified.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/JonMunkholm/psanalysis/internal/dataset"
)

// DefaultTopN is the size of the published ranking.
const DefaultTopN = 10

// GameSales is one (Name, Platform) group with its summed global sales.
type GameSales struct {
	Name        string
	Platform    string
	GlobalSales float64
}

// Label renders the game as "Name (Platform)".
func (g GameSales) Label() string {
	return g.Name + " (" + g.Platform + ")"
}

// GenreSales is one genre with its summed global sales.
type GenreSales struct {
	Genre       string
	GlobalSales float64
}

type gameKey struct {
	name     string
	platform string
}

// group accumulates values per key, remembering first-appearance order.
type group[K comparable] struct {
	order  []K
	values map[K][]float64
}

func newGroup[K comparable]() *group[K] {
	return &group[K]{values: make(map[K][]float64)}
}

func (g *group[K]) add(key K, v float64) {
	if _, seen := g.values[key]; !seen {
		g.order = append(g.order, key)
	}
	g.values[key] = append(g.values[key], v)
}

func (g *group[K]) sum(key K) float64 {
	return floats.Sum(g.values[key])
}

// TopNBySales groups records by (Name, Platform), sums Global_Sales and
// returns the n largest groups in descending order. Ties keep the order in
// which their groups first appeared. n <= 0 yields an empty ranking; n larger
// than the number of groups yields every group.
func TopNBySales(t *dataset.Table, n int) []GameSales {
	if n <= 0 || t.Len() == 0 {
		return []GameSales{}
	}

	g := newGroup[gameKey]()
	for _, rec := range t.Records {
		if !rec.GlobalSales.Valid {
			continue
		}
		g.add(gameKey{name: rec.Name, platform: rec.Platform}, rec.GlobalSales.Float64)
	}

	out := make([]GameSales, 0, len(g.order))
	for _, key := range g.order {
		out = append(out, GameSales{
			Name:        key.name,
			Platform:    key.platform,
			GlobalSales: g.sum(key),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GlobalSales > out[j].GlobalSales
	})

	if n < len(out) {
		out = out[:n]
	}
	return out
}

// GenreSalesSummary sums Global_Sales per genre, sorted descending.
// Ties keep first-appearance order.
func GenreSalesSummary(t *dataset.Table) []GenreSales {
	if t.Len() == 0 {
		return []GenreSales{}
	}

	g := newGroup[string]()
	for _, rec := range t.Records {
		if !rec.GlobalSales.Valid {
			continue
		}
		g.add(rec.Genre, rec.GlobalSales.Float64)
	}

	out := make([]GenreSales, 0, len(g.order))
	for _, genre := range g.order {
		out = append(out, GenreSales{Genre: genre, GlobalSales: g.sum(genre)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GlobalSales > out[j].GlobalSales
	})
	return out
}

// Ascending returns a copy of rows ordered by increasing sales, the order a
// horizontal bar chart draws bottom to top.
func Ascending(rows []GameSales) []GameSales {
	out := make([]GameSales, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GlobalSales < out[j].GlobalSales
	})
	return out
}
