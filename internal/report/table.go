package report

import (
	"fmt"
	"sort"

	"pqbench/internal/benchmark"
)

// Table is an ordered set of measurement rows.
type Table []benchmark.Record

// Load reads a results CSV.
func Load(path string) (Table, error) {
	records, err := benchmark.ReadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return Table(records), nil
}

// Concat appends tables row-wise, keeping row order.
func Concat(tables ...Table) Table {
	var n int
	for _, t := range tables {
		n += len(t)
	}
	out := make(Table, 0, n)
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// Filter returns the rows matching keep.
func (t Table) Filter(keep func(benchmark.Record) bool) Table {
	out := Table{}
	for _, r := range t {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// WithOperations returns the rows whose operation is one of ops.
func (t Table) WithOperations(ops ...benchmark.Operation) Table {
	return t.Filter(func(r benchmark.Record) bool {
		for _, op := range ops {
			if r.Operation == op {
				return true
			}
		}
		return false
	})
}

// WithAlgorithm returns the rows for one algorithm.
func (t Table) WithAlgorithm(alg string) Table {
	return t.Filter(func(r benchmark.Record) bool { return r.Algorithm == alg })
}

// Bar is one grouped value in a chart.
type Bar struct {
	Algorithm string
	Operation benchmark.Operation
	Value     float64
}

// Label is the tick label shown under the bar.
func (b Bar) Label() string {
	return fmt.Sprintf("(%s, %s)", b.Algorithm, b.Operation)
}

// GroupMean averages avg_time_s per (algorithm, operation) and returns the
// groups sorted by algorithm, then operation.
func (t Table) GroupMean() []Bar {
	type key struct {
		alg string
		op  benchmark.Operation
	}
	sums := make(map[key]float64)
	counts := make(map[key]int)
	for _, r := range t {
		k := key{r.Algorithm, r.Operation}
		sums[k] += r.AvgTimeS
		counts[k]++
	}

	bars := make([]Bar, 0, len(sums))
	for k, sum := range sums {
		bars = append(bars, Bar{Algorithm: k.alg, Operation: k.op, Value: sum / float64(counts[k])})
	}
	sort.Slice(bars, func(i, j int) bool {
		if bars[i].Algorithm != bars[j].Algorithm {
			return bars[i].Algorithm < bars[j].Algorithm
		}
		return bars[i].Operation < bars[j].Operation
	})
	return bars
}
