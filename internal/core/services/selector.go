package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/custodia-labs/docrec/internal/core/domain"
	"github.com/custodia-labs/docrec/internal/core/ports/driven"
)

// errNoSampler is returned when SelectBands is called without a random source.
var errNoSampler = errors.New("sampler is required")

// SelectBands partitions the documents related to index into the top, medium
// and diverse bands. types holds every document's category in table order.
//
// The top band is deterministic. The medium and diverse bands are drawn from
// sampler, so a seeded sampler makes the whole selection reproducible.
// The selected document never appears in any band.
func SelectBands(
	provider driven.SimilarityProvider,
	index int,
	types []string,
	opts domain.RecommendOptions,
	sampler driven.Sampler,
) (domain.BandSelection, error) {
	n := provider.Size()
	if index < 0 || index >= n {
		return domain.BandSelection{}, domain.OutOfRange(index, n)
	}
	if len(types) != n {
		return domain.BandSelection{}, fmt.Errorf("%w: %d types for %d documents", domain.ErrInvalidInput, len(types), n)
	}
	if err := opts.Validate(); err != nil {
		return domain.BandSelection{}, err
	}
	if sampler == nil {
		return domain.BandSelection{}, errNoSampler
	}

	row, err := provider.Row(index)
	if err != nil {
		return domain.BandSelection{}, fmt.Errorf("reading similarity row: %w", err)
	}

	ranked := rankRow(row, index)

	sel := domain.BandSelection{
		Top:     topBand(ranked, opts.TopN),
		Medium:  mediumBand(ranked, index, opts, sampler),
		Diverse: diverseBand(ranked, types, index, opts, sampler),
	}
	sel.Combined = combine(sel.Top, sel.Medium, sel.Diverse)

	return sel, nil
}

// rankRow orders every document by descending similarity to index.
// The selected document always takes rank 0 even if another document ties
// its self-similarity; remaining ties go to the lower index.
func rankRow(row []float64, index int) []domain.ScoreEntry {
	ranked := make([]domain.ScoreEntry, len(row))
	for i, score := range row {
		ranked[i] = domain.ScoreEntry{Index: i, Score: score}
	}

	sort.Slice(ranked, func(a, b int) bool {
		ea, eb := ranked[a], ranked[b]
		if ea.Index == index || eb.Index == index {
			return ea.Index == index
		}
		if ea.Score != eb.Score {
			return ea.Score > eb.Score
		}
		return ea.Index < eb.Index
	})

	return ranked
}

// topBand takes ranks 1..topN.
func topBand(ranked []domain.ScoreEntry, topN int) []int {
	end := min(1+topN, len(ranked))
	if end <= 1 {
		return []int{}
	}

	top := make([]int, 0, end-1)
	for _, e := range ranked[1:end] {
		top = append(top, e.Index)
	}
	return top
}

// mediumBand samples from ranks [N/start, N/end).
func mediumBand(ranked []domain.ScoreEntry, index int, opts domain.RecommendOptions, sampler driven.Sampler) []int {
	n := len(ranked)
	lo := n / opts.MediumStartDivisor
	hi := min(n/opts.MediumEndDivisor, n)
	if lo >= hi {
		return []int{}
	}

	pool := make([]int, 0, hi-lo)
	for _, e := range ranked[lo:hi] {
		// Rank 0 falls inside the slice for corpora smaller than the start divisor.
		if e.Index != index {
			pool = append(pool, e.Index)
		}
	}

	return sample(pool, opts.MediumN, sampler)
}

// diverseBand shortlists the most similar documents of another type and samples from them.
func diverseBand(
	ranked []domain.ScoreEntry,
	types []string,
	index int,
	opts domain.RecommendOptions,
	sampler driven.Sampler,
) []int {
	selectedType := types[index]
	limit := opts.DiverseShortlistFactor * opts.DiverseN

	shortlist := make([]int, 0, limit)
	for _, e := range ranked {
		if len(shortlist) == limit {
			break
		}
		if types[e.Index] != selectedType {
			shortlist = append(shortlist, e.Index)
		}
	}

	return sample(shortlist, opts.DiverseN, sampler)
}

// sample draws min(k, len(pool)) distinct elements uniformly at random.
// pool is not modified.
func sample(pool []int, k int, sampler driven.Sampler) []int {
	k = min(k, len(pool))
	if k <= 0 {
		return []int{}
	}

	work := make([]int, len(pool))
	copy(work, pool)

	// Partial Fisher-Yates: the first k slots end up holding the sample.
	for i := 0; i < k; i++ {
		j := i + sampler.IntN(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}

	return work[:k]
}

// combine concatenates the bands and keeps the first occurrence of each index.
func combine(bands ...[]int) []int {
	seen := make(map[int]struct{})
	combined := make([]int, 0)
	for _, band := range bands {
		for _, idx := range band {
			if _, ok := seen[idx]; ok {
				continue
			}
			seen[idx] = struct{}{}
			combined = append(combined, idx)
		}
	}
	return combined
}
