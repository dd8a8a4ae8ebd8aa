package hamming

import (
	"sync"

	"gonum.org/v1/gonum/stat/combin"
)

// pairBufferLen sizes the hit-pair channel in worker mode; large enough
// to keep probing ahead of the union loop on bursty hits.
const pairBufferLen = 1024

// MergeAtDistance unions every pair of elements whose vectors differ in
// exactly d bit positions. For each distinct stored vector it probes
// the C(L,d) candidates obtained by flipping d positions, looking each
// candidate up in the index; stored pairs are never compared directly,
// so the cost scales with C(L,d), not with the number of pairs.
//
// Candidates reachable from both endpoints are discovered twice; the
// second union is a no-op, not an error. Merges accumulate on the
// Clustering across calls.
//
// Error Conditions:
//   - ErrBadDistance : d < 1. A d exceeding Bits() is a silent no-op
//     instead, since no candidate has that many positions to flip.
//
// Complexity: O(M' · C(L,d) · (d + L/64)) for M' distinct vectors.
func (c *Clustering) MergeAtDistance(d int) error {
	if d < 1 {
		return ErrBadDistance
	}
	if d > c.bits {
		return nil
	}

	if c.opts.Workers > 1 {
		return c.mergeParallel(d)
	}

	// Sequential: one scratch state, unions applied inline.
	e := &enumerator{
		c:    c,
		emit: func(a, b int) error { return c.unionPair(a, b, d) },
	}
	for i := range c.vecs {
		if err := e.origin(i, d); err != nil {
			return err
		}
	}

	return nil
}

// enumerator carries the scratch state one goroutine needs to probe
// candidates: a private working copy, a reusable key buffer, and the
// sink receiving discovered pairs.
type enumerator struct {
	c    *Clustering
	w    Vector // working copy, flipped and restored in place
	key  []byte // probe buffer, reused across lookups
	emit func(a, b int) error
}

// origin enumerates every candidate at exactly distance d from
// vecs[i], dispatching on the configured method.
func (e *enumerator) origin(i, d int) error {
	e.w.copyFrom(e.c.vecs[i])

	switch e.c.opts.Method {
	case MethodBacktrack:
		return e.backtrack(e.c.owner[i], 0, d)
	case MethodCombin:
		return e.combinations(e.c.owner[i], d)
	default:
		// resolve() vets the method up front; this is the dispatch's
		// completeness case.
		return ErrUnknownMethod
	}
}

// backtrack is the depth-first flip/restore walk: choose the next flip
// position from start onward, flip it, descend, flip it back, advance.
// The forward-only cursor visits every combination of positions exactly
// once; the loop bound leaves room for the left-1 flips still owed.
func (e *enumerator) backtrack(origin, start, left int) error {
	if left == 0 {
		return e.probe(origin)
	}

	for i := start; i <= e.c.bits-left; i++ {
		e.w.Flip(i)
		if err := e.backtrack(origin, i+1, left-1); err != nil {
			return err
		}
		e.w.Flip(i)
	}

	return nil
}

// combinations drives the same probes off a lexicographic combination
// generator instead of recursion: flip the d chosen positions, probe,
// restore, next combination.
func (e *enumerator) combinations(origin, d int) error {
	gen := combin.NewCombinationGenerator(e.c.bits, d)
	positions := make([]int, d)
	for gen.Next() {
		gen.Combination(positions)
		for _, p := range positions {
			e.w.Flip(p)
		}
		err := e.probe(origin)
		for _, p := range positions {
			e.w.Flip(p)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// probe looks the working copy up in the index. Distinct stored
// vectors have distinct keys, so a hit after d >= 1 flips is always a
// genuinely different element; redundant rediscovery of a pair is
// handled by union idempotence downstream.
func (e *enumerator) probe(origin int) error {
	e.key = e.w.appendKey(e.key[:0])
	if hit, ok := e.c.byKey[string(e.key)]; ok {
		return e.emit(origin, hit)
	}

	return nil
}

// mergeParallel fans origins out to opts.Workers goroutines. Workers
// probe the read-only index with private scratch state and report hit
// pairs on a channel; every union stays on the calling goroutine, so
// the disjoint-set structure never sees concurrent mutation and the
// final partition matches the sequential result exactly.
func (c *Clustering) mergeParallel(d int) error {
	var (
		jobs      = make(chan int, c.opts.Workers)
		pairs     = make(chan [2]int, pairBufferLen)
		workerErr = make(chan error, c.opts.Workers)
		wg        sync.WaitGroup
	)

	// Feeder: one job per distinct vector.
	go func() {
		for i := range c.vecs {
			jobs <- i
		}
		close(jobs)
	}()

	// Workers: enumerate and report; on failure keep draining jobs so
	// the feeder can always finish.
	for w := 0; w < c.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e := &enumerator{
				c: c,
				emit: func(a, b int) error {
					pairs <- [2]int{a, b}

					return nil
				},
			}
			failed := false
			for i := range jobs {
				if failed {
					continue
				}
				if err := e.origin(i, d); err != nil {
					workerErr <- err
					failed = true
				}
			}
		}()
	}

	// Closer: when the last worker exits, the pair stream ends.
	go func() {
		wg.Wait()
		close(pairs)
	}()

	// Collector: the single owner of the disjoint-set structure.
	var firstErr error
	for p := range pairs {
		if firstErr != nil {
			continue // drain so workers never block on a full buffer
		}
		if err := c.unionPair(p[0], p[1], d); err != nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		select {
		case err := <-workerErr:
			firstErr = err
		default:
		}
	}

	return firstErr
}
