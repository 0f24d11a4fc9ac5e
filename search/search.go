// Package search generates left-truncatable primes in ascending order.
//
// Each round prepends one more digit to the extendable LTPs found in the
// previous round. Within a round digits are tried from 1 to 9 and, for each
// digit, records are visited oldest first; that traversal alone yields the
// LTPs in strictly ascending order.
package search

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	ltp "github.com/BackendStack21/ltp-go"
	"github.com/BackendStack21/ltp-go/arith"
	"github.com/BackendStack21/ltp-go/core"
	"github.com/BackendStack21/ltp-go/primality"
	"github.com/BackendStack21/ltp-go/ring"
	"github.com/BackendStack21/ltp-go/utils"
)

// minParallelBatch is the smallest digit pass worth spreading across workers.
const minParallelBatch = 64

// errStop ends a walk once the requested index has been visited.
var errStop = errors.New("stop")

// Engine finds LTPs for one parameter set. It holds no per-search state and is
// safe for concurrent use.
type Engine struct {
	params  ltp.Params
	tester  primality.Tester
	workers int
}

// Option configures an Engine.
type Option func(*Engine)

// WithTester replaces the deterministic Miller-Rabin tester.
// If nil is passed, primality.Deterministic is used.
func WithTester(t primality.Tester) Option {
	return func(e *Engine) {
		if t == nil {
			t = primality.Deterministic{}
		}
		e.tester = t
	}
}

// WithWorkers tests the candidates of a digit pass on up to n goroutines.
// Values below 2 keep the search sequential.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// New returns an Engine for params.
func New(params ltp.Params, opts ...Option) (*Engine, error) {
	if err := core.ValidateParams(params); err != nil {
		return nil, err
	}
	e := &Engine{
		params:  params,
		tester:  primality.Deterministic{},
		workers: 1,
	}
	e.params.Seeds = append([]uint64(nil), params.Seeds...)
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Params returns the engine's parameter set.
func (e *Engine) Params() ltp.Params {
	p := e.params
	p.Seeds = append([]uint64(nil), p.Seeds...)
	return p
}

// Find returns the n-th LTP, counting from 1.
func (e *Engine) Find(n int) (uint32, error) {
	var found uint32
	err := e.Walk(n, func(index int, value uint32) error {
		if index == n {
			found = value
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return found, nil
}

// List returns the first n LTPs.
func (e *Engine) List(n int) ([]uint32, error) {
	if err := core.CheckIndex(e.params, n); err != nil {
		return nil, err
	}
	out, err := utils.SafeMakeUint32Slice(n, utils.MaxListLength)
	if err != nil {
		return nil, err
	}
	err = e.Walk(n, func(_ int, value uint32) error {
		out = append(out, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Walk calls fn for the first n LTPs in ascending order. A non-nil error from
// fn stops the walk and is returned.
func (e *Engine) Walk(n int, fn func(index int, value uint32) error) error {
	if err := core.CheckIndex(e.params, n); err != nil {
		return err
	}
	s := &run{engine: e, n: n, fn: fn}
	err := s.execute()
	if errors.Is(err, errStop) {
		return nil
	}
	return err
}

// run is the state of a single search. The buffer is owned by it alone.
type run struct {
	engine *Engine
	n      int
	fn     func(int, uint32) error
	count  int
	buf    *ring.Buffer
}

func (r *run) emit(v uint64) error {
	r.count++
	if err := r.fn(r.count, uint32(v)); err != nil {
		return err
	}
	if r.count == r.n {
		return errStop
	}
	return nil
}

func (r *run) execute() error {
	p := r.engine.params
	for _, s := range p.Seeds {
		if err := r.emit(s); err != nil {
			return err
		}
	}

	buf, err := ring.New(p.Capacity)
	if err != nil {
		return err
	}
	r.buf = buf
	for _, s := range p.Seeds {
		if err := buf.Push(s); err != nil {
			return err
		}
	}

	for order := 1; order <= p.MaxOrder; order++ {
		if err := r.extend(order, order == p.MaxOrder); err != nil {
			return err
		}
	}
	return fmt.Errorf("index %d beyond order %d (found %d): %w", r.n, p.MaxOrder, r.count, ltp.ErrSearchExhausted)
}

// extend runs one round. The window is every record live when the round
// starts; it is read in place once per digit and released during the digit-9
// pass. Records pushed during the round land after the window, so Peek(k) for
// k below the window width always returns a window record.
// On the final round no record is stored, so extendability is not tested.
func (r *run) extend(order int, final bool) error {
	scale, err := arith.Pow10(order)
	if err != nil {
		return err
	}
	nextScale, err := arith.Pow10(order + 1)
	if err != nil {
		return err
	}

	width := r.buf.Len()
	candidates := make([]uint64, width)
	prime := make([]bool, width)

	for digit := uint64(1); digit <= 9; digit++ {
		for k := range candidates {
			rec, ok := r.buf.Peek(k)
			if !ok {
				return fmt.Errorf("window record %d of %d missing", k, width)
			}
			c, err := utils.SafeMultiplyAdd(rec, digit, scale)
			if err != nil {
				return err
			}
			candidates[k] = c
		}
		if err := r.engine.testAll(candidates, prime); err != nil {
			return err
		}

		for k, c := range candidates {
			if digit == 9 {
				r.buf.Pop()
			}
			if !prime[k] {
				continue
			}
			if err := r.emit(c); err != nil {
				return err
			}
			if final {
				continue
			}
			ok, err := r.engine.extendable(c, nextScale)
			if err != nil {
				return err
			}
			if ok {
				if err := r.buf.Push(c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// extendable reports whether some digit v in 1..9 makes c + v*scale prime.
func (e *Engine) extendable(c, scale uint64) (bool, error) {
	for v := uint64(1); v <= 9; v++ {
		next, err := utils.SafeMultiplyAdd(c, v, scale)
		if err != nil {
			return false, err
		}
		ok, err := e.tester.IsPrime(next)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// testAll fills prime[k] with the decision for candidates[k]. Results are
// written by position, so the caller sees them in buffer order regardless of
// completion order.
func (e *Engine) testAll(candidates []uint64, prime []bool) error {
	if e.workers < 2 || len(candidates) < minParallelBatch {
		for k, c := range candidates {
			ok, err := e.tester.IsPrime(c)
			if err != nil {
				return err
			}
			prime[k] = ok
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(e.workers)
	chunk := (len(candidates) + e.workers - 1) / e.workers
	for lo := 0; lo < len(candidates); lo += chunk {
		lo := lo
		hi := min(lo+chunk, len(candidates))
		g.Go(func() error {
			for k := lo; k < hi; k++ {
				ok, err := e.tester.IsPrime(candidates[k])
				if err != nil {
					return err
				}
				prime[k] = ok
			}
			return nil
		})
	}
	return g.Wait()
}
