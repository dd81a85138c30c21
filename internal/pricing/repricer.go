// Package pricing coalesces ramp configuration edits into pricing engine
// calls and applies the results back onto quotes.
package pricing

import (
	"context"
	"sync"
	"time"

	"samedayramps-backend/internal/domain"
	"samedayramps-backend/internal/logger"
)

// Engine computes pricing for a ramp configuration. Satisfied by
// pricingengine.Client.
type Engine interface {
	Calculate(ctx context.Context, cfg domain.RampConfiguration, installAddress, warehouseAddress string) (*domain.PricingCalculations, error)
}

// ApplyFunc receives the pricing result for a quote once a calculation
// completes and has not been superseded by a later edit.
type ApplyFunc func(quoteID string, calcs *domain.PricingCalculations)

type quoteState struct {
	timer *time.Timer
	// gen identifies the reprice request currently pending for this quote.
	// A calculation's result is applied only if no newer request was issued
	// while it was in flight.
	gen       uint64
	cfg       domain.RampConfiguration
	address   string
	warehouse string
}

// Repricer debounces per-quote configuration changes: a burst of edits inside
// the quiet window produces a single pricing engine call, and a result that
// arrives after a newer edit is discarded.
type Repricer struct {
	engine      Engine
	apply       ApplyFunc
	quiet       time.Duration
	callTimeout time.Duration

	mu     sync.Mutex
	gen    uint64
	states map[string]*quoteState
}

func NewRepricer(engine Engine, quiet, callTimeout time.Duration, apply ApplyFunc) *Repricer {
	return &Repricer{
		engine:      engine,
		apply:       apply,
		quiet:       quiet,
		callTimeout: callTimeout,
		states:      make(map[string]*quoteState),
	}
}

// Update registers a configuration change for a quote and (re)starts its quiet
// window. Quotes without an install address or with an empty configuration are
// not priced; any pending calculation for them is abandoned.
func (r *Repricer) Update(quoteID string, cfg domain.RampConfiguration, installAddress, warehouseAddress string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.states[quoteID]

	if installAddress == "" || cfg.IsEmpty() {
		if st != nil {
			st.timer.Stop()
			delete(r.states, quoteID)
		}
		return
	}

	if st == nil {
		st = &quoteState{}
		r.states[quoteID] = st
		st.timer = time.AfterFunc(r.quiet, func() { r.fire(quoteID) })
	} else {
		st.timer.Reset(r.quiet)
	}
	r.gen++
	st.gen = r.gen
	st.cfg = cfg
	st.address = installAddress
	st.warehouse = warehouseAddress
}

func (r *Repricer) fire(quoteID string) {
	r.mu.Lock()
	st, ok := r.states[quoteID]
	if !ok {
		r.mu.Unlock()
		return
	}
	gen := st.gen
	cfg := st.cfg
	address := st.address
	warehouse := st.warehouse
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), r.callTimeout)
	defer cancel()

	calcs, err := r.engine.Calculate(ctx, cfg, address, warehouse)
	if err != nil {
		logger.Error("pricing calculation failed", "quote_id", quoteID, "error", err)
		return
	}

	r.mu.Lock()
	st, ok = r.states[quoteID]
	if !ok || st.gen != gen {
		// A newer edit was issued while this calculation was in flight;
		// its own window will produce the authoritative result.
		r.mu.Unlock()
		logger.Debug("discarding stale pricing result", "quote_id", quoteID)
		return
	}
	st.timer.Stop()
	delete(r.states, quoteID)
	r.mu.Unlock()

	r.apply(quoteID, calcs)
}

// Stop abandons all pending calculations. Results already in flight are
// discarded when they complete.
func (r *Repricer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, st := range r.states {
		st.timer.Stop()
		delete(r.states, id)
	}
}
