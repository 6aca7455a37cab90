package main

import (
	"context"
	"slices"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-collections/pkg/combat"
	"github.com/huynhanx03/go-collections/pkg/datastructs/growable"
	"github.com/huynhanx03/go-collections/pkg/settings"
)

// checkEvery is how many steps run between context checks.
const checkEvery = 1024

// report summarizes one scenario run.
type report struct {
	Name     string
	Steps    int
	Size     int
	Capacity int
	Grows    int
	Elapsed  time.Duration
}

type scenarioFunc func(ctx context.Context, cfg *settings.Config, log *zap.Logger) (report, error)

var scenarios = map[string]scenarioFunc{
	"append": appendScenario,
	"mixed":  mixedScenario,
	"combat": combatScenario,
}

// runScenarios runs the configured scenarios with at most Bench.Workers at a time.
// Every scenario owns its buffers. Reports of successful scenarios are returned
// in configuration order even when another scenario fails.
func runScenarios(ctx context.Context, cfg *settings.Config, log *zap.Logger) ([]report, error) {
	names := cfg.Bench.Scenarios
	if len(names) == 0 {
		names = []string{"append", "mixed", "combat"}
	}

	fns := make([]scenarioFunc, len(names))
	for i, name := range names {
		fn, ok := scenarios[name]
		if !ok {
			return nil, errors.Errorf("unknown scenario %q", name)
		}
		fns[i] = fn
	}

	results := make([]report, len(names))
	done := make([]bool, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Bench.Workers)
	for i, name := range names {
		fn := fns[i]
		g.Go(func() error {
			start := time.Now()
			r, err := fn(ctx, cfg, log.With(zap.String("scenario", name)))
			if err != nil {
				return errors.Wrapf(err, "scenario %s", name)
			}
			r.Name = name
			r.Elapsed = time.Since(start)
			results[i], done[i] = r, true
			return nil
		})
	}
	err := g.Wait()

	reports := make([]report, 0, len(names))
	for i, r := range results {
		if done[i] {
			reports = append(reports, r)
		}
	}
	return reports, err
}

// appendScenario fills a buffer and checks every value survived the growth.
func appendScenario(ctx context.Context, cfg *settings.Config, log *zap.Logger) (report, error) {
	b := growable.NewWithCapacity[int](cfg.Buffer.InitialCapacity)
	r := report{}

	for i := 0; i < cfg.Bench.Elements; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}
		before := b.Capacity()
		b.Append(i)
		if b.Capacity() != before {
			r.Grows++
			log.Debug("buffer grown", zap.Int("from", before), zap.Int("to", b.Capacity()))
		}
	}

	for i := 0; i < b.Size(); i++ {
		v, err := b.Get(i)
		if err != nil {
			return r, err
		}
		if v != i {
			return r, errors.Errorf("value at %d = %d after growth, want %d", i, v, i)
		}
	}

	r.Steps = cfg.Bench.Elements
	r.Size, r.Capacity = b.Size(), b.Capacity()
	return r, nil
}

// mixedScenario inserts at and removes from arbitrary positions
// and checks the sequence comes back unchanged.
func mixedScenario(ctx context.Context, cfg *settings.Config, log *zap.Logger) (report, error) {
	const n = 10
	b := growable.NewWithCapacity[int](cfg.Buffer.InitialCapacity)
	for i := 0; i < n; i++ {
		b.Append(i)
	}
	want := b.Values()
	capacity := b.Capacity()
	r := report{}

	steps := []func() error{
		func() error { return b.InsertAt(0, 100) },
		func() error { return b.InsertAt(6, 200) },
		func() error { return b.InsertAt(b.Size(), 300) },
		func() error { _, err := b.RemoveAt(0); return err },
		func() error { _, err := b.RemoveAt(5); return err },
		func() error { _, err := b.RemoveAt(b.Size() - 1); return err },
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		if err := step(); err != nil {
			return r, err
		}
		if b.Capacity() != capacity {
			r.Grows++
			capacity = b.Capacity()
		}
		r.Steps++
	}

	if got := b.Values(); !slices.Equal(got, want) {
		return r, errors.Errorf("sequence after round trip = %v, want %v", got, want)
	}
	log.Debug("round trip restored sequence", zap.Ints("values", want))

	r.Size, r.Capacity = b.Size(), b.Capacity()
	return r, nil
}

// combatScenario fights volleys against a roster until nobody is left.
// Reinforcements are deployed at the front during the first rounds.
func combatScenario(ctx context.Context, cfg *settings.Config, log *zap.Logger) (report, error) {
	roster := combat.NewRoster(cfg.Buffer.InitialCapacity, log)
	for i := 0; i < cfg.Bench.Units; i++ {
		if err := roster.Enlist(combat.NewUnit("soldier", (i+1)*cfg.Bench.Damage)); err != nil {
			return report{}, err
		}
	}
	reinforcements := cfg.Bench.Units / 2
	r := report{}

	for roster.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		if r.Steps < reinforcements {
			if err := roster.Deploy(0, combat.NewUnit("reinforcement", cfg.Bench.Damage)); err != nil {
				return r, err
			}
		}
		roster.Volley(cfg.Bench.Damage)
		r.Steps++
	}

	if _, err := roster.Retreat(); !errors.Is(err, growable.ErrEmptyContainer) {
		return r, errors.Errorf("retreat from empty roster returned %v", err)
	}
	return r, nil
}
