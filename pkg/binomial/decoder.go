package binomial

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/holotype/pkg/feistel"
	"github.com/dmitrymomot/holotype/pkg/logger"
)

// DefaultWindow is the number of days either side of today searched before
// the exhaustive stage.
const DefaultWindow = 30

// Result is a decoded name. Date is midnight UTC of the encoded calendar day.
// An empty Salt means the name was generated without one.
type Result struct {
	Name   string
	Date   time.Time
	Number uint32
	Salt   string
}

// Decoder recovers the date and number behind a name by regenerating
// candidates until one matches. It is safe for concurrent use.
type Decoder struct {
	gen           *Generator
	now           func() time.Time
	window        int
	maxCandidates int
	workers       int
	log           *slog.Logger
}

// NewDecoder returns a decoder driving gen.
func NewDecoder(gen *Generator, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		gen:     gen,
		now:     time.Now,
		window:  DefaultWindow,
		workers: 1,
		log:     gen.log.With(logger.Component("decoder")),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode searches for the (date, number) pair that generates name under
// salt. Runs of whitespace in name are collapsed to single spaces.
//
// It returns ErrNotFound when the whole search space was examined,
// ErrBudgetExhausted when the candidate cap was hit first, and an error
// wrapping both ErrCancelled and ctx.Err() when ctx ends the search.
func (d *Decoder) Decode(ctx context.Context, name, salt string) (Result, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return Result{}, ErrEmptyName
	}

	start := time.Now()
	key := feistel.HashSalt(salt)

	var (
		res      Result
		stage    Stage
		examined int
		err      error
	)
	if d.workers > 1 {
		res, stage, examined, err = d.decodeParallel(ctx, name, salt, key)
	} else {
		res, stage, examined, err = d.decodeSequential(ctx, name, salt, key)
	}

	attrs := []any{
		logger.Name(name),
		logger.Salt(salt),
		logger.Candidates(examined),
		logger.Duration(time.Since(start)),
	}
	if err != nil {
		d.log.DebugContext(ctx, "decode failed", append(attrs, logger.Error(err))...)
		return Result{}, err
	}
	d.log.DebugContext(ctx, "decoded", append(attrs, logger.Stage(stage.String()), logger.Date(res.Date), logger.Number(res.Number))...)
	return res, nil
}

// DecodeAll decodes every name with the same salt. The result slice is
// aligned with names; entries that failed are zero. Per-name failures are
// joined into the returned error. A cancelled ctx stops the batch.
func (d *Decoder) DecodeAll(ctx context.Context, names []string, salt string) ([]Result, error) {
	results := make([]Result, len(names))
	var errs []error

	for i, name := range names {
		res, err := d.Decode(ctx, name, salt)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", name, err))
			if errors.Is(err, ErrCancelled) {
				break
			}
			continue
		}
		results[i] = res
	}

	if stats, ok := d.gen.CacheStats(); ok {
		d.log.DebugContext(ctx, "batch decoded",
			slog.Int("names", len(names)),
			slog.Float64("cache_hit_ratio", stats.HitRatio()),
		)
	}
	return results, errors.Join(errs...)
}

func (d *Decoder) decodeSequential(ctx context.Context, name, salt string, key uint64) (Result, Stage, int, error) {
	examined := 0
	for c := range d.Candidates(ctx) {
		if d.maxCandidates > 0 && examined >= d.maxCandidates {
			return Result{}, c.Stage, examined, ErrBudgetExhausted
		}
		examined++
		if d.gen.generate(civilOf(c.Date), c.Number, salt, key) == name {
			return d.result(name, civilOf(c.Date), c.Number, salt), c.Stage, examined, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return Result{}, 0, examined, cancelled(err)
	}
	return Result{}, StageExhaustive, examined, ErrNotFound
}

// decodeParallel walks the early stages in order, then scans the
// exhaustive stage one year per goroutine. Only a match in a year whose
// predecessors all finished without a match is returned, which keeps the
// answer identical to the sequential one.
func (d *Decoder) decodeParallel(ctx context.Context, name, salt string, key uint64) (Result, Stage, int, error) {
	cfg := d.gen.cfg
	p := d.plan()

	var examined atomic.Int64
	spend := func() bool {
		n := examined.Add(1)
		return d.maxCandidates <= 0 || n <= int64(d.maxCandidates)
	}

	for _, e := range p.early {
		if err := ctx.Err(); err != nil {
			return Result{}, e.stage, int(examined.Load()), cancelled(err)
		}
		for n := cfg.NumberMin; n <= cfg.NumberMax; n++ {
			if !spend() {
				return Result{}, e.stage, d.maxCandidates, ErrBudgetExhausted
			}
			if d.gen.generate(e.date, n, salt, key) == name {
				return d.result(name, e.date, n, salt), e.stage, int(examined.Load()), nil
			}
		}
	}

	years := cfg.YearEnd - cfg.YearStart + 1
	found := make([]Result, years)
	hit := make([]bool, years)
	done := make([]bool, years)

	var best atomic.Int64
	best.Store(int64(years))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i := range years {
		if int64(i) > best.Load() {
			break
		}
		g.Go(func() error {
			year := cfg.YearStart + i
			for date := range p.yearDates(year) {
				if int64(i) > best.Load() {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				for n := cfg.NumberMin; n <= cfg.NumberMax; n++ {
					if !spend() {
						return ErrBudgetExhausted
					}
					if d.gen.generate(date, n, salt, key) == name {
						found[i], hit[i], done[i] = d.result(name, date, n, salt), true, true
						lowerTo(&best, int64(i))
						return nil
					}
				}
			}
			done[i] = true
			return nil
		})
	}

	err := g.Wait()
	total := int(examined.Load())
	if d.maxCandidates > 0 {
		total = min(total, d.maxCandidates)
	}

	for i := range years {
		if hit[i] {
			return found[i], StageExhaustive, total, nil
		}
		if !done[i] {
			break
		}
	}

	switch {
	case err == nil:
		return Result{}, StageExhaustive, total, ErrNotFound
	case errors.Is(err, ErrBudgetExhausted):
		return Result{}, StageExhaustive, total, ErrBudgetExhausted
	default:
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return Result{}, StageExhaustive, total, cancelled(err)
	}
}

func (d *Decoder) result(name string, date civil, number uint32, salt string) Result {
	return Result{Name: name, Date: date.date(), Number: number, Salt: salt}
}

func lowerTo(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n >= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}

func cancelled(err error) error {
	return fmt.Errorf("%w: %w", ErrCancelled, err)
}
