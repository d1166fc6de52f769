package binomial

import (
	"context"
	"iter"
	"time"
)

// Stage identifies the part of the search space a candidate belongs to.
type Stage uint8

const (
	// StageToday covers today's date.
	StageToday Stage = iota
	// StageNearby covers the dates within the window around today,
	// alternating +1, -1, +2, -2, ...
	StageNearby
	// StageExhaustive covers every remaining date of the configured years.
	StageExhaustive
)

func (s Stage) String() string {
	switch s {
	case StageToday:
		return "today"
	case StageNearby:
		return "nearby"
	case StageExhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// Candidate is one (date, number) pair the decoder tests.
type Candidate struct {
	Date   time.Time
	Number uint32
	Stage  Stage
}

// searchPlan fixes the dates of the first two stages for one search.
type searchPlan struct {
	cfg   Config
	early []plannedDate
	tried map[civil]struct{}
}

type plannedDate struct {
	date  civil
	stage Stage
}

func (d *Decoder) plan() *searchPlan {
	today := civilOf(d.now())
	p := &searchPlan{
		cfg:   d.gen.cfg,
		early: make([]plannedDate, 0, 2*d.window+1),
		tried: make(map[civil]struct{}, 2*d.window+1),
	}

	p.add(today, StageToday)
	for k := 1; k <= d.window; k++ {
		p.add(today.addDays(k), StageNearby)
		p.add(today.addDays(-k), StageNearby)
	}
	return p
}

// add records an early date. Dates outside the configured years are
// skipped since the generator would never have been asked for them.
func (p *searchPlan) add(date civil, stage Stage) {
	if !p.cfg.ContainsYear(date.year) {
		return
	}
	if _, ok := p.tried[date]; ok {
		return
	}
	p.early = append(p.early, plannedDate{date: date, stage: stage})
	p.tried[date] = struct{}{}
}

// yearDates yields the dates of year in calendar order, minus those already
// covered by the early stages.
func (p *searchPlan) yearDates(year int) iter.Seq[civil] {
	return func(yield func(civil) bool) {
		for month := time.January; month <= time.December; month++ {
			for day := 1; day <= daysIn(year, month); day++ {
				date := civil{year, month, day}
				if _, ok := p.tried[date]; ok {
					continue
				}
				if !yield(date) {
					return
				}
			}
		}
	}
}

// Candidates returns the decoder's search space in canonical order: today,
// then the nearby window, then every other date from YearStart-01-01 to
// YearEnd-12-31. Each date expands to NumberMin..NumberMax. "Today" is read
// when iteration starts. Iteration stops early when ctx is done.
func (d *Decoder) Candidates(ctx context.Context) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		p := d.plan()
		for _, e := range p.early {
			if !d.emit(ctx, e.date, e.stage, yield) {
				return
			}
		}
		for year := p.cfg.YearStart; year <= p.cfg.YearEnd; year++ {
			for date := range p.yearDates(year) {
				if !d.emit(ctx, date, StageExhaustive, yield) {
					return
				}
			}
		}
	}
}

func (d *Decoder) emit(ctx context.Context, date civil, stage Stage, yield func(Candidate) bool) bool {
	if ctx.Err() != nil {
		return false
	}
	t := date.date()
	for n := d.gen.cfg.NumberMin; n <= d.gen.cfg.NumberMax; n++ {
		if !yield(Candidate{Date: t, Number: n, Stage: stage}) {
			return false
		}
	}
	return true
}
