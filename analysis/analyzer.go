package analysis

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"golang.org/x/sync/errgroup"

	"github.com/calganaygun/networks-playground/bfs"
	"github.com/calganaygun/networks-playground/core"
	"github.com/calganaygun/networks-playground/metrics"
	"github.com/calganaygun/networks-playground/motif"
	"github.com/calganaygun/networks-playground/nullmodel"
	"github.com/calganaygun/networks-playground/significance"
)

// ErrEnsembleTooSmall is returned when fewer than MinViable members survive.
var ErrEnsembleTooSmall = errors.New("analysis: ensemble too small")

// Member is one surviving ensemble member.
type Member struct {
	Index    int
	Seed     int64
	Counts   motif.CountVector
	Attempts int
	Cached   bool
}

// Analyzer runs analyses with a fixed configuration. It is safe for
// concurrent use when its Generator's cache is.
type Analyzer struct {
	size          int
	minViable     int
	seedBase      int64
	workers       int
	censusWorkers int
	gen           *nullmodel.Generator
	metrics       *metrics.Metrics
}

// New returns an Analyzer with DefaultEnsembleSize members, NumCPU workers,
// single-threaded censuses and an uncached generator, then applies opts.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{size: DefaultEnsembleSize, censusWorkers: 1}
	WithWorkers(0)(a)
	for _, opt := range opts {
		opt(a)
	}
	if a.gen == nil {
		a.gen = nullmodel.NewGenerator()
	}
	return a
}

// MinViable returns the effective survivor threshold.
func (a *Analyzer) MinViable() int {
	if a.minViable == 0 {
		return (a.size + 1) / 2
	}
	if a.minViable > a.size {
		return a.size
	}
	return a.minViable
}

// GraphID names the outputs of a graph: vertex count plus edge count. It is
// a label only and never identifies cached data.
func GraphID(g *core.Graph) string {
	return strconv.Itoa(g.VertexCount() + g.EdgeCount())
}

// memberSlot is the per-index outcome, written by exactly one goroutine.
type memberSlot struct {
	member  Member
	failure *nullmodel.Failure
	done    bool
}

// Run analyzes g. name labels logs and the report (typically the input path).
//
// On ErrEnsembleTooSmall the partial report (observed counts, survivors,
// failures, no significance) is returned with the error.
func (a *Analyzer) Run(ctx context.Context, name string, g *core.Graph) (*Report, error) {
	if g == nil {
		return nil, errors.Wrap(nullmodel.ErrNilGraph, "analysis")
	}
	started := time.Now()
	rep := &Report{
		RunID:     uuid.New(),
		Name:      name,
		GraphID:   GraphID(g),
		Vertices:  g.VertexCount(),
		Edges:     g.EdgeCount(),
		Started:   started,
		Requested: a.size,
	}
	klog.Infof("run %s: %s: %d vertices, %d edges (graph id %s)", rep.RunID, name, rep.Vertices, rep.Edges, rep.GraphID)

	err := a.run(ctx, g, rep)
	rep.Duration = time.Since(started)
	a.metrics.RecordRun(err == nil)
	if err != nil {
		klog.Warningf("run %s: %s failed after %v: %v", rep.RunID, name, rep.Duration, err)
		if errors.Is(err, ErrEnsembleTooSmall) {
			return rep, err
		}
		return nil, err
	}
	klog.Infof("run %s: %s done in %v: %d/%d members", rep.RunID, name, rep.Duration, len(rep.Members), a.size)

	return rep, nil
}

func (a *Analyzer) run(ctx context.Context, g *core.Graph, rep *Report) error {
	src, err := nullmodel.NewSource(g)
	if err != nil {
		return errors.Wrap(err, "analysis: source")
	}
	rep.Signature = src.Signature()

	comps, err := bfs.Components(ctx, src.Graph())
	if err != nil {
		return errors.Wrap(err, "analysis: components")
	}
	rep.Components = len(comps)
	if len(comps) > 1 {
		klog.V(1).Infof("run %s: %d connected components, largest has %d vertices", rep.RunID, len(comps), largest(comps))
	}

	t0 := time.Now()
	rep.Observed, err = motif.CensusFull(src.Graph().Index(), a.censusOpts(ctx)...)
	if err != nil {
		return errors.Wrap(err, "analysis: observed census")
	}
	a.metrics.ObserveCensus(metrics.TargetObserved, time.Since(t0))
	klog.Infof("run %s: observed counts %v", rep.RunID, rep.Observed)

	slots := make([]memberSlot, a.size)
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(a.workers)
	for i := 0; i < a.size; i++ {
		i := i
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return a.member(gctx, src, rep.RunID, i, &slots[i])
		})
	}
	if err = grp.Wait(); err != nil {
		return err
	}

	for _, s := range slots {
		switch {
		case s.failure != nil:
			rep.Failures = append(rep.Failures, s.failure)
		case s.done:
			rep.Members = append(rep.Members, s.member)
		}
	}
	a.metrics.SetEnsembleSize(len(rep.Members))

	if len(rep.Members) < a.MinViable() {
		return errors.Wrapf(ErrEnsembleTooSmall, "%d of %d members survived, need %d",
			len(rep.Members), a.size, a.MinViable())
	}

	res, err := significance.Evaluate(rep.Observed, rep.Ensemble())
	if err != nil {
		return errors.Wrap(err, "analysis")
	}
	rep.Significance = res

	return nil
}

// member generates and counts ensemble member i into slot.
func (a *Analyzer) member(ctx context.Context, src *nullmodel.Source, runID uuid.UUID, i int, slot *memberSlot) error {
	seed := a.seedBase + int64(i)
	res, err := a.gen.GenerateFrom(src, i, seed)
	if res.CacheErr != nil {
		a.metrics.RecordCacheError()
		klog.Warningf("run %s: member %d: cache: %v", runID, i, res.CacheErr)
	}
	if err != nil {
		var f *nullmodel.Failure
		if errors.As(err, &f) {
			slot.failure = f
			a.metrics.RecordMember(f.Kind.String(), f.Attempts)
			klog.Warningf("run %s: member %d excluded: %v", runID, i, f)
			return nil
		}
		return errors.Wrapf(err, "analysis: member %d", i)
	}

	t0 := time.Now()
	counts, err := motif.CensusFull(res.Graph.Index(), a.censusOpts(ctx)...)
	if err != nil {
		return errors.Wrapf(err, "analysis: member %d census", i)
	}
	a.metrics.ObserveCensus(metrics.TargetRandom, time.Since(t0))

	outcome := metrics.OutcomeGenerated
	if res.Cached {
		outcome = metrics.OutcomeCached
	}
	a.metrics.RecordMember(outcome, res.Attempts)
	klog.V(2).Infof("run %s: member %d (seed %d, %s, %d attempts): %v", runID, i, seed, outcome, res.Attempts, counts)

	*slot = memberSlot{
		member: Member{Index: i, Seed: seed, Counts: counts, Attempts: res.Attempts, Cached: res.Cached},
		done:   true,
	}
	return nil
}

func largest(comps [][]string) int {
	n := 0
	for _, c := range comps {
		if len(c) > n {
			n = len(c)
		}
	}
	return n
}

func (a *Analyzer) censusOpts(ctx context.Context) []motif.Option {
	return []motif.Option{motif.WithWorkers(a.censusWorkers), motif.WithContext(ctx)}
}
