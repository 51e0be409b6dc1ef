package services

import (
	"context"
	"errors"
	"fmt"
	"route-comparison-service/internal/domain"
	"route-comparison-service/internal/platform/obs"
	"route-comparison-service/internal/ports"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Orchestrator sequences selection validation, route-service calls and
// reconciliation of their results with the node directory and history.
//
// Every failure path leaves domain state untouched and emits one notice.
//
// Overlapping RequestOptimize calls are allowed and run independently: there is
// no single-flight lock and no cancellation, so the current result is whatever
// the last call to complete stored (completion order, not issue order).
// Service calls ignore caller cancellation once issued.
type Orchestrator struct {
	service   ports.RouteService
	notifier  ports.Notifier
	directory *NodeDirectory
	results   *ResultStore

	mu        sync.Mutex
	selection Selection
	pending   int
}

func NewOrchestrator(service ports.RouteService, notifier ports.Notifier, historyLimit int) *Orchestrator {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &Orchestrator{
		service:   service,
		notifier:  notifier,
		directory: NewNodeDirectory(),
		results:   NewResultStore(historyLimit),
	}
}

// Directory is shared read-only with renderers.
func (o *Orchestrator) Directory() *NodeDirectory { return o.directory }

func (o *Orchestrator) SetStart(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.selection.SetStart(id)
}

func (o *Orchestrator) SetEnd(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.selection.SetEnd(id)
}

func (o *Orchestrator) SetSelection(start, end string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.selection.SetStart(start)
	o.selection.SetEnd(end)
}

func (o *Orchestrator) ClearSelection() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.selection.Clear()
}

func (o *Orchestrator) Selection() Selection {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.selection
}

// Pending reports how many optimize requests are in flight.
func (o *Orchestrator) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pending
}

func (o *Orchestrator) Current() (domain.RouteResult, bool) { return o.results.Current() }

func (o *Orchestrator) History() []domain.RouteResult { return o.results.History() }

// Bootstrap loads the directory and history concurrently. Each failure is
// notified separately; the first one is returned.
func (o *Orchestrator) Bootstrap(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return o.RefreshNodes(ctx) })
	g.Go(func() error { return o.RefreshHistory(ctx) })
	return g.Wait()
}

// RefreshNodes re-fetches the directory. On failure the previous snapshot is kept.
func (o *Orchestrator) RefreshNodes(ctx context.Context) (err error) {
	defer obs.Time(ctx, "orchestrator.RefreshNodes")(&err)

	nodes, err := o.service.ListNodes(context.WithoutCancel(ctx))
	if err != nil {
		return o.fail(ports.NoticeNetwork, asNetworkError("list nodes", err))
	}

	if err := o.directory.ReplaceAll(nodes); err != nil {
		return o.fail(ports.NoticeNetwork, &domain.NetworkError{Op: "list nodes", Err: err})
	}

	return nil
}

// RefreshHistory replaces the history window. On failure the previous window is kept.
func (o *Orchestrator) RefreshHistory(ctx context.Context) (err error) {
	defer obs.Time(ctx, "orchestrator.RefreshHistory")(&err)

	log, err := o.service.ListResults(context.WithoutCancel(ctx))
	if err != nil {
		return o.fail(ports.NoticeNetwork, asNetworkError("list results", err))
	}

	o.results.ReplaceHistory(log)
	return nil
}

// AddNode parses raw form input, creates the node and re-fetches the
// directory so it reflects server state rather than a local edit.
func (o *Orchestrator) AddNode(ctx context.Context, name, lat, lng string) (domain.Node, error) {
	in, err := ParseNodeInput(name, lat, lng)
	if err != nil {
		return domain.Node{}, o.fail(ports.NoticeValidation, err)
	}
	return o.CreateNode(ctx, in)
}

// CreateNode is AddNode for already-parsed input.
func (o *Orchestrator) CreateNode(ctx context.Context, in domain.NodeCreate) (_ domain.Node, err error) {
	defer obs.Time(ctx, "orchestrator.CreateNode")(&err)

	if err := ValidateNodeCreate(in); err != nil {
		return domain.Node{}, o.fail(ports.NoticeValidation, err)
	}

	node, err := o.service.AddNode(context.WithoutCancel(ctx), in)
	if err != nil {
		return domain.Node{}, o.fail(ports.NoticeNetwork, asNetworkError("add node", err))
	}

	if err := o.RefreshNodes(ctx); err != nil {
		return node, err
	}

	o.info(fmt.Sprintf("Added node %q", node.Name))
	return node, nil
}

// CreateSampleNodes asks the service for demo nodes and re-fetches the directory.
func (o *Orchestrator) CreateSampleNodes(ctx context.Context) (err error) {
	defer obs.Time(ctx, "orchestrator.CreateSampleNodes")(&err)

	if err := o.service.CreateSampleNodes(context.WithoutCancel(ctx)); err != nil {
		return o.fail(ports.NoticeNetwork, asNetworkError("create sample nodes", err))
	}

	if err := o.RefreshNodes(ctx); err != nil {
		return err
	}

	o.info(fmt.Sprintf("Loaded %d sample nodes", o.directory.Len()))
	return nil
}

// RequestOptimize validates the current selection and asks the service for a
// route. On success the result becomes current and history is refreshed; on
// failure the current result and history stay exactly as they were.
func (o *Orchestrator) RequestOptimize(ctx context.Context, algorithm string) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, "orchestrator.RequestOptimize")(&err)

	algo, err := domain.ParseAlgorithm(algorithm)
	if err != nil {
		return domain.RouteResult{}, o.fail(ports.NoticeValidation, err)
	}

	sel := o.Selection()
	if err := o.validateSelection(sel); err != nil {
		return domain.RouteResult{}, o.fail(ports.NoticeValidation, err)
	}

	o.setPending(+1)
	defer o.setPending(-1)

	res, err := o.service.Optimize(context.WithoutCancel(ctx), sel.Start, sel.End, algo)
	if err != nil {
		var oe *domain.OptimizationError
		if !errors.As(err, &oe) {
			err = &domain.OptimizationError{Start: sel.Start, End: sel.End, Algorithm: algo, Err: err}
		}
		return domain.RouteResult{}, o.fail(ports.NoticeOptimization, err)
	}

	o.results.SetCurrent(res)

	// The optimization itself succeeded; a failed refresh is notified and the
	// previous window is kept.
	_ = o.RefreshHistory(ctx)

	return res.Clone(), nil
}

func (o *Orchestrator) validateSelection(sel Selection) error {
	if sel.Start == "" {
		return &domain.ValidationError{Field: "start", Reason: "must be selected"}
	}
	if sel.End == "" {
		return &domain.ValidationError{Field: "end", Reason: "must be selected"}
	}
	if _, ok := o.directory.Lookup(sel.Start); !ok {
		return &domain.ValidationError{Field: "start", Reason: fmt.Sprintf("node %q is not in the directory", sel.Start)}
	}
	if _, ok := o.directory.Lookup(sel.End); !ok {
		return &domain.ValidationError{Field: "end", Reason: fmt.Sprintf("node %q is not in the directory", sel.End)}
	}
	return nil
}

func (o *Orchestrator) setPending(delta int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending += delta
}

func (o *Orchestrator) fail(kind ports.NoticeKind, err error) error {
	o.notifier.Notify(ports.Notice{Kind: kind, Message: err.Error(), At: time.Now()})
	return err
}

func (o *Orchestrator) info(msg string) {
	o.notifier.Notify(ports.Notice{Kind: ports.NoticeInfo, Message: msg, At: time.Now()})
}

func asNetworkError(op string, err error) error {
	if errors.Is(err, domain.ErrNetworkFailed) {
		return err
	}
	return &domain.NetworkError{Op: op, Err: err}
}

type discardNotifier struct{}

func (discardNotifier) Notify(ports.Notice) {}
