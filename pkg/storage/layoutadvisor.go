package storage

import (
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

// LayoutAdvisor runs TransformTileGroup calls off the request path
// through a bounded goroutine pool, so a workload spike that triggers
// many layout rewrites at once cannot spawn unbounded goroutines
// (spec.md §4.8). It owns no state about which tables it watches;
// callers submit individual (table, offset) rewrite jobs as their
// sampling logic decides a tile group is worth transforming.
type LayoutAdvisor struct {
	pool *ants.Pool
	log  *logrus.Logger
}

// NewLayoutAdvisor builds an advisor backed by a pool of size workers.
func NewLayoutAdvisor(size int, log *logrus.Logger) (*LayoutAdvisor, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	return &LayoutAdvisor{pool: pool, log: log}, nil
}

// Submit enqueues a rewrite of table's tile group at offset into the
// table's own default partition, running theta's threshold check
// inside the worker so a caller can fire-and-forget without blocking
// on TransformTileGroup's row copy. errCh, if non-nil, receives the
// outcome (nil on skip too).
func (a *LayoutAdvisor) Submit(table *DataTable, offset int, theta float64, errCh chan<- error) error {
	return a.pool.Submit(func() {
		_, err := table.TransformTileGroup(offset, theta)
		if err != nil {
			a.log.WithError(err).WithField("table", table.TableOid()).Warn("layout advisor: transform failed")
		}
		if errCh != nil {
			errCh <- err
		}
	})
}

// Tick submits one TransformTileGroup job per tile group table
// currently owns, all evaluated against theta against the table's own
// default partition. There is no internal timer driving this (spec.md
// §5's "no cooperative suspension"); the caller decides when a tick
// happens.
func (a *LayoutAdvisor) Tick(table *DataTable, theta float64) error {
	n := table.TileGroupCount()
	for offset := 0; offset < n; offset++ {
		if err := a.Submit(table, offset, theta, nil); err != nil {
			return err
		}
	}
	return nil
}

// Running returns the number of workers currently executing a job.
func (a *LayoutAdvisor) Running() int {
	return a.pool.Running()
}

// Release shuts the advisor's pool down, waiting for in-flight jobs.
func (a *LayoutAdvisor) Release() {
	a.pool.Release()
}
