// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fault

import "sync"

var (
	defaultNonFatal = map[string]bool{}
)

// Collector is used to accumulate faults from a process that should keep
// going when it can. The general idea is that a caller can decide to record
// a fault but continue processing rather than fail outright in some cases.
// The final fault set can then be shown to the user.
type Collector interface {
	// Collect adds the given fault to the set. If this method returns a
	// non-nil fault then the given fault is considered fatal.
	Collect(Fault) Fault
	// Collected returns the set of accumulated faults.
	Collected() []Fault
}

// NewCollector returns a concurrent-safe implementation of Collector. Codes
// listed in nonFatal are recorded but do not stop processing.
func NewCollector(nonFatal []string) Collector {
	nf := make(map[string]bool, len(defaultNonFatal))
	for k := range defaultNonFatal {
		nf[k] = true
	}
	for _, k := range nonFatal {
		nf[k] = true
	}
	return &collectorLock{
		Collector: &collector{
			nonFatal: nf,
		},
		lock: &sync.Mutex{},
	}
}

type collector struct {
	collected []Fault
	nonFatal  map[string]bool
}

func (c *collector) Collect(f Fault) Fault {
	c.collected = append(c.collected, f)
	if c.nonFatal[f.Code()] {
		return nil
	}
	return f
}

func (c *collector) Collected() []Fault {
	return c.collected
}

type collectorLock struct {
	Collector
	lock sync.Locker
}

func (c *collectorLock) Collect(f Fault) Fault {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.Collector.Collect(f)
}

func (c *collectorLock) Collected() []Fault {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.Collector.Collected()
}
