package game

import (
	"container/heap"

	"github.com/google/uuid"
)

// spawnEntry is a pending clone spawn tagged with the run that scheduled it.
type spawnEntry struct {
	due float64
	run uuid.UUID
}

// spawnQueue is a min-heap of pending spawns ordered by due time.
type spawnQueue []spawnEntry

func (q spawnQueue) Len() int            { return len(q) }
func (q spawnQueue) Less(i, j int) bool  { return q[i].due < q[j].due }
func (q spawnQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *spawnQueue) Push(x interface{}) { *q = append(*q, x.(spawnEntry)) }
func (q *spawnQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// Spawner schedules clone spawns on simulated time. The queue outlives runs;
// entries carry the id of the run that scheduled them and are discarded when
// polled against any other run.
type Spawner struct {
	baseGap float64
	minGap  float64
	decay   float64
	queue   spawnQueue
}

// NewSpawner creates a spawner from the tuning gap parameters.
func NewSpawner(t Tuning) *Spawner {
	return &Spawner{
		baseGap: t.SpawnBaseGap,
		minGap:  t.SpawnMinGap,
		decay:   t.SpawnGapDecay,
	}
}

// Gap returns the k-th gap between spawns, counted from zero. Gaps never grow
// and never drop below the minimum.
func (s *Spawner) Gap(k int) float64 {
	return max(s.minGap, s.baseGap-s.decay*float64(k))
}

// Schedule queues a spawn for run at the given simulated time.
func (s *Spawner) Schedule(run uuid.UUID, due float64) {
	heap.Push(&s.queue, spawnEntry{due: due, run: run})
}

// Due pops every entry due at now and returns how many belong to run.
// Entries from other runs are dropped.
func (s *Spawner) Due(run uuid.UUID, now float64) int {
	fired := 0
	for s.queue.Len() > 0 && s.queue[0].due <= now+timeEpsilon {
		e := heap.Pop(&s.queue).(spawnEntry)
		if e.run == run {
			fired++
		}
	}
	return fired
}

// Cancel voids every pending entry of run.
func (s *Spawner) Cancel(run uuid.UUID) {
	kept := s.queue[:0]
	for _, e := range s.queue {
		if e.run != run {
			kept = append(kept, e)
		}
	}
	s.queue = kept
	heap.Init(&s.queue)
}

// Pending returns the number of queued entries across all runs.
func (s *Spawner) Pending() int { return s.queue.Len() }
