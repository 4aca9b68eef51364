package dataset

import "sync"

// PageJob is one unit of page generation work in a batch run.
type PageJob struct {
	Index int
	Spec  PageSpec
}

// JobQueue manages pending page jobs for the batch workers.
type JobQueue struct {
	jobs []*PageJob
	mu   sync.RWMutex
}

// NewJobQueue creates a new empty job queue.
func NewJobQueue() *JobQueue {
	return &JobQueue{
		jobs: make([]*PageJob, 0),
	}
}

// Add appends a job to the end of the queue.
func (q *JobQueue) Add(job *PageJob) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
}

// Len returns the number of pending jobs.
func (q *JobQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.jobs)
}

// PopFront removes and returns the first job in the queue.
// Returns nil if the queue is empty.
func (q *JobQueue) PopFront() *PageJob {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.jobs) == 0 {
		return nil
	}

	job := q.jobs[0]
	q.jobs = q.jobs[1:]
	return job
}
