package execution

// Scheduler distributes work items across workers
type Scheduler interface {
	Schedule(items []string, workerCount int) [][]string
}

// RoundRobinScheduler distributes items evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule distributes items evenly across workers using round-robin
func (s *RoundRobinScheduler) Schedule(items []string, workerCount int) [][]string {
	if workerCount <= 0 {
		workerCount = 1
	}

	distribution := make([][]string, workerCount)
	for i := range distribution {
		distribution[i] = make([]string, 0)
	}

	for i, item := range items {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], item)
	}

	return distribution
}
