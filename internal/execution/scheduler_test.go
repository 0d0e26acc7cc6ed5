package execution

import (
	"testing"
)

func TestRoundRobinScheduler(t *testing.T) {
	scheduler := NewRoundRobinScheduler()

	tests := []struct {
		name        string
		items       []string
		workerCount int
		expected    [][]string
	}{
		{
			name:        "even split across two workers",
			items:       []string{"a", "b", "c", "d"},
			workerCount: 2,
			expected:    [][]string{{"a", "c"}, {"b", "d"}},
		},
		{
			name:        "uneven split leaves shorter tail batches",
			items:       []string{"a", "b", "c", "d", "e"},
			workerCount: 2,
			expected:    [][]string{{"a", "c", "e"}, {"b", "d"}},
		},
		{
			name:        "more workers than items leaves empty batches",
			items:       []string{"a", "b"},
			workerCount: 4,
			expected:    [][]string{{"a"}, {"b"}, {}, {}},
		},
		{
			name:        "zero workers falls back to one",
			items:       []string{"a", "b"},
			workerCount: 0,
			expected:    [][]string{{"a", "b"}},
		},
		{
			name:        "no items",
			items:       nil,
			workerCount: 2,
			expected:    [][]string{{}, {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scheduler.Schedule(tt.items, tt.workerCount)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d batches, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if len(got[i]) != len(tt.expected[i]) {
					t.Fatalf("batch %d: expected %v, got %v", i, tt.expected[i], got[i])
				}
				for j := range got[i] {
					if got[i][j] != tt.expected[i][j] {
						t.Errorf("batch %d item %d: expected %q, got %q", i, j, tt.expected[i][j], got[i][j])
					}
				}
			}
		})
	}
}
