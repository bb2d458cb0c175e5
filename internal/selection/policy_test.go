package selection

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"qna-quiz-service/internal/models"
)

func questionPool(n int) []models.Question {
	pool := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, models.Question{ID: fmt.Sprintf("q%d", i)})
	}
	return pool
}

func TestSampleClampsToPoolSize(t *testing.T) {
	policy := NewPolicy()
	pool := questionPool(4)

	picked, err := policy.Sample(pool, 10)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(picked) != 4 {
		t.Errorf("len(picked) = %d, want 4", len(picked))
	}
}

func TestSampleDesiredCount(t *testing.T) {
	policy := NewPolicy()
	pool := questionPool(20)

	picked, err := policy.Sample(pool, 5)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(picked) != 5 {
		t.Errorf("len(picked) = %d, want 5", len(picked))
	}
}

func TestSampleDefaultCount(t *testing.T) {
	policy := NewPolicy()
	pool := questionPool(20)

	picked, err := policy.Sample(pool, 0)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(picked) != DefaultQuestionCount {
		t.Errorf("len(picked) = %d, want %d", len(picked), DefaultQuestionCount)
	}
}

func TestSampleEmptyPool(t *testing.T) {
	policy := NewPolicy()

	_, err := policy.Sample(nil, 5)
	if !errors.Is(err, ErrEmptyCategory) {
		t.Fatalf("error = %v, want ErrEmptyCategory", err)
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	policy := NewPolicy()
	pool := questionPool(10)

	picked, err := policy.Sample(pool, 10)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}

	seen := map[string]bool{}
	for _, q := range picked {
		if seen[q.ID] {
			t.Fatalf("question %s selected twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSampleDoesNotMutatePool(t *testing.T) {
	policy := NewPolicy()
	pool := questionPool(10)

	if _, err := policy.Sample(pool, 10); err != nil {
		t.Fatalf("Sample: %v", err)
	}

	for i, q := range pool {
		if q.ID != fmt.Sprintf("q%d", i) {
			t.Fatalf("pool order mutated at index %d: %s", i, q.ID)
		}
	}
}

func TestSampleConcurrent(t *testing.T) {
	// One policy is shared across all request goroutines; concurrent
	// samples must not trip the race detector or corrupt results.
	policy := NewPolicy()
	pool := questionPool(20)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				picked, err := policy.Sample(pool, 5)
				if err != nil {
					t.Errorf("Sample: %v", err)
					return
				}
				if len(picked) != 5 {
					t.Errorf("len(picked) = %d, want 5", len(picked))
					return
				}
				seen := map[string]bool{}
				for _, q := range picked {
					if seen[q.ID] {
						t.Errorf("question %s selected twice", q.ID)
						return
					}
					seen[q.ID] = true
				}
			}
		}()
	}
	wg.Wait()
}

func TestSampleCoversWholePool(t *testing.T) {
	// Over many draws of a single question from a small pool, every
	// question should show up at least once.
	policy := NewPolicy()
	pool := questionPool(5)

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		picked, err := policy.Sample(pool, 1)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		seen[picked[0].ID] = true
	}
	if len(seen) != len(pool) {
		t.Errorf("only %d of %d questions ever selected", len(seen), len(pool))
	}
}
