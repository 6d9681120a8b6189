package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/railkit/rail/pkg/rail"
)

func TestRun_SingleWorker(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	input := []int{1, 2, 3, 4, 5}
	double := Map(func(ctx context.Context, n int) int { return n * 2 })

	results := Collect(Run(ctx, ToResults(ctx, input...), double, 1))

	if len(results) != len(input) {
		t.Fatalf("expected %d results, got %d", len(input), len(results))
	}

	got := map[int]bool{}
	for _, r := range results {
		if !r.IsSuccess() {
			t.Fatalf("unexpected failure: %v", r.Err())
		}
		got[r.Value()] = true
	}
	for _, want := range []int{2, 4, 6, 8, 10} {
		if !got[want] {
			t.Fatalf("missing result %d", want)
		}
	}
}

func TestRun_MultipleWorkersFasterThanSerial(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	input := make([]int, 50)
	for i := range input {
		input[i] = i
	}

	slow := Map(func(ctx context.Context, n int) int {
		time.Sleep(10 * time.Millisecond)
		return n
	})

	start := time.Now()
	results := Collect(Run(ctx, ToResults(ctx, input...), slow, 10))
	elapsed := time.Since(start)

	if len(results) != len(input) {
		t.Fatalf("expected %d results, got %d", len(input), len(results))
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("10 workers took too long: %v", elapsed)
	}
}

func TestTurnout_TypeChange(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stage := Bind(func(ctx context.Context, n int) rail.Result[string] {
		if n < 0 {
			return rail.Failf[string]("negative %d", n)
		}
		return rail.Success(fmt.Sprintf("num_%d", n))
	})

	results := Collect(Turnout(ctx, ToResults(ctx, 1, -2, 3), stage, 2))

	var okCount, failCount int
	for _, r := range results {
		if r.IsSuccess() {
			okCount++
			if !strings.HasPrefix(r.Value(), "num_") {
				t.Fatalf("bad format: %q", r.Value())
			}
		} else {
			failCount++
			if r.Message() != "negative -2" {
				t.Fatalf("expected 'negative -2', got %q", r.Message())
			}
		}
	}
	if okCount != 2 || failCount != 1 {
		t.Fatalf("expected 2 ok / 1 fail, got %d/%d", okCount, failCount)
	}
}

func TestValidateStage_FailureShortCircuitsLaterStages(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	var teeCalls int32
	positive := Validate(func(ctx context.Context, n int) (bool, string) {
		if n <= 0 {
			return false, fmt.Sprintf("value %d is not positive", n)
		}
		return true, ""
	})
	count := Tee(func(ctx context.Context, n int) { atomic.AddInt32(&teeCalls, 1) })

	stage1 := Run(ctx, ToResults(ctx, 3, -1, 7), positive, 2)
	results := Collect(Run(ctx, stage1, count, 2))

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if n := atomic.LoadInt32(&teeCalls); n != 2 {
		t.Fatalf("tee ran %d times, want 2 (failed item must bypass it)", n)
	}
}

func TestRun_ContextCancellationStopsProcessing(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	ctx = WithDrainOnCancel(ctx, false)

	input := make([]int, 10)
	for i := range input {
		input[i] = i
	}

	var processed int32
	slow := Map(func(ctx context.Context, n int) int {
		time.Sleep(100 * time.Millisecond)
		atomic.AddInt32(&processed, 1)
		return n
	})

	out := Run(ctx, ToResults(ctx, input...), slow, 2)

	go func() {
		time.Sleep(150 * time.Millisecond)
		cancel()
	}()

	results := Collect(out)

	if len(results) >= len(input) {
		t.Fatalf("expected cancellation to stop processing, got %d results", len(results))
	}
}

func TestRunWith_DrainRemainingSurfacesCanceledItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan rail.Result[int], 3)
	in <- rail.Success(1)
	in <- rail.Success(2)
	in <- rail.Success(3)
	close(in)

	cancel() // context is already done before the stage starts

	handlers := CancelHandlers[int, int]{
		OnCancel:      DrainRemaining[int, int],
		OnUnprocessed: DrainOne[int, int],
		OnProcessed:   ForwardProcessed[int, int],
	}

	results := Collect(RunWith(ctx, in,
		Map(func(ctx context.Context, n int) int { return n }),
		handlers, nil, 1))

	if len(results) != 3 {
		t.Fatalf("expected 3 drained results, got %d", len(results))
	}
	for _, r := range results {
		if !r.IsCancel() {
			t.Fatalf("expected canceled result, got %v", r)
		}
		if !errors.Is(r.Err(), ErrCanceled) {
			t.Fatalf("expected ErrCanceled, got %v", r.Err())
		}
	}
}

func TestFinally_FoldsAllTracks(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	in := make(chan rail.Result[int], 3)
	in <- rail.Success(10)
	in <- rail.Fail[int](errors.New("bad input"))
	in <- rail.Cancel[int](errors.New("too late"))
	close(in)

	handlers := FinallyHandlers[int, string]{
		OnSuccess: func(ctx context.Context, n int) string { return fmt.Sprintf("success:%d", n) },
		OnFailure: func(ctx context.Context, err error) string { return "error:" + err.Error() },
		OnCancel:  func(ctx context.Context, err error) string { return "cancel:" + err.Error() },
	}

	results := Collect(Finally(ctx, in, handlers))

	want := map[string]bool{
		"success:10":      false,
		"error:bad input": false,
		"cancel:too late": false,
	}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(results))
	}
	for _, r := range results {
		if _, ok := want[r]; !ok {
			t.Fatalf("unexpected result %q", r)
		}
		want[r] = true
	}
	for k, seen := range want {
		if !seen {
			t.Fatalf("missing result %q", k)
		}
	}
}

func TestToResultsWith_BreakHandlerSeesRest(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	var rest []int

	handlers := SourceHandlers[int]{
		OnBreak: func(ctx context.Context, r []int) {
			mu.Lock()
			rest = append(rest, r...)
			mu.Unlock()
		},
	}

	in := ToResultsWith(ctx, handlers, 1, 2, 3, 4, 5)

	first := <-in
	if !first.IsSuccess() || first.Value() != 1 {
		t.Fatalf("expected Success(1) first, got %v", first)
	}
	cancel()

	// with no receiver active, the source's only way out is ctx.Done
	deadline := time.Now().Add(time.Second)
	for {
		mu.Lock()
		n := len(rest)
		mu.Unlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected OnBreak to receive unsent values")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWorkersOption(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := Workers(ctx, 4); got != 4 {
		t.Fatalf("expected default 4, got %d", got)
	}

	ctx = WithWorkers(ctx, 8)
	if got := Workers(ctx, 4); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
}

func TestDrainOption(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if !DrainOnCancel(ctx, true) {
		t.Fatalf("expected default true")
	}

	ctx = WithDrainOnCancel(ctx, false)
	if DrainOnCancel(ctx, true) {
		t.Fatalf("expected configured false")
	}
}

func TestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ch := make(chan int, 1)
	ch <- 9
	close(ch)
	if got := First(ctx, ch, -1); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}

	empty := make(chan int)
	close(empty)
	if got := First(ctx, empty, -1); got != -1 {
		t.Fatalf("expected default -1, got %d", got)
	}
}
