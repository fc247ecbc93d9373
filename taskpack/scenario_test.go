// File: taskpack/scenario_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// End-to-end scenarios running packs on a real pool.

package taskpack_test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/momentics/mpmcpool/pool"
	"github.com/momentics/mpmcpool/taskpack"
)

// sumTo counts up to n and returns the count.
func sumTo(n uint64) uint64 {
	var c uint64
	for c < n {
		c++
	}
	return c
}

func TestScenario_SumReduce(t *testing.T) {
	p, err := pool.New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	const n = 100
	pack := taskpack.New[uint64](n, taskpack.WithSpinBlockWait())
	for i := 0; i < n; i++ {
		i := i
		pack.SetTaskAt(i, func() uint64 { return sumTo(uint64(i) * 1_000_000) })
	}
	pack.SetReduce(func() uint64 {
		var total uint64
		for i := 0; i < n; i++ {
			total += pack.ResultAt(i)
		}
		return total
	})
	if err := p.SubmitBulk(pack.Tasks()); err != nil {
		t.Fatal(err)
	}

	const want = 4_950_000_000
	if got := pack.GetResult(); got != want {
		t.Errorf("GetResult = %d, want %d", got, want)
	}
}

func TestScenario_VoidTasksWithShrink(t *testing.T) {
	p, err := pool.New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	p.Expand(2)
	if got := p.Size(); got != 6 {
		t.Fatalf("size after expand = %d, want 6", got)
	}

	const n = 100
	pack := taskpack.NewVoid(n, taskpack.WithBlockingWait())
	for i := 0; i < n; i++ {
		i := i
		pack.SetTaskAt(i, func() { sumTo(uint64(i) * 100_000) })
	}
	tok := p.NewProducerToken()
	if err := p.SubmitBulkWith(tok, pack.Tasks()); err != nil {
		t.Fatal(err)
	}

	p.Shrink(2)

	done := make(chan struct{})
	go func() {
		pack.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("pack.Wait did not return after shrink")
	}
	if got := p.Size(); got != 4 {
		t.Errorf("final size = %d, want 4", got)
	}
}

// Randomized pack sizes must always complete; a hang here is the
// regression this test exists for.
func TestScenario_DeadlockRegression(t *testing.T) {
	if testing.Short() {
		t.Skip("long-running regression loop")
	}
	p, err := pool.New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 100; iter++ {
		n := rng.Intn(1001) + 1
		pack := taskpack.New[uint64](n, taskpack.WithInterval(10*time.Microsecond))
		for i := 0; i < n; i++ {
			arg := uint64(rng.Intn(10_000))
			pack.SetTaskAt(i, func() uint64 { return sumTo(arg) })
		}
		if err := p.SubmitBulk(pack.Tasks()); err != nil {
			t.Fatal(err)
		}

		done := make(chan struct{})
		go func() {
			pack.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(30 * time.Second):
			t.Fatalf("iteration %d (size %d) hung", iter, n)
		}
	}
}

func TestScenario_CallbackMultiset(t *testing.T) {
	p, err := pool.New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	const n = 10
	var mu sync.Mutex
	var seen []int
	pack := taskpack.NewVoid(n, taskpack.WithCallback(func(i int) {
		mu.Lock()
		seen = append(seen, i)
		mu.Unlock()
	}))
	for i := 0; i < n; i++ {
		pack.SetTaskAt(i, func() {})
	}
	if err := p.SubmitBulk(pack.Tasks()); err != nil {
		t.Fatal(err)
	}
	pack.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != n {
		t.Fatalf("callback ran %d times, want %d", len(seen), n)
	}
	counts := make(map[int]int)
	for _, i := range seen {
		counts[i]++
	}
	for i := 0; i < n; i++ {
		if counts[i] != 1 {
			t.Errorf("index %d pushed %d times, want 1", i, counts[i])
		}
	}
}

func TestScenario_ExpandDuringWork(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock sensitive")
	}
	p, err := pool.New(2)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	const n = 20
	pack := taskpack.NewVoid(n, taskpack.WithBlockingWait())
	for i := 0; i < n; i++ {
		pack.SetTaskAt(i, func() { time.Sleep(100 * time.Millisecond) })
	}

	start := time.Now()
	if err := p.SubmitBulk(pack.Tasks()); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	p.Expand(2)
	pack.Wait()
	elapsed := time.Since(start)

	// Two workers alone need 10 rounds of 100ms; with two more workers
	// joining at 50ms, four workers must land visibly under that.
	if elapsed >= 950*time.Millisecond {
		t.Errorf("elapsed = %v, want < 950ms after expanding", elapsed)
	}
}

func TestScenario_WaitTaskGetResult(t *testing.T) {
	p, err := pool.New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	// 8 real tasks plus a wait task in the middle of the pack: the barrier
	// runs on a worker and the producer blocks on the result cell only.
	const n = 9
	const waitSlot = 4
	pack := taskpack.New[int](n, taskpack.WithBlockingWait())
	if err := pack.SetWaitTaskAt(waitSlot); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if i == waitSlot {
			continue
		}
		i := i
		if err := pack.SetTaskAt(i, func() int { return i + 1 }); err != nil {
			t.Fatal(err)
		}
	}
	pack.SetReduce(func() int {
		sum := 0
		for i := 0; i < n; i++ {
			if i != waitSlot {
				sum += pack.ResultAt(i)
			}
		}
		return sum
	})
	if err := p.SubmitBulk(pack.Tasks()); err != nil {
		t.Fatal(err)
	}

	// 1+2+3+4 + 6+7+8+9
	if got := pack.GetResult(); got != 40 {
		t.Errorf("GetResult = %d, want 40", got)
	}
	if got := pack.NCompletedTasks(); got != n-1 {
		t.Errorf("NCompletedTasks = %d, want %d", got, n-1)
	}
}

func TestScenario_ConcurrentProducers(t *testing.T) {
	p, err := pool.New(4)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	var g errgroup.Group
	for prod := 0; prod < 8; prod++ {
		g.Go(func() error {
			tok := p.NewProducerToken()
			const n = 50
			pack := taskpack.New[int](n, taskpack.WithSpinBlockWait())
			for i := 0; i < n; i++ {
				i := i
				if err := pack.SetTaskAt(i, func() int { return i }); err != nil {
					return err
				}
			}
			if err := p.SubmitBulkWith(tok, pack.Tasks()); err != nil {
				return err
			}
			pack.Wait()
			for i := 0; i < n; i++ {
				if pack.ResultAt(i) != i {
					t.Errorf("producer saw ResultAt(%d) = %d", i, pack.ResultAt(i))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
