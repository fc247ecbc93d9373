// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for mpmcpool components.

package benchmarks

import (
	"sync"
	"testing"
	"time"

	"github.com/momentics/mpmcpool/core/queue"
	"github.com/momentics/mpmcpool/pool"
	"github.com/momentics/mpmcpool/taskpack"
)

// BenchmarkQueueThroughput tests lock-free queue enqueue/dequeue pairs.
func BenchmarkQueueThroughput(b *testing.B) {
	q := queue.New[int](1024)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			q.Enqueue(i)
			q.TryDequeue()
			i++
		}
	})
}

// BenchmarkQueueTokenThroughput tests per-producer lane enqueues.
func BenchmarkQueueTokenThroughput(b *testing.B) {
	q := queue.New[int](1024)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		tok := q.NewToken()
		i := 0
		for pb.Next() {
			q.EnqueueWith(tok, i)
			q.TryDequeue()
			i++
		}
	})
}

// BenchmarkPoolSubmit measures end-to-end task dispatch.
func BenchmarkPoolSubmit(b *testing.B) {
	p, err := pool.New(4)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	var wg sync.WaitGroup
	wg.Add(b.N)
	task := func() { wg.Done() }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.Submit(task); err != nil {
			b.Fatal(err)
		}
	}
	wg.Wait()
}

// BenchmarkPoolSubmitWithToken measures dispatch through a producer token.
func BenchmarkPoolSubmitWithToken(b *testing.B) {
	p, err := pool.New(4)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	tok := p.NewProducerToken()
	var wg sync.WaitGroup
	wg.Add(b.N)
	task := func() { wg.Done() }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.SubmitWith(tok, task); err != nil {
			b.Fatal(err)
		}
	}
	wg.Wait()
}

// BenchmarkPackCompletion measures pack round trips per wait strategy.
func BenchmarkPackCompletion(b *testing.B) {
	p, err := pool.New(4)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	cases := map[string]taskpack.Option{
		"spin":      taskpack.WithSpinWait(),
		"spinblock": taskpack.WithSpinBlockWait(),
		"blocking":  taskpack.WithBlockingWait(),
	}
	for name, strat := range cases {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				pack := taskpack.NewVoid(16, strat, taskpack.WithInterval(time.Microsecond))
				for j := 0; j < 16; j++ {
					pack.SetTaskAt(j, func() {})
				}
				if err := p.SubmitBulk(pack.Tasks()); err != nil {
					b.Fatal(err)
				}
				pack.Wait()
			}
		})
	}
}
