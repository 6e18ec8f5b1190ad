// scenegraph-bench is a benchmark and stress test for the scenegraph
// library. It builds wide and deep graphs and measures common operations.
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/phroun/scenegraph"
)

const (
	wideCount  = 1_000_000
	deepCount  = 1_000_000
	moveCount  = 1_000_000
	burstCount = 10_000
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		return fmt.Sprintf("%-40s %12v  (%d ops, %.0f ops/sec)", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Millisecond))
}

func timed(name string, ops int, f func()) BenchResult {
	start := time.Now()
	f()
	return BenchResult{Name: name, Duration: time.Since(start), Ops: ops}
}

func main() {
	fmt.Println("SceneGraph Benchmark and Stress Test")
	fmt.Println("====================================")
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Println()

	var results []BenchResult

	// Wide graph: a million direct children of the root.
	wide := scenegraph.New("root")
	results = append(results, timed("attach wide (1M root children)", wideCount, func() {
		for i := 0; i < wideCount; i++ {
			wide.AttachAtRoot(fmt.Sprintf("node_%d", i))
		}
	}))

	results = append(results, timed("iterate wide", wideCount, func() {
		it := wide.Iter()
		for {
			if _, _, ok := it.Next(); !ok {
				return
			}
		}
	}))

	results = append(results, timed("iterate wide out of order", wideCount, func() {
		for range wide.IterOutOfOrder() {
		}
	}))

	results = append(results, timed("clear wide", 0, func() {
		wide.Clear()
	}))

	// Deep graph: a single chain a million nodes long. Exercises the
	// iterative traversal; recursion would overflow the stack here.
	deep := scenegraph.New(0)
	var head scenegraph.NodeIndex
	results = append(results, timed("attach deep (1M-node chain)", deepCount, func() {
		parent := scenegraph.Root
		for i := 0; i < deepCount; i++ {
			parent, _ = deep.Attach(parent, i)
			if i == 0 {
				head = parent
			}
		}
	}))

	results = append(results, timed("iterate deep", deepCount, func() {
		it := deep.Iter()
		for {
			if _, _, ok := it.Next(); !ok {
				return
			}
		}
	}))

	results = append(results, timed("remove deep chain", deepCount, func() {
		if err := deep.Remove(head); err != nil {
			panic(err)
		}
	}))

	// Repeated reparenting between two hosts.
	moves := scenegraph.New("root")
	left := moves.AttachAtRoot("left")
	right := moves.AttachAtRoot("right")
	mover := moves.AttachAtRoot("mover")
	results = append(results, timed("move node (ping-pong)", moveCount, func() {
		for i := 0; i < moveCount; i++ {
			target := left
			if i%2 == 1 {
				target = right
			}
			if err := moves.MoveNode(mover, target); err != nil {
				panic(err)
			}
		}
	}))

	// Detach and reattach a subtree over and over.
	host := scenegraph.New("root")
	branch := host.AttachAtRoot("branch")
	for i := 0; i < 100; i++ {
		host.Attach(branch, fmt.Sprintf("leaf_%d", i))
	}
	results = append(results, timed("detach+attach subtree (10k rounds)", burstCount, func() {
		for i := 0; i < burstCount; i++ {
			sub, err := host.Detach(branch)
			if err != nil {
				panic(err)
			}
			branch, err = host.AttachGraph(scenegraph.Root, sub)
			if err != nil {
				panic(err)
			}
		}
	}))

	fmt.Println()
	for _, r := range results {
		fmt.Println(r)
	}
}
