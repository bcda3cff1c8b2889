package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/statehouse/observe"
	"github.com/delaneyj/statehouse/sequence"
	"github.com/delaneyj/statehouse/store"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting statehouse store benchmark, please wait...")
	defer log.Print("Finished statehouse store benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{
			name:        "array churn",
			kind:        kindArray,
			items:       1_000,
			subscribers: 10,
			ops:         10,
			iterations:  2_000,
		},
		{
			name:        "array wide fanout",
			kind:        kindArray,
			items:       100,
			subscribers: 1_000,
			ops:         1,
			iterations:  2_000,
		},
		{
			name:        "record updates",
			kind:        kindData,
			subscribers: 100,
			ops:         4,
			iterations:  20_000,
		},
		{
			name:        "flag flips",
			kind:        kindBool,
			subscribers: 1_000,
			ops:         1,
			iterations:  50_000,
		},
		{
			name:       "coalesced windows",
			kind:       kindSequence,
			ops:        100,
			iterations: 10_000,
		},
	}

	type results struct {
		count    int64
		duration time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"store", "size", "subs", "ops",
		"nTimes", "test", "time",
		"deliveryRate", "title",
	})

	testRepeats := 5
	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)
		counter := new(int64)
		runOnce, teardown := benchmarkMakeRun(&cfg, counter)

		// run once to warm up
		runOnce()

		bestResult := &results{
			duration: time.Hour,
		}

		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, testRepeats, (i+1)*100/testRepeats)
			*counter = 0
			start := time.Now()
			runOnce()
			duration := time.Since(start)

			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.count = *counter
			}
		}
		teardown()

		makeTitle := func() string {
			sb := strings.Builder{}
			sb.WriteString(fmt.Sprintf("%s %dx%d", cfg.kind, cfg.items, cfg.subscribers))
			if cfg.ops > 1 {
				sb.WriteString(fmt.Sprintf(" %d ops/iter", cfg.ops))
			}
			return sb.String()
		}

		deliveryRate := float64(bestResult.count) / (float64(bestResult.duration) / float64(time.Millisecond))

		table.Append([]string{
			string(cfg.kind),
			fmt.Sprint(cfg.items),
			fmt.Sprint(cfg.subscribers),
			fmt.Sprint(cfg.ops),
			humanize.Comma(int64(cfg.iterations)),
			cfg.name,
			fmt.Sprint(bestResult.duration),
			humanize.Comma(int64(deliveryRate)),
			makeTitle(),
		})
	}
	table.Render() // Send output
}

type benchmarkKind string

const (
	kindArray    benchmarkKind = "array"
	kindData     benchmarkKind = "data"
	kindBool     benchmarkKind = "bool"
	kindSequence benchmarkKind = "sequence"
)

type benchmarkTestConfig struct {
	name        string        // friendly name for the test, should be unique
	kind        benchmarkKind // which store family to exercise
	items       int           // initial item count for array stores
	subscribers int           // observers registered before the run
	ops         int           // producer calls per iteration
	iterations  int           // number of test iterations
}

// benchmarkMakeRun builds the store under test with its subscribers in
// place, and returns one timed run plus a teardown for the
// subscriptions.
func benchmarkMakeRun(cfg *benchmarkTestConfig, counter *int64) (runOnce func(), teardown func()) {
	switch cfg.kind {
	case kindArray:
		return benchmarkArray(cfg, counter)
	case kindData:
		return benchmarkData(cfg, counter)
	case kindBool:
		return benchmarkBool(cfg, counter)
	case kindSequence:
		return benchmarkSequence(cfg, counter)
	default:
		log.Fatalf("unknown benchmark kind %q", cfg.kind)
		return nil, nil
	}
}

func benchmarkArray(cfg *benchmarkTestConfig, counter *int64) (func(), func()) {
	items := make([]int, cfg.items)
	for i := range items {
		items[i] = i
	}
	arr := store.NewArray(items...)

	subs := &observe.Subscriptions{}
	for i := 0; i < cfg.subscribers; i++ {
		if err := observe.Collect(subs, arr, observe.OnNext(func(vs []int) {
			*counter++
		})); err != nil {
			log.Fatal(err)
		}
	}

	runOnce := func() {
		for i := 0; i < cfg.iterations; i++ {
			for op := 0; op < cfg.ops; op++ {
				n := cfg.items + i*cfg.ops + op
				if err := arr.Add(n); err != nil {
					log.Fatal(err)
				}
				if err := arr.Toggle(i % cfg.items); err != nil {
					log.Fatal(err)
				}
				if err := arr.Delete(n); err != nil {
					log.Fatal(err)
				}
			}
		}
	}
	return runOnce, subs.Clear
}

type playerScore struct {
	Plays int
	Score int
	Label string
}

func benchmarkData(cfg *benchmarkTestConfig, counter *int64) (func(), func()) {
	rec := store.NewDataOf(playerScore{Label: "benchmark"})

	subs := &observe.Subscriptions{}
	for i := 0; i < cfg.subscribers; i++ {
		if err := observe.Collect(subs, rec, observe.OnNext(func(p playerScore) {
			*counter++
		})); err != nil {
			log.Fatal(err)
		}
	}

	addPlay := func(p playerScore) playerScore {
		p.Plays++
		return p
	}
	addScore := func(p playerScore) playerScore {
		p.Score += 3
		return p
	}

	runOnce := func() {
		for i := 0; i < cfg.iterations; i++ {
			for op := 0; op < cfg.ops; op++ {
				if err := rec.Update(addPlay, addScore); err != nil {
					log.Fatal(err)
				}
			}
		}
	}
	return runOnce, subs.Clear
}

func benchmarkBool(cfg *benchmarkTestConfig, counter *int64) (func(), func()) {
	flag := store.NewBool(false)

	subs := &observe.Subscriptions{}
	for i := 0; i < cfg.subscribers; i++ {
		if err := observe.Collect(subs, flag, observe.OnNext(func(bool) {
			*counter++
		})); err != nil {
			log.Fatal(err)
		}
	}

	runOnce := func() {
		for i := 0; i < cfg.iterations; i++ {
			for op := 0; op < cfg.ops; op++ {
				if err := flag.Toggle(); err != nil {
					log.Fatal(err)
				}
			}
		}
	}
	return runOnce, subs.Clear
}

func benchmarkSequence(cfg *benchmarkTestConfig, counter *int64) (func(), func()) {
	queue := sequence.NewQueue()
	deferred := sequence.NewDeferredOn[int](queue)
	cursor := deferred.Cursor()
	ctx := context.Background()

	runOnce := func() {
		for i := 0; i < cfg.iterations; i++ {
			for op := 0; op < cfg.ops; op++ {
				deferred.Resolve(i*cfg.ops + op)
			}
			queue.Flush()
			if _, err := cursor.Next(ctx); err != nil {
				log.Fatal(err)
			}
			*counter++
		}
	}
	return runOnce, func() {}
}
