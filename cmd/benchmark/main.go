package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/statehouse/observe"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkSubjects(true)
	benchmarkStates(true)
	benchmarkCombines(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

func addOne(oldValue int) int {
	return oldValue + 1
}

func pass(v int) {}

func benchmarkSubjects(shouldRender bool) {

	tbl := table.NewWriter()
	tbl.SetTitle("Subject fanout")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := observe.NewSubject[int]()
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					next := observe.NewSubject[int]()
					if err := next.Connect(last); err != nil {
						log.Fatal(err)
					}
					last = next
				}

				if _, err := last.Subscribe(observe.OnNext(pass)); err != nil {
					log.Fatal(err)
				}
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				_ = src.Next(i)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkStates(shouldRender bool) {

	tbl := table.NewWriter()
	tbl.SetTitle("State replay chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := observe.NewStateOf(1)
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					next := observe.NewState[int]()
					if err := next.Connect(last); err != nil {
						log.Fatal(err)
					}
					last = next
				}

				if _, err := last.Subscribe(observe.OnNext(pass)); err != nil {
					log.Fatal(err)
				}
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				_ = src.Next(i)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkCombines(shouldRender bool) {

	tbl := table.NewWriter()
	tbl.SetTitle("Combine chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := observe.NewStateOf(1)
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					next, _, err := observe.Combine1(last, addOne)
					if err != nil {
						log.Fatal(err)
					}
					last = next
				}

				if _, err := last.Subscribe(observe.OnNext(pass)); err != nil {
					log.Fatal(err)
				}
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				_ = src.Next(i)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
