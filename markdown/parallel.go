package markdown

import (
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// loggerPtr holds the package logger. Rendering never fails because of a
// log statement; it only reports degraded output such as formula
// fallbacks. The pointer is swapped atomically so SetLogger is safe to
// call while renders are in flight.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newLogger())
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

func logger() *logrus.Logger {
	return loggerPtr.Load()
}

// SetLogger replaces the package logger. Passing nil restores the default.
// Safe for concurrent use with rendering.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newLogger()
	}
	loggerPtr.Store(l)
}

// renderIndexed renders n items concurrently and concatenates the results
// in index order, so output is identical to a sequential pass.
func renderIndexed(n int, render func(i int) string) string {
	parts := make([]string, n)
	eachIndexed(n, func(i int) { parts[i] = render(i) })
	return strings.Join(parts, "")
}

// workerCount caps fork-join concurrency at the CPU count; rendering is
// CPU-bound, so more goroutines than cores only add scheduling overhead.
func workerCount(n int) int {
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	return workers
}

// eachIndexed runs fn for every index in [0, n) across a bounded pool of
// workers and waits for all of them.
func eachIndexed(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	workers := workerCount(n)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// renderIndexedErr is renderIndexed for fallible work. The first error
// (by scheduling, not index) is returned and the output discarded.
func renderIndexedErr(n int, render func(i int) (string, error)) (string, error) {
	parts := make([]string, n)
	var g errgroup.Group
	g.SetLimit(workerCount(n))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			s, err := render(i)
			if err != nil {
				return err
			}
			parts[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(parts, ""), nil
}
