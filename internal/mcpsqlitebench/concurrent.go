package mcpsqlitebench

import (
	"sync"

	"github.com/nsqlite/mcpsqlite/internal/mcpsqlitebench/benchbar"
)

// runConcurrent calls fn for every index in [0, total) keeping at most
// concurrency calls in flight. It returns the first error reported.
func runConcurrent(
	total, concurrency int, bar *benchbar.Bar, fn func(idx int) error,
) error {
	wg := sync.WaitGroup{}
	wgch := make(chan bool, concurrency)
	errChan := make(chan error, total)

	for idx := range total {
		wg.Add(1)
		wgch <- true

		go func() {
			defer func() {
				wg.Done()
				<-wgch
			}()

			if err := fn(idx); err != nil {
				errChan <- err
				return
			}
			bar.Inc()
		}()
	}

	wg.Wait()
	close(wgch)
	close(errChan)

	for e := range errChan {
		if e != nil {
			return e
		}
	}

	bar.Finish()
	return nil
}
