// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package golazyconcurrent

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/kaaserne/golazy/pkg/golazy"
)

// ForEach drains v using workers goroutines, each pulling from the same
// shared Iterator obtained via a mutex-guarded "next" closure, and
// calling fn on every element. It returns the first non-nil error
// returned by fn, or a recovered panic wrapped as an error; ctx
// cancellation stops dispatching further elements to workers.
//
// Because golazy.Iterator is not itself safe for concurrent use (see
// View's documentation), ForEach never hands the same Iterator to two
// goroutines at once: each pull through v.Iter() is serialized under a
// mutex, and only the call to fn runs concurrently.
func ForEach[T any](ctx context.Context, v golazy.View[T], workers int, fn func(T) error) error {
	if workers < 1 {
		workers = 1
	}

	it := v.Iter()
	var mu sync.Mutex
	next := func() (T, bool) {
		mu.Lock()
		defer mu.Unlock()
		if !it.Next() {
			var zero T
			return zero, false
		}
		return it.Value(), true
	}

	ps := &PanicStore{}
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	worker := func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				ps.Store(r, debug.Stack())
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			val, ok := next()
			if !ok {
				return
			}
			if err := fn(val); err != nil {
				select {
				case errCh <- err:
				default:
				}
				return
			}
		}
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}
	wg.Wait()
	close(errCh)

	if info, ok := ps.Load(); ok {
		return fmt.Errorf("golazyconcurrent: worker panic: %v", info.Value)
	}
	if err := <-errCh; err != nil {
		return err
	}
	return ctx.Err()
}
