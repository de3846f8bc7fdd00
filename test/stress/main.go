/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	nomen "github.com/nomenclatura/nomen/api"
)

/*
 * This hammers the shared parser from many goroutines at once. Every name
 * carries a unique suffix, and every result is checked against a freshly
 * built parser given the same input.
 */

var templates = []string{
	"Homo sapiens L.",
	"Quercus robur subsp. pedunculiflora (K. Koch) Menitsky",
	"Abies alba Mill. x Abies nordmanniana Spach",
	"Puma concolor (Linnaeus, 1771)",
	"Homo sp.",
	"###",
}

func main() {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)

	start := time.Now()
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := uuid.NewString()

			for i := 0; i < 1000; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					name := fmt.Sprintf("%s %s", templates[i%len(templates)], id[:8])

					got := nomen.RenderJSONString(nomen.Instance().FromString(name), false)
					want := nomen.RenderJSONString(nomen.New().FromString(name), false)
					if got != want {
						mu.Lock()
						failures++
						mu.Unlock()
					}
				}(i)
			}
		}()
	}

	wg.Wait()

	fmt.Printf("parsed %s names in %s\n", humanize.Comma(10*1000), time.Since(start))
	if failures > 0 {
		fmt.Printf("%d results differed\n", failures)
		os.Exit(1)
	}
}
