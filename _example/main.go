package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/algokit"
	"github.com/hupe1980/algokit/searcher"
	"github.com/hupe1980/algokit/shuffler"
	"github.com/hupe1980/algokit/sorter"
)

func main() {
	size := 1_000_000

	rng := rand.New(rand.NewPCG(4711, 42))
	values := make([]int64, size)
	for i := range values {
		values[i] = rng.Int64N(1 << 40)
	}
	key := values[size/2]

	fmt.Println("--- Sort ---")
	fmt.Println("Size:", size)

	start := time.Now()

	if err := algokit.SortSlice(values, sorter.AlgorithmQuick, sorter.OrderAsc); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Seconds: %.4f\n\n", time.Since(start).Seconds())

	fmt.Println("--- Search ---")

	for _, algo := range []searcher.Algorithm{
		searcher.AlgorithmBinary,
		searcher.AlgorithmInterpolation,
		searcher.AlgorithmFibonacci,
	} {
		start = time.Now()

		idx, err := algokit.SearchSlice(values, key, algo, searcher.OrderAsc)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%s: index %d, seconds %.8f\n", algo, idx, time.Since(start).Seconds())
	}
	fmt.Println()

	fmt.Println("--- Shuffle ---")

	start = time.Now()

	if err := algokit.ShuffleSlice(values, shuffler.AlgorithmFisherYates, shuffler.ModeSeeded, 4711); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Seconds: %.4f\n", time.Since(start).Seconds())

	fmt.Println("\n--- Status API ---")

	raw := []byte{4, 2, 5, 1, 3}
	status := algokit.Sort(raw, len(raw), "u8", "counting", "desc")
	fmt.Printf("counting desc: status %d, data %v\n", status, raw)
}
