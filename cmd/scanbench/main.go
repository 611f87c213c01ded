// Command scanbench compares the scan strategies against the sequential
// oracle and reports per-strategy timings.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/LynnColeArt/prescan"
	"github.com/LynnColeArt/prescan/gpu"
)

func main() {
	var (
		size    = flag.Int("n", 1<<20, "Input length")
		reps    = flag.Int("reps", 10, "Repetitions per strategy")
		seed    = flag.Int64("seed", 42, "RNG seed for the input")
		workers = flag.Int("workers", prescan.DefaultWorkers(), "Workers for the segmented strategy")
		useGPU  = flag.Bool("gpu", false, "Also run the WebGPU kernel (small inputs only)")
	)
	flag.Parse()

	fmt.Println("=== prescan strategy comparison ===")
	fmt.Printf("Date: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("CPU: %d cores\n", runtime.NumCPU())
	fmt.Println(prescan.GetCPUInfo())
	fmt.Printf("Input: %d float32 elements, seed %d\n\n", *size, *seed)

	rng := rand.New(rand.NewSource(*seed))
	input := make([]float32, *size)
	for i := range input {
		input[i] = rng.Float32()*2 - 1
	}

	add := func(a, b float32) float32 { return a + b }
	output := make([]float32, *size)

	// Oracle result for agreement checks.
	expected := make([]float32, *size)
	if err := prescan.SequentialScan(add, input, expected); err != nil {
		log.Fatalf("oracle failed: %v", err)
	}

	type run struct {
		name string
		fn   func() error
	}
	runs := []run{
		{"Sequential", func() error { return prescan.SequentialScan(add, input, output) }},
		{"Segmented", func() error { return prescan.SegmentedScan(add, input, output, *workers) }},
		{"WorkEfficient", func() error { return prescan.WorkEfficientScan(add, input, output) }},
		{"CumSum", func() error { return prescan.CumSum(input, output) }},
	}
	if *size <= prescan.MaxGroupSize {
		runs = append(runs, run{"Tree", func() error { return prescan.TreeScan(add, input, output) }})
	} else {
		fmt.Printf("Tree: skipped (n > %d, one compute group)\n", prescan.MaxGroupSize)
	}

	tol := prescan.RelaxedTolerance()
	for _, r := range runs {
		best := time.Duration(1<<63 - 1)
		for i := 0; i < *reps; i++ {
			start := time.Now()
			if err := r.fn(); err != nil {
				log.Fatalf("%s failed: %v", r.name, err)
			}
			if d := time.Since(start); d < best {
				best = d
			}
		}

		verdict := "OK"
		if res := prescan.VerifyFloat32Array(expected, output, tol); res.NumErrors != 0 {
			verdict = fmt.Sprintf("MISMATCH (%d elems)", res.NumErrors)
		}
		rate := float64(*size) * 4 / best.Seconds() / 1e9
		fmt.Printf("%-14s %12v  %6.2f GB/s  %s\n", r.name, best, rate, verdict)
	}

	if *useGPU {
		runGPU(input, expected)
	}
}

func runGPU(input, expected []float32) {
	n := len(input)
	if n > gpu.MaxScanSize {
		n = gpu.MaxScanSize
		fmt.Printf("GPU: truncating input to %d elements (one workgroup)\n", n)
	}
	if !gpu.Available() {
		fmt.Println("GPU: no WebGPU adapter available")
		return
	}

	k, err := gpu.NewScanKernel(n)
	if err != nil {
		log.Fatalf("GPU kernel setup failed: %v", err)
	}
	defer k.Release()

	start := time.Now()
	got, err := k.Scan(input[:n])
	if err != nil {
		log.Fatalf("GPU scan failed: %v", err)
	}
	elapsed := time.Since(start)

	verdict := "OK"
	if res := prescan.VerifyFloat32Array(expected[:n], got, prescan.RelaxedTolerance()); res.NumErrors != 0 {
		verdict = fmt.Sprintf("MISMATCH (%d elems)", res.NumErrors)
	}
	fmt.Printf("%-14s %12v  (n=%d, includes transfer)  %s\n", "GPU Tree", elapsed, n, verdict)
}
