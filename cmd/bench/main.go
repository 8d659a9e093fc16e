// Command bench measures the latency of the credential operations across
// vocabulary sizes and renders the results as a chart.
//
// Usage:
//
//	bench -iterations 50 -sizes 10,20,30,40,50 -out benchmark
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/somecookie/SecretStroll/abc"
)

// stats summarises one benchmarked operation at one vocabulary size.
type stats struct {
	Mean float64 `json:"mean_ms"`
	Std  float64 `json:"std_ms"`
	Min  float64 `json:"min_ms"`
	Max  float64 `json:"max_ms"`
}

// point is one (vocabulary size, stats) sample of an operation.
type point struct {
	Attributes int   `json:"attributes"`
	Stats      stats `json:"stats"`
}

func main() {
	iterations := flag.Int("iterations", 20, "Iterations per measurement")
	sizes := flag.String("sizes", "10,20,30,40,50", "Comma-separated vocabulary sizes")
	outDir := flag.String("out", "benchmark", "Output directory for JSON and chart")
	flag.Parse()

	if *iterations < 2 {
		fmt.Fprintln(os.Stderr, "Error: iterations must be at least 2")
		os.Exit(1)
	}
	attrCounts, err := parseSizes(*sizes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	results := map[string][]point{}
	for _, n := range attrCounts {
		fmt.Printf("========== %d attributes ==========\n", n)
		for op, sample := range runProtocol(n, *iterations) {
			results[op] = append(results[op], point{Attributes: n, Stats: sample})
			fmt.Printf("%-22s mean %8.2f ms  std %6.2f  min %8.2f  max %8.2f\n",
				op, sample.Mean, sample.Std, sample.Min, sample.Max)
		}
	}

	jsonPath := filepath.Join(*outDir, "results.json")
	if err := writeJSON(jsonPath, results); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	chartPath := filepath.Join(*outDir, "latency.png")
	if err := renderChart(chartPath, results); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to %s, chart to %s\n", jsonPath, chartPath)
}

func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid vocabulary size %q", p)
		}
		out = append(out, n)
	}
	return out, nil
}

// runProtocol benchmarks every operation of the credential life cycle over
// a vocabulary of n attributes, with the credential holding half of them
// and revealing a quarter.
func runProtocol(n, iterations int) map[string]stats {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("attr%03d", i)
	}
	vocabulary := strings.Join(names, ",")
	held := strings.Join(names[:(n+1)/2], ",")
	revealed := strings.Join(names[:(n+3)/4], ",")
	message := []byte("46.52345,6.57890")

	pk, sk, err := abc.GenerateCA(vocabulary)
	if err != nil {
		fatalf("GenerateCA: %v", err)
	}
	request, state, err := abc.PrepareRegistration(pk, "bench", held)
	if err != nil {
		fatalf("PrepareRegistration: %v", err)
	}
	response, err := abc.Register(sk, request, "bench", held)
	if err != nil || len(response) == 0 {
		fatalf("Register failed: %v", err)
	}
	credential, err := abc.ProceedRegistrationResponse(pk, response, state)
	if err != nil {
		fatalf("ProceedRegistrationResponse: %v", err)
	}
	showing, err := abc.SignRequest(pk, credential, message, revealed)
	if err != nil {
		fatalf("SignRequest: %v", err)
	}

	return map[string]stats{
		"generate_ca": measure(iterations, func() {
			abc.GenerateCA(vocabulary)
		}),
		"prepare_registration": measure(iterations, func() {
			abc.PrepareRegistration(pk, "bench", held)
		}),
		"register": measure(iterations, func() {
			abc.Register(sk, request, "bench", held)
		}),
		"sign_request": measure(iterations, func() {
			abc.SignRequest(pk, credential, message, revealed)
		}),
		"check_signature": measure(iterations, func() {
			abc.CheckRequestSignature(pk, message, revealed, showing)
		}),
	}
}

// measure times fn and reports mean, standard deviation, min and max in
// milliseconds.
func measure(iterations int, fn func()) stats {
	samples := make([]float64, iterations)
	for i := range samples {
		start := time.Now()
		fn()
		samples[i] = float64(time.Since(start).Microseconds()) / 1000.0
	}

	s := stats{Min: samples[0], Max: samples[0]}
	for _, v := range samples {
		s.Mean += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean /= float64(iterations)
	for _, v := range samples {
		s.Std += (v - s.Mean) * (v - s.Mean)
	}
	s.Std = math.Sqrt(s.Std / float64(iterations-1))
	return s
}

func writeJSON(path string, results map[string][]point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// renderChart draws mean latency against vocabulary size, one series per
// operation.
func renderChart(path string, results map[string][]point) error {
	series := make([]chart.Series, 0, len(results))
	for op, points := range results {
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = float64(p.Attributes)
			ys[i] = p.Stats.Mean
		}
		series = append(series, chart.ContinuousSeries{
			Name:    op,
			XValues: xs,
			YValues: ys,
		})
	}

	graph := chart.Chart{
		Title:  "Credential operation latency",
		XAxis:  chart.XAxis{Name: "vocabulary size"},
		YAxis:  chart.YAxis{Name: "mean latency (ms)"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return graph.Render(chart.PNG, f)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
