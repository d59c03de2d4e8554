// Command sweep measures signing/verification time and signature size across
// (tau, N) parameter choices, writes the rows as JSON Lines, and renders an
// HTML scatter of signature size versus signing time.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"Mirath-Signature/mirath"
)

const sweepMessage = "patient:PAT001|med:Amoxicilline,500mg,3x/day"

// Row is one sweep measurement, one line of the JSONL output.
type Row struct {
	Tau            int     `json:"tau"`
	NSeeds         int     `json:"N"`
	SoundnessBits  float64 `json:"soundness_bits"`
	SignMS         float64 `json:"sign_ms"`
	VerifyMS       float64 `json:"verify_ms"`
	SignatureBytes int     `json:"signature_bytes"`
}

func main() {
	tauSpec := flag.String("tau", "1,2,3,4,5,6", "comma-separated repetition counts")
	nSpec := flag.String("n", "8,16,32,64", "comma-separated seed-set sizes")
	iters := flag.Int("iters", 5, "timing iterations per point")
	jsonlPath := flag.String("jsonl", "sweep.jsonl", "JSONL output path")
	htmlPath := flag.String("html", "sweep.html", "HTML chart output path")
	flag.Parse()

	taus, err := parseInts(*tauSpec)
	if err != nil {
		log.Fatalf("sweep: -tau: %v", err)
	}
	ns, err := parseInts(*nSpec)
	if err != nil {
		log.Fatalf("sweep: -n: %v", err)
	}

	rows := make([]Row, 0, len(taus)*len(ns))
	for _, tau := range taus {
		for _, n := range ns {
			row, err := measurePoint(tau, n, *iters)
			if err != nil {
				log.Printf("sweep: tau=%d N=%d skipped: %v", tau, n, err)
				continue
			}
			fmt.Printf("tau=%d N=%-3d %5.1f bits  sign %6.2f ms  verify %6.2f ms  %6d B\n",
				row.Tau, row.NSeeds, row.SoundnessBits, row.SignMS, row.VerifyMS, row.SignatureBytes)
			rows = append(rows, row)
		}
	}

	if err := writeJSONL(*jsonlPath, rows); err != nil {
		log.Fatalf("sweep: %v", err)
	}
	if err := renderChart(*htmlPath, rows); err != nil {
		log.Fatalf("sweep: %v", err)
	}
	fmt.Printf("wrote %s and %s\n", *jsonlPath, *htmlPath)
}

func measurePoint(tau, n, iters int) (Row, error) {
	params := mirath.DefaultParams()
	params.Tau = tau
	params.NSeeds = n
	if err := params.Validate(); err != nil {
		return Row{}, err
	}
	pk, sk, err := mirath.GenerateKeyPair(params)
	if err != nil {
		return Row{}, err
	}

	var signTotal, verifyTotal time.Duration
	var sigBytes int
	for i := 0; i < iters; i++ {
		start := time.Now()
		sig, err := mirath.Sign(sweepMessage, sk)
		if err != nil {
			return Row{}, err
		}
		signTotal += time.Since(start)

		start = time.Now()
		if ok, reason := mirath.Verify(sweepMessage, sig, pk); !ok {
			return Row{}, fmt.Errorf("verification failed: %s", reason)
		}
		verifyTotal += time.Since(start)

		data, err := json.Marshal(sig.Record())
		if err != nil {
			return Row{}, err
		}
		sigBytes = len(data)
	}

	// Soundness error is (1/N)^tau; report it in bits.
	bits := float64(tau) * math.Log2(float64(n))
	return Row{
		Tau:            tau,
		NSeeds:         n,
		SoundnessBits:  bits,
		SignMS:         float64(signTotal.Microseconds()) / float64(iters) / 1000.0,
		VerifyMS:       float64(verifyTotal.Microseconds()) / float64(iters) / 1000.0,
		SignatureBytes: sigBytes,
	}, nil
}

func writeJSONL(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func renderChart(path string, rows []Row) error {
	page := components.NewPage().SetPageTitle("Signature Size vs. Signing Time")

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Mirath parameter sweep",
			Subtitle: "x: signature size (KiB), y: signing time (ms), label: tau/N",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "signature KiB",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "sign ms",
			Type: "value",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	items := make([]opts.ScatterData, 0, len(rows))
	for _, row := range rows {
		items = append(items, opts.ScatterData{
			Name:  fmt.Sprintf("tau=%d N=%d (%.0f bits)", row.Tau, row.NSeeds, row.SoundnessBits),
			Value: []interface{}{float64(row.SignatureBytes) / 1024.0, row.SignMS},
		})
	}
	sc.AddSeries("sweep", items,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 8}))

	page.AddCharts(sc)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := page.Render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func parseInts(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad entry %q: %w", p, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty spec")
	}
	return out, nil
}
