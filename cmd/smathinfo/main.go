// Command smathinfo inspects the smath scalar primitives.
//
// Usage:
//
//	smathinfo [flags] [value ...]
//
// Examples:
//
//	smathinfo -consts
//	smathinfo -eval invsqrt 2 10 0.25
//	smathinfo -eval floor -- -2 -1.5 0
//	smathinfo -cpu
//	smathinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/chapmankyle/simple-math/smath"
	"github.com/chapmankyle/simple-math/smath/batch"
	"github.com/chapmankyle/simple-math/smath/constants"
	"github.com/chapmankyle/simple-math/smath/core"
	"github.com/chapmankyle/simple-math/smath/scalar"
)

type primitive struct {
	name string
	fn   func(float64) float64
	ref  func(float64) float64
}

var registry = []primitive{
	{"abs", scalar.Abs[float64], math.Abs},
	{"round", scalar.Round[float64], func(x float64) float64 { return math.Floor(x + 0.5) }},
	{"floor", scalar.Floor[float64], math.Floor},
	{"ceil", scalar.Ceil[float64], math.Ceil},
	{"sqrt", scalar.Sqrt[float64], math.Sqrt},
	{"invsqrt", scalar.InvSqrt[float64], func(x float64) float64 { return 1 / math.Sqrt(x) }},
	{"radians", scalar.Radians[float64], func(x float64) float64 { return x * math.Pi / 180 }},
	{"degrees", scalar.Degrees[float64], func(x float64) float64 { return x * 180 / math.Pi }},
	{"log", scalar.Log[float64], math.Log},
	{"fastsqrt", scalar.FastSqrt, math.Sqrt},
	{"fastlog", scalar.FastLog, math.Log},
	{"fastexp", scalar.FastExp, math.Exp},
}

var errUnknownPrimitive = errors.New("unknown primitive")

func main() {
	consts := flag.Bool("consts", false, "print the constant table")
	eval := flag.String("eval", "", "evaluate the named primitive on the positional values")
	showCPU := flag.Bool("cpu", false, "print detected CPU features and the batch kernel level")
	list := flag.Bool("list", false, "list available primitive names")
	version := flag.Bool("version", false, "print the library version")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: smathinfo [flags] [value ...]\n\n")
		fmt.Fprintf(os.Stderr, "Inspects the smath scalar primitives.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  smathinfo -consts\n")
		fmt.Fprintf(os.Stderr, "  smathinfo -eval invsqrt 2 10 0.25\n")
		fmt.Fprintf(os.Stderr, "  smathinfo -cpu\n")
	}
	flag.Parse()

	switch {
	case *version:
		fmt.Println(smath.Version)
	case *list:
		printList(os.Stdout)
	case *consts:
		exitOn(printConstants(os.Stdout))
	case *showCPU:
		exitOn(printCPU(os.Stdout, cpu.DetectFeatures(), batch.KernelLevel()))
	case *eval != "":
		values, err := parseValues(flag.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		exitOn(printEval(os.Stdout, *eval, values))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, p := range registry {
		names[i] = p.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func lookup(name string) (primitive, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range registry {
		if p.name == name {
			return p, nil
		}
	}
	return primitive{}, fmt.Errorf("%w %q (use -list to see available)", errUnknownPrimitive, name)
}

func parseValues(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, errors.New("no values given")
	}
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func printEval(w io.Writer, name string, values []float64) error {
	p, err := lookup(name)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Input\t%s\tReference\tRel. error\n", p.name)
	fmt.Fprintf(tw, "-----\t%s\t---------\t----------\n", strings.Repeat("-", len(p.name)))
	for _, x := range values {
		got, want := p.fn(x), p.ref(x)
		fmt.Fprintf(tw, "%g\t%.17g\t%.17g\t%.3e\n", x, got, want, core.RelativeError(got, want))
	}
	return tw.Flush()
}

func printConstants(w io.Writer) error {
	rows := []struct {
		name  string
		value float64
	}{
		{"Pi", constants.Pi},
		{"TwoPi", constants.TwoPi},
		{"Pi2", constants.Pi2},
		{"Pi4", constants.Pi4},
		{"Rad", constants.Rad},
		{"Deg", constants.Deg},
		{"E", constants.E},
		{"Log2E", constants.Log2E},
		{"Log10E", constants.Log10E},
		{"Ln2", constants.Ln2},
		{"Ln10", constants.Ln10},
		{"Sqrt2", constants.Sqrt2},
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tValue\n")
	fmt.Fprintf(tw, "----\t-----\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.17g\n", r.name, r.value)
	}
	return tw.Flush()
}

func printCPU(w io.Writer, f cpu.Features, level cpu.SIMDLevel) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Architecture\t%s\n", f.Architecture)
	fmt.Fprintf(tw, "SSE2\t%t\n", f.HasSSE2)
	fmt.Fprintf(tw, "AVX\t%t\n", f.HasAVX)
	fmt.Fprintf(tw, "AVX2\t%t\n", f.HasAVX2)
	fmt.Fprintf(tw, "AVX-512\t%t\n", f.HasAVX512)
	fmt.Fprintf(tw, "NEON\t%t\n", f.HasNEON)
	fmt.Fprintf(tw, "Forced generic\t%t\n", f.ForceGeneric)
	fmt.Fprintf(tw, "Batch kernels\t%v\n", level)
	return tw.Flush()
}
