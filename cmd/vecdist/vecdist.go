// vecdist evaluates a probability distribution kernel over vectors of
// numbers, recycling arguments R-style.
//
// The -dist flag picks the family and -op picks the operation: d for
// the density or mass, p for the CDF, q for the quantile, and r for
// random draws. Inputs come from -x as a comma-separated list or from
// newline-separated numbers on stdin; multinomial counts are one
// whitespace-separated row per line. Parameters are name=value pairs,
// where a value may be a colon-separated vector:
//
//	echo 2.5 | vecdist -dist laplace -op p -params mu=2,sigma=1:2
//	vecdist -dist gpois -op r -n 10 -seed 1 -params alpha=2,beta=1
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/vecdist/go-vecdist/dist"
)

var (
	distName  = flag.String("dist", "", "distribution: bern, kumar, laplace, rayleigh, power, huber, tlambda, prop, gpois, zib, cat, mnom")
	op        = flag.String("op", "d", "operation: d (density/mass), p (CDF), q (quantile), r (draws)")
	paramFlag = flag.String("params", "", "comma-separated name=value parameters; values may be colon-separated vectors")
	xFlag     = flag.String("x", "", "comma-separated inputs (default stdin)")
	n         = flag.Int("n", 1, "number of draws for -op r")
	seed      = flag.Uint64("seed", 0, "random seed for -op r; 0 uses the global source")
	logProb   = flag.Bool("log", false, "log scale for probabilities and densities")
	upper     = flag.Bool("upper", false, "upper tail for -op p and q")
)

func main() {
	flag.Parse()
	ps := parseParams(*paramFlag)
	lower := !*upper

	var src rand.Source
	if *seed != 0 {
		src = rand.NewSource(*seed)
	}

	var (
		out  []float64
		rows [][]float64
		w    dist.Warning
		err  error
	)
	switch *distName {
	case "bern":
		prob := ps.vec("prob", 0.5)
		switch *op {
		case "d":
			out, w = dist.DBern(readX(), prob, *logProb)
		case "p":
			out, w = dist.PBern(readX(), prob, lower, *logProb)
		case "q":
			out, w = dist.QBern(readX(), prob, lower, *logProb)
		case "r":
			out, w = dist.RBern(*n, prob, src)
		default:
			failUsage()
		}
	case "kumar":
		a, b := ps.vec("a", 1), ps.vec("b", 1)
		switch *op {
		case "d":
			out, w = dist.DKumar(readX(), a, b, *logProb)
		case "p":
			out, w = dist.PKumar(readX(), a, b, lower, *logProb)
		case "q":
			out, w = dist.QKumar(readX(), a, b, lower, *logProb)
		case "r":
			out, w = dist.RKumar(*n, a, b, src)
		default:
			failUsage()
		}
	case "laplace":
		mu, sigma := ps.vec("mu", 0), ps.vec("sigma", 1)
		switch *op {
		case "d":
			out, w = dist.DLaplace(readX(), mu, sigma, *logProb)
		case "p":
			out, w = dist.PLaplace(readX(), mu, sigma, lower, *logProb)
		case "q":
			out, w = dist.QLaplace(readX(), mu, sigma, lower, *logProb)
		case "r":
			out, w = dist.RLaplace(*n, mu, sigma, src)
		default:
			failUsage()
		}
	case "rayleigh":
		sigma := ps.vec("sigma", 1)
		switch *op {
		case "d":
			out, w = dist.DRayleigh(readX(), sigma, *logProb)
		case "p":
			out, w = dist.PRayleigh(readX(), sigma, lower, *logProb)
		case "q":
			out, w = dist.QRayleigh(readX(), sigma, lower, *logProb)
		case "r":
			out, w = dist.RRayleigh(*n, sigma, src)
		default:
			failUsage()
		}
	case "power":
		alpha, beta := ps.vec("alpha", 1), ps.vec("beta", 1)
		switch *op {
		case "d":
			out, w = dist.DPower(readX(), alpha, beta, *logProb)
		case "p":
			out, w = dist.PPower(readX(), alpha, beta, lower, *logProb)
		case "q":
			out, w = dist.QPower(readX(), alpha, beta, lower, *logProb)
		case "r":
			out, w = dist.RPower(*n, alpha, beta, src)
		default:
			failUsage()
		}
	case "huber":
		mu, sigma := ps.vec("mu", 0), ps.vec("sigma", 1)
		eps := ps.vec("epsilon", 1.345)
		switch *op {
		case "d":
			out, w = dist.DHuber(readX(), mu, sigma, eps, *logProb)
		case "p":
			out, w = dist.PHuber(readX(), mu, sigma, eps, lower, *logProb)
		case "q":
			out, w = dist.QHuber(readX(), mu, sigma, eps, lower, *logProb)
		case "r":
			out, w = dist.RHuber(*n, mu, sigma, eps, src)
		default:
			failUsage()
		}
	case "tlambda":
		lambda := ps.vec("lambda", 0)
		switch *op {
		case "q":
			out, w = dist.QTLambda(readX(), lambda, lower, *logProb)
		case "r":
			out, w = dist.RTLambda(*n, lambda, src)
		default:
			failUsage()
		}
	case "prop":
		size, mean := ps.vec("size", 1), ps.vec("mean", 0.5)
		switch *op {
		case "d":
			out, w = dist.DProp(readX(), size, mean, *logProb)
		case "p":
			out, w = dist.PProp(readX(), size, mean, lower, *logProb)
		case "q":
			out, w = dist.QProp(readX(), size, mean, lower, *logProb)
		case "r":
			out, w = dist.RProp(*n, size, mean, src)
		default:
			failUsage()
		}
	case "gpois":
		alpha, beta := ps.vec("alpha", 1), ps.vec("beta", 1)
		switch *op {
		case "d":
			out, w = dist.DGPois(readX(), alpha, beta, *logProb)
		case "p":
			out, w, err = dist.PGPois(context.Background(), readX(), alpha, beta, lower, *logProb)
		case "r":
			out, w = dist.RGPois(*n, alpha, beta, src)
		default:
			failUsage()
		}
	case "zib":
		size, prob := ps.vec("size", 1), ps.vec("prob", 0.5)
		pi := ps.vec("pi", 0)
		switch *op {
		case "d":
			out, w = dist.DZIB(readX(), size, prob, pi, *logProb)
		case "p":
			out, w = dist.PZIB(readX(), size, prob, pi, lower, *logProb)
		case "q":
			out, w = dist.QZIB(readX(), size, prob, pi, lower, *logProb)
		case "r":
			out, w = dist.RZIB(*n, size, prob, pi, src)
		default:
			failUsage()
		}
	case "cat":
		prob := [][]float64{ps.vec("prob")}
		switch *op {
		case "d":
			out, w = dist.DCat(readX(), prob, *logProb)
		case "p":
			out, w = dist.PCat(readX(), prob, lower, *logProb)
		case "q":
			out, w = dist.QCat(readX(), prob, lower, *logProb)
		case "r":
			out, w = dist.RCat(*n, prob, src)
		default:
			failUsage()
		}
	case "mnom":
		size, prob := ps.vec("size", 1), [][]float64{ps.vec("prob")}
		switch *op {
		case "d":
			out, w = dist.DMnom(readRows(), size, prob, *logProb)
		case "r":
			rows, w = dist.RMnom(*n, size, prob, src)
		default:
			failUsage()
		}
	default:
		failUsage()
	}
	if err != nil {
		fail(err)
	}

	for _, v := range out {
		fmt.Printf("%g\n", v)
	}
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%g", v)
		}
		fmt.Println()
	}
	if w != 0 {
		fmt.Fprintln(os.Stderr, "vecdist:", w)
	}
}

// params holds the parsed -params vectors by name.
type params map[string][]float64

// vec returns the named parameter vector, or the default if it was not
// given. Parameters with no default are required.
func (ps params) vec(name string, def ...float64) []float64 {
	if v, ok := ps[name]; ok {
		return v
	}
	if len(def) == 0 {
		fail(fmt.Errorf("missing parameter %q", name))
	}
	return def
}

func parseParams(s string) params {
	ps := make(params)
	if s == "" {
		return ps
	}
	for _, pair := range strings.Split(s, ",") {
		name, val, ok := strings.Cut(pair, "=")
		if !ok {
			fail(fmt.Errorf("bad parameter %q", pair))
		}
		ps[name] = parseVec(val, ":")
	}
	return ps
}

func parseVec(s, sep string) []float64 {
	var out []float64
	for _, f := range strings.Split(s, sep) {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			fail(err)
		}
		out = append(out, v)
	}
	return out
}

// readX returns the input vector from -x, or else from one number per
// stdin line.
func readX() []float64 {
	if *xFlag != "" {
		return parseVec(*xFlag, ",")
	}
	var out []float64
	scan(os.Stdin, func(l string) {
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fail(err)
		}
		out = append(out, v)
	})
	return out
}

// readRows returns count rows, one whitespace-separated row per stdin
// line (or a single -x row).
func readRows() [][]float64 {
	if *xFlag != "" {
		return [][]float64{parseVec(*xFlag, ",")}
	}
	var rows [][]float64
	scan(os.Stdin, func(l string) {
		var row []float64
		for _, f := range strings.Fields(l) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				fail(err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	})
	return rows
}

func scan(r io.Reader, line func(string)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if l := strings.TrimSpace(scanner.Text()); l != "" {
			line(l)
		}
	}
	if err := scanner.Err(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func failUsage() {
	flag.Usage()
	os.Exit(2)
}
