package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
	"github.com/vaughan0/go-ini"
)

var (
	configFile = flag.String("config", "", "ini file of solution parameters (default "+defaultConfigFile+", if present)")
	inputFile  = flag.String("input", "", "read puzzle input from `file` instead of stdin")
	checkOnly  = flag.Bool("sample", false, "check the solution against its built-in example instead of solving")
	verbose    = flag.Bool("v", false, "log input size and timing")
	debug      = flag.Bool("debug", false, "dump the parsed input to stderr")
	fgprofFile = flag.String("fgprof", "", "write an fgprof profile of the solve to `file`")
)

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	sol, ok := solutions[name]
	if !ok {
		log.Fatalf("unknown solution %q", name)
	}

	if *checkOnly {
		got, err := runSample(sol)
		if err != nil {
			log.Fatalf("%s: %s", name, err)
		}
		fmt.Printf("%s sample: %d ok\n", name, got)
		return
	}

	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	params, err := parseParams(flag.Args()[1:])
	if err != nil {
		log.Fatal(err)
	}
	p := &puzzle{
		name:   name,
		params: params,
		config: config,
		debug:  *debug,
	}
	p.input, err = readInput(p)
	if err != nil {
		log.Fatalf("error reading input: %s", err)
	}
	if *verbose {
		log.Printf("read %s of input (%d lines)",
			humanize.Bytes(uint64(len(p.input))), bytes.Count(p.input, []byte{'\n'}))
	}

	answer, err := solve(sol, p)
	if err != nil {
		log.Fatalf("%s: %s", name, err)
	}
	fmt.Println(answer)
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [key=value...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

// A solution solves one part of one day's puzzle.
type solution struct {
	name  string
	solve func(*puzzle) (int, error)

	// Built-in example, if any.
	sampleFile string
	sampleWant int
}

var solutions = make(map[string]*solution)

func register(name string, fn func(*puzzle) (int, error)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = &solution{name: name, solve: fn}
}

// registerSample records that solving the example in examples/file with
// default parameters gives want.
func registerSample(name, file string, want int) {
	sol, ok := solutions[name]
	if !ok {
		panic(fmt.Sprintf("sample registered for unknown solution %q", name))
	}
	sol.sampleFile = file
	sol.sampleWant = want
}

// runSample solves sol's built-in example with default parameters and
// returns the answer, or an error if it doesn't match the expected answer.
func runSample(sol *solution) (int, error) {
	if sol.sampleFile == "" {
		return 0, fmt.Errorf("no sample registered for %s", sol.name)
	}
	input, err := readExample(sol.sampleFile)
	if err != nil {
		return 0, err
	}
	p := &puzzle{name: sol.name, input: input}
	got, err := sol.solve(p)
	if err != nil {
		return 0, fmt.Errorf("sample: %w", err)
	}
	if got != sol.sampleWant {
		return got, fmt.Errorf("sample: got %d; want %d", got, sol.sampleWant)
	}
	return got, nil
}

func solve(sol *solution, p *puzzle) (answer int, err error) {
	if *fgprofFile != "" {
		f, ferr := os.Create(*fgprofFile)
		if ferr != nil {
			return 0, ferr
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err1 := stop(); err1 != nil && err == nil {
				err = fmt.Errorf("error writing profile: %s", err1)
			}
			if err1 := f.Close(); err1 != nil && err == nil {
				err = err1
			}
		}()
	}
	start := time.Now()
	answer, err = sol.solve(p)
	if *verbose {
		log.Printf("%s: solved in %s", p.name, time.Since(start))
	}
	return answer, err
}

// A puzzle holds the input and parameters for one run of a solution.
type puzzle struct {
	name   string
	input  []byte
	params map[string]string // from key=value arguments
	config ini.File
	debug  bool
}

func (p *puzzle) reader() io.Reader {
	return bytes.NewReader(p.input)
}

// param returns the value of key. The command-line arguments are consulted
// first, then the config section for the solution (such as [3b]), then the
// section for its day ([3]). If key is set nowhere, param returns def.
func (p *puzzle) param(key, def string) string {
	if v, ok := p.params[key]; ok {
		return v
	}
	if v, ok := p.config.Get(p.name, key); ok {
		return v
	}
	day, _ := splitName(p.name)
	if v, ok := p.config.Get(strconv.Itoa(day), key); ok {
		return v
	}
	return def
}

func (p *puzzle) intParam(key string, def int) (int, error) {
	s := p.param(key, "")
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad value for %s: %q", key, s)
	}
	return n, nil
}

// dump prints v to stderr when running with -debug.
func (p *puzzle) dump(v interface{}) {
	if p.debug {
		pretty.Fprintf(os.Stderr, "%s: %# v\n", p.name, v)
	}
}

func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string)
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("bad argument %q (want key=value)", arg)
		}
		params[k] = v
	}
	return params, nil
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
