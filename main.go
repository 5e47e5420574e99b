/*
Farthest-point sampling
-----------------------
The goal of this program is to pick structurally diverse subsets of
crystal-structure candidates for further study. Each input directory
holds a CSV of REFCODEs and SMILES; the molecules are fingerprinted,
any molecules selected by a previous run are carried over, and greedy
farthest-point sampling tops the selection up to the requested count
before writing it back out and rendering a cluster plot.
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const help = `Requirements:
- a YAML configuration file listing the input directories, or the
  directories as arguments after it
- in each directory, a CSV with REFCODE and SMILES columns
Flags:
`

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	seed       = flag.Int64("seed", 0, "seed the bootstrap draw for reproducible selections")
	version    = flag.Bool("version", false, "print the version and exit")
)

var VERSION = "dev"

// ParseFlags parses command line flags and returns a slice of the
// remaining arguments
func ParseFlags() []string {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "%s", help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Printf("fps version: %s\n", VERSION)
		os.Exit(0)
	}
	return flag.Args()
}

// Process runs one full sampling pass over dir: load the dataset,
// fingerprint it, resolve the previous selection, extend it by
// farthest-point sampling, and write the result. The plot is a
// diagnostic, so its failures are logged rather than returned.
func Process(dir string, conf *Config, rng *rand.Rand, lg *zap.Logger) error {
	lg = lg.With(zap.String("dir", dir))
	refcodes, smiles, err := ReadDataset(
		filepath.Join(dir, conf.DatasetFile),
		conf.RefcodeColumn, conf.SmilesColumn)
	if err != nil {
		return err
	}
	features, valid := Fingerprints(smiles, conf.Radius, conf.Size, lg)
	if len(features) == 0 {
		return ErrNoMolecules
	}
	vref := make([]string, len(valid))
	vsmi := make([]string, len(valid))
	for i, idx := range valid {
		vref[i] = refcodes[idx]
		vsmi[i] = smiles[idx]
	}
	loaded, err := LoadExisting(filepath.Join(dir, conf.ExistingFile))
	if err != nil {
		return err
	}
	existing := ResolveExisting(loaded, vsmi, lg)
	sampled, err := SampleFarthest(conf.Samples, features, existing, rng)
	if err != nil {
		return err
	}
	if len(sampled) < conf.Samples {
		lg.Warn("ran out of distinct molecules",
			zap.Int("selected", len(sampled)),
			zap.Int("requested", conf.Samples))
	}
	outfile := filepath.Join(dir, conf.OutputFile)
	if err := WriteSelection(outfile, vref, vsmi, sampled); err != nil {
		return err
	}
	lg.Info("wrote selection",
		zap.String("file", outfile),
		zap.Int("existing", len(existing)),
		zap.Int("new", len(sampled)-len(existing)))
	if conf.NoPlot {
		return nil
	}
	if len(features) < 2 {
		lg.Info("too few molecules to plot")
		return nil
	}
	labels := Cluster(features, min(conf.Clusters, len(features)-1))
	coords, err := ProjectPCA(features)
	if err == nil {
		err = PlotSelection(filepath.Join(dir, conf.PlotFile),
			coords, labels, sampled, existing)
	}
	if err != nil {
		lg.Warn("plot failed", zap.Error(err))
	}
	return nil
}

func main() {
	args := ParseFlags()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	if len(args) < 1 {
		log.Fatal("fps: no configuration file supplied")
	}
	conf, err := LoadConfig(args[0])
	if err != nil {
		errExit(err, "loading configuration")
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			conf.Seed = seed
		}
	})
	dirs := args[1:]
	if len(dirs) == 0 {
		dirs = conf.Dirs
	}
	if len(dirs) == 0 {
		errExit(errors.New("no input directories"),
			"in config or arguments")
	}
	logger, err := NewLogger(conf.Debug)
	if err != nil {
		errExit(err, "building logger")
	}
	defer logger.Sync()
	base := time.Now().UnixNano()
	if conf.Seed != nil {
		base = *conf.Seed
	}
	// one directory per worker, nothing shared but the logger; each
	// gets its own rand stream so fixed seeds stay reproducible no
	// matter which worker picks the directory up
	type task struct {
		dir  string
		seed int64
	}
	var (
		work   = make(chan task)
		wg     sync.WaitGroup
		failed int32
	)
	for w := 0; w < conf.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range work {
				rng := rand.New(rand.NewSource(t.seed))
				if err := Process(t.dir, conf, rng, logger); err != nil {
					logger.Error("sampling failed",
						zap.String("dir", t.dir), zap.Error(err))
					atomic.AddInt32(&failed, 1)
				}
			}
		}()
	}
	for i, dir := range dirs {
		work <- task{dir, base + int64(i)}
	}
	close(work)
	wg.Wait()
	if failed > 0 {
		os.Exit(1)
	}
}
