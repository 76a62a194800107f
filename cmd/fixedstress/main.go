// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Program fixedstress runs random operation streams through the containers
// and checks them against reference models.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"
	"unsafe"

	"gate.computer/fixed"
	"gate.computer/fixed/internal/model"
	"gate.computer/fixed/lentype"
	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Config can be loaded from a TOML file.  Command-line flags override it.
type Config struct {
	Label   fixed.Str[[32]byte]
	Seed    uint64
	Rounds  int
	Ops     int
	OffHeap bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	c := Config{
		Seed:   uint64(time.Now().UnixNano()),
		Rounds: 1000,
		Ops:    4096,
	}

	var (
		configFile string
		verbose    bool
		label      string
	)

	flag.StringVar(&configFile, "config", configFile, "TOML configuration file")
	flag.StringVar(&label, "label", label, "name of the run (at most 32 bytes)")
	flag.Uint64Var(&c.Seed, "seed", c.Seed, "random seed")
	flag.IntVar(&c.Rounds, "rounds", c.Rounds, "number of operation streams per container")
	flag.IntVar(&c.Ops, "ops", c.Ops, "operation stream size in bytes")
	flag.BoolVar(&c.OffHeap, "offheap", c.OffHeap, "place strings in mmap'd memory")
	flag.BoolVar(&verbose, "v", verbose, "verbose logging")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if configFile != "" {
		if err := loadConfig(&c, configFile); err != nil {
			logger.Fatal("configuration", zap.String("file", configFile), zap.Error(err))
		}
	}
	if label != "" {
		if err := c.Label.UnmarshalText([]byte(label)); err != nil {
			logger.Fatal("label", zap.Error(err))
		}
	}

	logger = logger.With(zap.Stringer("label", c.Label), zap.Uint64("seed", c.Seed))

	if err := run(logger, &c); err != nil {
		logger.Fatal("failed", zap.Error(err))
	}
}

// loadConfig decodes a file on top of c, and then applies the flags which
// were set explicitly.
func loadConfig(c *Config, filename string) error {
	defaults := *c

	if _, err := toml.DecodeFile(filename, c); err != nil {
		return err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			c.Seed = defaults.Seed
		case "rounds":
			c.Rounds = defaults.Rounds
		case "ops":
			c.Ops = defaults.Ops
		case "offheap":
			c.OffHeap = defaults.OffHeap
		}
	})
	return nil
}

func run(logger *zap.Logger, c *Config) error {
	logger.Info("starting",
		zap.Int("rounds", c.Rounds),
		zap.Int("ops", c.Ops),
		zap.Bool("offheap", c.OffHeap),
		zap.Int("vector_capacity", model.VectorCap),
		zap.Int("string_capacity", model.StringCap),
		zap.Int("string_length_bits", lentype.Bits(model.StringCap)),
	)

	str := new(model.String)

	if c.OffHeap {
		mem, err := makeMem(int(unsafe.Sizeof(*str)))
		if err != nil {
			return err
		}
		defer freeMem(mem)

		str = (*model.String)(unsafe.Pointer(&mem[0]))
	}

	r := rand.New(rand.NewPCG(c.Seed, 0))
	data := make([]byte, c.Ops)
	start := time.Now()

	var vectorOps, stringOps int

	for round := range c.Rounds {
		for i := range data {
			data[i] = byte(r.Uint32())
		}

		n, err := model.RunVector(data)
		vectorOps += n
		if err != nil {
			return xerrors.Errorf("vector round %d: %w", round, err)
		}

		*str = model.String{}
		n, err = model.RunStringAt(str, data)
		stringOps += n
		if err != nil {
			return xerrors.Errorf("string round %d: %w", round, err)
		}

		if ce := logger.Check(zap.DebugLevel, "round"); ce != nil {
			ce.Write(zap.Int("round", round), zap.Int("vector_ops", vectorOps), zap.Int("string_ops", stringOps))
		}
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	logger.Info("done",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("vector_ops", vectorOps),
		zap.Int("string_ops", stringOps),
		zap.Uint64("total_alloc", ms.TotalAlloc),
		zap.Int64("max_rss_kb", maxRSS()),
	)
	return nil
}
