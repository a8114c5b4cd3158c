package main

import (
	"bufio"
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/peterstace/rtree/v2"
	"github.com/peterstace/rtree/v2/internal/cli"
	"github.com/peterstace/rtree/v2/internal/records"
	"github.com/peterstace/rtree/v2/internal/workload"
)

type options struct {
	inPath, outPath  string
	nodeMax, leafMax int
	verbose          bool
	dumpTree         bool
	genCommands      int
	genSeed          int64
}

func setupFlags() options {
	var opts options
	flag.StringVar(&opts.inPath, "in", "pin.txt", "file of commands to run")
	flag.StringVar(&opts.outPath, "out", "pout.txt", "file to write search results (or generated commands) to")
	flag.IntVar(&opts.nodeMax, "node-max", rtree.DefaultMaxChildren, "maximum branches per internal node")
	flag.IntVar(&opts.leafMax, "leaf-max", rtree.DefaultMaxChildren, "maximum branches per leaf node")
	flag.BoolVar(&opts.verbose, "v", false, "log structural changes to the tree")
	flag.BoolVar(&opts.dumpTree, "dump", false, "print the tree to stdout after running the commands")
	flag.IntVar(&opts.genCommands, "gen", 0, "write this many random commands to -out instead of running -in")
	flag.Int64Var(&opts.genSeed, "gen-seed", 1, "seed for -gen")
	flag.Parse()
	return opts
}

func main() {
	opts := setupFlags()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
		rtree.Log.SetLevel(logrus.DebugLevel)
	}

	if err := run(opts, logger, os.Stdout); err != nil {
		logger.WithError(err).Fatal("rtree failed")
	}
}

func run(opts options, logger logrus.FieldLogger, stdout io.Writer) error {
	if opts.genCommands > 0 {
		if err := generate(opts.outPath, opts.genCommands, opts.genSeed); err != nil {
			return err
		}
		logger.WithField("path", opts.outPath).Infof("generated %d commands", opts.genCommands)
		return nil
	}

	cfg, err := rtree.NewConfig(opts.nodeMax, opts.leafMax)
	if err != nil {
		return err
	}
	tree, err := rtree.New(cfg)
	if err != nil {
		return err
	}

	fin, err := os.Open(opts.inPath)
	if err != nil {
		return err
	}
	defer fin.Close()
	fout, err := os.Create(opts.outPath)
	if err != nil {
		return err
	}

	driver := cli.NewDriver(tree, records.NewTable(records.DefaultCapacity), logger)
	if err := driver.Run(fin, fout); err != nil {
		fout.Close()
		return err
	}
	if err := fout.Close(); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"records": tree.Len(), "height": tree.Height(),
	}).Info("done")

	if opts.dumpTree {
		w := bufio.NewWriter(stdout)
		if err := (&cli.Visualizer{Tree: tree}).Visualize(w); err != nil {
			return err
		}
		return w.Flush()
	}
	return nil
}

func generate(path string, n int, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := workload.NewGenerator(seed).Generate(f, n); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
