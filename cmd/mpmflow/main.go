// Command mpmflow computes the maximum flow of a network file.
//
// Usage:
//
//	mpmflow -file graph.txt -source 0 -sink 4 [-v] [-dump]
//
// The file holds one arc per line as "from to capacity [flow]"; -file -
// reads from stdin. The max-flow value is printed to stdout; -dump also
// prints the final network with flows filled in. -v traces the engine's
// phases, prunings, and edge saturations to stderr.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mpmflow/mpm"
	"github.com/katalvlaran/mpmflow/netio"
)

// traceObserver forwards engine trace points to a zerolog logger.
type traceObserver struct {
	log zerolog.Logger
}

func (t traceObserver) PhaseStart(phase int) {
	t.log.Debug().Int("phase", phase).Msg("phase start")
}

func (t traceObserver) PhaseEnd(phase int) {
	t.log.Debug().Int("phase", phase).Msg("phase end")
}

func (t traceObserver) NodePruned(node string) {
	t.log.Debug().Str("node", node).Msg("node pruned")
}

func (t traceObserver) EdgeSaturated(from, to string) {
	t.log.Debug().Str("from", from).Str("to", to).Msg("edge saturated")
}

func main() {
	var (
		file    string
		source  string
		sink    string
		verbose bool
		dump    bool
	)
	flag.StringVar(&file, "file", "-", "network file; - reads stdin")
	flag.StringVar(&source, "source", "", "source node ID")
	flag.StringVar(&sink, "sink", "", "sink node ID")
	flag.BoolVar(&verbose, "v", false, "trace phases, prunings and saturations")
	flag.BoolVar(&dump, "dump", false, "print the final network to stdout")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	if source == "" || sink == "" {
		logger.Fatal().Msg("both -source and -sink are required")
	}

	var in io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			logger.Fatal().Err(err).Str("file", file).Msg("open network file")
		}
		defer f.Close()
		in = f
	}

	net, err := netio.Read(in)
	if err != nil {
		logger.Fatal().Err(err).Msg("load network")
	}
	logger.Debug().Int("nodes", net.NodeCount()).Int("arcs", net.ArcCount()).Msg("network loaded")

	opts := mpm.DefaultOptions()
	if verbose {
		opts.Observer = traceObserver{log: logger}
	}

	value, err := mpm.MaxFlow(net, source, sink, opts)
	if err != nil {
		logger.Fatal().Err(err).Msg("max flow")
	}

	if dump {
		if err = netio.Write(os.Stdout, net); err != nil {
			logger.Fatal().Err(err).Msg("dump network")
		}
	}
	fmt.Println(value)
}
