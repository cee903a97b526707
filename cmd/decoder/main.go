// SPDX-License-Identifier: MIT

// Command decoder trains a feedforward network on the n-bit binary decoder
// task and then answers queries from stdin.
//
// Usage:
//
//	decoder [-bits 4] [-hidden 10] [-activation sigmoid] [-lr 0.1]
//	        [-epochs 20000] [-report 1000] [-seed 0] [-momentum 0]
//	        [-shuffle] [-interactive=true]
//
// In interactive mode every line is a decimal number in [0, 2^bits); the
// program prints its bits, the network's guess and the raw output. "exit"
// or "q" quits. Ctrl-C during training stops after the current epoch.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvnn/nn"
	"github.com/katalvlaran/lvnn/train"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("decoder: %v", err)
	}
}

type config struct {
	bits        int
	hidden      int
	activation  string
	lr          float64
	epochs      int
	report      int
	seed        int64
	momentum    float64
	shuffle     bool
	interactive bool
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("decoder", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&c.bits, "bits", 4, fmt.Sprintf("decoder width in bits (1-%d)", train.MaxBits))
	fs.IntVar(&c.hidden, "hidden", 10, "hidden layer size")
	fs.StringVar(&c.activation, "activation", "sigmoid", "hidden activation: identity, sigmoid or relu")
	fs.Float64Var(&c.lr, "lr", 0.1, "learning rate")
	fs.IntVar(&c.epochs, "epochs", train.DefaultEpochs, "training epochs")
	fs.IntVar(&c.report, "report", train.DefaultReportEvery, "log the loss every n epochs (0: last only)")
	fs.Int64Var(&c.seed, "seed", 0, "weight init seed (0: time based)")
	fs.Float64Var(&c.momentum, "momentum", 0, "momentum coefficient in [0,1); 0 is plain gradient descent")
	fs.BoolVar(&c.shuffle, "shuffle", false, "shuffle samples every epoch")
	fs.BoolVar(&c.interactive, "interactive", true, "query the trained network from stdin")
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	if c.report < 0 {
		return c, fmt.Errorf("-report must be >= 0, got %d", c.report)
	}
	if math.IsNaN(c.momentum) || c.momentum < 0 || c.momentum >= 1 {
		return c, fmt.Errorf("-momentum must be in [0,1), got %v", c.momentum)
	}

	return c, nil
}

func run(args []string, in io.Reader, out io.Writer) error {
	cfg, err := parseFlags(args, out)
	if err != nil {
		return err
	}
	act, err := nn.ParseActivation(cfg.activation)
	if err != nil {
		return err
	}
	samples, err := train.Decoder(cfg.bits)
	if err != nil {
		return err
	}

	logger := log.New(out, "", 0)
	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	netOpts := []nn.Option{nn.WithRand(rng), nn.WithLogger(logger)}
	if cfg.momentum > 0 {
		netOpts = append(netOpts, nn.WithMomentum(cfg.momentum))
	}
	net, err := nn.New(cfg.lr, netOpts...)
	if err != nil {
		return err
	}
	outputs := len(samples)
	for _, l := range []nn.Layer{
		{Nodes: cfg.bits, Activation: nn.Identity},
		{Nodes: cfg.hidden, Activation: act},
		{Nodes: outputs, Activation: nn.Sigmoid},
	} {
		if err = net.AddLayer(l.Nodes, l.Activation); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "Created a {%d, %d, %d} network.\n", cfg.bits, cfg.hidden, outputs)
	fmt.Fprintf(out, "Generated %d input/target pairs.\n", len(samples))

	fitOpts := []train.Option{
		train.WithReportEvery(cfg.report),
		train.WithLogger(logger),
	}
	if cfg.shuffle {
		fitOpts = append(fitOpts, train.WithShuffle(rng))
	}
	if err = fit(net, samples, cfg.epochs, fitOpts, out); err != nil {
		return err
	}

	acc, err := train.Accuracy(net, samples)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Accuracy: %.2f%% (%d/%d)\n\n",
		100*acc, int(math.Round(acc*float64(len(samples)))), len(samples))

	if !cfg.interactive {
		return nil
	}

	return repl(net, samples, cfg.bits, in, out)
}

// fit runs training with Ctrl-C mapped to an early stop. The signal handler
// is released before returning so Ctrl-C kills the REPL as usual.
func fit(net *nn.Network, samples []train.Sample, epochs int, opts []train.Option, out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts = append(opts,
		train.WithEpochs(epochs),
		train.OnEpoch(func(int, float64) bool { return ctx.Err() == nil }),
	)
	fmt.Fprintf(out, "Starting training for %d epochs...\n", epochs)
	if _, err := train.Fit(net, samples, opts...); err != nil {
		return err
	}
	fmt.Fprintln(out, "Training complete.")

	return nil
}

func repl(net *nn.Network, samples []train.Sample, bits int, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "--- Testing Network ---")
	hi := len(samples) - 1
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter a decimal number to test: ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "exit" || line == "q" {
			return nil
		}

		k, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprint(out, "\nError: That's not a valid number.\n\n")
			continue
		}
		if k < 0 || k > hi {
			fmt.Fprintf(out, "\nWRONG! Number must be within 0 - %d!\n\n", hi)
			continue
		}

		guess, output, err := train.Predict(net, samples[k].Input)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Input: %s (Decimal: %2d)\n", train.FormatBinary(k, bits), k)
		fmt.Fprintf(out, "Guess: %2d\n", guess)
		fmt.Fprintln(out, "Output:")
		fmt.Fprint(out, output.Describe())
	}
}
