// Package main provides the Clamp CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/clamp-ml/clamp/backend/cpu"
	"github.com/clamp-ml/clamp/nn"
	"github.com/clamp-ml/clamp/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Clamp %s\n", version)
	case "ops":
		listOps()
	case "sweep":
		if err := sweep(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "sweep:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("Clamp - hard activation functions for Go %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                       Show version")
	fmt.Println("  ops                           List registered activations")
	fmt.Println("  sweep <name> [lo hi steps]    Print an input/output table")
}

func listOps() {
	for _, name := range nn.Names() {
		def, _ := nn.Lookup(name)
		fmt.Printf("%-12s aliases=%v defaults=%v\n", def.Name, def.Aliases, def.Defaults)
	}
}

// sweep evaluates one activation over a linear range and prints the
// input/output pairs. Defaults: [-2, 2] in 9 steps.
func sweep(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: sweep <name> [lo hi steps]")
	}
	name := args[0]

	lo, hi, steps := -2.0, 2.0, 9
	if len(args) >= 3 {
		var err error
		if lo, err = strconv.ParseFloat(args[1], 32); err != nil {
			return fmt.Errorf("bad lo %q: %w", args[1], err)
		}
		if hi, err = strconv.ParseFloat(args[2], 32); err != nil {
			return fmt.Errorf("bad hi %q: %w", args[2], err)
		}
	}
	if len(args) >= 4 {
		var err error
		if steps, err = strconv.Atoi(args[3]); err != nil {
			return fmt.Errorf("bad steps %q: %w", args[3], err)
		}
	}

	backend := cpu.New()

	act, err := nn.NewActivation[*cpu.Backend](name, nil)
	if err != nil {
		return err
	}

	xs := tensor.Linspace[float32](float32(lo), float32(hi), steps, backend)
	ys := act.Forward(xs)

	fmt.Printf("%s over [%g, %g]:\n", act.Name(), lo, hi)
	for i := range steps {
		fmt.Printf("  %8.4f -> %8.4f\n", xs.Data()[i], ys.Data()[i])
	}
	return nil
}
