// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/ezrec/x64emu/cpu"
	"github.com/ezrec/x64emu/emulator"
	"github.com/ezrec/x64emu/translate"
)

// defineList collects repeated -D NAME=VALUE flags.
type defineList map[string]string

func (dl defineList) String() string {
	var items []string
	for name, value := range dl {
		items = append(items, name+"="+value)
	}
	return strings.Join(items, ",")
}

func (dl defineList) Set(text string) error {
	name, value, ok := strings.Cut(text, "=")
	if !ok || len(name) == 0 {
		return fmt.Errorf("expected NAME=VALUE, not %q", text)
	}
	dl[name] = value
	return nil
}

// interactive reads instructions from the terminal until EOF.
// Failing lines are reported and do not end the session.
func interactive(emu *emulator.Emulator) {
	scanner := bufio.NewScanner(os.Stdin)
	for lineno := 1; ; lineno++ {
		fmt.Fprint(os.Stderr, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(os.Stderr)
			break
		}
		err := emu.Line(scanner.Text(), lineno)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func main() {
	config := cpu.DefaultConfig()
	defines := defineList{}

	var stack string
	var floatMode string
	var keepGoing bool
	var verbose bool
	var dump bool
	var lang string

	flag.Uint64Var(&config.MemorySize, "m", config.MemorySize, "Memory size, in bytes")
	flag.Uint64Var(&config.StackSize, "s", config.StackSize, "Stack reservation at the top of memory, in bytes (0 for all)")
	flag.StringVar(&stack, "stack", config.StackModel.String(), "Stack pointer model (cursor, rsp)")
	flag.StringVar(&floatMode, "float", config.FloatMode.String(), "Float literal conversion (bits, trunc)")
	flag.BoolVar(&keepGoing, "k", false, "Keep going after a failing instruction")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "dump", false, "Dump registers and flags at exit")
	flag.StringVar(&lang, "lang", "", "Message language, as a BCP 47 tag (default: system locale)")
	flag.Var(defines, "D", "Predefine an equate, as NAME=VALUE")

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	err := translate.Language(lang)
	if err != nil {
		log.Fatalf("-lang: %v", err)
	}

	config.StackModel, err = cpu.ParseStackModel(stack)
	if err != nil {
		log.Fatalf("-stack: %v", err)
	}

	config.FloatMode, err = cpu.ParseFloatMode(floatMode)
	if err != nil {
		log.Fatalf("-float: %v", err)
	}

	cp, err := cpu.NewCpu(config)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	emu := emulator.NewEmulator(cp)
	emu.Verbose = verbose
	emu.KeepGoing = keepGoing
	for name, value := range defines {
		emu.Predefine(name, value)
	}

	start := time.Now()

	switch {
	case flag.NArg() == 1:
		err = emu.RunFile(flag.Arg(0))
	case term.IsTerminal(int(os.Stdin.Fd())):
		interactive(emu)
	default:
		err = emu.Run(os.Stdin)
	}

	elapsed := time.Since(start)

	if dump {
		err := cp.Registers.Dump(os.Stdout)
		if err != nil {
			log.Fatalf("dump: %v", err)
		}
		for name, value := range cp.Registers.Flags() {
			translate.Fprintf(os.Stdout, "%v: %v\n", name, value)
		}
	}

	translate.Fprintf(os.Stderr, "Execution finished.\n")
	translate.Fprintf(os.Stderr, "Time elapsed: %v, %v instructions\n", elapsed, cp.Ticks)

	if err != nil {
		log.Fatalf("%v", err)
	}
}
