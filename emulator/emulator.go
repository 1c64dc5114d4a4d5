// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/x64emu/cpu"
	"github.com/ezrec/x64emu/internal"
)

// Emulator feeds program text, one line at a time, to a Cpu.
type Emulator struct {
	Verbose   bool // If set, enables verbose logging.
	KeepGoing bool // If set, Run continues past failing lines.
	*cpu.Cpu       // Reference to the CPU simulation.

	// Equate maps names to replacement text. Substitution is a single
	// pass: an equate whose value names another equate is not expanded again.
	Equate map[string]string

	predefine map[string]string
}

// NewEmulator creates a new emulator around cp.
func NewEmulator(cp *cpu.Cpu) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cp,
	}

	emu.resetEquates()

	return
}

// Predefine defines an equate that survives Reset.
func (emu *Emulator) Predefine(equ string, value string) {
	if emu.predefine == nil {
		emu.predefine = map[string]string{equ: value}
	} else {
		emu.predefine[equ] = value
	}

	if emu.Equate == nil {
		emu.resetEquates()
	}
	emu.Equate[equ] = value
}

// Defines returns an iterator over all of the predefined equates.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(emu.Cpu.Defines(), maps.All(emu.predefine))
}

func (emu *Emulator) resetEquates() {
	emu.Equate = maps.Collect(emu.Defines())
}

// Reset the CPU state and forget all equates defined by the program.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.resetEquates()
}

// literal converts a numeric equate to its value.
func literal(text string) (value uint64, err error) {
	if hex, ok := strings.CutPrefix(text, "0x"); ok {
		return strconv.ParseUint(hex, 16, 64)
	}
	return strconv.ParseUint(text, 10, 64)
}

// parenEval does $(...) evaluations.
func (emu *Emulator) parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range emu.Equate {
		number, err := literal(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers.
			continue
		}
		pred[key] = starlark.MakeUint64(number)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	if st_int64, ok := st_int.Int64(); ok {
		value = uint64(st_int64)
		return
	}

	value, ok = st_int.Uint64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

var parenSyntax = regexp.MustCompile(`\$\([^\$]*\)`)

// expand performs $(...) evaluation, .equ handling and equate substitution.
// text is empty if there is nothing left to execute.
func (emu *Emulator) expand(line string, lineno int) (text string, err error) {
	if emu.Equate == nil {
		emu.resetEquates()
	}

	emu.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line = parenSyntax.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := emu.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(words) == 0 {
		// Let the CPU report the malformed instruction.
		text = line
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := emu.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		emu.Equate[words[1]] = words[2]
		return
	}

	changed := false
	for n, word := range words {
		equate, ok := emu.Equate[word]
		if ok {
			words[n] = equate
			changed = true
		}
	}

	if !changed {
		text = line
		return
	}

	text = words[0]
	if len(words) > 1 {
		text += " " + strings.Join(words[1:], ", ")
	}

	return
}

// Line executes a single line of program text.
// Blank lines and comments are ignored.
func (emu *Emulator) Line(text string, lineno int) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Line: text, Err: err}
		}
	}()

	line, _, _ := strings.Cut(text, ";")
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %v: %v", lineno, line)
	}

	line, err = emu.expand(line, lineno)
	if err != nil || len(line) == 0 {
		return
	}

	err = emu.Cpu.Execute(line)

	return
}

// Run executes every line read from r.
//
// Without KeepGoing, Run stops at the first failing line. With KeepGoing,
// every failure is collected and returned once the input is exhausted.
func (emu *Emulator) Run(r io.Reader) (err error) {
	var errs []error

	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		err = emu.Line(scanner.Text(), lineno)
		if err != nil {
			if !emu.KeepGoing {
				return
			}
			if emu.Verbose {
				log.Printf("emulator: %v", err)
			}
			errs = append(errs, err)
		}
	}

	errs = append(errs, scanner.Err())

	err = errors.Join(errs...)
	return
}
