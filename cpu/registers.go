package cpu

import (
	"io"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/x64emu/internal"
	"github.com/ezrec/x64emu/translate"
)

// Registers is the register file and condition flags.
//
// The register set is closed: unknown names are errors. The flag set is
// open: any name may be set, and unset flags read as false.
type Registers struct {
	value [REGISTER_COUNT]uint64
	flag  map[string]bool
}

// Registers returns the members of the family, in file order.
func (family RegisterFamily) Registers() iter.Seq[Register] {
	return func(yield func(Register) bool) {
		if family < 0 || int(family) >= len(familyFirst) {
			return
		}
		last := Register(REGISTER_COUNT)
		if int(family)+1 < len(familyFirst) {
			last = familyFirst[family+1]
		}
		for reg := familyFirst[family]; reg < last; reg++ {
			if !yield(reg) {
				return
			}
		}
	}
}

// Read a register.
func (r *Registers) Read(reg Register) uint64 {
	return r.value[reg]
}

// Write a register. No width truncation is applied.
func (r *Registers) Write(reg Register, value uint64) {
	r.value[reg] = value
}

// Get reads a register by name.
func (r *Registers) Get(name string) (value uint64, err error) {
	reg, err := ParseRegister(name)
	if err != nil {
		return
	}

	value = r.Read(reg)
	return
}

// Set writes a register by name.
func (r *Registers) Set(name string, value uint64) (err error) {
	reg, err := ParseRegister(name)
	if err != nil {
		return
	}

	r.Write(reg, value)
	return
}

// SetFlag sets a condition flag.
func (r *Registers) SetFlag(name string, value bool) {
	if r.flag == nil {
		r.flag = make(map[string]bool, 2)
	}
	r.flag[name] = value
}

// Flag reads a condition flag.
func (r *Registers) Flag(name string) bool {
	return r.flag[name]
}

// Flags iterates over the flags that have been set, by name.
func (r *Registers) Flags() iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		for _, name := range slices.Sorted(maps.Keys(r.flag)) {
			if !yield(name, r.flag[name]) {
				return
			}
		}
	}
}

// All iterates over every register and its value, family by family.
func (r *Registers) All() iter.Seq2[Register, uint64] {
	var families []iter.Seq[Register]
	for n := range familyFirst {
		families = append(families, RegisterFamily(n).Registers())
	}

	return internal.IterSeqWith(internal.IterSeqConcat(families...), r.Read)
}

// Reset zeroes all registers and forgets all flags.
func (r *Registers) Reset() {
	clear(r.value[:])
	clear(r.flag)
}

// Dump writes one 'NAME: VALUE' line per register, VALUE in 16 hex digits.
func (r *Registers) Dump(w io.Writer) (err error) {
	for reg, value := range r.All() {
		_, err = translate.Fprintf(w, "%v: %016X\n", reg.String(), value)
		if err != nil {
			return
		}
	}

	return
}
