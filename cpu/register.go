package cpu

import (
	"errors"
	"regexp"
)

// Register identifies one slot of the fixed register file.
//
// Width aliases (RAX, EAX, AX, AL) are independent slots; writing one
// never changes another. R0..R7 are likewise distinct from RAX..RSP.
type Register int

// RegisterFamily groups registers by architectural role.
type RegisterFamily int

const (
	FAMILY_GPR64 = RegisterFamily(iota) // 64-bit general purpose
	FAMILY_GPR32                        // 32-bit general purpose
	FAMILY_GPR16                        // 16-bit general purpose
	FAMILY_GPR8L                        // 8-bit low byte
	FAMILY_GPR8H                        // 8-bit high byte
	FAMILY_SEGMENT                      // segment
	FAMILY_IP                           // instruction pointer
	FAMILY_FLAGS                        // flags
	FAMILY_CONTROL                      // control
	FAMILY_DEBUG                        // debug
	FAMILY_FPU                          // x87 stack
	FAMILY_FPU_CONTROL                  // x87 control
	FAMILY_MMX                          // MMX
	FAMILY_XMM                          // SSE
	FAMILY_YMM                          // AVX
	FAMILY_ZMM                          // AVX-512
	FAMILY_MSR                          // model specific
)

const (
	// 64-bit general purpose.
	REG_RAX = Register(iota)
	REG_RBX
	REG_RCX
	REG_RDX
	REG_RSI
	REG_RDI
	REG_RBP
	REG_RSP
	REG_R0
	REG_R1
	REG_R2
	REG_R3
	REG_R4
	REG_R5
	REG_R6
	REG_R7
	REG_R8
	REG_R9
	REG_R10
	REG_R11
	REG_R12
	REG_R13
	REG_R14
	REG_R15
	// 32-bit general purpose.
	REG_EAX
	REG_EBX
	REG_ECX
	REG_EDX
	REG_ESI
	REG_EDI
	REG_EBP
	REG_ESP
	REG_R0D
	REG_R1D
	REG_R2D
	REG_R3D
	REG_R4D
	REG_R5D
	REG_R6D
	REG_R7D
	REG_R8D
	REG_R9D
	REG_R10D
	REG_R11D
	REG_R12D
	REG_R13D
	REG_R14D
	REG_R15D
	// 16-bit general purpose.
	REG_AX
	REG_BX
	REG_CX
	REG_DX
	REG_SI
	REG_DI
	REG_BP
	REG_SP
	REG_R0W
	REG_R1W
	REG_R2W
	REG_R3W
	REG_R4W
	REG_R5W
	REG_R6W
	REG_R7W
	REG_R8W
	REG_R9W
	REG_R10W
	REG_R11W
	REG_R12W
	REG_R13W
	REG_R14W
	REG_R15W
	// 8-bit low byte.
	REG_AL
	REG_BL
	REG_CL
	REG_DL
	REG_SIL
	REG_DIL
	REG_BPL
	REG_SPL
	REG_R0B
	REG_R1B
	REG_R2B
	REG_R3B
	REG_R4B
	REG_R5B
	REG_R6B
	REG_R7B
	REG_R8B
	REG_R9B
	REG_R10B
	REG_R11B
	REG_R12B
	REG_R13B
	REG_R14B
	REG_R15B
	// 8-bit high byte.
	REG_AH
	REG_BH
	REG_CH
	REG_DH
	// Segment.
	REG_CS
	REG_DS
	REG_SS
	REG_ES
	REG_FS
	REG_GS
	// Instruction pointer.
	REG_RIP
	// Flags.
	REG_RFLAGS
	// Control.
	REG_CR0
	REG_CR2
	REG_CR3
	REG_CR4
	REG_CR8
	// Debug.
	REG_DR0
	REG_DR1
	REG_DR2
	REG_DR3
	REG_DR6
	REG_DR7
	// X87 stack.
	REG_ST0
	REG_ST1
	REG_ST2
	REG_ST3
	REG_ST4
	REG_ST5
	REG_ST6
	REG_ST7
	// X87 control.
	REG_FPU_CONTROL
	REG_FPU_STATUS
	REG_FPU_TAG
	// MMX.
	REG_MM0
	REG_MM1
	REG_MM2
	REG_MM3
	REG_MM4
	REG_MM5
	REG_MM6
	REG_MM7
	// SSE.
	REG_XMM0
	REG_XMM1
	REG_XMM2
	REG_XMM3
	REG_XMM4
	REG_XMM5
	REG_XMM6
	REG_XMM7
	REG_XMM8
	REG_XMM9
	REG_XMM10
	REG_XMM11
	REG_XMM12
	REG_XMM13
	REG_XMM14
	REG_XMM15
	// AVX.
	REG_YMM0
	REG_YMM1
	REG_YMM2
	REG_YMM3
	REG_YMM4
	REG_YMM5
	REG_YMM6
	REG_YMM7
	REG_YMM8
	REG_YMM9
	REG_YMM10
	REG_YMM11
	REG_YMM12
	REG_YMM13
	REG_YMM14
	REG_YMM15
	// AVX-512.
	REG_ZMM0
	REG_ZMM1
	REG_ZMM2
	REG_ZMM3
	REG_ZMM4
	REG_ZMM5
	REG_ZMM6
	REG_ZMM7
	REG_ZMM8
	REG_ZMM9
	REG_ZMM10
	REG_ZMM11
	REG_ZMM12
	REG_ZMM13
	REG_ZMM14
	REG_ZMM15
	// Model specific.
	REG_MSR

	REGISTER_COUNT = int(iota) // Number of registers in the file.
)

// registerNames is indexed by Register.
var registerNames = [REGISTER_COUNT]string{
	REG_RAX:         "RAX",
	REG_RBX:         "RBX",
	REG_RCX:         "RCX",
	REG_RDX:         "RDX",
	REG_RSI:         "RSI",
	REG_RDI:         "RDI",
	REG_RBP:         "RBP",
	REG_RSP:         "RSP",
	REG_R0:          "R0",
	REG_R1:          "R1",
	REG_R2:          "R2",
	REG_R3:          "R3",
	REG_R4:          "R4",
	REG_R5:          "R5",
	REG_R6:          "R6",
	REG_R7:          "R7",
	REG_R8:          "R8",
	REG_R9:          "R9",
	REG_R10:         "R10",
	REG_R11:         "R11",
	REG_R12:         "R12",
	REG_R13:         "R13",
	REG_R14:         "R14",
	REG_R15:         "R15",
	REG_EAX:         "EAX",
	REG_EBX:         "EBX",
	REG_ECX:         "ECX",
	REG_EDX:         "EDX",
	REG_ESI:         "ESI",
	REG_EDI:         "EDI",
	REG_EBP:         "EBP",
	REG_ESP:         "ESP",
	REG_R0D:         "R0D",
	REG_R1D:         "R1D",
	REG_R2D:         "R2D",
	REG_R3D:         "R3D",
	REG_R4D:         "R4D",
	REG_R5D:         "R5D",
	REG_R6D:         "R6D",
	REG_R7D:         "R7D",
	REG_R8D:         "R8D",
	REG_R9D:         "R9D",
	REG_R10D:        "R10D",
	REG_R11D:        "R11D",
	REG_R12D:        "R12D",
	REG_R13D:        "R13D",
	REG_R14D:        "R14D",
	REG_R15D:        "R15D",
	REG_AX:          "AX",
	REG_BX:          "BX",
	REG_CX:          "CX",
	REG_DX:          "DX",
	REG_SI:          "SI",
	REG_DI:          "DI",
	REG_BP:          "BP",
	REG_SP:          "SP",
	REG_R0W:         "R0W",
	REG_R1W:         "R1W",
	REG_R2W:         "R2W",
	REG_R3W:         "R3W",
	REG_R4W:         "R4W",
	REG_R5W:         "R5W",
	REG_R6W:         "R6W",
	REG_R7W:         "R7W",
	REG_R8W:         "R8W",
	REG_R9W:         "R9W",
	REG_R10W:        "R10W",
	REG_R11W:        "R11W",
	REG_R12W:        "R12W",
	REG_R13W:        "R13W",
	REG_R14W:        "R14W",
	REG_R15W:        "R15W",
	REG_AL:          "AL",
	REG_BL:          "BL",
	REG_CL:          "CL",
	REG_DL:          "DL",
	REG_SIL:         "SIL",
	REG_DIL:         "DIL",
	REG_BPL:         "BPL",
	REG_SPL:         "SPL",
	REG_R0B:         "R0B",
	REG_R1B:         "R1B",
	REG_R2B:         "R2B",
	REG_R3B:         "R3B",
	REG_R4B:         "R4B",
	REG_R5B:         "R5B",
	REG_R6B:         "R6B",
	REG_R7B:         "R7B",
	REG_R8B:         "R8B",
	REG_R9B:         "R9B",
	REG_R10B:        "R10B",
	REG_R11B:        "R11B",
	REG_R12B:        "R12B",
	REG_R13B:        "R13B",
	REG_R14B:        "R14B",
	REG_R15B:        "R15B",
	REG_AH:          "AH",
	REG_BH:          "BH",
	REG_CH:          "CH",
	REG_DH:          "DH",
	REG_CS:          "CS",
	REG_DS:          "DS",
	REG_SS:          "SS",
	REG_ES:          "ES",
	REG_FS:          "FS",
	REG_GS:          "GS",
	REG_RIP:         "RIP",
	REG_RFLAGS:      "RFLAGS",
	REG_CR0:         "CR0",
	REG_CR2:         "CR2",
	REG_CR3:         "CR3",
	REG_CR4:         "CR4",
	REG_CR8:         "CR8",
	REG_DR0:         "DR0",
	REG_DR1:         "DR1",
	REG_DR2:         "DR2",
	REG_DR3:         "DR3",
	REG_DR6:         "DR6",
	REG_DR7:         "DR7",
	REG_ST0:         "ST0",
	REG_ST1:         "ST1",
	REG_ST2:         "ST2",
	REG_ST3:         "ST3",
	REG_ST4:         "ST4",
	REG_ST5:         "ST5",
	REG_ST6:         "ST6",
	REG_ST7:         "ST7",
	REG_FPU_CONTROL: "FPU_CONTROL",
	REG_FPU_STATUS:  "FPU_STATUS",
	REG_FPU_TAG:     "FPU_TAG",
	REG_MM0:         "MM0",
	REG_MM1:         "MM1",
	REG_MM2:         "MM2",
	REG_MM3:         "MM3",
	REG_MM4:         "MM4",
	REG_MM5:         "MM5",
	REG_MM6:         "MM6",
	REG_MM7:         "MM7",
	REG_XMM0:        "XMM0",
	REG_XMM1:        "XMM1",
	REG_XMM2:        "XMM2",
	REG_XMM3:        "XMM3",
	REG_XMM4:        "XMM4",
	REG_XMM5:        "XMM5",
	REG_XMM6:        "XMM6",
	REG_XMM7:        "XMM7",
	REG_XMM8:        "XMM8",
	REG_XMM9:        "XMM9",
	REG_XMM10:       "XMM10",
	REG_XMM11:       "XMM11",
	REG_XMM12:       "XMM12",
	REG_XMM13:       "XMM13",
	REG_XMM14:       "XMM14",
	REG_XMM15:       "XMM15",
	REG_YMM0:        "YMM0",
	REG_YMM1:        "YMM1",
	REG_YMM2:        "YMM2",
	REG_YMM3:        "YMM3",
	REG_YMM4:        "YMM4",
	REG_YMM5:        "YMM5",
	REG_YMM6:        "YMM6",
	REG_YMM7:        "YMM7",
	REG_YMM8:        "YMM8",
	REG_YMM9:        "YMM9",
	REG_YMM10:       "YMM10",
	REG_YMM11:       "YMM11",
	REG_YMM12:       "YMM12",
	REG_YMM13:       "YMM13",
	REG_YMM14:       "YMM14",
	REG_YMM15:       "YMM15",
	REG_ZMM0:        "ZMM0",
	REG_ZMM1:        "ZMM1",
	REG_ZMM2:        "ZMM2",
	REG_ZMM3:        "ZMM3",
	REG_ZMM4:        "ZMM4",
	REG_ZMM5:        "ZMM5",
	REG_ZMM6:        "ZMM6",
	REG_ZMM7:        "ZMM7",
	REG_ZMM8:        "ZMM8",
	REG_ZMM9:        "ZMM9",
	REG_ZMM10:       "ZMM10",
	REG_ZMM11:       "ZMM11",
	REG_ZMM12:       "ZMM12",
	REG_ZMM13:       "ZMM13",
	REG_ZMM14:       "ZMM14",
	REG_ZMM15:       "ZMM15",
	REG_MSR:         "MSR",
}

// familyFirst holds the first register of each family, in family order.
var familyFirst = []Register{
	FAMILY_GPR64:       REG_RAX,
	FAMILY_GPR32:       REG_EAX,
	FAMILY_GPR16:       REG_AX,
	FAMILY_GPR8L:       REG_AL,
	FAMILY_GPR8H:       REG_AH,
	FAMILY_SEGMENT:     REG_CS,
	FAMILY_IP:          REG_RIP,
	FAMILY_FLAGS:       REG_RFLAGS,
	FAMILY_CONTROL:     REG_CR0,
	FAMILY_DEBUG:       REG_DR0,
	FAMILY_FPU:         REG_ST0,
	FAMILY_FPU_CONTROL: REG_FPU_CONTROL,
	FAMILY_MMX:         REG_MM0,
	FAMILY_XMM:         REG_XMM0,
	FAMILY_YMM:         REG_YMM0,
	FAMILY_ZMM:         REG_ZMM0,
	FAMILY_MSR:         REG_MSR,
}

var registerIndex = func() map[string]Register {
	index := make(map[string]Register, REGISTER_COUNT)
	for reg, name := range registerNames {
		index[name] = Register(reg)
	}
	return index
}()

// registerSyntax matches tokens shaped like a register name.
var registerSyntax = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// IsRegisterName reports whether word is shaped like a register name.
// It does not check membership in the register file.
func IsRegisterName(word string) bool {
	return registerSyntax.MatchString(word)
}

// ParseRegister looks up a register by name.
func ParseRegister(name string) (reg Register, err error) {
	reg, ok := registerIndex[name]
	if !ok {
		err = errors.Join(ErrUnknownRegister, ErrToken(name))
		return
	}

	return
}

// Valid returns true if reg is a member of the register file.
func (reg Register) Valid() bool {
	return reg >= 0 && int(reg) < REGISTER_COUNT
}

// String returns the register name.
func (reg Register) String() string {
	if !reg.Valid() {
		return f("Register(%d)", int(reg))
	}
	return registerNames[reg]
}

// Family returns the architectural family of the register.
func (reg Register) Family() (family RegisterFamily) {
	for n, first := range familyFirst {
		if reg < first {
			break
		}
		family = RegisterFamily(n)
	}
	return
}
