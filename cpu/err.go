package cpu

import (
	"errors"

	"github.com/ezrec/m6502/translate"
)

var f = translate.From

var (
	// Engine errors
	ErrProgramTooLarge = errors.New(f("program does not fit above the load origin"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOperandMissing     = errors.New(f("operand missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrOperandRange       = errors.New(f("operand out of range"))
	ErrModeUnavailable    = errors.New(f("no encoding for addressing mode"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrOpcodeUnknown reports a fetched byte absent from the opcode
// catalog: a malformed or unsupported program.
type ErrOpcodeUnknown uint8

func (eo ErrOpcodeUnknown) Error() string {
	return f("unrecognized opcode 0x%02x", uint8(eo))
}

func (eo ErrOpcodeUnknown) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeUnknown)
	return
}

// ErrOpcodeNotImplemented reports a cataloged opcode with no dispatch
// arm. Kept distinct from ErrOpcodeUnknown so catalog gaps stay
// visible during incremental bring-up.
type ErrOpcodeNotImplemented struct {
	Op *Opcode
}

func (eo *ErrOpcodeNotImplemented) Error() string {
	return f("opcode %v not implemented", eo.Op)
}

func (eo *ErrOpcodeNotImplemented) Is(err error) (ok bool) {
	_, ok = err.(*ErrOpcodeNotImplemented)
	return
}

// ErrModeInvalid reports an addressing mode that resolves to no memory
// address. Unreachable through a well-formed catalog.
type ErrModeInvalid AddressingMode

func (em ErrModeInvalid) Error() string {
	return f("mode %v has no operand address", AddressingMode(em))
}

func (em ErrModeInvalid) Is(err error) (ok bool) {
	_, ok = err.(ErrModeInvalid)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
