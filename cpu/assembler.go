// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":       "0",
	"PRG_START":    fmt.Sprintf("%#x", PRG_START),
	"RESET_VECTOR": fmt.Sprintf("%#x", RESET_VECTOR),
}

// Assembler is a single pass assembler for the cataloged 6502
// instruction set.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Line    []Line // List of generated lines.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to load-origin offsets.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	equ, ok := asm.Equate[word]
	if ok {
		word = equ
	}

	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}
	if word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(strings.Trim(word, "'"))
		return
	}
	if word[0] == '$' {
		word = "0x" + word[1:]
	}
	if word[0] == '%' {
		word = "0b" + word[1:]
	}

	v64, err := strconv.ParseInt(word, 0, 17)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if v64 < 0 {
		v64 = 0x10000 + v64
	}
	value = uint16(v64)

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value16 uint16
		value16, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be labels
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value16))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

// parseLine parses a single line into words, handling equates, labels,
// character quotes, and $() evaluations.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^)]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		if len(word) == 0 {
			continue
		}

		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// currentAddr gets the current load-origin offset.
func (asm *Assembler) currentAddr() int {
	if len(asm.Line) == 0 {
		return 0
	}

	last := asm.Line[len(asm.Line)-1]

	return last.Addr + len(last.Bytes)
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Line = asm.Line[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		line = strings.ReplaceAll(line, "\t", " ")

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	// Final linking of label operands.
	for n := range asm.Line {
		ln := &asm.Line[n]

		if len(ln.LinkLabel) == 0 {
			continue
		}
		label := ln.LinkLabel
		offset, ok := asm.Label[label]
		if !ok {
			err = ErrLabelMissing(label)
			lineno = ln.LineNo
			line = strings.Join(ln.Words, " ")
			return
		}
		if len(ln.Bytes) < 3 {
			log.Fatalf("Unable to link label '%s' to line %d: %v", label, ln.LineNo, ln.Words)
		}
		addr := PRG_START + uint16(offset)
		ln.Bytes[len(ln.Bytes)-2] = uint8(addr & 0xFF)
		ln.Bytes[len(ln.Bytes)-1] = uint8(addr >> 8)
	}

	prog = &Program{
		Lines: slices.Clone(asm.Line),
	}

	return
}

// labelRe matches words usable as label operands.
var labelRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var bytes []byte
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words

	defer func() {
		if len(bytes) == 0 {
			return
		}
		line := Line{LineNo: lineno, Addr: asm.currentAddr(), Words: initial_words, Bytes: bytes, LinkLabel: label}
		asm.Line = append(asm.Line, line)
	}()

	switch words[0] {
	case ".byte":
		if len(words) < 2 {
			err = ErrOperandMissing
			return
		}
		for _, word := range words[1:] {
			var value uint16
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			if value > 0xFF {
				err = ErrOperandRange
				return
			}
			bytes = append(bytes, uint8(value))
		}
	case ".word":
		if len(words) < 2 {
			err = ErrOperandMissing
			return
		}
		for _, word := range words[1:] {
			var value uint16
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			bytes = append(bytes, uint8(value&0xFF), uint8(value>>8))
		}
	default:
		instruction := strings.ToUpper(words[0])
		variants, ok := opcodeByName[instruction]
		if !ok {
			err = ErrInstructionInvalid
			return
		}
		bytes, label, err = asm.encode(variants, words[1:])
	}

	return
}

// encode assembles one instruction from its operand words, selecting
// the addressing mode from the operand syntax and the encodings the
// catalog offers for the mnemonic.
func (asm *Assembler) encode(variants map[AddressingMode]*Opcode, args []string) (bytes []byte, label string, err error) {
	if len(args) > 1 {
		err = ErrOperandExtra
		return
	}

	if len(args) == 0 {
		op, ok := variants[MODE_NONE]
		if !ok {
			err = ErrOperandMissing
			return
		}
		bytes = []byte{op.Code}
		return
	}

	arg := args[0]
	lower := strings.ToLower(arg)

	var mode AddressingMode
	var value uint16
	var width int

	switch {
	case lower == "a":
		mode = MODE_ACCUMULATOR

	case arg[0] == '#':
		value, err = asm.valueOf(arg[1:])
		if err != nil {
			return
		}
		if value > 0xFF {
			err = ErrOperandRange
			return
		}
		mode = MODE_IMMEDIATE
		width = 1

	case arg[0] == '(' && strings.HasSuffix(lower, ",x)"):
		value, err = asm.valueOf(arg[1 : len(arg)-3])
		if err != nil {
			return
		}
		if value > 0xFF {
			err = ErrOperandRange
			return
		}
		mode = MODE_INDIRECT_X
		width = 1

	case arg[0] == '(' && strings.HasSuffix(lower, "),y"):
		value, err = asm.valueOf(arg[1 : len(arg)-3])
		if err != nil {
			return
		}
		if value > 0xFF {
			err = ErrOperandRange
			return
		}
		mode = MODE_INDIRECT_Y
		width = 1

	case arg[0] == '(' && strings.HasSuffix(arg, ")"):
		value, err = asm.valueOf(arg[1 : len(arg)-1])
		if err != nil {
			return
		}
		mode = MODE_INDIRECT
		width = 2

	case strings.HasSuffix(lower, ",x"):
		value, err = asm.valueOf(arg[:len(arg)-2])
		if err != nil {
			return
		}
		mode, width = asm.zeroPageOrAbsolute(variants, value, MODE_ZEROPAGE_X, MODE_ABSOLUTE_X)

	case strings.HasSuffix(lower, ",y"):
		value, err = asm.valueOf(arg[:len(arg)-2])
		if err != nil {
			return
		}
		mode, width = asm.zeroPageOrAbsolute(variants, value, MODE_ZEROPAGE_Y, MODE_ABSOLUTE_Y)

	default:
		var verr error
		value, verr = asm.valueOf(arg)
		if verr != nil {
			// Unresolved word: treat as a label operand, patched
			// in the final linking pass.
			if !labelRe.MatchString(arg) {
				err = verr
				return
			}
			op, ok := variants[MODE_ABSOLUTE]
			if !ok {
				err = ErrModeUnavailable
				return
			}
			bytes = []byte{op.Code, 0, 0}
			label = arg
			return
		}
		mode, width = asm.zeroPageOrAbsolute(variants, value, MODE_ZEROPAGE, MODE_ABSOLUTE)
	}

	op, ok := variants[mode]
	if !ok {
		err = ErrModeUnavailable
		return
	}

	bytes = append(bytes, op.Code)
	switch width {
	case 1:
		bytes = append(bytes, uint8(value))
	case 2:
		bytes = append(bytes, uint8(value&0xFF), uint8(value>>8))
	}

	return
}

// zeroPageOrAbsolute picks the zero-page encoding when the operand fits
// in one byte and the catalog offers it.
func (asm *Assembler) zeroPageOrAbsolute(variants map[AddressingMode]*Opcode, value uint16, zp, abs AddressingMode) (mode AddressingMode, width int) {
	if value <= 0xFF && variants[zp] != nil {
		return zp, 1
	}

	return abs, 2
}
