// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/emulator"
)

func main() {
	var compile string
	var binary string
	var limit int
	var dump bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&binary, "b", "", "raw program bytes to run")
	flag.IntVar(&limit, "n", emulator.STEP_LIMIT, "step budget (0 for unlimited)")
	flag.BoolVar(&dump, "d", false, "Dump CPU state after the run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.StepLimit = limit

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}

		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case len(binary) != 0:
		data, err := os.ReadFile(binary)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}

		emu.Program = &cpu.Program{
			Lines: []cpu.Line{{LineNo: 1, Bytes: data}},
		}
	default:
		log.Fatalf("%v: nothing to run (need -c or -b)", os.Args[0])
	}

	if err := emu.Run(); err != nil {
		log.Fatal(err)
	}

	if dump {
		fmt.Print(emu.Cpu.String())
	}
}
