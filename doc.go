/*
Package cairo1compile turns Cairo programs into Sierra JSON and packages Sierra
programs with their input for downstream provers and runners.

The heavy lifting (parsing, type checking, lowering) belongs to the external
compiler toolchain. This package resolves what to compile, runs the
toolchain, validates what comes back against the Sierra program schema and
writes JSON documents. It never inspects the program beyond that structural
check.

# Commands

Two independent paths are exposed, both by the cairo1-compile binary and by the Driver:

  - Compile: source file or project directory -> program JSON.
  - Merge: program JSON + arbitrary input JSON -> {"program", "program_input", "layout"}.

# Usage

	package main

	import (
		"context"
		"log"

		cairo1compile "github.com/aretw0/cairo1-compile"
		"github.com/aretw0/cairo1-compile/pkg/domain"
	)

	func main() {
		d := cairo1compile.New()

		program, err := d.Compile(context.Background(), "src/fib.cairo")
		if err != nil {
			log.Fatal(err)
		}
		if _, err := d.Write("fib.sierra.json", program); err != nil {
			log.Fatal(err)
		}

		doc, err := d.Merge("fib.sierra.json", "input.json", domain.DefaultLayout)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := d.Write("", doc); err != nil {
			log.Fatal(err)
		}
	}

The compiler is a port (ports.Compiler). The default runs the toolchain
described by process.DefaultToolchain; use WithCompiler to plug another one,
such as memory.Compiler in tests.
*/
package cairo1compile
