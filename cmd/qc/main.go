package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/holiman/uint256"
	"gopkg.in/errgo.v1"

	"github.com/rogpeppe/qc/fbase"
	"github.com/rogpeppe/qc/int128"
	"github.com/rogpeppe/qc/lex"
	"github.com/rogpeppe/qc/rpn"
)

// maxLine bounds the length of a line read with --stdin.
const maxLine = 1024 * 1024

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "qc: %v\n", err)
		}
		os.Exit(2)
	}
}

type params struct {
	verbose bool
	float   bool
	word    bool
	stdin   bool
	acme    bool
	hex     bool
	debug   bool
	words   bool

	stdout io.Writer
	logger *log.Logger
}

// splitArgs separates flags, which start with --,
// from the words of the program.
func splitArgs(args []string) (flags, words []string) {
	for _, arg := range args {
		if strings.HasPrefix(arg, "--") {
			flags = append(flags, arg)
		} else {
			words = append(words, arg)
		}
	}
	return flags, words
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flagArgs, program := splitArgs(args)
	p := &params{
		stdout: stdout,
		logger: log.New(stderr, "qc: ", 0),
	}
	fs := flag.NewFlagSet("qc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&p.verbose, "verbose", false, "print the stack after each word")
	fs.BoolVar(&p.float, "float", false, "calculate with 64-bit floating point numbers")
	fs.BoolVar(&p.word, "word", false, "calculate with unsigned 256-bit words")
	fs.BoolVar(&p.stdin, "stdin", false, "read more words from standard input")
	fs.BoolVar(&p.acme, "acme", false, "read more words from the current acme selection")
	fs.BoolVar(&p.hex, "hex", false, "print floating point values in hexadecimal too")
	fs.BoolVar(&p.debug, "debug", false, "dump the stack after each word to standard error")
	fs.BoolVar(&p.words, "words", false, "list the operator words and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: qc [--flag...] word...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(flagArgs); err != nil {
		return err
	}
	if p.float && p.word {
		return errgo.New("--float and --word are mutually exclusive")
	}
	if p.hex && !p.float {
		return errgo.New("--hex requires --float")
	}
	if p.stdin {
		toks, err := lex.Read(stdin, maxLine)
		if err != nil {
			return errgo.Notef(err, "cannot read standard input")
		}
		program = append(program, toks...)
	}
	if p.acme {
		text, err := acmeSelection()
		if err != nil {
			return errgo.Mask(err)
		}
		program = append(program, lex.Fields(text)...)
	}
	switch {
	case p.float && p.hex:
		return evaluate[float64](hexFloat{}, program, p)
	case p.float:
		return evaluate[float64](rpn.Float{}, program, p)
	case p.word:
		return evaluate[uint256.Int](rpn.Word{}, program, p)
	}
	return evaluate[int128.Int](rpn.Int{}, program, p)
}

func evaluate[T any](d rpn.Domain[T], program []string, p *params) error {
	e := rpn.New(d)
	if p.words {
		for _, w := range e.Words() {
			fmt.Fprintf(p.stdout, "%s[%d]\n", w.Name, w.NumIn)
		}
		return nil
	}
	e.Out = p.stdout
	e.Trace = func(tok string, stack []T) {
		if p.verbose {
			fmt.Fprintf(p.stdout, "Stack:\t\t[%s]\n", stackString(d, stack))
		}
		if p.debug {
			p.logger.Printf("after %q: %s", tok, spew.Sdump(stack))
		}
	}
	if _, err := e.Evaluate(program); err != nil {
		if p.debug {
			p.logger.Printf("error details: %s", errgo.Details(err))
		}
		return errgo.Mask(err, errgo.Any)
	}
	return nil
}

func stackString[T any](d rpn.Domain[T], stack []T) string {
	words := make([]string, len(stack))
	for i, x := range stack {
		words[i] = d.String(x)
	}
	return strings.Join(words, ", ")
}

// hexFloat is the float domain with printed values
// shown in hexadecimal as well as decimal.
type hexFloat struct {
	rpn.Float
}

func (f hexFloat) Format(x float64) string {
	return fmt.Sprintf("dec: %s\t\thex: %s", f.String(x), fbase.Dec2Hex(x))
}
