package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gramclass/gramclass/driver"
	"github.com/gramclass/gramclass/grammar"
	"github.com/gramclass/gramclass/spec"
)

func init() {
	cmd := &cobra.Command{
		Use:   "parse <grammar file path> [input string]",
		Short: "Parse input strings with the technique(s) the grammar admits",
		Long: `parse checks input strings against a grammar. With an input string argument it
prints a single yes/no verdict and exits. Without one it enters an interactive
session: pick the LL(1) or the SLR(1) parser, then enter one input string per
line; a blank line returns to the parser menu.`,
		Example: `  gramclass parse grammar.txt aabb
  gramclass parse grammar.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	cg, class, err := grammar.Compile(g)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		var accepted bool
		switch {
		case class.Class.IsLL1():
			accepted, err = parseOnce(cg, true, args[1])
		case class.Class.IsSLR1():
			accepted, err = parseOnce(cg, false, args[1])
		default:
			return fmt.Errorf("the grammar supports neither LL(1) nor SLR(1)")
		}
		if err != nil {
			return err
		}
		if accepted {
			fmt.Println("yes")
		} else {
			fmt.Println("no")
		}
		return nil
	}

	return interact(cg, class.Class)
}

func interact(cg *spec.CompiledGrammar, class grammar.Class) error {
	switch class {
	case grammar.ClassLL1Only:
		pterm.Info.Println("Grammar is LL(1) (SLR(1) not available).")
	case grammar.ClassSLR1Only:
		pterm.Info.Println("Grammar is SLR(1) (LL(1) not available).")
	case grammar.ClassNeither:
		pterm.Info.Println("Grammar is neither LL(1) nor SLR(1).")
	}

	repl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer repl.Close()

	for {
		pterm.Println("Select a parser (T: for LL(1), B: for SLR(1), Q: quit):")
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			return nil
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "Q":
			return nil
		case "T":
			if !class.IsLL1() {
				pterm.Error.Println("The LL(1) parser is not available.")
				continue
			}
			parseStrings(repl, cg, true)
		case "B":
			if !class.IsSLR1() {
				pterm.Error.Println("The SLR(1) parser is not available.")
				continue
			}
			parseStrings(repl, cg, false)
		case "":
			continue
		default:
			pterm.Error.Println("Invalid option. Use T, B, or Q.")
		}
	}
}

// parseStrings reads input strings until a blank line and prints a
// yes/no verdict for each.
func parseStrings(repl *readline.Instance, cg *spec.CompiledGrammar, ll1 bool) {
	for {
		line, err := repl.Readline()
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		accepted, err := parseOnce(cg, ll1, line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if accepted {
			pterm.Println("yes")
		} else {
			pterm.Println("no")
		}
	}
}

func parseOnce(cg *spec.CompiledGrammar, ll1 bool, input string) (bool, error) {
	if ll1 {
		p, err := driver.NewPredictiveParser(cg, strings.NewReader(input))
		if err != nil {
			return false, err
		}
		if err := p.Parse(); err != nil {
			return false, err
		}
		return p.Accepted(), nil
	}

	p, err := driver.NewShiftReduceParser(cg, strings.NewReader(input))
	if err != nil {
		return false, err
	}
	if err := p.Parse(); err != nil {
		return false, err
	}
	return p.Accepted(), nil
}
