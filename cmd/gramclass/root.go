package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	verr "github.com/gramclass/gramclass/error"
	"github.com/gramclass/gramclass/grammar"
	"github.com/gramclass/gramclass/spec"
)

var rootCmd = &cobra.Command{
	Use:   "gramclass",
	Short: "Classify a context-free grammar and parse strings with it",
	Long: `gramclass analyzes a context-free grammar and determines which deterministic
parsing techniques fit it. It computes the First and Follow sets, builds an
LL(1) predictive table and an SLR(1) shift-reduce automaton, reports every
conflict, and parses candidate input strings with the applicable parser(s).`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func readGrammar(path string) (grm *grammar.Grammar, retErr error) {
	defer func() {
		if retErr == nil {
			return
		}
		switch err := retErr.(type) {
		case *verr.SpecError:
			err.SourceName = path
		case verr.SpecErrors:
			for _, e := range err {
				e.SourceName = path
			}
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the grammar file %s: %w", path, err)
	}
	defer f.Close()

	ast, err := spec.Parse(f)
	if err != nil {
		return nil, err
	}

	b := grammar.GrammarBuilder{
		AST:  ast,
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}
	return b.Build()
}
