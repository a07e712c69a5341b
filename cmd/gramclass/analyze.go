package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gramclass/gramclass/grammar"
	"github.com/gramclass/gramclass/spec"
)

var analyzeFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "analyze <grammar file path>",
		Short:   "Classify a grammar and show its derived sets, tables, and conflicts",
		Example: `  gramclass analyze grammar.txt -o grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runAnalyze,
	}
	analyzeFlags.output = cmd.Flags().StringP("output", "o", "", "write the compiled grammar as JSON to this path")
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	cg, class, err := grammar.Compile(g)
	if err != nil {
		return err
	}

	renderSets(cg)
	renderClassification(class)

	if *analyzeFlags.output != "" {
		out, err := json.MarshalIndent(cg, "", "    ")
		if err != nil {
			return fmt.Errorf("Cannot marshal a compiled grammar: %w", err)
		}
		err = os.WriteFile(*analyzeFlags.output, out, 0644)
		if err != nil {
			return fmt.Errorf("Cannot write an output file: %w", err)
		}
	}

	return nil
}

func renderSets(cg *spec.CompiledGrammar) {
	ll := pterm.LeveledList{}
	ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "First"})
	for _, nt := range userNonTerminals(cg) {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("%v: %v", nt, strings.Join(cg.Firsts[nt], " ")),
		})
	}
	ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "Follow"})
	for _, nt := range userNonTerminals(cg) {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("%v: %v", nt, strings.Join(cg.Follows[nt], " ")),
		})
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// userNonTerminals returns the non-terminals the grammar declares, in
// symbol-number order. Index 0 of the symbol list is unused and index 1
// holds the augmented start symbol; neither belongs to the user.
func userNonTerminals(cg *spec.CompiledGrammar) []string {
	if len(cg.NonTerminals) <= 2 {
		return nil
	}
	return cg.NonTerminals[2:]
}

func renderClassification(class *grammar.Classification) {
	for _, nt := range class.LeftRecursive {
		pterm.Error.Println(fmt.Sprintf("%v is left recursive", nt))
	}
	for _, nt := range class.NeedsLeftFactoring {
		pterm.Error.Println(fmt.Sprintf("%v needs left factoring", nt))
	}
	for _, c := range class.LL1Conflicts {
		pterm.Error.Println(fmt.Sprintf("LL(1) conflict at (%v, %v): production %v kept, production %v discarded", c.NonTerminal, c.Terminal, c.KeptProduction, c.DiscardedProduction))
	}
	for _, c := range class.SRConflicts {
		pterm.Error.Println(fmt.Sprintf("shift/reduce conflict in state %v on '%v': shift %v vs. reduce by production %v", c.State, c.Terminal, c.NextState, c.Production))
	}
	for _, c := range class.RRConflicts {
		pterm.Error.Println(fmt.Sprintf("reduce/reduce conflict in state %v on '%v': production %v vs. production %v", c.State, c.Terminal, c.Production1, c.Production2))
	}
	pterm.Info.Println(class.Class.String())
}
