package tester

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gramclass/gramclass/driver"
	gspec "github.com/gramclass/gramclass/spec"
)

// TestCase is one expectation over one input string. Case files hold one
// case per line:
//
//	accept aabb
//	reject aab
//
// Everything after the keyword, stripped of surrounding whitespace, is
// the input string. Blank lines and lines starting with '#' are skipped.
type TestCase struct {
	Accept bool
	Source string
	Line   int
}

func ParseTestCases(src io.Reader) ([]*TestCase, error) {
	var cases []*TestCase
	scanner := bufio.NewScanner(src)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		keyword, source, _ := strings.Cut(text, " ")
		var accept bool
		switch keyword {
		case "accept":
			accept = true
		case "reject":
			accept = false
		default:
			return nil, fmt.Errorf("line %v: a test case must start with 'accept' or 'reject'; got: %v", line, keyword)
		}
		cases = append(cases, &TestCase{
			Accept: accept,
			Source: strings.TrimSpace(source),
			Line:   line,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

type TestCaseWithMetadata struct {
	Cases    []*TestCase
	FilePath string
	Error    error
}

func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		cs, err := parseTestCaseFile(testPath)
		return []*TestCaseWithMetadata{
			{
				Cases:    cs,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestCaseFile(testCasePath string) ([]*TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTestCases(f)
}

type TestResult struct {
	TestCasePath string
	Line         int
	Source       string
	Error        error
}

func (r *TestResult) String() string {
	loc := r.TestCasePath
	if r.Line > 0 {
		loc = fmt.Sprintf("%v:%v", r.TestCasePath, r.Line)
	}
	if r.Error != nil {
		const indent = "    "
		msgLines := strings.Split(r.Error.Error(), "\n")
		return fmt.Sprintf("Failed %v:\n%v%v", loc, indent, strings.Join(msgLines, "\n"+indent))
	}
	return fmt.Sprintf("Passed %v", loc)
}

// Tester checks every case against the parsing techniques the grammar
// admits. When the grammar is suitable for both techniques, both parsers
// run and both must agree with the expectation.
type Tester struct {
	Grammar *gspec.CompiledGrammar
	Cases   []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		if c.Error != nil {
			rs = append(rs, &TestResult{
				TestCasePath: c.FilePath,
				Error:        c.Error,
			})
			continue
		}
		for _, tc := range c.Cases {
			rs = append(rs, runTest(t.Grammar, c.FilePath, tc))
		}
	}
	return rs
}

func runTest(g *gspec.CompiledGrammar, path string, c *TestCase) *TestResult {
	result := &TestResult{
		TestCasePath: path,
		Line:         c.Line,
		Source:       c.Source,
	}

	if !g.LL1Table.IsLL1 && !g.SLR1Table.IsSLR1 {
		result.Error = fmt.Errorf("the grammar supports neither LL(1) nor SLR(1); nothing to test")
		return result
	}

	if g.LL1Table.IsLL1 {
		p, err := driver.NewPredictiveParser(g, strings.NewReader(c.Source))
		if err != nil {
			result.Error = err
			return result
		}
		if err := p.Parse(); err != nil {
			result.Error = err
			return result
		}
		if err := checkVerdict(c, "predictive", p.Accepted(), p.SyntaxError()); err != nil {
			result.Error = err
			return result
		}
	}

	if g.SLR1Table.IsSLR1 {
		p, err := driver.NewShiftReduceParser(g, strings.NewReader(c.Source))
		if err != nil {
			result.Error = err
			return result
		}
		if err := p.Parse(); err != nil {
			result.Error = err
			return result
		}
		if err := checkVerdict(c, "shift-reduce", p.Accepted(), p.SyntaxError()); err != nil {
			result.Error = err
			return result
		}
	}

	return result
}

func checkVerdict(c *TestCase, parser string, accepted bool, synErr *driver.SyntaxError) error {
	if c.Accept && !accepted {
		return fmt.Errorf("expected acceptance, but the %v parser rejected the input at column %v: %v", parser, synErr.Col, synErr.Message)
	}
	if !c.Accept && accepted {
		return fmt.Errorf("expected rejection, but the %v parser accepted the input", parser)
	}
	return nil
}
