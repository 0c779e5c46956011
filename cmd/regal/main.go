package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/regal/guard"
	"github.com/npillmayer/regal/lang"
	"github.com/npillmayer/regal/match"
	"github.com/npillmayer/regal/rexlang"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// the tracers of all regal packages, set from flag -trace
var traceKeys = []string{"regal.cmd", "regal.lang", "regal.match", "regal.guard", "regal.rexlang"}

// main either decides a single pattern/word pair given as arguments, or
// starts an interactive CLI, where users may enter patterns and words and
// explore matches.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	budget := flag.Int("budget", 0, "Step budget for matching (0 = default)")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	setTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := NewIntp(*budget)
	intp.loadInitFile(*initf) // init file name provided by flag
	if flag.NArg() > 0 {
		os.Exit(intp.oneShot(flag.Args()))
	}
	//
	// set up REPL
	repl, err := readline.New("regal> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to regal, enter :help for help")
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object.
type Intp struct {
	repl   *readline.Instance
	env    *rexlang.Environment // user definitions
	budget int                  // step budget, 0 selects the default
}

// NewIntp creates an interpreter with an empty user environment on top of the
// standard environment.
func NewIntp(budget int) *Intp {
	return &Intp{
		env:    rexlang.NewEnvironment("user", rexlang.Standard()),
		budget: budget,
	}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// oneShot decides a pattern and a word given as command line arguments and
// returns the exit code.
func (intp *Intp) oneShot(args []string) int {
	if len(args) > 2 {
		pterm.Error.Println("usage: regal [flags] [PATTERN [WORD]]")
		return 2
	}
	ok, err := intp.match(args)
	if err != nil {
		return 2
	}
	if !ok {
		return 1
	}
	return 0
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			tracer().Debugf("%v", err) // already reported to the user
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// errUsage flags a malformed command.
var errUsage = errors.New("usage")

// Eval executes a single input line, which is either a command or a pattern
// followed by a word. It returns true if the user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	cmd, args := splitCommand(line)
	tracer().Debugf("command %q, args %v", cmd, args)
	var err error
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":help", ":h":
		intp.help()
	case ":match", ":m":
		_, err = intp.match(args)
	case ":all", ":a":
		err = intp.all(args)
	case ":tree", ":t":
		err = intp.tree(args)
	case ":def", ":d":
		err = intp.define(args)
	case ":defs":
		intp.definitions()
	default:
		if strings.HasPrefix(cmd, ":") {
			err = fmt.Errorf("unknown command %s, try :help", cmd)
			pterm.Error.Println(err.Error())
		} else {
			_, err = intp.match(append([]string{cmd}, args...))
		}
	}
	return false, err
}

// splitCommand splits an input line at blanks. Bare input, i.e. a pattern and
// a word, is returned with an empty command.
func splitCommand(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	if !strings.HasPrefix(fields[0], ":") {
		return "", fields
	}
	return fields[0], fields[1:]
}

// compile compiles a pattern in the user environment and reports errors.
func (intp *Intp) compile(pattern string) (*lang.Language[byte], error) {
	l, err := rexlang.Compile(pattern, intp.env)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, err
	}
	return l, nil
}

// patternAndWord extracts a pattern and an optional word from args.
// A missing word denotes the empty word.
func (intp *Intp) patternAndWord(args []string) (*lang.Language[byte], []byte, error) {
	if len(args) == 0 || len(args) > 2 {
		pterm.Error.Println("expecting a pattern and a word")
		return nil, nil, errUsage
	}
	l, err := intp.compile(args[0])
	if err != nil {
		return nil, nil, err
	}
	var word []byte
	if len(args) == 2 {
		word = []byte(args[1])
	}
	return l, word, nil
}

func (intp *Intp) match(args []string) (bool, error) {
	l, word, err := intp.patternAndWord(args)
	if err != nil {
		return false, err
	}
	ok, stats, err := guard.IsMatchWithStats(context.Background(), l, word, guard.Steps(intp.budget))
	if err != nil {
		if errors.Is(err, guard.ErrInconclusive) {
			pterm.Warning.Println(fmt.Sprintf("%s on %q: %v, try a larger -budget", l, word, err))
		} else {
			pterm.Error.Println(err.Error())
		}
		return false, err
	}
	if ok {
		pterm.Success.Println(fmt.Sprintf("%s matches %q (%d steps)", l, word, stats.Steps))
	} else {
		pterm.Info.Println(fmt.Sprintf("%s does not match %q (%d steps)", l, word, stats.Steps))
	}
	return ok, nil
}

func (intp *Intp) all(args []string) error {
	l, word, err := intp.patternAndWord(args)
	if err != nil {
		return err
	}
	set, err := guard.Matches(context.Background(), l, word, guard.Steps(intp.budget))
	if err != nil && !errors.Is(err, guard.ErrInconclusive) {
		pterm.Error.Println(err.Error())
		return err
	}
	if err != nil {
		pterm.Warning.Println(fmt.Sprintf("incomplete: %v", err))
	}
	pterm.Info.Println(fmt.Sprintf("%d remaining suffixes: %s", set.Size(), set))
	if !set.Empty() {
		order := make([]string, 0, set.Size())
		for seq := intp.sequence(l, word); seq.Next(); {
			order = append(order, seq.Suffix().String())
		}
		tracer().Infof("lazy emission order: %s", strings.Join(order, " "))
	}
	return err
}

func (intp *Intp) tree(args []string) error {
	if len(args) != 1 {
		pterm.Error.Println("expecting a pattern")
		return errUsage
	}
	l, err := intp.compile(args[0])
	if err != nil {
		return err
	}
	lang.Dump(l) // only visible in debug mode
	pterm.Println(l.String())
	pterm.DefaultTree.WithRoot(treeOf(l)).Render()
	return nil
}

// sequence creates a lazy match sequence which runs dry after the step budget
// is used up.
func (intp *Intp) sequence(l *lang.Language[byte], word []byte) *match.Seq[byte] {
	limit, steps := intp.budget, 0
	if limit <= 0 {
		limit = guard.Budget()
	}
	return match.Sequence(l, word, match.Monitor(func(lang.Kind, int) bool {
		steps++
		return steps <= limit
	}))
}

// treeOf converts a language tree into a pterm tree for display.
func treeOf(l *lang.Language[byte]) pterm.TreeNode {
	ll := leveledList(l)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	return pterm.NewTreeFromLeveledList(ll)
}

// leveledList lists the nodes of a language tree in pre-order, with their depth
// as level. The empty word is displayed as a leaf.
func leveledList(l *lang.Language[byte]) pterm.LeveledList {
	ll := pterm.LeveledList{}
	lang.Walk(l, func(node *lang.Language[byte], depth int) bool {
		ll = append(ll, pterm.LeveledListItem{
			Level: depth,
			Text:  nodeLabel(node),
		})
		return !node.IsEmptyWord()
	})
	return ll
}

func nodeLabel(l *lang.Language[byte]) string {
	switch {
	case l.Kind() == lang.KindSingleton:
		return fmt.Sprintf("%v %q", l.Kind(), l.Token())
	case l.IsEmptyWord():
		return "EmptyWord"
	}
	return l.Kind().String()
}

func (intp *Intp) define(args []string) error {
	if len(args) != 2 {
		pterm.Error.Println("expecting a name and a pattern")
		return errUsage
	}
	name := args[0]
	l, err := intp.compile(args[1])
	if err != nil {
		return err
	}
	if old, env := intp.env.Resolve(name); env == intp.env && lang.Equal(old, l) {
		pterm.Info.Println(fmt.Sprintf("{%s} unchanged", name))
		return nil
	}
	if old := intp.env.Define(name, l); old != nil {
		pterm.Info.Println(fmt.Sprintf("{%s} redefined as %s", name, l))
	} else {
		pterm.Info.Println(fmt.Sprintf("{%s} = %s", name, l))
	}
	return nil
}

func (intp *Intp) definitions() {
	for _, name := range intp.env.Names() {
		l, env := intp.env.Resolve(name)
		pterm.Println(fmt.Sprintf("%-8s %-10s %s", env.Name, "{"+name+"}", l))
	}
}

func (intp *Intp) help() {
	pterm.Println(`Commands:
  :match P [W]   decide if word W (default empty) matches pattern P
  P [W]          same as :match
  :all P [W]     list all suffixes of W remaining after a prefix matched P
  :tree P        display the language tree of pattern P
  :def NAME P    define {NAME} to be pattern P
  :defs          list all definitions
  :help          this message
  :quit          leave (or <ctrl>D)`)
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
