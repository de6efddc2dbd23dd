package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/dsviz/avl"
	"github.com/katalvlaran/dsviz/command"
	"github.com/katalvlaran/dsviz/config"
	"github.com/katalvlaran/dsviz/graph"
	"github.com/katalvlaran/dsviz/hashtable"
	"github.com/katalvlaran/dsviz/linkedlist"
	"github.com/katalvlaran/dsviz/loader"
	"github.com/katalvlaran/dsviz/metrics"
	"github.com/katalvlaran/dsviz/playback"
)

var (
	errUnknownCommand   = errors.New("dsviz: unknown command")
	errUsage            = errors.New("dsviz: bad arguments")
	errUnknownStructure = errors.New("dsviz: unknown structure")
	errCheckFailed      = errors.New("dsviz: check failed")
)

// frame is the simulated frame length used by tick and run.
const frame = 16 * time.Millisecond

// runLimit bounds run so a stuck animation cannot spin forever.
const runLimit = 10 * time.Minute

// Structures lists the engines a session can drive.
var structures = []string{"avl", "list", "hash", "graph"}

type undoable interface {
	CanUndo() bool
	CanRedo() bool
}

type session struct {
	name   string
	engine command.Engine
	keyed  command.Keyed
	graph  *graph.Graph

	cfg *config.Config
	out io.Writer
	log *slog.Logger
	reg *prometheus.Registry

	ok, warn, info func(a ...any) string
	handlers       map[string]func(args []string) error
}

func newSession(name string, cfg *config.Config, out io.Writer, log *slog.Logger, noColor bool) (*session, error) {
	reg := prometheus.NewRegistry()
	opts := append(cfg.EngineOptions(),
		command.WithLogger(log),
		command.WithRecorder(metrics.NewPrometheus(reg)),
	)

	s := &session{name: name, cfg: cfg, out: out, log: log, reg: reg}
	switch name {
	case "avl":
		s.keyed = avl.New(opts...)
	case "list":
		s.keyed = linkedlist.New(opts...)
	case "hash":
		s.keyed = hashtable.New(opts...)
	case "graph":
		s.graph = graph.New(opts...)
		s.engine = s.graph
	default:
		return nil, errors.Wrapf(errUnknownStructure, "%q (want one of %s)", name, strings.Join(structures, ", "))
	}
	if s.keyed != nil {
		s.engine = s.keyed
	}

	green, yellow, cyan := color.New(color.FgGreen), color.New(color.FgYellow), color.New(color.FgCyan)
	if noColor {
		green.DisableColor()
		yellow.DisableColor()
		cyan.DisableColor()
	}
	s.ok, s.warn, s.info = green.SprintFunc(), yellow.SprintFunc(), cyan.SprintFunc()
	s.registerHandlers()

	return s, nil
}

func (s *session) registerHandlers() {
	s.handlers = map[string]func([]string) error{
		"undo":   s.undo,
		"redo":   s.redo,
		"clear":  s.clear,
		"random": s.random,
		"load":   s.load,
		"search": s.search,
		"tick":   s.tick,
		"run":    s.run,
		"show":   s.show,
		"hints":  s.hints,
		"code":   s.code,
		"check":  s.check,
		"stats":  s.stats,
	}
	if s.keyed != nil {
		s.handlers["insert"] = s.insert
		s.handlers["delete"] = s.delete
		return
	}
	s.handlers["edge"] = s.edge
	s.handlers["vertex"] = s.vertex
	s.handlers["remove"] = s.remove
	s.handlers["kruskal"] = s.kruskal
	s.handlers["mst"] = s.mst
}

// Run executes a script line by line. Blank lines and lines starting with
// '#' are skipped. The first failing line stops the script.
func (s *session) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if err := s.Exec(sc.Text()); err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
	}

	return errors.Wrap(sc.Err(), "read script")
}

// Exec runs one command line.
func (s *session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	fields := strings.Fields(line)
	h, ok := s.handlers[fields[0]]
	if !ok {
		return errors.Wrapf(errUnknownCommand, "%q on %s", fields[0], s.name)
	}
	s.log.Debug("exec", "cmd", fields[0], "args", fields[1:])

	return h(fields[1:])
}

func ints(args []string, lo, hi int) ([]int, error) {
	if len(args) < lo || len(args) > hi {
		return nil, errors.Wrapf(errUsage, "want %d to %d integers, got %d", lo, hi, len(args))
	}
	out := make([]int, len(args))
	for i, a := range args {
		v, err := loader.ParseInt(a)
		if err != nil {
			return nil, errors.Mark(err, errUsage)
		}
		out[i] = v
	}

	return out, nil
}

func (s *session) report(op string, res command.Result) {
	if res.Committed {
		fmt.Fprintf(s.out, "%s %s\n", s.ok("ok"), op)
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", s.warn("rejected"), res.Message)
}

func (s *session) insert(args []string) error {
	v, err := ints(args, 1, 1)
	if err != nil {
		return err
	}
	s.report(fmt.Sprintf("insert %d", v[0]), s.keyed.Insert(v[0]))
	return nil
}

func (s *session) delete(args []string) error {
	v, err := ints(args, 1, 1)
	if err != nil {
		return err
	}
	s.report(fmt.Sprintf("delete %d", v[0]), s.keyed.Delete(v[0]))
	return nil
}

func (s *session) edge(args []string) error {
	v, err := ints(args, 3, 3)
	if err != nil {
		return err
	}
	s.report(fmt.Sprintf("edge %d-%d (%d)", v[0], v[1], v[2]), s.graph.InsertEdge(v[0], v[1], v[2]))
	return nil
}

func (s *session) vertex(args []string) error {
	v, err := ints(args, 1, 1)
	if err != nil {
		return err
	}
	s.report(fmt.Sprintf("vertex %d", v[0]), s.graph.InsertVertex(v[0]))
	return nil
}

// remove drops a vertex, or the edge between two vertices.
func (s *session) remove(args []string) error {
	v, err := ints(args, 1, 2)
	if err != nil {
		return err
	}
	if len(v) == 1 {
		s.report(fmt.Sprintf("remove vertex %d", v[0]), s.graph.DeleteVertex(v[0]))
		return nil
	}
	s.report(fmt.Sprintf("remove edge %d-%d", v[0], v[1]), s.graph.DeleteEdge(v[0], v[1]))
	return nil
}

func (s *session) search(args []string) error {
	v, err := ints(args, 1, 1)
	if err != nil {
		return err
	}
	var path []int
	if s.keyed != nil {
		for _, st := range s.keyed.Search(v[0]) {
			path = append(path, st.Value)
		}
	} else {
		for _, st := range s.graph.Search(v[0]) {
			path = append(path, st.Value)
		}
	}
	fmt.Fprintf(s.out, "%s %s\n", s.info("path"), joinInts(path))
	return nil
}

func (s *session) undo(_ []string) error {
	return s.swap("undo", s.engine.(undoable).CanUndo, s.engine.Undo)
}

func (s *session) redo(_ []string) error {
	return s.swap("redo", s.engine.(undoable).CanRedo, s.engine.Redo)
}

func (s *session) swap(op string, can func() bool, do func() (playback.Step, bool)) error {
	if !can() {
		fmt.Fprintf(s.out, "%s nothing to %s\n", s.warn("rejected"), op)
		return nil
	}
	st, ok := do()
	if !ok {
		fmt.Fprintf(s.out, "%s %s\n", s.ok("ok"), op)
		return nil
	}
	fmt.Fprintf(s.out, "%s %s, highlight %d\n", s.ok("ok"), op, st.Value)
	return nil
}

func (s *session) clear(_ []string) error {
	s.engine.Clear()
	fmt.Fprintf(s.out, "%s clear\n", s.ok("ok"))
	return nil
}

// random takes optional count, min and max; the graph takes none.
func (s *session) random(args []string) error {
	if s.graph != nil {
		if len(args) != 0 {
			return errors.Wrap(errUsage, "graph random takes no arguments")
		}
		s.graph.GenerateRandom()
		fmt.Fprintf(s.out, "%s random graph: %d vertices, %d edges\n", s.ok("ok"), s.graph.Order(), s.graph.Size())
		return nil
	}
	v, err := ints(args, 0, 3)
	if err != nil {
		return err
	}
	count, lo, hi := s.cfg.Random.Count, s.cfg.Random.Min, s.cfg.Random.Max
	switch len(v) {
	case 3:
		count, lo, hi = v[0], v[1], v[2]
	case 1:
		count = v[0]
	case 2:
		return errors.Wrap(errUsage, "random takes count, or count min max")
	}
	if err := s.keyed.GenerateRandom(count, lo, hi); err != nil {
		fmt.Fprintf(s.out, "%s %v\n", s.warn("rejected"), err)
		return nil
	}
	fmt.Fprintf(s.out, "%s random: %d values\n", s.ok("ok"), s.keyed.Len())
	return nil
}

func (s *session) load(args []string) error {
	path := ""
	if len(args) > 1 {
		return errors.Wrap(errUsage, "load takes one path")
	}
	if len(args) == 1 {
		path = args[0]
	}
	res := s.engine.LoadFromFile(path)
	label := s.ok("ok")
	if res.Count == 0 {
		label = s.warn("load")
	}
	fmt.Fprintf(s.out, "%s %s\n", label, res.Message)
	return nil
}

func (s *session) tick(args []string) error {
	if len(args) != 1 {
		return errors.Wrap(errUsage, "tick takes a duration")
	}
	d, err := time.ParseDuration(args[0])
	if err != nil || d < 0 {
		return errors.Wrapf(errUsage, "bad duration %q", args[0])
	}
	s.advance(d)
	s.status()
	return nil
}

// run advances time until every animation is idle.
func (s *session) run(_ []string) error {
	var spent time.Duration
	for s.busy() && spent < runLimit {
		s.engine.Update(frame)
		spent += frame
	}
	s.status()
	return nil
}

func (s *session) busy() bool {
	if s.engine.Playback().Busy() {
		return true
	}
	return s.graph != nil && s.graph.KruskalRunning()
}

func (s *session) advance(d time.Duration) {
	for d > 0 {
		step := min(frame, d)
		s.engine.Update(step)
		d -= step
	}
}

// status prints the playback message and the revealed node, if any.
func (s *session) status() {
	p := s.engine.Playback()
	if msg := p.Message(); msg != "" {
		fmt.Fprintf(s.out, "%s %s\n", s.info("status"), msg)
	}
	if st, ok := p.Current(); ok {
		fmt.Fprintf(s.out, "%s %d (%d/%d)\n", s.info("at"), st.Value, p.Index()+1, p.Len())
	}
}

func (s *session) kruskal(_ []string) error {
	if s.graph.Order() == 0 {
		fmt.Fprintf(s.out, "%s graph is empty\n", s.warn("rejected"))
		return nil
	}
	s.graph.StartKruskal()
	fmt.Fprintf(s.out, "%s kruskal started\n", s.ok("ok"))
	return nil
}

func (s *session) mst(_ []string) error {
	fmt.Fprint(s.out, renderMST(s.graph.MST()))
	return nil
}

func (s *session) show(_ []string) error {
	switch e := s.engine.(type) {
	case *avl.Tree:
		fmt.Fprint(s.out, renderTree(e))
	case *linkedlist.List:
		fmt.Fprintln(s.out, renderList(e))
	case *hashtable.Table:
		fmt.Fprint(s.out, renderBuckets(e))
	case *graph.Graph:
		fmt.Fprint(s.out, renderGraph(e))
	}
	return nil
}

func (s *session) hints(_ []string) error {
	out, err := renderHints(s.engine)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, out)
	return nil
}

// code prints the insert pseudocode with the current line marked.
func (s *session) code(_ []string) error {
	if s.name != "avl" {
		return errors.Wrapf(errUnknownCommand, "code on %s", s.name)
	}
	cur, ok := s.engine.Playback().Line()
	for i, l := range avl.Pseudocode {
		mark := "  "
		if ok && i == cur {
			mark = "> "
		}
		fmt.Fprintf(s.out, "%s%s\n", mark, l)
	}
	return nil
}

func (s *session) check(_ []string) error {
	switch e := s.engine.(type) {
	case *avl.Tree:
		if err := e.Check(); err != nil {
			return errors.Mark(err, errCheckFailed)
		}
		fmt.Fprintf(s.out, "%s avl: %d keys, height %d\n", s.ok("ok"), e.Len(), e.Height())
	case *graph.Graph:
		fmt.Fprintf(s.out, "%s graph: %d components\n", s.ok("ok"), len(e.Components()))
	default:
		fmt.Fprintf(s.out, "%s %s: %d values\n", s.ok("ok"), s.name, s.keyed.Len())
	}
	return nil
}

func (s *session) stats(_ []string) error {
	out, err := renderStats(s.reg)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, out)
	return nil
}

func joinInts(vs []int) string {
	if len(vs) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
