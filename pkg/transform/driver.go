package transform

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/oisee/sparc-select/pkg/sparc"
	"github.com/oisee/sparc-select/pkg/ssa"
)

// debugLogger is the one-shot debug channel orig registers with
// FIRM_DBG_REGISTER / DEBUG_ONLY, re-expressed with log/slog the way the
// pack's rcornwell-S370/main.go wires its logger (SPEC_FULL.md §3).
var (
	debugLogger     *slog.Logger
	debugLoggerOnce sync.Once
)

// Init performs one-shot pass initialisation: registering the debug
// channel (spec.md §6 "exposed to downstream: init()"). Safe to call more
// than once; only the first call takes effect.
func Init() {
	debugLoggerOnce.Do(func() {
		debugLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})).
			With("channel", "sparc.transform")
	})
}

func logger() *slog.Logger {
	Init()
	return debugLogger
}

// Context carries everything one call to TransformGraph needs: the memo,
// the dispatch table, and the source graph being consumed. It is the
// go-native stand-in for orig's module-level env_cg/current_ir_graph state
// (spec.md §9 "Global pass state") — a fresh Context per call makes
// concurrent passes over distinct graphs free, so long as they don't share
// one Context (spec.md §5).
type Context struct {
	Graph    *ssa.Graph
	Target   *sparc.Graph
	Memo     *Memo
	Dispatch *Dispatch

	phiFixups []*sparc.Node // Phi nodes enqueued for post-pass predecessor rewiring
	log       *slog.Logger
}

// NewContext creates a transformation context over src, with its own fresh
// memo and dispatch table. RegisterTransformers has already been called
// against the returned Context's Dispatch.
func NewContext(src *ssa.Graph) *Context {
	d := NewDispatch()
	RegisterTransformers(d)
	return &Context{
		Graph:    src,
		Target:   sparc.NewGraph(src.Name),
		Memo:     NewMemo(),
		Dispatch: d,
		log:      logger(),
	}
}

// Transform returns n's target image, transforming it on first visit and
// returning the cached image on every subsequent visit (spec.md §4.1 step
// 2, testable property 2 "Sharing preservation"). Installing into the
// target graph's node list happens here so callers never have to remember
// to register a builder's output.
func (c *Context) Transform(n *ssa.Node) (*sparc.Node, error) {
	if t, ok := c.Memo.Lookup(n); ok {
		return t, nil
	}
	h, ok := c.Dispatch.Lookup(n.Opcode())
	if !ok {
		return nil, fatalf(MissingHandler, n, "no transform handler registered for opcode %s", n.Opcode())
	}
	t, err := h(c, n)
	if err != nil {
		return nil, err
	}
	// Phi installs itself early (before its operands are transformed, to
	// break cycles) — see genPhi in handlers_phi.go. For every other
	// opcode the install happens here, after the handler returns, which is
	// the "In-Progress -> Transformed" transition described in spec.md §4.7.
	if !c.Memo.Has(n) {
		c.Memo.Install(n, t)
	}
	c.Target.Add(t)
	return t, nil
}

// TransformBlock returns the target-graph counterpart of a source block.
// This pass's simplified block model treats blocks as shared, immutable
// identifiers rather than nodes to be lowered in their own right, so
// "transforming" a block is the identity function — it exists as a named
// step because spec.md's algorithm (§4.1) calls for it explicitly, and
// because a richer block-lowering pass built on top of this one (one that
// actually rewrites block structure) would hook in exactly here.
func (c *Context) TransformBlock(b *ssa.Block) *ssa.Block {
	return b
}

// enqueuePhiFixup records t (a Phi placeholder) for rewiring once every
// reachable node has a target image (spec.md §4.1 step 3, §4.6), grounded
// on orig's be_enqueue_preds.
func (c *Context) enqueuePhiFixup(t *sparc.Node) {
	c.phiFixups = append(c.phiFixups, t)
}

// TransformGraph runs the pass over src's root(s) and returns the
// resulting target graph. This is the `transform_graph(code_gen_context)`
// entry point spec.md §6 names (CodeGenContext here is simply the source
// ssa.Graph — no code-generation configuration is modeled beyond it).
func TransformGraph(src *ssa.Graph) (*sparc.Graph, error) {
	c, err := RunTransform(src)
	if err != nil {
		return nil, err
	}
	return c.Target, nil
}

// RunTransform is TransformGraph's underlying implementation, returning the
// live Context instead of just its target graph. Property verification
// (verify_properties.go) needs the memo and phi-fixup bookkeeping that a
// bare target graph discards, so it calls this directly.
func RunTransform(src *ssa.Graph) (*Context, error) {
	Init()
	c := NewContext(src)

	if src.End == nil {
		return nil, fmt.Errorf("transform: graph %q has no End node", src.Name)
	}
	// The target graph has no End placeholder of its own (spec.md §6: the
	// result is a flat node list, not a mirrored control-flow skeleton), so
	// the pass's roots are End's keep-alive edges directly, mirroring
	// orig's be_transform_graph seeding from End's keep-alives rather than
	// transforming End itself.
	for _, keepAlive := range src.End.PredList() {
		if _, err := c.Transform(keepAlive); err != nil {
			return nil, err
		}
	}

	if err := FixupPhis(c); err != nil {
		return nil, err
	}
	return c, nil
}
