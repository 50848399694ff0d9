package ast

// Action is returned by visitor callbacks to steer traversal, per spec §4.3:
// continue normally, skip the current subtree, halt the whole traversal, or
// (Transform only) remove/replace the current node.
type Action int

const (
	Continue Action = iota
	SkipSubtree
	Halt
)

// Visitor is implemented by passes that only observe the tree (validation
// rules, printers-via-callback, static analysis). Enter/Leave are called for
// every node in document order. If Enter returns SkipSubtree at a node, its
// children are not visited but the node's own Leave is still called; once
// Enter returns Halt, no further Enter or Leave is called at all.
type Visitor interface {
	Enter(n Node) Action
	Leave(n Node)
}

// BaseVisitor can be embedded to avoid implementing every method.
type BaseVisitor struct{}

func (BaseVisitor) Enter(Node) Action { return Continue }
func (BaseVisitor) Leave(Node)        {}

// Chain fans a single Enter/Leave event out to several visitors in order on
// Enter and reverse order on Leave, matching spec §4.3's "chained visitor"
// contract. If any visitor returns Halt, the chain halts; if any returns
// SkipSubtree, the subtree is skipped (later visitors in the chain still
// observe the Enter event for this node, but none observe its children).
type Chain []Visitor

func (c Chain) Enter(n Node) Action {
	result := Continue
	for _, v := range c {
		switch v.Enter(n) {
		case Halt:
			return Halt
		case SkipSubtree:
			if result == Continue {
				result = SkipSubtree
			}
		}
	}
	return result
}

func (c Chain) Leave(n Node) {
	for i := len(c) - 1; i >= 0; i-- {
		c[i].Leave(n)
	}
}

// Walk traverses doc in document order, calling v's Enter/Leave for every
// node. It implements the executable-document subset of the tree (operations
// and fragments); type system definitions and extensions are not walked.
func Walk(v Visitor, doc *Document) {
	w := &walker{v: v}
	for _, op := range doc.Operations {
		if w.halted {
			return
		}
		w.walkOperation(op)
	}
	for _, frag := range doc.Fragments {
		if w.halted {
			return
		}
		w.walkFragmentDefinition(frag)
	}
}

type walker struct {
	v      Visitor
	halted bool
}

func (w *walker) enter(n Node) Action {
	if w.halted {
		return Halt
	}
	a := w.v.Enter(n)
	if a == Halt {
		w.halted = true
	}
	return a
}

func (w *walker) leave(n Node) {
	if !w.halted {
		w.v.Leave(n)
	}
}

func (w *walker) walkOperation(op *OperationDefinition) {
	if w.enter(op) != Continue {
		w.leave(op)
		return
	}
	for _, sel := range op.Selections {
		w.walkSelection(sel)
		if w.halted {
			break
		}
	}
	w.leave(op)
}

func (w *walker) walkFragmentDefinition(f *FragmentDefinition) {
	if w.enter(f) != Continue {
		w.leave(f)
		return
	}
	for _, sel := range f.Selections {
		w.walkSelection(sel)
		if w.halted {
			break
		}
	}
	w.leave(f)
}

func (w *walker) walkSelection(sel Selection) {
	switch sel := sel.(type) {
	case *Field:
		if w.enter(sel) != Continue {
			w.leave(sel)
			return
		}
		for _, c := range sel.SelectionSet {
			w.walkSelection(c)
			if w.halted {
				break
			}
		}
		w.leave(sel)
	case *FragmentSpread:
		if w.enter(sel) != Continue {
			w.leave(sel)
			return
		}
		w.leave(sel)
	case *InlineFragment:
		if w.enter(sel) != Continue {
			w.leave(sel)
			return
		}
		for _, c := range sel.Selections {
			w.walkSelection(c)
			if w.halted {
				break
			}
		}
		w.leave(sel)
	}
}

// Transform is the mutating counterpart of Walk/Visitor: it produces a new
// tree where a Transformer may replace or delete nodes. Unlike Visitor,
// Transformer callbacks return a replacement node (nil meaning "delete") in
// addition to the traversal Action.
type Transformer interface {
	TransformField(f *Field) (*Field, Action)
}

// TransformFields rewrites every field in doc's operations using t, dropping
// fields for which t returns (nil, _), and stopping entirely on Halt. It
// returns a new Document built with DeepCopy, so the input's operations,
// fragments and selection trees are never mutated.
func TransformFields(doc *Document, t Transformer) *Document {
	cp := doc.DeepCopy()
	halted := false
	var walkSels func(sels []Selection) []Selection
	walkSels = func(sels []Selection) []Selection {
		var out []Selection
		for _, sel := range sels {
			if halted {
				out = append(out, sel)
				continue
			}
			switch sel := sel.(type) {
			case *Field:
				nf, action := t.TransformField(sel)
				if action == Halt {
					halted = true
				}
				if nf == nil {
					continue
				}
				nf.SelectionSet = walkSels(nf.SelectionSet)
				out = append(out, nf)
			case *InlineFragment:
				sel.Selections = walkSels(sel.Selections)
				out = append(out, sel)
			default:
				out = append(out, sel)
			}
		}
		return out
	}
	for _, op := range cp.Operations {
		op.Selections = walkSels(op.Selections)
	}
	for _, frag := range cp.Fragments {
		frag.Selections = walkSels(frag.Selections)
	}
	return cp
}
