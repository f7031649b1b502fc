// Copyright 2024 The MonacGraph Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/THU-IMOD/monacgraph/graph"
)

// segment is one "name(args)" or bare "name" link in a traversal chain
// such as g.V(x).out("knows").is(y).
type segment struct {
	name string
	args []string // raw, untyped argument text
}

// splitChain splits a traversal expression into its '.'-separated
// segments, a top-level split exactly like splitTopLevel but also
// skipping depth inside a segment's own argument parens.
func splitChain(s string) []string {
	return splitTopLevel(s, ".")
}

func parseSegment(s string) (segment, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open == -1 {
		return segment{name: s}, nil
	}
	if !strings.HasSuffix(s, ")") {
		return segment{}, fmt.Errorf("malformed step %q", s)
	}
	name := strings.TrimSpace(s[:open])
	inner := s[open+1 : len(s)-1]
	var args []string
	if strings.TrimSpace(inner) != "" {
		for _, a := range splitTopLevel(inner, ",") {
			args = append(args, strings.TrimSpace(a))
		}
	}
	return segment{name: name, args: args}, nil
}

// argLiteral resolves a raw argument token to a value: a quoted string,
// a boolean/numeric literal, or the vertex bound to a variable of that
// name. V(x) and is(x) do not use it; they look their variable up in
// env directly.
func argLiteral(tok string, env *Env) (graph.Value, error) {
	tok = strings.TrimSpace(tok)
	if len(tok) >= 2 && (tok[0] == '\'' || tok[0] == '"') && tok[len(tok)-1] == tok[0] {
		return tok[1 : len(tok)-1], nil
	}
	switch tok {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f, nil
	}
	if b, ok := env.Lookup(tok); ok && b.IsVertex() {
		return *b.Vertex, nil
	}
	return nil, fmt.Errorf("unresolved argument %q", tok)
}

// evalTraversal evaluates a single traversal expression (no boolean
// operators) against env, delegating adjacency lookups to storage.
// Adjacency itself stays an opaque external collaborator; this is a
// small typed interpreter over the fluent traversal steps rather than
// a scripting runtime.
func evalTraversal(storage graph.StorageEngine, expr string, env *Env) (graph.Value, error) {
	raw := splitChain(expr)
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty traversal expression")
	}
	segs := make([]segment, 0, len(raw))
	for _, r := range raw {
		seg, err := parseSegment(r)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}

	i := 0
	if segs[0].name == "g" && segs[0].args == nil {
		i = 1
	}
	if i >= len(segs) {
		return nil, fmt.Errorf("traversal expression has no anchor: %q", expr)
	}

	seq, err := evalAnchor(segs[i], storage, env)
	if err != nil {
		return nil, err
	}

	for _, seg := range segs[i+1:] {
		if seg.name == "count" {
			n := 0
			for {
				_, ok := seq.Next()
				if !ok {
					break
				}
				n++
			}
			return int64(n), nil
		}
		seq, err = applyStep(seq, seg, storage, env)
		if err != nil {
			return nil, err
		}
	}

	elems := drain(seq)
	if len(elems) == 1 && elems[0].IsScalar {
		return elems[0].Scalar, nil
	}
	if allScalar(elems) {
		vals := make([]graph.Value, len(elems))
		for i, e := range elems {
			vals[i] = e.Scalar
		}
		return vals, nil
	}
	return elems, nil
}

func allScalar(elems []Elem) bool {
	for _, e := range elems {
		if !e.IsScalar {
			return false
		}
	}
	return true
}

func evalAnchor(seg segment, storage graph.StorageEngine, env *Env) (Seq, error) {
	switch seg.name {
	case "V":
		if len(seg.args) == 0 {
			vs := storage.Vertices()
			elems := make([]Elem, len(vs))
			for i, v := range vs {
				elems[i] = vertexElem(v)
			}
			return newSliceSeq(elems), nil
		}
		if len(seg.args) == 1 {
			b, ok := env.Lookup(seg.args[0])
			if !ok {
				return nil, fmt.Errorf("V(%s) requires a bound variable", seg.args[0])
			}
			if b.IsSet() {
				vs := b.Set.Slice()
				elems := make([]Elem, len(vs))
				for i, v := range vs {
					elems[i] = vertexElem(v)
				}
				return newSliceSeq(elems), nil
			}
			if !b.IsVertex() {
				return nil, fmt.Errorf("V(%s) requires a vertex or set binding", seg.args[0])
			}
			return newSliceSeq([]Elem{vertexElem(*b.Vertex)}), nil
		}
		return nil, fmt.Errorf("V() takes 0 or 1 arguments, got %d", len(seg.args))
	case "E":
		es := storage.Edges()
		elems := make([]Elem, len(es))
		for i, e := range es {
			elems[i] = edgeElem(e, nil)
		}
		return newSliceSeq(elems), nil
	default:
		return nil, fmt.Errorf("unknown anchor %q", seg.name)
	}
}

func applyStep(seq Seq, seg segment, storage graph.StorageEngine, env *Env) (Seq, error) {
	switch seg.name {
	case "out", "in", "bothE":
		label := ""
		if len(seg.args) == 1 {
			v, err := argLiteral(seg.args[0], env)
			if err != nil {
				return nil, err
			}
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%s() label must be a string", seg.name)
			}
			label = s
		} else if len(seg.args) > 1 {
			return nil, fmt.Errorf("%s() takes 0 or 1 arguments", seg.name)
		}
		switch seg.name {
		case "out":
			return flatMap(seq, func(e Elem) []Elem {
				if e.Vertex == nil {
					return nil
				}
				vs := storage.Out(*e.Vertex, label)
				out := make([]Elem, len(vs))
				for i, v := range vs {
					out[i] = vertexElem(v)
				}
				return out
			}), nil
		case "in":
			return flatMap(seq, func(e Elem) []Elem {
				if e.Vertex == nil {
					return nil
				}
				vs := storage.In(*e.Vertex, label)
				out := make([]Elem, len(vs))
				for i, v := range vs {
					out[i] = vertexElem(v)
				}
				return out
			}), nil
		default: // bothE
			return flatMap(seq, func(e Elem) []Elem {
				if e.Vertex == nil {
					return nil
				}
				v := *e.Vertex
				var out []Elem
				for _, ed := range storage.OutEdges(v) {
					if label == "" || ed.Label == label {
						out = append(out, edgeElem(ed, &v))
					}
				}
				for _, ed := range storage.InEdges(v) {
					if label == "" || ed.Label == label {
						out = append(out, edgeElem(ed, &v))
					}
				}
				return out
			}), nil
		}
	case "outV":
		return flatMap(seq, func(e Elem) []Elem {
			if e.Edge == nil {
				return nil
			}
			v, ok := storage.Vertex(e.Edge.Source)
			if !ok {
				return nil
			}
			return []Elem{vertexElem(v)}
		}), nil
	case "inV":
		return flatMap(seq, func(e Elem) []Elem {
			if e.Edge == nil {
				return nil
			}
			v, ok := storage.Vertex(e.Edge.Target)
			if !ok {
				return nil
			}
			return []Elem{vertexElem(v)}
		}), nil
	case "otherV":
		return flatMap(seq, func(e Elem) []Elem {
			if e.Edge == nil {
				return nil
			}
			otherID := e.Edge.Target
			if e.from != nil && e.from.ID == e.Edge.Target {
				otherID = e.Edge.Source
			}
			v, ok := storage.Vertex(otherID)
			if !ok {
				return nil
			}
			return []Elem{vertexElem(v)}
		}), nil
	case "has":
		if len(seg.args) != 2 {
			return nil, fmt.Errorf("has() takes 2 arguments, got %d", len(seg.args))
		}
		key, err := argLiteral(seg.args[0], env)
		if err != nil {
			return nil, err
		}
		keyStr, _ := key.(string)
		want, err := argLiteral(seg.args[1], env)
		if err != nil {
			return nil, err
		}
		return flatMap(seq, func(e Elem) []Elem {
			got, ok := e.Attr(keyStr)
			if !ok || got != want {
				return nil
			}
			return []Elem{e}
		}), nil
	case "hasLabel":
		if len(seg.args) != 1 {
			return nil, fmt.Errorf("hasLabel() takes 1 argument, got %d", len(seg.args))
		}
		want, err := argLiteral(seg.args[0], env)
		if err != nil {
			return nil, err
		}
		wantStr, _ := want.(string)
		return flatMap(seq, func(e Elem) []Elem {
			l, ok := e.Label()
			if !ok || l != wantStr {
				return nil
			}
			return []Elem{e}
		}), nil
	case "is":
		if len(seg.args) != 1 {
			return nil, fmt.Errorf("is() takes 1 argument, got %d", len(seg.args))
		}
		b, ok := env.Lookup(seg.args[0])
		if !ok {
			return nil, fmt.Errorf("is(%s) requires a bound variable", seg.args[0])
		}
		if b.IsSet() {
			// is(S) against a set-bound variable tests membership,
			// letting a vertex-domain quantifier express "x in S"
			// against an enclosing subset-domain binding.
			set := b.Set
			return flatMap(seq, func(e Elem) []Elem {
				id, ok := e.ID()
				if !ok || !set.Contains(id) {
					return nil
				}
				return []Elem{e}
			}), nil
		}
		if !b.IsVertex() {
			return nil, fmt.Errorf("is(%s) requires a vertex or set binding", seg.args[0])
		}
		target := vertexElem(*b.Vertex)
		return flatMap(seq, func(e Elem) []Elem {
			if !e.Equal(target) {
				return nil
			}
			return []Elem{e}
		}), nil
	case "values":
		if len(seg.args) != 1 {
			return nil, fmt.Errorf("values() takes 1 argument, got %d", len(seg.args))
		}
		key, err := argLiteral(seg.args[0], env)
		if err != nil {
			return nil, err
		}
		keyStr, _ := key.(string)
		return flatMap(seq, func(e Elem) []Elem {
			v, ok := e.Attr(keyStr)
			if !ok {
				return nil
			}
			return []Elem{scalarElem(v)}
		}), nil
	case "id":
		return flatMap(seq, func(e Elem) []Elem {
			id, ok := e.ID()
			if !ok {
				return nil
			}
			return []Elem{scalarElem(id)}
		}), nil
	case "label":
		return flatMap(seq, func(e Elem) []Elem {
			l, ok := e.Label()
			if !ok {
				return nil
			}
			return []Elem{scalarElem(l)}
		}), nil
	default:
		return nil, fmt.Errorf("unknown step %q", seg.name)
	}
}
