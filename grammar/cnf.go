package grammar

import "fmt"

// GeneratesEpsilon reports whether the grammar's start symbol derives the
// empty string, via the standard nullable-nonterminal fixpoint (spec §4.6).
func (g *Grammar) GeneratesEpsilon() bool {
	return g.nullable()[g.Start]
}

func (g *Grammar) nullable() map[string]bool {
	null := make(map[string]bool)
	for {
		changed := false
		for _, p := range g.Productions {
			if null[p.Head] {
				continue
			}
			if len(p.Body) == 0 {
				null[p.Head] = true
				changed = true
				continue
			}
			allNullable := true
			for _, s := range p.Body {
				if s.Terminal || !null[s.Name] {
					allNullable = false
					break
				}
			}
			if allNullable {
				null[p.Head] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return null
}

// BinProd is a CNF production Head -> Left Right.
type BinProd struct {
	Head, Left, Right string
}

// CNF is a grammar in Chomsky Normal Form: every production is either
// Head -> terminal or Head -> Left Right (spec §3, §4.6). CNF never
// contains an ε-production, even when the source grammar generates ε; the
// type has no way to hold one. Grammar.WCNF reports ε separately through
// its boolean result.
type CNF struct {
	Start           string
	UnaryByTerminal map[string][]string // terminal -> nonterminals with Head -> terminal
	Binary          []BinProd
	BinaryByLeft    map[string][]BinProd
	BinaryByRight   map[string][]BinProd
	Nonterminals    map[string]bool
}

func newCNF(start string) *CNF {
	return &CNF{
		Start:           start,
		UnaryByTerminal: make(map[string][]string),
		BinaryByLeft:    make(map[string][]BinProd),
		BinaryByRight:   make(map[string][]BinProd),
		Nonterminals:    make(map[string]bool),
	}
}

func (c *CNF) addUnary(head, terminal string) {
	c.Nonterminals[head] = true
	for _, h := range c.UnaryByTerminal[terminal] {
		if h == head {
			return
		}
	}
	c.UnaryByTerminal[terminal] = append(c.UnaryByTerminal[terminal], head)
}

func (c *CNF) addBinary(head, left, right string) {
	c.Nonterminals[head] = true
	bp := BinProd{Head: head, Left: left, Right: right}
	for _, existing := range c.Binary {
		if existing == bp {
			return
		}
	}
	c.Binary = append(c.Binary, bp)
	c.BinaryByLeft[left] = append(c.BinaryByLeft[left], bp)
	c.BinaryByRight[right] = append(c.BinaryByRight[right], bp)
}

// CNF converts g to Chomsky Normal Form via the standard pipeline: eliminate
// ε-productions, eliminate unit productions, isolate terminals, and binarize
// long bodies.
func (g *Grammar) CNF() *CNF {
	newStart := fmt.Sprintf("%s#start", g.Start)
	prods := append([]Production{{Head: newStart, Body: []Symbol{{Name: g.Start, Terminal: false}}}}, g.Productions...)
	working := &Grammar{Start: newStart, Productions: prods}

	noEps := eliminateEpsilon(working)
	noUnit := eliminateUnit(noEps)
	noTerm, termVarOf := isolateTerminals(noUnit)
	binarized := binarize(noTerm)

	out := newCNF(newStart)
	for tVar, t := range termVarOf {
		out.addUnary(tVar, t)
	}
	for _, p := range binarized {
		switch len(p.Body) {
		case 1:
			if p.Body[0].Terminal {
				out.addUnary(p.Head, p.Body[0].Name)
			}
			// A unit production surviving to here (nonterminal body of
			// length 1) would indicate a bug in eliminateUnit; none occur
			// by construction.
		case 2:
			out.addBinary(p.Head, p.Body[0].Name, p.Body[1].Name)
		}
	}
	return out
}

// WCNF returns cnf augmented, if g generates ε, with a fresh start symbol
// S' that carries copies of the CNF start symbol's productions, and true
// (spec §3, "Weak CNF"). The returned CNF holds no S' → ε production; the
// true result is the only record that S' derives ε. Otherwise WCNF is
// identical to CNF and the result is false.
func (g *Grammar) WCNF() (*CNF, bool) {
	cnf := g.CNF()
	if !g.GeneratesEpsilon() {
		return cnf, false
	}
	wStart := fmt.Sprintf("%s#wcnf", cnf.Start)
	out := newCNF(wStart)
	for t, heads := range cnf.UnaryByTerminal {
		for _, h := range heads {
			out.addUnary(h, t)
		}
	}
	for _, bp := range cnf.Binary {
		out.addBinary(bp.Head, bp.Left, bp.Right)
	}
	// S' → S cannot be written directly (CNF bodies are terminal-only or
	// binary, never a lone nonterminal), so S' derives whatever S derives
	// by copying S's own productions onto S'.
	for _, bp := range cnf.Binary {
		if bp.Head == cnf.Start {
			out.addBinary(wStart, bp.Left, bp.Right)
		}
	}
	for t, heads := range cnf.UnaryByTerminal {
		for _, h := range heads {
			if h == cnf.Start {
				out.addUnary(wStart, t)
			}
		}
	}
	out.Nonterminals[wStart] = true
	return out, true
}

// eliminateEpsilon removes ε-productions, rewriting every other production
// with all combinations of its nullable body symbols dropped (skipping the
// all-dropped combination, so no empty body is ever produced).
func eliminateEpsilon(g *Grammar) *Grammar {
	null := g.nullable()
	out := &Grammar{Start: g.Start}
	seen := make(map[string]bool)
	add := func(p Production) {
		key := p.Head + "|"
		for _, s := range p.Body {
			key += s.Name + "," + fmt.Sprint(s.Terminal) + ";"
		}
		if seen[key] {
			return
		}
		seen[key] = true
		out.Productions = append(out.Productions, p)
	}
	for _, p := range g.Productions {
		if len(p.Body) == 0 {
			continue // drop ε-productions themselves
		}
		nullablePositions := make([]int, 0, len(p.Body))
		for i, s := range p.Body {
			if !s.Terminal && null[s.Name] {
				nullablePositions = append(nullablePositions, i)
			}
		}
		total := 1 << len(nullablePositions)
		for mask := 0; mask < total; mask++ {
			drop := make(map[int]bool)
			for bit, pos := range nullablePositions {
				if mask&(1<<bit) != 0 {
					drop[pos] = true
				}
			}
			var body []Symbol
			for i, s := range p.Body {
				if !drop[i] {
					body = append(body, s)
				}
			}
			if len(body) == 0 {
				continue // never reintroduce ε here
			}
			add(Production{Head: p.Head, Body: body})
		}
	}
	return out
}

// eliminateUnit replaces every A -> B (B a lone nonterminal) with B's own
// productions, following chains via BFS and guarding against unit cycles.
func eliminateUnit(g *Grammar) *Grammar {
	byHead := make(map[string][]Production)
	for _, p := range g.Productions {
		byHead[p.Head] = append(byHead[p.Head], p)
	}

	out := &Grammar{Start: g.Start}
	seen := make(map[string]bool)
	add := func(p Production) {
		key := p.Head + "|"
		for _, s := range p.Body {
			key += s.Name + "," + fmt.Sprint(s.Terminal) + ";"
		}
		if seen[key] {
			return
		}
		seen[key] = true
		out.Productions = append(out.Productions, p)
	}

	heads := g.heads()
	for head := range heads {
		visited := map[string]bool{head: true}
		queue := []string{head}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, p := range byHead[cur] {
				if len(p.Body) == 1 && !p.Body[0].Terminal {
					next := p.Body[0].Name
					if !visited[next] {
						visited[next] = true
						queue = append(queue, next)
					}
					continue
				}
				add(Production{Head: head, Body: p.Body})
			}
		}
	}
	return out
}

// isolateTerminals introduces one fresh nonterminal per terminal that
// appears inside a body of length >= 2, so every surviving long body is
// nonterminals-only. Returns the rewritten grammar and the map from fresh
// nonterminal to the terminal it produces.
func isolateTerminals(g *Grammar) (*Grammar, map[string]string) {
	termVar := make(map[string]string) // terminal -> fresh nonterminal
	varOf := make(map[string]string)   // fresh nonterminal -> terminal
	varFor := func(t string) string {
		if v, ok := termVar[t]; ok {
			return v
		}
		v := fmt.Sprintf("#T[%s]", t)
		termVar[t] = v
		varOf[v] = t
		return v
	}

	out := &Grammar{Start: g.Start}
	for _, p := range g.Productions {
		if len(p.Body) == 1 {
			out.Productions = append(out.Productions, p)
			continue
		}
		body := make([]Symbol, len(p.Body))
		for i, s := range p.Body {
			if s.Terminal {
				body[i] = Symbol{Name: varFor(s.Name), Terminal: false}
			} else {
				body[i] = s
			}
		}
		out.Productions = append(out.Productions, Production{Head: p.Head, Body: body})
	}
	for v, t := range varOf {
		out.Productions = append(out.Productions, Production{Head: v, Body: []Symbol{{Name: t, Terminal: true}}})
	}
	return out, varOf
}

// binarize breaks every body of length > 2 into a chain of binary
// productions using fresh nonterminals, one chain per original production.
func binarize(g *Grammar) []Production {
	var out []Production
	fresh := 0
	for _, p := range g.Productions {
		if len(p.Body) <= 2 {
			out = append(out, p)
			continue
		}
		head := p.Head
		body := p.Body
		for len(body) > 2 {
			fresh++
			tail := fmt.Sprintf("#B%d", fresh)
			out = append(out, Production{Head: head, Body: []Symbol{body[0], {Name: tail, Terminal: false}}})
			head = tail
			body = body[1:]
		}
		out = append(out, Production{Head: head, Body: body})
	}
	return out
}
