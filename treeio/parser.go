package treeio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/niemasd/TreeCluster/tree"
)

// ParseAll reads zero or more semicolon-terminated Newick tree
// statements from r and returns one tree.Tree per statement.
// Surrounding whitespace and blank lines between statements are
// tolerated. Internal-node labels are parsed as support values; leaf
// labels are taxon names. A statement that fails to parse yields
// ErrMalformedNewick wrapped with a short reason (no input position).
func ParseAll(r io.Reader) ([]*tree.Tree, error) {
	br := bufio.NewReader(r)
	var trees []*tree.Tree

	for {
		skipSpace(br)
		if _, err := br.Peek(1); err != nil {
			break
		}

		p := &parser{br: br}
		root, err := p.parseSubtree()
		if err != nil {
			return nil, err
		}
		if err := p.expect(';'); err != nil {
			return nil, err
		}

		tr := &tree.Tree{Nodes: p.nodes, Root: root}
		trees = append(trees, tr)
	}
	return trees, nil
}

// parser holds the arena under construction for the statement currently
// being parsed, alongside the shared reader.
type parser struct {
	br    *bufio.Reader
	nodes []*tree.Node
}

func (p *parser) newNode() int {
	idx := len(p.nodes)
	p.nodes = append(p.nodes, &tree.Node{ID: idx, Parent: -1})
	return idx
}

// parseSubtree parses one subtree (leaf or internal node, with optional
// trailing label, branch length, and comment) and returns its arena
// index.
func (p *parser) parseSubtree() (int, error) {
	skipSpace(p.br)
	ch, err := p.peek()
	if err != nil {
		return 0, p.malformed("unexpected end of input")
	}

	idx := p.newNode()

	if ch == '(' {
		p.next()
		for {
			child, err := p.parseSubtree()
			if err != nil {
				return 0, err
			}
			p.nodes[child].Parent = idx
			p.nodes[idx].Children = append(p.nodes[idx].Children, child)

			skipSpace(p.br)
			c, err := p.peek()
			if err != nil {
				return 0, p.malformed("unterminated internal node")
			}
			if c == ',' {
				p.next()
				continue
			}
			break
		}
		if err := p.expect(')'); err != nil {
			return 0, err
		}
		label, err := p.readLabel()
		if err != nil {
			return 0, err
		}
		if label != "" {
			if support, perr := strconv.ParseFloat(label, 64); perr == nil {
				p.nodes[idx].Support = support
				p.nodes[idx].HasSupport = true
			}
		}
	} else {
		label, err := p.readLabel()
		if err != nil {
			return 0, err
		}
		p.nodes[idx].Label = label
	}

	if err := p.maybeReadEdgeLength(idx); err != nil {
		return 0, err
	}
	if err := p.maybeReadComment(idx); err != nil {
		return 0, err
	}
	return idx, nil
}

// maybeReadEdgeLength consumes a ':' branch-length suffix if present.
func (p *parser) maybeReadEdgeLength(idx int) error {
	skipSpace(p.br)
	ch, err := p.peek()
	if err != nil || ch != ':' {
		return nil
	}
	p.next()
	skipSpace(p.br)
	numStr, err := p.readToken()
	if err != nil {
		return err
	}
	length, perr := strconv.ParseFloat(numStr, 64)
	if perr != nil {
		return p.malformed(fmt.Sprintf("invalid branch length %q", numStr))
	}
	p.nodes[idx].EdgeLength = length
	return nil
}

// maybeReadComment consumes a "[...]" comment suffix if present.
func (p *parser) maybeReadComment(idx int) error {
	skipSpace(p.br)
	ch, err := p.peek()
	if err != nil || ch != '[' {
		return nil
	}
	p.next()
	var sb strings.Builder
	for {
		c, err := p.next()
		if err != nil {
			return p.malformed("unterminated comment")
		}
		if c == ']' {
			break
		}
		sb.WriteRune(c)
	}
	p.nodes[idx].Comment = sb.String()
	return nil
}

// readLabel reads an unquoted label: any run of characters other than
// the Newick structural characters, whitespace, or an opening bracket.
// An empty result (no characters before a structural character) is
// valid and means "no label".
func (p *parser) readLabel() (string, error) {
	return p.readToken()
}

// readToken reads a run of non-structural, non-whitespace characters.
func (p *parser) readToken() (string, error) {
	var sb strings.Builder
	for {
		ch, err := p.peek()
		if err != nil || isStructural(ch) || isSpace(ch) {
			break
		}
		p.next()
		sb.WriteRune(ch)
	}
	return sb.String(), nil
}

func isStructural(ch rune) bool {
	switch ch {
	case '(', ')', ',', ':', ';', '[', ']':
		return true
	}
	return false
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func skipSpace(br *bufio.Reader) {
	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			return
		}
		if !isSpace(ch) {
			br.UnreadRune()
			return
		}
	}
}

func (p *parser) peek() (rune, error) {
	ch, _, err := p.br.ReadRune()
	if err != nil {
		return 0, err
	}
	p.br.UnreadRune()
	return ch, nil
}

func (p *parser) next() (rune, error) {
	ch, _, err := p.br.ReadRune()
	return ch, err
}

func (p *parser) expect(want rune) error {
	skipSpace(p.br)
	ch, err := p.next()
	if err != nil || ch != want {
		return p.malformed(fmt.Sprintf("expected %q", want))
	}
	return nil
}

func (p *parser) malformed(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedNewick, reason)
}
