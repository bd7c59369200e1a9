// Package penman reads AMR graphs written in PENMAN notation, e.g.
//
//	# ::snt The boy wants to go.
//	(w / want-01
//	   :ARG0 (b / boy)
//	   :ARG1 (g / go-02
//	            :ARG0 b))
//
// Documents hold one graph per block; blocks are separated by blank lines
// and lines starting with '#' are comments.
package penman

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/esmanning/emmAMR/alg"
	"github.com/esmanning/emmAMR/nlp/amr"
)

const COMMENT_PREFIX = "#"

var ErrMalformed = errors.New("penman: malformed graph")

// A Block is one blank-line separated chunk of a document with comment lines
// removed. Index counts blocks from 0 in document order.
type Block struct {
	Index int
	Lines []string
}

func (b Block) Empty() bool {
	return len(b.Lines) == 0
}

func (b Block) Text() string {
	return strings.Join(b.Lines, "\n")
}

// Blocks splits a document into blocks. Blocks made only of comments are
// returned empty so that callers can account for them.
func Blocks(reader io.Reader) ([]Block, error) {
	var (
		blocks  []Block
		current []string
		inBlock bool
	)
	flush := func() {
		if inBlock {
			blocks = append(blocks, Block{len(blocks), current})
		}
		current, inBlock = nil, false
	}
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(strings.TrimSpace(line)) == 0 {
			flush()
			continue
		}
		inBlock = true
		if strings.HasPrefix(line, COMMENT_PREFIX) {
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "penman: reading document")
	}
	flush()
	return blocks, nil
}

func ReadFile(filename string) ([]Block, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "penman: opening %s", filename)
	}
	defer file.Close()
	return Blocks(file)
}

type tokenKind byte

const (
	tOpen tokenKind = iota
	tClose
	tSlash
	tRole
	tString
	tSymbol
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func malformed(pos int, format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformed, "at offset %d: %s", pos, fmt.Sprintf(format, args...))
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', '"':
		return true
	}
	return false
}

func tokenize(text string) ([]token, error) {
	tokens := make([]token, 0, len(text)/3)
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			tokens = append(tokens, token{tOpen, "(", i})
			i++
		case c == ')':
			tokens = append(tokens, token{tClose, ")", i})
			i++
		case c == '/':
			tokens = append(tokens, token{tSlash, "/", i})
			i++
		case c == '"':
			var (
				b   strings.Builder
				j   = i + 1
				end = -1
			)
			for j < len(text) {
				if text[j] == '\\' && j+1 < len(text) {
					b.WriteByte(text[j+1])
					j += 2
					continue
				}
				if text[j] == '"' {
					end = j
					break
				}
				b.WriteByte(text[j])
				j++
			}
			if end < 0 {
				return nil, malformed(i, "unterminated string")
			}
			tokens = append(tokens, token{tString, b.String(), i})
			i = end + 1
		case c == ':':
			j := i + 1
			for j < len(text) && !isDelim(text[j]) {
				j++
			}
			if j == i+1 {
				return nil, malformed(i, "empty role")
			}
			tokens = append(tokens, token{tRole, text[i:j], i})
			i = j
		default:
			// only a variable, right after "(", ends at a slash
			variable := len(tokens) > 0 && tokens[len(tokens)-1].kind == tOpen
			j := i
			for j < len(text) && !isDelim(text[j]) && !(variable && text[j] == '/') {
				j++
			}
			tokens = append(tokens, token{tSymbol, text[i:j], i})
			i = j
		}
	}
	return tokens, nil
}

// declared collects every variable introduced as "(var /", so that symbols
// can be told apart from variable references regardless of mention order.
func declared(tokens []token) map[string]bool {
	vars := make(map[string]bool)
	for i := 0; i+2 < len(tokens); i++ {
		if tokens[i].kind == tOpen && tokens[i+1].kind == tSymbol && tokens[i+2].kind == tSlash {
			vars[tokens[i+1].text] = true
		}
	}
	return vars
}

// Parse reads a single graph.
func Parse(text string) (*amr.Graph, error) {
	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, malformed(0, "no graph")
	}
	var (
		g       = amr.New()
		vars    = declared(tokens)
		open    = alg.NewStack[int](8)
		role    string
		rolePos int
		closed  bool
	)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if closed {
			return nil, malformed(tok.pos, "trailing %q after the top node", tok.text)
		}
		switch tok.kind {
		case tOpen:
			if i+3 >= len(tokens) || tokens[i+1].kind != tSymbol || tokens[i+2].kind != tSlash || tokens[i+3].kind != tSymbol {
				return nil, malformed(tok.pos, "expected (variable / concept")
			}
			id := g.Variable(tokens[i+1].text)
			if err := g.SetConcept(id, tokens[i+3].text); err != nil {
				return nil, errors.Wrap(ErrMalformed, err.Error())
			}
			if head, ok := open.Peek(); ok {
				if role == "" {
					return nil, malformed(tok.pos, "node without a role")
				}
				g.AddEdge(head, role, id)
				role = ""
			} else {
				g.SetRoot(id)
			}
			open.Push(id)
			i += 3
		case tClose:
			if role != "" {
				return nil, malformed(rolePos, "role %s without a value", role)
			}
			if _, ok := open.Pop(); !ok {
				return nil, malformed(tok.pos, "unbalanced parenthesis")
			}
			closed = open.Size() == 0
		case tRole:
			if open.Size() == 0 {
				return nil, malformed(tok.pos, "role %s outside a node", tok.text)
			}
			if role != "" {
				return nil, malformed(rolePos, "role %s without a value", role)
			}
			role, rolePos = tok.text, tok.pos
		case tString, tSymbol:
			head, ok := open.Peek()
			if !ok || role == "" {
				return nil, malformed(tok.pos, "unexpected %q", tok.text)
			}
			var dep int
			switch {
			case tok.kind == tString:
				dep = g.AddConstant(tok.text, true)
			case vars[tok.text]:
				dep = g.Variable(tok.text)
			default:
				dep = g.AddConstant(tok.text, false)
			}
			g.AddEdge(head, role, dep)
			role = ""
		case tSlash:
			return nil, malformed(tok.pos, "unexpected /")
		}
	}
	if !closed {
		return nil, malformed(len(text), "unbalanced parenthesis")
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	return g, nil
}
