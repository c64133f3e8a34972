// Package accessor addresses values inside an evaluated document with
// dotted paths like `servers.alpha.ports[0]`. Quoted segments carry
// dots and brackets literally: `"a.b".c`.
package accessor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/torii-format/torii/document"
)

var (
	ErrBadPath  = errors.New("accessor: malformed path")
	ErrNotFound = errors.New("accessor: not found")
)

// Accessor is one path step: a table key or an array index.
type Accessor struct {
	Key   string
	Index int
	isKey bool
}

func KeyAccessor(key string) Accessor { return Accessor{Key: key, isKey: true} }

func IndexAccessor(i int) Accessor { return Accessor{Index: i} }

func (a Accessor) IsKey() bool { return a.isKey }

func (a Accessor) String() string {
	if a.isKey {
		return a.Key
	}
	return fmt.Sprintf("[%d]", a.Index)
}

// Format renders a path in the notation ParsePath accepts.
func Format(path []Accessor) string {
	var sb strings.Builder
	for i, a := range path {
		if a.isKey && i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(a.String())
	}
	return sb.String()
}

// ParsePath parses dotted-path notation into accessors.
func ParsePath(s string) ([]Accessor, error) {
	if s == "" {
		return nil, nil
	}
	var out []Accessor
	i := 0
	expectKey := true
	for i < len(s) {
		switch {
		case s[i] == '.':
			if expectKey {
				return nil, fmt.Errorf("%w: empty segment at %d", ErrBadPath, i)
			}
			i++
			expectKey = true
		case s[i] == '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed index at %d", ErrBadPath, i)
			}
			n, err := strconv.Atoi(s[i+1 : i+end])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index at %d", ErrBadPath, i)
			}
			out = append(out, IndexAccessor(n))
			i += end + 1
			expectKey = false
		case s[i] == '"' || s[i] == '\'':
			quote := s[i]
			end := strings.IndexByte(s[i+1:], quote)
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed quote at %d", ErrBadPath, i)
			}
			out = append(out, KeyAccessor(s[i+1:i+1+end]))
			i += end + 2
			expectKey = false
		default:
			if !expectKey {
				return nil, fmt.Errorf("%w: expected '.' or '[' at %d", ErrBadPath, i)
			}
			j := i
			for j < len(s) && s[j] != '.' && s[j] != '[' {
				j++
			}
			out = append(out, KeyAccessor(s[i:j]))
			i = j
			expectKey = false
		}
	}
	if expectKey {
		return nil, fmt.Errorf("%w: trailing '.'", ErrBadPath)
	}
	return out, nil
}

// Get walks the path from v.
func Get(v document.Value, path []Accessor) (document.Value, error) {
	cur := v
	for _, a := range path {
		if a.isKey {
			t, ok := cur.(*document.Table)
			if !ok {
				return nil, fmt.Errorf("%w: %q is not in a table", ErrNotFound, a.Key)
			}
			next, ok := t.Get(a.Key)
			if !ok {
				return nil, fmt.Errorf("%w: key %q", ErrNotFound, a.Key)
			}
			cur = next
			continue
		}
		arr, ok := cur.(*document.Array)
		if !ok {
			return nil, fmt.Errorf("%w: index %d is not in an array", ErrNotFound, a.Index)
		}
		if a.Index >= arr.Len() {
			return nil, fmt.Errorf("%w: index %d of %d", ErrNotFound, a.Index, arr.Len())
		}
		cur = arr.Values()[a.Index]
	}
	return cur, nil
}

// GetPath parses then walks a path in one call.
func GetPath(v document.Value, path string) (document.Value, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return Get(v, p)
}
