package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/chriso345/soya/errors"
)

type indexKind int

const (
	indexNull indexKind = iota
	indexForward
	indexBackward
	indexList
	indexExcept
	indexRange
	indexAnywhere
)

// Index describes which positional slots an option accepts. Slot 0 is the
// program name, so the first real positional argument is slot 1.
//
// The zero Index is the null index and matches nothing.
type Index struct {
	kind     indexKind
	n        int
	list     []int
	start    int
	end      int
	hasStart bool
	hasEnd   bool
}

// Forward matches slot n counted from the front.
func Forward(n int) Index { return Index{kind: indexForward, n: n} }

// Backward matches slot n counted from the back; Backward(1) is the last slot.
func Backward(n int) Index { return Index{kind: indexBackward, n: n} }

// List matches any of the given slots.
func List(slots ...int) Index { return Index{kind: indexList, list: slots} }

// Except matches every slot but the given ones.
func Except(slots ...int) Index { return Index{kind: indexExcept, list: slots} }

// Range matches slots in [start, end).
func Range(start, end int) Index {
	return Index{kind: indexRange, start: start, end: end, hasStart: true, hasEnd: true}
}

// RangeFrom matches every slot from start onwards.
func RangeFrom(start int) Index { return Index{kind: indexRange, start: start, hasStart: true} }

// RangeTo matches every slot below end.
func RangeTo(end int) Index { return Index{kind: indexRange, end: end, hasEnd: true} }

// Anywhere matches every slot.
func Anywhere() Index { return Index{kind: indexAnywhere} }

func (idx Index) IsNull() bool { return idx.kind == indexNull }

// Calc resolves the index against the slot pos of total positional slots.
// It returns the concrete slot the index designates when pos is considered,
// and false when the index cannot apply.
func (idx Index) Calc(pos, total int) (int, bool) {
	switch idx.kind {
	case indexForward:
		if idx.n < total {
			return idx.n, true
		}
	case indexBackward:
		if idx.n >= 1 && idx.n < total {
			return total - idx.n, true
		}
	case indexList:
		if pos < total && lo.Contains(idx.list, pos) {
			return pos, true
		}
	case indexExcept:
		if pos < total && !lo.Contains(idx.list, pos) {
			return pos, true
		}
	case indexRange:
		if pos >= total || (idx.hasStart && pos < idx.start) || (idx.hasEnd && pos >= idx.end) {
			return 0, false
		}
		return pos, true
	case indexAnywhere:
		return pos, true
	}
	return 0, false
}

// String returns the help form of the index, the same form ParseIndex accepts.
func (idx Index) String() string {
	switch idx.kind {
	case indexForward:
		return strconv.Itoa(idx.n)
	case indexBackward:
		return "-" + strconv.Itoa(idx.n)
	case indexList:
		return "[" + joinInts(idx.list) + "]"
	case indexExcept:
		return "-[" + joinInts(idx.list) + "]"
	case indexRange:
		var b strings.Builder
		if idx.hasStart {
			b.WriteString(strconv.Itoa(idx.start))
		}
		b.WriteString("..")
		if idx.hasEnd {
			b.WriteString(strconv.Itoa(idx.end))
		}
		return b.String()
	case indexAnywhere:
		return "*"
	}
	return ""
}

func joinInts(vs []int) string {
	return strings.Join(lo.Map(vs, func(v int, _ int) string { return strconv.Itoa(v) }), ", ")
}

// ParseIndex reads the help form of an index: "1", "-1", "[1, 2]", "-[1]",
// "1..", "..3", "1..3", "*". The empty string is the null index.
func ParseIndex(s string) (Index, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Index{}, nil
	case s == "*":
		return Anywhere(), nil
	case strings.HasPrefix(s, "-[") && strings.HasSuffix(s, "]"):
		vs, err := parseInts(s[2 : len(s)-1])
		if err != nil {
			return Index{}, invalidIndex(s, err)
		}
		return Except(vs...), nil
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		vs, err := parseInts(s[1 : len(s)-1])
		if err != nil {
			return Index{}, invalidIndex(s, err)
		}
		return List(vs...), nil
	case strings.Contains(s, ".."):
		parts := strings.SplitN(s, "..", 2)
		idx := Index{kind: indexRange}
		if parts[0] != "" {
			v, err := strconv.Atoi(parts[0])
			if err != nil {
				return Index{}, invalidIndex(s, err)
			}
			idx.start, idx.hasStart = v, true
		}
		if parts[1] != "" {
			v, err := strconv.Atoi(parts[1])
			if err != nil {
				return Index{}, invalidIndex(s, err)
			}
			idx.end, idx.hasEnd = v, true
		}
		return idx, nil
	case strings.HasPrefix(s, "-"):
		v, err := strconv.Atoi(s[1:])
		if err != nil {
			return Index{}, invalidIndex(s, err)
		}
		return Backward(v), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Index{}, invalidIndex(s, err)
	}
	return Forward(v), nil
}

func parseInts(s string) ([]int, error) {
	var vs []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func invalidIndex(s string, err error) error {
	return errors.NewParseError(fmt.Sprintf("invalid index %q: %v", s, err))
}
