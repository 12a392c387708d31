package core

import (
	"strings"
	"unicode/utf8"
)

// spelling is one way a record can be written on the command line.
type spelling struct {
	text  string
	alias bool
}

// spellings lists what the scan matches for records of any of the styles:
// names unless ignored, then aliases unless ignored.
func (p *Parser) spellings(styles ...Style) []spelling {
	var out []spelling
	for _, opt := range p.opts {
		if !matchesAny(opt, styles) {
			continue
		}
		if !opt.IgnoreName() {
			out = append(out, spelling{text: opt.Name()})
		}
		if !opt.IgnoreAlias() {
			for _, a := range opt.Alias() {
				out = append(out, spelling{text: a, alias: true})
			}
		}
	}
	return out
}

func matchesAny(opt *Opt, styles []Style) bool {
	for _, s := range styles {
		if opt.MatStyle(s) {
			return true
		}
	}
	return false
}

// suggest returns the spelling the user most likely meant by typed, or ""
// when nothing is close. Dashes and case are ignored. A spelling that typed
// is a prefix of ranks first; otherwise the smallest edit distance within
// max(2, len/3) wins. Names beat aliases at equal rank.
func suggest(typed string, cands []spelling) string {
	key := fold(typed)
	if key == "" {
		return ""
	}
	limit := max(2, utf8.RuneCountInString(key)/3)

	best, bestScore := "", -1
	for _, c := range cands {
		ck := fold(c.text)
		var score int
		if strings.HasPrefix(ck, key) {
			score = 0
		} else if d := editDistance(key, ck); d <= limit {
			score = 2 * d
		} else {
			continue
		}
		if c.alias {
			score++
		}
		if bestScore == -1 || score < bestScore {
			best, bestScore = c.text, score
		}
	}
	return best
}

func fold(s string) string {
	return strings.ToLower(strings.TrimLeft(s, "-"))
}

// editDistance is the optimal string alignment distance between a and b:
// insertions, deletions, substitutions and swaps of adjacent runes each
// cost one.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// rows i-2, i-1 and i of the distance table
	twoBack := make([]int, len(rb)+1)
	back := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range back {
		back[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(back[j]+1, cur[j-1]+1, back[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				cur[j] = min(cur[j], twoBack[j-2]+1)
			}
		}
		twoBack, back, cur = back, cur, twoBack
	}
	return back[len(rb)]
}
