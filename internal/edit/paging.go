package edit

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/vovakirdan/game-maker/internal/game"
)

// MaxEditableCount bounds how many "{Var N}" slots a page can show.
const MaxEditableCount = 32

// MaxVarPerPage returns the largest N for which a member shows "{variable N}",
// which is how many values of the variable fit on one page.
func MaxVarPerPage(members []game.Member, variable string) int {
	var names []string
	for _, m := range members {
		if strings.HasPrefix(m.Text.Contents, "{") && strings.Contains(m.Text.Contents, variable) {
			names = append(names, m.Text.Contents)
		}
	}
	for j := MaxEditableCount; j >= 1; j-- {
		if slices.Contains(names, fmt.Sprintf("{%s %d}", variable, j)) {
			return j
		}
	}
	return 0
}

// PaddedLen rounds len up past the last partial page.
func PaddedLen(n, perPage int) int {
	if perPage <= 0 || n%perPage == 0 {
		return n
	}
	return n + perPage
}

// OffsetForPage returns the index of the first item on page. Pages wrap in
// both directions. Fewer items than one page give offset 0.
func OffsetForPage(page, perPage, n int) int {
	if perPage <= 0 {
		return 0
	}
	whole := n / perPage * perPage
	if whole == 0 {
		return 0
	}
	off := (page * perPage) % whole
	if off < 0 {
		off += whole
	}
	return off
}

// IndexFromMemberText parses the N of "{prefix N}". N is one based as shown.
func IndexFromMemberText(prefix, text string) (int, bool) {
	rest, ok := strings.CutPrefix(text, "{"+prefix+" ")
	if !ok {
		return 0, false
	}
	rest, ok = strings.CutSuffix(rest, "}")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
