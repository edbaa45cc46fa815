package edit

import (
	"fmt"

	"github.com/vovakirdan/game-maker/internal/rules"
)

// ChoreLabel returns the text shown by a "{Chore N}" member for the selected
// member's todo list.
func ChoreLabel(text string, todo []rules.Chore) (string, bool) {
	for i := range min(rules.ChoreCount, len(todo)) {
		if text != fmt.Sprintf("{Chore %d}", i+1) {
			continue
		}
		chore := todo[i]
		first := chore.Questions[0]
		switch {
		case !rules.IsNoQuestion(first):
			return rules.DescribeQuestion(first) + "...", true
		case chore.IsEmpty():
			return "New", true
		case !chore.HasQuestions():
			return "Every Frame", true
		default:
			return "...", true
		}
	}
	return "", false
}

// QuestionLabel returns the text shown by a "{Question N}" member.
func QuestionLabel(text string, chore rules.Chore) (string, bool) {
	for i, q := range chore.Questions {
		if text != fmt.Sprintf("{Question %d}", i+1) {
			continue
		}
		if rules.IsNoQuestion(q) {
			return "New", true
		}
		return rules.DescribeQuestion(q) + "?", true
	}
	return "", false
}

// DemandLabel returns the text shown by a "{Demand N}" member.
func DemandLabel(text string, chore rules.Chore) (string, bool) {
	for i, d := range chore.Demands {
		if text != fmt.Sprintf("{Demand %d}", i+1) {
			continue
		}
		if rules.IsNoDemand(d) {
			return "New", true
		}
		return rules.DescribeDemand(d) + "!", true
	}
	return "", false
}
