package rules

import (
	"encoding/json"
	"fmt"
)

// Slot counts of a todo list.
const (
	ChoreCount           = 6
	QuestionCount        = 6
	DemandCount          = 6
	AnimationSpriteCount = 8
)

// Chore is a rule: when every question holds, every demand runs.
type Chore struct {
	Questions [QuestionCount]Question
	Demands   [DemandCount]Demand
}

// DefaultChore returns a chore with every slot empty.
func DefaultChore() Chore {
	var c Chore
	for i := range c.Questions {
		c.Questions[i] = NoQuestion
	}
	for i := range c.Demands {
		c.Demands[i] = NoDemand
	}
	return c
}

// DefaultTodoList returns ChoreCount empty chores.
func DefaultTodoList() []Chore {
	list := make([]Chore, ChoreCount)
	for i := range list {
		list[i] = DefaultChore()
	}
	return list
}

// Clone returns a deep copy.
func (c Chore) Clone() Chore {
	out := c
	for i, d := range c.Demands {
		out.Demands[i] = CloneDemand(d)
	}
	return out
}

// Equal compares two chores slot by slot.
func (c Chore) Equal(o Chore) bool {
	for i := range c.Questions {
		if questionOrNone(c.Questions[i]) != questionOrNone(o.Questions[i]) {
			return false
		}
	}
	for i := range c.Demands {
		if !DemandsEqual(c.Demands[i], o.Demands[i]) {
			return false
		}
	}
	return true
}

// HasQuestions reports whether any question slot is filled.
func (c Chore) HasQuestions() bool {
	for _, q := range c.Questions {
		if !IsNoQuestion(q) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether every slot is empty.
func (c Chore) IsEmpty() bool {
	if c.HasQuestions() {
		return false
	}
	for _, d := range c.Demands {
		if !IsNoDemand(d) {
			return false
		}
	}
	return true
}

func questionOrNone(q Question) Question {
	if q == nil {
		return NoQuestion
	}
	return q
}

// CloneTodoList deep copies a todo list.
func CloneTodoList(list []Chore) []Chore {
	out := make([]Chore, len(list))
	for i, c := range list {
		out[i] = c.Clone()
	}
	return out
}

// RenameInTodoList points every by-name reference to from at to instead.
func RenameInTodoList(list []Chore, from, to string) {
	for ci := range list {
		chore := &list[ci]
		for i, q := range chore.Questions {
			switch v := q.(type) {
			case IsSwitchSetTo:
				if v.Name == from {
					v.Name = to
					chore.Questions[i] = v
				}
			case IsCollidingWith:
				if m, ok := v.With.(WithMember); ok && m.Name == from {
					chore.Questions[i] = IsCollidingWith{With: WithMember{Name: to}}
				}
			}
		}
		for i, d := range chore.Demands {
			md, ok := d.(MotionDemand)
			if !ok {
				continue
			}
			switch m := md.Motion.(type) {
			case JumpTo:
				if loc, ok := m.Location.(ToMember); ok && loc.Name == from {
					chore.Demands[i] = MotionDemand{Motion: JumpTo{Location: ToMember{Name: to}}}
				}
			case Target:
				if m.Name == from {
					m.Name = to
					chore.Demands[i] = MotionDemand{Motion: m}
				}
			case AttachFromPositions:
				if m.Name == from {
					chore.Demands[i] = MotionDemand{Motion: AttachFromPositions{Name: to}}
				}
			}
		}
	}
}

// SavedChore is a chore as stored in a cartridge: trailing empty slots are
// left out.
type SavedChore struct {
	Questions []Question `json:"questions"`
	Demands   []Demand   `json:"demands"`
}

func (s *SavedChore) UnmarshalJSON(data []byte) error {
	var raw struct {
		Questions []json.RawMessage `json:"questions"`
		Demands   []json.RawMessage `json:"demands"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("chore: %w", err)
	}
	questions, err := decodeQuestions(raw.Questions)
	if err != nil {
		return fmt.Errorf("chore: %w", err)
	}
	demands, err := decodeDemands(raw.Demands)
	if err != nil {
		return fmt.Errorf("chore: %w", err)
	}
	s.Questions, s.Demands = questions, demands
	return nil
}

// TrimTodoList drops trailing empty questions and demands from each chore and
// then trailing chores left with nothing.
func TrimTodoList(list []Chore) []SavedChore {
	out := make([]SavedChore, 0, len(list))
	for _, c := range list {
		qn := len(c.Questions)
		for qn > 0 && IsNoQuestion(c.Questions[qn-1]) {
			qn--
		}
		dn := len(c.Demands)
		for dn > 0 && IsNoDemand(c.Demands[dn-1]) {
			dn--
		}
		saved := SavedChore{
			Questions: make([]Question, 0, qn),
			Demands:   make([]Demand, 0, dn),
		}
		for _, q := range c.Questions[:qn] {
			saved.Questions = append(saved.Questions, questionOrNone(q))
		}
		for _, d := range c.Demands[:dn] {
			if d == nil {
				d = NoDemand
			}
			saved.Demands = append(saved.Demands, CloneDemand(d))
		}
		out = append(out, saved)
	}
	for len(out) > 0 {
		last := out[len(out)-1]
		if len(last.Questions) > 0 || len(last.Demands) > 0 {
			break
		}
		out = out[:len(out)-1]
	}
	return out
}

// PadTodoList expands saved chores to ChoreCount full chores. Extra slots are
// ignored.
func PadTodoList(saved []SavedChore) []Chore {
	list := DefaultTodoList()
	for ci := 0; ci < ChoreCount && ci < len(saved); ci++ {
		for qi := 0; qi < QuestionCount && qi < len(saved[ci].Questions); qi++ {
			list[ci].Questions[qi] = questionOrNone(saved[ci].Questions[qi])
		}
		for di := 0; di < DemandCount && di < len(saved[ci].Demands); di++ {
			if d := saved[ci].Demands[di]; d != nil {
				list[ci].Demands[di] = CloneDemand(d)
			}
		}
	}
	return list
}
