package model

import (
	"errors"
	"fmt"
	"sort"
)

// FlatQuestion is a question annotated with the names of the containers it
// sits in. Position is its zero-based index in the canonical sequence.
type FlatQuestion struct {
	Question
	GroupName    string `json:"groupName"`
	SubgroupName string `json:"subgroupName"`
	Position     int    `json:"position"`
}

// Flatten walks the assessment depth-first: groups, then subgroups within a
// group, then questions within a subgroup, each level by OrderIndex with ties
// broken by ID. Storage order does not matter. Options are returned in the
// same order.
func Flatten(a *Assessment) []FlatQuestion {
	if a == nil {
		return nil
	}
	var out []FlatQuestion
	for _, g := range sortedGroups(a.Groups) {
		for _, sg := range sortedSubgroups(g.Subgroups) {
			for _, q := range sortedQuestions(sg.Questions) {
				q.Options = SortedOptions(q.Options)
				out = append(out, FlatQuestion{
					Question:     q,
					GroupName:    g.Name,
					SubgroupName: sg.Name,
					Position:     len(out),
				})
			}
		}
	}
	return out
}

// FindQuestion returns the question with the given id, or nil.
func FindQuestion(a *Assessment, questionID uint) *Question {
	if a == nil {
		return nil
	}
	for gi := range a.Groups {
		for si := range a.Groups[gi].Subgroups {
			qs := a.Groups[gi].Subgroups[si].Questions
			for qi := range qs {
				if qs[qi].ID == questionID {
					return &qs[qi]
				}
			}
		}
	}
	return nil
}

// FindOption returns the option with the given key, or nil.
func (q *Question) FindOption(key string) *Option {
	for i := range q.Options {
		if q.Options[i].Key == key {
			return &q.Options[i]
		}
	}
	return nil
}

// MaxScore is the highest option score of the question. ok is false for a
// question without options.
func (q *Question) MaxScore() (max int, ok bool) {
	for i, o := range q.Options {
		if i == 0 || o.Score > max {
			max = o.Score
		}
	}
	return max, len(q.Options) > 0
}

// QuestionCount is the number of questions across all groups.
func (a *Assessment) QuestionCount() int {
	n := 0
	for _, g := range a.Groups {
		for _, sg := range g.Subgroups {
			n += len(sg.Questions)
		}
	}
	return n
}

var ErrInvalidQuestionnaire = errors.New("invalid questionnaire")

// Validate checks the structural invariants every stored questionnaire
// must hold.
func (a *Assessment) Validate() error {
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidQuestionnaire)
	}
	if a.QuestionCount() == 0 {
		return fmt.Errorf("%w: at least one question is required", ErrInvalidQuestionnaire)
	}
	for _, g := range a.Groups {
		for _, sg := range g.Subgroups {
			for i := range sg.Questions {
				if err := sg.Questions[i].Validate(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (q *Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("%w: question text is required", ErrInvalidQuestionnaire)
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("%w: question %q has no options", ErrInvalidQuestionnaire, q.Text)
	}
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if o.Score < 0 {
			return fmt.Errorf("%w: option %q has a negative score", ErrInvalidQuestionnaire, o.Key)
		}
		if o.Key == "" {
			return fmt.Errorf("%w: option key is required", ErrInvalidQuestionnaire)
		}
		if seen[o.Key] {
			return fmt.Errorf("%w: duplicate option key %q", ErrInvalidQuestionnaire, o.Key)
		}
		seen[o.Key] = true
	}
	return nil
}

// OptionKey gives the conventional short code for the i-th option: a, b, ... z, aa, ab ...
func OptionKey(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if i < len(letters) {
		return letters[i : i+1]
	}
	return OptionKey(i/len(letters)-1) + letters[i%len(letters):i%len(letters)+1]
}

func sortedGroups(in []Group) []Group {
	out := append([]Group(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func sortedSubgroups(in []Subgroup) []Subgroup {
	out := append([]Subgroup(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func sortedQuestions(in []Question) []Question {
	out := append([]Question(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func SortedOptions(in []Option) []Option {
	out := append([]Option(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})
	return out
}
