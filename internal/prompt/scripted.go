package prompt

import (
	"context"
	"sync"
)

// Scripted answers questions from a fixed list, in order. When the list
// runs out every question takes its default. Questions are recorded.
type Scripted struct {
	mu        sync.Mutex
	answers   []string
	confirms  []bool
	Questions []string
	Err       error
}

// NewScripted returns a prompter that replays answers for Ask
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

// WithConfirms queues answers for Confirm
func (s *Scripted) WithConfirms(answers ...bool) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirms = append(s.confirms, answers...)
	return s
}

func (s *Scripted) Ask(_ context.Context, question, def string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Questions = append(s.Questions, question)
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.answers) == 0 {
		return def, nil
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answerOr(answer, def), nil
}

func (s *Scripted) Confirm(_ context.Context, question string, def bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Questions = append(s.Questions, question)
	if s.Err != nil {
		return false, s.Err
	}
	if len(s.confirms) == 0 {
		return def, nil
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}
