package workflow

import (
	"slices"

	ai "github.com/spetersoncode/scribe"
)

// State is the append-only conversation threaded through a workflow run.
//
// A State is a value: Append returns a new State and never touches the
// receiver, so a State captured mid-run stays valid for inspection.
type State struct {
	messages []ai.Message
}

// NewState creates a state holding copies of msgs.
func NewState(msgs ...ai.Message) State {
	return State{messages: slices.Clone(msgs)}
}

// Append returns a new State with msgs added after the existing messages.
// Appending nothing returns a State with the same content.
func (s State) Append(msgs ...ai.Message) State {
	if len(msgs) == 0 {
		return s
	}
	// Always allocate: sharing spare capacity with the receiver would let two
	// appends to the same State overwrite each other.
	out := make([]ai.Message, 0, len(s.messages)+len(msgs))
	out = append(out, s.messages...)
	out = append(out, msgs...)
	return State{messages: out}
}

// Latest returns the most recent message, or ErrEmptyState.
func (s State) Latest() (ai.Message, error) {
	if len(s.messages) == 0 {
		return ai.Message{}, ErrEmptyState
	}
	return s.messages[len(s.messages)-1], nil
}

// Messages returns a copy of the message history in order.
func (s State) Messages() []ai.Message {
	return slices.Clone(s.messages)
}

// Len returns the number of messages.
func (s State) Len() int { return len(s.messages) }
