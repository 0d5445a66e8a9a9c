// Package transcript models an append-only conversation history.
package transcript

import "fmt"

// Role identifies the author of a turn in the conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role belongs to the fixed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Turn is one role-tagged message. Content may be empty.
type Turn struct {
	Role    Role
	Content string
}

// NewTurn builds a turn, rejecting roles outside the fixed set.
func NewTurn(role Role, content string) (Turn, error) {
	if !role.Valid() {
		return Turn{}, fmt.Errorf("invalid role %q", role)
	}
	return Turn{Role: role, Content: content}, nil
}

// Transcript is the ordered conversation history handed to the model on
// every generate call. Turns are only ever appended; the leading system
// turn is fixed at construction.
type Transcript struct {
	turns []Turn
}

// New seeds a transcript with a single system turn.
func New(systemPrompt string) *Transcript {
	return &Transcript{
		turns: []Turn{{Role: RoleSystem, Content: systemPrompt}},
	}
}

// Append validates the role and adds a turn at the end.
func (t *Transcript) Append(role Role, content string) error {
	turn, err := NewTurn(role, content)
	if err != nil {
		return err
	}
	t.turns = append(t.turns, turn)
	return nil
}

// AppendUser adds a user turn.
func (t *Transcript) AppendUser(content string) {
	t.turns = append(t.turns, Turn{Role: RoleUser, Content: content})
}

// AppendAssistant adds an assistant turn.
func (t *Transcript) AppendAssistant(content string) {
	t.turns = append(t.turns, Turn{Role: RoleAssistant, Content: content})
}

// Turns returns a copy of the history in order.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns, including the system turn.
func (t *Transcript) Len() int {
	return len(t.turns)
}
