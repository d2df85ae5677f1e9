package domain

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one conversation entry as sent to the model.
type Turn struct {
	Role    Role
	Content string
}

// Memory holds the conversation history sent with each generation request,
// trimmed from the front once it exceeds max turns.
type Memory struct {
	turns []Turn
	max   int
}

// NewMemory creates a memory keeping at most max turns. A non-positive max
// falls back to 20, matching the assistant's default window.
func NewMemory(max int) *Memory {
	if max <= 0 {
		max = 20
	}
	return &Memory{max: max}
}

// Add appends a turn and drops the oldest turns beyond the window.
func (m *Memory) Add(role Role, content string) {
	m.turns = append(m.turns, Turn{Role: role, Content: content})
	if len(m.turns) > m.max {
		m.turns = m.turns[len(m.turns)-m.max:]
	}
}

// Turns returns the history oldest-first. The returned slice is shared;
// callers must not mutate it.
func (m *Memory) Turns() []Turn {
	return m.turns
}

// Len reports the number of retained turns.
func (m *Memory) Len() int {
	return len(m.turns)
}

// Clear resets the conversation history.
func (m *Memory) Clear() {
	m.turns = nil
}
