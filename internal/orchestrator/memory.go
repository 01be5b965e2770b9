package orchestrator

import "strings"

// memory keeps the last limit turns in arrival order.
type memory struct {
	limit int
	turns []Turn
}

func newMemory(limit int) *memory {
	if limit <= 0 {
		limit = DefaultMemoryTurns
	}
	return &memory{limit: limit, turns: make([]Turn, 0, limit)}
}

func (m *memory) add(t Turn) {
	if len(m.turns) == m.limit {
		copy(m.turns, m.turns[1:])
		m.turns = m.turns[:m.limit-1]
	}
	m.turns = append(m.turns, t)
}

func (m *memory) clear() {
	m.turns = m.turns[:0]
}

func (m *memory) snapshot() []Turn {
	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// render formats memory as "User: ...\nAssistant: ..." lines.
func (m *memory) render() string {
	var b strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(UserPrefix)
		b.WriteString(t.UserInput)
		b.WriteByte('\n')
		b.WriteString(AssistantPrefix)
		b.WriteString(t.BotResponse)
	}
	return b.String()
}
