package orchestrator

import (
	"sync"

	pkgLog "multilingual-chatbot/pkg/log"
)

// Orchestrator produces replies for one session and keeps its memory.
// All calls on one instance are serialized.
type Orchestrator struct {
	mu     sync.Mutex
	mode   Mode
	model  *ModelConfig
	memory *memory
	l      pkgLog.Logger
}

// New builds an orchestrator. The mode is fixed here: model-backed when model
// carries a Generator, fallback otherwise. seed preloads memory, oldest first.
func New(l pkgLog.Logger, model *ModelConfig, memoryTurns int, seed []Turn) *Orchestrator {
	o := &Orchestrator{
		mode:   ModeFallback,
		memory: newMemory(memoryTurns),
		l:      l,
	}
	if model != nil && model.Generator != nil {
		o.mode = ModeModelBacked
		o.model = model
	}
	for _, t := range seed {
		o.memory.add(t)
	}
	return o
}
