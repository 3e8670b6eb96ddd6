package rules

import (
	"fmt"
	"log"
	"sync"

	"github.com/Shopify/go-lua"

	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
)

const predicateGlobal = "predicate"

// blockedGlobals are base library functions that read files or compile new
// chunks. Predicates only see value and severed.
var blockedGlobals = []string{"dofile", "loadfile", "load"}

// luaPredicate evaluates a compiled Lua chunk against a part record.
// A Lua state is not safe for concurrent use, so calls are serialized.
type luaPredicate struct {
	name  string
	mu    sync.Mutex
	state *lua.State
}

func compileLua(name, source string) (*luaPredicate, error) {
	state := lua.NewState()
	lua.BaseOpen(state)
	state.Pop(1)
	for _, name := range blockedGlobals {
		state.PushNil()
		state.SetGlobal(name)
	}

	chunk := "return function(value, severed)\n" + source + "\nend"
	if err := lua.LoadString(state, chunk); err != nil {
		return nil, fmt.Errorf("%s: compile lua: %w", name, err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("%s: load lua: %w", name, err)
	}
	if state.TypeOf(-1) != lua.TypeFunction {
		state.Pop(1)
		return nil, fmt.Errorf("%s: lua chunk did not produce a function", name)
	}
	state.SetGlobal(predicateGlobal)
	return &luaPredicate{name: name, state: state}, nil
}

// Eval runs the predicate. Runtime errors and non-boolean results count as
// not firing and are logged.
func (p *luaPredicate) Eval(rec body.PartRecord) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.Global(predicateGlobal)
	p.state.PushInteger(rec.Value)
	p.state.PushBoolean(rec.Severed)
	if err := p.state.ProtectedCall(2, 1, 0); err != nil {
		log.Printf("rules: lua predicate %s: %v", p.name, err)
		p.state.SetTop(0)
		return false
	}
	defer p.state.Pop(1)
	if p.state.TypeOf(-1) != lua.TypeBoolean {
		log.Printf("rules: lua predicate %s returned %s, want boolean", p.name, lua.TypeNameOf(p.state, -1))
		return false
	}
	return p.state.ToBoolean(-1)
}
