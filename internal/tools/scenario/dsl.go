package scenario

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is a named list of steps loaded from a Lua script.
type Scenario struct {
	Name  string
	Steps []Step

	// pendingError is set by expect_error and attached to the next step.
	pendingError string
}

// Step is one scenario action or expectation.
type Step struct {
	Kind string
	Args map[string]any
	// ExpectError is the error code the step must fail with, if any.
	ExpectError string
}

// LoadScenarioFromFile runs a Lua script and returns the Scenario it builds.
// The script must return the Scenario value.
func LoadScenarioFromFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)
	registerLuaTypes(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if scenario.pendingError != "" {
		return nil, fmt.Errorf("expect_error(%q) is not followed by a step", scenario.pendingError)
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerLuaTypes(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)

	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "set", Function: scenarioSet},
	{Name: "damage", Function: amountStep("damage")},
	{Name: "heal", Function: amountStep("heal")},
	{Name: "sever", Function: partStep("sever")},
	{Name: "attach", Function: partStep("attach")},
	{Name: "reset", Function: scenarioReset},
	{Name: "expect_part", Function: scenarioExpectPart},
	{Name: "expect_severed", Function: scenarioExpectSevered},
	{Name: "expect_total", Function: scenarioExpectTotal},
	{Name: "expect_alive", Function: scenarioExpectAlive},
	{Name: "expect_dead", Function: scenarioExpectDead},
	{Name: "expect_error", Function: scenarioExpectError},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

func scenarioSet(state *lua.State) int {
	scenario := checkScenario(state)
	part := lua.CheckString(state, 2)
	value := lua.CheckInteger(state, 3)
	appendStep(scenario, "set", map[string]any{"part": part, "value": value})
	return returnScenario(state)
}

func amountStep(kind string) lua.Function {
	return func(state *lua.State) int {
		scenario := checkScenario(state)
		part := lua.CheckString(state, 2)
		amount := lua.CheckInteger(state, 3)
		appendStep(scenario, kind, map[string]any{"part": part, "amount": amount})
		return returnScenario(state)
	}
}

func partStep(kind string) lua.Function {
	return func(state *lua.State) int {
		scenario := checkScenario(state)
		part := lua.CheckString(state, 2)
		appendStep(scenario, kind, map[string]any{"part": part})
		return returnScenario(state)
	}
}

func scenarioReset(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "reset", nil)
	return returnScenario(state)
}

func scenarioExpectPart(state *lua.State) int {
	scenario := checkScenario(state)
	part := lua.CheckString(state, 2)
	value := lua.CheckInteger(state, 3)
	appendStep(scenario, "expect_part", map[string]any{"part": part, "value": value})
	return returnScenario(state)
}

func scenarioExpectSevered(state *lua.State) int {
	scenario := checkScenario(state)
	part := lua.CheckString(state, 2)
	severed := true
	if state.TypeOf(3) != lua.TypeNone && state.TypeOf(3) != lua.TypeNil {
		lua.CheckType(state, 3, lua.TypeBoolean)
		severed = state.ToBoolean(3)
	}
	appendStep(scenario, "expect_severed", map[string]any{"part": part, "severed": severed})
	return returnScenario(state)
}

func scenarioExpectTotal(state *lua.State) int {
	scenario := checkScenario(state)
	value := lua.CheckInteger(state, 2)
	appendStep(scenario, "expect_total", map[string]any{"value": value})
	return returnScenario(state)
}

func scenarioExpectAlive(state *lua.State) int {
	scenario := checkScenario(state)
	appendStep(scenario, "expect_alive", nil)
	return returnScenario(state)
}

func scenarioExpectDead(state *lua.State) int {
	scenario := checkScenario(state)
	cause := lua.OptString(state, 2, "")
	appendStep(scenario, "expect_dead", map[string]any{"cause": cause})
	return returnScenario(state)
}

func scenarioExpectError(state *lua.State) int {
	scenario := checkScenario(state)
	code := strings.TrimSpace(lua.CheckString(state, 2))
	if code == "" {
		lua.ArgumentError(state, 2, "error code expected")
		return 0
	}
	if scenario.pendingError != "" {
		lua.Errorf(state, "expect_error(%s) already pending", scenario.pendingError)
		return 0
	}
	scenario.pendingError = code
	return returnScenario(state)
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func returnScenario(state *lua.State) int {
	state.PushValue(1)
	return 1
}

func appendStep(scenario *Scenario, kind string, args map[string]any) {
	if scenario == nil {
		return
	}
	if args == nil {
		args = map[string]any{}
	}
	scenario.Steps = append(scenario.Steps, Step{Kind: kind, Args: args, ExpectError: scenario.pendingError})
	scenario.pendingError = ""
}
