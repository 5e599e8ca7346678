package demo

import (
	"fmt"
	"strings"

	"github.com/kbukum/streamkit/errors"
)

// Engine names a stream engine.
type Engine string

const (
	EnginePull   Engine = "pull"
	EnginePush   Engine = "push"
	EngineStaged Engine = "staged"
)

// EngineAll selects every engine in ParseEngines.
const EngineAll = "all"

// Engines returns every engine in display order.
func Engines() []Engine {
	return []Engine{EnginePull, EnginePush, EngineStaged}
}

func (e Engine) String() string { return string(e) }

// ParseEngine returns the engine named s, ignoring case and surrounding space.
func ParseEngine(s string) (Engine, error) {
	e := Engine(strings.ToLower(strings.TrimSpace(s)))
	switch e {
	case EnginePull, EnginePush, EngineStaged:
		return e, nil
	default:
		return "", errors.InvalidInput("engine", fmt.Sprintf("unknown engine %q (want pull, push, staged or all)", s))
	}
}

// ParseEngines parses a comma-separated engine list. An empty list or
// "all" selects every engine.
func ParseEngines(s string) ([]Engine, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, EngineAll) {
		return Engines(), nil
	}
	var engines []Engine
	for _, part := range strings.Split(s, ",") {
		e, err := ParseEngine(part)
		if err != nil {
			return nil, err
		}
		engines = append(engines, e)
	}
	return engines, nil
}
