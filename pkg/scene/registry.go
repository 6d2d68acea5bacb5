package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by ByName for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

var builtins = map[string]func() *Scene{
	"default":  NewDefaultScene,
	"cornell":  NewCornellScene,
	"showcase": NewShowcaseScene,
}

// Names returns the names of the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the built-in scene with the given name
func ByName(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return build(), nil
}
