package lights

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// AreaLight is a declared light kind without sampling support.
// Scenes may hold one, but any attempt to light with it panics.
type AreaLight struct {
	Corner core.Vec3
	Edge1  core.Vec3
	Edge2  core.Vec3
	Emit   core.Vec3
}

// ObjectLight marks an emissive object without sampling support.
// Scenes may hold one, but any attempt to light with it panics.
type ObjectLight struct {
	Name string
	Emit core.Vec3
}

func unimplemented(kind LightType) {
	panic(fmt.Sprintf("lights: %s light is not implemented", kind))
}

func (a *AreaLight) Type() LightType { return LightTypeArea }

func (a *AreaLight) Position() core.Vec3 { unimplemented(LightTypeArea); return core.Vec3{} }

func (a *AreaLight) Color() core.Vec3 { unimplemented(LightTypeArea); return core.Vec3{} }

func (a *AreaLight) Intensity() float64 { unimplemented(LightTypeArea); return 0 }

func (o *ObjectLight) Type() LightType { return LightTypeObject }

func (o *ObjectLight) Position() core.Vec3 { unimplemented(LightTypeObject); return core.Vec3{} }

func (o *ObjectLight) Color() core.Vec3 { unimplemented(LightTypeObject); return core.Vec3{} }

func (o *ObjectLight) Intensity() float64 { unimplemented(LightTypeObject); return 0 }
