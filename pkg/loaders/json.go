package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/lights"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// ErrUnknownType is returned for object or light entries with an unrecognized type
var ErrUnknownType = errors.New("unknown type")

// vec is a JSON [x, y, z] triple
type vec [3]float64

func (v vec) toVec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

// SceneFile is the on-disk JSON description of a scene
type SceneFile struct {
	Camera    *CameraSpec             `json:"camera"`
	Skybox    vec                     `json:"skybox"`
	Materials map[string]MaterialSpec `json:"materials,omitempty"`
	Objects   []ObjectSpec            `json:"objects"`
	Lights    []LightSpec             `json:"lights"`
}

// CameraSpec positions the camera; rotation holds yaw, pitch and roll in degrees
type CameraSpec struct {
	Position vec `json:"position"`
	Rotation vec `json:"rotation"`
}

// MaterialSpec is either a named preset or an explicit material
type MaterialSpec struct {
	Preset       string  `json:"preset,omitempty"`
	Albedo       *vec    `json:"albedo,omitempty"`
	Reflectivity float64 `json:"reflectivity,omitempty"`
	Checkered    bool    `json:"checkered,omitempty"`
}

// ObjectSpec describes one shape. Which fields are used depends on Type.
type ObjectSpec struct {
	Type     string      `json:"type"`
	Material string      `json:"material"`
	Center   vec         `json:"center,omitempty"`   // sphere
	Radius   float64     `json:"radius,omitempty"`   // sphere
	Point    vec         `json:"point,omitempty"`    // plane
	Normal   vec         `json:"normal,omitempty"`   // plane
	Corners  []vec       `json:"corners,omitempty"`  // quad (4), triangle (3), cube (2 opposite corners)
	Infinite bool        `json:"infinite,omitempty"` // quad
	Scale    *[2]float64 `json:"scale,omitempty"`    // quad UV scale
	Vertices []vec       `json:"vertices,omitempty"` // mesh
	Faces    []int       `json:"faces,omitempty"`    // mesh
	File     string      `json:"file,omitempty"`     // mesh, PLY path relative to the scene file
}

// LightSpec describes one light
type LightSpec struct {
	Type     string `json:"type"`
	Position vec    `json:"position,omitempty"` // point
	Color    vec    `json:"color"`
	Corner   vec    `json:"corner,omitempty"` // area
	Edge1    vec    `json:"edge1,omitempty"`  // area
	Edge2    vec    `json:"edge2,omitempty"`  // area
	Name     string `json:"name,omitempty"`   // object
}

// LoadScene reads a JSON scene file. Mesh files are resolved relative to its directory.
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := decodeScene(file, filepath.Dir(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// DecodeScene reads a JSON scene from r. Mesh files are resolved relative to the working directory.
func DecodeScene(r io.Reader) (*scene.Scene, error) {
	return decodeScene(r, ".")
}

func decodeScene(r io.Reader, baseDir string) (*scene.Scene, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var file SceneFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse scene JSON: %w", err)
	}
	if file.Camera == nil {
		return nil, scene.ErrNoCamera
	}

	camera := geometry.NewCamera(file.Camera.Position.toVec3(), file.Camera.Rotation.toVec3())
	b := &sceneBuilder{
		scene:    scene.New(camera, file.Skybox.toVec3()),
		specs:    file.Materials,
		resolved: make(map[string]geometry.MaterialID),
		baseDir:  baseDir,
	}

	for i, obj := range file.Objects {
		shape, err := b.buildObject(obj)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, obj.Type, err)
		}
		b.scene.Add(shape)
	}

	for i, spec := range file.Lights {
		light, err := buildLight(spec)
		if err != nil {
			return nil, fmt.Errorf("light %d (%s): %w", i, spec.Type, err)
		}
		b.scene.AddLight(light)
	}

	return b.scene, nil
}

// sceneBuilder interns materials so each referenced name gets one arena slot
type sceneBuilder struct {
	scene    *scene.Scene
	specs    map[string]MaterialSpec
	resolved map[string]geometry.MaterialID
	baseDir  string
}

// material resolves a name against the scene's material table first, then the presets
func (b *sceneBuilder) material(name string) (geometry.MaterialID, error) {
	if id, ok := b.resolved[name]; ok {
		return id, nil
	}

	var m material.Material
	if spec, ok := b.specs[name]; ok {
		var err error
		if m, err = spec.build(); err != nil {
			return 0, fmt.Errorf("material %q: %w", name, err)
		}
	} else {
		var err error
		if m, err = material.ParseMaterial(name); err != nil {
			return 0, err
		}
	}

	id := b.scene.AddMaterial(m)
	b.resolved[name] = id
	return id, nil
}

func (spec MaterialSpec) build() (material.Material, error) {
	if spec.Preset != "" {
		if spec.Albedo != nil {
			return material.Material{}, fmt.Errorf("preset and albedo are mutually exclusive")
		}
		return material.ParseMaterial(spec.Preset)
	}
	if spec.Albedo == nil {
		return material.Material{}, fmt.Errorf("needs a preset or an albedo")
	}
	return material.New(spec.Albedo.toVec3(), spec.Reflectivity, spec.Checkered), nil
}

func (b *sceneBuilder) buildObject(obj ObjectSpec) (geometry.Shape, error) {
	mat, err := b.material(obj.Material)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(obj.Type) {
	case "sphere":
		if obj.Radius <= 0 {
			return nil, fmt.Errorf("radius must be positive, got %g", obj.Radius)
		}
		return geometry.NewSphere(obj.Center.toVec3(), obj.Radius, mat), nil

	case "plane":
		normal := obj.Normal.toVec3()
		if normal.LengthSquared() == 0 {
			return nil, fmt.Errorf("plane normal must be non-zero")
		}
		return geometry.NewPlane(obj.Point.toVec3(), normal, mat), nil

	case "quad":
		c, err := corners(obj.Corners, 4)
		if err != nil {
			return nil, err
		}
		scale := core.NewVec2(1, 1)
		if obj.Scale != nil {
			scale = core.NewVec2(obj.Scale[0], obj.Scale[1])
		}
		if obj.Infinite {
			return geometry.NewInfiniteQuad(c[0], c[1], c[2], c[3], scale, mat), nil
		}
		quad := geometry.NewQuad(c[0], c[1], c[2], c[3], mat)
		quad.Scale = scale
		return quad, nil

	case "cube":
		c, err := corners(obj.Corners, 2)
		if err != nil {
			return nil, err
		}
		return geometry.NewCube(c[0], c[1], mat), nil

	case "triangle":
		c, err := corners(obj.Corners, 3)
		if err != nil {
			return nil, err
		}
		return geometry.NewTriangle(c[0], c[1], c[2], mat), nil

	case "mesh":
		return b.buildMesh(obj, mat)
	}

	return nil, fmt.Errorf("%w: object %q", ErrUnknownType, obj.Type)
}

func (b *sceneBuilder) buildMesh(obj ObjectSpec, mat geometry.MaterialID) (geometry.Shape, error) {
	if obj.File != "" {
		if len(obj.Vertices) > 0 || len(obj.Faces) > 0 {
			return nil, fmt.Errorf("mesh takes either a file or inline vertices, not both")
		}
		path := obj.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(b.baseDir, path)
		}
		data, err := LoadPLY(path)
		if err != nil {
			return nil, err
		}
		return geometry.NewTriangleMesh(data.Vertices, data.Faces, mat)
	}

	vertices := make([]core.Vec3, len(obj.Vertices))
	for i, v := range obj.Vertices {
		vertices[i] = v.toVec3()
	}
	return geometry.NewTriangleMesh(vertices, obj.Faces, mat)
}

func corners(specs []vec, want int) ([]core.Vec3, error) {
	if len(specs) != want {
		return nil, fmt.Errorf("expected %d corners, got %d", want, len(specs))
	}
	points := make([]core.Vec3, want)
	for i, c := range specs {
		points[i] = c.toVec3()
	}
	return points, nil
}

func buildLight(spec LightSpec) (lights.Light, error) {
	switch lights.LightType(strings.ToLower(spec.Type)) {
	case lights.LightTypePoint:
		return lights.NewPointLight(spec.Position.toVec3(), spec.Color.toVec3()), nil
	case lights.LightTypeArea:
		return &lights.AreaLight{
			Corner: spec.Corner.toVec3(),
			Edge1:  spec.Edge1.toVec3(),
			Edge2:  spec.Edge2.toVec3(),
			Emit:   spec.Color.toVec3(),
		}, nil
	case lights.LightTypeObject:
		return &lights.ObjectLight{Name: spec.Name, Emit: spec.Color.toVec3()}, nil
	}
	return nil, fmt.Errorf("%w: light %q", ErrUnknownType, spec.Type)
}
