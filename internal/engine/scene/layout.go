package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Layout is a named, ordered set of entities. Entity order is draw order.
type Layout struct {
	Name     string
	Entities []Entity
	// Fog reports whether this variant is lit with distance fog.
	Fog bool
	// Skybox holds the cube face paths in +X, -X, +Y, -Y, +Z, -Z order.
	Skybox [6]string
}

// Model paths relative to the asset directory.
const (
	RobotBodyModel  = "models/robot/robot_body.obj"
	RobotArmLModel  = "models/robot/robot_armL.obj"
	RobotArmRModel  = "models/robot/robot_armR.obj"
	RobotHeadModel  = "models/robot/robot_head.obj"
	SpireBaseModel  = "models/spirebase/spirebase.obj"
	SpireTopModel   = "models/spiretop/spiretop.obj"
	BuildingModel   = "models/buildings/Building01.obj"
	FloorModel      = "models/floor/floor.obj"
	LayoutPlaza     = "plaza"
	LayoutCourtyard = "courtyard"
)

// DefaultSkybox is the cube face set shipped with the assets.
var DefaultSkybox = [6]string{
	"cubemap/posx.png",
	"cubemap/negx.png",
	"cubemap/posy.png",
	"cubemap/negy.png",
	"cubemap/posz.png",
	"cubemap/negz.png",
}

// RobotStarts are the base offsets of the four walking robots.
var RobotStarts = [4]mgl32.Vec3{
	{-8.472, 0, -4.784},
	{-12.472, 0, -4.784},
	{-8.472, 0, -8.784},
	{-12.472, 0, -8.784},
}

// Robot returns the parts of one walking robot: body, left arm, right arm
// and head. Part IDs are prefixed with name.
func Robot(name string, offset mgl32.Vec3) []Entity {
	body := name + ".body"
	return []Entity{
		{ID: body, Model: RobotBodyModel, Kind: WalkingRoot, Offset: offset},
		{ID: name + ".armL", Model: RobotArmLModel, Kind: AttachedPart, Parent: body, Motion: MotionArmSwing},
		{ID: name + ".armR", Model: RobotArmRModel, Kind: AttachedPart, Parent: body, Motion: MotionArmSwing},
		{ID: name + ".head", Model: RobotHeadModel, Kind: AttachedPart, Parent: body},
	}
}

func robots() []Entity {
	var out []Entity
	for i, start := range RobotStarts {
		out = append(out, Robot(fmt.Sprintf("robot%d", i+1), start)...)
	}
	return out
}

func spire() []Entity {
	return []Entity{
		{ID: "spire.top", Model: SpireTopModel, Kind: Static, Offset: mgl32.Vec3{70, 0, 0}, Scale: mgl32.Vec3{2, 1, 1}},
		{ID: "spire.base", Model: SpireBaseModel, Kind: Static},
	}
}

func floor() Entity {
	return Entity{ID: "floor", Model: FloorModel, Kind: Static}
}

// PlazaLayout is the full scene: robots, spire, two buildings and the floor,
// under fog.
func PlazaLayout() Layout {
	ents := robots()
	ents = append(ents, spire()...)
	ents = append(ents,
		Entity{
			ID: "building1", Model: BuildingModel, Kind: Static,
			Offset:   mgl32.Vec3{-25, -1, 0},
			Rotation: Rotation{Angle: 1.5708, Axis: mgl32.Vec3{0, 1, 0}},
			Scale:    mgl32.Vec3{4, 2, 2},
		},
		Entity{
			ID: "building2", Model: BuildingModel, Kind: Static,
			Offset: mgl32.Vec3{0, -1, -25},
			Scale:  mgl32.Vec3{4, 2, 2},
		},
		floor(),
	)
	return Layout{Name: LayoutPlaza, Entities: ents, Fog: true, Skybox: DefaultSkybox}
}

// CourtyardLayout is the smaller variant without buildings or fog.
func CourtyardLayout() Layout {
	ents := robots()
	ents = append(ents, spire()...)
	ents = append(ents, floor())
	return Layout{Name: LayoutCourtyard, Entities: ents, Skybox: DefaultSkybox}
}

// LayoutByName returns a built-in layout. Names are case-insensitive.
func LayoutByName(name string) (Layout, error) {
	switch strings.ToLower(name) {
	case LayoutPlaza, "":
		return PlazaLayout(), nil
	case LayoutCourtyard:
		return CourtyardLayout(), nil
	default:
		return Layout{}, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

// Models returns the distinct model paths in first-use order.
func (l Layout) Models() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range l.Entities {
		if e.Model == "" || seen[e.Model] {
			continue
		}
		seen[e.Model] = true
		out = append(out, e.Model)
	}
	return out
}
