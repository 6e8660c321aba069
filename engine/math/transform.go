package math

import "github.com/go-gl/mathgl/mgl32"

/**
 * @brief Represents the local transform of a scene node. Directions follow
 * a right-handed convention where the node looks down its local -Z axis.
 */
type Transform struct {
	/** @brief The position relative to the parent. */
	Position mgl32.Vec3
	/** @brief The rotation relative to the parent. */
	Rotation mgl32.Quat
	/** @brief The scale relative to the parent. */
	Scale mgl32.Vec3
}

// Identity returns a transform at the origin with no rotation and unit scale.
func Identity() Transform {
	return Transform{
		Position: mgl32.Vec3{},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func TransformFromPosition(position mgl32.Vec3) Transform {
	t := Identity()
	t.Position = position
	return t
}

func TransformFromPositionRotation(position mgl32.Vec3, rotation mgl32.Quat) Transform {
	t := Identity()
	t.Position = position
	t.Rotation = rotation
	return t
}

// LookingAt places a transform at position, oriented towards target with
// world +Y as up and no roll. If target equals position the rotation is identity.
func LookingAt(position, target mgl32.Vec3) Transform {
	direction := NormalizeOrZero(target.Sub(position))
	if direction == (mgl32.Vec3{}) {
		return TransformFromPosition(position)
	}
	yaw := katan2(-direction.X(), -direction.Z())
	pitch := kasin(Clamp(direction.Y(), -1, 1))
	rotation := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0}).Mul(mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0}))
	return TransformFromPositionRotation(position, rotation)
}

func (t *Transform) Translate(translation mgl32.Vec3) {
	t.Position = t.Position.Add(translation)
}

func (t *Transform) Rotate(rotation mgl32.Quat) {
	t.Rotation = t.Rotation.Mul(rotation)
}

func (t Transform) IsIdentity(tolerance float32) bool {
	return t.ApproxEqual(Identity(), tolerance)
}

// ApproxEqual compares position, rotation and scale within tolerance. Rotations
// q and -q describe the same orientation and compare equal.
func (t Transform) ApproxEqual(other Transform, tolerance float32) bool {
	if !Vec3Near(t.Position, other.Position, tolerance) {
		return false
	}
	if !Vec3Near(t.Scale, other.Scale, tolerance) {
		return false
	}
	return kabs(t.Rotation.Dot(other.Rotation)) >= 1-tolerance
}

func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t Transform) Back() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
}

func (t Transform) Left() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{-1, 0, 0})
}

func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

func (t Transform) Down() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, -1, 0})
}

// Mul composes t as the parent of child and returns the child's transform in
// the parent's space.
func (t Transform) Mul(child Transform) Transform {
	scaled := mgl32.Vec3{
		t.Scale.X() * child.Position.X(),
		t.Scale.Y() * child.Position.Y(),
		t.Scale.Z() * child.Position.Z(),
	}
	return Transform{
		Position: t.Position.Add(t.Rotation.Rotate(scaled)),
		Rotation: t.Rotation.Mul(child.Rotation),
		Scale: mgl32.Vec3{
			t.Scale.X() * child.Scale.X(),
			t.Scale.Y() * child.Scale.Y(),
			t.Scale.Z() * child.Scale.Z(),
		},
	}
}

// Matrix returns the local matrix: translation * rotation * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotation := t.Rotation.Normalize().Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translation.Mul4(rotation).Mul4(scale)
}
