package math

import "github.com/go-gl/mathgl/mgl32"

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
)

/**
 * @brief Splits a rotation into its yaw-only part (about world Y) and the
 * pitch angle about the yaw-rotated local X axis.
 *
 * Not tested for rotations that carry roll.
 *
 * @param q The rotation to split.
 * @return The yaw rotation and the pitch angle in radians, in [-PI, PI].
 */
func SplitYawPitch(q mgl32.Quat) (mgl32.Quat, float32) {
	// Zeroing x and z leaves the yaw component.
	yaw := mgl32.Quat{W: q.W, V: mgl32.Vec3{0, q.V.Y(), 0}}.Normalize()
	// Whatever is left after removing yaw is pitch.
	residual := yaw.Inverse().Mul(q)
	pitch := 2 * kasin(Clamp(axisX.Dot(residual.V), -1, 1))
	return yaw, pitch
}

// YawPitchAngles returns the yaw about world Y and the pitch of a rotation,
// both in radians.
func YawPitchAngles(q mgl32.Quat) (float32, float32) {
	yaw, pitch := SplitYawPitch(q)
	return 2 * katan2(yaw.V.Y(), yaw.W), pitch
}

/**
 * @brief Clamps the pitch of a rotation to [-PI/2, PI/2] so the camera
 * can never flip over the vertical.
 *
 * @param q The rotation to limit. Assumed to have zero roll.
 * @return The rotation with its pitch clamped.
 */
func LimitPitch(q mgl32.Quat) mgl32.Quat {
	yaw, pitch := SplitYawPitch(q)
	clamped := Clamp(pitch, -K_HALF_PI, K_HALF_PI)
	return yaw.Mul(mgl32.QuatRotate(clamped, axisX))
}

/**
 * @brief Rotates a camera rotation by a pointer motion delta. A full
 * window width of motion is one full turn of yaw, a full window height is
 * half a turn of pitch, both scaled by speed.
 *
 * The window size components must be greater than zero.
 *
 * @param windowSize The window size in pixels.
 * @param motion The pointer motion in pixels.
 * @param speed The angular speed multiplier.
 * @param current The rotation to update.
 * @return The updated rotation with its pitch limited.
 */
func RotateByMouseDelta(windowSize, motion mgl32.Vec2, speed float32, current mgl32.Quat) mgl32.Quat {
	deltaYaw := -(motion.X() / windowSize.X()) * K_PI_2 * speed
	deltaPitch := -(motion.Y() / windowSize.Y()) * K_PI * speed

	// Order matters: yaw around the GLOBAL y axis, then pitch around the LOCAL x axis.
	current = mgl32.QuatRotate(deltaYaw, axisY).Mul(current)
	current = current.Mul(mgl32.QuatRotate(deltaPitch, axisX))
	return LimitPitch(current)
}
