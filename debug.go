package kuiper

import "go.uber.org/zap"

// Diagnostics are opt-in and never change simulation behavior: with no
// logger attached, the systems skip stat collection entirely.

// SetLogger attaches a zap logger to the physics system. Each Step then
// emits a debug record with body, pair, collision, and trigger-event counts
// plus the step's wall time, and body and trigger registration warn about
// suspicious transform chains. Pass nil to turn diagnostics off.
func (s *PhysicsSystem) SetLogger(log *zap.Logger) {
	s.log = log
}

// SetLogger attaches a zap logger to the scene. Each Update then emits a
// debug record with the frame's dt and live object count. Pass nil to turn
// diagnostics off.
func (s *Scene) SetLogger(log *zap.Logger) {
	s.log = log
}

// maxTransformDepth is the parent-chain length past which warnDeepChain
// assumes runaway reparenting. World-space math walks the chain on every
// access, so a deep chain is a performance problem as well as a likely bug.
const maxTransformDepth = 32

// warnDeepChain logs when a transform's parent chain is suspiciously deep.
// Only called with a logger attached.
func (s *PhysicsSystem) warnDeepChain(t *Transform) {
	depth := 0
	for cur := t; cur != nil; cur = cur.parent {
		depth++
		if depth > maxTransformDepth {
			s.log.Warn("transform parent chain unusually deep",
				zap.Int("max", maxTransformDepth),
			)
			return
		}
	}
}
