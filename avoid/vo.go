package avoid

import (
	"math"

	"github.com/katalvlaran/navgrid/geom"
)

// Deviation fan in degrees off the preferred heading; symmetric pairs,
// widening outward. The trailing entries allow backing off when the
// forward cone is saturated.
var deviationAngles = [6]float64{10, 25, 45, 70, 90, 110}

// Speed fractions tried at each deviation angle: full speed, braking to
// maneuver, and near-standstill waiting.
var speedFractions = [3]float64{1.0, 0.5, 0.1}

// SafeVelocity selects the cheapest admissible velocity for me among a
// fixed candidate fan around the preferred velocity.
//
// Candidate order is part of the contract: the preferred velocity is
// scored first, then the angular fan (±10°, ±25°, … at three speeds),
// and the zero vector last; ties keep the earliest candidate, so an
// unobstructed agent always cruises straight.
//
// Complexity: O(C·N) with C = 38 candidates and N = |neighbors|.
func SafeVelocity(me Body, neighbors []Body, opt Options) geom.Vec {
	// A stationary intent needs no sampling.
	if me.Pref.LenSq() < 0.01 {
		return geom.Vec{}
	}

	speed := me.Pref.Len()
	heading := me.Pref.Angle()

	best := geom.Vec{}
	bestPenalty := math.MaxFloat64

	score := func(cand geom.Vec) {
		if p := penalty(me, cand, neighbors, opt); p < bestPenalty {
			bestPenalty = p
			best = cand
		}
	}

	score(me.Pref)
	for _, deg := range deviationAngles {
		for _, sign := range [2]float64{1, -1} {
			dir := geom.V(math.Cos(heading+sign*deg*math.Pi/180), math.Sin(heading+sign*deg*math.Pi/180))
			for _, frac := range speedFractions {
				score(dir.Scale(speed * frac))
			}
		}
	}
	score(geom.Vec{})

	return best
}

// penalty scores one candidate velocity: deviation from intent, a
// standstill surcharge, and per-neighbor collision terms.
func penalty(me Body, cand geom.Vec, neighbors []Body, opt Options) float64 {
	p := me.Pref.Dist(cand)
	if cand.LenSq() < 0.1 {
		p += opt.FreezePenalty
	}

	for i := range neighbors {
		other := &neighbors[i]
		if other.ID == me.ID {
			continue
		}
		if me.Pos.DistSq(other.Pos) > opt.NeighborDist*opt.NeighborDist {
			continue
		}

		// A quasi-static neighbor behaves like a wall: widen the margin
		// so the detour starts earlier.
		static := other.Vel.LenSq() < 0.1
		margin := opt.RadiusMargin
		if static {
			margin *= opt.StaticInflation
		}
		combined := me.Radius + other.Radius + margin

		relPos := other.Pos.Sub(me.Pos)
		relVel := cand.Sub(other.Vel)

		// Overlap is inadmissible regardless of velocity.
		if relPos.Len() < combined {
			p += opt.OverlapPenalty

			continue
		}

		// Time to the closest approach along the relative ray. Skip the
		// term on numeric degeneracy (near-zero relative velocity).
		relVelSq := relVel.LenSq()
		if relVelSq <= 1e-4 {
			continue
		}
		t := relPos.Dot(relVel) / relVelSq
		if t <= 0 || t >= opt.TimeHorizon {
			continue
		}
		missDist := relPos.Sub(relVel.Scale(t)).Len()
		if missDist >= combined {
			continue
		}

		if static {
			p += opt.StaticImpactK / (t + opt.StaticImpactEps)
		} else {
			p += opt.MovingImpactK / (t + opt.MovingImpactEps)
		}
	}

	return p
}

// PreferredVelocity computes the straight-to-target cruise velocity:
// unit direction to target scaled to maxSpeed, or zero when the target
// is effectively reached.
func PreferredVelocity(pos, target geom.Vec, maxSpeed float64) geom.Vec {
	diff := target.Sub(pos)
	if diff.Len() <= 0.1 {
		return geom.Vec{}
	}

	return diff.Norm().Scale(maxSpeed)
}
