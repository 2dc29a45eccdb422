package systems

import (
	"github.com/pthm-cable/reefdive/components"
	"github.com/pthm-cable/reefdive/config"
)

// Refill raises v by rate*dt without exceeding maxVal.
func Refill(v, rate, dt, maxVal float64) float64 {
	v += rate * dt
	if v > maxVal {
		return maxVal
	}
	return v
}

// Drain lowers v by rate*dt without going below zero.
func Drain(v, rate, dt float64) float64 {
	v -= rate * dt
	if v < 0 {
		return 0
	}
	return v
}

// UpdateOxygen drains oxygen while submerged and refills it at the surface.
// With the tank empty, health drains instead.
func UpdateOxygen(p *components.PlayerState, submerged bool, m config.MetersConfig, dt float64) {
	if submerged {
		p.Oxygen = Drain(p.Oxygen, m.OxygenDrain, dt)
		if p.Oxygen == 0 {
			p.Health = Drain(p.Health, m.HealthLossRate, dt)
		}
	} else {
		p.Oxygen = Refill(p.Oxygen, m.OxygenRefill, dt, m.MaxOxygen)
	}
	p.Health = clampFloat(p.Health, 0, m.MaxHealth)
}

// UpdateBoost advances the boost meter for one tick and reports whether
// the meter ran dry on this tick.
//
// Holding the trigger spends boost while any is left and the lockout is clear.
// Running dry sets the lockout, which only releasing the trigger clears.
// Boost recovers only while the trigger is released.
func UpdateBoost(p *components.PlayerState, held bool, m config.MetersConfig, dt float64) (depleted bool) {
	switch {
	case held && p.Boost > 0 && p.CanBoost:
		p.BoostActive = true
		p.Boost = Drain(p.Boost, m.BoostConsume, dt)
		if p.Boost == 0 {
			p.CanBoost = false
			p.BoostActive = false
			depleted = true
		}
	case !held:
		p.CanBoost = true
		p.BoostActive = false
		p.Boost = Refill(p.Boost, m.BoostRecover, dt, m.MaxBoost)
	default:
		p.BoostActive = false
	}
	p.Boost = clampFloat(p.Boost, 0, m.MaxBoost)
	return depleted
}
