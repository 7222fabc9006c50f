package usecases

import "time"

const (
	// MaxBonusReferrals is the number of completed referrals that can
	// earn bonus multiplier. The raw count keeps growing past it.
	MaxBonusReferrals = 3

	// BonusPerReferral is the multiplier bonus earned per completed referral.
	BonusPerReferral = 1

	// BaseMultiplier is every activated wallet's starting multiplier.
	BaseMultiplier = 2

	// HardCapMultiplier clamps base + bonus. It intentionally equals the
	// maximum reachable bonus, so the base stops being additive at the
	// cap; downstream display logic relies on exactly this shape.
	HardCapMultiplier = 3

	// SignatureMaxAge bounds how old a signed challenge timestamp may be.
	SignatureMaxAge = 5 * time.Minute
)
