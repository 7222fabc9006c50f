package usecases

import "refgate.backend/internal/domain/entities"

// CalculateMultiplier maps a completed-referral count to the allocation
// multiplier breakdown. Pure and monotonic: the count only grows, so the
// total never decreases for a wallet.
//
// With the current constants the totals for counts 0,1,2,3,4... are
// exactly 2,3,3,3,3...: the bonus alone can reach the hard cap, so the
// base is not additive beyond it. Do not "simplify" this.
func CalculateMultiplier(completedReferrals int64) entities.Multiplier {
	bonus := completedReferrals
	if bonus > MaxBonusReferrals {
		bonus = MaxBonusReferrals
	}
	bonus *= BonusPerReferral

	total := int64(BaseMultiplier) + bonus
	if total > HardCapMultiplier {
		total = HardCapMultiplier
	}

	return entities.Multiplier{
		Base:            BaseMultiplier,
		Bonus:           int(bonus),
		Total:           int(total),
		MaxBonusReached: completedReferrals >= MaxBonusReferrals,
	}
}
