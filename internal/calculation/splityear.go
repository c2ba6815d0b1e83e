package calculation

import (
	"fmt"

	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/dateutil"
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// SplitYearApportionment is the day-weighted blend of the standard-rate
// cutoffs either side of a change of assessment basis.
type SplitYearApportionment struct {
	PreDays    int
	PostDays   int
	TotalDays  int
	PreCutoff  decimal.Decimal
	PostCutoff decimal.Decimal
	Blended    decimal.Decimal
	Note       string
}

// ApportionSplitYear blends the prior-basis cutoff over the days strictly
// before the change date with the current-basis cutoff over the days from
// the change date onward, within the change date's calendar year. The
// blended cutoff is rounded to whole euro.
func ApportionSplitYear(in domain.TaxInput, change domain.SplitYear, cutoffs domain.RateCutoffs) SplitYearApportionment {
	pre, post, total := dateutil.SplitYearDays(change.ChangeDate)
	preCutoff := ResolveRateCutoff(change.PriorBasis, in.MaritalStatus, in.SpouseIncome, cutoffs)
	postCutoff := ResolveRateCutoff(in.AssessmentBasis, in.MaritalStatus, in.SpouseIncome, cutoffs)

	weighted := preCutoff.Mul(decimal.NewFromInt(int64(pre))).
		Add(postCutoff.Mul(decimal.NewFromInt(int64(post))))
	blended := money.RoundWhole(weighted.Div(decimal.NewFromInt(int64(total))))

	changeDate := change.ChangeDate.Format(dateutil.ISODate)
	return SplitYearApportionment{
		PreDays:    pre,
		PostDays:   post,
		TotalDays:  total,
		PreCutoff:  preCutoff,
		PostCutoff: postCutoff,
		Blended:    blended,
		Note: fmt.Sprintf(
			"Split-year assessment: %d of %d days on %s basis before %s (cutoff %s), %d days on %s basis from %s (cutoff %s); blended standard-rate cutoff %s",
			pre, total, change.PriorBasis, changeDate, money.Euro(preCutoff),
			post, in.AssessmentBasis, changeDate, money.Euro(postCutoff),
			money.Euro(blended)),
	}
}
