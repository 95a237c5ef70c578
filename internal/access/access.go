// internal/access/access.go
//
// AccessPolicy: gates archive-date access by subscription tier. Pure — the
// purchase/entitlement system is an external collaborator that supplies the
// tier; nothing here touches the network or the store.

package access

import (
	"fmt"
	"time"

	"puzzlepack/internal/game"
)

// Tier is the subscription level. Tiers are monotonic: every date a lower
// tier can reach, a higher tier can too.
type Tier int

const (
	Basic Tier = iota
	Standard
	Premium
)

// unboundedDays marks a tier with no archive limit.
const unboundedDays = -1

// ArchiveDaysAllowed reports how many days back from today the tier may
// reach; unboundedDays (-1) means no limit.
func (t Tier) ArchiveDaysAllowed() int {
	switch t {
	case Premium:
		return unboundedDays
	case Standard:
		return 7
	default:
		return 3
	}
}

func (t Tier) String() string {
	switch t {
	case Premium:
		return "premium"
	case Standard:
		return "standard"
	default:
		return "basic"
	}
}

// ParseTier maps a tier name to its Tier value.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "premium":
		return Premium, nil
	case "standard":
		return Standard, nil
	case "basic":
		return Basic, nil
	}
	return Basic, fmt.Errorf("access: unknown tier %q", s)
}

// CanAccess reports whether the tier may play the puzzle for date, judged
// against now. Today and future dates are always accessible; past dates are
// allowed while (today - date) stays within the tier's archive window.
func CanAccess(t Tier, date, now time.Time) bool {
	allowed := t.ArchiveDaysAllowed()
	if allowed == unboundedDays {
		return true
	}
	return game.DaysBetween(date, now) <= allowed
}
