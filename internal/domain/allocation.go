package domain

import "fmt"

// AllocationState is the lock-consistent snapshot the allocator plans from:
// the repository reads it while holding the raffle row lock.
type AllocationState struct {
	LastNumber   int64 // raffle numbering high-water mark
	MaxTickets   int64 // 0 = unlimited
	Sold         int64 // tickets already issued raffle-wide
	Issued       int64 // tickets the purchase already holds
	TotalTickets int64 // tickets the purchase is owed in total
	RaffleActive bool
}

// AllocationPlan is the arithmetic of one allocator run: how many tickets
// to insert, which numbers they get, and whether the raffle is full
// afterwards. Pure over AllocationState, so the capacity and numbering
// rules are checkable without a database.
type AllocationPlan struct {
	Needed      int64
	FirstNumber int64
	LastNumber  int64
	SoldAfter   int64
	CloseRaffle bool
}

// PlanAllocation computes the plan for a purchase that is still owed
// tickets. A purchase that already holds its full set yields an empty plan,
// never an error. Numbering continues from the high-water mark, so numbers
// freed by a revocation are never reissued.
func PlanAllocation(st AllocationState) (AllocationPlan, error) {
	needed := st.TotalTickets - st.Issued
	if needed <= 0 {
		return AllocationPlan{SoldAfter: st.Sold}, nil
	}

	if st.MaxTickets > 0 {
		remaining := st.MaxTickets - st.Sold
		if remaining <= 0 {
			return AllocationPlan{}, fmt.Errorf("%w: %d of %d sold", ErrSoldOut, st.Sold, st.MaxTickets)
		}
		if needed > remaining {
			return AllocationPlan{}, fmt.Errorf("%w: need %d, %d remaining", ErrInsufficientCapacity, needed, remaining)
		}
	}

	plan := AllocationPlan{
		Needed:      needed,
		FirstNumber: st.LastNumber + 1,
		LastNumber:  st.LastNumber + needed,
		SoldAfter:   st.Sold + needed,
	}
	plan.CloseRaffle = st.MaxTickets > 0 && plan.SoldAfter >= st.MaxTickets && st.RaffleActive
	return plan, nil
}
