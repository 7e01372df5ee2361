package passsource

import "context"

// Source reads discount-pass balances. A wallet holds a pass when its
// balance on the pass contract is non-zero.
type Source interface {
	BalanceOf(ctx context.Context, passAddress string, wallet string) (uint64, error)
}
