package passsource

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
)

// StoreSource reads pass balances recorded in the database. Balances
// mirror on-chain holdings and are written through the pass holdings
// endpoint.
type StoreSource struct {
	dg datagateway.DropMintDataGateway
}

func NewStoreSource(dg datagateway.DropMintDataGateway) *StoreSource {
	return &StoreSource{dg: dg}
}

func (s *StoreSource) BalanceOf(ctx context.Context, passAddress string, wallet string) (uint64, error) {
	balance, err := s.dg.GetPassBalance(ctx, passAddress, wallet)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pass balance")
	}
	return balance, nil
}
