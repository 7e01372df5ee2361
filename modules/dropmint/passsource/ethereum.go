package passsource

import (
	"context"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// balanceOf(address)
var balanceOfSelector = []byte{0x70, 0xa0, 0x82, 0x31}

// EthereumSource queries balanceOf on the pass contracts over JSON-RPC.
type EthereumSource struct {
	client *ethclient.Client
}

func NewEthereumSource(ctx context.Context, rpcURL string) (*EthereumSource, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial ethereum rpc")
	}
	return &EthereumSource{client: client}, nil
}

func (s *EthereumSource) BalanceOf(ctx context.Context, passAddress string, wallet string) (uint64, error) {
	if !ethcommon.IsHexAddress(passAddress) {
		return 0, errors.Errorf("invalid pass address: %s", passAddress)
	}
	if !ethcommon.IsHexAddress(wallet) {
		return 0, errors.Errorf("invalid wallet address: %s", wallet)
	}
	contract := ethcommon.HexToAddress(passAddress)
	holder := ethcommon.HexToAddress(wallet)

	data := make([]byte, 0, 4+32)
	data = append(data, balanceOfSelector...)
	data = append(data, ethcommon.LeftPadBytes(holder.Bytes(), 32)...)

	result, err := s.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return 0, errors.Wrap(err, "balanceOf call failed")
	}
	balance := new(big.Int).SetBytes(result)
	if !balance.IsUint64() {
		// balances beyond uint64 are indistinguishable from "holds a pass"
		return ^uint64(0), nil
	}
	return balance.Uint64(), nil
}
