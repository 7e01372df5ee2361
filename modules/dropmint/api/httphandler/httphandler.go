package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/engine"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

type HttpHandler struct {
	engine  *engine.Engine
	network common.Network
}

func New(network common.Network, engine *engine.Engine) *HttpHandler {
	return &HttpHandler{
		engine:  engine,
		network: network,
	}
}

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

// publicError exposes engine error kinds to API clients. Errors
// without a kind stay internal.
func publicError(err error) error {
	var kind errs.ErrorKind
	if errors.As(err, &kind) {
		return errs.NewPublicErrorWithCode(err.Error(), string(kind))
	}
	return err
}

func isWalletAddress(wallet string) bool {
	return ethcommon.IsHexAddress(wallet)
}

// parseWei parses a decimal wei string. Empty means zero.
func parseWei(s string) (*uint256.Int, error) {
	if s == "" {
		return uint256.NewInt(0), nil
	}
	value, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, errs.NewPublicError("invalid wei amount: must be a decimal string")
	}
	return value, nil
}
