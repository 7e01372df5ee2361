package engine

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/common/errs"
	"github.com/dropforge/drop-engine/modules/dropmint/datagateway"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/dropforge/drop-engine/modules/dropmint/passsource"
	"github.com/dropforge/drop-engine/pkg/entropy"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Engine executes drop operations. Every mutating operation runs in a
// single database transaction and either fully applies or leaves no
// trace.
type Engine struct {
	dropMintDg datagateway.DropMintDataGateway
	passes     passsource.Source
	entropy    entropy.Source
}

func NewEngine(dropMintDg datagateway.DropMintDataGateway, passes passsource.Source, entropySource entropy.Source) *Engine {
	return &Engine{
		dropMintDg: dropMintDg,
		passes:     passes,
		entropy:    entropySource,
	}
}

// normalizeAddress validates a wallet address and returns its
// checksummed form. The empty string normalizes to the zero address.
func normalizeAddress(address string) (string, error) {
	if address == "" {
		return entity.ZeroAddress, nil
	}
	if !ethcommon.IsHexAddress(address) {
		return "", errors.Wrapf(errs.InvalidArgument, "invalid wallet address: %s", address)
	}
	return ethcommon.HexToAddress(address).Hex(), nil
}

func sameWallet(a, b string) bool {
	return strings.EqualFold(a, b)
}

func (e *Engine) requireOwner(drop *entity.Drop, caller string) error {
	if !sameWallet(drop.Owner, caller) {
		return errors.Wrap(errs.Unauthorized, "caller is not the drop owner")
	}
	return nil
}

func addEvent(ctx context.Context, qtx datagateway.DropMintDataGatewayWithTx, dropID int64, eventType entity.EventType, caller string, payload map[string]any) error {
	payloadBytes := []byte("{}")
	if payload != nil {
		var err error
		payloadBytes, err = json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to marshal event payload")
		}
	}
	if err := qtx.AddEvent(ctx, datagateway.AddEventParams{
		DropID:    dropID,
		Type:      eventType,
		Caller:    caller,
		Payload:   payloadBytes,
		CreatedAt: time.Now(),
	}); err != nil {
		return errors.Wrap(err, "failed to insert event")
	}
	return nil
}

// GetEvents returns the most recent events of a drop.
func (e *Engine) GetEvents(ctx context.Context, dropID int64, limit int32) ([]entity.DropEvent, error) {
	events, err := e.dropMintDg.GetEventsByDrop(ctx, datagateway.GetEventsByDropParams{
		DropID: dropID,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get events")
	}
	return events, nil
}

// GetEventsByWallet returns events across drops where the wallet was
// the caller.
func (e *Engine) GetEventsByWallet(ctx context.Context, wallet string) ([]entity.DropEvent, error) {
	wallet, err := normalizeAddress(wallet)
	if err != nil {
		return nil, err
	}
	events, err := e.dropMintDg.GetEventsByWallet(ctx, wallet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get events")
	}
	return events, nil
}
