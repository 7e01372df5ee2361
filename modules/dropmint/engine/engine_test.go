package engine

import (
	"testing"

	"github.com/dropforge/drop-engine/modules/dropmint/datagateway/mocks"
	"github.com/dropforge/drop-engine/modules/dropmint/internal/entity"
	"github.com/dropforge/drop-engine/modules/dropmint/passsource"
	"github.com/dropforge/drop-engine/pkg/entropy"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	testOwner        = ethcommon.HexToAddress("0x00000000000000000000000000000000000000a1").Hex()
	testArtist       = ethcommon.HexToAddress("0x00000000000000000000000000000000000000a2").Hex()
	testMinter       = ethcommon.HexToAddress("0x00000000000000000000000000000000000000b1").Hex()
	testMinter2      = ethcommon.HexToAddress("0x00000000000000000000000000000000000000b2").Hex()
	testAnnualPass   = ethcommon.HexToAddress("0x00000000000000000000000000000000000000c1").Hex()
	testLifetimePass = ethcommon.HexToAddress("0x00000000000000000000000000000000000000c2").Hex()
)

func newTestEngine(t *testing.T, entropySource entropy.Source) (*Engine, *mocks.DropMintDataGatewayWithTx) {
	mockDgTx := mocks.NewDropMintDataGatewayWithTx(t)
	e := NewEngine(mockDgTx, passsource.NewStoreSource(mockDgTx), entropySource)
	return e, mockDgTx
}

func testDrop() *entity.Drop {
	return &entity.Drop{
		ID:                1,
		Name:              "Test Drop",
		Symbol:            "TD",
		BaseDir:           "https://meta.example.com/1/",
		ArtistWallet:      testArtist,
		Owner:             testOwner,
		DropSize:          10,
		ClaimCount:        0,
		CurrentIndex:      1,
		RandomMint:        false,
		DifferentEditions: 1,
	}
}

func testPricing(tier entity.AccessTier) *entity.Pricing {
	return &entity.Pricing{
		DropID:             1,
		AllowListPrice:     uint256.NewInt(100),
		GeneralPrice:       uint256.NewInt(200),
		AllowListMintLimit: 5,
		GeneralMintLimit:   3,
		WhoCanMint:         tier,

		AnnualPassAddress:   entity.ZeroAddress,
		LifetimePassAddress: entity.ZeroAddress,

		AnnualAllowListPrice:   uint256.NewInt(80),
		AnnualGeneralPrice:     uint256.NewInt(160),
		LifetimeAllowListPrice: uint256.NewInt(50),
		LifetimeGeneralPrice:   uint256.NewInt(120),
	}
}
