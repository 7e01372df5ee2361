package mintvalidator

const (
	NOT_ALLOWED_TO_MINT = "Wallet is not allowed to mint from this drop."
	NOT_ENOUGH_SUPPLY   = "Not enough supply left in the drop."
	MINTING_TOO_MANY    = "Mint would exceed the wallet limit."
	WRONG_PRICE         = "Payment does not match the total price exactly."
)
