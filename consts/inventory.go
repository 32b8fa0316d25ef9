package consts

const (
	// Recognized sheet headers
	HeaderItem     = "Item"
	HeaderUnitCost = "Unit cost"
	HeaderOnHand   = "On-hand"

	// Fallback for absent unit cost / on-hand values
	DefaultUnitCost = 1
	DefaultOnHand   = 1

	// Daily totals are reported in millions
	MillionsDivisor = 1_000_000

	// Band thresholds, in millions
	BandMediumFloor = 4
	BandHighFloor   = 8
)
