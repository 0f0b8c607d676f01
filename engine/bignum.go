package engine

import "math/big"

var (
	bigOne         = big.NewInt(1)
	bigTwo         = big.NewInt(2)
	bigMinusOne    = big.NewInt(-1)
	bigRatMinusOne = big.NewRat(-1, 1)
)
