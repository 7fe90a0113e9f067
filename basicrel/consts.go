package basicrel

import "math/big"

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)
