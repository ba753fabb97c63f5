package geom

// smallestNormalFloat64 is the smallest positive normalized float64
// (2^-1022), as opposed to math.SmallestNonzeroFloat64 which is the
// smallest subnormal. §4.1's line-line collinearity guard is specified in
// terms of the former.
const smallestNormalFloat64 = 2.2250738585072014e-308

func smallestPositiveNormalFloat64() float64 { return smallestNormalFloat64 }
