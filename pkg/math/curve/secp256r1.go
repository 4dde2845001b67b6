package curve

import "sync"

var (
	secp256r1Once sync.Once
	secp256r1     *Curve
)

// Secp256r1 returns the domain parameters of the secp256r1 (NIST P-256)
// curve. The parameters are parsed once and the same immutable value is
// returned on every call.
func Secp256r1() *Curve {
	secp256r1Once.Do(func() {
		c, err := NewCurve(
			"secp256r1",
			"FFFFFFFF 00000001 00000000 00000000 00000000 FFFFFFFF FFFFFFFF FFFFFFFF",
			"FFFFFFFF 00000001 00000000 00000000 00000000 FFFFFFFF FFFFFFFF FFFFFFFC",
			"5AC635D8 AA3A93E7 B3EBBD55 769886BC 651D06B0 CC53B0F6 3BCE3C3E 27D2604B",
			"03 6B17D1F2 E12C4247 F8BCE6E5 63A440F2 77037D81 2DEB33A0 F4A13945 D898C296",
			"FFFFFFFF 00000000 FFFFFFFF FFFFFFFF BCE6FAAD A7179E84 F3B9CAC2 FC632551",
			"01",
		)
		if err != nil {
			panic(err)
		}
		secp256r1 = c
	})
	return secp256r1
}
