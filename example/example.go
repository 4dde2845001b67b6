package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/taurusgroup/sec1/pkg/ecdsa"
	"github.com/taurusgroup/sec1/pkg/hash"
	"github.com/taurusgroup/sec1/pkg/math/curve"
)

const signers = 4

func main() {
	group := curve.Secp256r1()

	sk := ecdsa.GenerateKey(rand.Reader, group)
	pk := sk.PublicKey()
	encoded, err := pk.MarshalBinary()
	if err != nil {
		panic(err)
	}
	fmt.Printf("public key: %s\n", hex.EncodeToString(encoded))

	// One immutable key, many concurrent signers.
	sigs := make([]*ecdsa.Signature, signers)
	var g errgroup.Group
	for i := 0; i < signers; i++ {
		i := i
		g.Go(func() error {
			message := []byte(fmt.Sprintf("message %d", i))
			sig := sk.Sign(rand.Reader, hash.Blake3, message)
			if !pk.Verify(hash.Blake3, message, sig) {
				return fmt.Errorf("signature %d did not verify", i)
			}
			sigs[i] = sig
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}

	for i, sig := range sigs {
		fmt.Printf("message %d: r=%x s=%x\n", i, sig.R, sig.S)
	}
}
