package utils

import (
	"crypto/rand"
	"math/big"
)

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTrackingID génère l'identifiant public de commande :
// "TRK-" suivi de 12 caractères alphanumériques majuscules aléatoires
func GenerateTrackingID() string {
	buf := make([]byte, 12)
	max := big.NewInt(int64(len(trackingAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand ne doit jamais échouer sur un système sain
			panic(err)
		}
		buf[i] = trackingAlphabet[n.Int64()]
	}
	return "TRK-" + string(buf)
}
