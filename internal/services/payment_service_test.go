package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tifo_back_end/internal/apperrors"
)

func TestSignPayment(t *testing.T) {
	sig := SignPayment("whsec_test", "pi_123", "pay_456")

	// HMAC-SHA256 encodé en hex : 64 caractères
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), sig)

	// déterministe
	assert.Equal(t, sig, SignPayment("whsec_test", "pi_123", "pay_456"))

	// toute entrée différente change la signature
	assert.NotEqual(t, sig, SignPayment("autre_secret", "pi_123", "pay_456"))
	assert.NotEqual(t, sig, SignPayment("whsec_test", "pi_124", "pay_456"))
	assert.NotEqual(t, sig, SignPayment("whsec_test", "pi_123", "pay_457"))
}

func TestSignPayment_SeparatorNotAmbiguous(t *testing.T) {
	// le séparateur "|" empêche la collision entre ("ab", "c") et ("a", "bc")
	assert.NotEqual(t,
		SignPayment("s", "ab", "c"),
		SignPayment("s", "a", "bc"))
}

func TestVerifySignature(t *testing.T) {
	sig := SignPayment("whsec_test", "pi_123", "pay_456")

	assert.True(t, VerifySignature("whsec_test", "pi_123", "pay_456", sig))
	assert.False(t, VerifySignature("whsec_test", "pi_123", "pay_456", ""))
	assert.False(t, VerifySignature("autre_secret", "pi_123", "pay_456", sig))

	// un seul caractère altéré suffit à invalider
	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	assert.False(t, VerifySignature("whsec_test", "pi_123", "pay_456", string(tampered)))
}

func TestVerifyAndApply_NoSecretConfigured(t *testing.T) {
	// un HMAC à clé vide se calcule sans rien connaître du serveur : cette
	// signature forgée serait valide si la vérification acceptait un secret vide
	forged := SignPayment("", "pi_attaquant", "pay_attaquant")
	assert.True(t, VerifySignature("", "pi_attaquant", "pay_attaquant", forged))

	svc := &PaymentService{Secret: ""}
	_, err := svc.VerifyAndApply(context.Background(), "cmd-1", "pi_attaquant", "pay_attaquant", forged)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindInternal, appErr.Kind)
	assert.Contains(t, appErr.Message, "non configurée")
}
