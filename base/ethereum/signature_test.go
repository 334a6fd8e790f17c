package ethereum

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMsgSignature(t *testing.T) {
	messageTemplate := "Approve Signature on mintora with nonce %s"
	privateKey, publicKey, err := GenerateKey()
	assert.NoError(t, err)
	address := crypto.PubkeyToAddress(*publicKey).Hex()
	nonce := "784931"
	message := []byte(fmt.Sprintf(messageTemplate, nonce))
	hash := accounts.TextHash(message)
	signature, err := crypto.Sign(hash, privateKey)
	assert.NoError(t, err)

	res, err := ValidateMsgSignature(message, hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.True(t, res)

	// incorrect nonce
	res2, err := ValidateMsgSignature([]byte(fmt.Sprintf(messageTemplate, "139487")), hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.False(t, res2)

	// incorrect signer
	_, pubKey, err := GenerateKey()
	assert.NoError(t, err)
	res3, err := ValidateMsgSignature(message, hexutil.Encode(signature), crypto.PubkeyToAddress(*pubKey).Hex())
	assert.NoError(t, err)
	assert.False(t, res3)

	// malformed signature
	_, err = ValidateMsgSignature(message, "0xzz", address)
	assert.Error(t, err)

	// truncated signature
	_, err = ValidateMsgSignature(message, hexutil.Encode(signature[:32]), address)
	assert.Error(t, err)
}

func TestValidateHashSignature(t *testing.T) {
	req := require.New(t)

	privateKey, publicKey, err := GenerateKey()
	req.NoError(err)
	signer := crypto.PubkeyToAddress(*publicKey).Hex()

	hash := crypto.Keccak256([]byte("order payload"))
	signature, err := crypto.Sign(hash, privateKey)
	req.NoError(err)

	valid, err := ValidateHashSignature(hash, hexutil.Encode(signature), signer)
	req.NoError(err)
	req.True(valid)

	valid, err = ValidateHashSignature(crypto.Keccak256([]byte("other payload")), hexutil.Encode(signature), signer)
	req.NoError(err)
	req.False(valid)
}

func TestSignatureNotMutated(t *testing.T) {
	req := require.New(t)

	privateKey, publicKey, err := GenerateKey()
	req.NoError(err)
	signer := crypto.PubkeyToAddress(*publicKey).Hex()

	message := []byte("repeatable message")
	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	req.NoError(err)
	encoded := hexutil.Encode(signature)

	// verifying twice must give the same answer
	for i := 0; i < 2; i++ {
		valid, err := ValidateMsgSignature(message, encoded, signer)
		req.NoError(err)
		req.True(valid)
	}
}
