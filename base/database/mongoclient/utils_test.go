package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintora/goledger/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableAccount struct {
		Alias   *string `bson:"alias,omitempty"`
		Nonce   *int    `bson:"nonce,omitempty"`
		Email   string  `bson:"email"`
		Address string  `bson:"address"`
	}

	patchable := &PatchableAccount{}
	patchable.Alias = ptr.String("")
	patchable.Nonce = ptr.Int(10)
	patchable.Address = "0xabc"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"alias": "",
			"nonce": 10,
			// field email is empty, so ignore
			"address": "0xabc",
		},
		updater,
	)
}
