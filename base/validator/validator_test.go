package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "missing 0x prefix",
			address:    "c10a6aed76b687964b1bdeadbeef41cf0ae858b9",
			expIsValid: false,
		},
		{
			desc:       "not hex",
			address:    "0xz10a6aed76b687964b1bdeadbeef41cf0ae858b9",
			expIsValid: false,
		},
		{
			desc:       "valid address - mixed case",
			address:    "0xC10a6AEd76B687964b1bDEadBeEF41cF0AE858b9",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0xc10a6aed76b687964b1bdeadbeef41cf0ae858b9",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
