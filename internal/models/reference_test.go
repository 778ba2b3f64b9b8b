package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperationKind(t *testing.T) {
	tests := []struct {
		input   string
		want    OperationKind
		wantErr bool
	}{
		{"deposit", OperationDeposit, false},
		{"Deposit", OperationDeposit, false},
		{"  WITHDRAWAL ", OperationWithdrawal, false},
		{"withdrawal", OperationWithdrawal, false},
		{"transfer", "", true},
		{"", "", true},
		{"deposits", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOperationKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedOperation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionType_BeforeCreate(t *testing.T) {
	tt := &TransactionType{Name: " Cash Deposit ", Operation: " DePoSiT "}
	assert.NoError(t, tt.BeforeCreate(nil))
	assert.Equal(t, "Cash Deposit", tt.Name)
	assert.Equal(t, "deposit", tt.Operation)
	assert.False(t, tt.CreatedAt.IsZero())

	kind, err := tt.Kind()
	assert.NoError(t, err)
	assert.Equal(t, OperationDeposit, kind)
}

func TestTransactionType_UnknownOperationIsStored(t *testing.T) {
	tt := &TransactionType{Name: "Internal Transfer", Operation: "Transfer"}
	assert.NoError(t, tt.BeforeCreate(nil))

	_, err := tt.Kind()
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestReferenceNames_Required(t *testing.T) {
	assert.ErrorIs(t, (&Status{Name: "  "}).BeforeCreate(nil), ErrInvalidReferenceName)
	assert.ErrorIs(t, (&Gender{}).BeforeCreate(nil), ErrInvalidReferenceName)
	assert.ErrorIs(t, (&TransactionType{Operation: "deposit"}).BeforeCreate(nil), ErrInvalidReferenceName)

	status := &Status{Name: "Active"}
	assert.NoError(t, status.BeforeCreate(nil))
	assert.Equal(t, StatusActive, status.Name)
}

func TestDefaultTransactionTypes_AreSupported(t *testing.T) {
	for _, tt := range DefaultTransactionTypes {
		_, err := tt.Kind()
		assert.NoError(t, err, tt.Name)
	}
}
