package inventory

import (
	"strings"

	"commerce-ledger/internal/pkg/errs"
)

var ErrInvalidTransactionType = errs.NewValidation("invalid transaction type")

type TransactionType string

const (
	TypePurchase   TransactionType = "PURCHASE"
	TypeSale       TransactionType = "SALE"
	TypeAdjustment TransactionType = "ADJUSTMENT"
	TypeReturn     TransactionType = "RETURN"
	TypeDamaged    TransactionType = "DAMAGED"
	TypeRestock    TransactionType = "RESTOCK"
)

var allTransactionTypes = []TransactionType{
	TypePurchase,
	TypeSale,
	TypeAdjustment,
	TypeReturn,
	TypeDamaged,
	TypeRestock,
}

func AllTransactionTypes() []TransactionType {
	out := make([]TransactionType, len(allTransactionTypes))
	copy(out, allTransactionTypes)
	return out
}

func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.TrimSpace(s))
	if !t.IsValid() {
		return "", ErrInvalidTransactionType
	}
	return t, nil
}

func (t TransactionType) String() string {
	return string(t)
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TypePurchase, TypeSale, TypeAdjustment, TypeReturn, TypeDamaged, TypeRestock:
		return true
	default:
		return false
	}
}

// Increases stock by the transaction quantity
func (t TransactionType) IsInbound() bool {
	return t == TypePurchase || t == TypeRestock || t == TypeReturn
}

// Decreases stock by the transaction quantity
func (t TransactionType) IsOutbound() bool {
	return t == TypeSale || t == TypeDamaged
}

// Sets stock to the transaction quantity
func (t TransactionType) IsAbsolute() bool {
	return t == TypeAdjustment
}
