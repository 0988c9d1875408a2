package model

// Category classifies a transaction. The set mirrors the storage layer's
// category enumeration and must stay in lock-step with it.
type Category string

const (
	CategoryFood       Category = "alimentacao"
	CategoryTransport  Category = "transporte"
	CategoryHousing    Category = "casa"
	CategoryLeisure    Category = "lazer"
	CategoryHealth     Category = "saude"
	CategoryEducation  Category = "educacao"
	CategorySalary     Category = "salario"
	CategoryInvestment Category = "investimento"
	CategoryOther      Category = "outros"
)

// CategoryLabels maps categories to their human-readable pt-BR labels.
var CategoryLabels = map[Category]string{
	CategoryFood:       "Alimentação",
	CategoryTransport:  "Transporte",
	CategoryHousing:    "Casa",
	CategoryLeisure:    "Lazer",
	CategoryHealth:     "Saúde",
	CategoryEducation:  "Educação",
	CategorySalary:     "Salário",
	CategoryInvestment: "Investimento",
	CategoryOther:      "Outros",
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

// Bank identifies which bank a transaction belongs to.
type Bank string

const (
	BankNubank Bank = "nubank"
	BankItau   Bank = "itau"
	BankCaixa  Bank = "caixa"
	BankOther  Bank = "outros"
)

// Banks lists all known banks in display order.
var Banks = []Bank{BankNubank, BankItau, BankCaixa, BankOther}

// Valid reports whether b is a known bank.
func (b Bank) Valid() bool {
	for _, known := range Banks {
		if b == known {
			return true
		}
	}
	return false
}

// TxType is the direction of a transaction.
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TxType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// PaymentMethod distinguishes direct debits from credit-card charges.
type PaymentMethod string

const (
	MethodDebit  PaymentMethod = "debit"
	MethodCredit PaymentMethod = "credit"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == MethodDebit || m == MethodCredit
}
