package domain

// Transaction is a single wallet ledger entry. Amounts are whole rupees.
type Transaction struct {
	ID          string
	Date        string // YYYY-MM-DD
	Description string
	Amount      int
	Type        TransactionType
	Category    TransactionCategory
	Status      TransactionStatus
}

// WalletSnapshot is a role's balance plus its ordered transaction history.
type WalletSnapshot struct {
	Balance      int
	Transactions []Transaction
}

// DefaultWallet returns the fixed initial wallet fixture for a role.
// Pure function: distinct literals per role, zero wallet for anything else.
// The snapshot is created once per role on first activation and retained
// verbatim for the life of the process.
func DefaultWallet(role Role) WalletSnapshot {
	switch role {
	case RoleFarmer:
		return WalletSnapshot{
			Balance: 12500,
			Transactions: []Transaction{
				{ID: "t1", Date: "2023-10-24", Description: "Advance for Onion Load", Amount: 5000, Type: TxCredit, Category: TxPayment, Status: TxCompleted},
				{ID: "t2", Date: "2023-10-18", Description: "Transport to Vashi", Amount: 2200, Type: TxDebit, Category: TxPayment, Status: TxCompleted},
				{ID: "t3", Date: "2023-10-10", Description: "Govt Subsidy Credit", Amount: 4000, Type: TxCredit, Category: TxIncentive, Status: TxCompleted},
			},
		}
	case RoleFPO:
		return WalletSnapshot{
			Balance: 850000,
			Transactions: []Transaction{
				{ID: "f1", Date: "2023-10-25", Description: "Bulk Shipment Payment", Amount: 125000, Type: TxCredit, Category: TxPayment, Status: TxCompleted},
				{ID: "f2", Date: "2023-10-22", Description: "Logistics Fleet Advance", Amount: 45000, Type: TxDebit, Category: TxPayment, Status: TxPending},
				{ID: "f3", Date: "2023-10-20", Description: "Market Cess Fee", Amount: 1200, Type: TxDebit, Category: TxPayment, Status: TxCompleted},
			},
		}
	case RoleBuyer:
		return WalletSnapshot{
			Balance: 45000,
			Transactions: []Transaction{
				{ID: "b1", Date: "2023-10-24", Description: "Payment for Order #992", Amount: 25000, Type: TxDebit, Category: TxPayment, Status: TxCompleted},
				{ID: "b2", Date: "2023-10-20", Description: "Wallet Top-up", Amount: 50000, Type: TxCredit, Category: TxPayment, Status: TxCompleted},
			},
		}
	case RoleTransporter:
		return WalletSnapshot{
			Balance: 28000,
			Transactions: []Transaction{
				{ID: "tr1", Date: "2023-10-25", Description: "Trip Earnings (Nashik-Mumbai)", Amount: 8500, Type: TxCredit, Category: TxPayout, Status: TxCompleted},
				{ID: "tr2", Date: "2023-10-23", Description: "Fuel Advance deduction", Amount: 2000, Type: TxDebit, Category: TxPayment, Status: TxCompleted},
				{ID: "tr3", Date: "2023-10-21", Description: "Vehicle Maintenance", Amount: 1500, Type: TxDebit, Category: TxPayment, Status: TxCompleted},
			},
		}
	default:
		return WalletSnapshot{}
	}
}
