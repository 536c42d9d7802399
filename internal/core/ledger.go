package core

// Ledger is the append-only transaction store for one session. It is the
// single source of truth: every aggregate is recomputed from it on read,
// never cached. No update or remove operations exist.
//
// The ledger itself is not safe for concurrent use; mutation is
// serialized by the owning Tracker.
type Ledger struct {
	txs []Transaction
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(t Transaction) {
	l.txs = append(l.txs, t)
}

// All returns the transactions in insertion order. The slice is a copy so
// callers cannot mutate the store through it.
func (l *Ledger) All() []Transaction {
	out := make([]Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

func (l *Ledger) Len() int {
	return len(l.txs)
}
