package config

// Model is the merged content of all loaded sequence files.
type Model struct {
	Transactions []*Transaction
}

// Transaction is one named composite exchange. Its operations execute as a
// single atomic bus transaction, chained with repeated starts.
type Transaction struct {
	Name string
	Ops  []*Op
}

// Op is one addressed operation within a transaction: either a write of
// Data or a read of Count bytes.
type Op struct {
	Device uint8 // 7-bit device address
	Read   bool
	Data   []byte // write payload; nil for reads
	Count  int    // read byte count; 0 for writes
}

// ReadCount returns the total number of bytes the transaction's read
// operations produce, which is the receive buffer size it needs.
func (t *Transaction) ReadCount() int {
	n := 0
	for _, op := range t.Ops {
		if op.Read {
			n += op.Count
		}
	}
	return n
}
