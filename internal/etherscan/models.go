package etherscan

import "time"

// Transaction is one entry of an account's transaction list as reported by
// the block explorer, ordered descending by time.
type Transaction struct {
	Hash      string
	From      string
	To        string // empty for contract creation
	Value     string // wei
	Method    string // method selector; "" or "0x" means plain value transfer
	Timestamp time.Time
	GasUsed   string
	GasPrice  string
}

type txListResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Result  []txListRow `json:"result"`
}

type txListRow struct {
	Hash         string `json:"hash"`
	From         string `json:"from"`
	To           string `json:"to"`
	Value        string `json:"value"`
	MethodID     string `json:"methodId"`
	FunctionName string `json:"functionName"`
	TimeStamp    string `json:"timeStamp"`
	GasUsed      string `json:"gasUsed"`
	GasPrice     string `json:"gasPrice"`
}
