package openai

// TransactionDetails carries the persisted transaction fields embedded into
// the summary prompt.
type TransactionDetails struct {
	Hash      string  `json:"hash"`
	From      string  `json:"from"`
	To        *string `json:"to"`
	Value     string  `json:"value"`
	Method    *string `json:"method"`
	Category  string  `json:"category"`
	Timestamp string  `json:"timestamp"`
	GasUsed   string  `json:"gasUsed"`
	GasPrice  string  `json:"gasPrice"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code"`
}
