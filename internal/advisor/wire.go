package advisor

// generateContent request and response bodies.

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"topP,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

const receiptPrompt = "Extract transaction details from this receipt into JSON: amount (number), date (YYYY-MM-DD), " +
	"category (select from: Food, Travel, Shopping, Bills, Salary, Others), note (vendor name)."

const smsPrompt = `Extract transaction details from this SMS text: %q.
Return JSON: { amount: number, type: 'Income'|'Expense', provider: string, note: string, date: 'YYYY-MM-DD' }`

const voicePrompt = `Parse this Bengali financial command into JSON: %q.
Expected JSON format: { amount: number, category: string, note: string, type: 'Income' | 'Expense' }.`

const forecastPrompt = `Based on these transactions: %s, predict the next month's spending.
Analyze trends for categories like Food, Travel, Utility Bills.
Return JSON with nextMonthTotal (number), confidenceScore (0-100), insights (Bengali string), and categoryBreakdown (array of {category, predictedAmount, reason (Bengali), trend: 'Up'|'Down'|'Stable'}).`

const askPrompt = `You are FinTrack, a premium financial advisor. User asked: %q.
Context: %s.
Provide helpful, brief financial advice in Bengali. Focus on savings, investments, and budgeting.`
