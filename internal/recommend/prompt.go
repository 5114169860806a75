package recommend

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/heera2507/Seasonality-Publish-Recommender/internal/store"
)

const (
	// maxReferenceRows caps each dataset before prompt inclusion. Rows beyond
	// the cap are never seen by the model; the queries carry no ORDER BY, so
	// which rows survive is up to the store.
	maxReferenceRows = 20
	// maxContentRunes caps the article content included in the prompt.
	maxContentRunes = 1000
)

// PromptInput carries everything the prompt template needs.
type PromptInput struct {
	Title        string
	Content      string
	Region       string
	Subscription []store.Row
	Seasonality  []store.Row
}

var promptTemplate = template.Must(template.New("recommend").Parse(`
You are an expert publishing strategist analyzing article engagement data.

ARTICLE TO ANALYZE:
Title: {{.Title}}
Content: {{.Content}}
Target Region: {{.Region}}

DATASET 1 - Subscription Behaviour (user engagement history):
{{.SubscriptionData}}

DATASET 2 - Seasonality Reference (topic timing performance):
{{.SeasonalityData}}

YOUR TASK:
Analyze the article topic and determine the BEST day + time to publish based on:
1. Historical engagement patterns from the datasets
2. Seasonality trends for similar content
3. Day-of-week and time-of-day performance

CRITICAL: Respond with ONLY valid JSON in this EXACT format (no markdown, no code blocks):

{
    "description": "<p><strong>[CATEGORY]</strong> shows the highest engagement on <strong>[DAY]</strong>. Additionally, [context from dataset]. Based on these trends, the following publishing times carry the highest relevancy:</p><div style='margin-top:20px; padding:15px; background:#fff; border:1px solid #ddd;'><p><strong>Option 1</strong> – <em>[Day: Date]</em> @ <strong>[Time]</strong><br>Relevancy Score: <strong>[X]%</strong></p><p style='margin-top:15px;'><strong>Option 2</strong> – <em>[Day: Date]</em> @ <strong>[Time]</strong><br>Relevancy Score: <strong>[Y]%</strong></p></div>",
    "insights": [
        "Data-driven insight 1",
        "Data-driven insight 2"
    ]
}
Ensure you keep the data as concise as possible. each data-driven insight should contain max 20 words. The description should contain max 100 words.
Respond with ONLY the JSON object. No other text.
`))

type promptData struct {
	Title            string
	Content          string
	Region           string
	SubscriptionData string
	SeasonalityData  string
}

// BuildPrompt renders the recommendation prompt. Content is capped to the
// first maxContentRunes characters and each dataset to maxReferenceRows rows.
func BuildPrompt(input PromptInput) string {
	data := promptData{
		Title:            input.Title,
		Content:          truncateRunes(input.Content, maxContentRunes),
		Region:           input.Region,
		SubscriptionData: renderRows(truncateRows(input.Subscription, maxReferenceRows)),
		SeasonalityData:  renderRows(truncateRows(input.Seasonality, maxReferenceRows)),
	}
	var b strings.Builder
	if err := promptTemplate.Execute(&b, data); err != nil {
		// The template has no failure modes for string fields; treat a
		// failure here as a programming error.
		panic(fmt.Sprintf("render recommendation prompt: %v", err))
	}
	return b.String()
}

func truncateRows(rows []store.Row, n int) []store.Row {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// renderRows serializes dataset rows as readable indented JSON for the prompt.
func renderRows(rows []store.Row) string {
	if len(rows) == 0 {
		return "[]"
	}
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		// Store values that defeat JSON marshaling still need to reach the
		// model in some readable form.
		return fmt.Sprintf("%v", rows)
	}
	return string(out)
}
