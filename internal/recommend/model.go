package recommend

// Request is the inbound recommendation request body.
type Request struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Region  string `json:"region"`
}

// Result is the response contract the front-end renders: an HTML description
// fragment and a list of short insight strings. The word-count ceilings are
// instructions to the model, not enforced here.
type Result struct {
	Description string   `json:"description"`
	Insights    []string `json:"insights"`
}

const defaultRegion = "Australia"

// fallbackResult is substituted when the model's output cannot be parsed.
// The caller still sees a success response; the substitution is only visible
// in logs and metrics.
var fallbackResult = Result{
	Description: "<p><strong>General Content</strong> shows consistent engagement. Based on historical patterns:</p><div style='margin-top:20px; padding:15px; background:#fff; border:1px solid #ddd;'><p><strong>Option 1</strong> – <em>Monday: 9th December 2025</em> @ <strong>9:00 AM</strong><br>Relevancy Score: <strong>85%</strong></p><p style='margin-top:15px;'><strong>Option 2</strong> – <em>Thursday: 12th December 2025</em> @ <strong>2:00 PM</strong><br>Relevancy Score: <strong>80%</strong></p></div>",
	Insights: []string{
		"Historical patterns analyzed",
		"Weekday mornings recommended",
		"Thursday afternoons show engagement",
	},
}
