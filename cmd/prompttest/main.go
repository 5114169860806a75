// Command prompttest renders the recommendation prompt with sample data so
// changes to the template can be eyeballed without calling the model.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/heera2507/Seasonality-Publish-Recommender/internal/recommend"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/store"
)

func main() {
	title := flag.String("title", "Spring gardening trends take off", "Article title")
	contentPath := flag.String("content", "", "Path to article content file (optional; sample text if empty)")
	region := flag.String("region", "Australia", "Target region")
	flag.Parse()

	content := sampleContent
	if strings.TrimSpace(*contentPath) != "" {
		data, err := os.ReadFile(*contentPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read content: %v\n", err)
			os.Exit(1)
		}
		content = string(data)
	}

	prompt := recommend.BuildPrompt(recommend.PromptInput{
		Title:        *title,
		Content:      content,
		Region:       *region,
		Subscription: sampleSubscriptionRows(),
		Seasonality:  sampleSeasonalityRows(),
	})
	fmt.Println(prompt)
}

const sampleContent = "Gardening content engagement climbs every September as households prepare beds for summer planting. Nurseries report a surge in native seedling sales and weekend workshop bookings across the east coast."

func sampleSubscriptionRows() []store.Row {
	return []store.Row{
		{"category": "Lifestyle", "day_of_week": "Monday", "avg_engagement": 0.62, "subscriber_reads": 1840},
		{"category": "Lifestyle", "day_of_week": "Thursday", "avg_engagement": 0.71, "subscriber_reads": 2210},
		{"category": "News", "day_of_week": "Sunday", "avg_engagement": 0.55, "subscriber_reads": 3105},
	}
}

func sampleSeasonalityRows() []store.Row {
	return []store.Row{
		{"topic": "gardening", "month": "September", "relative_interest": 1.34},
		{"topic": "gardening", "month": "December", "relative_interest": 0.78},
		{"topic": "finance", "month": "June", "relative_interest": 1.22},
	}
}
