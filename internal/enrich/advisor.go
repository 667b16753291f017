package enrich

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"real-estate-intelligence/internal/models"
)

// Advisor produces free-text commentary for one aspect of an analysis. The
// returned text is treated as opaque and never validated.
type Advisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
}

const advisorSystemPrompt = `You are a real estate advisory specialist. Given property details and
computed figures, provide a short, plain-text professional commentary. Do not
repeat the numbers back verbatim; interpret them for an investor audience.`

// AnthropicMessager is the subset of the Anthropic client the advisor uses.
// It exists so tests can inject a mock.
type AnthropicMessager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// AnthropicClientCreator builds the messager from an API key; overridable in
// tests.
type AnthropicClientCreator func(apiKey string) AnthropicMessager

func defaultAnthropicCreator(apiKey string) AnthropicMessager {
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &c.Messages
}

var newAnthropicClient AnthropicClientCreator = defaultAnthropicCreator

// AnthropicAdvisor calls the Anthropic messages API.
type AnthropicAdvisor struct {
	messages  AnthropicMessager
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropicAdvisorFromEnv builds an advisor from ANTHROPIC_API_KEY. An
// unset key is reported as an error so the caller can run unenriched.
func NewAnthropicAdvisorFromEnv(model string) (*AnthropicAdvisor, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_20250514)
	}
	return &AnthropicAdvisor{
		messages:  newAnthropicClient(apiKey),
		model:     anthropic.Model(model),
		maxTokens: 1024,
	}, nil
}

func (a *AnthropicAdvisor) Advise(ctx context.Context, prompt string) (string, error) {
	resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: advisorSystemPrompt}},
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New("empty advisor response")
	}
	return text, nil
}

func valuationPrompt(p models.PropertyInput, a models.AnalysisRecord) string {
	return fmt.Sprintf(`Comment on this property valuation:

Property: %s
Bedrooms: %d, Bathrooms: %g, Sqft: %d, Age: %d years
Location: %s, Condition: %s, Neighborhood: %s
Estimated value: %.2f (%.2f per sqft, confidence %.2f)

Cover the key factors affecting value and how it compares to the market.`,
		p.Address, p.Bedrooms, p.Bathrooms, p.Sqft, p.AgeYears,
		p.LocationType, p.Condition, p.NeighborhoodRating,
		a.Valuation.EstimatedValue, a.Valuation.PricePerSqft, a.Valuation.ConfidenceScore)
}

func investmentPrompt(p models.PropertyInput, a models.AnalysisRecord) string {
	return fmt.Sprintf(`Comment on this property as an investment:

Property: %s (%s, %s condition)
Estimated value: %.2f
Annual rental potential: %.2f
Annual appreciation: %.2f
ROI: %.2f%% (score %d/10)

Cover the rental outlook, return profile, and holding-period considerations.`,
		p.Address, p.LocationType, p.Condition,
		a.Valuation.EstimatedValue,
		a.InvestmentAnalysis.AnnualRentalPotential,
		a.InvestmentAnalysis.AnnualAppreciation,
		a.InvestmentAnalysis.ROIPercentage,
		a.InvestmentAnalysis.InvestmentScore)
}

func marketPrompt(p models.PropertyInput, a models.AnalysisRecord) string {
	return fmt.Sprintf(`Comment on the market context for this property:

Property: %s
Location type: %s, Neighborhood rating: %s
Market trend: %s (%s growth)
Overall risk: %s

Cover neighborhood trajectory, demand drivers, and timing considerations.`,
		p.Address, p.LocationType, p.NeighborhoodRating,
		a.MarketAnalysis.MarketTrend, a.MarketAnalysis.MarketGrowthRate,
		a.RiskAssessment.OverallRisk)
}
