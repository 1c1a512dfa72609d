package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/RenoBuildCo/reno-marketplace/internal/money"
)

type RenovationInput struct {
	RenovationType string
	SquareFootage  int
	QualityLevel   string
	Location       string
	Scope          string
}

type ConstructionInput struct {
	ConstructionType string
	SquareFootage    int
	Stories          string
	QualityLevel     string
	Location         string
	LotSize          string
	Details          string
}

// EstimateResult is what the API returns: every figure already formatted
// as a rupee string, with the untouched model output kept in Raw.
type EstimateResult struct {
	TotalCost       string            `json:"totalCost"`
	Breakdown       map[string]string `json:"breakdown"`
	Recommendations string            `json:"recommendations"`
	Timeline        string            `json:"timeline"`
	Raw             json.RawMessage   `json:"raw"`
}

type costRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// flexText accepts either a string or a list of strings from the model.
type flexText string

func (f *flexText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexText(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*f = flexText(strings.Join(list, "\n"))
		return nil
	}
	return fmt.Errorf("expected string or string array")
}

// Estimator delegates cost reasoning to the language model and shapes
// the structured reply.
type Estimator struct {
	client *Client
}

func NewEstimator(client *Client) *Estimator {
	return &Estimator{client: client}
}

const estimatorSystemPrompt = "You are a professional %s cost estimator with 20 years of experience in the Indian construction industry. Provide costs in Indian Rupees (INR) using Indian market rates."

func (e *Estimator) EstimateRenovation(ctx context.Context, in RenovationInput) (*EstimateResult, error) {
	prompt := fmt.Sprintf(`Generate a detailed cost estimation for a %s renovation project in India.

Project details:
- Type: %s
- Square footage: %d sq ft
- Quality level: %s
- Location: %s, India
- Scope: %s

Please provide a JSON response with the following fields:
- totalCostMin (number): Minimum total cost estimate in Indian Rupees (INR)
- totalCostMax (number): Maximum total cost estimate in Indian Rupees (INR)
- breakdown (object): Cost breakdown with the following fields:
  - materials (object): min and max cost for materials in INR
  - labor (object): min and max cost for labor in INR
  - fixtures (object): min and max cost for fixtures and appliances in INR
  - permits (number): Estimated permit costs in INR
- recommendations (string): Three practical cost-saving recommendations applicable in India
- timeline (string): Estimated project timeline for Indian construction standards

Base your estimates on current Indian construction market prices.
Only provide the JSON response, nothing else.`,
		in.RenovationType, in.RenovationType, in.SquareFootage,
		in.QualityLevel, in.Location, in.Scope,
	)

	content, err := e.client.Complete(
		ctx,
		fmt.Sprintf(estimatorSystemPrompt, "renovation"),
		prompt,
		true,
	)
	if err != nil {
		return nil, err
	}

	var raw struct {
		TotalCostMin float64 `json:"totalCostMin"`
		TotalCostMax float64 `json:"totalCostMax"`
		Breakdown    struct {
			Materials costRange `json:"materials"`
			Labor     costRange `json:"labor"`
			Fixtures  costRange `json:"fixtures"`
			Permits   float64   `json:"permits"`
		} `json:"breakdown"`
		Recommendations flexText `json:"recommendations"`
		Timeline        string   `json:"timeline"`
	}

	cleaned := stripFences(content)
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("parse estimate: %w", err)
	}

	return &EstimateResult{
		TotalCost: money.RupeeRange(raw.TotalCostMin, raw.TotalCostMax),
		Breakdown: map[string]string{
			"materials": money.RupeeRange(raw.Breakdown.Materials.Min, raw.Breakdown.Materials.Max),
			"labor":     money.RupeeRange(raw.Breakdown.Labor.Min, raw.Breakdown.Labor.Max),
			"fixtures":  money.RupeeRange(raw.Breakdown.Fixtures.Min, raw.Breakdown.Fixtures.Max),
			"permits":   money.Rupees(raw.Breakdown.Permits),
		},
		Recommendations: string(raw.Recommendations),
		Timeline:        raw.Timeline,
		Raw:             json.RawMessage(cleaned),
	}, nil
}

func (e *Estimator) EstimateConstruction(ctx context.Context, in ConstructionInput) (*EstimateResult, error) {
	prompt := fmt.Sprintf(`Generate a detailed cost estimation for a %s construction project in India.

Project details:
- Type: %s
- Square footage: %d sq ft
- Number of stories: %s
- Quality level: %s
- Location: %s, India
- Lot size: %s
- Additional details: %s

Please provide a JSON response with the following fields:
- totalCostMin (number): Minimum total cost estimate in Indian Rupees (INR)
- totalCostMax (number): Maximum total cost estimate in Indian Rupees (INR)
- breakdown (object): Cost breakdown with the following fields:
  - foundation (object): min and max cost for foundation in INR
  - framing (object): min and max cost for framing in INR
  - exterior (object): min and max cost for exterior finishes in INR
  - interior (object): min and max cost for interior finishes in INR
  - mechanical (object): min and max cost for mechanical systems in INR
  - permits (number): Estimated permit costs in INR
- recommendations (string): Three practical cost-saving recommendations applicable in India
- timeline (string): Estimated project timeline for Indian construction standards

Base your estimates on current Indian construction market prices.
Only provide the JSON response, nothing else.`,
		in.ConstructionType, in.ConstructionType, in.SquareFootage,
		in.Stories, in.QualityLevel, in.Location, in.LotSize, in.Details,
	)

	content, err := e.client.Complete(
		ctx,
		fmt.Sprintf(estimatorSystemPrompt, "construction"),
		prompt,
		true,
	)
	if err != nil {
		return nil, err
	}

	var raw struct {
		TotalCostMin float64 `json:"totalCostMin"`
		TotalCostMax float64 `json:"totalCostMax"`
		Breakdown    struct {
			Foundation costRange `json:"foundation"`
			Framing    costRange `json:"framing"`
			Exterior   costRange `json:"exterior"`
			Interior   costRange `json:"interior"`
			Mechanical costRange `json:"mechanical"`
			Permits    float64   `json:"permits"`
		} `json:"breakdown"`
		Recommendations flexText `json:"recommendations"`
		Timeline        string   `json:"timeline"`
	}

	cleaned := stripFences(content)
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("parse estimate: %w", err)
	}

	return &EstimateResult{
		TotalCost: money.RupeeRange(raw.TotalCostMin, raw.TotalCostMax),
		Breakdown: map[string]string{
			"foundation": money.RupeeRange(raw.Breakdown.Foundation.Min, raw.Breakdown.Foundation.Max),
			"framing":    money.RupeeRange(raw.Breakdown.Framing.Min, raw.Breakdown.Framing.Max),
			"exterior":   money.RupeeRange(raw.Breakdown.Exterior.Min, raw.Breakdown.Exterior.Max),
			"interior":   money.RupeeRange(raw.Breakdown.Interior.Min, raw.Breakdown.Interior.Max),
			"mechanical": money.RupeeRange(raw.Breakdown.Mechanical.Min, raw.Breakdown.Mechanical.Max),
			"permits":    money.Rupees(raw.Breakdown.Permits),
		},
		Recommendations: string(raw.Recommendations),
		Timeline:        raw.Timeline,
		Raw:             json.RawMessage(cleaned),
	}, nil
}
