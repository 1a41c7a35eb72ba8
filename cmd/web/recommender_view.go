package main

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"voyagecover.io/recommender-web/internal/catalog"
	"voyagecover.io/recommender-web/internal/format"
	"voyagecover.io/recommender-web/internal/htmltext"
	"voyagecover.io/recommender-web/internal/recommend"
	"voyagecover.io/recommender-web/internal/theme"
	"voyagecover.io/recommender-web/internal/wizard"
)

// OptionCard is one selectable answer within a step.
type OptionCard struct {
	Step        int
	Value       string
	Label       string
	Description string
	// TargetQuery carries the accumulated selections plus this option.
	TargetQuery string
	Selected    bool
}

// StepView renders the questionnaire at its current step.
type StepView struct {
	Step            int
	Heading         string
	Options         []OptionCard
	Progress        []wizard.ProgressStep
	ProgressPercent int
	Query           string
}

// ResultView renders the recommendation card.
type ResultView struct {
	SectionID string
	CSRFToken string

	HasImage bool
	ImageURL string
	ImageAlt string

	PriceText string
	// Headline is the override-or-product text slot; ProductTitle is the
	// dedicated live catalog title slot.
	Headline     string
	ProductTitle string
	OverrideCopy string
	CopyText     string
	Benefits     []string

	CTAType       string
	VariantID     int64
	ProductHandle string
	ProductURL    string
	Query         string
}

// CartButton derives the initial CTA control state for the result card.
func (v ResultView) CartButton() CartButtonView {
	return CartButtonView{
		State:     "idle",
		CSRFToken: v.CSRFToken,
		SectionID: v.SectionID,
		VariantID: v.VariantID,
	}
}

// CartButtonView renders the CTA control in its idle/added/error states.
type CartButtonView struct {
	State        string // "idle", "added", "error"
	ErrorMessage string
	CSRFToken    string
	SectionID    string
	VariantID    int64
}

type stepDef struct {
	heading string
	options []OptionCard
}

// Questionnaire copy, one block per step.
var stepDefs = map[int]stepDef{
	1: {
		heading: "What kind of trip are you taking?",
		options: []OptionCard{
			{Step: 1, Value: "single", Label: "Single trip", Description: "One journey, there and back"},
			{Step: 1, Value: "multi", Label: "Multiple trips", Description: "Frequent travel throughout the year"},
		},
	},
	2: {
		heading: "How much does your trip cost?",
		options: []OptionCard{
			{Step: 2, Value: "under_500", Label: "Under €500", Description: "Budget getaways and short breaks"},
			{Step: 2, Value: "500_1500", Label: "€500 – €1,500", Description: "Mid-range journeys"},
			{Step: 2, Value: "over_1500", Label: "Over €1,500", Description: "High-value and long-haul trips"},
		},
	},
	3: {
		heading: "How much coverage do you want?",
		options: []OptionCard{
			{Step: 3, Value: "standard", Label: "Standard", Description: "The essentials for peace of mind"},
			{Step: 3, Value: "premium", Label: "Premium", Description: "Enhanced medical and cancellation cover"},
			{Step: 3, Value: "max", Label: "Max", Description: "Everything we offer, fully loaded"},
		},
	},
}

// buildStepView assembles the questionnaire fragment for the current step.
func buildStepView(sel wizard.Selections) StepView {
	step := sel.Step()
	if step > wizard.StepCount {
		step = wizard.StepCount
	}
	def := stepDefs[step]

	options := make([]OptionCard, 0, len(def.options))
	current := selectedValue(sel, step)
	for _, o := range def.options {
		o.TargetQuery = sel.WithSelection(step, o.Value).Query().Encode()
		o.Selected = o.Value == current
		options = append(options, o)
	}

	return StepView{
		Step:            step,
		Heading:         def.heading,
		Options:         options,
		Progress:        sel.Progress(),
		ProgressPercent: format.Percent(sel.ProgressFraction()),
		Query:           sel.Query().Encode(),
	}
}

func selectedValue(sel wizard.Selections, step int) string {
	switch step {
	case 1:
		return string(sel.Trip)
	case 2:
		return string(sel.Cost)
	case 3:
		return string(sel.Cover)
	}
	return ""
}

var errNoRecommendation = errors.New("no recommendation for selections")

// buildResultView resolves the recommendation, loads live catalog data and
// assembles the result card.
func buildResultView(ctx context.Context, sel wizard.Selections) (ResultView, error) {
	mapping, ok := recommend.Resolve(settings.Mappings(), sel)
	if !ok {
		return ResultView{}, errNoRecommendation
	}
	ms := mapping.Settings

	product, err := catalogClient.Product(ctx, ms.Product)
	if err != nil {
		return ResultView{}, err
	}
	variant, ok := catalog.PickVariant(product, ms.VariantID, ms.VariantName)
	if !ok {
		return ResultView{}, errors.New("product has no variants")
	}

	view := ResultView{
		SectionID:     settings.SectionID(),
		ProductTitle:  product.Title,
		ProductHandle: product.Handle,
		ProductURL:    settings.ProductURL(product.Handle),
		CTAType:       settings.CTAType,
		VariantID:     variant.ID,
		Query:         sel.Query().Encode(),
	}

	if src, ok := catalog.PickImage(product, variant, ms.ImageID); ok {
		view.HasImage = true
		view.ImageURL = src
		view.ImageAlt = product.Title
	} else {
		logger.Warn("no display image for product",
			zap.Int64("product_id", product.ID),
			zap.Int64("variant_id", variant.ID),
			zap.String("mapping_image_id", ms.ImageID))
	}

	// Override-or-product headline alongside the dedicated live title slot.
	view.Headline = strings.TrimSpace(ms.OverrideTitle)
	if view.Headline == "" {
		view.Headline = product.Title
	}

	// Copy slots render plain text only; markup never reaches the page.
	view.OverrideCopy = htmltext.Text(ms.OverrideCopy)
	view.CopyText = htmltext.Text(product.BodyHTML)
	if view.CopyText == "" {
		view.CopyText = strings.TrimSpace(product.Description)
	}

	switch {
	case strings.TrimSpace(ms.OverridePrice) != "":
		view.PriceText = strings.TrimSpace(ms.OverridePrice)
	case variant.Price.Set():
		view.PriceText = format.USD(variant.Price.Amount())
	default:
		view.PriceText = "Price on request"
	}

	view.Benefits = recommend.BenefitTexts(settings.Benefits())
	if len(view.Benefits) == 0 {
		level := ms.CoverageLevel
		if level == "" {
			level = string(sel.Cover)
		}
		view.Benefits = recommend.DefaultBenefits(level)
	}

	return view, nil
}

// sectionIDOr falls back to the configured section id when the form did not
// carry one.
func sectionIDOr(formValue string, s theme.Settings) string {
	if v := strings.TrimSpace(formValue); v != "" {
		return v
	}
	return s.SectionID()
}
