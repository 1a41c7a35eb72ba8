package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"voyagecover.io/recommender-web/internal/cart"
	hdl "voyagecover.io/recommender-web/internal/handlers"
	mw "voyagecover.io/recommender-web/internal/middleware"
	"voyagecover.io/recommender-web/internal/wizard"
)

// RecommenderHandler renders the widget page with the questionnaire at its
// current step (step 1 on a fresh visit).
func RecommenderHandler(w http.ResponseWriter, r *http.Request) {
	sel := wizard.FromQuery(r.URL.Query())
	vm := hdl.PageData{
		Title:     "Find your travel cover",
		Path:      r.URL.Path,
		Analytics: hdl.LoadAnalyticsFromEnv(),
		Widget:    buildStepView(sel),
	}
	vm.SEO.Title = "Find your travel cover | VoyageCover"
	vm.SEO.Description = "Answer three questions and get a travel protection plan matched to your trip."
	render(w, r, "page_recommender", vm)
}

// RecommenderStepFrag renders the questionnaire fragment for the selections
// carried in the query. Once all three answers are in, it serves the result
// card instead.
func RecommenderStepFrag(w http.ResponseWriter, r *http.Request) {
	sel := wizard.FromQuery(r.URL.Query())
	if sel.Complete() {
		serveResult(w, r, sel)
		return
	}
	pushStepURL(w, sel)
	render(w, r, "frag_step", buildStepView(sel))
}

// RecommenderResultFrag serves the result card for completed selections.
func RecommenderResultFrag(w http.ResponseWriter, r *http.Request) {
	sel := wizard.FromQuery(r.URL.Query())
	if !sel.Complete() {
		pushStepURL(w, sel)
		render(w, r, "frag_step", buildStepView(sel))
		return
	}
	serveResult(w, r, sel)
}

// RecommenderResetHandler returns the wizard to step 1 with all selections
// cleared.
func RecommenderResetHandler(w http.ResponseWriter, r *http.Request) {
	sel := wizard.Selections{}.Reset()
	w.Header().Set("HX-Push-Url", "/")
	render(w, r, "frag_step", buildStepView(sel))
}

func pushStepURL(w http.ResponseWriter, sel wizard.Selections) {
	push := "/"
	if q := sel.Query().Encode(); q != "" {
		push += "?" + q
	}
	w.Header().Set("HX-Push-Url", push)
}

// serveResult resolves, loads and paints the recommendation. Load failures
// are operator diagnostics, not shopper errors: nothing is swapped in and
// the questionnaire stays put.
func serveResult(w http.ResponseWriter, r *http.Request, sel wizard.Selections) {
	view, err := buildResultView(r.Context(), sel)
	if err != nil {
		logger.Warn("recommendation unavailable",
			zap.String("trip", string(sel.Trip)),
			zap.String("cost", string(sel.Cost)),
			zap.String("cover", string(sel.Cover)),
			zap.Error(err))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	view.CSRFToken = mw.GetSession(r).CSRFToken
	push := "/"
	if q := sel.Query().Encode(); q != "" {
		push += "?" + q
	}
	w.Header().Set("HX-Push-Url", push)
	render(w, r, "frag_result", view)
}

// CartAddHandler proxies the add-to-cart submission to the storefront cart
// endpoint and renders the CTA control in its next state.
func CartAddHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	variantID, _ := strconv.ParseInt(r.FormValue("id"), 10, 64)
	quantity, _ := strconv.Atoi(r.FormValue("quantity"))
	if quantity <= 0 {
		quantity = 1
	}
	sectionID := sectionIDOr(r.FormValue("sections"), settings)

	view := CartButtonView{
		CSRFToken: mw.GetSession(r).CSRFToken,
		SectionID: sectionID,
		VariantID: variantID,
	}

	result, err := cartClient.Add(r.Context(), cart.AddRequest{
		VariantID: variantID,
		Quantity:  quantity,
		SectionID: sectionID,
	})
	if err != nil {
		// Transport failure behaves like an application error: inline
		// message, control restored for retry.
		logger.Warn("cart add failed", zap.Int64("variant_id", variantID), zap.Error(err))
		view.State = "error"
		view.ErrorMessage = "An error occurred. Please try again."
		render(w, r, "frag_cart_button", view)
		return
	}
	if result.Err() {
		logger.Warn("cart add rejected",
			zap.Int64("variant_id", variantID),
			zap.String("status", string(result.Status)),
			zap.String("message", result.Message))
		view.State = "error"
		view.ErrorMessage = result.ErrorMessage()
		render(w, r, "frag_cart_button", view)
		return
	}

	// Broadcast the cart change for other page components to observe.
	payload := map[string]any{
		"cart:add": map[string]any{
			"items":    result.Items,
			"sections": result.Sections,
		},
	}
	if raw, err := json.Marshal(payload); err == nil {
		w.Header().Set("HX-Trigger", string(raw))
	}
	view.State = "added"
	render(w, r, "frag_cart_button", view)
}
