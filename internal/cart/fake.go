package cart

import (
	"encoding/json"
	"fmt"

	"github.com/oklog/ulid/v2"
)

// fakeAddResult mimics a successful cart add for demo and test runs when no
// cart endpoint is configured.
func fakeAddResult(variantID int64, quantity int, sectionID string) AddResult {
	key := ulid.Make().String()
	item, _ := json.Marshal(map[string]any{
		"id":       variantID,
		"key":      key,
		"quantity": quantity,
	})
	result := AddResult{Items: []json.RawMessage{item}}
	if sectionID != "" {
		frag, _ := json.Marshal(fmt.Sprintf(`<div id="shopify-section-%s"></div>`, sectionID))
		result.Sections = map[string]json.RawMessage{sectionID: frag}
	}
	return result
}
