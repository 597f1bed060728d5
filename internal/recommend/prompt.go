package recommend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/oud-emporium/internal/catalog"
	"github.com/Veraticus/oud-emporium/internal/llm"
	"github.com/Veraticus/oud-emporium/internal/model"
)

const systemPrompt = `You are a world-renowned master perfumer at a luxury oud emporium.
You MUST respond with ONLY a valid JSON object with exactly these string fields:
"productId" (copied exactly from the product list), "reasoning" and "occasionSuggestion".
Do not include markdown formatting or commentary before or after the JSON.`

// BuildRequest renders the model request for prefs against the catalog
// projection. Only id, name and scent profile of each product are included.
func BuildRequest(prefs model.Preferences, products []catalog.Summary) llm.Request {
	var b strings.Builder

	b.WriteString("A client is seeking your expert advice to find their perfect scent.\n")
	b.WriteString("Analyze the client's preferences and recommend ONE product from the provided list.\n\n")

	b.WriteString("Client's preferences:\n")
	fmt.Fprintf(&b, "- Occasion: %s\n", prefs.Occasion)
	fmt.Fprintf(&b, "- Desired mood: %s\n", prefs.Mood)
	fmt.Fprintf(&b, "- Preferred scent families: %s\n\n", strings.Join(prefs.Scents, ", "))

	b.WriteString("Available products:\n")
	for _, p := range products {
		quoted := make([]string, len(p.ScentProfile))
		for i, s := range p.ScentProfile {
			quoted[i] = strconv.Quote(s)
		}
		fmt.Fprintf(&b, "{ id: %s, name: %s, scentProfile: [%s] }\n",
			strconv.Quote(p.ID), strconv.Quote(p.Name), strings.Join(quoted, ", "))
	}

	b.WriteString("\nSelect the single best product for the client. Your reasoning should be eloquent and evocative, ")
	b.WriteString("connecting the product's scent profile to the client's preferences. ")
	b.WriteString("The occasionSuggestion names an ideal occasion or setting to wear it.")

	return llm.Request{
		System: systemPrompt,
		Prompt: b.String(),
	}
}
