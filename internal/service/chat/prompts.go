package chat

import "strings"

// Document categories drive the tone of the system prompt.
const (
	DocTypeResearch  = "research_paper"
	DocTypeBusiness  = "business_report"
	DocTypeLegal     = "legal_document"
	DocTypeTechnical = "technical_manual"
	DocTypeGeneral   = "general_document"
)

// Checked in order; the first category with any marker present wins.
var docTypeMarkers = []struct {
	tag     string
	markers []string
}{
	{DocTypeResearch, []string{"research", "study", "methodology", "hypothesis", "abstract"}},
	{DocTypeBusiness, []string{"revenue", "profit", "financial", "quarterly", "annual", "earnings"}},
	{DocTypeLegal, []string{"contract", "agreement", "terms", "legal", "clause"}},
	{DocTypeTechnical, []string{"manual", "guide", "instructions", "procedure"}},
}

// DetectDocType classifies a piece of text, normally the retrieved context
// for the current query, by scanning for category markers.
func DetectDocType(text string) string {
	lower := strings.ToLower(text)
	for _, c := range docTypeMarkers {
		for _, marker := range c.markers {
			if strings.Contains(lower, marker) {
				return c.tag
			}
		}
	}
	return DocTypeGeneral
}

var docTypeIntros = map[string]string{
	DocTypeResearch:  "You are a research assistant helping a reader understand an academic paper. Explain findings precisely, cite the methodology when relevant, and do not overstate conclusions.",
	DocTypeBusiness:  "You are an analyst helping a reader understand a business report. Be concrete about figures, trends, and timeframes mentioned in the material.",
	DocTypeLegal:     "You are an assistant helping a reader understand a legal document. Stay close to the wording of the material and flag when a question needs professional legal advice.",
	DocTypeTechnical: "You are a technical assistant helping a reader understand product documentation. Give step-by-step, actionable answers grounded in the material.",
	DocTypeGeneral:   "You are a helpful assistant answering questions about the user's documents.",
}

// BuildSystemPrompt assembles the full system message from the document
// category, the retrieved context, the rendered conversation history
// and the follow-up flag.
func BuildSystemPrompt(docType, contextText, historyText string, followUp bool) string {
	var b strings.Builder

	intro, ok := docTypeIntros[docType]
	if !ok {
		intro = docTypeIntros[DocTypeGeneral]
	}
	b.WriteString(intro)
	b.WriteString("\n\nAnswer using ONLY the document excerpts below. If the excerpts do not contain the answer, say so instead of guessing.\n")

	b.WriteString("\nDOCUMENT EXCERPTS:\n")
	b.WriteString(contextText)
	b.WriteString("\n")

	if historyText != "" {
		b.WriteString("\n")
		b.WriteString(historyText)
		b.WriteString("\n")
	}

	if followUp {
		b.WriteString("\nThe user's question is a follow-up to the conversation above. Resolve references like \"it\", \"that\" or \"more\" against the previous exchanges before answering.\n")
	}

	return b.String()
}
