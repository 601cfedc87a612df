package analyzer

import (
	"encoding/json"
	"strings"
)

const promptHeader = `Analyze the semantic relevance of the following documents to the query.

Query: `

const promptRubric = `

For each document assess:

1. Relevance score (0-100):
   - 90-100: direct and comprehensive answer
   - 70-89: highly relevant, partial answer
   - 50-69: somewhat relevant, peripheral content
   - 30-49: minimal relevance
   - 0-29: not relevant

2. Content summary (2-3 sentences): what the document discusses

3. Relevant excerpts: the 2-3 most relevant passages

IMPORTANT - use OR logic:
- If any part of a document relates to any concept in the query, mark it relevant
- Use semantic understanding, not keyword matching
- Consider synonyms, related concepts and contextual meaning

Documents:
`

const promptFooter = `

Reply in JSON:
{
  "analyses": [
    {
      "file": "file path",
      "relevance": 85,
      "summary": "the document discusses...",
      "excerpts": ["excerpt 1", "excerpt 2"]
    }
  ]
}`

// BuildPrompt serializes a batch into the natural-language prompt the
// external reasoner receives.
func BuildPrompt(query string, docs []Input) string {
	payload, _ := json.MarshalIndent(docs, "", "  ")
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString(query)
	b.WriteString(promptRubric)
	b.Write(payload)
	b.WriteString(promptFooter)
	return b.String()
}
