package extract

// extractionSystemPrompt is the system prompt for entity extraction.
const extractionSystemPrompt = `You are an expert analyst who extracts structured information from documents.
Identify persons (full names), companies (legal entity names), and relevant events.

Always respond with valid JSON. Do not include any text outside the JSON object.`

// extractionUserPrompt is the user prompt template for entity extraction.
// The %s placeholder is replaced with the chunk content.
const extractionUserPrompt = `Analyze the following excerpt and extract:
- persons: names of individuals mentioned
- companies: organizations, companies, or institutional entities
- events: notable events, resolutions, agreements, or developments

Respond with JSON only:
{"companies":[...],"persons":[...],"events":[...]}

EXCERPT:
---
%s
---`
