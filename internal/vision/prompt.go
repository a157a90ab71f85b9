package vision

// BuildExtractionPrompt returns the fixed instruction prompt sent with every
// invoice image. The label priority list and the three-pass confidence check
// are load-bearing for extraction quality; change with care.
func BuildExtractionPrompt() string {
	return `You are an invoice analyzer. Examine this auto-repair invoice image and extract the monetary breakdown below.

1. PARTS (required): Search the document case-insensitively for these labels, in this exact priority order: "parts", "total", "subtotal", "sub-total", "total due", "invoice total". When more than one label is present, use the value attached to the label that appears EARLIEST in this list (so "parts" beats "subtotal"), regardless of where each label sits on the page. Then confirm the chosen value is plausible as an amount spent on parts. Output a non-negative decimal with any currency symbols removed. If no label is found, use 0.00.

2. LABOR (optional): Search for the label "labor" (case-insensitive). Output a non-negative decimal. If absent, use 0.00; parts-only invoices legitimately have no labor charge.

3. TAX (optional): Search for "tax" or "sales tax" (case-insensitive). If the value next to the label is not a number (for example "N/A" or "Included"), return it exactly as that string and set "flagged" to true. If absent, use the number 0.00.

4. FLAGGED: Set true when ANY of the following hold: tax is present and not zero; tax is not numeric; any field looks ambiguous; the document is unclear or unreadable. Otherwise false.

5. CONFIDENCE: Perform three independent extraction passes over the document, then cross-reference them. Report "high" if all three passes agree, "medium" if two of three agree, and "low" under significant disagreement or uncertainty. Consider image clarity, numeric formatting ambiguity, and how close each label sits to its value.

Return ONLY a JSON object with exactly these keys and no surrounding prose:
{"parts": number, "labor": number, "tax": number or string, "flagged": boolean, "confidence": "high" or "medium" or "low"}`
}
