package store

// DefaultPrompts returns the built-in prompt templates, keyed by panel name.
// Saved settings override individual keys; keys absent from the saved blob
// fall back to these.
func DefaultPrompts() map[string]string {
	return map[string]string{
		"fundamentalAnalysis": `As a professional forex analyst, review the supplied news and identify the best trading opportunities.

News context:
{newsContext}

Analysis instructions:
1. Identify the major themes in the news that move currencies
2. Assess the impact over several horizons:
   - Short term (1-5 days)
   - Medium term (1-4 weeks)
   - Long term (1-6 months)
3. For each horizon determine:
   - The most impacted currency pair
   - The likely direction of the move
   - The key factors supporting the view
   - The important technical levels to watch
4. Structure the answer with an overview of the major themes, the opportunities per horizon, and the main risks to monitor.

Format: structured HTML response.`,

		"tradingSignals": `As a technical analyst, generate trading signals from the market data and the news flow.

Current market data:
{marketContext}

Recent news:
{newsContext}

Instructions:
1. Analyse the correlation between price moves and the news
2. Identify promising technical setups
3. Generate 3 trading signals, each with fundamental AND technical justification, a precise entry, realistic stop loss and take profit, and a recommended timeframe.

Format: strict JSON with the structure:
{"signals": [{
  "symbol": string,
  "direction": "buy" | "sell",
  "entryPrice": number,
  "stopLoss": number,
  "takeProfit": number,
  "timeframe": string,
  "analysis": string
}]}`,

		"sentimentAnalysis": `As a quantitative forex analyst, assess market sentiment with a rigorous statistical approach.

Current market data:
{marketContext}

Recent news:
{newsContext}

Analysis instructions:
1. For each major pair (EUR/USD, GBP/USD, USD/JPY):
   - Assess the sentiment (bullish/bearish/neutral)
   - Compute a sentiment score (-100 to +100)
   - Determine the signal strength (strong/moderate/weak)
   - Identify the horizon (short/medium/long)
   - Estimate confidence (0-100%)
   - List the key catalysts (max 3)
2. Weight recent news 40%, technical data 30%, macro context 30%.

Format: strict JSON with the structure:
{"analysis": [{
  "pair": string,
  "sentiment": "bullish" | "bearish" | "neutral",
  "score": number,
  "confidence": number,
  "strength": "strong" | "moderate" | "weak",
  "timeframe": "short" | "medium" | "long",
  "reasoning": string,
  "catalysts": [string]
}]}`,

		"aiInsights": `As a financial-markets expert, adapt your analysis to the type of question asked.

Market data: {marketContext}
Recent news: {newsContext}

Question:
{question}

Instructions:
1. Decide whether the question needs live data
2. For market questions, tie the analysis to the supplied data, cite the relevant news, and give precise technical levels
3. For theoretical questions, explain the key concepts with concrete examples and practical advice.

Format: a clear, structured answer matched to the technical level of the question.`,

		"dayBrief": `As a forex-markets expert, review high-impact economic events and major market moves.

Current market data:
{marketContext}

Recent news:
{newsContext}

Economic events:
{calendarContext}

Instructions:
1. Single out only the news with a very strong currency impact, the major upcoming economic events, and the significant price moves
2. Say which pair is the most impacted, the likely direction, and why the event matters.

Format: a short, direct answer of 2-3 sentences at most, focused on the single most important event of the moment.`,
	}
}
