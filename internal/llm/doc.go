// Package llm provides generative model clients for scent recommendations.
// It supports Gemini, OpenAI and Anthropic, with retry logic, rate limiting
// and response caching layered on top by the caller.
package llm
