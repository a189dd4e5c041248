// Command scribe generates blog posts with a title-then-body pipeline.
//
// Usage:
//
//	scribe write "coffee brewing"
//	scribe write --variant alternative --show-title "coffee brewing"
//	scribe graph --variant default
//	scribe mcp
//
// Configuration comes from the environment (or a .env file):
//
//	SCRIBE_PROVIDER           anthropic, openai, or google (required)
//	SCRIBE_MODEL              model id (defaults to the provider's default)
//	ANTHROPIC_API_KEY         key for the anthropic provider
//	OPENAI_API_KEY            key for the openai provider
//	GOOGLE_API_KEY            key for the google provider
//	SCRIBE_TITLE_TEMPERATURE  sampling temperature for titles (default 0.7)
//	SCRIBE_BODY_TEMPERATURE   sampling temperature for bodies (default 0.9)
//	SCRIBE_MAX_TOKENS         completion limit per step (default: provider's)
//	SCRIBE_STEP_TIMEOUT       timeout per step (default 2m)
//	SCRIBE_LOG_LEVEL          debug, info, warn, or error (default info)
//	SCRIBE_TEMPLATES          YAML file with extra prompt variants
package main

func main() {
	Execute()
}
