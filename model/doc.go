// Package model provides chat model references for all supported AI providers.
//
// Models know their provider, enabling automatic routing in the client:
//
//	c := client.New(client.Config{
//	    APIKeys: client.APIKeys{OpenAI: os.Getenv("OPENAI_API_KEY")},
//	    Default: model.GPT41,
//	})
//
// Models that are not listed here can be referenced with New or Parse:
//
//	m, err := model.Parse(ai.ProviderAnthropic, "claude-3-7-sonnet-latest")
package model
