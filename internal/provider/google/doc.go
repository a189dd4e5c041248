// Package google provides a Google Gemini chat client implementing [scribe.ChatProvider].
package google
