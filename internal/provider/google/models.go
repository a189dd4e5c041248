package google

// DefaultChatModel is used when neither the client nor the request names a model.
const DefaultChatModel = "gemini-2.5-flash"
