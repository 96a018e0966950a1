package constant

const (
	// Returned without calling the LLM when no session is loaded.
	ChatNoLoadedSessionMessage = "No documents are loaded. Please upload PDF files first."

	// Returned without calling the LLM when retrieval finds nothing to
	// ground an answer on.
	ChatNoRelevantContextMessage = "I couldn't find relevant information in the documents to answer your question."
)
