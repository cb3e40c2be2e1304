package i18n

// loadEnglishMessages loads all English translations
func loadEnglishMessages() {
	messages[LangEN] = map[string]string{
		// Common
		"app.description": "Terminal client for the chatbot with document search",
		"app.version":     "Chatbot v%s",

		// Welcome view
		"welcome.assistant": "Hello! I am your AI assistant. I can hold regular conversations and search your documents. Just ask \"Was kannst du?\" to learn more!",
		"welcome.examples":  "Example questions:",
		"welcome.q1":        "Was kannst du?",
		"welcome.q2":        "Welche Dokumente sind verfügbar?",
		"welcome.q3":        "Erkläre mir Künstliche Intelligenz",
		"welcome.help":      "/help lists all commands, /quit exits",

		// Chat
		"chat.prompt":      "You> ",
		"chat.assistant":   "Assistant> ",
		"chat.placeholder": "Type a message...",
		"chat.sources":     "Sources: %s",
		"chat.no.response": "No response received",
		"chat.error":       "Error: %s",
		"chat.thinking":    "Thinking...",
		"chat.new.title":   "New chat",
		"chat.saved":       "Saved session",

		// Session lifecycle
		"session.created":        "New session created",
		"session.deleted":        "Session deleted",
		"session.load.failed":    "Could not load session: %s",
		"session.list.failed":    "Failed to load",
		"session.list.empty":     "No sessions yet",
		"session.list.title":     "Sessions",
		"session.delete.title":   "Delete session",
		"session.delete.message": "Really delete session \"%s\"?",
		"session.delete.failed":  "Could not delete session: %s",

		// Documents
		"document.list.title":     "Documents",
		"document.list.empty":     "No documents yet",
		"document.deleted":        "Document deleted",
		"document.delete.title":   "Delete document",
		"document.delete.message": "Really delete document \"%s\"?",
		"document.delete.failed":  "Could not delete document: %s",
		"document.uploaded":       "Document uploaded",
		"document.upload.failed":  "Upload failed: %s",
		"document.upload.missing": "File not found: %s",
		"document.upload.type":    "Only PDF, TXT or DOCX: %s",

		// Models
		"model.list.title":    "Models",
		"model.list.empty":    "No models available",
		"model.selected":      "Model switched: %s",
		"model.select.failed": "Model switch failed: %s",

		// Health
		"health.ok":          "Backend reachable",
		"health.ollama.down": "Ollama is not available",

		// Bootstrap
		"bootstrap.loading": "Connecting to the backend...",
		"bootstrap.failed":  "Startup failed: %s",

		// Validation
		"validate.temperature": "Temperature must be between 0 and 1",
		"validate.busy":        "A request is already in flight",
		"validate.confirm":     "A confirmation is already pending",

		// Confirmation modal
		"confirm.yes":  "Yes",
		"confirm.no":   "No",
		"confirm.hint": "y = yes, n/Esc = no",

		// Overlays
		"overlay.sessions.hint":  "↑/↓ select · Enter open · d delete · Esc close",
		"overlay.models.hint":    "↑/↓ select · Enter activate · Esc close",
		"overlay.documents.hint": "↑/↓ select · d delete · Esc close",

		// Help overlay
		"help.title":    "Commands",
		"help.new":      "Start a new conversation",
		"help.sessions": "Show saved sessions",
		"help.models":   "Show and switch models",
		"help.docs":     "Show documents",
		"help.upload":   "Upload a document",
		"help.temp":     "Set the temperature (0..1)",
		"help.help":     "Show this help",
		"help.quit":     "Quit the program",

		// Key hints
		"keys.send":    "send",
		"keys.history": "history",
		"keys.scroll":  "scroll",
		"keys.quit":    "quit",
		"quit.hint":    "Press Ctrl+C again to quit",

		// Status bar
		"status.model":       "Model: %s",
		"status.temperature": "Temp: %.1f",
		"status.offline":     "Offline",

		// Slash commands
		"slash.unknown":      "Unknown command: %s",
		"slash.temp.usage":   "Usage: /temp <0..1>",
		"slash.temp.set":     "Temperature: %.1f",
		"slash.upload.usage": "Usage: /upload <path>",

		// Errors
		"error.connection": "Could not reach the API",

		// CLI
		"cli.chat.description":      "Start an interactive chat",
		"cli.sessions.description":  "Manage chat sessions",
		"cli.sessions.list":         "List sessions",
		"cli.sessions.show":         "Show the messages of a session",
		"cli.sessions.delete":       "Delete a session",
		"cli.models.description":    "Manage models",
		"cli.models.list":           "List models",
		"cli.models.select":         "Select a model",
		"cli.documents.description": "Manage documents",
		"cli.documents.list":        "List documents",
		"cli.documents.upload":      "Upload a document",
		"cli.documents.delete":      "Delete a document",
		"cli.health.description":    "Check backend health",
		"cli.version.description":   "Show version information",
		"cli.session.item":          "%-14s %-40s %3d messages  %s",
		"cli.current.marker":        " (active)",
		"cli.session.show.id":       "Session: %s",
		"cli.session.show.title":    "Title: %s",
		"cli.session.show.created":  "Created: %s",
		"cli.session.show.updated":  "Updated: %s",
		"cli.session.show.count":    "Messages: %d",
		"cli.upload.chunks":         "%d chunks indexed",
		"cli.health.status":         "Status: %s",
		"cli.health.documents":      "Documents: %d, uploaded files: %d",
		"cli.version.build":         "Build: %s (%s)",
		"cli.version.config":        "Configuration:",
		"cli.version.api":           "  API: %s",
		"cli.version.language":      "  Language: %s",
		"cli.version.temperature":   "  Temperature: %.2f",
		"cli.version.logfile":       "  Log file: %s",

		// Root command
		"app.long": "Without a subcommand the interactive interface starts.\nThe subcommands talk to the backend directly and are suited for scripts.",
	}
}
