package i18n

// loadGermanMessages loads all German translations
func loadGermanMessages() {
	messages[LangDE] = map[string]string{
		// Common
		"app.description": "Terminal-Client für den Chatbot mit Dokumentensuche",
		"app.version":     "Chatbot v%s",

		// Welcome view
		"welcome.assistant": "Hallo! Ich bin dein KI-Assistent. Ich kann normale Unterhaltungen führen und deine Dokumente durchsuchen. Frag einfach \"Was kannst du?\" um mehr zu erfahren!",
		"welcome.examples":  "Beispiel-Fragen:",
		"welcome.q1":        "Was kannst du?",
		"welcome.q2":        "Welche Dokumente sind verfügbar?",
		"welcome.q3":        "Erkläre mir Künstliche Intelligenz",
		"welcome.help":      "/help zeigt alle Befehle, /quit beendet das Programm",

		// Chat
		"chat.prompt":      "Du> ",
		"chat.assistant":   "Assistent> ",
		"chat.placeholder": "Nachricht eingeben...",
		"chat.sources":     "Quellen: %s",
		"chat.no.response": "Keine Antwort erhalten",
		"chat.error":       "Fehler: %s",
		"chat.thinking":    "Denke nach...",
		"chat.new.title":   "Neuer Chat",
		"chat.saved":       "Gespeicherte Session",

		// Session lifecycle
		"session.created":        "Neue Session erstellt",
		"session.deleted":        "Session gelöscht",
		"session.load.failed":    "Session konnte nicht geladen werden: %s",
		"session.list.failed":    "Fehler beim Laden",
		"session.list.empty":     "Keine Sessions vorhanden",
		"session.list.title":     "Sessions",
		"session.delete.title":   "Session löschen",
		"session.delete.message": "Soll die Session \"%s\" wirklich gelöscht werden?",
		"session.delete.failed":  "Session konnte nicht gelöscht werden: %s",

		// Documents
		"document.list.title":     "Dokumente",
		"document.list.empty":     "Keine Dokumente vorhanden",
		"document.deleted":        "Dokument gelöscht",
		"document.delete.title":   "Dokument löschen",
		"document.delete.message": "Soll das Dokument \"%s\" wirklich gelöscht werden?",
		"document.delete.failed":  "Dokument konnte nicht gelöscht werden: %s",
		"document.uploaded":       "Dokument erfolgreich hochgeladen",
		"document.upload.failed":  "Upload fehlgeschlagen: %s",
		"document.upload.missing": "Datei nicht gefunden: %s",
		"document.upload.type":    "Nur PDF, TXT oder DOCX: %s",

		// Models
		"model.list.title":    "Modelle",
		"model.list.empty":    "Keine Modelle verfügbar",
		"model.selected":      "Modell gewechselt: %s",
		"model.select.failed": "Modellwechsel fehlgeschlagen: %s",

		// Health
		"health.ok":          "Backend erreichbar",
		"health.ollama.down": "Ollama ist nicht verfügbar",

		// Bootstrap
		"bootstrap.loading": "Verbinde mit dem Backend...",
		"bootstrap.failed":  "Start fehlgeschlagen: %s",

		// Validation
		"validate.temperature": "Temperatur muss zwischen 0 und 1 liegen",
		"validate.busy":        "Eine Anfrage läuft bereits",
		"validate.confirm":     "Es wartet bereits eine Bestätigung",

		// Confirmation modal
		"confirm.yes":  "Ja",
		"confirm.no":   "Nein",
		"confirm.hint": "y/j = Ja, n/Esc = Nein",

		// Overlays
		"overlay.sessions.hint":  "↑/↓ wählen · Enter öffnen · d löschen · Esc schließen",
		"overlay.models.hint":    "↑/↓ wählen · Enter aktivieren · Esc schließen",
		"overlay.documents.hint": "↑/↓ wählen · d löschen · Esc schließen",

		// Help overlay
		"help.title":    "Befehle",
		"help.new":      "Neue Unterhaltung beginnen",
		"help.sessions": "Gespeicherte Sessions anzeigen",
		"help.models":   "Modelle anzeigen und wechseln",
		"help.docs":     "Dokumente anzeigen",
		"help.upload":   "Dokument hochladen",
		"help.temp":     "Temperatur setzen (0..1)",
		"help.help":     "Diese Hilfe anzeigen",
		"help.quit":     "Programm beenden",

		// Key hints
		"keys.send":    "senden",
		"keys.history": "Verlauf",
		"keys.scroll":  "scrollen",
		"keys.quit":    "beenden",
		"quit.hint":    "Strg+C erneut drücken zum Beenden",

		// Status bar
		"status.model":       "Modell: %s",
		"status.temperature": "Temp: %.1f",
		"status.offline":     "Offline",

		// Slash commands
		"slash.unknown":      "Unbekannter Befehl: %s",
		"slash.temp.usage":   "Verwendung: /temp <0..1>",
		"slash.temp.set":     "Temperatur: %.1f",
		"slash.upload.usage": "Verwendung: /upload <pfad>",

		// Errors
		"error.connection": "Verbindung zur API fehlgeschlagen",

		// CLI
		"cli.chat.description":      "Interaktiven Chat starten",
		"cli.sessions.description":  "Chat-Sessions verwalten",
		"cli.sessions.list":         "Sessions auflisten",
		"cli.sessions.show":         "Nachrichten einer Session anzeigen",
		"cli.sessions.delete":       "Session löschen",
		"cli.models.description":    "Modelle verwalten",
		"cli.models.list":           "Modelle auflisten",
		"cli.models.select":         "Modell auswählen",
		"cli.documents.description": "Dokumente verwalten",
		"cli.documents.list":        "Dokumente auflisten",
		"cli.documents.upload":      "Dokument hochladen",
		"cli.documents.delete":      "Dokument löschen",
		"cli.health.description":    "Backend-Status prüfen",
		"cli.version.description":   "Versionsinformationen anzeigen",
		"cli.session.item":          "%-14s %-40s %3d Nachrichten  %s",
		"cli.current.marker":        " (aktiv)",
		"cli.session.show.id":       "Session: %s",
		"cli.session.show.title":    "Titel: %s",
		"cli.session.show.created":  "Erstellt: %s",
		"cli.session.show.updated":  "Aktualisiert: %s",
		"cli.session.show.count":    "Nachrichten: %d",
		"cli.upload.chunks":         "%d Abschnitte indexiert",
		"cli.health.status":         "Status: %s",
		"cli.health.documents":      "Dokumente: %d, hochgeladene Dateien: %d",
		"cli.version.build":         "Build: %s (%s)",
		"cli.version.config":        "Konfiguration:",
		"cli.version.api":           "  API: %s",
		"cli.version.language":      "  Sprache: %s",
		"cli.version.temperature":   "  Temperatur: %.2f",
		"cli.version.logfile":       "  Logdatei: %s",

		// Root command
		"app.long": "Ohne Unterbefehl startet die interaktive Oberfläche.\nDie Unterbefehle sprechen das Backend direkt an und eignen sich für Skripte.",
	}
}
