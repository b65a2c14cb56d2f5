package service

import (
	"strconv"
	"strings"

	"moneyflow/internal/assistant"
	"moneyflow/internal/models"
)

// Prompt assembly is pure: the same ledger snapshot and transcript always
// produce byte-identical output, and nothing here performs I/O. Entries
// and messages are rendered in the order supplied by the caller; sorting
// is the store's contract.

const personaDirective = "You are a financial expert. Provide detailed and accurate financial insights, advice on managing expenses and incomes, and tips for financial planning and investment strategies. Your responses should be thorough, well-researched, and tailored to individual financial situations. Use clear and concise language to explain complex financial concepts. Format your response as a single paragraph. Keep is short and concise."

const outputConstraint = "Respond in a single, plain text paragraph without any markdown formatting or newline characters. This is really important."

// renderEntryLine renders one ledger row. A nil notes field renders as
// the literal "undefined", which the web client has always displayed.
func renderEntryLine(e *models.Entry) string {
	notes := "undefined"
	if e.Notes != nil {
		notes = *e.Notes
	}

	var b strings.Builder
	b.WriteString(string(e.Type))
	b.WriteString(": ")
	b.WriteString(strconv.FormatFloat(e.Amount, 'f', -1, 64))
	b.WriteString(" (")
	b.WriteString(e.Category)
	b.WriteString(") - Notes: ")
	b.WriteString(notes)
	b.WriteString(" - Date: ")
	b.WriteString(e.Date.UTC().Format(models.TimeLayout))
	b.WriteString(" - CreatedAt: ")
	b.WriteString(e.CreatedAt.UTC().Format(models.TimeLayout))
	b.WriteString(" - UpdatedAt: ")
	b.WriteString(e.UpdatedAt.UTC().Format(models.TimeLayout))
	return b.String()
}

// RenderLedger renders the full ledger snapshot, one line per entry. An
// empty entry set renders as an empty string, never an error.
func RenderLedger(entries []*models.Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = renderEntryLine(e)
	}
	return strings.Join(lines, "\n")
}

// SystemDirective is the context-aware system turn: the fixed persona
// text with the rendered ledger snapshot interpolated verbatim.
func SystemDirective(entries []*models.Entry) string {
	return personaDirective +
		" You are also given all of the income and expense entries of the user:\n\n" +
		RenderLedger(entries) +
		"\n\nAnd the chat history. " +
		outputConstraint
}

// BareDirective is the system turn used when no financial context exists
// yet. The persona core text is identical to the context-aware variant.
func BareDirective() string {
	return personaDirective + " " + outputConstraint
}

// HistoryTurns converts the transcript into role-tagged turns, preserving
// order. No message is dropped, reordered or summarized.
func HistoryTurns(history []*models.ChatMessage) []assistant.Turn {
	turns := make([]assistant.Turn, len(history))
	for i, m := range history {
		role := assistant.RoleAssistant
		if m.IsUser {
			role = assistant.RoleUser
		}
		turns[i] = assistant.Turn{Role: role, Content: m.Message}
	}
	return turns
}

// BuildTurns assembles the complete turn sequence for one query: system
// directive, prior transcript, then the user's question. With no entries
// and no history it falls back to the bare directive.
func BuildTurns(entries []*models.Entry, history []*models.ChatMessage, query string) []assistant.Turn {
	if len(entries) == 0 && len(history) == 0 {
		return []assistant.Turn{
			{Role: assistant.RoleSystem, Content: BareDirective()},
			{Role: assistant.RoleUser, Content: query},
		}
	}

	turns := make([]assistant.Turn, 0, len(history)+2)
	turns = append(turns, assistant.Turn{Role: assistant.RoleSystem, Content: SystemDirective(entries)})
	turns = append(turns, HistoryTurns(history)...)
	turns = append(turns, assistant.Turn{Role: assistant.RoleUser, Content: query})
	return turns
}
