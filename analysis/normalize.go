package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

var (
	boldRe        = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe      = regexp.MustCompile(`\*(.*?)\*`)
	boldUnderRe   = regexp.MustCompile(`__(.*?)__`)
	italicUnderRe = regexp.MustCompile(`_(.*?)_`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// DecodeUnicodeEscapes resolves literal backslash escape sequences (\uXXXX,
// \n, ...) left in export text by an earlier serialization pass. Decoding is
// best-effort: the primary strategy handles the full escape syntax, the
// secondary only \uXXXX sequences, and when both fail the input is returned
// unchanged.
func DecodeUnicodeEscapes(text string) string {
	if decoded, err := unquoteEscapes(text); err == nil {
		return decoded
	}
	if decoded, ok := decodeUnicodeSequences(text); ok {
		return decoded
	}
	return text
}

func unquoteEscapes(s string) (string, error) {
	quoted := `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	return strconv.Unquote(quoted)
}

// decodeUnicodeSequences rewrites \uXXXX sequences in place, pairing UTF-16
// surrogates. Anything that is not a well-formed sequence passes through.
func decodeUnicodeSequences(s string) (string, bool) {
	var b strings.Builder
	changed := false
	i := 0
	for i < len(s) {
		r, n, ok := parseUnicodeEscape(s[i:])
		if !ok {
			b.WriteByte(s[i])
			i++
			continue
		}
		if utf16.IsSurrogate(r) {
			if r2, n2, ok2 := parseUnicodeEscape(s[i+n:]); ok2 && utf16.IsSurrogate(r2) {
				if combined := utf16.DecodeRune(r, r2); combined != 0xFFFD {
					b.WriteRune(combined)
					i += n + n2
					changed = true
					continue
				}
			}
			// Unpaired surrogate: keep the raw sequence.
			b.WriteString(s[i : i+n])
			i += n
			continue
		}
		b.WriteRune(r)
		i += n
		changed = true
	}
	return b.String(), changed
}

func parseUnicodeEscape(s string) (rune, int, bool) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, 0, false
	}
	v, err := strconv.ParseUint(s[2:6], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return rune(v), 6, true
}

// CleanText applies the fixed cleaning chain: decode unicode escapes, strip
// bold/italic markdown delimiters, collapse whitespace runs, trim. The chain
// is idempotent: cleaning already-clean text returns it unchanged.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = DecodeUnicodeEscapes(text)
	text = boldRe.ReplaceAllString(text, "$1")
	text = italicRe.ReplaceAllString(text, "$1")
	text = boldUnderRe.ReplaceAllString(text, "$1")
	text = italicUnderRe.ReplaceAllString(text, "$1")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ResolveSender maps an export sender id to a canonical sender label. The
// one known bot identity maps to Bot; every other id is a User.
func ResolveSender(senderID string) string {
	if senderID == botSenderID {
		return SenderBot
	}
	return SenderUser
}

// NormalizeConversation converts one raw export record into its canonical
// form. Messages survive only when they are TEXT, not internal, carry a
// sender id, and still have text after cleaning. It returns ok=false when
// nothing survives; callers skip the record rather than treating that as an
// error.
func NormalizeConversation(raw RawConversation) (Conversation, bool) {
	msgs := make([]Message, 0, len(raw.Messages))
	for _, m := range raw.Messages {
		if m.Type != "TEXT" || m.IsInternal || m.Content.Text == "" {
			continue
		}
		if m.SenderID == nil {
			continue
		}
		text := CleanText(m.Content.Text)
		if text == "" {
			continue
		}
		msgs = append(msgs, Message{
			MessageID: m.ID,
			Sender:    ResolveSender(*m.SenderID),
			Text:      text,
			Timestamp: m.CreatedAt,
		})
	}
	if len(msgs) == 0 {
		return Conversation{}, false
	}

	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, m.Sender+": "+m.Text)
	}

	return Conversation{
		Metadata: ConversationMetadata{
			ConversationID: raw.ConversationID,
			StartTimeUTC:   msgs[0].Timestamp,
			TotalMessages:  len(msgs),
		},
		TranscriptFullText: strings.Join(lines, "\n"),
		Messages:           msgs,
	}, true
}

// ProgressFunc reports batch progress: records scanned so far and how many
// normalized successfully.
type ProgressFunc func(scanned, valid int)

// NormalizeAll processes raw records in input order until maxConversations
// records have normalized successfully (0 = no limit). Records that yield no
// canonical conversation are skipped. progress, when non-nil, is invoked
// every 10 scanned records.
func NormalizeAll(raws []RawConversation, maxConversations int, progress ProgressFunc) []Conversation {
	out := make([]Conversation, 0, len(raws))
	for i, raw := range raws {
		if maxConversations > 0 && len(out) >= maxConversations {
			break
		}
		if conv, ok := NormalizeConversation(raw); ok {
			out = append(out, conv)
		}
		if progress != nil && (i+1)%10 == 0 {
			progress(i+1, len(out))
		}
	}
	return out
}
