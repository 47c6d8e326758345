package app

// LanguageAdapter rewrites an outbound reply for a target language.
type LanguageAdapter interface {
	Adapt(text, language string) string
}

// Passthrough returns replies unchanged. It keeps the adapter seam in
// place so a real translator can be plugged in later.
type Passthrough struct{}

func (Passthrough) Adapt(text, _ string) string { return text }
