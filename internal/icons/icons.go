// Package icons maps the enumerated icon keys carried by habits,
// achievements, and recommendation templates to terminal glyphs. Unknown
// keys fall back to a default glyph instead of failing.
package icons

const defaultGlyph = "●"

var glyphs = map[string]string{
	"award":          "🏆",
	"book-open":      "📖",
	"brain":          "🧠",
	"calendar-check": "🗓",
	"check-circle":   "✅",
	"check-square":   "☑",
	"cup-water":      "💧",
	"dumbbell":       "🏋",
	"flame":          "🔥",
	"footprints":     "👣",
	"heart":          "❤",
	"lightbulb":      "💡",
	"lotus":          "🪷",
	"palette":        "🎨",
	"pen-line":       "✍",
	"phone":          "📞",
	"rocket":         "🚀",
	"smartphone-off": "📵",
	"target":         "🎯",
	"trophy":         "🏆",
	"wind":           "🌬",
	"zap":            "⚡",
}

// Glyph resolves an icon key to its terminal glyph.
func Glyph(key string) string {
	if g, ok := glyphs[key]; ok {
		return g
	}
	return defaultGlyph
}
