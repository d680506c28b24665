// Package fonts names the font stacks used by the SVG styles.
//
// The card renderers reference fonts by family name rather than embedding
// font files: rsvg-convert resolves families through fontconfig at export
// time, and browsers viewing the SVG directly fall back through the listed
// stacks. Keeping the names in one place means the layout measurement
// ratios and the rendered faces stay in sync.
package fonts

// ScriptFamily is the handwriting face for messages and branding in the
// hand-drawn style.
const ScriptFamily = "Caveat"

// ScriptFallbackFamily is the full handwriting stack, for systems that
// lack the primary face.
const ScriptFallbackFamily = `'Caveat', 'Bradley Hand', 'Segoe Script', 'Comic Sans MS', cursive`

// SerifFamily is the face used by the simple style.
const SerifFamily = `Georgia, 'Times New Roman', serif`
