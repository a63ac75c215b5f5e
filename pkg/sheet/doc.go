// Package sheet builds the four fixed pages of a character sheet: main
// stats, background, spellcasting, and the quick reference. Builders derive
// ability modifiers, saving throws, skills, and passive perception from the
// character data once, through Context, and compose page HTML from content
// renderers and static chrome.
package sheet
