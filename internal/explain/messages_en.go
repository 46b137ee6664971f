package explain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Technique names
	message.SetString(lang, "technique.naked_single", "Naked Single")
	message.SetString(lang, "technique.hidden_single", "Hidden Single")
	message.SetString(lang, "technique.naked_pair", "Naked Pair")
	message.SetString(lang, "technique.naked_triple", "Naked Triple")
	message.SetString(lang, "technique.hidden_pair", "Hidden Pair")
	message.SetString(lang, "technique.hidden_triple", "Hidden Triple")
	message.SetString(lang, "technique.pointing_pair", "Pointing Pair")
	message.SetString(lang, "technique.pointing_triple", "Pointing Triple")
	message.SetString(lang, "technique.claiming", "Claiming Candidate")
	message.SetString(lang, "technique.x_wing", "X-Wing")
	message.SetString(lang, "technique.swordfish", "Swordfish")
	message.SetString(lang, "technique.jellyfish", "Jellyfish")
	message.SetString(lang, "technique.xy_wing", "XY-Wing")
	message.SetString(lang, "technique.xyz_wing", "XYZ-Wing")
	message.SetString(lang, "technique.skyscraper", "Skyscraper")
	message.SetString(lang, "technique.two_string_kite", "Two-String Kite")
	message.SetString(lang, "technique.unique_rectangle", "Unique Rectangle")
	message.SetString(lang, "technique.w_wing", "W-Wing")

	// Step sentences
	message.SetString(lang, "explain.place", "%s: place %d in %s.")
	message.SetString(lang, "explain.eliminate", "%s: eliminate %s from %s.")
	message.SetString(lang, "explain.cause", "Based on %s.")
}
