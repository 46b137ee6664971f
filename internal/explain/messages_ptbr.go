package explain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Technique names
	message.SetString(lang, "technique.naked_single", "Candidato Único")
	message.SetString(lang, "technique.hidden_single", "Único Oculto")
	message.SetString(lang, "technique.naked_pair", "Par Exposto")
	message.SetString(lang, "technique.naked_triple", "Trio Exposto")
	message.SetString(lang, "technique.hidden_pair", "Par Oculto")
	message.SetString(lang, "technique.hidden_triple", "Trio Oculto")
	message.SetString(lang, "technique.pointing_pair", "Par Apontador")
	message.SetString(lang, "technique.pointing_triple", "Trio Apontador")
	message.SetString(lang, "technique.claiming", "Candidato Confinado")
	message.SetString(lang, "technique.x_wing", "X-Wing")
	message.SetString(lang, "technique.swordfish", "Swordfish")
	message.SetString(lang, "technique.jellyfish", "Jellyfish")
	message.SetString(lang, "technique.xy_wing", "XY-Wing")
	message.SetString(lang, "technique.xyz_wing", "XYZ-Wing")
	message.SetString(lang, "technique.skyscraper", "Arranha-céu")
	message.SetString(lang, "technique.two_string_kite", "Pipa de Duas Cordas")
	message.SetString(lang, "technique.unique_rectangle", "Retângulo Único")
	message.SetString(lang, "technique.w_wing", "W-Wing")

	// Step sentences
	message.SetString(lang, "explain.place", "%s: coloque %d em %s.")
	message.SetString(lang, "explain.eliminate", "%s: elimine %s de %s.")
	message.SetString(lang, "explain.cause", "Com base em %s.")
}
