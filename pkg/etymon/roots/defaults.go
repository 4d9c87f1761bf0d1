package roots

import "strings"

// defaultEntries is the built-in root/affix table. It is merged with any
// user-supplied lexicon file at startup and never mutated afterwards.
var defaultEntries = map[string]string{
	// Greek roots
	"phono":  "Greek 'phone' = sound/voice (telephone, symphony)",
	"photo":  "Greek 'phos/phot-' = light (photograph, photosynthesis)",
	"tele":   "Greek 'tele' = far/at a distance (telephone, telescope)",
	"geo":    "Greek 'ge' = earth (geography, geology)",
	"auto":   "Greek 'autos' = self (autobiography, automobile)",
	"chrono": "Greek 'khronos' = time (chronology, synchronous)",
	"micro":  "Greek 'mikros' = small (microscope, microbe)",
	"macro":  "Greek 'makros' = large (macroeconomics, macromolecule)",
	"graph":  "Greek 'graphein' = write (autograph, graphic)",
	"bio":    "Greek 'bios' = life (biology, biography)",
	"psycho": "Greek 'psukhe' = mind/soul (psychology, psychiatrist)",
	"hydro":  "Greek 'hudor' = water (hydroelectric, dehydrate)",
	"logos":  "Greek 'logos' = word/reason (biology, theology)",

	// Latin roots
	"port":   "Latin 'portare' = carry (transport, import)",
	"scrib":  "Latin 'scribere' = write (describe, scribe)",
	"script": "Latin 'scriptum' = write (manuscript, inscription)",
	"spect":  "Latin 'spectare' = look/see (inspect, spectacle)",
	"vid":    "Latin 'videre' = see (video, evidence)",
	"vis":    "Latin 'videre' variant (vision, visible)",
	"dict":   "Latin 'dicere' = say/speak (predict, dictionary)",
	"ject":   "Latin 'iacere' = throw (project, eject)",
	"rupt":   "Latin 'rumpere' = break (interrupt, rupture)",
	"cred":   "Latin 'credere' = believe (credible, credit)",
	"terra":  "Latin 'terra' = earth/land (terrain, territory)",
	"aqua":   "Latin 'aqua' = water (aquarium, aquatic)",
	"bene":   "Latin 'bene' = good/well (benefit, benevolent)",
	"mal":    "Latin 'malus' = bad (malady, malfunction)",
	"mater":  "Latin 'mater' = mother (maternal, matrimony)",
	"pater":  "Latin 'pater' = father (paternal, paternity)",
	"urb":    "Latin 'urbs' = city (urban, suburb)",
	"vac":    "Latin 'vacuus' = empty (vacant, evacuate)",
	"voc":    "Latin 'vox/vocis' = voice (vocal, advocate)",
	"ann":    "Latin 'annus' = year (anniversary, annual)",
	"mort":   "Latin 'mors/mortis' = death (mortal, mortician)",

	// Prefixes and suffixes
	"pre":   "Prefix 'pre-' = before (preview, predict)",
	"re":    "Prefix 're-' = again/back (rewrite, return)",
	"un":    "Prefix 'un-' = not/opposite (unhappy, unfair)",
	"mis":   "Prefix 'mis-' = wrong/badly (misplace, misunderstand)",
	"anti":  "Prefix 'anti-' = against (antibiotic, antifreeze)",
	"sub":   "Prefix 'sub-' = under/below (subway, submarine)",
	"inter": "Prefix 'inter-' = between/among (international, interact)",
	"trans": "Prefix 'trans-' = across/beyond (transport, transcend)",
	"tri":   "Prefix 'tri-' = three (triangle, tripod)",
	"ful":   "Suffix '-ful' = full of (joyful, helpful)",
	"less":  "Suffix '-less' = without (fearless, tireless)",
	"ology": "Suffix '-ology' = study of (biology, geology)",
	"ist":   "Suffix '-ist' = person who does (artist, scientist)",
}

// Default returns the built-in lexicon.
func Default() *Lexicon {
	lex, err := New(defaultEntries)
	if err != nil {
		// The built-in table is a compile-time constant; a failure here
		// is a programming error.
		panic(err)
	}
	return lex
}

// DefaultWith merges extra entries over the built-in table. Extra
// entries win on key collision.
func DefaultWith(extra map[string]string) (*Lexicon, error) {
	merged := make(map[string]string, len(defaultEntries)+len(extra))
	for p, e := range defaultEntries {
		merged[p] = e
	}
	for p, e := range extra {
		merged[strings.ToLower(strings.TrimSpace(p))] = e
	}
	return New(merged)
}
