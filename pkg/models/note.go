package models

import "strings"

// Note is a scent descriptor drawn from a fixed vocabulary.
type Note string

const (
	NoteWoody        Note = "woody"
	NoteSweet        Note = "sweet"
	NoteSpicy        Note = "spicy"
	NoteCitrus       Note = "citrus"
	NoteFresh        Note = "fresh"
	NoteFloral       Note = "floral"
	NoteWhiteFloral  Note = "white floral"
	NoteAmber        Note = "amber"
	NoteMusky        Note = "musky"
	NotePowdery      Note = "powdery"
	NoteVanilla      Note = "vanilla"
	NoteAromatic     Note = "aromatic"
	NoteFreshSpicy   Note = "fresh spicy"
	NoteWarmSpicy    Note = "warm spicy"
	NoteLeather      Note = "leather"
	NoteFruity       Note = "fruity"
	NoteGreen        Note = "green"
	NotePatchouli    Note = "patchouli"
	NoteRose         Note = "rose"
	NoteIris         Note = "iris"
	NoteEarthy       Note = "earthy"
	NoteAnimalic     Note = "animalic"
	NoteOud          Note = "oud"
	NoteSmoky        Note = "smoky"
	NoteTobacco      Note = "tobacco"
	NoteHoney        Note = "honey"
	NoteCinnamon     Note = "cinnamon"
	NoteAlmond       Note = "almond"
	NoteCherry       Note = "cherry"
	NoteNutty        Note = "nutty"
	NoteBalsamic     Note = "balsamic"
	NoteRum          Note = "rum"
	NoteMineral      Note = "mineral"
	NoteOzonic       Note = "ozonic"
	NoteAquatic      Note = "aquatic"
	NoteMarine       Note = "marine"
	NoteSoapy        Note = "soapy"
	NoteTropical     Note = "tropical"
	NoteCoconut      Note = "coconut"
	NoteSalty        Note = "salty"
	NoteCaramel      Note = "caramel"
	NoteChocolate    Note = "chocolate"
	NoteCoffee       Note = "coffee"
	NoteTuberose     Note = "tuberose"
	NoteYellowFloral Note = "yellow floral"
	NoteMossy        Note = "mossy"
	NoteHerbal       Note = "herbal"
	NoteSand         Note = "sand"
	NoteViolet       Note = "violet"
	NoteCacao        Note = "cacao"
	NoteAnis         Note = "anis"
	NoteLactonic     Note = "lactonic"
	NoteAldehydic    Note = "aldehydic"
	NoteMetallic     Note = "metallic"
	NoteSoftSpicy    Note = "soft spicy"
	NoteLavender     Note = "lavender"
	NoteSaffron      Note = "saffron"
	NoteNeroli       Note = "neroli"
	NoteBlackPepper  Note = "black pepper"
	NoteMandarin     Note = "mandarin"
	NotePepper       Note = "pepper"
	NoteSage         Note = "sage"
	NoteCardamom     Note = "cardamom"
	NoteBlackCurrant Note = "black currant"
	NoteTea          Note = "tea"
	NoteBergamot     Note = "bergamot"
	NoteCannabis     Note = "cannabis"
)

// allNotes is the canonical filter-panel order.
var allNotes = []Note{
	NoteWoody, NoteSweet, NoteSpicy, NoteCitrus, NoteFresh, NoteFloral, NoteWhiteFloral,
	NoteAmber, NoteMusky, NotePowdery, NoteVanilla, NoteAromatic, NoteFreshSpicy,
	NoteWarmSpicy, NoteLeather, NoteFruity, NoteGreen, NotePatchouli, NoteRose, NoteIris,
	NoteEarthy, NoteAnimalic, NoteOud, NoteSmoky, NoteTobacco, NoteHoney, NoteCinnamon,
	NoteAlmond, NoteCherry, NoteNutty, NoteBalsamic, NoteRum, NoteMineral, NoteOzonic,
	NoteAquatic, NoteMarine, NoteSoapy, NoteTropical, NoteCoconut, NoteSalty, NoteCaramel,
	NoteChocolate, NoteCoffee, NoteTuberose, NoteYellowFloral, NoteMossy, NoteHerbal,
	NoteSand, NoteViolet, NoteCacao, NoteAnis, NoteLactonic, NoteAldehydic, NoteMetallic,
	NoteSoftSpicy, NoteLavender, NoteSaffron, NoteNeroli, NoteBlackPepper, NoteMandarin,
	NotePepper, NoteSage, NoteCardamom, NoteBlackCurrant, NoteTea, NoteBergamot,
	NoteCannabis,
}

var noteSet = func() map[Note]struct{} {
	m := make(map[Note]struct{}, len(allNotes))
	for _, n := range allNotes {
		m[n] = struct{}{}
	}
	return m
}()

// AllNotes returns a copy of the note vocabulary.
func AllNotes() []Note {
	out := make([]Note, len(allNotes))
	copy(out, allNotes)
	return out
}

// Valid reports whether n belongs to the vocabulary.
func (n Note) Valid() bool {
	_, ok := noteSet[n]
	return ok
}

// ParseNote normalizes s and returns the matching Note.
func ParseNote(s string) (Note, bool) {
	n := Note(strings.ToLower(strings.TrimSpace(s)))
	return n, n.Valid()
}
