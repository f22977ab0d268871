package models

// NoteGroup is a named family of notes used to lay out the note picker.
type NoteGroup struct {
	Name  string `json:"name"`
	Notes []Note `json:"notes"`
}

var noteGroups = []NoteGroup{
	{"Popular", []Note{NoteWoody, NoteSweet, NoteFloral, NoteFresh, NoteCitrus, NoteMusky, NoteVanilla, NoteAromatic}},
	{"Spicy", []Note{NoteSpicy, NoteFreshSpicy, NoteWarmSpicy, NoteSoftSpicy, NoteCinnamon, NoteBlackPepper, NotePepper, NoteCardamom, NoteSaffron}},
	{"Floral", []Note{NoteFloral, NoteWhiteFloral, NoteRose, NoteIris, NoteYellowFloral, NoteTuberose, NoteViolet, NoteNeroli, NoteLavender}},
	{"Fruity & Gourmand", []Note{NoteFruity, NoteCherry, NoteMandarin, NoteBlackCurrant, NoteTropical, NoteCoconut, NoteCaramel, NoteChocolate, NoteCoffee, NoteHoney, NoteAlmond, NoteNutty, NoteCacao}},
	{"Amber & Resinous", []Note{NoteAmber, NoteBalsamic, NoteRum}},
	{"Earthy & Woody", []Note{NoteEarthy, NotePatchouli, NoteOud, NoteLeather, NoteTobacco, NoteSmoky, NoteMossy, NoteHerbal, NoteSage, NoteTea, NoteBergamot}},
	{"Aquatic & Fresh", []Note{NoteAquatic, NoteMarine, NoteOzonic, NoteMineral, NoteSoapy, NoteSalty, NoteGreen, NoteAnis, NoteCannabis}},
	{"Other", []Note{NotePowdery, NoteAnimalic, NoteLactonic, NoteAldehydic, NoteMetallic, NoteSand}},
}

// NoteGroups returns the note families in display order. A note may appear
// in more than one family. Notes that belong to no family are appended to
// the last one, so every note in the vocabulary is reachable.
func NoteGroups() []NoteGroup {
	out := make([]NoteGroup, len(noteGroups))
	seen := make(map[Note]bool, len(allNotes))
	for i, g := range noteGroups {
		out[i] = NoteGroup{Name: g.Name, Notes: append([]Note(nil), g.Notes...)}
		for _, n := range g.Notes {
			seen[n] = true
		}
	}
	last := &out[len(out)-1]
	for _, n := range allNotes {
		if !seen[n] {
			last.Notes = append(last.Notes, n)
		}
	}
	return out
}
