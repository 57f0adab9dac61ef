package format

import "unicode"

const lhHashMultiplier = 37

// LHHash computes the name hash stored next to each entry of an lh list:
// hash = hash*37 + upper(char) over the name's runes.
func LHHash(name string) uint32 {
	var hash uint32
	for _, r := range name {
		hash = hash*lhHashMultiplier + uint32(unicode.ToUpper(r))
	}
	return hash
}

// LFHint returns the name hint stored next to each entry of an lf list:
// the first four characters of the name, one byte each, zero padded.
func LFHint(name string) [4]byte {
	var hint [4]byte
	i := 0
	for _, r := range name {
		if i == len(hint) {
			break
		}
		hint[i] = byte(r)
		i++
	}
	return hint
}
