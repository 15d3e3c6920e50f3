// Package hangul derives the phonetic-initial string used for 초성 search.
package hangul

const (
	syllableBase = rune(0xAC00) // 가
	syllableEnd  = rune(0xD7A3) // 힣

	// A Hangul syllable block encodes (choseong, jungseong, jongseong)
	// as base + cho*588 + jung*28 + jong.
	choseongSpan = 588
)

// Compatibility jamo, indexed by choseong position within a syllable block.
var choseong = []rune("ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")

// ExtractInitial maps each Hangul syllable in text to its leading consonant
// and passes every other rune through unchanged. It never fails, so the
// result is always usable as a search key: ExtractInitial("아메리카노")
// returns "ㅇㅁㄹㅋㄴ".
func ExtractInitial(text string) string {
	result := make([]rune, 0, len(text))
	for _, r := range text {
		if r >= syllableBase && r <= syllableEnd {
			result = append(result, choseong[(r-syllableBase)/choseongSpan])
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
