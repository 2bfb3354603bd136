package board

// Disorder returns an integer measure of how scrambled a board is.
// It counts adjacent slot pairs holding different colors, plus every vial
// holding more than one color. A sorted board scores 0.
//
// Disorder says nothing about whether the board can be solved.
func Disorder(b *Board) int {
	score := 0
	for _, v := range b.vials {
		contents := v.Contents()
		mixed := false
		for i := 1; i < len(contents); i++ {
			if contents[i] != contents[i-1] {
				score++
				mixed = true
			}
		}
		if mixed {
			score++
		}
	}
	return score
}
