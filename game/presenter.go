package game

import (
	"strconv"
	"unicode/utf8"
)

const (
	textPressControl = "BOTAO CENTRAL"
	textToStart      = "PARA COMECAR"
	textWaiting      = "ESPERANDO..."
	textJoined       = "ENTROU"
	textRound        = "RODADA "
	textTie          = "EMPATE"
	textPlayer       = "JOGADOR "
	textWon          = "VENCEU"

	promptColumn = 2
)

// PresentStart draws the idle prompt.
func PresentStart(d Display) {
	d.Clear()
	writeAt(d, promptColumn, 0, textPressControl)
	writeAt(d, promptColumn, 1, textToStart)
}

// PresentSelection draws one row per player with its join status.
func PresentSelection(d Display, joined [Players]bool) {
	d.Clear()
	for i, ok := range joined {
		status := textWaiting
		if ok {
			status = textJoined
		}
		writeAt(d, 0, i, playerTag(i)+" "+status)
	}
}

// PresentScoreboard draws "J1 - N" on the left of the first row and
// "N - J2" right-justified on the second.
func PresentScoreboard(d Display, scores [Players]uint32) {
	d.Clear()
	writeAt(d, 0, 0, playerTag(0)+" - "+strconv.FormatUint(uint64(scores[0]), 10))
	right := strconv.FormatUint(uint64(scores[1]), 10) + " - " + playerTag(1)
	writeAt(d, Cols-utf8.RuneCountInString(right), 1, right)
}

// PresentRound draws the centred round banner.
func PresentRound(d Display, number uint32) {
	d.Clear()
	writeCentered(d, 0, textRound+strconv.FormatUint(uint64(number), 10))
}

// PresentOutcome draws a tie message or the winner on two rows.
func PresentOutcome(d Display, o Outcome) {
	d.Clear()
	w := o.Winner()
	if w < 0 {
		writeCentered(d, 0, textTie)
		return
	}
	writeCentered(d, 0, textPlayer+strconv.Itoa(w+1))
	writeCentered(d, 1, textWon)
}

func playerTag(slot int) string {
	return "J" + strconv.Itoa(slot+1)
}

func writeCentered(d Display, row int, text string) {
	col := (Cols - utf8.RuneCountInString(text)) / 2
	writeAt(d, col, row, text)
}

// writeAt clamps the position into the grid and truncates text to fit.
func writeAt(d Display, col, row int, text string) {
	if col < 0 {
		col = 0
	}
	if col >= Cols || row < 0 || row >= Rows {
		return
	}
	if n := Cols - col; utf8.RuneCountInString(text) > n {
		text = string([]rune(text)[:n])
	}
	d.WriteAt(col, row, text)
}
