package models

// Draw holds one lottery game outcome: the white balls followed by the
// special ball, in source page order, plus the advertised jackpot.
type Draw struct {
	Date    string `json:"date"`    // YYYY-MM-DD
	Numbers []int  `json:"numbers"` // white balls first, special ball last
	Jackpot int64  `json:"jackpot"` // whole dollars
}

// History is the snapshot written by the fetcher and served by the API.
// Game lists keep the source page order, typically newest first.
type History struct {
	Timestamp    string `json:"timestamp"`
	Powerball    []Draw `json:"powerball"`
	MegaMillions []Draw `json:"megaMillions"`
}

// Game resolves a game key to its draw list. Only the two tracked game keys
// resolve; anything else (including "timestamp") reports absence.
func (h *History) Game(key string) ([]Draw, bool) {
	switch key {
	case "powerball":
		return h.Powerball, true
	case "megaMillions":
		return h.MegaMillions, true
	}
	return nil, false
}
