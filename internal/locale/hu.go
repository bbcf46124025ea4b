package locale

func init() {
	Register(Table{
		Code:    "hu",
		Name:    "Magyar",
		Title:   "Számolós Kaland - Lovagos Verzió",
		Tagline: "Jó játékot!",
		Instructions: []string{
			"Válaszolj helyesen a matematikai kérdésekre,",
			"lépj előre, és győzd le a sárkányokat!",
			"Használd az egérgombot a sárkányok kiválasztásához,",
			"és az Entert a válasz beküldéséhez!",
		},
		Start:       "Kezdés",
		QuestionFmt: "Kérdés: %s = ?",
		AnswerFmt:   "Válasz: %s",
		ScoreFmt:    "Pontszám: %d",
		StageFmt:    "Pálya %d/%d",
		SelectFirst: "Előbb válassz sárkányt!",
		NamePrompt:  "Add meg a neved: ",
		VictoryFmt:  "GYŐZELEM! Pontszám: %d",
		PlaceFmt:    "%d. %-15s %d pont",
		NoScores:    "Nincs mentett eredmény!",
		Mute:        "M",
		Unmute:      "U",
		HelpPlaying: "kattintás: sárkány  enter: beküldés",
	})
}
